package board

import (
	"context"
	"strings"
	"time"

	"github.com/jask/quizboard/internal/logging"
	"github.com/jask/quizboard/internal/quizapi"
)

const (
	SubmitLabel      = "Create Quiz"
	SubmittingLabel  = "Creating..."
	CreatedText      = "Quiz created successfully!"
	createFailedText = "Failed to create quiz: "
)

// RedirectDelay is how long a successful create stays on screen before the
// list panel is activated.
const RedirectDelay = 1500 * time.Millisecond

// Creator is the write half of the backend.
type Creator interface {
	CreateQuiz(ctx context.Context, req quizapi.CreateRequest) (quizapi.CreateResponse, error)
}

type SubmitPhase int

const (
	SubmitIdle SubmitPhase = iota
	Submitting
	SubmitSucceeded
	SubmitFailed
)

func (p SubmitPhase) String() string {
	switch p {
	case SubmitIdle:
		return "idle"
	case Submitting:
		return "submitting"
	case SubmitSucceeded:
		return "succeeded"
	case SubmitFailed:
		return "failed"
	}
	return "unknown"
}

// Submission is the state of the create form's submit control and message
// area.
type Submission struct {
	Phase   SubmitPhase
	Message string
}

func (s Submission) ButtonDisabled() bool { return s.Phase == Submitting }

func (s Submission) ButtonLabel() string {
	if s.Phase == Submitting {
		return SubmittingLabel
	}
	return SubmitLabel
}

// Begin starts a new attempt, clearing any previous message. It returns
// false if an attempt is already in flight.
func (s *Submission) Begin() bool {
	if s.Phase == Submitting {
		return false
	}
	*s = Submission{Phase: Submitting}
	return true
}

// Submit trims both fields and creates the quiz. The result is always a
// finished Submission, never an error.
func Submit(ctx context.Context, creator Creator, title, description string) Submission {
	req := quizapi.CreateRequest{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
	if _, err := creator.CreateQuiz(ctx, req); err != nil {
		logging.WithContext(ctx).WithError(err).Error("creating quiz")
		return Submission{Phase: SubmitFailed, Message: createFailedText + err.Error()}
	}
	logging.WithContext(ctx).WithField("title", req.Title).Info("quiz created")
	return Submission{Phase: SubmitSucceeded, Message: CreatedText}
}
