package board

import (
	"context"
	"strings"
	"time"

	"github.com/jask/quizboard/internal/logging"
	"github.com/jask/quizboard/internal/quizapi"
)

const (
	LoadingText       = "Loading quizzes..."
	EmptyText         = "No quizzes yet. Create your first one!"
	LoadFailedText    = "Failed to load quizzes"
	NoDescriptionText = "No description provided"
	UnknownDateText   = "Unknown"
	cardDateLayout    = "Jan 2, 2006"
)

// Lister is the read half of the backend.
type Lister interface {
	ListQuizzes(ctx context.Context) ([]quizapi.Quiz, error)
}

type ListPhase int

const (
	ListLoading ListPhase = iota
	ListEmpty
	ListLoaded
	ListFailed
)

func (p ListPhase) String() string {
	switch p {
	case ListLoading:
		return "loading"
	case ListEmpty:
		return "empty"
	case ListLoaded:
		return "loaded"
	case ListFailed:
		return "failed"
	}
	return "unknown"
}

// ListState is everything the list container can show.
type ListState struct {
	Phase  ListPhase
	Cards  []Card
	Err    error
	APIURL string
}

// Loading is the placeholder shown while a fetch is outstanding.
func Loading() ListState {
	return ListState{Phase: ListLoading}
}

// Card is the display form of one quiz. Text fields are raw; escaping is up
// to the renderer.
type Card struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Created     string `json:"created"`
}

func NewCard(q quizapi.Quiz) Card {
	desc := NoDescriptionText
	if q.Description != nil && *q.Description != "" {
		desc = *q.Description
	}
	return Card{
		ID:          q.ID,
		Title:       q.Title,
		Description: desc,
		Created:     FormatDate(q.CreatedAt),
	}
}

// Load fetches the quiz list and resolves it into displayable state. Failures
// become a ListFailed state carrying apiURL; Load itself never fails.
func Load(ctx context.Context, lister Lister, apiURL string) ListState {
	quizzes, err := lister.ListQuizzes(ctx)
	if err != nil {
		logging.WithContext(ctx).WithError(err).Error("loading quizzes")
		return ListState{Phase: ListFailed, Err: err, APIURL: apiURL}
	}
	if len(quizzes) == 0 {
		return ListState{Phase: ListEmpty}
	}
	cards := make([]Card, 0, len(quizzes))
	for _, q := range quizzes {
		cards = append(cards, NewCard(q))
	}
	return ListState{Phase: ListLoaded, Cards: cards}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02",
}

// FormatDate renders a backend timestamp as "Jan 2, 2006". Missing or
// unparseable input gives "Unknown". The date is read in the timestamp's own
// zone.
func FormatDate(s *string) string {
	if s == nil {
		return UnknownDateText
	}
	raw := strings.TrimSpace(*s)
	if raw == "" {
		return UnknownDateText
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(cardDateLayout)
		}
	}
	return UnknownDateText
}

// BackendHint tells the user which backend a failed load was aimed at.
func BackendHint(apiURL string) string {
	return "Make sure backend is running at " + apiURL
}

// ErrorLine is the user-facing line for a load failure.
func ErrorLine(err error) string {
	if err == nil {
		return "Error: unknown"
	}
	return "Error: " + err.Error()
}
