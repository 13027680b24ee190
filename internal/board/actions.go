package board

import "fmt"

// Actions are the per-card hooks. Taking a quiz is not implemented yet, so
// the default hooks only describe what would happen.
type Actions interface {
	ViewQuiz(id int) string
	StartQuiz(id int) string
}

// ComingSoon is the placeholder Actions.
type ComingSoon struct{}

func (ComingSoon) ViewQuiz(id int) string {
	return fmt.Sprintf("Quiz %d details - Feature coming soon!", id)
}

func (ComingSoon) StartQuiz(id int) string {
	return fmt.Sprintf("Starting quiz %d - Feature coming soon!", id)
}
