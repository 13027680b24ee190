package quizapi

// Quiz is a quiz as the backend returns it. Description and CreatedAt may be
// absent.
type Quiz struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	CreatedAt   *string `json:"created_at,omitempty"`
}

type listResponse struct {
	Quizzes []Quiz `json:"quizzes"`
}

// CreateRequest is the body sent to POST /quizzes.
type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateResponse holds whatever acknowledgement the backend sends back. Only
// a successful decode is required; both fields may be zero.
type CreateResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}
