package quizapi

import "fmt"

// HTTPError reports a response whose status is outside 2xx.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: status %d", e.Status)
}

// NetworkError reports a request that could not be sent or completed.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a body that is not valid JSON or has the wrong shape.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: parse response: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
