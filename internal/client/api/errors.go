package api

import "fmt"

// TransportError means no HTTP response was obtained at all: DNS failure,
// connection refused, timeout. It carries no status code.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError means a response was obtained but carried a non-success status.
// Message is the backend-provided error text when the body could be parsed,
// otherwise a generic "HTTP error: <status>".
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string { return e.Message }
