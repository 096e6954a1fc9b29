package main

import "fmt"

// ConnectionError wraps transport-level failures (unreachable host, DNS,
// timeout). The completer and the REPL treat it as recoverable.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// AuthenticationError is returned when Elasticsearch rejects the credentials
// (HTTP 401/403).
type AuthenticationError struct {
	StatusCode int
	Message    string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed (HTTP %d): %s", e.StatusCode, e.Message)
}

// QueryError carries the server's message for a rejected or malformed query.
type QueryError struct {
	StatusCode int
	Message    string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query error (HTTP %d): %s", e.StatusCode, e.Message)
}

// esError is the structured error body Elasticsearch returns alongside a
// non-2xx status. Older endpoints return "error" as a bare string, so the
// reason is extracted leniently.
type esError struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	} `json:"error"`
	Status int `json:"status"`
}

// classifyStatus converts a non-2xx Elasticsearch response into the typed
// error taxonomy. message should already be the best human-readable text
// available (parsed reason or raw body).
func classifyStatus(statusCode int, message string) error {
	if statusCode == 401 || statusCode == 403 {
		return &AuthenticationError{StatusCode: statusCode, Message: message}
	}
	return &QueryError{StatusCode: statusCode, Message: message}
}
