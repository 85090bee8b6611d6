package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ValidationError is a 400-level rejection with a human-readable message
// assembled from the server's field errors.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthError is a 401 or 403 rejection.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string { return e.Message }

// NotFoundError is a 404 rejection.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ConflictError is a 409 rejection.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// ServerError is any 5xx response.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string { return e.Message }

// NetworkError wraps a transport-level failure (the request never got
// an HTTP response).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error: " + e.Err.Error() }

func (e *NetworkError) Unwrap() error { return e.Err }

// errorEnvelope covers the two error shapes the platform emits:
// RFC 7807 problem documents and the legacy
// {"error": {"message": ..., "details": {"fieldErrors": ...}}} wrapper.
type errorEnvelope struct {
	// RFC 7807
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
	// Legacy wrapper
	ErrorBody *struct {
		Message string `json:"message"`
		Details *struct {
			FieldErrors map[string][]string `json:"fieldErrors"`
		} `json:"details"`
	} `json:"error"`
}

// extractMessage flattens whichever envelope the server used into one
// display string. Field errors are joined with " | ".
func (e *errorEnvelope) extractMessage() string {
	if e.ErrorBody != nil {
		if e.ErrorBody.Details != nil && len(e.ErrorBody.Details.FieldErrors) > 0 {
			var parts []string
			for _, messages := range e.ErrorBody.Details.FieldErrors {
				parts = append(parts, messages...)
			}
			if len(parts) > 0 {
				return strings.Join(parts, " | ")
			}
		}
		if e.ErrorBody.Message != "" {
			return e.ErrorBody.Message
		}
	}

	if len(e.Errors) > 0 {
		parts := make([]string, 0, len(e.Errors))
		for _, fe := range e.Errors {
			parts = append(parts, fe.Message)
		}
		return strings.Join(parts, " | ")
	}
	if e.Detail != "" {
		return e.Detail
	}
	return e.Title
}

// parseAPIError turns a non-2xx response into a typed error.
func parseAPIError(statusCode int, body []byte) error {
	var envelope errorEnvelope
	_ = json.Unmarshal(body, &envelope)

	message := envelope.extractMessage()
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", statusCode)
	}

	switch {
	case statusCode == http.StatusUnauthorized:
		// Login remaps this to a credentials message; everywhere else
		// a 401 means the session went stale
		return &AuthError{StatusCode: statusCode, Message: "Session expired"}
	case statusCode == http.StatusForbidden:
		return &AuthError{StatusCode: statusCode, Message: "Access denied"}
	case statusCode == http.StatusNotFound:
		return &NotFoundError{Message: message}
	case statusCode == http.StatusConflict:
		return &ConflictError{Message: message}
	case statusCode >= 500:
		return &ServerError{StatusCode: statusCode, Message: message}
	default:
		return &ValidationError{Message: message}
	}
}
