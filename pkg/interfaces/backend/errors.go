package backend

import (
	"fmt"
)

// Error codes for backend operations
const (
	// ErrCodeRequestFailed covers every network or non-2xx outcome,
	// including unparseable response bodies. The backend's error payload
	// shape is not a stable contract, so transport and application
	// failures collapse into this one code.
	ErrCodeRequestFailed = "REQUEST_FAILED"
	// ErrCodeNotFound indicates a fetch for a specific video id found no
	// such record.
	ErrCodeNotFound = "NOT_FOUND"
)

// APIError represents a failed backend operation with the operation name
// and, when a response was received, its HTTP status code.
type APIError struct {
	Code       string // Error code identifying the type of error
	Operation  string // Client operation that failed, e.g. "ListVideos"
	StatusCode int    // HTTP status code, 0 when the request never completed
	Err        error  // Underlying error if any
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("[%s] %s failed with status %d", e.Code, e.Operation, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s failed: %v", e.Code, e.Operation, e.Err)
	}
	return fmt.Sprintf("[%s] %s failed", e.Code, e.Operation)
}

// Unwrap returns the underlying error.
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new APIError.
func NewAPIError(code, operation string, statusCode int, err error) *APIError {
	return &APIError{
		Code:       code,
		Operation:  operation,
		StatusCode: statusCode,
		Err:        err,
	}
}

// IsAPIError checks whether err is an APIError with the given code.
func IsAPIError(err error, code string) bool {
	if err == nil {
		return false
	}
	if e, ok := err.(*APIError); ok {
		return e.Code == code
	}
	return false
}

// IsRequestFailed reports whether err is a REQUEST_FAILED APIError.
func IsRequestFailed(err error) bool {
	return IsAPIError(err, ErrCodeRequestFailed)
}

// IsNotFound reports whether err is a NOT_FOUND APIError.
func IsNotFound(err error) bool {
	return IsAPIError(err, ErrCodeNotFound)
}
