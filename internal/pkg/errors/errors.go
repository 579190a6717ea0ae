package errors

import (
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	cause      error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches any AppError carrying the same code, so wrapped copies
// still compare equal to the package sentinels.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

// WithDetails returns a copy of the error with details attached. Sentinels stay untouched.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	c := *e
	c.Details = details
	return &c
}

// Wrap returns a copy of the error that records cause.
func (e *AppError) Wrap(cause error) *AppError {
	c := *e
	c.cause = cause
	return &c
}
