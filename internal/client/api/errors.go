package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNetwork    = errors.New("network error")
	ErrAuth       = errors.New("not authorized")
	ErrValidation = errors.New("request rejected")
	ErrServer     = errors.New("server error")
)

// Error describes a failed API call.
type Error struct {
	Kind    error
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Status > 0 && e.Message != "":
		return fmt.Sprintf("api: %v (%d): %s", e.Kind, e.Status, e.Message)
	case e.Status > 0:
		return fmt.Sprintf("api: %v (%d): %s", e.Kind, e.Status, http.StatusText(e.Status))
	case e.Err != nil:
		return fmt.Sprintf("api: %v: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("api: %v", e.Kind)
	}
}

func (e *Error) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Message returns the server-provided message carried by err, or fallback.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func kindForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return ErrAuth
	case status >= 500:
		return ErrServer
	default:
		return ErrValidation
	}
}
