package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a service failure so the HTTP layer can map it to a
// transport status without parsing messages.
type ErrorKind string

const (
	KindInvalidArgument   ErrorKind = "InvalidArgument"
	KindNotFound          ErrorKind = "NotFound"
	KindForbidden         ErrorKind = "Forbidden"
	KindConflict          ErrorKind = "Conflict"
	KindDependencyFailure ErrorKind = "DependencyFailure"
)

// ServiceError carries an ErrorKind alongside a human-readable message.
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func InvalidArgumentError(msg string) error {
	return &ServiceError{Kind: KindInvalidArgument, Message: msg}
}

func NotFoundError(msg string) error {
	return &ServiceError{Kind: KindNotFound, Message: msg}
}

func ForbiddenError(msg string) error {
	return &ServiceError{Kind: KindForbidden, Message: msg}
}

func ConflictError(msg string) error {
	return &ServiceError{Kind: KindConflict, Message: msg}
}

// DependencyError wraps a persistence or I/O failure.
func DependencyError(msg string, err error) error {
	return &ServiceError{Kind: KindDependencyFailure, Message: msg, Err: err}
}

// KindOf returns the ErrorKind carried by err, or KindDependencyFailure for
// errors that carry no kind.
func KindOf(err error) ErrorKind {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindDependencyFailure
}

// HTTPStatusFor maps an error to the transport status code for its kind.
func HTTPStatusFor(err error) int {
	switch KindOf(err) {
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
