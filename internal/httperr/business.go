package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindDependency
)

// Status maps a kind to its HTTP status. Dependency failures surface as 500
// outside the health probe, which answers 503 on its own.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Extra   map[string]any
	Err     error
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

func ErrValidation(code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrConflict(code, message string, extra map[string]any) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message, Extra: extra}
}

func ErrDependency(code string, err error) error {
	return BusinessError{Kind: KindDependency, Code: code, Message: "database unavailable", Err: err}
}

// ErrInternal wraps an unclassified failure with a safe public message.
func ErrInternal(code, message string, err error) error {
	return BusinessError{Kind: KindInternal, Code: code, Message: message, Err: err}
}

// CodeOf returns the machine readable code of err, or "internal_error".
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return "internal_error"
}

func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindInternal
}

// NotFoundID is the shared "<Entity> with ID <id> not found" error.
func NotFoundID(entity string, id any) error {
	return ErrNotFound(
		fmt.Sprintf("%s_not_found", entityCode(entity)),
		fmt.Sprintf("%s with ID %v not found", entity, id),
	)
}

func entityCode(entity string) string {
	return strings.ReplaceAll(strings.ToLower(entity), " ", "_")
}
