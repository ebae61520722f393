package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joshua-takyi/campus/internal/metrics"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("invalid credentials")
)

// FieldError is one failed rule on one input field. Rendering into a
// human readable message happens at the transport layer.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

type ValidationError struct {
	RequiredFields []string
	Fields         []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.RequiredFields) > 0 {
		return "missing required fields: " + strings.Join(e.RequiredFields, ", ")
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Param != "" {
			parts = append(parts, fmt.Sprintf("%s:%s=%s", f.Field, f.Rule, f.Param))
			continue
		}
		parts = append(parts, f.Field+":"+f.Rule)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// fieldErrors flattens validator output. Errors that are not validation
// failures (bad input type, nil struct) are returned as is.
func fieldErrors(err error) ([]FieldError, error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	return out, nil
}

func statusOf(err error) string {
	var verr *ValidationError
	switch {
	case err == nil:
		return metrics.StatusOK
	case errors.As(err, &verr):
		return metrics.StatusInvalid
	case errors.Is(err, ErrNotFound):
		return metrics.StatusNotFound
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrConflict):
		return metrics.StatusDenied
	}
	return metrics.StatusError
}
