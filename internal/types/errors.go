// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotAuthenticated is returned when an identity is required but missing.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrForbidden is returned when the caller tier does not allow the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation marks input rejected before any request was issued.
	ErrValidation = errors.New("validation failed")
	// ErrTransientStorage marks a failure talking to the backing store.
	ErrTransientStorage = errors.New("storage temporarily unavailable")
	// ErrNotFound is returned when the scoped row does not exist or is not visible.
	ErrNotFound = errors.New("not found")
)

type ErrorClass string

const (
	ErrorClassNone             ErrorClass = ""
	ErrorClassNotAuthenticated ErrorClass = "not_authenticated"
	ErrorClassForbidden        ErrorClass = "forbidden"
	ErrorClassValidation       ErrorClass = "validation"
	ErrorClassNotFound         ErrorClass = "not_found"
	ErrorClassTransientStorage ErrorClass = "transient_storage"
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}

// Classify maps any error to the class shown to the user, anything that
// is not explicitly recognised is treated as a transient storage failure.
func Classify(err error) ErrorClass {
	switch {
	case err == nil:
		return ErrorClassNone
	case errors.Is(err, ErrNotAuthenticated):
		return ErrorClassNotAuthenticated
	case errors.Is(err, ErrForbidden):
		return ErrorClassForbidden
	case errors.Is(err, ErrValidation):
		return ErrorClassValidation
	case errors.Is(err, ErrNotFound):
		return ErrorClassNotFound
	default:
		return ErrorClassTransientStorage
	}
}
