// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/canonical/business-access-service/internal/types"
)

// Response is the envelope shared by every JSON endpoint.
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	// Class is the error class shown to the user, absent on success
	Class  types.ErrorClass   `json:"class,omitempty"`
	Fields []types.FieldError `json:"fields,omitempty"`
}

// StatusFor maps an error class to the HTTP status returned to the caller.
func StatusFor(class types.ErrorClass) int {
	switch class {
	case types.ErrorClassNone:
		return http.StatusOK
	case types.ErrorClassNotAuthenticated:
		return http.StatusUnauthorized
	case types.ErrorClassForbidden:
		return http.StatusForbidden
	case types.ErrorClassValidation:
		return http.StatusBadRequest
	case types.ErrorClassNotFound:
		return http.StatusNotFound
	default:
		return http.StatusServiceUnavailable
	}
}

func WriteJSON(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(
		Response{
			Data:    data,
			Message: message,
			Status:  status,
		},
	)
}

// WriteError classifies err and writes it, internal details of transient failures are not leaked.
func WriteError(w http.ResponseWriter, err error) {
	class := types.Classify(err)
	status := StatusFor(class)

	r := Response{
		Message: err.Error(),
		Status:  status,
		Class:   class,
	}

	var verr *types.ValidationError
	if errors.As(err, &verr) {
		r.Fields = verr.Fields
	}

	if class == types.ErrorClassTransientStorage {
		r.Message = "the service is temporarily unavailable, your changes were not saved"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(r)
}

// ErrorFromResponse rebuilds the classified error written by WriteError.
func ErrorFromResponse(r *Response) error {
	if r == nil {
		return types.ErrTransientStorage
	}

	switch r.Class {
	case types.ErrorClassNotAuthenticated:
		return fmt.Errorf("%w: %s", types.ErrNotAuthenticated, r.Message)
	case types.ErrorClassForbidden:
		return fmt.Errorf("%w: %s", types.ErrForbidden, r.Message)
	case types.ErrorClassNotFound:
		return fmt.Errorf("%w: %s", types.ErrNotFound, r.Message)
	case types.ErrorClassValidation:
		if len(r.Fields) == 0 {
			return fmt.Errorf("%w: %s", types.ErrValidation, r.Message)
		}
		return &types.ValidationError{Fields: r.Fields}
	default:
		return fmt.Errorf("%w: %s", types.ErrTransientStorage, r.Message)
	}
}
