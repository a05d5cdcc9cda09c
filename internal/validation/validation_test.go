// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/canonical/business-access-service/internal/types"
)

type payment struct {
	Reference string          `json:"reference" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"gt=0"`
	Currency  string          `json:"currency" validate:"omitempty,currency"`
}

func TestNewValidator(t *testing.T) {
	tests := []struct {
		name           string
		input          payment
		expectedFields []string
	}{
		{
			name:  "valid",
			input: payment{Reference: "r-1", Amount: decimal.RequireFromString("10.50")},
		},
		{
			name:           "missing reference uses json name",
			input:          payment{Amount: decimal.NewFromInt(1)},
			expectedFields: []string{"reference"},
		},
		{
			name:  "current currency code",
			input: payment{Reference: "r-3", Amount: decimal.NewFromInt(5), Currency: "SLE"},
		},
		{
			name:  "default legacy currency code",
			input: payment{Reference: "r-4", Amount: decimal.NewFromInt(5), Currency: types.DefaultCurrency},
		},
		{
			name:           "unknown currency code",
			input:          payment{Reference: "r-5", Amount: decimal.NewFromInt(5), Currency: "XYZ1"},
			expectedFields: []string{"currency"},
		},
		{
			name:           "decimal compared numerically",
			input:          payment{Reference: "r-2", Amount: decimal.RequireFromString("-3")},
			expectedFields: []string{"amount"},
		},
	}

	v := NewValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ToError(v.Struct(tt.input))

			if len(tt.expectedFields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verr *types.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !errors.Is(err, types.ErrValidation) {
				t.Error("expected error to match ErrValidation")
			}
			if len(verr.Fields) != len(tt.expectedFields) {
				t.Fatalf("expected %d fields, got %v", len(tt.expectedFields), verr.Fields)
			}
			for i, f := range tt.expectedFields {
				if verr.Fields[i].Field != f {
					t.Errorf("expected field %q, got %q", f, verr.Fields[i].Field)
				}
			}
		})
	}
}
