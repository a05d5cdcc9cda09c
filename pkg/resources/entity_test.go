// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resources

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/canonical/business-access-service/internal/types"
)

func TestEntity_Columns(t *testing.T) {
	expected := []string{"id", "owner_id", "business_id", "created_at", "customer_id", "amount", "amount_paid", "balance", "due_date", "status"}

	if got := CreditEntries.Columns(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected columns %v, got %v", expected, got)
	}

	writable := []string{"amount", "amount_paid", "customer_id", "due_date", "status"}
	if got := CreditEntries.Writable(); !reflect.DeepEqual(got, writable) {
		t.Errorf("expected writable %v, got %v", writable, got)
	}
}

func TestEntity_Tables(t *testing.T) {
	expected := []string{"suppliers", "customers", "inventory_items", "expenses", "sales", "credit_entries"}

	if got := Tables(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected tables %v, got %v", expected, got)
	}
}

func TestEntity_ValuesSkipUnsetOptionalColumns(t *testing.T) {
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	expense := &Expense{
		Scoped:      Scoped{ID: "ignored", OwnerID: "ignored"},
		Category:    "rent",
		Amount:      decimal.RequireFromString("150.50"),
		ExpenseDate: &date,
	}

	values := Expenses.values(expense)

	for _, col := range []string{"id", "owner_id", "business_id", "created_at", "supplier_id"} {
		if _, ok := values[col]; ok {
			t.Errorf("expected %s to be left out, got %v", col, values[col])
		}
	}

	if values["category"] != "rent" || values["expense_date"] != &date {
		t.Errorf("unexpected values %v", values)
	}

	if !values["amount"].(decimal.Decimal).Equal(decimal.RequireFromString("150.5")) {
		t.Errorf("unexpected amount %v", values["amount"])
	}
}

func TestEntity_Decode(t *testing.T) {
	tests := []struct {
		name           string
		patch          Patch
		expectedFields []string
		expectedValues map[string]any
		expectedError  []types.FieldError
	}{
		{
			name:           "writable fields",
			patch:          Patch{"name": json.RawMessage(`"Mama Shop"`), "quantity": json.RawMessage(`4`)},
			expectedFields: []string{"Name", "Quantity"},
			expectedValues: map[string]any{"name": "Mama Shop", "quantity": 4},
		},
		{
			name:          "readonly and unknown fields",
			patch:         Patch{"owner_id": json.RawMessage(`"x"`), "colour": json.RawMessage(`"red"`)},
			expectedError: []types.FieldError{{Field: "colour", Reason: "unknown"}, {Field: "owner_id", Reason: "readonly"}},
		},
		{
			name:          "empty patch",
			patch:         Patch{},
			expectedError: []types.FieldError{{Field: "patch", Reason: "empty"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fields, values, err := Inventory.decode(tt.patch)

			if tt.expectedError != nil {
				var verr *types.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected a validation error, got %v", err)
				}
				if !reflect.DeepEqual(verr.Fields, tt.expectedError) {
					t.Errorf("expected %v, got %v", tt.expectedError, verr.Fields)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if !reflect.DeepEqual(fields, tt.expectedFields) {
				t.Errorf("expected fields %v, got %v", tt.expectedFields, fields)
			}
			if !reflect.DeepEqual(values, tt.expectedValues) {
				t.Errorf("expected values %v, got %v", tt.expectedValues, values)
			}
		})
	}
}

func TestEntity_DecodeRejectsMistypedValue(t *testing.T) {
	_, _, _, err := Inventory.decode(Patch{"quantity": json.RawMessage(`"many"`)})

	if !errors.Is(err, types.ErrValidation) {
		t.Fatalf("expected a validation error, got %v", err)
	}
}
