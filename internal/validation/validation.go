// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/canonical/business-access-service/internal/types"
)

// legacyCurrencies are codes withdrawn from ISO 4217 that shops still price in.
var legacyCurrencies = map[string]bool{
	"SLL": true,
}

var iso4217 = validator.New()

// isCurrency accepts current ISO 4217 codes and the legacy ones above.
func isCurrency(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if legacyCurrencies[code] {
		return true
	}
	return iso4217.Var(code, "iso4217") == nil
}

// NewValidator returns a validator reporting fields by their json name, decimal
// amounts are compared as floats so numeric tags such as gt=0 apply to them.
// The currency tag accepts ISO 4217 codes plus legacy ones such as SLL.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("currency", isCurrency); err != nil {
		panic(err)
	}

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return v
}

// ToError converts the validator output into a classified validation error,
// any other error is returned wrapped as is.
func ToError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", types.ErrValidation, err)
	}

	out := &types.ValidationError{Fields: make([]types.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		reason := fe.Tag()
		if fe.Param() != "" {
			reason = fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
		}
		out.Fields = append(out.Fields, types.FieldError{Field: fe.Field(), Reason: reason})
	}

	return out
}
