// Copyright (c) 2026 Caboomlog. All rights reserved.

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// Services validate their commands with it before touching storage, so a rejected
// request is reported with every failing field at once.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/caboomlog/backend/internal/platform/apperr"
)

// ErrInvalidJSON is returned when the request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

// Validator collects field-level validation errors.
//
// A Validator is not safe for concurrent use. Create one per command.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the value has more than max runes.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// Custom adds message for field when failed is true.
//
//	v.Custom("category_id_2", first == second, "Must differ from category_id_1")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a VALIDATION_ERROR if any rule failed, otherwise nil.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
