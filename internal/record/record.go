// Package record holds the field-level validation shared by every persisted entity.
//
// A record type declares its rules as a map from field name to an ordered rule list.
// Its setters call Rules.Check before assigning, so a rejected value never reaches
// the struct.
package record

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationError reports a rejected field value.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AsValidationError unwraps err into a *ValidationError if it holds one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Rules maps a field name to the rules its values must pass, in order.
type Rules map[string][]validation.Rule

// Check runs the rules registered for field against value and stops at the first
// failure. A field without rules accepts anything.
//
// Rule failures come back as *ValidationError. A rule that could not reach a
// verdict (wrapped with validation.NewInternalError) returns the underlying error.
func (r Rules) Check(ctx context.Context, field string, value any) error {
	rules, ok := r[field]
	if !ok || len(rules) == 0 {
		return nil
	}

	err := validation.ValidateWithContext(ctx, value, rules...)
	if err == nil {
		return nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) && internal.InternalError() != nil {
		return internal.InternalError()
	}
	return &ValidationError{Field: field, Message: err.Error()}
}
