package sales

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below wrap them, so callers can test with
// errors.Is and still recover details with errors.As.
var (
	ErrNotFound   = errors.New("sale not found")
	ErrConflict   = errors.New("sale already exists")
	ErrValidation = errors.New("card not in master list")
	ErrMalformed  = errors.New("malformed input")
)

// ValidationError reports a card number/type pair missing from the card
// master list.
type ValidationError struct {
	CardNumber string
	CardType   string
	// Known lists the types the master list does have for the number.
	Known []string
}

func (e *ValidationError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("card %s is not in the master list", e.CardNumber)
	}
	return fmt.Sprintf("card %s is not listed as %s (listed as %v)", e.CardNumber, e.CardType, e.Known)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// MalformedInputError reports a missing or invalid field.
type MalformedInputError struct {
	Field  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *MalformedInputError) Unwrap() error { return ErrMalformed }
