package domain

import (
	"fmt"
	"unicode/utf8"
)

// Widths of the VARCHAR columns that client strings are stored in.
const (
	MaxTitleLen         = 255
	MaxHostNameLen      = 255
	MaxDescriptionLen   = 500
	MaxImageURLLen      = 255
	MaxLocationFieldLen = 255
	MaxFullAddressLen   = 500
	MaxZipLen           = 20
)

// FieldLimit pairs an optional string field with the width of its column.
type FieldLimit struct {
	Field string
	Value *string
	Max   int
}

// LengthViolations returns one message per field longer than its column allows.
// Lengths are counted in characters, as Postgres does for VARCHAR(n).
func LengthViolations(limits ...FieldLimit) []string {
	var msgs []string
	for _, l := range limits {
		if l.Value != nil && utf8.RuneCountInString(*l.Value) > l.Max {
			msgs = append(msgs, fmt.Sprintf("%s must be at most %d characters", l.Field, l.Max))
		}
	}
	return msgs
}

func checkLengths(limits []FieldLimit) error {
	if msgs := LengthViolations(limits...); len(msgs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, msgs[0])
	}
	return nil
}
