package travellog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when the targeted travel log id is absent from the collection.
var ErrNotFound = errors.New("travel log not found")

// ErrDuplicateID indicates an id collision on Add. The Factory guarantees unique
// ids, so hitting this means a caller bypassed it.
var ErrDuplicateID = errors.New("duplicate travel log id")

// ValidationError names the input fields that failed validation. No entity is
// constructed when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid travel log: %s", strings.Join(e.Fields, ", "))
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
