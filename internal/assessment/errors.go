package assessment

import (
	"errors"
	"fmt"
)

// ErrInvalidReference is the sentinel for an unknown question ID or category
// key passed to RecordAnswer.
var ErrInvalidReference = errors.New("invalid reference")

// InvalidReferenceError carries the rejected IDs. It unwraps to
// ErrInvalidReference.
type InvalidReferenceError struct {
	QuestionID string
	Category   string
	Reason     string
}

func (e *InvalidReferenceError) Error() string {
	if e.Category == "" {
		return fmt.Sprintf("%v: question %q: %s", ErrInvalidReference, e.QuestionID, e.Reason)
	}
	return fmt.Sprintf("%v: question %q, category %q: %s", ErrInvalidReference, e.QuestionID, e.Category, e.Reason)
}

func (e *InvalidReferenceError) Unwrap() error { return ErrInvalidReference }
