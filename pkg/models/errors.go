package models

import (
	"errors"
	"fmt"
)

// ErrStructural marks a run failure: the input or request cannot be analyzed
// at all. It is the only error class that escapes a run.
var ErrStructural = errors.New("structural error")

// StructuralError describes why a run could not start.
type StructuralError struct {
	Stage  string
	Reason string
	Err    error
}

// NewStructuralError builds a StructuralError for stage.
func NewStructuralError(stage, reason string, err error) *StructuralError {
	return &StructuralError{Stage: stage, Reason: reason, Err: err}
}

func (e *StructuralError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Reason)
}

// Is makes errors.Is(err, ErrStructural) hold for every StructuralError.
func (e *StructuralError) Is(target error) bool { return target == ErrStructural }

func (e *StructuralError) Unwrap() error { return e.Err }
