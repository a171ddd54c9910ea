package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports an invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DegenerateStateError indicates the population reached a state in which a
// statistic cannot be computed, such as a zero contact total.
type DegenerateStateError struct {
	Step     int
	Quantity string
	Value    float64
}

// NewDegenerateStateError constructs a DegenerateStateError for the given step.
func NewDegenerateStateError(step int, quantity string, value float64) error {
	return &DegenerateStateError{Step: step, Quantity: quantity, Value: value}
}

func (e *DegenerateStateError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("degenerate state at step %d: %s is %g", e.Step, e.Quantity, e.Value)
}

// RunError attaches run context to a failure raised while simulating.
type RunError struct {
	RunID  string
	Member int
	Err    error
}

// NewRunError constructs a RunError. Member is -1 for standalone runs.
func NewRunError(runID string, member int, err error) error {
	return &RunError{RunID: runID, Member: member, Err: err}
}

func (e *RunError) Error() string {
	if e == nil {
		return ""
	}
	if e.Member >= 0 {
		return fmt.Sprintf("run error [member %d, %s]: %v", e.Member, e.RunID, e.Err)
	}
	if e.RunID != "" {
		return fmt.Sprintf("run error [%s]: %v", e.RunID, e.Err)
	}
	return fmt.Sprintf("run error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RunError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
