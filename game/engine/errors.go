package engine

import "fmt"

// ParseError reports malformed or out-of-policy input text. Err holds the
// underlying engine error when the input was rejected by the plateau.
type ParseError struct {
	Message string
	Err     error
}

// NewParseError creates a ParseError with a formatted message
func NewParseError(format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

// WrapParseError creates a ParseError that keeps err as its cause
func WrapParseError(err error, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Err: err}
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// BoundaryError reports a proposed position outside the plateau.
// Rover is empty when the check was made for a landing.
type BoundaryError struct {
	Edge   Edge
	Rover  string
	Target Position
}

func (e *BoundaryError) Error() string {
	if e.Rover == "" {
		return fmt.Sprintf("crossing %s border at %s", e.Edge, e.Target)
	}
	return fmt.Sprintf("rover %s: crossing %s border at %s", e.Rover, e.Edge, e.Target)
}

// CollisionError reports a proposed position already held by another rover
type CollisionError struct {
	Rover    string
	Occupant string
	Target   Position
}

func (e *CollisionError) Error() string {
	if e.Rover == "" {
		return fmt.Sprintf("collision detected at %s with rover %s", e.Target, e.Occupant)
	}
	return fmt.Sprintf("rover %s: collision detected at %s with rover %s", e.Rover, e.Target, e.Occupant)
}

// UnknownInstructionError reports a command character outside L, R and M
type UnknownInstructionError struct {
	Instruction rune
	Rover       string
}

func (e *UnknownInstructionError) Error() string {
	if e.Rover == "" {
		return fmt.Sprintf("unknown rover instruction: %c", e.Instruction)
	}
	return fmt.Sprintf("rover %s: unknown rover instruction: %c", e.Rover, e.Instruction)
}
