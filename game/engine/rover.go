package engine

import (
	"errors"
	"fmt"
)

// Rover is a named agent bound to one plateau
type Rover struct {
	plateau     *Plateau
	name        string
	pos         Position
	orientation Orientation
}

// NewRover creates a rover without checking the plateau. Use Land to place a
// rover with boundary and collision checks.
func NewRover(plateau *Plateau, name string, x, y int, orientation Orientation) *Rover {
	return &Rover{
		plateau:     plateau,
		name:        name,
		pos:         Position{X: x, Y: y},
		orientation: orientation,
	}
}

// Land verifies the landing cell, creates the rover and records its occupancy
func Land(plateau *Plateau, name string, x, y int, orientation Orientation) (*Rover, error) {
	if err := plateau.VerifyTarget(x, y, nil); err != nil {
		return nil, err
	}

	r := NewRover(plateau, name, x, y, orientation)
	plateau.UpdateOccupancy(r, nil)
	return r, nil
}

// Plateau returns the plateau the rover is on
func (r *Rover) Plateau() *Plateau {
	return r.plateau
}

// Name returns the rover name
func (r *Rover) Name() string {
	return r.name
}

// Position returns the current position
func (r *Rover) Position() Position {
	return r.pos
}

// Orientation returns the current facing direction
func (r *Rover) Orientation() Orientation {
	return r.orientation
}

// TurnLeft rotates the rover counter-clockwise
func (r *Rover) TurnLeft() {
	r.orientation = r.orientation.Left()
}

// TurnRight rotates the rover clockwise
func (r *Rover) TurnRight() {
	r.orientation = r.orientation.Right()
}

// MoveForward advances one cell in the facing direction. On failure the
// position is unchanged and the error carries the rover name.
func (r *Rover) MoveForward() error {
	target, err := r.plateau.Step(r.pos, r.orientation)
	if err != nil {
		return r.annotate(err)
	}

	if err := r.plateau.VerifyTarget(target.X, target.Y, r); err != nil {
		return r.annotate(err)
	}

	r.pos = target
	return nil
}

// Execute applies a single instruction character
func (r *Rover) Execute(instruction rune) error {
	switch Instruction(instruction) {
	case TurnLeft:
		r.TurnLeft()
	case TurnRight:
		r.TurnRight()
	case MoveForward:
		return r.MoveForward()
	default:
		return &UnknownInstructionError{Instruction: instruction, Rover: r.name}
	}
	return nil
}

// ExecuteSequence applies commands left to right and stops at the first
// failure. Instructions already applied are kept. Plateau occupancy is
// synchronised once, from the position held before the sequence started.
func (r *Rover) ExecuteSequence(commands string) error {
	original := r.pos
	defer r.plateau.UpdateOccupancy(r, &original)

	for _, c := range commands {
		if err := r.Execute(c); err != nil {
			return err
		}
	}
	return nil
}

// Status reports the rover as "<name>:<x> <y> <orientation>"
func (r *Rover) Status() string {
	return fmt.Sprintf("%s:%d %d %s", r.name, r.pos.X, r.pos.Y, r.orientation)
}

// annotate attaches the rover name to plateau errors
func (r *Rover) annotate(err error) error {
	var boundary *BoundaryError
	if errors.As(err, &boundary) {
		boundary.Rover = r.name
		return boundary
	}

	var collision *CollisionError
	if errors.As(err, &collision) {
		collision.Rover = r.name
		return collision
	}

	return fmt.Errorf("rover %s: %w", r.name, err)
}
