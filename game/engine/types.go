package engine

import (
	"fmt"
	"math"
	"strings"
)

// Orientation is the cardinal direction a rover faces
type Orientation int

// Orientations in clockwise order. Turning right moves one step forward in
// this order, turning left one step back.
const (
	East Orientation = iota
	South
	West
	North

	orientationCount = 4
)

var orientationLetters = [orientationCount]string{"E", "S", "W", "N"}

// unit vectors indexed by Orientation
var orientationDeltas = [orientationCount]Position{
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
}

// Right returns the orientation after a clockwise quarter turn
func (o Orientation) Right() Orientation {
	return (o + 1) % orientationCount
}

// Left returns the orientation after a counter-clockwise quarter turn
func (o Orientation) Left() Orientation {
	return (o - 1 + orientationCount) % orientationCount
}

// Delta returns the unit vector of a single forward move
func (o Orientation) Delta() Position {
	if !o.Valid() {
		return Position{}
	}
	return orientationDeltas[o]
}

// Valid reports whether o is one of the four cardinal directions
func (o Orientation) Valid() bool {
	return o >= 0 && o < orientationCount
}

// String returns the single-letter code used in input and reports
func (o Orientation) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationLetters[o]
}

// ParseOrientation converts a letter (N, E, S or W, any case) to an Orientation
func ParseOrientation(s string) (Orientation, error) {
	upper := strings.ToUpper(s)
	for i, letter := range orientationLetters {
		if letter == upper {
			return Orientation(i), nil
		}
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

// Position represents x,y coordinates on a plateau
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position shifted by d, clamped to the int range
func (p Position) Add(d Position) Position {
	return Position{X: addClamped(p.X, d.X), Y: addClamped(p.Y, d.Y)}
}

func addClamped(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}

// String formats the position the way landing errors report it
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Instruction is a single rover command character
type Instruction rune

const (
	TurnLeft    Instruction = 'L'
	TurnRight   Instruction = 'R'
	MoveForward Instruction = 'M'
)

// Edge names the plateau border a move would cross
type Edge string

const (
	LeftEdge  Edge = "left"
	RightEdge Edge = "right"
	LowerEdge Edge = "lower"
	UpperEdge Edge = "upper"
)
