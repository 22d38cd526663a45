package parser

import (
	"strconv"
	"strings"

	"github.com/wricardo/mcp-training/marsrover/game/engine"
)

// ParsePlateau parses "<name>:<maxX> <maxY>" into a plateau
func ParsePlateau(line string, opts ...engine.PlateauOption) (*engine.Plateau, error) {
	parts := strings.Split(line, ":")
	if len(parts) != 2 {
		return nil, engine.NewParseError("invalid configuration format")
	}
	name := strings.TrimSpace(parts[0])

	coordinates := strings.Split(strings.TrimSpace(parts[1]), " ")
	if len(coordinates) != 2 {
		return nil, engine.NewParseError("invalid coordinates format")
	}

	maxX, errX := strconv.Atoi(coordinates[0])
	maxY, errY := strconv.Atoi(coordinates[1])
	if errX != nil || errY != nil {
		return nil, engine.NewParseError("coordinates must be integers")
	}

	if maxX < 0 || maxY < 0 {
		return nil, engine.NewParseError("coordinates cannot be negative; origin is (0,0)")
	}

	return engine.NewPlateau(name, maxX, maxY, opts...)
}
