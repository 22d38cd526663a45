package parser

import (
	"strconv"
	"strings"

	"github.com/wricardo/mcp-training/marsrover/game/engine"
)

// Rover line types, compared upper-cased
const (
	KindLanding      = "LANDING"
	KindInstructions = "INSTRUCTIONS"
)

// Registry is the rover lookup the parser reads and writes
type Registry interface {
	Get(name string) (*engine.Rover, bool)
	Register(rover *engine.Rover) error
}

// Header is the split form of "<name> <TYPE>:<details>"
type Header struct {
	Rover   string
	Kind    string // upper-cased TYPE
	RawKind string
	Details string
}

// ParseHeader splits a rover line into name, type and details
func ParseHeader(line string) (Header, error) {
	parts := strings.Split(line, ":")
	if len(parts) != 2 {
		return Header{}, engine.NewParseError("invalid rover input")
	}

	fields := strings.Split(strings.TrimSpace(parts[0]), " ")
	if len(fields) != 2 {
		return Header{}, engine.NewParseError("invalid rover input")
	}

	return Header{
		Rover:   fields[0],
		Kind:    strings.ToUpper(fields[1]),
		RawKind: fields[1],
		Details: strings.TrimSpace(parts[1]),
	}, nil
}

// Action describes what a rover line did, for logging and summaries
type Action struct {
	Kind         string
	Rover        *engine.Rover
	Instructions int
}

// RoverParser applies rover lines to one plateau and registry
type RoverParser struct {
	plateau  *engine.Plateau
	registry Registry
}

// NewRoverParser creates a parser bound to a plateau and registry
func NewRoverParser(plateau *engine.Plateau, registry Registry) *RoverParser {
	return &RoverParser{
		plateau:  plateau,
		registry: registry,
	}
}

// ParseLine validates a rover line and applies it
func (p *RoverParser) ParseLine(line string) (Action, error) {
	header, err := ParseHeader(line)
	if err != nil {
		return Action{}, err
	}

	switch header.Kind {
	case KindLanding:
		return p.land(header)
	case KindInstructions:
		return p.instruct(header)
	default:
		return Action{}, engine.NewParseError("unknown rover input type: %s", header.RawKind)
	}
}

// land handles "<name> LANDING:<x> <y> <orientation>"
func (p *RoverParser) land(h Header) (Action, error) {
	fields := strings.Split(h.Details, " ")
	if len(fields) != 3 {
		return Action{}, engine.NewParseError("invalid landing input")
	}

	if _, exists := p.registry.Get(h.Rover); exists {
		return Action{}, engine.NewParseError("rover %s already landed", h.Rover)
	}

	x, errX := strconv.Atoi(fields[0])
	y, errY := strconv.Atoi(fields[1])
	if errX != nil || errY != nil {
		return Action{}, engine.NewParseError("invalid landing coordinates: %s", h.Details)
	}

	orientation, err := engine.ParseOrientation(fields[2])
	if err != nil {
		return Action{}, engine.NewParseError("invalid orientation: %s", fields[2])
	}

	rover, err := engine.Land(p.plateau, h.Rover, x, y, orientation)
	if err != nil {
		return Action{}, engine.WrapParseError(err, "invalid landing location: %s", engine.Position{X: x, Y: y})
	}

	if err := p.registry.Register(rover); err != nil {
		return Action{}, err
	}

	return Action{Kind: KindLanding, Rover: rover}, nil
}

// instruct handles "<name> INSTRUCTIONS:<commands>"
func (p *RoverParser) instruct(h Header) (Action, error) {
	rover, exists := p.registry.Get(h.Rover)
	if !exists {
		return Action{}, engine.NewParseError("rover %s does not exist", h.Rover)
	}

	action := Action{Kind: KindInstructions, Rover: rover, Instructions: len([]rune(h.Details))}
	if err := rover.ExecuteSequence(h.Details); err != nil {
		return action, err
	}

	return action, nil
}
