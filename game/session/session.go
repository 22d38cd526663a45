package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wricardo/mcp-training/marsrover/game/engine"
	"github.com/wricardo/mcp-training/marsrover/game/parser"
	"github.com/wricardo/mcp-training/marsrover/internal/ctxlog"
)

var (
	ErrEmptyInput      = errors.New("input is empty")
	ErrSessionFailed   = errors.New("session failed")
	ErrNotFinished     = errors.New("session has not finished reading input")
	ErrSessionFinished = errors.New("session already finished")
)

// maxLineSize bounds a single input line; long instruction strings are legal
const maxLineSize = 1024 * 1024

// State is the position of a session in its input lifecycle
type State int

const (
	StateAwaitPlateau State = iota
	StateAwaitRovers
	StateReported
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateAwaitPlateau:
		return "await_plateau"
	case StateAwaitRovers:
		return "await_rovers"
	case StateReported:
		return "reported"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// LineError ties an input failure to its 1-based line number
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("invalid input on line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Options controls how a session builds its plateau
type Options struct {
	Collisions bool
}

// Stats counts what a session did
type Stats struct {
	Lines        int
	Landings     int
	Instructions int
}

// Session consumes mission input one line at a time
type Session struct {
	registry *Registry
	opts     Options

	state   State
	plateau *engine.Plateau
	parser  *parser.RoverParser
	stats   Stats
}

// New creates a session that registers rovers in the given registry
func New(registry *Registry, opts Options) *Session {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Session{
		registry: registry,
		opts:     opts,
		state:    StateAwaitPlateau,
	}
}

// State returns the current lifecycle state
func (s *Session) State() State {
	return s.state
}

// Plateau returns the plateau, or nil before the first line
func (s *Session) Plateau() *engine.Plateau {
	return s.plateau
}

// Registry returns the session's rover registry
func (s *Session) Registry() *Registry {
	return s.registry
}

// Stats returns counters for the lines processed so far
func (s *Session) Stats() Stats {
	return s.stats
}

// Feed processes the next input line
func (s *Session) Feed(ctx context.Context, line string) error {
	switch s.state {
	case StateFailed:
		return ErrSessionFailed
	case StateReported:
		return ErrSessionFinished
	}

	s.stats.Lines++
	lineNo := s.stats.Lines
	logger := ctxlog.FromContext(ctx)

	if s.state == StateAwaitPlateau {
		plateau, err := parser.ParsePlateau(line, s.plateauOptions()...)
		if err != nil {
			return s.fail(lineNo, err)
		}
		s.plateau = plateau
		s.parser = parser.NewRoverParser(plateau, s.registry)
		s.state = StateAwaitRovers
		logger.Debug("plateau defined",
			"line", lineNo,
			"plateau", plateau.Name(),
			"max_x", plateau.MaxX(),
			"max_y", plateau.MaxY(),
			"collisions", plateau.CollisionDetection())
		return nil
	}

	action, err := s.parser.ParseLine(line)
	if err != nil {
		return s.fail(lineNo, err)
	}

	switch action.Kind {
	case parser.KindLanding:
		s.stats.Landings++
		logger.Debug("rover landed",
			"line", lineNo,
			"rover", action.Rover.Name(),
			"position", action.Rover.Position().String(),
			"orientation", action.Rover.Orientation().String())
	case parser.KindInstructions:
		s.stats.Instructions += action.Instructions
		logger.Debug("rover moved",
			"line", lineNo,
			"rover", action.Rover.Name(),
			"instructions", action.Instructions,
			"status", action.Rover.Status())
	}
	return nil
}

// Finish marks the end of input. A session that never saw a plateau fails.
func (s *Session) Finish() error {
	switch s.state {
	case StateFailed:
		return ErrSessionFailed
	case StateReported:
		return nil
	case StateAwaitPlateau:
		return s.fail(1, engine.WrapParseError(ErrEmptyInput, "invalid configuration format"))
	}
	s.state = StateReported
	return nil
}

// Run feeds every line from input and finishes the session
func (s *Session) Run(ctx context.Context, input io.Reader) error {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			s.state = StateFailed
			return err
		}
		if err := s.Feed(ctx, strings.TrimSuffix(scanner.Text(), "\r")); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return s.fail(s.stats.Lines+1, fmt.Errorf("read input: %w", err))
	}

	return s.Finish()
}

// Report returns one status line per rover in landing order. It is only
// available once the session has finished without error.
func (s *Session) Report() ([]string, error) {
	switch s.state {
	case StateReported:
		return s.registry.Statuses(), nil
	case StateFailed:
		return nil, ErrSessionFailed
	}
	return nil, ErrNotFinished
}

func (s *Session) plateauOptions() []engine.PlateauOption {
	if s.opts.Collisions {
		return []engine.PlateauOption{engine.WithCollisionDetection()}
	}
	return nil
}

func (s *Session) fail(line int, err error) error {
	s.state = StateFailed
	return &LineError{Line: line, Err: err}
}
