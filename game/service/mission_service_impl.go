package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/wricardo/mcp-training/marsrover/game/engine"
	"github.com/wricardo/mcp-training/marsrover/game/session"
	"github.com/wricardo/mcp-training/marsrover/internal/ctxlog"
)

var ErrNoInput = errors.New("mission input is required")

// missionServiceImpl implements the MissionService interface
type missionServiceImpl struct {
	opts  Options
	newID func() string
}

// NewMissionService creates a new mission service instance
func NewMissionService(opts Options) MissionService {
	return &missionServiceImpl{
		opts:  opts,
		newID: uuid.NewString,
	}
}

// Simulate runs a mission and reports every rover's final state
func (s *missionServiceImpl) Simulate(ctx context.Context, req MissionRequest) (*MissionReport, error) {
	id := s.newID()
	sess, err := s.run(ctx, id, req)
	if err != nil {
		return nil, err
	}

	report := &MissionReport{
		SessionID: id,
		Source:    req.Source,
		Plateau:   plateauInfo(sess.Plateau()),
		Rovers:    roverStatuses(sess.Registry()),
		Stats:     missionStats(sess.Stats()),
	}
	return report, nil
}

// Validate runs a mission and captures the first failure, if any
func (s *missionServiceImpl) Validate(ctx context.Context, req MissionRequest) *ValidationResult {
	id := s.newID()
	sess, err := s.run(ctx, id, req)

	result := &ValidationResult{
		SessionID: id,
		Source:    req.Source,
		Valid:     err == nil,
	}
	if sess != nil {
		result.Rovers = sess.Registry().Len()
		result.Stats = missionStats(sess.Stats())
		if p := sess.Plateau(); p != nil {
			info := plateauInfo(p)
			result.Plateau = &info
		}
	}

	if err != nil {
		var lineErr *session.LineError
		if errors.As(err, &lineErr) {
			result.Line = lineErr.Line
			result.Error = lineErr.Err.Error()
		} else {
			result.Error = err.Error()
		}
	}

	return result
}

func (s *missionServiceImpl) run(ctx context.Context, id string, req MissionRequest) (*session.Session, error) {
	if req.Input == nil {
		return nil, ErrNoInput
	}

	collisions := s.opts.Collisions
	if req.Collisions != nil {
		collisions = *req.Collisions
	}

	logger := ctxlog.FromContext(ctx).With("session", id)
	if req.Source != "" {
		logger = logger.With("source", req.Source)
	}
	ctx = ctxlog.WithLogger(ctx, logger)

	sess := session.New(session.NewRegistry(), session.Options{Collisions: collisions})
	logger.Info("mission started", "collisions", collisions)

	if err := sess.Run(ctx, req.Input); err != nil {
		logger.Debug("mission failed", "error", err)
		return sess, err
	}

	stats := sess.Stats()
	logger.Info("mission finished",
		"rovers", sess.Registry().Len(),
		"landings", stats.Landings,
		"instructions", stats.Instructions)
	return sess, nil
}

func plateauInfo(p *engine.Plateau) PlateauInfo {
	return PlateauInfo{
		Name:       p.Name(),
		MaxX:       p.MaxX(),
		MaxY:       p.MaxY(),
		Collisions: p.CollisionDetection(),
	}
}

func roverStatuses(registry *session.Registry) []RoverStatus {
	rovers := registry.List()
	statuses := make([]RoverStatus, 0, len(rovers))
	for _, r := range rovers {
		pos := r.Position()
		statuses = append(statuses, RoverStatus{
			Name:        r.Name(),
			X:           pos.X,
			Y:           pos.Y,
			Orientation: r.Orientation().String(),
		})
	}
	return statuses
}

func missionStats(stats session.Stats) MissionStats {
	return MissionStats{
		Lines:        stats.Lines,
		Landings:     stats.Landings,
		Instructions: stats.Instructions,
	}
}
