package service

import (
	"context"
	"io"
)

// MissionService defines all mission operations
type MissionService interface {
	// Simulate runs the input and returns the final rover report
	Simulate(ctx context.Context, req MissionRequest) (*MissionReport, error)

	// Validate runs the input and summarises the outcome without failing
	Validate(ctx context.Context, req MissionRequest) *ValidationResult
}

// Options are the service-wide session defaults
type Options struct {
	Collisions bool
}

// MissionRequest is one mission input
type MissionRequest struct {
	Source string    // label for logs and results, e.g. a file name
	Input  io.Reader // newline separated mission lines
	// Collisions overrides Options.Collisions when set
	Collisions *bool
}
