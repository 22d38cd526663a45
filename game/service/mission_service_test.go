package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/mcp-training/marsrover/game/engine"
	"github.com/wricardo/mcp-training/marsrover/game/service"
	"github.com/wricardo/mcp-training/marsrover/game/session"
	"github.com/wricardo/mcp-training/marsrover/internal/ctxlog"
)

const classicMission = `Plateau:5 5
Rover1 Landing:1 2 N
Rover1 Instructions:LMLMLMLMM
Rover2 Landing:3 3 E
Rover2 Instructions:MMRMMRMRRM
`

// Two rovers driving into the same cell; only fails when collisions are on.
const crashMission = `Plateau:5 5
A Landing:1 1 E
B Landing:3 1 W
A Instructions:MM
`

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), ctxlog.Discard())
}

func request(input string) service.MissionRequest {
	return service.MissionRequest{Source: "test", Input: strings.NewReader(input)}
}

func TestMissionService_Simulate(t *testing.T) {
	svc := service.NewMissionService(service.Options{Collisions: true})

	report, err := svc.Simulate(testContext(), request(classicMission))
	require.NoError(t, err)

	want := []string{"Rover1:1 3 N", "Rover2:5 1 E"}
	if diff := cmp.Diff(want, report.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}

	assert.NotEmpty(t, report.SessionID)
	assert.Equal(t, "test", report.Source)
	assert.Equal(t, service.PlateauInfo{Name: "Plateau", MaxX: 5, MaxY: 5, Collisions: true}, report.Plateau)
	assert.Equal(t, service.RoverStatus{Name: "Rover2", X: 5, Y: 1, Orientation: "E"}, report.Rovers[1])
	assert.Equal(t, service.MissionStats{Lines: 5, Landings: 2, Instructions: 19}, report.Stats)
}

func TestMissionService_SimulateIsolatesSessions(t *testing.T) {
	svc := service.NewMissionService(service.Options{Collisions: true})
	ctx := testContext()

	first, err := svc.Simulate(ctx, request(classicMission))
	require.NoError(t, err)

	// Same rover names again: a shared registry would reject the landings.
	second, err := svc.Simulate(ctx, request(classicMission))
	require.NoError(t, err)

	assert.Equal(t, first.Lines(), second.Lines())
	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestMissionService_SimulateFailure(t *testing.T) {
	svc := service.NewMissionService(service.Options{Collisions: true})

	report, err := svc.Simulate(testContext(), request("Plateau:5 5\nRover1 Landing:100 1 N\n"))
	require.Error(t, err)
	assert.Nil(t, report)

	var lineErr *session.LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.Line)

	var boundary *engine.BoundaryError
	assert.True(t, errors.As(err, &boundary))
}

func TestMissionService_CollisionOverride(t *testing.T) {
	svc := service.NewMissionService(service.Options{Collisions: true})
	ctx := testContext()

	_, err := svc.Simulate(ctx, request(crashMission))
	var collision *engine.CollisionError
	require.ErrorAs(t, err, &collision)

	off := false
	req := request(crashMission)
	req.Collisions = &off
	report, err := svc.Simulate(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"A:3 1 E", "B:3 1 W"}, report.Lines())
	assert.False(t, report.Plateau.Collisions)
}

func TestMissionService_NoInput(t *testing.T) {
	svc := service.NewMissionService(service.Options{})

	_, err := svc.Simulate(testContext(), service.MissionRequest{})
	assert.ErrorIs(t, err, service.ErrNoInput)

	result := svc.Validate(testContext(), service.MissionRequest{})
	assert.False(t, result.Valid)
	assert.Equal(t, service.ErrNoInput.Error(), result.Error)
	assert.Nil(t, result.Plateau)
}

func TestMissionService_ValidateValid(t *testing.T) {
	svc := service.NewMissionService(service.Options{Collisions: true})

	result := svc.Validate(testContext(), request(classicMission))
	assert.True(t, result.Valid)
	assert.Zero(t, result.Line)
	assert.Empty(t, result.Error)
	assert.Equal(t, 2, result.Rovers)
	require.NotNil(t, result.Plateau)
	assert.Equal(t, "Plateau (0,0)-(5,5), 2 rovers landed, 19 instructions executed", result.Summary())
}

func TestMissionService_ValidateInvalid(t *testing.T) {
	svc := service.NewMissionService(service.Options{Collisions: true})

	tests := []struct {
		name    string
		input   string
		line    int
		message string
		rovers  int
	}{
		{
			name:    "empty input",
			input:   "",
			line:    1,
			message: "invalid configuration format",
		},
		{
			name:    "bad plateau",
			input:   "Plateau:5 x\n",
			line:    1,
			message: "coordinates must be integers",
		},
		{
			name:    "unknown type",
			input:   "Plateau:5 5\nRover1 Launch:1 1 N\n",
			line:    2,
			message: "unknown rover input type: Launch",
		},
		{
			name:    "unknown instruction",
			input:   "Plateau:5 5\nRover1 Landing:1 1 N\nRover1 Instructions:MX\n",
			line:    3,
			message: "rover Rover1: unknown rover instruction: X",
			rovers:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Validate(testContext(), request(tt.input))
			assert.False(t, result.Valid)
			assert.Equal(t, tt.line, result.Line)
			assert.Equal(t, tt.message, result.Error)
			assert.Equal(t, tt.rovers, result.Rovers)
		})
	}
}

func TestValidationResult_Summary(t *testing.T) {
	result := &service.ValidationResult{Rovers: 1, Stats: service.MissionStats{Instructions: 1}}
	assert.Equal(t, "1 rover landed, 1 instruction executed", result.Summary())
}

func TestRoverStatus_String(t *testing.T) {
	status := service.RoverStatus{Name: "Rover1", X: 1, Y: 3, Orientation: "N"}
	assert.Equal(t, "Rover1:1 3 N", status.String())
}
