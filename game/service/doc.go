// Package service provides the mission layer between the command-line and
// MCP front ends and the session state machine.
//
// The service package implements:
//   - MissionService, which runs one mission input as an isolated session
//   - Simulation reports with per-rover status
//   - Validation summaries that never surface a Go error for bad input
//
// Every call creates a fresh registry and session identified by a random
// UUID. The session ID is attached to the context logger so log records
// from one mission can be told apart from the next.
//
// Usage:
//
//	svc := service.NewMissionService(service.Options{Collisions: true})
//
//	report, err := svc.Simulate(ctx, service.MissionRequest{
//		Source: "mission.txt",
//		Input:  file,
//	})
//	if err != nil {
//		return err
//	}
//	for _, line := range report.Lines() {
//		fmt.Println(line)
//	}
//
//	result := svc.Validate(ctx, service.MissionRequest{Input: strings.NewReader(text)})
//	if !result.Valid {
//		fmt.Printf("line %d: %s\n", result.Line, result.Error)
//	}
package service
