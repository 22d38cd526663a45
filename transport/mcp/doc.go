// Package mcp exposes the rover mission simulator as Model Context Protocol
// tools.
//
// The mcp package implements:
//   - An MCP server built on mark3labs/mcp-go
//   - Tool definitions backed by service.MissionService
//   - Stdio transport for local MCP clients
//
// MCP Tools:
//
//   - simulate: run mission input and return each rover's final position
//   - validate: run mission input and report whether it is valid
//   - input_format: describe the mission input format
//
// Each tool call runs an independent mission session; nothing carries over
// between calls.
//
// Usage:
//
//	svc := service.NewMissionService(service.Options{Collisions: true})
//	srv := mcp.NewServer(svc, version)
//	if err := srv.ServeStdio(); err != nil {
//		log.Fatal(err)
//	}
package mcp
