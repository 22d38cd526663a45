package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wricardo/mcp-training/marsrover/game/parser"
	"github.com/wricardo/mcp-training/marsrover/game/service"
)

// Server serves mission tools over MCP
type Server struct {
	missions  service.MissionService
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server backed by the mission service
func NewServer(missions service.MissionService, version string) *Server {
	s := &Server{missions: missions}

	s.mcpServer = server.NewMCPServer(
		"Mars Rover Mission Simulator",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Mars Rover Mission Simulator - MCP Interface

Rovers land on a rectangular plateau and follow L/R/M commands.

AVAILABLE TOOLS:
- simulate: Run mission input and get every rover's final position
- validate: Check mission input and get the first failing line, if any
- input_format: Get the mission input format with an example

Every call is an independent mission. Send the whole mission, starting with
the plateau line, in a single call.`),
	)

	s.registerTools()
	return s
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	missionProperties := map[string]interface{}{
		"input": map[string]interface{}{
			"type":        "string",
			"description": "Mission input: plateau line followed by rover lines, newline separated",
		},
		"collisions": map[string]interface{}{
			"type":        "boolean",
			"description": "Reject moves onto a cell held by another rover (optional, server default otherwise)",
		},
	}

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "simulate",
		Description: "Run a rover mission and return each rover's final position as '<name>:<x> <y> <orientation>'",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: withProperty(missionProperties, "format", map[string]interface{}{
				"type":        "string",
				"description": "Result format: text (default) or json",
				"enum":        []string{"text", "json"},
			}),
			Required: []string{"input"},
		},
	}, s.handleSimulate)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "validate",
		Description: "Check a rover mission without reporting positions; returns the failing line and reason when invalid",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: missionProperties,
			Required:   []string{"input"},
		},
	}, s.handleValidate)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "input_format",
		Description: "Describe the mission input format with an example",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleInputFormat)
}

// MCPServer returns the underlying MCP server for serving
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio blocks serving MCP over stdin and stdout
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) handleSimulate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, format, err := missionRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report, err := s.missions.Simulate(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if format == "json" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode report: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}

	lines := report.Lines()
	if len(lines) == 0 {
		return mcp.NewToolResultText("No rovers landed.\n"), nil
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n") + "\n"), nil
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, _, err := missionRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatValidation(s.missions.Validate(ctx, req))), nil
}

func (s *Server) handleInputFormat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(parser.InputFormat), nil
}

// missionRequest reads the shared tool arguments
func missionRequest(request mcp.CallToolRequest) (service.MissionRequest, string, error) {
	args := request.GetArguments()

	input, ok := args["input"].(string)
	if !ok || strings.TrimSpace(input) == "" {
		return service.MissionRequest{}, "", fmt.Errorf("input is required")
	}

	req := service.MissionRequest{
		Source: "mcp",
		Input:  strings.NewReader(input),
	}
	if collisions, ok := args["collisions"].(bool); ok {
		req.Collisions = &collisions
	}

	format, _ := args["format"].(string)
	switch format {
	case "", "text":
		format = "text"
	case "json":
	default:
		return service.MissionRequest{}, "", fmt.Errorf("unknown format %q (valid: text, json)", format)
	}

	return req, format, nil
}

func formatValidation(result *service.ValidationResult) string {
	var b strings.Builder
	if result.Valid {
		b.WriteString("VALID\n")
	} else {
		b.WriteString("INVALID\n")
		if result.Line > 0 {
			fmt.Fprintf(&b, "Line %d: %s\n", result.Line, result.Error)
		} else {
			fmt.Fprintf(&b, "Error: %s\n", result.Error)
		}
	}
	fmt.Fprintf(&b, "Summary: %s\n", result.Summary())
	return b.String()
}

func withProperty(props map[string]interface{}, name string, schema map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(props)+1)
	for k, v := range props {
		merged[k] = v
	}
	merged[name] = schema
	return merged
}
