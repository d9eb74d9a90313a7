package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aki/gdctl/internal/core/bridge"
	"github.com/aki/gdctl/internal/core/devlog"
	"github.com/aki/gdctl/internal/core/sequence"
)

// registerTools registers every game tool
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("godot_ping",
		mcp.WithDescription("Check whether the game is running with DevTools enabled"),
	), s.handlePing)

	s.mcpServer.AddTool(mcp.NewTool("godot_screenshot",
		mcp.WithDescription("Capture a screenshot of the running game"),
		mcp.WithString("filename",
			mcp.Description("Output filename (optional)"),
		),
	), s.handleScreenshot)

	s.mcpServer.AddTool(mcp.NewTool("godot_scene_tree",
		mcp.WithDescription("Get the live node hierarchy"),
		mcp.WithNumber("depth",
			mcp.Description("Maximum tree depth (default 10)"),
		),
	), s.handleSceneTree)

	s.mcpServer.AddTool(mcp.NewTool("godot_performance",
		mcp.WithDescription("Get frame, memory, and object metrics"),
	), s.handlePerformance)

	s.mcpServer.AddTool(mcp.NewTool("godot_get_state",
		mcp.WithDescription("Read a node's state"),
		mcp.WithString("node_path",
			mcp.Description("Node path, e.g. /root/Game/Player (optional)"),
		),
	), s.handleGetState)

	s.mcpServer.AddTool(mcp.NewTool("godot_set_state",
		mcp.WithDescription("Set a property on a node"),
		mcp.WithString("node_path",
			mcp.Description("Node path"),
			mcp.Required(),
		),
		mcp.WithString("property",
			mcp.Description("Property name"),
			mcp.Required(),
		),
		mcp.WithString("value",
			mcp.Description("Property value; JSON, numeric, or plain string"),
			mcp.Required(),
		),
	), s.handleSetState)

	s.mcpServer.AddTool(mcp.NewTool("godot_run_method",
		mcp.WithDescription("Call a method on a node"),
		mcp.WithString("node_path",
			mcp.Description("Node path"),
			mcp.Required(),
		),
		mcp.WithString("method",
			mcp.Description("Method name"),
			mcp.Required(),
		),
		mcp.WithString("args",
			mcp.Description("Method arguments as a JSON array (optional)"),
		),
	), s.handleRunMethod)

	s.mcpServer.AddTool(mcp.NewTool("godot_input_tap",
		mcp.WithDescription("Press and release an input action"),
		mcp.WithString("action",
			mcp.Description("Action name, e.g. jump"),
			mcp.Required(),
		),
		mcp.WithNumber("hold_seconds",
			mcp.Description("Hold duration before release (optional)"),
		),
	), s.handleInputTap)

	s.mcpServer.AddTool(mcp.NewTool("godot_input_sequence",
		mcp.WithDescription("Run an input sequence. Returns once the sequence is accepted; completion appears in the logs later"),
		mcp.WithString("steps",
			mcp.Description("Sequence steps as a JSON array"),
			mcp.Required(),
		),
		mcp.WithNumber("timeout_seconds",
			mcp.Description("Sequence execution timeout (optional)"),
		),
	), s.handleInputSequence)

	s.mcpServer.AddTool(mcp.NewTool("godot_logs",
		mcp.WithDescription("Read the DevTools log stream"),
		mcp.WithString("category",
			mcp.Description("Filter by category (optional)"),
		),
		mcp.WithNumber("tail",
			mcp.Description("Only the last N entries (optional)"),
		),
	), s.handleLogs)
}

// Tool handlers

func (s *Server) handlePing(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.toolResult(s.client.Ping(ctx))
}

func (s *Server) handleScreenshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	filename, _ := args["filename"].(string)
	return s.toolResult(s.client.Screenshot(ctx, filename))
}

func (s *Server) handleSceneTree(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	depth := 10
	if d, ok := args["depth"].(float64); ok && d > 0 {
		depth = int(d)
	}
	return s.toolResult(s.client.SceneTree(ctx, depth))
}

func (s *Server) handlePerformance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.toolResult(s.client.Performance(ctx))
}

func (s *Server) handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	nodePath, _ := args["node_path"].(string)
	return s.toolResult(s.client.GetState(ctx, nodePath))
}

func (s *Server) handleSetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	nodePath, ok := args["node_path"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid or missing node_path argument")
	}
	property, ok := args["property"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid or missing property argument")
	}
	value, ok := args["value"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid or missing value argument")
	}

	return s.toolResult(s.client.SetState(ctx, nodePath, property, value))
}

func (s *Server) handleRunMethod(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	nodePath, ok := args["node_path"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid or missing node_path argument")
	}
	method, ok := args["method"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid or missing method argument")
	}

	var methodArgs []any
	if raw, ok := args["args"].(string); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &methodArgs); err != nil {
			return nil, fmt.Errorf("args must be a JSON array: %w", err)
		}
	}

	return s.toolResult(s.client.RunMethod(ctx, nodePath, method, methodArgs))
}

func (s *Server) handleInputTap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	action, ok := args["action"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid or missing action argument")
	}
	hold, _ := args["hold_seconds"].(float64)

	return s.toolResult(s.client.InputTap(ctx, action, hold, -1))
}

func (s *Server) handleInputSequence(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	raw, ok := args["steps"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid or missing steps argument")
	}
	var steps []sequence.Step
	if err := json.Unmarshal([]byte(raw), &steps); err != nil {
		return nil, fmt.Errorf("steps must be a JSON array: %w", err)
	}

	seq := &sequence.Sequence{Steps: steps}
	if err := seq.Validate(); err != nil {
		return nil, err
	}

	var timeout time.Duration
	if seconds, ok := args["timeout_seconds"].(float64); ok && seconds > 0 {
		timeout = time.Duration(seconds * float64(time.Second))
	}

	return s.toolResult(s.client.StartSequence(ctx, seq, timeout))
}

func (s *Server) handleLogs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	opts := devlog.Options{}
	if category, ok := args["category"].(string); ok {
		opts.Category = category
	}
	if tail, ok := args["tail"].(float64); ok && tail > 0 {
		opts.Tail = int(tail)
	}

	entries, err := devlog.Read(s.mb.LogPath(), opts)
	if err != nil {
		return nil, err
	}

	return textResult(entries)
}

// toolResult converts a bridge call outcome into an MCP tool result.
// Application failures become tool errors so the agent sees the message.
func (s *Server) toolResult(result *bridge.Result, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("%s", result.Message)
	}
	return textResult(result.Data)
}

func textResult(data any) (*mcp.CallToolResult, error) {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: string(encoded),
			},
		},
	}, nil
}
