package bridge

import "context"

// Typed wrappers over Send for every action the in-game responder
// understands. The bridge ships the arguments verbatim and hands the result
// back for the caller to interpret.

// Ping checks whether the game is running with DevTools enabled
func (c *Client) Ping(ctx context.Context) (*Result, error) {
	return c.SendTimeout(ctx, "ping", nil, PingTimeout)
}

// Screenshot captures a screenshot. An empty filename lets the responder
// pick its own.
func (c *Client) Screenshot(ctx context.Context, filename string) (*Result, error) {
	args := map[string]any{}
	if filename != "" {
		args["filename"] = filename
	}
	return c.Send(ctx, "screenshot", args)
}

// ValidateScene validates a single scene by resource path
func (c *Client) ValidateScene(ctx context.Context, scenePath string) (*Result, error) {
	return c.Send(ctx, "validate_scene", map[string]any{"path": scenePath})
}

// ValidateAllScenes validates every scene in the project. The sweep can take
// a while, so it gets a wider wait window.
func (c *Client) ValidateAllScenes(ctx context.Context) (*Result, error) {
	return c.SendTimeout(ctx, "validate_all_scenes", nil, ValidateAllTimeout)
}

// SceneTree returns the live node hierarchy up to depth levels
func (c *Client) SceneTree(ctx context.Context, depth int) (*Result, error) {
	return c.Send(ctx, "scene_tree", map[string]any{"depth": depth})
}

// Performance returns frame, memory, and object metrics
func (c *Client) Performance(ctx context.Context) (*Result, error) {
	return c.Send(ctx, "performance", nil)
}

// GetState reads a node's state. An empty nodePath asks for the current
// scene root.
func (c *Client) GetState(ctx context.Context, nodePath string) (*Result, error) {
	args := map[string]any{}
	if nodePath != "" {
		args["node_path"] = nodePath
	}
	return c.Send(ctx, "get_state", args)
}

// SetState sets a single property on a node. The raw value goes through
// CoerceValue so unquoted numbers arrive as numbers.
func (c *Client) SetState(ctx context.Context, nodePath, property, rawValue string) (*Result, error) {
	return c.Send(ctx, "set_state", map[string]any{
		"node_path": nodePath,
		"property":  property,
		"value":     CoerceValue(rawValue),
	})
}

// RunMethod calls a method on a node with the given arguments
func (c *Client) RunMethod(ctx context.Context, nodePath, method string, methodArgs []any) (*Result, error) {
	if methodArgs == nil {
		methodArgs = []any{}
	}
	return c.Send(ctx, "run_method", map[string]any{
		"node_path": nodePath,
		"method":    method,
		"args":      methodArgs,
	})
}

// Quit asks the game to exit with the given exit code. The game may be gone
// before it can answer, so callers should treat a timeout as normal here.
func (c *Client) Quit(ctx context.Context, exitCode int) (*Result, error) {
	return c.SendTimeout(ctx, "quit", map[string]any{"exit_code": exitCode}, PingTimeout)
}
