package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vectra/internal/application"
)

// registerTools projects the dispatch table onto the MCP tool surface.
// The table stays the single source of truth for names, input shapes,
// and validation; this layer only translates envelopes.
func (s *Server) registerTools() {
	for _, tool := range s.tools.List() {
		s.mcpServer.AddTool(toolDefinition(tool), s.toolHandler(tool.Name))
	}
}

func toolDefinition(tool application.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(tool.Description)}
	for _, arg := range tool.Required {
		opts = append(opts, mcp.WithString(arg.Name,
			mcp.Required(),
			mcp.Description(arg.Description),
		))
	}
	return mcp.NewTool(tool.Name, opts...)
}

// toolHandler routes one named tool through the dispatch table. Typed
// failures (unknown operation, invalid arguments, not found) become
// error results in a well-formed response envelope, never a dropped
// session.
func (s *Server) toolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := s.tools.Call(ctx, name, req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(result), nil
	}
}
