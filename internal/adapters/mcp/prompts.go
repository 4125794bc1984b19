package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vectra/internal/application"
)

// registerPrompts projects the prompt catalog onto the MCP prompt
// surface.
func (s *Server) registerPrompts() {
	for _, prompt := range s.prompts.List() {
		s.mcpServer.AddPrompt(
			mcp.NewPrompt(prompt.Name, mcp.WithPromptDescription(prompt.Description)),
			s.promptHandler(prompt),
		)
	}
}

func (s *Server) promptHandler(prompt application.Prompt) server.PromptHandlerFunc {
	return func(ctx context.Context, _ mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		text, err := s.prompts.Render(ctx, prompt.Name)
		if err != nil {
			return nil, err
		}
		return mcp.NewGetPromptResult(prompt.Description, []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		}), nil
	}
}
