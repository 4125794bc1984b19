// Package mcp exposes the vectra catalogs over the Model Context
// Protocol. This is the composition root: it creates the concrete
// adapters, wires them into the application layer, and registers every
// tool, resource, and prompt on one MCP server that owns the stdio
// channel for the lifetime of the process.
package mcp

import (
	"context"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"vectra/internal/adapters/enginecli"
	"vectra/internal/application"
	"vectra/internal/config"
)

const instructions = "This server exposes externally-managed vector indexes.\n\n" +
	"Start with list_indexes() to see what is available, then use\n" +
	"search_index(index_id, query) for semantic search or\n" +
	"ask_index(index_id, question) for retrieval-augmented answers.\n" +
	"Each index is also readable as a vector-index:///<id> resource.\n" +
	"The index set is re-discovered on every call, so listings always\n" +
	"reflect the current state of the external indexer."

// Server wraps the MCP server with the vectra catalogs.
type Server struct {
	mcpServer *server.MCPServer
	catalog   *application.Catalog
	tools     *application.Table
	prompts   *application.PromptCatalog
	logger    *zap.Logger

	// advertised tracks the concrete resource URIs currently registered,
	// so each resources/list can be reconciled against a fresh snapshot.
	mu         sync.Mutex
	advertised map[string]bool
}

// New builds the fully wired vectra MCP server.
func New(cfg config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	disc := enginecli.NewDiscoverer(cfg.Indexer, cfg.Timeout, logger)
	engine := enginecli.NewEngine(cfg.Indexer, cfg.Timeout, logger)

	s := &Server{
		catalog:    application.NewCatalog(disc),
		tools:      application.NewToolTable(disc, engine),
		prompts:    application.NewPromptCatalog(disc),
		logger:     logger,
		advertised: make(map[string]bool),
	}

	// Concrete resources are projections of the current discovery
	// snapshot, so the advertised set is refreshed right before each
	// resources/list is answered.
	hooks := &server.Hooks{}
	hooks.AddBeforeListResources(func(ctx context.Context, _ any, _ *mcp.ListResourcesRequest) {
		s.refreshResources(ctx)
	})

	s.mcpServer = server.NewMCPServer(
		"vectra",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
		server.WithHooks(hooks),
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio runs the server on the stdio duplex channel until the
// channel closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
