package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"vectra/internal/domain"
)

// registerResources adds the index resource template. Concrete
// resources come and go with the discovery snapshot; the template is
// the stable read surface for any vector-index:///<id> URI.
func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			domain.URIScheme+":///{id}",
			"Vector index",
			mcp.WithTemplateDescription("Descriptor of one externally-managed vector index"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleReadResource,
	)
}

// refreshResources reconciles the registered concrete resources with a
// fresh discovery snapshot. A discovery failure leaves the previously
// advertised set alone rather than flashing an empty listing.
func (s *Server) refreshResources(ctx context.Context) {
	resources, err := s.catalog.ListResources(ctx)
	if err != nil {
		s.logger.Warn("resource refresh skipped", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := make(map[string]bool, len(resources))
	for _, res := range resources {
		current[res.URI] = true
		if s.advertised[res.URI] {
			continue
		}
		s.mcpServer.AddResource(
			mcp.NewResource(res.URI, res.Name,
				mcp.WithResourceDescription(res.Description),
				mcp.WithMIMEType(res.MIMEType),
			),
			s.handleReadResource,
		)
	}

	for uri := range s.advertised {
		if !current[uri] {
			s.mcpServer.RemoveResource(uri)
		}
	}
	s.advertised = current
}

// handleReadResource serves reads for both concrete resources and the
// template. The id is resolved against a fresh snapshot, so a stale URI
// fails with a not-found error rather than returning stale data.
func (s *Server) handleReadResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	idx, err := s.catalog.ReadResource(ctx, request.Params.URI)
	if err != nil {
		return nil, err
	}

	payload, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding index %q: %w", idx.ID, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(payload),
		},
	}, nil
}
