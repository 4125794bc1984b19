package application

import (
	"context"
	"fmt"

	"vectra/internal/domain"
	"vectra/internal/ports"
)

// Catalog projects discovery snapshots into addressable resources. It
// holds no state of its own: every call runs a fresh discovery, so the
// listed set always reflects the most recent snapshot.
type Catalog struct {
	disc ports.Discoverer
}

// NewCatalog creates a resource catalog over the given discoverer.
func NewCatalog(disc ports.Discoverer) *Catalog {
	return &Catalog{disc: disc}
}

// ListResources returns one resource descriptor per index in a fresh
// snapshot, ordered by id.
func (c *Catalog) ListResources(ctx context.Context) ([]domain.Resource, error) {
	snap, err := c.disc.Discover(ctx)
	if err != nil {
		return nil, err
	}

	resources := make([]domain.Resource, 0, len(snap))
	for _, id := range snap.IDs() {
		idx := snap[id]
		resources = append(resources, domain.Resource{
			URI:         domain.ResourceURI(id),
			Name:        idx.Name,
			MIMEType:    "application/json",
			Description: fmt.Sprintf("Vector index %q at %s", idx.Name, idx.Path),
		})
	}
	return resources, nil
}

// ReadResource resolves a resource URI back to its index descriptor
// against a fresh snapshot. An id absent from the current snapshot
// fails with ErrNotFound; a previously listed id may legitimately fail
// this way if the backing index set changed in between.
func (c *Catalog) ReadResource(ctx context.Context, uri string) (domain.Index, error) {
	id, err := domain.ParseResourceURI(uri)
	if err != nil {
		return domain.Index{}, err
	}

	snap, err := c.disc.Discover(ctx)
	if err != nil {
		return domain.Index{}, err
	}

	idx, ok := snap[id]
	if !ok {
		return domain.Index{}, fmt.Errorf("index %q: %w", id, ErrNotFound)
	}
	return idx, nil
}
