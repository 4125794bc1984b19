package ports

import (
	"context"

	"vectra/internal/domain"
)

// Discoverer produces a fresh snapshot of the known vector indexes.
// Discovery failure is not an error condition: an unavailable or
// unparsable source degrades to an empty snapshot. The only error a
// Discoverer may return is a timeout on the external command.
type Discoverer interface {
	Discover(ctx context.Context) (domain.Snapshot, error)
}
