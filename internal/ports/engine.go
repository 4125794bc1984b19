package ports

import "context"

// Engine is the external search/answer capability behind the
// search_index and ask_index tools. Its output is opaque text defined
// entirely by the external collaborator.
type Engine interface {
	// Search runs a semantic search for query against the given index.
	Search(ctx context.Context, indexID, query string) (string, error)

	// Ask runs retrieval-augmented answering of question against the
	// given index.
	Ask(ctx context.Context, indexID, question string) (string, error)

	// Available reports whether the engine command can be invoked.
	Available() bool
}
