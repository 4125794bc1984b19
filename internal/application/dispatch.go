package application

import (
	"context"
	"encoding/json"
	"fmt"

	"vectra/internal/ports"
)

// ToolHandler executes one tool call with already-validated arguments
// and returns the result text.
type ToolHandler func(ctx context.Context, args map[string]any) (string, error)

// Argument declares one required string argument of a tool.
type Argument struct {
	Name        string
	Description string
}

// Tool describes a named operation and its declared input shape.
type Tool struct {
	Name        string
	Description string
	Required    []Argument
}

type toolEntry struct {
	tool    Tool
	handler ToolHandler
}

// Table is an immutable name-to-handler dispatch table. It is built
// once via TableBuilder and never mutated afterwards, so lookups need
// no locking.
type Table struct {
	order   []string
	entries map[string]toolEntry
}

// TableBuilder accumulates tool registrations for a Table.
type TableBuilder struct {
	order   []string
	entries map[string]toolEntry
}

// NewTableBuilder creates an empty builder.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{entries: make(map[string]toolEntry)}
}

// Add registers a tool with its handler. Registering the same name
// twice replaces the handler but keeps the original position.
func (b *TableBuilder) Add(tool Tool, handler ToolHandler) *TableBuilder {
	if _, exists := b.entries[tool.Name]; !exists {
		b.order = append(b.order, tool.Name)
	}
	b.entries[tool.Name] = toolEntry{tool: tool, handler: handler}
	return b
}

// Build freezes the builder into a Table.
func (b *TableBuilder) Build() *Table {
	order := make([]string, len(b.order))
	copy(order, b.order)
	entries := make(map[string]toolEntry, len(b.entries))
	for name, e := range b.entries {
		entries[name] = e
	}
	return &Table{order: order, entries: entries}
}

// List returns the tool descriptors in registration order.
func (t *Table) List() []Tool {
	tools := make([]Tool, 0, len(t.order))
	for _, name := range t.order {
		tools = append(tools, t.entries[name].tool)
	}
	return tools
}

// Call validates args against the named tool's declared input shape and
// invokes its handler. An unregistered name fails with
// ErrUnknownOperation; a missing or non-string required argument fails
// with ErrInvalidArguments before the handler runs.
func (t *Table) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	entry, ok := t.entries[name]
	if !ok {
		return "", fmt.Errorf("tool %q: %w", name, ErrUnknownOperation)
	}

	for _, arg := range entry.tool.Required {
		raw, present := args[arg.Name]
		if !present {
			return "", &ArgumentError{Tool: name, Argument: arg.Name, Message: "is required"}
		}
		s, isString := raw.(string)
		if !isString {
			return "", &ArgumentError{Tool: name, Argument: arg.Name, Message: fmt.Sprintf("must be a string, got %T", raw)}
		}
		if s == "" {
			return "", &ArgumentError{Tool: name, Argument: arg.Name, Message: "must not be empty"}
		}
	}

	return entry.handler(ctx, args)
}

// NewToolTable builds the fixed vectra dispatch table: list_indexes,
// search_index, and ask_index.
func NewToolTable(disc ports.Discoverer, engine ports.Engine) *Table {
	return NewTableBuilder().
		Add(Tool{
			Name:        "list_indexes",
			Description: "List all known vector indexes with their ids and paths.",
		}, listIndexesHandler(disc)).
		Add(Tool{
			Name:        "search_index",
			Description: "Run a semantic search against one vector index.",
			Required: []Argument{
				{Name: "index_id", Description: "Id of the index to search"},
				{Name: "query", Description: "Search query"},
			},
		}, searchIndexHandler(disc, engine)).
		Add(Tool{
			Name:        "ask_index",
			Description: "Ask a question answered from the content of one vector index.",
			Required: []Argument{
				{Name: "index_id", Description: "Id of the index to ask"},
				{Name: "question", Description: "Question to answer"},
			},
		}, askIndexHandler(disc, engine)).
		Build()
}

func listIndexesHandler(disc ports.Discoverer) ToolHandler {
	return func(ctx context.Context, _ map[string]any) (string, error) {
		snap, err := disc.Discover(ctx)
		if err != nil {
			return "", err
		}
		if len(snap) == 0 {
			return "No indexes found.", nil
		}

		indexes := make([]any, 0, len(snap))
		for _, id := range snap.IDs() {
			indexes = append(indexes, snap[id])
		}
		out, err := json.MarshalIndent(indexes, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding index list: %w", err)
		}
		return string(out), nil
	}
}

// resolveIndex checks the id against a fresh snapshot so that callers
// get ErrNotFound instead of the engine being handed an unknown id.
func resolveIndex(ctx context.Context, disc ports.Discoverer, id string) error {
	snap, err := disc.Discover(ctx)
	if err != nil {
		return err
	}
	if _, ok := snap[id]; !ok {
		return fmt.Errorf("index %q: %w", id, ErrNotFound)
	}
	return nil
}

func searchIndexHandler(disc ports.Discoverer, engine ports.Engine) ToolHandler {
	return func(ctx context.Context, args map[string]any) (string, error) {
		indexID := args["index_id"].(string)
		query := args["query"].(string)

		if err := resolveIndex(ctx, disc, indexID); err != nil {
			return "", err
		}
		if !engine.Available() {
			return fmt.Sprintf("Search is not available: the indexer engine is not installed. Query %q against index %q was not run.", query, indexID), nil
		}
		return engine.Search(ctx, indexID, query)
	}
}

func askIndexHandler(disc ports.Discoverer, engine ports.Engine) ToolHandler {
	return func(ctx context.Context, args map[string]any) (string, error) {
		indexID := args["index_id"].(string)
		question := args["question"].(string)

		if err := resolveIndex(ctx, disc, indexID); err != nil {
			return "", err
		}
		if !engine.Available() {
			return fmt.Sprintf("Ask is not available: the indexer engine is not installed. Question %q against index %q was not answered.", question, indexID), nil
		}
		return engine.Ask(ctx, indexID, question)
	}
}
