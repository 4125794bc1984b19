package application

import (
	"context"
	"fmt"
	"strings"

	"vectra/internal/ports"
)

// Prompt describes a named prompt template.
type Prompt struct {
	Name        string
	Description string
}

type promptEntry struct {
	prompt Prompt
	render func(ctx context.Context) (string, error)
}

// PromptCatalog is the fixed registry of prompt templates. The set is
// immutable after construction; rendering is a pure function of the
// discovery snapshot taken at render time.
type PromptCatalog struct {
	order   []string
	entries map[string]promptEntry
}

// NewPromptCatalog builds the vectra prompt registry.
func NewPromptCatalog(disc ports.Discoverer) *PromptCatalog {
	c := &PromptCatalog{entries: make(map[string]promptEntry)}
	c.add(Prompt{
		Name:        "summarize_index",
		Description: "Instruct the model to summarize the currently known vector indexes.",
	}, func(ctx context.Context) (string, error) {
		return renderSummarize(ctx, disc)
	})
	return c
}

func (c *PromptCatalog) add(p Prompt, render func(ctx context.Context) (string, error)) {
	if _, exists := c.entries[p.Name]; !exists {
		c.order = append(c.order, p.Name)
	}
	c.entries[p.Name] = promptEntry{prompt: p, render: render}
}

// List returns the prompt descriptors in registration order.
func (c *PromptCatalog) List() []Prompt {
	prompts := make([]Prompt, 0, len(c.order))
	for _, name := range c.order {
		prompts = append(prompts, c.entries[name].prompt)
	}
	return prompts
}

// Render produces the instructional message for the named prompt from a
// fresh discovery snapshot. Unknown names fail with ErrUnknownOperation.
func (c *PromptCatalog) Render(ctx context.Context, name string) (string, error) {
	entry, ok := c.entries[name]
	if !ok {
		return "", fmt.Errorf("prompt %q: %w", name, ErrUnknownOperation)
	}
	return entry.render(ctx)
}

func renderSummarize(ctx context.Context, disc ports.Discoverer) (string, error) {
	snap, err := disc.Discover(ctx)
	if err != nil {
		return "", err
	}

	if len(snap) == 0 {
		return "No vector indexes are currently known. Tell the user that nothing is indexed yet.", nil
	}

	var sb strings.Builder
	sb.WriteString("Summarize the following vector indexes for the user. For each one, describe what its name and path suggest it contains:\n\n")
	for _, id := range snap.IDs() {
		idx := snap[id]
		fmt.Fprintf(&sb, "- %s  %s  %s\n", idx.ID, idx.Name, idx.Path)
	}
	return sb.String(), nil
}
