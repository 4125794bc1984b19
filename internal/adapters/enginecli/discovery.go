// Package enginecli adapts the external indexer command to the vectra
// ports. The indexer is treated as a black box: discovery shells out to
// it per call and normalizes whatever it prints, and search/ask pass
// its output through untouched.
package enginecli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"vectra/internal/application"
	"vectra/internal/domain"
)

// Discoverer lists known indexes by invoking the external indexer
// command. Each call spawns a fresh process; nothing is cached.
type Discoverer struct {
	command string
	timeout time.Duration
	logger  *zap.Logger
}

// NewDiscoverer creates a discoverer for the given indexer command.
func NewDiscoverer(command string, timeout time.Duration, logger *zap.Logger) *Discoverer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Discoverer{command: command, timeout: timeout, logger: logger}
}

// Discover returns a fresh snapshot of the known indexes. The
// structured query (`list --json`) is attempted first; if it fails or
// its output does not parse, the plain line-oriented query (`list`) is
// tried. If both fail the snapshot is empty: discovery failure is not
// an error condition, it degrades to "no indexes known". The only
// returned error is ErrDiscoveryTimeout when the command outlives the
// bounded wait.
func (d *Discoverer) Discover(ctx context.Context) (domain.Snapshot, error) {
	output, err := d.run(ctx, "list", "--json")
	if err == nil {
		snap, parseErr := parseStructured(output)
		if parseErr == nil {
			return snap, nil
		}
		d.logger.Debug("structured discovery output unparsable, falling back",
			zap.Error(parseErr))
	} else {
		if errors.Is(err, application.ErrDiscoveryTimeout) {
			return nil, err
		}
		d.logger.Debug("structured discovery failed, falling back", zap.Error(err))
	}

	output, err = d.run(ctx, "list")
	if err != nil {
		if errors.Is(err, application.ErrDiscoveryTimeout) {
			return nil, err
		}
		d.logger.Debug("line-oriented discovery failed", zap.Error(err))
		return domain.Snapshot{}, nil
	}
	return parseLines(output), nil
}

func (d *Discoverer) run(ctx context.Context, args ...string) ([]byte, error) {
	runCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, d.command, args...)
	output, err := cmd.Output()
	if err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%s %s: %w", d.command, strings.Join(args, " "), application.ErrDiscoveryTimeout)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%s %s: %s", d.command, strings.Join(args, " "), strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("%s %s: %w", d.command, strings.Join(args, " "), err)
	}
	return output, nil
}

// indexJSON is one entry of the structured discovery output.
type indexJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// parseStructured reads the structured discovery output: either a JSON
// array of index objects or a stream of one object per line. Entries
// are keyed by id, falling back to name when the source omits the id;
// a duplicate key overwrites the earlier entry.
func parseStructured(output []byte) (domain.Snapshot, error) {
	trimmed := bytes.TrimSpace(output)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty output")
	}

	var entries []indexJSON
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		// Not an array; try a stream of objects.
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		for dec.More() {
			var entry indexJSON
			if decErr := dec.Decode(&entry); decErr != nil {
				return nil, fmt.Errorf("parsing structured index list: %w", decErr)
			}
			entries = append(entries, entry)
		}
	}

	snap := domain.Snapshot{}
	for _, entry := range entries {
		id := entry.ID
		if id == "" {
			id = entry.Name
		}
		if id == "" {
			continue
		}
		snap[id] = domain.Index{ID: id, Name: entry.Name, Path: entry.Path}
	}
	return snap, nil
}

// parseLines reads the plain discovery output: one `name path` pair per
// line, whitespace-separated. Lines that do not split into at least two
// tokens are skipped without aborting the parse. The key is the name.
func parseLines(output []byte) domain.Snapshot {
	snap := domain.Snapshot{}
	for _, line := range strings.Split(string(output), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		name := fields[0]
		path := strings.Join(fields[1:], " ")
		snap[name] = domain.Index{ID: name, Name: name, Path: path}
	}
	return snap
}
