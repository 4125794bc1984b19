package enginecli

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Engine runs search and ask queries through the external indexer
// command. The command's stdout is the result; vectra does not
// interpret it.
type Engine struct {
	command string
	timeout time.Duration
	logger  *zap.Logger
}

// NewEngine creates an engine adapter for the given indexer command.
func NewEngine(command string, timeout time.Duration, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{command: command, timeout: timeout, logger: logger}
}

// Search runs `<command> search <indexID> <query>`.
func (e *Engine) Search(ctx context.Context, indexID, query string) (string, error) {
	return e.invoke(ctx, "search", indexID, query)
}

// Ask runs `<command> ask <indexID> <question>`.
func (e *Engine) Ask(ctx context.Context, indexID, question string) (string, error) {
	return e.invoke(ctx, "ask", indexID, question)
}

// Available reports whether the indexer command is on PATH.
func (e *Engine) Available() bool {
	_, err := exec.LookPath(e.command)
	return err == nil
}

func (e *Engine) invoke(ctx context.Context, verb, indexID, input string) (string, error) {
	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, e.command, verb, indexID, input)
	output, err := cmd.Output()
	if err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%s %s against %q timed out after %s", e.command, verb, indexID, e.timeout)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%s %s: %s", e.command, verb, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%s %s: %w", e.command, verb, err)
	}

	e.logger.Debug("engine invocation finished",
		zap.String("verb", verb),
		zap.String("index", indexID))
	return strings.TrimSpace(string(output)), nil
}
