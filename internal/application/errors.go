package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions surfaced to callers as typed failures.
var (
	ErrNotFound         = errors.New("not found")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrDiscoveryTimeout = errors.New("discovery timed out")
)

// ArgumentError reports a required tool argument that is missing or has
// the wrong shape. It is detected before the tool handler runs.
type ArgumentError struct {
	Tool     string
	Argument string
	Message  string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: argument %q %s", e.Tool, e.Argument, e.Message)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArguments
}
