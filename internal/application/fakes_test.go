package application

import (
	"context"
	"fmt"

	"vectra/internal/domain"
)

// fakeDiscoverer returns a canned snapshot, counting calls so tests can
// assert that operations re-run discovery.
type fakeDiscoverer struct {
	snap  domain.Snapshot
	err   error
	calls int
}

func (f *fakeDiscoverer) Discover(_ context.Context) (domain.Snapshot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.snap, nil
}

// fakeEngine records the last invocation and echoes it back.
type fakeEngine struct {
	available  bool
	lastMethod string
	lastIndex  string
	lastInput  string
}

func (f *fakeEngine) Search(_ context.Context, indexID, query string) (string, error) {
	f.lastMethod, f.lastIndex, f.lastInput = "search", indexID, query
	return fmt.Sprintf("search(%s, %s)", indexID, query), nil
}

func (f *fakeEngine) Ask(_ context.Context, indexID, question string) (string, error) {
	f.lastMethod, f.lastIndex, f.lastInput = "ask", indexID, question
	return fmt.Sprintf("ask(%s, %s)", indexID, question), nil
}

func (f *fakeEngine) Available() bool {
	return f.available
}

func twoIndexSnapshot() domain.Snapshot {
	return domain.Snapshot{
		"docs":  {ID: "docs", Name: "docs", Path: "/data/docs"},
		"notes": {ID: "notes", Name: "notes", Path: "/data/notes"},
	}
}
