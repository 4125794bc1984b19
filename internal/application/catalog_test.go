package application

import (
	"context"
	"errors"
	"testing"

	"vectra/internal/domain"
)

func TestListResources(t *testing.T) {
	disc := &fakeDiscoverer{snap: twoIndexSnapshot()}
	catalog := NewCatalog(disc)

	resources, err := catalog.ListResources(context.Background())
	if err != nil {
		t.Fatalf("ListResources: %v", err)
	}
	if len(resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(resources))
	}

	// Sorted by id, each uri derived from the id.
	if resources[0].URI != "vector-index:///docs" {
		t.Errorf("first uri = %q, want vector-index:///docs", resources[0].URI)
	}
	if resources[1].URI != "vector-index:///notes" {
		t.Errorf("second uri = %q, want vector-index:///notes", resources[1].URI)
	}
	if resources[0].MIMEType != "application/json" {
		t.Errorf("mime type = %q, want application/json", resources[0].MIMEType)
	}
}

func TestListResourcesEmptySnapshot(t *testing.T) {
	catalog := NewCatalog(&fakeDiscoverer{snap: domain.Snapshot{}})

	resources, err := catalog.ListResources(context.Background())
	if err != nil {
		t.Fatalf("ListResources: %v", err)
	}
	if len(resources) != 0 {
		t.Errorf("expected no resources, got %d", len(resources))
	}
}

func TestReadResourceRoundTrip(t *testing.T) {
	disc := &fakeDiscoverer{snap: domain.Snapshot{
		"docs": {ID: "docs", Name: "docs", Path: "/x/docs"},
	}}
	catalog := NewCatalog(disc)
	ctx := context.Background()

	resources, err := catalog.ListResources(ctx)
	if err != nil {
		t.Fatalf("ListResources: %v", err)
	}
	if len(resources) != 1 {
		t.Fatalf("expected 1 resource, got %d", len(resources))
	}

	idx, err := catalog.ReadResource(ctx, resources[0].URI)
	if err != nil {
		t.Fatalf("ReadResource(%q): %v", resources[0].URI, err)
	}
	if idx.Name != "docs" || idx.Path != "/x/docs" {
		t.Errorf("round trip returned %+v, want name=docs path=/x/docs", idx)
	}

	// List and read each ran their own discovery.
	if disc.calls != 2 {
		t.Errorf("expected 2 discovery calls, got %d", disc.calls)
	}
}

func TestReadResourceNotFound(t *testing.T) {
	catalog := NewCatalog(&fakeDiscoverer{snap: twoIndexSnapshot()})

	_, err := catalog.ReadResource(context.Background(), "vector-index:///missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReadResourceRejectsBadURI(t *testing.T) {
	catalog := NewCatalog(&fakeDiscoverer{snap: twoIndexSnapshot()})

	for _, uri := range []string{
		"vector-index:///a/b",
		"other:///docs",
		"vector-index:///",
	} {
		if _, err := catalog.ReadResource(context.Background(), uri); err == nil {
			t.Errorf("ReadResource(%q) expected error, got nil", uri)
		}
	}
}

func TestCatalogPropagatesDiscoveryTimeout(t *testing.T) {
	catalog := NewCatalog(&fakeDiscoverer{err: ErrDiscoveryTimeout})

	if _, err := catalog.ListResources(context.Background()); !errors.Is(err, ErrDiscoveryTimeout) {
		t.Errorf("ListResources: expected ErrDiscoveryTimeout, got %v", err)
	}
	if _, err := catalog.ReadResource(context.Background(), "vector-index:///docs"); !errors.Is(err, ErrDiscoveryTimeout) {
		t.Errorf("ReadResource: expected ErrDiscoveryTimeout, got %v", err)
	}
}
