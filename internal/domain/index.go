package domain

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// URIScheme is the scheme under which indexes are exposed as resources.
// A full resource URI has the form vector-index:///<id>.
const URIScheme = "vector-index"

// Index describes one externally-managed vector index. The ID is the
// stable addressing key; when the discovery source omits an explicit id
// the name doubles as the id.
type Index struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// Snapshot is the result of one discovery run, keyed by index ID.
// Duplicate ids in the source collapse last-write-wins because entries
// accumulate into the map in source order.
type Snapshot map[string]Index

// IDs returns the snapshot's index ids in sorted order, so listings
// derived from the same snapshot are stable.
func (s Snapshot) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resource is the addressable projection of an Index. Resources have no
// lifecycle of their own; they are recomputed from a fresh snapshot on
// every listing call.
type Resource struct {
	URI         string
	Name        string
	MIMEType    string
	Description string
}

// ResourceURI builds the canonical resource URI for an index id.
func ResourceURI(id string) string {
	return URIScheme + ":///" + id
}

// ParseResourceURI extracts the index id from a resource URI. Ids
// containing a path separator are rejected rather than truncated.
func ParseResourceURI(uri string) (string, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid resource URI %q: %w", uri, err)
	}
	if parsed.Scheme != URIScheme {
		return "", fmt.Errorf("invalid resource URI %q: expected scheme %s", uri, URIScheme)
	}
	if parsed.Host != "" {
		return "", fmt.Errorf("invalid resource URI %q: expected %s:///<id>", uri, URIScheme)
	}
	id := strings.TrimPrefix(parsed.Path, "/")
	if id == "" {
		return "", fmt.Errorf("invalid resource URI %q: missing index id", uri)
	}
	if strings.Contains(id, "/") {
		return "", fmt.Errorf("invalid resource URI %q: index id must not contain a path separator", uri)
	}
	return id, nil
}
