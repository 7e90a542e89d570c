// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the c7 client.
package types

// OutputFormat selects how fetched documentation is returned: raw
// markdown text or pretty-printed JSON. The zero value is not valid;
// use FormatText as the default.
type OutputFormat string

const (
	FormatText OutputFormat = "txt"
	FormatJSON OutputFormat = "json"
)

// Valid reports whether f is a supported output format.
func (f OutputFormat) Valid() bool {
	return f == FormatText || f == FormatJSON
}

// LibraryRecord represents one candidate library returned by the search
// endpoint, ranked by the remote. It exists only long enough to be
// rendered or to contribute its identifier to a fetch.
type LibraryRecord struct {
	// ID is the canonical library identifier, e.g. "/facebook/react".
	ID string `json:"id" yaml:"id"`

	// Title is the human-readable library name.
	Title string `json:"title" yaml:"title"`

	// Description is a short summary of the library.
	Description string `json:"description" yaml:"description"`

	// State is the remote indexing lifecycle state, e.g. "finalized".
	// Free-form; the client displays it without interpretation.
	State string `json:"state" yaml:"state"`

	// TotalSnippets is the number of indexed documentation snippets.
	TotalSnippets int `json:"totalSnippets" yaml:"total_snippets"`

	// TrustScore and BenchmarkScore are remote-computed quality
	// metrics, opaque to the client beyond display.
	TrustScore     float64 `json:"trustScore" yaml:"trust_score"`
	BenchmarkScore float64 `json:"benchmarkScore" yaml:"benchmark_score"`

	// Versions lists known versions, most-relevant-first.
	Versions []string `json:"versions" yaml:"versions"`
}
