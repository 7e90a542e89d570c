// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cli parses the argument vector into a command intent and
// dispatches it, translating every failure into a single diagnostic
// line and a process exit code.
package cli

import "github.com/meshdocs/c7/pkg/types"

// IntentKind enumerates the command forms an argument vector can select.
type IntentKind int

const (
	IntentHelp IntentKind = iota
	IntentVersion
	IntentSearch
	IntentDocs
	IntentGet
	IntentInvalid
)

func (k IntentKind) String() string {
	switch k {
	case IntentHelp:
		return "help"
	case IntentVersion:
		return "version"
	case IntentSearch:
		return "search"
	case IntentDocs:
		return "docs"
	case IntentGet:
		return "get"
	default:
		return "invalid"
	}
}

// Intent is the parsed command: one kind plus the arguments that kind
// needs. It is built exactly once per invocation and consumed exactly
// once by Run.
type Intent struct {
	Kind IntentKind

	// Library is the library token: a free-text name for Search and
	// Get, a canonical identifier for Docs, either for the shorthand
	// form of Get.
	Library string

	// Query is the documentation question (Docs, Get) or the context
	// string used to rank search results (Search).
	Query string

	// Format applies to Docs and Get.
	Format types.OutputFormat

	// JSON selects JSON rendering of search results.
	JSON bool

	// SaveFile, when non-empty, names a YAML query file to write the
	// search outcome to.
	SaveFile string

	// Reason is the one-line usage hint for IntentInvalid.
	Reason string
}
