// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"context"
	"fmt"
	"io"

	"github.com/meshdocs/c7/internal/api"
	"github.com/meshdocs/c7/pkg/types"
)

// DocsAPI is the remote surface the orchestrator needs. *api.Client
// implements it; tests substitute a recording stub.
type DocsAPI interface {
	Search(ctx context.Context, libraryName, query string) ([]types.LibraryRecord, error)
	FetchDocs(ctx context.Context, id, query string, format types.OutputFormat) (string, error)
}

// ResolveAndFetch produces documentation for token, which may be either
// a canonical identifier or a free-text name. Names cost one extra
// round-trip: the search endpoint ranks candidates and the first record
// wins (the client never re-orders). The two calls are strictly
// sequential; the fetch never starts before the resolution outcome is
// known.
//
// Progress notices are written to w before each network call begins.
// They are advisory only and must never share a stream with the primary
// output.
func ResolveAndFetch(ctx context.Context, client DocsAPI, token, query string, format types.OutputFormat, w io.Writer) (string, error) {
	id := token
	if !IsIdentifier(token) {
		fmt.Fprintf(w, "resolving %q...\n", token)
		records, err := client.Search(ctx, token, query)
		if err != nil {
			return "", err
		}
		if len(records) == 0 {
			return "", api.NoResults(token)
		}
		id = records[0].ID
		fmt.Fprintf(w, "resolved to %s\n", id)
	}
	return client.FetchDocs(ctx, id, query, format)
}
