// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/meshdocs/c7/pkg/types"
)

// maxVersionsShown caps how many known versions a search listing shows
// per record.
const maxVersionsShown = 5

// writeRecords renders the search listing as plain text, one block per
// record in the remote's ranking order.
func writeRecords(w io.Writer, records []types.LibraryRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No libraries found.")
		return
	}

	for i, r := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, r.Title)
		fmt.Fprintf(w, "  ID: %s\n", r.ID)
		if r.Description != "" {
			fmt.Fprintf(w, "  Description: %s\n", r.Description)
		}
		if r.State != "" {
			fmt.Fprintf(w, "  State: %s\n", r.State)
		}
		fmt.Fprintf(w, "  Snippets: %d  Trust: %.1f  Benchmark: %.1f\n",
			r.TotalSnippets, r.TrustScore, r.BenchmarkScore)
		if len(r.Versions) > 0 {
			shown := r.Versions
			if len(shown) > maxVersionsShown {
				shown = shown[:maxVersionsShown]
			}
			fmt.Fprintf(w, "  Versions: %s\n", strings.Join(shown, ", "))
		}
	}

	fmt.Fprintf(w, "\n%d libraries\n", len(records))
}

// writeRecordsJSON renders records as indented JSON.
func writeRecordsJSON(w io.Writer, records []types.LibraryRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
