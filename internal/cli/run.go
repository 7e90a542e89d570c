// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/meshdocs/c7/internal/resolve"
)

// Version is stamped at build time via ldflags.
var Version = "dev"

// Run parses args, dispatches the selected operation against client,
// and returns the process exit code. Results go to stdout; progress
// notices, usage hints, and error lines go to stderr, so piped
// consumers never see diagnostics in the primary stream. Errors from
// any dispatched operation surface here and nowhere else.
func Run(args []string, client resolve.DocsAPI, stdout, stderr io.Writer) int {
	intent := Parse(args)
	ctx := context.Background()

	switch intent.Kind {
	case IntentHelp:
		fmt.Fprint(stdout, usageText)
		return 0

	case IntentVersion:
		fmt.Fprintf(stdout, "c7 %s\n", Version)
		return 0

	case IntentInvalid:
		fmt.Fprintln(stderr, intent.Reason)
		return 1

	case IntentSearch:
		records, err := client.Search(ctx, intent.Library, intent.Query)
		if err != nil {
			return fail(stderr, err)
		}
		if intent.SaveFile != "" {
			if err := SaveQueryFile(intent.SaveFile, intent.Library, intent.Query, records); err != nil {
				return fail(stderr, err)
			}
			fmt.Fprintf(stderr, "saved %d results to %s\n", len(records), intent.SaveFile)
		}
		if intent.JSON {
			if err := writeRecordsJSON(stdout, records); err != nil {
				return fail(stderr, err)
			}
			return 0
		}
		writeRecords(stdout, records)
		return 0

	case IntentDocs:
		// The caller asserts the identifier is canonical; no
		// classification, no resolution round-trip.
		body, err := client.FetchDocs(ctx, intent.Library, intent.Query, intent.Format)
		if err != nil {
			return fail(stderr, err)
		}
		// The body is written verbatim so piped consumers get exactly
		// what the remote returned.
		fmt.Fprint(stdout, body)
		return 0

	default: // IntentGet, explicit or shorthand
		body, err := resolve.ResolveAndFetch(ctx, client, intent.Library, intent.Query, intent.Format, stderr)
		if err != nil {
			return fail(stderr, err)
		}
		fmt.Fprint(stdout, body)
		return 0
	}
}

// fail prints the single error line every failure path shares. Nothing
// is ever written to stdout on a failed invocation.
func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}
