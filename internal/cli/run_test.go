// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshdocs/c7/internal/api"
	"github.com/meshdocs/c7/pkg/types"
)

// fakeAPI is a canned remote for dispatcher tests.
type fakeAPI struct {
	searchCalls int
	fetchCalls  int

	records   []types.LibraryRecord
	searchErr error
	docs      string
	fetchErr  error

	lastFetchID     string
	lastFetchFormat types.OutputFormat
}

func (f *fakeAPI) Search(_ context.Context, _, _ string) ([]types.LibraryRecord, error) {
	f.searchCalls++
	return f.records, f.searchErr
}

func (f *fakeAPI) FetchDocs(_ context.Context, id, _ string, format types.OutputFormat) (string, error) {
	f.fetchCalls++
	f.lastFetchID = id
	f.lastFetchFormat = format
	if f.fetchErr != nil {
		return "", f.fetchErr
	}
	return f.docs, nil
}

func runCLI(t *testing.T, args []string, remote *fakeAPI) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(args, remote, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunDocsText(t *testing.T) {
	remote := &fakeAPI{docs: "# React Hooks\n..."}
	code, stdout, stderr := runCLI(t, []string{"docs", "/facebook/react", "hooks", "--type", "txt"}, remote)

	assert.Equal(t, 0, code)
	assert.Equal(t, "# React Hooks\n...", stdout, "stdout is the remote body, byte for byte")
	assert.Empty(t, stderr)
	assert.Equal(t, 0, remote.searchCalls, "docs must bypass resolution entirely")
	assert.Equal(t, "/facebook/react", remote.lastFetchID)
}

func TestRunDocsIdempotent(t *testing.T) {
	first := &fakeAPI{docs: "# React Hooks\n..."}
	second := &fakeAPI{docs: "# React Hooks\n..."}
	args := []string{"docs", "/facebook/react", "hooks", "--type", "txt"}

	_, out1, _ := runCLI(t, args, first)
	_, out2, _ := runCLI(t, args, second)
	assert.Equal(t, out1, out2, "identical invocations must produce byte-identical output")
}

func TestRunSearchNoResults(t *testing.T) {
	remote := &fakeAPI{records: nil}
	code, stdout, stderr := runCLI(t, []string{"search", "nonexistent"}, remote)

	assert.Equal(t, 0, code, "an empty listing is a success")
	assert.Equal(t, "No libraries found.\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunSearchListing(t *testing.T) {
	remote := &fakeAPI{records: []types.LibraryRecord{
		{
			ID:             "/facebook/react",
			Title:          "React",
			Description:    "The library for web and native user interfaces.",
			State:          "finalized",
			TotalSnippets:  3124,
			TrustScore:     9.2,
			BenchmarkScore: 8.7,
			Versions:       []string{"v1", "v2", "v3", "v4", "v5", "v6", "v7"},
		},
	}}
	code, stdout, stderr := runCLI(t, []string{"search", "react"}, remote)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "React")
	assert.Contains(t, stdout, "/facebook/react")
	assert.Contains(t, stdout, "finalized")
	assert.Contains(t, stdout, "v1, v2, v3, v4, v5")
	assert.NotContains(t, stdout, "v6", "at most five versions are shown")
}

func TestRunSearchJSON(t *testing.T) {
	remote := &fakeAPI{records: []types.LibraryRecord{{ID: "/facebook/react", Title: "React"}}}
	code, stdout, _ := runCLI(t, []string{"search", "react", "--json"}, remote)

	assert.Equal(t, 0, code)
	var records []types.LibraryRecord
	require.NoError(t, json.Unmarshal([]byte(stdout), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "/facebook/react", records[0].ID)
}

func TestRunGetResolvesThenFetches(t *testing.T) {
	remote := &fakeAPI{
		records: []types.LibraryRecord{{ID: "/facebook/react", Title: "React"}},
		docs:    `{"a":1}`,
	}
	code, stdout, stderr := runCLI(t, []string{"react", "hooks", "--type", "json"}, remote)

	assert.Equal(t, 0, code)
	assert.Equal(t, 1, remote.searchCalls)
	assert.Equal(t, 1, remote.fetchCalls)
	assert.Equal(t, "/facebook/react", remote.lastFetchID)
	assert.Equal(t, types.FormatJSON, remote.lastFetchFormat)

	// Progress mentions the chosen identifier on stderr, never stdout.
	assert.Contains(t, stderr, "/facebook/react")
	assert.NotContains(t, stdout, "resolving")

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, float64(1), doc["a"])
}

func TestRunGetNoResults(t *testing.T) {
	remote := &fakeAPI{records: nil}
	code, stdout, stderr := runCLI(t, []string{"get", "nonexistent", "docs"}, remote)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout, "no partial output on failure")
	assert.Contains(t, stderr, `Error: no libraries found for "nonexistent"`)
	assert.Equal(t, 0, remote.fetchCalls)
}

func TestRunGetRemoteError(t *testing.T) {
	remote := &fakeAPI{searchErr: &api.Error{Kind: api.KindRemote, Status: 500, Message: "internal"}}
	code, stdout, stderr := runCLI(t, []string{"get", "react", "hooks"}, remote)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error: internal")
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		wantIn string
	}{
		{"docs missing query", []string{"docs", "/x/y"}, "usage: c7 docs"},
		{"search missing name", []string{"search"}, "usage: c7 search"},
		{"get missing query", []string{"get", "react"}, "usage: c7 get"},
		{"shorthand missing query", []string{"react"}, "usage: c7 <library>"},
		{"bad type value", []string{"docs", "/x/y", "q", "--type", "xml"}, `invalid --type "xml"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := &fakeAPI{}
			code, stdout, stderr := runCLI(t, tt.args, remote)

			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.wantIn)
			assert.Zero(t, remote.searchCalls+remote.fetchCalls, "no network call on a usage error")
		})
	}
}

func TestRunHelp(t *testing.T) {
	remote := &fakeAPI{}
	code, stdout, stderr := runCLI(t, []string{"--help"}, remote)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "CONTEXT7_API_KEY")
	assert.Empty(t, stderr)
	assert.Zero(t, remote.searchCalls+remote.fetchCalls)

	code, noArgsOut, _ := runCLI(t, nil, remote)
	assert.Equal(t, 0, code)
	assert.Equal(t, stdout, noArgsOut)
}

func TestRunVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, []string{"version"}, &fakeAPI{})
	assert.Equal(t, 0, code)
	assert.Equal(t, "c7 "+Version+"\n", stdout)
}

func TestRunSearchSaveFile(t *testing.T) {
	remote := &fakeAPI{records: []types.LibraryRecord{{ID: "/facebook/react", Title: "React"}}}
	path := filepath.Join(t.TempDir(), "react.yaml")

	code, _, stderr := runCLI(t, []string{"search", "react", "--save", path}, remote)
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "saved 1 results")

	qf, err := LoadQueryFile(path)
	require.NoError(t, err)
	assert.Equal(t, "react", qf.Query.LibraryName)
	assert.Equal(t, "documentation", qf.Query.Context)
	require.Len(t, qf.Results, 1)
	assert.Equal(t, "/facebook/react", qf.Results[0].ID)
	assert.Equal(t, 1, qf.Summary.Total)
}
