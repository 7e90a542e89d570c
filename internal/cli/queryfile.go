// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cli

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/meshdocs/c7/pkg/types"
)

// QueryFile is the on-disk record of a search and its candidate
// libraries, so the resolution candidates for a question can be kept
// without re-querying the API.
type QueryFile struct {
	Query   QueryParams           `yaml:"query"`
	Results []types.LibraryRecord `yaml:"results"`
	Summary QuerySummary          `yaml:"summary"`
}

// QueryParams stores the search parameters in a serializable form.
type QueryParams struct {
	LibraryName string `yaml:"library_name"`
	Context     string `yaml:"context"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// SaveQueryFile writes the search outcome for libraryName to path.
func SaveQueryFile(path, libraryName, contextQuery string, records []types.LibraryRecord) error {
	qf := QueryFile{
		Query: QueryParams{
			LibraryName: libraryName,
			Context:     contextQuery,
		},
		Results: records,
		Summary: QuerySummary{
			Total:     len(records),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing query file: %w", err)
	}
	return nil
}

// LoadQueryFile reads a previously saved query file from disk.
func LoadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}
