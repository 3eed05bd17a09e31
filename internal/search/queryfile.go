// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// QueryList is the on-disk form of a saved query collection. Recurring
// searches can be kept in one file and run as a batch.
type QueryList struct {
	Queries []string `yaml:"queries"`
}

// ReadQueryList loads queries from a YAML file, trimming whitespace and
// dropping blank entries.
func ReadQueryList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query list: %w", err)
	}

	var ql QueryList
	if err := yaml.Unmarshal(data, &ql); err != nil {
		return nil, fmt.Errorf("parsing query list: %w", err)
	}

	var queries []string
	for _, q := range ql.Queries {
		q = strings.TrimSpace(q)
		if q != "" {
			queries = append(queries, q)
		}
	}
	return queries, nil
}
