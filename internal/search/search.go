// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries an academic paper index and returns paper metadata.
package search

import (
	"context"
	"strings"

	"github.com/pdiddy/paper-translator/pkg/types"
)

// Backend searches a single paper index. Implementations perform one
// request per call and return papers in index order.
type Backend interface {
	Name() string
	Search(ctx context.Context, query Query, cfg types.SearchConfig) ([]types.Paper, error)
}

// Query holds the ordered search terms. Backends combine the terms with
// logical AND.
type Query struct {
	Terms []string
}

// NewQuery builds a Query from raw terms, trimming surrounding whitespace
// and dropping blank entries.
func NewQuery(terms []string) Query {
	var q Query
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t != "" {
			q.Terms = append(q.Terms, t)
		}
	}
	return q
}

// IsEmpty reports whether the query contains no searchable terms.
func (q Query) IsEmpty() bool { return len(q.Terms) == 0 }

// String returns the terms joined with single spaces, the form used for
// deriving the results file name.
func (q Query) String() string { return strings.Join(q.Terms, " ") }

// Expression returns the boolean search form: each term wrapped in
// parentheses and joined with AND, so multi-word terms stay grouped.
// Used for indexes with boolean query syntax and for run banners.
func (q Query) Expression() string {
	wrapped := make([]string, len(q.Terms))
	for i, t := range q.Terms {
		wrapped[i] = "(" + t + ")"
	}
	return strings.Join(wrapped, " AND ")
}
