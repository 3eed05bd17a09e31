// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Paper holds the metadata for one search result from a paper index.
type Paper struct {
	// ID is the index-native identifier (e.g. "2301.07041" for arXiv).
	ID string `json:"id" yaml:"id"`

	// Title is the paper title, whitespace-normalized.
	Title string `json:"title" yaml:"title"`

	// URL is the canonical entry URL for the paper.
	URL string `json:"url" yaml:"url"`

	// Abstract is the paper abstract as returned by the index. May span
	// multiple lines; consumers flatten it before use.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Published is the publication or preprint date, zero when the index
	// omits it.
	Published time.Time `json:"published,omitempty" yaml:"published,omitempty"`
}
