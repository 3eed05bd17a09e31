// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"strings"

	"github.com/pdiddy/paper-translator/internal/search"
)

// forbiddenFilenameChars are replaced by Sanitize: the union of
// characters rejected by Windows and POSIX filesystems.
const forbiddenFilenameChars = `\/:*?"<>|`

// Sanitize replaces every filesystem-hostile character in name with an
// underscore. It accepts any string and is idempotent: sanitizing twice
// gives the same result.
func Sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(forbiddenFilenameChars, r) {
			return '_'
		}
		return r
	}, name)
}

// resultsBase derives the report file base name from the query: terms
// joined with single spaces, lowercased, spaces replaced with
// underscores, then sanitized.
func resultsBase(query search.Query) string {
	base := strings.ToLower(query.String())
	base = strings.ReplaceAll(base, " ", "_")
	return Sanitize(base)
}

// ResultsFilename returns the text report file name for the query
// (e.g. "transformer_results.txt").
func ResultsFilename(query search.Query) string {
	return resultsBase(query) + "_results.txt"
}

// yamlFilename returns the YAML results file name written with --save.
func yamlFilename(query search.Query) string {
	return resultsBase(query) + "_results.yaml"
}
