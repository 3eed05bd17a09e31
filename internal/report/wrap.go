// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import "strings"

// wrapWidth is the maximum number of runes per line in the translated
// abstract section of a block.
const wrapWidth = 50

// flatten collapses all whitespace runs in s into single spaces and
// trims the ends. Abstracts arrive from the index with hard line breaks;
// model output may carry them too.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// hardWrap inserts a line break after every width runes. Existing line
// breaks reset the count. For input without line breaks, concatenating
// the returned lines reproduces s exactly.
func hardWrap(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}

	var b strings.Builder
	count := 0
	for _, r := range s {
		if r == '\n' {
			b.WriteRune(r)
			count = 0
			continue
		}
		if count == width {
			b.WriteByte('\n')
			count = 0
		}
		b.WriteRune(r)
		count++
	}
	return b.String()
}
