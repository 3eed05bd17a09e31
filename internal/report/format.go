// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"strings"

	"github.com/pdiddy/paper-translator/internal/translate"
	"github.com/pdiddy/paper-translator/pkg/types"
)

// separator closes every block in the results file: 50 dashes.
var separator = strings.Repeat("-", 50)

// Block is one entry of the results file: the paper metadata plus either
// its translated abstract or the fixed inline error text.
type Block struct {
	Paper types.Paper

	// Text is the cleaned translation, or the inline error message when
	// translation failed. Stored unwrapped.
	Text string

	// ErrorKind is set when translation failed.
	ErrorKind translate.Kind
}

// render returns the block exactly as it appears in the results file:
// title and URL header lines, the wrapped abstract section, and the
// dashed separator followed by a blank line.
func (b Block) render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "■ タイトル: %s\n", b.Paper.Title)
	fmt.Fprintf(&sb, "■ URL: %s\n\n", b.Paper.URL)
	sb.WriteString("--- 翻訳された要旨 ---\n")
	sb.WriteString(hardWrap(b.Text, wrapWidth))
	sb.WriteByte('\n')
	sb.WriteString(separator)
	sb.WriteString("\n\n")
	return sb.String()
}
