// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report runs the search-translate-write pipeline and produces
// the results file.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/pdiddy/paper-translator/internal/search"
	"github.com/pdiddy/paper-translator/internal/translate"
	"github.com/pdiddy/paper-translator/pkg/types"
)

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// Summary holds the outcome of one run.
type Summary struct {
	Query      string
	OutputFile string
	Translated int
	Failed     int
}

// Total returns the number of papers processed.
func (s Summary) Total() int { return s.Translated + s.Failed }

// HasFailures reports whether any translations failed.
func (s Summary) HasFailures() bool { return s.Failed > 0 }

// Run searches the index, translates each abstract in order, and writes
// the results file. Translation failures are recorded inline and do not
// stop the run; search and file errors abort it. The results file is
// created only once a non-empty result set exists.
func Run(ctx context.Context, backend search.Backend, translator translate.Translator, terms []string, cfg types.Config, w io.Writer) (Summary, error) {
	query := search.NewQuery(terms)
	if query.IsEmpty() {
		return Summary{}, fmt.Errorf("provide one or more search keywords")
	}

	fmt.Fprintf(w, "'%s'に関する論文を%sで検索しています...\n", query.Expression(), backend.Name())

	papers, err := backend.Search(ctx, query, cfg.Search)
	if err != nil {
		return Summary{}, fmt.Errorf("searching %s: %w", backend.Name(), err)
	}

	summary := Summary{Query: query.String()}
	if len(papers) == 0 {
		fmt.Fprintln(w, "関連する論文が見つかりませんでした。")
		return summary, nil
	}

	fmt.Fprintf(w, "%d件の論文が見つかりました。\n", len(papers))
	fmt.Fprintln(w, separator)

	path := filepath.Join(cfg.Report.OutputDir, ResultsFilename(query))
	f, err := os.Create(path)
	if err != nil {
		return summary, fmt.Errorf("creating results file: %w", err)
	}
	summary.OutputFile = path

	blocks, err := translateAll(ctx, translator, papers, cfg.Report.Delay, f, w)
	closeErr := f.Close()
	for _, b := range blocks {
		if b.ErrorKind != "" {
			summary.Failed++
		} else {
			summary.Translated++
		}
	}
	if err != nil {
		return summary, err
	}
	if closeErr != nil {
		return summary, fmt.Errorf("closing results file: %w", closeErr)
	}

	if cfg.Report.Save {
		yamlPath := filepath.Join(cfg.Report.OutputDir, yamlFilename(query))
		if err := WriteResultsFile(yamlPath, query, cfg, blocks, summary); err != nil {
			return summary, fmt.Errorf("saving results file: %w", err)
		}
	}

	fmt.Fprintf(w, "\n処理が完了しました。結果は '%s' に保存されました。\n", path)
	return summary, nil
}

// translateAll processes papers in order, appending one rendered block
// per paper to f and per-paper status lines to w. A pause separates
// consecutive papers; translation failures mark the block and continue.
func translateAll(ctx context.Context, translator translate.Translator, papers []types.Paper, delay time.Duration, f io.Writer, w io.Writer) ([]Block, error) {
	var blocks []Block
	for i, paper := range papers {
		if i > 0 && delay > 0 {
			time.Sleep(delay)
		}

		fmt.Fprintf(w, "[%d/%d] 処理中: %s\n", i+1, len(papers), paper.Title)
		fmt.Fprint(w, "  要旨を翻訳しています...")

		block := Block{Paper: paper}
		translated, err := translator.Translate(ctx, flatten(paper.Abstract))
		if err != nil {
			terr := classify(err, translator.Name())
			block.Text = terr.Message()
			block.ErrorKind = terr.Kind
			red.Fprintf(w, " 失敗しました。エラー: %s\n", terr.Message())
		} else {
			block.Text = flatten(translated)
			green.Fprintln(w, " 完了しました。")
		}

		if _, err := io.WriteString(f, block.render()); err != nil {
			return blocks, fmt.Errorf("writing results file: %w", err)
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// classify coerces any translator failure into a *translate.Error so a
// fixed inline message is always available. Unclassified errors count as
// connectivity failures.
func classify(err error, backend string) *translate.Error {
	var terr *translate.Error
	if errors.As(err, &terr) {
		return terr
	}
	return &translate.Error{Kind: translate.KindConnectivity, Backend: backend, Err: err}
}
