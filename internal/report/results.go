// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-translator/internal/search"
	"github.com/pdiddy/paper-translator/internal/translate"
	"github.com/pdiddy/paper-translator/pkg/types"
)

// ResultsFile is the on-disk YAML representation of a completed run: the
// query, the configuration that produced it, and each paper with its
// translation or error kind. Output only; runs never read it back.
type ResultsFile struct {
	Query   QueryParams    `yaml:"query"`
	Config  ResultsConfig  `yaml:"config"`
	Papers  []PaperResult  `yaml:"papers"`
	Summary ResultsSummary `yaml:"summary"`
}

// QueryParams stores the query terms in a serializable form.
type QueryParams struct {
	Terms []string `yaml:"terms"`
}

// ResultsConfig stores the settings that produced the results.
type ResultsConfig struct {
	Source     string `yaml:"source"`
	MaxResults int    `yaml:"max_results"`
	Provider   string `yaml:"provider"`
	Model      string `yaml:"model"`
}

// PaperResult pairs a paper with its translation outcome.
type PaperResult struct {
	Paper       types.Paper    `yaml:"paper"`
	Translation string         `yaml:"translation,omitempty"`
	ErrorKind   translate.Kind `yaml:"error_kind,omitempty"`
}

// ResultsSummary stores run statistics and a timestamp.
type ResultsSummary struct {
	Total      int       `yaml:"total"`
	Translated int       `yaml:"translated"`
	Failed     int       `yaml:"failed"`
	Timestamp  time.Time `yaml:"timestamp"`
}

// WriteResultsFile saves the run outcome as YAML next to the text report.
func WriteResultsFile(path string, query search.Query, cfg types.Config, blocks []Block, sum Summary) error {
	rf := ResultsFile{
		Query: QueryParams{Terms: query.Terms},
		Config: ResultsConfig{
			Source:     cfg.Search.Source,
			MaxResults: cfg.Search.MaxResults,
			Provider:   string(cfg.Translate.Provider),
			Model:      cfg.Translate.Model,
		},
		Summary: ResultsSummary{
			Total:      sum.Total(),
			Translated: sum.Translated,
			Failed:     sum.Failed,
			Timestamp:  time.Now(),
		},
	}

	for _, b := range blocks {
		pr := PaperResult{Paper: b.Paper}
		if b.ErrorKind != "" {
			pr.ErrorKind = b.ErrorKind
		} else {
			pr.Translation = b.Text
		}
		rf.Papers = append(rf.Papers, pr)
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling results file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
