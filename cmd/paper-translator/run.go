package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-translator/internal/config"
	"github.com/pdiddy/paper-translator/internal/history"
	"github.com/pdiddy/paper-translator/internal/report"
	"github.com/pdiddy/paper-translator/internal/search"
	"github.com/pdiddy/paper-translator/internal/translate"
	"github.com/pdiddy/paper-translator/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run [keywords...]",
	Short: "Search a paper index and write a translated report",
	Long: `Run searches a paper index (arXiv by default, Semantic Scholar via
--source) for papers matching the given keywords, translates every
abstract into Japanese, and writes the results to <query>_results.txt
in the output directory.

Keywords are combined with AND into a single search. Quote a phrase to
keep its words together:

  paper-translator run transformer "quantum error correction"

--query-file adds further searches, one per list entry, processed in
order after the keyword search. Papers whose translation fails are kept
in the report with an inline error message; they do not abort the run.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().Int("max", 0, "maximum number of papers per query (default 3)")
	runCmd.Flags().String("source", "", "paper index: arxiv or semantic_scholar (default arxiv)")
	runCmd.Flags().String("model", "", "model name passed to the translation backend (default llama3)")
	runCmd.Flags().String("provider", "", "translation backend: ollama or openai (default ollama)")
	runCmd.Flags().String("endpoint", "", "Ollama generate endpoint URL")
	runCmd.Flags().Duration("timeout", 0, "translation request timeout (default 3m)")
	runCmd.Flags().String("output-dir", "", "directory report files are written to (default .)")
	runCmd.Flags().Duration("delay", 0, "pause between consecutive papers (default 1s)")
	runCmd.Flags().Bool("save", false, "also write a YAML results file per query")
	runCmd.Flags().String("history-db", "", "run history database path (empty disables recording)")
	runCmd.Flags().String("query-file", "", "YAML file with additional queries to process")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	// The positional keywords form one AND-combined search. Query-file
	// entries are further searches, one per entry.
	queries := make([][]string, 0, 1)
	if len(args) > 0 {
		queries = append(queries, args)
	}
	if queryFile, _ := cmd.Flags().GetString("query-file"); queryFile != "" {
		fileQueries, err := search.ReadQueryList(queryFile)
		if err != nil {
			return fmt.Errorf("reading query file: %w", err)
		}
		for _, q := range fileQueries {
			queries = append(queries, strings.Fields(q))
		}
	}
	if len(queries) == 0 {
		return fmt.Errorf("provide one or more search keywords")
	}

	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyRunFlags(cmd, cfg)
	cfg.Translate.APIKey = secretDefault("openai-api-key", cfg.Translate.APIKey)
	cfg.Search.APIKey = secretDefault("semantic-scholar-api-key", cfg.Search.APIKey)

	// Flag overlays land after Load, so the merged config faces the
	// same rules a config file does.
	if err := config.Validate(cfg); err != nil {
		return err
	}

	backend, err := newSearchBackend(cfg.Search)
	if err != nil {
		return err
	}
	translator, err := newTranslator(cfg.Translate)
	if err != nil {
		return err
	}

	ctx := context.Background()
	bar := strings.Repeat("=", 20)

	var failed int
	for _, terms := range queries {
		fmt.Fprintf(os.Stdout, "\n%s 共通クエリ: '%s' の処理を開始 %s\n", bar, search.NewQuery(terms).Expression(), bar)

		sum, err := report.Run(ctx, backend, translator, terms, *cfg, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stdout, "論文の検索または処理中にエラーが発生しました: %v\n", err)
			failed++
			continue
		}
		recordRun(ctx, cfg.Report.HistoryDB, cfg.Translate, sum)
	}

	fmt.Fprintf(os.Stdout, "\n%s 処理が完了しました %s\n", bar, bar)

	if failed > 0 {
		return fmt.Errorf("%d of %d searches failed", failed, len(queries))
	}
	return nil
}

// applyRunFlags overlays explicitly-set command-line flags onto cfg.
func applyRunFlags(cmd *cobra.Command, cfg *types.Config) {
	if cmd.Flags().Changed("max") {
		cfg.Search.MaxResults, _ = cmd.Flags().GetInt("max")
	}
	if cmd.Flags().Changed("source") {
		cfg.Search.Source, _ = cmd.Flags().GetString("source")
	}
	if cmd.Flags().Changed("model") {
		cfg.Translate.Model, _ = cmd.Flags().GetString("model")
	}
	if cmd.Flags().Changed("provider") {
		p, _ := cmd.Flags().GetString("provider")
		cfg.Translate.Provider = types.Provider(p)
	}
	if cmd.Flags().Changed("endpoint") {
		cfg.Translate.Endpoint, _ = cmd.Flags().GetString("endpoint")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Translate.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.Report.OutputDir, _ = cmd.Flags().GetString("output-dir")
	}
	if cmd.Flags().Changed("delay") {
		cfg.Report.Delay, _ = cmd.Flags().GetDuration("delay")
	}
	if cmd.Flags().Changed("save") {
		cfg.Report.Save, _ = cmd.Flags().GetBool("save")
	}
	if cmd.Flags().Changed("history-db") {
		cfg.Report.HistoryDB, _ = cmd.Flags().GetString("history-db")
	}
}

// newSearchBackend picks the paper index for the configured source.
func newSearchBackend(cfg types.SearchConfig) (search.Backend, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Source {
	case "arxiv", "":
		return &search.ArxivBackend{Client: client}, nil
	case "semantic_scholar":
		return &search.SemanticScholarBackend{Client: client, APIKey: cfg.APIKey}, nil
	default:
		return nil, fmt.Errorf("unknown search source %q: use arxiv or semantic_scholar", cfg.Source)
	}
}

// newTranslator picks the translation backend for the configured provider.
func newTranslator(cfg types.TranslateConfig) (translate.Translator, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Provider {
	case types.ProviderOllama:
		return &translate.OllamaBackend{
			Endpoint: cfg.Endpoint,
			Model:    cfg.Model,
			Client:   client,
		}, nil
	case types.ProviderOpenAI:
		return translate.NewOpenAIBackend(cfg.BaseURL, cfg.APIKey, cfg.Model, client), nil
	default:
		return nil, fmt.Errorf("unknown translation provider %q: use ollama or openai", cfg.Provider)
	}
}

// recordRun appends the run outcome to the history database. History
// failures only warn; the report itself already succeeded.
func recordRun(ctx context.Context, dbPath string, tcfg types.TranslateConfig, sum report.Summary) {
	if dbPath == "" {
		return
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open history database: %v\n", err)
		return
	}
	defer store.Close()

	rec := history.Record{
		Query:      sum.Query,
		OutputFile: sum.OutputFile,
		Total:      sum.Total(),
		Translated: sum.Translated,
		Failed:     sum.Failed,
		Provider:   string(tcfg.Provider),
		Model:      tcfg.Model,
	}
	if err := store.Add(ctx, rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run history: %v\n", err)
	}
}
