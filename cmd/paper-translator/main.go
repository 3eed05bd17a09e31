// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-translator CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-translator/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// verbose turns on debug logging (request timings and such) on stderr.
var verbose bool

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// setupLogging installs the process-wide slog handler: debug level with
// --verbose, warnings and up otherwise. User-facing progress goes to
// stdout separately and is not affected.
func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the paper-translator CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-translator",
	Short: "Search arXiv and translate paper abstracts into Japanese",
	Long: `paper-translator searches arXiv for papers matching keyword queries,
translates each abstract into Japanese with a local LLM (Ollama or any
OpenAI-compatible endpoint), and writes one plain-text report per query.

Papers are processed strictly one at a time with a fixed pause between
them to stay polite to the arXiv API.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-translator.yaml or ~/.config/paper-translator/paper-translator.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log debug detail such as request timings to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
