package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-translator/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// SearchConfig holds settings for the paper-index search.
type SearchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Source selects the paper index: arxiv or semantic_scholar.
	Source string `json:"source" yaml:"source" mapstructure:"source" validate:"oneof=arxiv semantic_scholar"`

	// MaxResults is the maximum number of papers to fetch per run (default 3).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results" validate:"gt=0"`

	// APIKey authenticates requests to indexes that support keyed access
	// (Semantic Scholar). Unused by the arxiv source.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`
}

// Provider identifies the translation backend.
type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderOpenAI Provider = "openai"
)

// TranslateConfig holds settings for the translation backend.
type TranslateConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Provider selects the backend: ollama (native generate API) or
	// openai (OpenAI-compatible chat completions).
	Provider Provider `json:"provider" yaml:"provider" mapstructure:"provider" validate:"oneof=ollama openai"`

	// Model is the model identifier passed to the backend (default "llama3").
	Model string `json:"model" yaml:"model" mapstructure:"model" validate:"required"`

	// Endpoint is the Ollama generate endpoint URL.
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint" validate:"required,url"`

	// BaseURL is the base URL for the OpenAI-compatible backend. Defaults
	// to Ollama's compatibility surface on the same host.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// APIKey authenticates requests to the OpenAI-compatible backend.
	// Unused by the ollama provider.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`
}

// ReportConfig holds settings for report output and run pacing.
type ReportConfig struct {
	// OutputDir is the directory the results file is written to (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir" validate:"required"`

	// Delay is the pause between consecutive papers (default 1s).
	Delay time.Duration `json:"delay" yaml:"delay" mapstructure:"delay" validate:"gte=0"`

	// Save controls whether a YAML results file is written alongside the
	// text report.
	Save bool `json:"save" yaml:"save" mapstructure:"save"`

	// HistoryDB is the path to the run-history database. Empty disables
	// history recording.
	HistoryDB string `json:"history_db,omitempty" yaml:"history_db,omitempty" mapstructure:"history_db"`
}

// Config groups all settings for a translation run.
type Config struct {
	Search    SearchConfig    `json:"search" yaml:"search" mapstructure:"search"`
	Translate TranslateConfig `json:"translate" yaml:"translate" mapstructure:"translate"`
	Report    ReportConfig    `json:"report" yaml:"report" mapstructure:"report"`
}
