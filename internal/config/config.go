// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads runtime settings from YAML files, environment
// variables, and built-in defaults, then validates the result.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-translator/pkg/types"
)

const (
	defaultOllamaEndpoint = "http://localhost:11434/api/generate"
	defaultOpenAIBaseURL  = "http://localhost:11434/v1"
)

// Load reads configuration from configFile, or from paper-translator.yaml
// in the current directory or $HOME/.config/paper-translator when
// configFile is empty. A missing discovered file is not an error;
// defaults and environment variables still apply.
func Load(configFile string) (*types.Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("paper-translator")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/paper-translator")
	}

	v.SetDefault("search.timeout", 60*time.Second)
	v.SetDefault("search.user_agent", "paper-translator/0.1")
	v.SetDefault("search.source", "arxiv")
	v.SetDefault("search.max_results", 3)
	v.SetDefault("translate.timeout", 180*time.Second)
	v.SetDefault("translate.provider", "ollama")
	v.SetDefault("translate.model", "llama3")
	v.SetDefault("translate.endpoint", defaultOllamaEndpoint)
	v.SetDefault("translate.base_url", defaultOpenAIBaseURL)
	v.SetDefault("report.output_dir", ".")
	v.SetDefault("report.delay", time.Second)
	v.SetDefault("report.save", false)
	v.SetDefault("report.history_db", "paper-translator.db")

	if err := v.BindEnv("translate.model", "PAPER_TRANSLATOR_MODEL"); err != nil {
		return nil, fmt.Errorf("binding PAPER_TRANSLATOR_MODEL environment variable: %w", err)
	}
	if err := v.BindEnv("translate.endpoint", "PAPER_TRANSLATOR_ENDPOINT"); err != nil {
		return nil, fmt.Errorf("binding PAPER_TRANSLATOR_ENDPOINT environment variable: %w", err)
	}
	if err := v.BindEnv("translate.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("binding OPENAI_API_KEY environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading configuration file: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against the struct constraints and reports every
// violation in one message, keyed by config name. Callers that change a
// loaded config (flag overlays) run it again on the merged result.
func Validate(cfg *types.Config) error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}
	return nil
}
