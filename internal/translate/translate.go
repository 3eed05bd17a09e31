// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package translate turns English abstracts into Japanese through a
// locally hosted inference endpoint.
package translate

import (
	"context"
	"fmt"
	"strings"
)

// Translator converts English text to Japanese. Implementations perform
// one attempt per call; pacing and error recovery belong to the caller.
type Translator interface {
	Name() string
	Translate(ctx context.Context, text string) (string, error)
}

// Kind classifies a translation failure.
type Kind string

const (
	// KindConnectivity covers transport failures and timeouts reaching
	// the inference endpoint.
	KindConnectivity Kind = "connectivity"

	// KindStatus covers non-200 responses from the endpoint.
	KindStatus Kind = "status"

	// KindParse covers response bodies that cannot be decoded.
	KindParse Kind = "parse"
)

// Error is a classified translation failure. Callers inspect Kind to
// pick the fixed inline message recorded in the results file.
type Error struct {
	Kind    Kind
	Backend string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Backend, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Message returns the fixed Japanese text recorded in the results file
// in place of a translation.
func (e *Error) Message() string {
	switch e.Kind {
	case KindParse:
		return "翻訳エラー：Ollamaからのレスポンスの解析に失敗しました。"
	default:
		return "翻訳エラー：Ollama APIに接続できませんでした。Ollamaが起動しているか確認してください。"
	}
}

// noTranslation is recorded when the endpoint answers without any
// translated text.
const noTranslation = "翻訳結果がありません。"

// unwantedPhrases are preambles some models emit despite the prompt
// forbidding them.
var unwantedPhrases = []string{
	"Here is the translation of the English text into Japanese:",
	"Here is the translation:",
}

// cleanTranslation trims the raw model output and removes known preamble
// phrases.
func cleanTranslation(s string) string {
	s = strings.TrimSpace(s)
	for _, phrase := range unwantedPhrases {
		s = strings.ReplaceAll(s, phrase, "")
	}
	return strings.TrimSpace(s)
}
