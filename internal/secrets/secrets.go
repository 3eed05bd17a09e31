// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets reads API keys from a directory of plain-text files,
// one secret per file: the filename is the key, the trimmed contents the
// value. The CLI consults openai-api-key (OpenAI-compatible translation
// backends) and semantic-scholar-api-key (the semantic_scholar search
// source); other files load fine and are simply never looked up.
package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Load reads every regular file in dir into a key → value map. Dotfiles
// and subdirectories are ignored and blank files are dropped. A missing
// dir yields an empty map; a file that cannot be read warns on stderr
// and is skipped.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	keys := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping secret %s: %v\n", name, err)
			continue
		}
		if v := strings.TrimSpace(string(data)); v != "" {
			keys[name] = v
		}
	}
	return keys, nil
}
