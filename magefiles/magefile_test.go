//go:build mage

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCountGoLines(t *testing.T) {
	dir := t.TempDir()

	writeStatFile(t, dir, "a.go", "package a\n\nvar X = 1\n")
	writeStatFile(t, dir, "a_test.go", "package a\n\nfunc TestX(t *T) {}\n")
	writeStatFile(t, dir, filepath.Join("sub", "b.go"), "package b\nvar Y = 2\n")
	writeStatFile(t, dir, "notes.md", "not go\n")
	writeStatFile(t, dir, filepath.Join(".hidden", "c.go"), "package c\n")
	writeStatFile(t, dir, filepath.Join("_scratch", "d.go"), "package d\n")
	writeStatFile(t, dir, filepath.Join("bin", "e.go"), "package e\n")

	prod, test, err := countGoLines(dir)
	if err != nil {
		t.Fatalf("countGoLines: %v", err)
	}
	if prod != 4 {
		t.Errorf("production lines = %d, want 4", prod)
	}
	if test != 2 {
		t.Errorf("test lines = %d, want 2", test)
	}
}

func writeStatFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
