// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/promptlib/cli/internal/output"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// TemplateTree creates a template root in a temporary directory. Files maps
// slash-separated paths relative to the root to their content.
func TemplateTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "templates")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("failed to create template root: %v", err)
	}
	for name, content := range files {
		WriteFile(t, root, filepath.FromSlash(name), content)
	}
	return root
}

// ScenarioTree creates the two-template library used across package tests:
// writing/essay.md mentions an outline and code/review.md mentions lint.
func ScenarioTree(t *testing.T) string {
	t.Helper()
	return TemplateTree(t, map[string]string{
		"writing/essay.md": "Write a draft outline first.\n",
		"code/review.md":   "Run lint checks before review.\n",
	})
}

// CaptureLog routes the CLI logger to a buffer for the rest of the test.
func CaptureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	output.SetupLogging(output.LogConfig{Writer: &buf})
	t.Cleanup(func() {
		output.SetupLogging(output.LogConfig{})
	})
	return &buf
}
