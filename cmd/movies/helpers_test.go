package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfirmFrom(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{"yes short", "y\n", true},
		{"yes long", "yes\n", true},
		{"yes uppercase", "Y\n", true},
		{"no", "n\n", false},
		{"empty line", "\n", false},
		{"garbage", "sure\n", false},
		{"closed input", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := confirmFrom(strings.NewReader(tc.input), "proceed?")
			if got != tc.expected {
				t.Errorf("confirmFrom(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestReadTitleArg(t *testing.T) {
	if got := readTitleArg([]string{"The", "Dark", "Knight"}); got != "The Dark Knight" {
		t.Errorf("expected 'The Dark Knight', got %q", got)
	}
	if got := readTitleArg(nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestReadTitleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.txt")
	content := "Inception\n\n# a comment\n  Gladiator  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	titles, err := readTitleFile(path)
	if err != nil {
		t.Fatalf("failed to read titles: %v", err)
	}

	if len(titles) != 2 {
		t.Fatalf("expected 2 titles, got %d: %v", len(titles), titles)
	}
	if titles[0] != "Inception" || titles[1] != "Gladiator" {
		t.Errorf("unexpected titles: %v", titles)
	}
}

func TestReadTitleFileMissing(t *testing.T) {
	_, err := readTitleFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
