package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadText_FromArgs(t *testing.T) {
	text, err := readText([]string{"Update", "the", "report."}, "", strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Update the report." {
		t.Errorf("text = %q, want joined args", text)
	}
}

func TestReadText_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instruction.txt")
	if err := os.WriteFile(path, []byte("  Check the numbers.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := readText(nil, path, strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Check the numbers." {
		t.Errorf("text = %q, want trimmed file contents", text)
	}
}

func TestReadText_FileBeatsArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instruction.txt")
	if err := os.WriteFile(path, []byte("from file"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := readText([]string{"from", "args"}, path, strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "from file" {
		t.Errorf("text = %q, want file contents to win", text)
	}
}

func TestReadText_FromStdin(t *testing.T) {
	text, err := readText(nil, "", strings.NewReader("piped instruction\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "piped instruction" {
		t.Errorf("text = %q, want trimmed stdin", text)
	}
}

func TestReadText_BlankInputRejected(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\n"} {
		_, err := readText(nil, "", strings.NewReader(input))
		if !errors.Is(err, errNoText) {
			t.Errorf("input %q: expected errNoText, got %v", input, err)
		}
	}
}

func TestReadText_MissingFile(t *testing.T) {
	_, err := readText(nil, filepath.Join(t.TempDir(), "absent.txt"), strings.NewReader(""))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
