package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"yes", "y\n", true},
		{"YES with spaces", "  YES \n", true},
		{"no", "n\n", false},
		{"bare enter", "\n", false},
		{"other word", "sure\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if got := confirm(strings.NewReader(tt.input), &out, "Remove log?"); got != tt.expected {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			if out.String() != "Remove log? [y/N]: " {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}

func TestConfirm_ReadFailure(t *testing.T) {
	for name, r := range map[string]io.Reader{
		"eof":   strings.NewReader(""),
		"error": &failingReader{},
	} {
		t.Run(name, func(t *testing.T) {
			if confirm(r, io.Discard, "Remove log?") {
				t.Error("confirm should be false when input cannot be read")
			}
		})
	}
}

// failingReader returns an error on every read
type failingReader struct{}

func (f *failingReader) Read(p []byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

// writeLog creates a throwaway log file and returns its path.
func writeLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wowint-debug.log")
	if err := os.WriteFile(path, []byte("level=INFO msg=started\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestRunClean(t *testing.T) {
	origSkip := skipConfirm
	defer func() { skipConfirm = origSkip }()

	tests := []struct {
		name        string
		skip        bool
		input       string
		wantRemoved bool
		wantOutput  []string
	}{
		{"confirmed", false, "y\n", true, []string{"This will remove:", "Continue? [y/N]: ", "Removed 1 log file(s)."}},
		{"declined", false, "n\n", false, []string{"Continue? [y/N]: ", "Aborted."}},
		{"no answer", false, "", false, []string{"Aborted."}},
		{"yes flag", true, "", true, []string{"Removed 1 log file(s)."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skipConfirm = tt.skip
			path := writeLog(t)

			var out bytes.Buffer
			if err := runCleanWithReader(strings.NewReader(tt.input), &out, path); err != nil {
				t.Fatalf("runCleanWithReader: %v", err)
			}

			if removed := !fileExists(path); removed != tt.wantRemoved {
				t.Errorf("log removed = %v, want %v", removed, tt.wantRemoved)
			}
			for _, want := range tt.wantOutput {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
			if tt.skip && strings.Contains(out.String(), "[y/N]") {
				t.Error("--yes should not prompt")
			}
		})
	}
}

func TestRunClean_NothingToClean(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing.log")
	if err := runCleanWithReader(strings.NewReader("y\n"), &out, path); err != nil {
		t.Fatalf("runCleanWithReader: %v", err)
	}
	if out.String() != "Nothing to clean.\n" {
		t.Errorf("output = %q", out.String())
	}
}
