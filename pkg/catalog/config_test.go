package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coolbeans/citelint/pkg/style"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadFileYAML(t *testing.T) {
	cat := New()
	before := len(cat.InText(style.APA))

	path := writeFile(t, t.TempDir(), "patterns.yaml", `
in_text_patterns:
  apa:
    - '\(see [A-Z][a-z]+, \d{4}\)'
full_citation_patterns:
  ieee:
    - '\[\d+\] Anonymous\. .+'
`)
	if err := cat.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if got := len(cat.InText(style.APA)); got != before+1 {
		t.Errorf("APA in-text pattern count = %d, want %d", got, before+1)
	}
	matched := false
	for _, re := range cat.InText(style.APA) {
		if re.MatchString("(see Smith, 2020)") {
			matched = true
		}
	}
	if !matched {
		t.Error("custom APA pattern not active after load")
	}
}

func TestLoadFileJSON(t *testing.T) {
	cat := New()
	before := len(cat.InText(style.MLA))

	path := writeFile(t, t.TempDir(), "patterns.json",
		`{"in_text_patterns": {"mla": ["\\(cf\\. [A-Z][a-z]+ \\d+\\)"]}}`)
	if err := cat.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := len(cat.InText(style.MLA)); got != before+1 {
		t.Errorf("MLA in-text pattern count = %d, want %d", got, before+1)
	}
}

func TestLoadFileRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown style", "in_text_patterns:\n  turabian:\n    - 'x'\n"},
		{"invalid pattern", "in_text_patterns:\n  apa:\n    - '(['\n"},
		{"empty pattern", "in_text_patterns:\n  apa:\n    - ''\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := New()
			before := len(cat.InText(style.APA))

			path := writeFile(t, t.TempDir(), "patterns.yaml", tt.content)
			err := cat.LoadFile(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Errorf("error %v is not ValidationErrors", err)
			}
			if got := len(cat.InText(style.APA)); got != before {
				t.Errorf("catalog changed despite rejected file")
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	cat := New()
	if err := cat.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWatchReloadsOnChange(t *testing.T) {
	cat := New()
	dir := t.TempDir()
	path := writeFile(t, dir, "patterns.yaml", "in_text_patterns: {}\n")

	watcher, err := cat.Watch(path, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer watcher.Stop()

	before := len(cat.InText(style.APA))
	writeFile(t, dir, "patterns.yaml", `
in_text_patterns:
  apa:
    - '\(watched [A-Z][a-z]+, \d{4}\)'
`)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(cat.InText(style.APA)) == before+1 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("catalog not reloaded after file change")
}
