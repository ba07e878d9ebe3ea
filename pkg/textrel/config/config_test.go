package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/textrel/pkg/textrel/tokenize"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadStoplist(t *testing.T) {
	path := writeFile(t, "stoplist.yaml", "terms:\n  - the\n  - and\n  - of\n")

	sl, err := LoadStoplist(path)
	if err != nil {
		t.Fatalf("LoadStoplist failed: %v", err)
	}
	if len(sl.Terms) != 3 || sl.Terms[0] != "the" {
		t.Errorf("got %v", sl.Terms)
	}
}

func TestLoadStoplistMissingFile(t *testing.T) {
	if _, err := LoadStoplist(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadTokenizer(t *testing.T) {
	path := writeFile(t, "tokenizer.yaml", "unit: ngram\nn: 2\nngram_across_lines: true\n")

	cfg, err := LoadTokenizer(path)
	if err != nil {
		t.Fatalf("LoadTokenizer failed: %v", err)
	}

	opts := cfg.Options()
	if opts.Unit != tokenize.UnitNgram || opts.N != 2 || !opts.NgramAcrossLines {
		t.Errorf("got %+v", opts)
	}
}

func TestTokenizerDefaultsToWord(t *testing.T) {
	cfg := &Tokenizer{}
	if cfg.Options().Unit != tokenize.UnitWord {
		t.Errorf("zero config unit = %q, want word", cfg.Options().Unit)
	}
}
