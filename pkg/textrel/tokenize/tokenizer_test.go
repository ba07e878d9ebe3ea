package tokenize

import (
	"errors"
	"strings"
	"testing"

	"github.com/cognicore/textrel/pkg/textrel/internalerr"
)

func units(t *testing.T, docs []Document, opts Options) []string {
	t.Helper()
	rel, err := Tokenize(docs, opts)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	out := make([]string, len(rel))
	for i, r := range rel {
		out[i] = r.Unit
	}
	return out
}

func TestWordTokenization(t *testing.T) {
	docs := []Document{{ID: "d1", Lines: []string{"The QUICK brown fox.", "It jumped!"}}}

	got := units(t, docs, Options{Unit: UnitWord})
	want := []string{"the", "quick", "brown", "fox", "it", "jumped"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWordCountLaw(t *testing.T) {
	// Row count equals the number of non-empty whitespace-delimited units,
	// with punctuation-only units removed.
	docs := []Document{
		{ID: "a", Lines: []string{"one two  three", "-- four!"}},
		{ID: "b", Lines: []string{"five,six seven"}}, // "five,six" is one field
	}

	rel, err := Tokenize(docs, Options{Unit: UnitWord})
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	expected := 0
	for _, d := range docs {
		for _, line := range d.Lines {
			for _, f := range strings.Fields(line) {
				if cleanWord(f) != "" {
					expected++
				}
			}
		}
	}
	if len(rel) != expected {
		t.Errorf("got %d rows, want %d", len(rel), expected)
	}
}

func TestPunctuationOnlyUnitDropped(t *testing.T) {
	docs := []Document{{ID: "d1", Lines: []string{"wait... -- !!! done"}}}

	got := units(t, docs, Options{Unit: UnitWord})
	want := []string{"wait", "done"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, u := range got {
		if u == "" {
			t.Error("empty unit emitted")
		}
	}
}

func TestKeepCase(t *testing.T) {
	docs := []Document{{ID: "d1", Lines: []string{"Hello World"}}}

	got := units(t, docs, Options{Unit: UnitWord, KeepCase: true})
	want := []string{"Hello", "World"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPositionsPerDocument(t *testing.T) {
	docs := []Document{
		{ID: "d1", Lines: []string{"a b c"}},
		{ID: "d2", Lines: []string{"x y"}},
	}

	rel, err := Tokenize(docs, Options{Unit: UnitWord})
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	wantPos := []int{1, 2, 3, 1, 2}
	wantDoc := []string{"d1", "d1", "d1", "d2", "d2"}
	for i, r := range rel {
		if r.Position != wantPos[i] || r.DocID != wantDoc[i] {
			t.Errorf("row %d: got (%s, %d), want (%s, %d)", i, r.DocID, r.Position, wantDoc[i], wantPos[i])
		}
	}
}

func TestMetaPassthrough(t *testing.T) {
	docs := []Document{{
		ID:    "d1",
		Lines: []string{"hello"},
		Meta:  map[string]string{"author": "Austen", "year": "1811"},
	}}

	rel, err := Tokenize(docs, Options{Unit: UnitWord})
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if rel[0].Meta["author"] != "Austen" || rel[0].Meta["year"] != "1811" {
		t.Errorf("meta not carried: %v", rel[0].Meta)
	}
}

func TestBigramWindowLaw(t *testing.T) {
	docs := []Document{{ID: "d1", Lines: []string{"a b c d"}}}

	got := units(t, docs, Options{Unit: UnitNgram, N: 2})
	want := []string{"a b", "b c", "c d"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNgramNeverSpansDocuments(t *testing.T) {
	docs := []Document{
		{ID: "d1", Lines: []string{"a b"}},
		{ID: "d2", Lines: []string{"c d"}},
	}

	got := units(t, docs, Options{Unit: UnitNgram, N: 2})
	for _, u := range got {
		if u == "b c" {
			t.Error("n-gram spans two documents")
		}
	}
	want := []string{"a b", "c d"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNgramDropsWindowsAcrossLines(t *testing.T) {
	docs := []Document{{ID: "d1", Lines: []string{"a b", "c d"}}}

	got := units(t, docs, Options{Unit: UnitNgram, N: 2})
	for _, u := range got {
		if u == "b c" {
			t.Error("n-gram spans a line boundary")
		}
	}
	want := []string{"a b", "c d"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("got %v, want %v", got, want)
	}

	got = units(t, docs, Options{Unit: UnitNgram, N: 2, NgramAcrossLines: true})
	want = []string{"a b", "b c", "c d"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("across lines: got %v, want %v", got, want)
	}
}

func TestUnigramEqualsWords(t *testing.T) {
	docs := []Document{{ID: "d1", Lines: []string{"one two three"}}}

	words := units(t, docs, Options{Unit: UnitWord})
	grams := units(t, docs, Options{Unit: UnitNgram, N: 1})
	if strings.Join(words, "|") != strings.Join(grams, "|") {
		t.Errorf("n=1 grams %v differ from words %v", grams, words)
	}
}

func TestSentenceUnits(t *testing.T) {
	docs := []Document{{ID: "d1", Lines: []string{"First one. Second", "one! Third?"}}}

	got := units(t, docs, Options{Unit: UnitSentence})
	want := []string{"first one.", "second one!", "third?"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLineAndParagraphUnits(t *testing.T) {
	docs := []Document{{ID: "d1", Lines: []string{"first line", "still first para", "", "second para"}}}

	lines := units(t, docs, Options{Unit: UnitLine})
	if len(lines) != 3 {
		t.Errorf("got %d line units, want 3", len(lines))
	}

	paras := units(t, docs, Options{Unit: UnitParagraph})
	want := []string{"first line still first para", "second para"}
	if strings.Join(paras, "|") != strings.Join(want, "|") {
		t.Errorf("got %v, want %v", paras, want)
	}
}

func TestCharacterUnits(t *testing.T) {
	docs := []Document{{ID: "d1", Lines: []string{"Ab, c"}}}

	got := units(t, docs, Options{Unit: UnitCharacter})
	want := []string{"a", "b", "c"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRegexUnits(t *testing.T) {
	docs := []Document{{ID: "d1", Lines: []string{"alpha--beta--gamma"}}}

	got := units(t, docs, Options{Unit: UnitRegex, Pattern: `--`})
	want := []string{"alpha", "beta", "gamma"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestConfigErrors(t *testing.T) {
	docs := []Document{{ID: "d1", Lines: []string{"a"}}}

	cases := []struct {
		name string
		opts Options
	}{
		{"unknown unit", Options{Unit: "syllable"}},
		{"ngram without n", Options{Unit: UnitNgram}},
		{"ngram n zero", Options{Unit: UnitNgram, N: 0}},
		{"regex without pattern", Options{Unit: UnitRegex}},
		{"regex bad pattern", Options{Unit: UnitRegex, Pattern: "("}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Tokenize(docs, tc.opts)
			if !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestInputErrors(t *testing.T) {
	cases := []struct {
		name string
		docs []Document
	}{
		{"empty id", []Document{{ID: "", Lines: []string{"a"}}}},
		{"invalid utf8", []Document{{ID: "d1", Lines: []string{string([]byte{0xff, 0xfe})}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Tokenize(tc.docs, Options{Unit: UnitWord})
			if !errors.Is(err, internalerr.ErrInvalidInput) {
				t.Errorf("got %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestNoPartialResultOnFailure(t *testing.T) {
	docs := []Document{
		{ID: "good", Lines: []string{"fine text"}},
		{ID: "", Lines: []string{"bad doc"}},
	}

	rel, err := Tokenize(docs, Options{Unit: UnitWord})
	if err == nil {
		t.Fatal("expected error")
	}
	if rel != nil {
		t.Errorf("got partial relation with %d rows, want none", len(rel))
	}
}
