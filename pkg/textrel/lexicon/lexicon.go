// Package lexicon holds external term → score mappings, the join input used
// by sentiment-style consumers. Content is loaded from caller-supplied files
// and passed in explicitly; the core relation join only needs Lookup.
package lexicon

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/textrel/pkg/textrel/internalerr"
)

// Entry is one lexicon term with a numeric score and an optional
// categorical label (e.g. "positive").
type Entry struct {
	Term  string  `yaml:"term"`
	Score float64 `yaml:"score"`
	Label string  `yaml:"label,omitempty"`
}

// Lexicon is a term-keyed score table. Terms are matched case-insensitively
// to align with the tokenizer's default lowercasing.
type Lexicon struct {
	entries map[string]Entry
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{entries: make(map[string]Entry)}
}

// Add inserts or replaces an entry.
func (l *Lexicon) Add(e Entry) {
	term := strings.ToLower(strings.TrimSpace(e.Term))
	if term == "" {
		return
	}
	e.Term = term
	l.entries[term] = e
}

// Lookup returns the score and label for a term.
func (l *Lexicon) Lookup(term string) (score float64, label string, ok bool) {
	e, ok := l.entries[strings.ToLower(term)]
	if !ok {
		return 0, "", false
	}
	return e.Score, e.Label, true
}

// Len returns the number of entries.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Terms returns all lexicon terms in sorted order.
func (l *Lexicon) Terms() []string {
	out := make([]string, 0, len(l.entries))
	for t := range l.entries {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

type lexiconFile struct {
	Terms []Entry `yaml:"terms"`
}

// LoadFromYAML loads a lexicon from a YAML file.
//
// Expected format:
//
//	terms:
//	  - term: good
//	    score: 1
//	    label: positive
//	  - term: bad
//	    score: -1
//	    label: negative
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}

	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse lexicon: %v: %w", err, internalerr.ErrInvalidConfig)
	}

	l := New()
	for _, e := range f.Terms {
		l.Add(e)
	}
	return l, nil
}
