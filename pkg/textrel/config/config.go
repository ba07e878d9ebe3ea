package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/textrel/pkg/textrel/internalerr"
	"github.com/cognicore/textrel/pkg/textrel/tokenize"
)

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("parse stoplist: %v: %w", err, internalerr.ErrInvalidConfig)
	}

	return &sl, nil
}

// Tokenizer represents the tokenizer configuration
type Tokenizer struct {
	Unit             string `yaml:"unit"`
	N                int    `yaml:"n,omitempty"`
	Pattern          string `yaml:"pattern,omitempty"`
	KeepCase         bool   `yaml:"keep_case,omitempty"`
	NgramAcrossLines bool   `yaml:"ngram_across_lines,omitempty"`
}

// LoadTokenizer loads tokenizer options from a YAML file
func LoadTokenizer(path string) (*Tokenizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var t Tokenizer
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse tokenizer config: %v: %w", err, internalerr.ErrInvalidConfig)
	}

	return &t, nil
}

// Options converts the configuration to tokenize.Options.
// The zero unit defaults to word tokenization.
func (t *Tokenizer) Options() tokenize.Options {
	unit := tokenize.UnitKind(t.Unit)
	if t.Unit == "" {
		unit = tokenize.UnitWord
	}
	return tokenize.Options{
		Unit:             unit,
		N:                t.N,
		Pattern:          t.Pattern,
		KeepCase:         t.KeepCase,
		NgramAcrossLines: t.NgramAcrossLines,
	}
}
