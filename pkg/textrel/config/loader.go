package config

import (
	"fmt"

	"github.com/cognicore/textrel/pkg/textrel/lexicon"
	"github.com/cognicore/textrel/pkg/textrel/stoplist"
	"github.com/cognicore/textrel/pkg/textrel/tokenize"
)

// Loader loads all configuration files and constructs components
type Loader struct {
	TokenizerPath string
	StoplistPath  string
	LexiconPath   string
}

// Components holds all loaded configuration components
type Components struct {
	Options tokenize.Options
	Stops   *stoplist.Set
	Lexicon *lexicon.Lexicon
}

// Load reads all configuration files and returns initialized components.
// Missing paths fall back to defaults: word tokenization, an empty stop
// set, and no lexicon.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{
		Options: tokenize.Options{Unit: tokenize.UnitWord},
		Stops:   stoplist.New(nil),
	}

	if l.TokenizerPath != "" {
		tok, err := LoadTokenizer(l.TokenizerPath)
		if err != nil {
			return nil, fmt.Errorf("load tokenizer config: %w", err)
		}
		comp.Options = tok.Options()
	}

	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stops = stoplist.New(sl.Terms)
	}

	if l.LexiconPath != "" {
		lex, err := lexicon.LoadFromYAML(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		comp.Lexicon = lex
	}

	return comp, nil
}
