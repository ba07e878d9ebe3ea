package tokenize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cognicore/textrel/pkg/textrel/internalerr"
	"github.com/cognicore/textrel/pkg/textrel/relation"
)

// UnitKind selects the segmentation level for tokenization.
type UnitKind string

const (
	UnitWord      UnitKind = "word"
	UnitCharacter UnitKind = "character"
	UnitSentence  UnitKind = "sentence"
	UnitLine      UnitKind = "line"
	UnitParagraph UnitKind = "paragraph"
	UnitNgram     UnitKind = "ngram"
	UnitRegex     UnitKind = "regex"
)

// Document is a caller-owned input: an opaque id plus an ordered sequence of
// text lines. Meta columns are carried through to every output row unchanged.
// Documents are treated as immutable during tokenization.
type Document struct {
	ID    string
	Lines []string
	Meta  map[string]string
}

// Options configures tokenization.
type Options struct {
	Unit UnitKind

	// N is the window size for UnitNgram. Required, must be >= 1.
	N int

	// Pattern is the split pattern for UnitRegex. Required for that kind.
	Pattern string

	// KeepCase disables the default lowercasing of units.
	KeepCase bool

	// NgramAcrossLines lets n-gram windows span line breaks within a
	// document. By default a window that would cross a line boundary is
	// dropped; windows never span two documents either way.
	NgramAcrossLines bool
}

func (o Options) validate() error {
	switch o.Unit {
	case UnitWord, UnitCharacter, UnitSentence, UnitLine, UnitParagraph:
	case UnitNgram:
		if o.N < 1 {
			return fmt.Errorf("ngram requires n >= 1, got %d: %w", o.N, internalerr.ErrInvalidConfig)
		}
	case UnitRegex:
		if o.Pattern == "" {
			return fmt.Errorf("regex unit requires a pattern: %w", internalerr.ErrInvalidConfig)
		}
		if _, err := regexp.Compile(o.Pattern); err != nil {
			return fmt.Errorf("regex unit pattern: %v: %w", err, internalerr.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("unknown unit kind %q: %w", o.Unit, internalerr.ErrInvalidConfig)
	}
	return nil
}

// Tokenize splits each document into typed units and returns one relation row
// per unit occurrence, in document-then-position order. Positions are 1-based
// per document. Lowercases units unless Options.KeepCase is set; strips
// leading/trailing punctuation from word-level units and drops units that
// become empty. Document meta columns pass through on every row.
//
// Fails with internalerr.ErrInvalidConfig for a bad unit/n/pattern combination
// and internalerr.ErrInvalidInput for a document with an empty id or a body
// that is not valid UTF-8 text.
func Tokenize(docs []Document, opts Options) (relation.Relation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	for i, d := range docs {
		if d.ID == "" {
			return nil, fmt.Errorf("document %d has empty id: %w", i, internalerr.ErrInvalidInput)
		}
		for _, line := range d.Lines {
			if !utf8.ValidString(line) {
				return nil, fmt.Errorf("document %q body is not valid text: %w", d.ID, internalerr.ErrInvalidInput)
			}
		}
	}

	var splitRe *regexp.Regexp
	if opts.Unit == UnitRegex {
		splitRe = regexp.MustCompile(opts.Pattern)
	}

	var rel relation.Relation
	for _, d := range docs {
		units := segment(d, opts, splitRe)
		pos := 0
		for _, u := range units {
			if !opts.KeepCase {
				u = strings.ToLower(u)
			}
			pos++
			rel = append(rel, relation.Row{
				DocID:    d.ID,
				Position: pos,
				Unit:     u,
				Meta:     d.Meta,
			})
		}
	}
	return rel, nil
}

// segment produces the ordered, already-cleaned units for one document.
// Returned units are non-empty; case is still original.
func segment(d Document, opts Options, splitRe *regexp.Regexp) []string {
	switch opts.Unit {
	case UnitWord:
		return wordUnits(d.Lines)
	case UnitCharacter:
		return characterUnits(d.Lines)
	case UnitLine:
		return lineUnits(d.Lines)
	case UnitParagraph:
		return paragraphUnits(d.Lines)
	case UnitSentence:
		return sentenceUnits(d.Lines)
	case UnitNgram:
		return ngramUnits(d.Lines, opts.N, opts.NgramAcrossLines)
	case UnitRegex:
		return regexUnits(d.Lines, splitRe)
	}
	return nil
}

// cleanWord strips leading and trailing non-letter, non-digit runes.
// A unit that becomes empty is discarded by the caller.
func cleanWord(w string) string {
	return strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// wordUnits splits lines on whitespace and cleans each field.
// One output unit per non-empty cleaned field, across lines in order.
func wordUnits(lines []string) []string {
	var out []string
	for _, line := range lines {
		for _, f := range strings.Fields(line) {
			if w := cleanWord(f); w != "" {
				out = append(out, w)
			}
		}
	}
	return out
}

// characterUnits emits one unit per letter or digit rune.
// Punctuation and whitespace runes strip to empty and are dropped.
func characterUnits(lines []string) []string {
	var out []string
	for _, line := range lines {
		for _, r := range line {
			if unicode.IsLetter(r) || unicode.IsNumber(r) {
				out = append(out, string(r))
			}
		}
	}
	return out
}

// lineUnits emits one unit per non-blank line, whitespace-trimmed.
func lineUnits(lines []string) []string {
	var out []string
	for _, line := range lines {
		if l := strings.TrimSpace(line); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// paragraphUnits groups consecutive non-blank lines, joined by a single
// space. A blank line ends the current paragraph.
func paragraphUnits(lines []string) []string {
	var out []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.Join(cur, " "))
			cur = nil
		}
	}
	for _, line := range lines {
		l := strings.TrimSpace(line)
		if l == "" {
			flush()
			continue
		}
		cur = append(cur, l)
	}
	flush()
	return out
}

// sentenceUnits joins the document's lines and splits on terminal
// punctuation (. ! ?) followed by whitespace or end of text.
func sentenceUnits(lines []string) []string {
	text := strings.TrimSpace(strings.Join(lines, " "))
	if text == "" {
		return nil
	}

	var out []string
	var cur strings.Builder
	runes := []rune(text)
	for i, r := range runes {
		cur.WriteRune(r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		atEnd := i == len(runes)-1
		if atEnd || unicode.IsSpace(runes[i+1]) {
			if s := strings.TrimSpace(cur.String()); s != "" {
				out = append(out, s)
			}
			cur.Reset()
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		out = append(out, s)
	}
	return out
}

// ngramUnits slides an n-unit window (stride 1) over each line's word
// sequence and joins each window with single spaces. A window that would
// cross a line boundary is dropped unless acrossLines is set; windows
// never span two documents either way.
func ngramUnits(lines []string, n int, acrossLines bool) []string {
	var seqs [][]string
	if acrossLines {
		seqs = [][]string{wordUnits(lines)}
	} else {
		for _, line := range lines {
			seqs = append(seqs, wordUnits([]string{line}))
		}
	}

	var out []string
	for _, words := range seqs {
		for i := 0; i+n <= len(words); i++ {
			out = append(out, strings.Join(words[i:i+n], " "))
		}
	}
	return out
}

// regexUnits splits the joined document text on the pattern and cleans
// each piece the way word units are cleaned.
func regexUnits(lines []string, re *regexp.Regexp) []string {
	text := strings.Join(lines, " ")
	var out []string
	for _, piece := range re.Split(text, -1) {
		if w := cleanWord(piece); w != "" {
			out = append(out, w)
		}
	}
	return out
}
