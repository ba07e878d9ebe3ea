package relation

import (
	"fmt"
	"sort"

	"github.com/cognicore/textrel/pkg/textrel/internalerr"
)

// Row is one unit occurrence: the core schema (document id, position, unit)
// plus an explicit side-mapping of carried columns. Components declare which
// Meta keys they read; everything else passes through untouched.
type Row struct {
	DocID    string
	Position int
	Unit     string
	Meta     map[string]string
}

// Relation is the canonical tidy table: one row per unit occurrence, in
// document traversal order. Repeated units are expected and meaningful;
// their multiplicity is the support for frequency statistics.
type Relation []Row

// TermCount is one row of the derived document × term aggregate.
type TermCount struct {
	DocID string
	Term  string
	Count int64
}

// Count aggregates a relation into one TermCount per distinct
// (document, term) pair. Output is sorted by (DocID, Term) so repeated
// aggregations of the same relation are byte-identical.
func Count(rel Relation) []TermCount {
	type key struct{ doc, term string }
	counts := make(map[key]int64, len(rel))
	for _, r := range rel {
		counts[key{r.DocID, r.Unit}]++
	}

	out := make([]TermCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, TermCount{DocID: k.doc, Term: k.term, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DocID != out[j].DocID {
			return out[i].DocID < out[j].DocID
		}
		return out[i].Term < out[j].Term
	})
	return out
}

// Filter returns the rows for which pred is true, preserving order.
func Filter(rel Relation, pred func(Row) bool) Relation {
	var out Relation
	for _, r := range rel {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Stopset is the minimal stop-set contract the anti-join needs.
// Stop sets are ordinary inputs, never ambient state.
type Stopset interface {
	IsStop(term string) bool
}

// WithoutStopwords anti-joins the relation against a stop set,
// dropping every row whose unit is a stopword.
func WithoutStopwords(rel Relation, stops Stopset) Relation {
	if stops == nil {
		return rel
	}
	return Filter(rel, func(r Row) bool { return !stops.IsStop(r.Unit) })
}

// Scored is a relation row joined with a lexicon score.
type Scored struct {
	Row
	Score float64
	Label string
}

// Lexicon is the equality-join contract for external term → score mappings.
// Content and loading live with the caller; the join only needs lookups.
type Lexicon interface {
	Lookup(term string) (score float64, label string, ok bool)
}

// JoinLexicon inner-joins the relation with a lexicon on the unit column.
// Rows whose unit is absent from the lexicon are dropped; matched rows carry
// the lexicon score and label alongside the original columns.
func JoinLexicon(rel Relation, lex Lexicon) ([]Scored, error) {
	if lex == nil {
		return nil, fmt.Errorf("join lexicon: %w", internalerr.ErrInvalidInput)
	}
	var out []Scored
	for _, r := range rel {
		score, label, ok := lex.Lookup(r.Unit)
		if !ok {
			continue
		}
		out = append(out, Scored{Row: r, Score: score, Label: label})
	}
	return out, nil
}

// Documents returns the distinct document ids in first-seen order.
func Documents(rel Relation) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rel {
		if _, ok := seen[r.DocID]; ok {
			continue
		}
		seen[r.DocID] = struct{}{}
		out = append(out, r.DocID)
	}
	return out
}

// GroupBy partitions row indices by a caller-supplied key. Group contents
// keep relation order; group iteration order is the key's first appearance.
func GroupBy(rel Relation, key func(Row) string) ([]string, map[string][]Row) {
	groups := make(map[string][]Row)
	var order []string
	for _, r := range rel {
		k := key(r)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}
	return order, groups
}
