package cast

import (
	"fmt"

	"github.com/cognicore/textrel/pkg/textrel/internalerr"
	"github.com/cognicore/textrel/pkg/textrel/relation"
)

// Caster builds sparse matrices from term-document count tables. Index
// assignment is first-seen and shared across calls on one instance, so two
// matrices cast by the same Caster use consistent row and column positions.
// A failed cast registers nothing: only ids from successful calls enter the
// shared ordering.
type Caster struct {
	docs    []string
	terms   []string
	docIdx  map[string]int
	termIdx map[string]int
}

// NewCaster creates a Caster with empty index maps.
func NewCaster() *Caster {
	return &Caster{
		docIdx:  make(map[string]int),
		termIdx: make(map[string]int),
	}
}

// stage holds index assignments for one cast until it succeeds, so a
// failing call cannot leak ids into the caster's first-seen ordering.
type stage struct {
	c        *Caster
	newDocs  []string
	newTerms []string
	docIdx   map[string]int
	termIdx  map[string]int
}

func newStage(c *Caster) *stage {
	return &stage{
		c:       c,
		docIdx:  make(map[string]int),
		termIdx: make(map[string]int),
	}
}

func (s *stage) docIndex(doc string) int {
	if i, ok := s.c.docIdx[doc]; ok {
		return i
	}
	if i, ok := s.docIdx[doc]; ok {
		return i
	}
	i := len(s.c.docs) + len(s.newDocs)
	s.newDocs = append(s.newDocs, doc)
	s.docIdx[doc] = i
	return i
}

func (s *stage) termIndex(term string) int {
	if j, ok := s.c.termIdx[term]; ok {
		return j
	}
	if j, ok := s.termIdx[term]; ok {
		return j
	}
	j := len(s.c.terms) + len(s.newTerms)
	s.newTerms = append(s.newTerms, term)
	s.termIdx[term] = j
	return j
}

func (s *stage) commit() {
	for _, doc := range s.newDocs {
		s.c.docIdx[doc] = len(s.c.docs)
		s.c.docs = append(s.c.docs, doc)
	}
	for _, term := range s.newTerms {
		s.c.termIdx[term] = len(s.c.terms)
		s.c.terms = append(s.c.terms, term)
	}
}

// ToSparse casts a pre-aggregated count table to a sparse matrix. Each input
// row becomes exactly one entry; a repeated (document, term) key means the
// caller skipped aggregation and fails with internalerr.ErrDuplicateKey.
func (c *Caster) ToSparse(counts []relation.TermCount) (*DocTermMatrix, error) {
	st := newStage(c)
	m := &DocTermMatrix{
		docIdx:  make(map[string]int, len(c.docIdx)),
		termIdx: make(map[string]int, len(c.termIdx)),
	}

	for _, tc := range counts {
		if tc.Count < 1 {
			return nil, fmt.Errorf("cast: (%s, %s) has count %d, want >= 1: %w",
				tc.DocID, tc.Term, tc.Count, internalerr.ErrInvalidInput)
		}
		i := st.docIndex(tc.DocID)
		j := st.termIndex(tc.Term)
		for len(m.rows) <= i {
			m.rows = append(m.rows, make(map[int]int64))
		}
		if _, exists := m.rows[i][j]; exists {
			return nil, fmt.Errorf("cast: (%s, %s) appears twice, pre-aggregate first: %w",
				tc.DocID, tc.Term, internalerr.ErrDuplicateKey)
		}
		m.rows[i][j] = tc.Count
	}
	st.commit()

	// Snapshot the caster's index maps so the matrix stays valid even if
	// this caster later grows.
	m.docs = append([]string(nil), c.docs...)
	m.terms = append([]string(nil), c.terms...)
	for doc, i := range c.docIdx {
		m.docIdx[doc] = i
	}
	for term, j := range c.termIdx {
		m.termIdx[term] = j
	}
	for len(m.rows) < len(m.docs) {
		m.rows = append(m.rows, make(map[int]int64))
	}
	return m, nil
}

// FromSparse tidies a sparse matrix back into a term-document count table,
// one row per non-zero entry. Explicit zeros are never materialized.
func FromSparse(m *DocTermMatrix) []relation.TermCount {
	out := make([]relation.TermCount, 0, m.Nnz())
	m.NonZero(func(row, col int, count int64) bool {
		doc, _ := m.DocAt(row)
		term, _ := m.TermAt(col)
		out = append(out, relation.TermCount{DocID: doc, Term: term, Count: count})
		return true
	})
	return out
}
