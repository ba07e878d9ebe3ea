// Package cast converts term-document count tables to sparse document-term
// matrices and back. Both directions are pure and allocate new structures;
// the round trip reproduces the input table up to row ordering.
package cast

import "sort"

// DocTermMatrix is a sparse document × term count matrix. Entries not
// present are implicitly zero. Row and column indices map back to document
// ids and terms so the cast is lossless.
type DocTermMatrix struct {
	docs    []string
	terms   []string
	docIdx  map[string]int
	termIdx map[string]int
	rows    []map[int]int64 // row index -> col index -> count
}

// Dims returns (number of documents, number of terms).
func (m *DocTermMatrix) Dims() (docs, terms int) {
	return len(m.docs), len(m.terms)
}

// DocAt returns the document id at row index i.
func (m *DocTermMatrix) DocAt(i int) (string, bool) {
	if i < 0 || i >= len(m.docs) {
		return "", false
	}
	return m.docs[i], true
}

// TermAt returns the term at column index j.
func (m *DocTermMatrix) TermAt(j int) (string, bool) {
	if j < 0 || j >= len(m.terms) {
		return "", false
	}
	return m.terms[j], true
}

// DocIndex returns the row index for a document id.
func (m *DocTermMatrix) DocIndex(doc string) (int, bool) {
	i, ok := m.docIdx[doc]
	return i, ok
}

// TermIndex returns the column index for a term.
func (m *DocTermMatrix) TermIndex(term string) (int, bool) {
	j, ok := m.termIdx[term]
	return j, ok
}

// Count returns the entry at (row, col); absent entries are zero.
func (m *DocTermMatrix) Count(row, col int) int64 {
	if row < 0 || row >= len(m.rows) {
		return 0
	}
	return m.rows[row][col]
}

// Nnz returns the number of explicit non-zero entries.
func (m *DocTermMatrix) Nnz() int {
	n := 0
	for _, r := range m.rows {
		n += len(r)
	}
	return n
}

// NonZero visits every non-zero entry in row-major order, columns ascending
// within a row. The visit function returns false to stop early. This iterator
// is the contract any external cast target consumes.
func (m *DocTermMatrix) NonZero(visit func(row, col int, count int64) bool) {
	for i, r := range m.rows {
		cols := make([]int, 0, len(r))
		for c := range r {
			cols = append(cols, c)
		}
		sort.Ints(cols)
		for _, c := range cols {
			if !visit(i, c, r[c]) {
				return
			}
		}
	}
}
