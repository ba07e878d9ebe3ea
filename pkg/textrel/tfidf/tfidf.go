// Package tfidf weighs term-document counts by term frequency times inverse
// document frequency, operating purely on the tidy count table.
package tfidf

import (
	"fmt"
	"math"
	"sort"

	"github.com/cognicore/textrel/pkg/textrel/internalerr"
	"github.com/cognicore/textrel/pkg/textrel/relation"
)

// Weight extends one term-document count with its tf, idf and tf-idf.
type Weight struct {
	DocID string
	Term  string
	Count int64
	TF    float64
	IDF   float64
	TFIDF float64
}

// Weigh computes one Weight per input count row.
//
//	tf(d,t)  = count(d,t) / total count in d
//	idf(t)   = ln(total documents / documents containing t)
//	tfidf    = tf * idf
//
// A term present in every document gets idf = ln(1) = 0 and therefore
// tfidf = 0 regardless of its raw count; that is the intended fully
// non-discriminative case, not an error. Counts below 1 fail with
// internalerr.ErrInvalidInput.
func Weigh(counts []relation.TermCount) ([]Weight, error) {
	docTotals := make(map[string]int64)
	termDF := make(map[string]int64)
	docsPerTerm := make(map[string]map[string]struct{})

	for _, tc := range counts {
		if tc.Count < 1 {
			return nil, fmt.Errorf("tfidf: (%s, %s) has count %d, want >= 1: %w",
				tc.DocID, tc.Term, tc.Count, internalerr.ErrInvalidInput)
		}
		docTotals[tc.DocID] += tc.Count
		if docsPerTerm[tc.Term] == nil {
			docsPerTerm[tc.Term] = make(map[string]struct{})
		}
		if _, seen := docsPerTerm[tc.Term][tc.DocID]; !seen {
			docsPerTerm[tc.Term][tc.DocID] = struct{}{}
			termDF[tc.Term]++
		}
	}

	totalDocs := float64(len(docTotals))
	out := make([]Weight, 0, len(counts))
	for _, tc := range counts {
		tf := float64(tc.Count) / float64(docTotals[tc.DocID])
		idf := math.Log(totalDocs / float64(termDF[tc.Term]))
		out = append(out, Weight{
			DocID: tc.DocID,
			Term:  tc.Term,
			Count: tc.Count,
			TF:    tf,
			IDF:   idf,
			TFIDF: tf * idf,
		})
	}
	return out, nil
}

// SortByTFIDF orders weights by tf-idf descending, in place. Ties break by
// (term, document) so repeated runs produce identical output.
func SortByTFIDF(ws []Weight) {
	sort.Slice(ws, func(i, j int) bool {
		if ws[i].TFIDF != ws[j].TFIDF {
			return ws[i].TFIDF > ws[j].TFIDF
		}
		if ws[i].Term != ws[j].Term {
			return ws[i].Term < ws[j].Term
		}
		return ws[i].DocID < ws[j].DocID
	})
}

// Top returns the k highest-weighted rows without mutating ws.
func Top(ws []Weight, k int) []Weight {
	sorted := append([]Weight(nil), ws...)
	SortByTFIDF(sorted)
	if k > 0 && len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}
