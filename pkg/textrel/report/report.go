// Package report builds identified snapshots of a corpus analysis: the top
// tf-idf terms and the top correlated pairs at one point in time.
package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/textrel/pkg/textrel/pairwise"
	"github.com/cognicore/textrel/pkg/textrel/tfidf"
)

// Builder constructs analysis reports with unique, sortable ids
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a new report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Report is one analysis snapshot
type Report struct {
	ID        string
	Title     string
	CreatedAt time.Time
	Stats     CorpusStats
	TopTerms  []TermWeight
	TopPairs  []PairStat
}

// CorpusStats summarizes the analyzed corpus
type CorpusStats struct {
	Docs          int
	DistinctTerms int
	TotalCount    int64
}

// TermWeight is one top term with its weight context
type TermWeight struct {
	DocID string
	Term  string
	Count int64
	TFIDF float64
}

// PairStat is one top pair with count and correlation
type PairStat struct {
	Item1 string
	Item2 string
	Count int64
	Phi   float64
}

// Build assembles a report from weighted terms and pair statistics.
// Inputs arrive pre-sorted by their engines; Build truncates to topK
// entries per section (0 keeps everything).
func (b *Builder) Build(title string, weights []tfidf.Weight, counts []pairwise.PairCount, corrs []pairwise.PairCorrelation, topK int) Report {
	r := Report{
		ID:        ulid.MustNew(ulid.Now(), b.entropy).String(),
		Title:     title,
		CreatedAt: time.Now(),
	}

	docs := make(map[string]struct{})
	terms := make(map[string]struct{})
	for _, w := range weights {
		docs[w.DocID] = struct{}{}
		terms[w.Term] = struct{}{}
		r.Stats.TotalCount += w.Count
	}
	r.Stats.Docs = len(docs)
	r.Stats.DistinctTerms = len(terms)

	top := weights
	if topK > 0 && len(top) > topK {
		top = top[:topK]
	}
	r.TopTerms = make([]TermWeight, 0, len(top))
	for _, w := range top {
		r.TopTerms = append(r.TopTerms, TermWeight{
			DocID: w.DocID,
			Term:  w.Term,
			Count: w.Count,
			TFIDF: w.TFIDF,
		})
	}

	phiByPair := make(map[pairwise.Pair]float64, len(corrs))
	for _, c := range corrs {
		phiByPair[c.Pair] = c.Phi
	}

	topPairs := counts
	if topK > 0 && len(topPairs) > topK {
		topPairs = topPairs[:topK]
	}
	r.TopPairs = make([]PairStat, 0, len(topPairs))
	for _, pc := range topPairs {
		r.TopPairs = append(r.TopPairs, PairStat{
			Item1: pc.Item1,
			Item2: pc.Item2,
			Count: pc.Count,
			Phi:   phiByPair[pc.Pair],
		})
	}

	return r
}
