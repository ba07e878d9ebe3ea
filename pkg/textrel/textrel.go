// Package textrel turns free-form text into a tidy relation — one unit
// occurrence per row, tagged with document id and position — and derives the
// sparse-matrix, tf-idf and pairwise views downstream tools consume.
//
// The subpackages are pure transforms; this package is the store-backed
// facade tying them together for corpus-level workflows.
package textrel

import (
	"context"
	"fmt"

	"github.com/cognicore/textrel/pkg/textrel/internalerr"
	"github.com/cognicore/textrel/pkg/textrel/pairwise"
	"github.com/cognicore/textrel/pkg/textrel/relation"
	"github.com/cognicore/textrel/pkg/textrel/report"
	"github.com/cognicore/textrel/pkg/textrel/stoplist"
	"github.com/cognicore/textrel/pkg/textrel/store"
	"github.com/cognicore/textrel/pkg/textrel/tfidf"
	"github.com/cognicore/textrel/pkg/textrel/tokenize"
)

// Engine is the corpus analysis facade: it ingests documents through the
// tokenizer into a store and produces analysis reports from the stored
// term counts.
type Engine struct {
	store   store.Store
	opts    tokenize.Options
	stops   *stoplist.Set
	builder *report.Builder
}

// Options configures an Engine instance
type Options struct {
	Store     store.Store
	Tokenizer tokenize.Options
	Stops     *stoplist.Set
}

// New creates an Engine with the given dependencies. A zero tokenizer
// option defaults to word units.
func New(opts Options) (*Engine, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("engine requires a store: %w", internalerr.ErrInvalidConfig)
	}
	if opts.Tokenizer.Unit == "" {
		opts.Tokenizer.Unit = tokenize.UnitWord
	}
	return &Engine{
		store:   opts.Store,
		opts:    opts.Tokenizer,
		stops:   opts.Stops,
		builder: report.New(),
	}, nil
}

// Close cleanly shuts down the engine
func (e *Engine) Close() error {
	return e.store.Close()
}

// Ingest tokenizes one document, aggregates its term counts and stores both.
// Re-ingesting a document id replaces its previous counts.
func (e *Engine) Ingest(ctx context.Context, d store.Doc) error {
	rel, err := tokenize.Tokenize([]tokenize.Document{{
		ID:    d.ID,
		Lines: d.Lines,
		Meta:  d.Meta,
	}}, e.opts)
	if err != nil {
		return err
	}
	rel = relation.WithoutStopwords(rel, stopsOrNil(e.stops))

	if err := e.store.UpsertDoc(ctx, d); err != nil {
		return err
	}
	return e.store.ReplaceTermCounts(ctx, d.ID, relation.Count(rel))
}

// AnalyzeRequest selects what to analyze
type AnalyzeRequest struct {
	Title string
	// DocIDs restricts the analysis; empty means the whole corpus.
	DocIDs []string
	// TopK bounds each report section. Zero keeps everything.
	TopK int
	// MaxGroupSize and Workers pass through to the pairwise engine.
	MaxGroupSize int
	Workers      int
}

// Analyze reads the stored term counts and builds a report with the top
// tf-idf terms and the top co-occurring pairs across documents.
func (e *Engine) Analyze(ctx context.Context, req AnalyzeRequest) (report.Report, error) {
	counts, err := e.store.TermCounts(ctx, req.DocIDs...)
	if err != nil {
		return report.Report{}, err
	}
	if len(counts) == 0 {
		return report.Report{}, fmt.Errorf("no term counts for request: %w", internalerr.ErrNotFound)
	}

	weights, err := tfidf.Weigh(counts)
	if err != nil {
		return report.Report{}, err
	}
	tfidf.SortByTFIDF(weights)

	// Presence per document is what pairwise needs; rebuild a minimal
	// relation from the aggregate.
	rel := make(relation.Relation, 0, len(counts))
	for _, tc := range counts {
		rel = append(rel, relation.Row{DocID: tc.DocID, Unit: tc.Term})
	}

	popts := pairwise.Options{MaxGroupSize: req.MaxGroupSize, Workers: req.Workers}
	pairCounts, err := pairwise.Count(rel, nil, nil, popts)
	if err != nil {
		return report.Report{}, err
	}
	pairwise.SortByCount(pairCounts)

	corrs, err := pairwise.Correlate(rel, nil, nil, popts)
	if err != nil {
		return report.Report{}, err
	}

	return e.builder.Build(req.Title, weights, pairCounts, corrs, req.TopK), nil
}

// stopsOrNil avoids a typed-nil interface when no stop set is configured.
func stopsOrNil(s *stoplist.Set) relation.Stopset {
	if s == nil {
		return nil
	}
	return s
}
