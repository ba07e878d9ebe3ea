package store

import (
	"context"
	"time"

	"github.com/cognicore/textrel/pkg/textrel/relation"
)

// Store persists a corpus: documents and their pre-aggregated term counts.
// It is an external collaborator around the pure transforms; the core
// packages never touch it.
type Store interface {
	Close() error

	// Docs
	UpsertDoc(ctx context.Context, d Doc) error
	GetDoc(ctx context.Context, id string) (Doc, bool, error)
	ListDocIDs(ctx context.Context) ([]string, error)

	// Term counts
	ReplaceTermCounts(ctx context.Context, docID string, counts []relation.TermCount) error
	TermCounts(ctx context.Context, docIDs ...string) ([]relation.TermCount, error)
}

// Doc is a stored document: the caller's opaque id, the ordered text lines,
// and carried metadata columns.
type Doc struct {
	ID         string
	Title      string
	Lines      []string
	Meta       map[string]string
	IngestedAt time.Time
}
