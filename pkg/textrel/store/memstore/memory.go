// Package memstore is an in-memory store.Store used by tests and small
// pipelines that do not need persistence.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/textrel/pkg/textrel/relation"
	"github.com/cognicore/textrel/pkg/textrel/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu     sync.RWMutex
	docs   map[string]store.Doc
	counts map[string][]relation.TermCount // doc id -> counts
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		docs:   make(map[string]store.Doc),
		counts: make(map[string][]relation.TermCount),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertDoc inserts or replaces a document, keyed by id.
func (s *Store) UpsertDoc(ctx context.Context, d store.Doc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.ID == "" {
		return nil
	}
	s.docs[d.ID] = copyDoc(d)
	return nil
}

// GetDoc returns a document by id.
func (s *Store) GetDoc(ctx context.Context, id string) (store.Doc, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if d, ok := s.docs[id]; ok {
		return copyDoc(d), true, nil
	}
	return store.Doc{}, false, nil
}

// ListDocIDs returns all stored document ids in sorted order.
func (s *Store) ListDocIDs(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// ReplaceTermCounts replaces the stored counts for one document.
func (s *Store) ReplaceTermCounts(ctx context.Context, docID string, counts []relation.TermCount) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if docID == "" {
		return nil
	}
	cp := make([]relation.TermCount, len(counts))
	copy(cp, counts)
	s.counts[docID] = cp
	return nil
}

// TermCounts returns the counts for the given documents, or for the whole
// corpus when no ids are given. Output is sorted by (doc id, term).
func (s *Store) TermCounts(ctx context.Context, docIDs ...string) ([]relation.TermCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := docIDs
	if len(ids) == 0 {
		for id := range s.counts {
			ids = append(ids, id)
		}
	}

	var out []relation.TermCount
	for _, id := range ids {
		out = append(out, s.counts[id]...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DocID != out[j].DocID {
			return out[i].DocID < out[j].DocID
		}
		return out[i].Term < out[j].Term
	})
	return out, nil
}

func copyDoc(d store.Doc) store.Doc {
	cp := d
	cp.Lines = append([]string(nil), d.Lines...)
	if d.Meta != nil {
		cp.Meta = make(map[string]string, len(d.Meta))
		for k, v := range d.Meta {
			cp.Meta[k] = v
		}
	}
	return cp
}
