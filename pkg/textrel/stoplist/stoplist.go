// Package stoplist provides explicit stopword sets. A set is an ordinary
// input passed to the relation operations that need one; nothing in this
// codebase consults ambient stopword state.
package stoplist

import (
	"sort"
	"strings"
)

// Set is a case-insensitive stopword set.
type Set struct {
	stops map[string]struct{}
}

// New creates a set from the given terms.
func New(terms []string) *Set {
	s := &Set{stops: make(map[string]struct{}, len(terms))}
	for _, t := range terms {
		s.Add(t)
	}
	return s
}

// IsStop reports whether the term is a stopword.
func (s *Set) IsStop(term string) bool {
	_, ok := s.stops[strings.ToLower(term)]
	return ok
}

// Add adds a term to the set.
func (s *Set) Add(term string) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return
	}
	s.stops[term] = struct{}{}
}

// Remove removes a term from the set.
func (s *Set) Remove(term string) {
	delete(s.stops, strings.ToLower(term))
}

// Len returns the number of stopwords.
func (s *Set) Len() int {
	return len(s.stops)
}

// All returns the stopwords in sorted order.
func (s *Set) All() []string {
	out := make([]string, 0, len(s.stops))
	for t := range s.stops {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
