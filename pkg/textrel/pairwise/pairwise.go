// Package pairwise counts and correlates unordered item pairs that share a
// caller-defined group, such as word pairs within the same section.
//
// Pair enumeration is quadratic in the number of distinct items per group.
// Callers are expected to pre-filter low-frequency items before invoking
// this package; Options.MaxGroupSize turns the blow-up into an explicit,
// named failure instead of a silent performance cliff.
package pairwise

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/textrel/pkg/textrel/internalerr"
	"github.com/cognicore/textrel/pkg/textrel/relation"
)

// PairCount is one unordered pair with its co-occurrence frequency.
type PairCount struct {
	Pair
	Count int64
}

// PairCorrelation is one unordered pair with its phi coefficient.
type PairCorrelation struct {
	Pair
	Phi float64
}

// Options configures pair enumeration.
type Options struct {
	// MaxGroupSize bounds the distinct items allowed per group. Groups above
	// the bound fail with internalerr.ErrInvalidInput naming the group.
	// Zero means unbounded.
	MaxGroupSize int

	// Workers fans group counting out over this many goroutines. Results are
	// merged by summation and are identical to the sequential run. Zero or
	// one means sequential.
	Workers int

	// StrictPhi makes Correlate fail with internalerr.ErrDegenerateInput
	// when a pair's phi denominator is zero. The default keeps the pair and
	// reports phi = 0, matching how the rest of this codebase treats
	// degenerate association scores.
	StrictPhi bool
}

// GroupFunc derives the grouping key from a row. Nil means group by DocID.
type GroupFunc func(relation.Row) string

// ItemFunc derives the item from a row. Nil means the unit column.
type ItemFunc func(relation.Row) string

func groupItems(rel relation.Relation, group GroupFunc, item ItemFunc, maxSize int) ([]string, [][]string, error) {
	if group == nil {
		group = func(r relation.Row) string { return r.DocID }
	}
	if item == nil {
		item = func(r relation.Row) string { return r.Unit }
	}

	order, byGroup := relation.GroupBy(rel, group)
	items := make([][]string, len(order))
	for i, g := range order {
		rows := byGroup[g]
		distinct := make(map[string]struct{}, len(rows))
		list := make([]string, 0, len(rows))
		for _, r := range rows {
			it := item(r)
			if it == "" {
				continue
			}
			if _, ok := distinct[it]; ok {
				continue
			}
			distinct[it] = struct{}{}
			list = append(list, it)
		}
		if maxSize > 0 && len(list) > maxSize {
			return nil, nil, fmt.Errorf("pairwise: group %q has %d distinct items, limit %d: %w",
				g, len(list), maxSize, internalerr.ErrInvalidInput)
		}
		items[i] = list
	}
	return order, items, nil
}

// count builds a merged counter over all groups, sequentially or chunked
// across workers. Chunking is safe because per-group counting has no
// cross-group dependency and Merge is commutative and associative.
func count(groups [][]string, workers int) *Counter {
	if workers <= 1 || len(groups) < 2 {
		c := NewCounter()
		for _, g := range groups {
			c.AddGroup(g)
		}
		return c
	}
	if workers > len(groups) {
		workers = len(groups)
	}

	parts := make([]*Counter, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			local := NewCounter()
			for i := w; i < len(groups); i += workers {
				local.AddGroup(groups[i])
			}
			parts[w] = local
		}(w)
	}
	wg.Wait()

	merged := NewCounter()
	for _, p := range parts {
		merged.Merge(p)
	}
	return merged
}

// Count enumerates, per group, all unordered pairs of distinct items and
// accumulates their co-occurrence counts across groups. Each pair appears
// once, in canonical order, and never pairs an item with itself. Output is
// sorted by (Item1, Item2).
func Count(rel relation.Relation, group GroupFunc, item ItemFunc, opts Options) ([]PairCount, error) {
	_, groups, err := groupItems(rel, group, item, opts.MaxGroupSize)
	if err != nil {
		return nil, err
	}
	c := count(groups, opts.Workers)

	out := make([]PairCount, 0, len(c.Nxy))
	for p, n := range c.Nxy {
		out = append(out, PairCount{Pair: p, Count: n})
	}
	sortPairs(out, func(pc PairCount) Pair { return pc.Pair })
	return out, nil
}

// Correlate computes the phi coefficient for every pair of items sharing at
// least one group, treating each item's presence across groups as a binary
// vector. Degenerate pairs (an item in zero or all groups) report phi = 0
// unless Options.StrictPhi is set, in which case the call fails. Output is
// sorted by (Item1, Item2).
func Correlate(rel relation.Relation, group GroupFunc, item ItemFunc, opts Options) ([]PairCorrelation, error) {
	_, groups, err := groupItems(rel, group, item, opts.MaxGroupSize)
	if err != nil {
		return nil, err
	}
	c := count(groups, opts.Workers)

	out := make([]PairCorrelation, 0, len(c.Nxy))
	for p := range c.Nxy {
		phi, ok := PhiFromCounts(c, p.Item1, p.Item2)
		if !ok && opts.StrictPhi {
			return nil, fmt.Errorf("pairwise: phi denominator is zero for (%s, %s): %w",
				p.Item1, p.Item2, internalerr.ErrDegenerateInput)
		}
		out = append(out, PairCorrelation{Pair: p, Phi: phi})
	}
	sortPairs(out, func(pc PairCorrelation) Pair { return pc.Pair })
	return out, nil
}

// SortByPhi orders correlations by phi descending, ties by pair.
func SortByPhi(cs []PairCorrelation) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Phi != cs[j].Phi {
			return cs[i].Phi > cs[j].Phi
		}
		return lessPair(cs[i].Pair, cs[j].Pair)
	})
}

// SortByCount orders pair counts by count descending, ties by pair.
func SortByCount(cs []PairCount) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Count != cs[j].Count {
			return cs[i].Count > cs[j].Count
		}
		return lessPair(cs[i].Pair, cs[j].Pair)
	})
}

func lessPair(a, b Pair) bool {
	if a.Item1 != b.Item1 {
		return a.Item1 < b.Item1
	}
	return a.Item2 < b.Item2
}

func sortPairs[T any](s []T, pair func(T) Pair) {
	sort.Slice(s, func(i, j int) bool {
		return lessPair(pair(s[i]), pair(s[j]))
	})
}
