package pairwise

import "sort"

// Counter maintains per-group presence counts for pair statistics.
type Counter struct {
	G   int64            // total number of groups
	Nx  map[string]int64 // groups containing each item
	Nxy map[Pair]int64   // groups containing each item pair
}

// Pair is an unordered item pair in canonical form: Item1 < Item2 by the
// lexicographic order on strings. A pair never appears in both orders.
type Pair struct {
	Item1, Item2 string
}

// NewPair canonicalizes two items into a Pair.
func NewPair(a, b string) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{Item1: a, Item2: b}
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{
		Nx:  make(map[string]int64),
		Nxy: make(map[Pair]int64),
	}
}

// AddGroup records one group's items. Duplicates within the group collapse
// to a single presence; an item is never paired with itself.
func (c *Counter) AddGroup(items []string) {
	c.G++

	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it == "" {
			continue
		}
		seen[it] = struct{}{}
	}

	unique := make([]string, 0, len(seen))
	for it := range seen {
		unique = append(unique, it)
	}
	sort.Strings(unique)

	for i := 0; i < len(unique); i++ {
		c.Nx[unique[i]]++
		for j := i + 1; j < len(unique); j++ {
			c.Nxy[Pair{Item1: unique[i], Item2: unique[j]}]++
		}
	}
}

// Merge folds other into c. Counts add, so splitting groups across counters
// and merging gives the same result as one sequential counter.
func (c *Counter) Merge(other *Counter) {
	c.G += other.G
	for it, n := range other.Nx {
		c.Nx[it] += n
	}
	for p, n := range other.Nxy {
		c.Nxy[p] += n
	}
}

// PairCount returns the number of groups containing both items.
func (c *Counter) PairCount(a, b string) int64 {
	return c.Nxy[NewPair(a, b)]
}

// ItemCount returns the number of groups containing the item.
func (c *Counter) ItemCount(item string) int64 {
	return c.Nx[item]
}
