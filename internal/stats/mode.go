// Package stats computes the four statistic groups over a trip table:
// temporal, station, duration and user statistics.
//
// Every group is a pure value computed in one pass and degrades to an explicit
// "no data" result on an empty table. Modes break ties by natural order, so the
// result never depends on map iteration or source order:
//   - month and hour: lowest value wins
//   - weekday: earliest in Monday-first order
//   - station names and birth years: lowest value wins
//   - station pairs: lowest start station, then lowest end station
package stats

import "sort"

// Mode is the most frequent value of a column.
// Defined is false when the column had no values to count.
type Mode[T any] struct {
	Value   T
	Count   int
	Defined bool
}

// mode counts at(i) for i in [0, n) and returns the most frequent value,
// using less to break ties.
func mode[T comparable](n int, at func(i int) T, less func(a, b T) bool) Mode[T] {
	if n == 0 {
		return Mode[T]{}
	}

	counts := make(map[T]int)
	for i := 0; i < n; i++ {
		counts[at(i)]++
	}

	var best Mode[T]
	for v, c := range counts {
		if !best.Defined || c > best.Count || (c == best.Count && less(v, best.Value)) {
			best = Mode[T]{Value: v, Count: c, Defined: true}
		}
	}
	return best
}

// ValueCount is one entry of a frequency table.
type ValueCount struct {
	Value string
	Count int
}

// Frequency is a value-count table ordered by descending count.
// Available is false when the column does not exist for the dataset.
type Frequency struct {
	Available bool
	Counts    []ValueCount
}

// Total returns the sum of all counts.
func (f Frequency) Total() int {
	total := 0
	for _, vc := range f.Counts {
		total += vc.Count
	}
	return total
}

// Empty reports whether the column exists but had no values to count.
func (f Frequency) Empty() bool {
	return f.Available && len(f.Counts) == 0
}

// frequency counts values in first-seen order and sorts by descending count.
// Equal counts keep first-seen order.
func frequency(values []string) Frequency {
	index := make(map[string]int)
	var counts []ValueCount
	for _, v := range values {
		i, seen := index[v]
		if !seen {
			i = len(counts)
			index[v] = i
			counts = append(counts, ValueCount{Value: v})
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return Frequency{Available: true, Counts: counts}
}
