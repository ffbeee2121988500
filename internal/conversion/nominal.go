package conversion

import (
	"slices"
)

// ConstantNominal expects the same value at every level
func ConstantNominal(value float64) func(int) float64 {
	return func(int) float64 {
		return value
	}
}

// LinearNominal expects base plus perLevel for each level
func LinearNominal(base, perLevel float64) func(int) float64 {
	return func(level int) float64 {
		return base + perLevel*float64(level)
	}
}

// TableNominal reads expected values from a level table. Levels between
// entries are interpolated linearly and levels outside the table take the
// nearest entry. An empty table expects zero everywhere.
func TableNominal(table map[int]float64) func(int) float64 {
	levels := make([]int, 0, len(table))
	values := make(map[int]float64, len(table))
	for level, value := range table {
		levels = append(levels, level)
		values[level] = value
	}
	slices.Sort(levels)

	return func(level int) float64 {
		if len(levels) == 0 {
			return 0
		}
		if value, ok := values[level]; ok {
			return value
		}
		if level < levels[0] {
			return values[levels[0]]
		}
		if level > levels[len(levels)-1] {
			return values[levels[len(levels)-1]]
		}

		i, _ := slices.BinarySearch(levels, level)
		lo, hi := levels[i-1], levels[i]
		frac := float64(level-lo) / float64(hi-lo)
		return values[lo] + frac*(values[hi]-values[lo])
	}
}
