package scheduler

import "sort"

// SortByHours orders allocations by hours, largest first. Ties keep their
// incoming order.
func SortByHours(allocs []Allocation) {
	sort.SliceStable(allocs, func(i, j int) bool {
		return allocs[i].Hours > allocs[j].Hours
	})
}

// sortByRawScore orders allocations by raw score, largest first. Ties keep
// their incoming order.
func sortByRawScore(allocs []Allocation) {
	sort.SliceStable(allocs, func(i, j int) bool {
		return allocs[i].RawScore > allocs[j].RawScore
	})
}
