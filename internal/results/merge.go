// Package results combines result sets from multiple providers or queries.
package results

import "github.com/jobscout/jobscout/internal/types"

// Merge concatenates the sets in input order and drops any later item whose
// ID matches an earlier item's ID. The first occurrence wins, so given the
// same ordered input the output is always identical.
func Merge(sets ...[]types.ResultItem) []types.ResultItem {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	merged := make([]types.ResultItem, 0, total)
	seen := make(map[string]bool, total)
	for _, set := range sets {
		for _, item := range set {
			if seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			merged = append(merged, item)
		}
	}
	return merged
}

// Truncate returns at most n items, preserving order.
func Truncate(items []types.ResultItem, n int) []types.ResultItem {
	if n < 0 || len(items) <= n {
		return items
	}
	return items[:n]
}
