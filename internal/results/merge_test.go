package results

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobscout/jobscout/internal/types"
)

func item(id, title string) types.ResultItem {
	return types.ResultItem{ID: id, Title: title}
}

func TestMerge_FirstSeenWins(t *testing.T) {
	merged := Merge(
		[]types.ResultItem{item("a", "first a"), item("b", "first b")},
		[]types.ResultItem{item("a", "later a"), item("c", "first c")},
	)

	assert.Equal(t, []types.ResultItem{
		item("a", "first a"),
		item("b", "first b"),
		item("c", "first c"),
	}, merged)
}

func TestMerge_NoDuplicateIDsInOutput(t *testing.T) {
	merged := Merge(
		[]types.ResultItem{item("x", ""), item("y", ""), item("x", "")},
		[]types.ResultItem{item("y", ""), item("z", ""), item("x", "")},
	)

	seen := map[string]int{}
	for _, it := range merged {
		seen[it.ID]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "id %s appears %d times", id, count)
	}
	assert.Len(t, merged, 3)
}

func TestMerge_Deterministic(t *testing.T) {
	sets := [][]types.ResultItem{
		{item("1", "a"), item("2", "b")},
		{item("3", "c"), item("1", "dup")},
	}
	assert.Equal(t, Merge(sets...), Merge(sets...))
}

func TestMerge_EmptyInputs(t *testing.T) {
	assert.Empty(t, Merge())
	assert.Empty(t, Merge(nil, []types.ResultItem{}))
}

func TestTruncate(t *testing.T) {
	items := []types.ResultItem{item("1", ""), item("2", ""), item("3", "")}

	assert.Len(t, Truncate(items, 2), 2)
	assert.Equal(t, items, Truncate(items, 3))
	assert.Equal(t, items, Truncate(items, 10))
	assert.Empty(t, Truncate(items, 0))
}
