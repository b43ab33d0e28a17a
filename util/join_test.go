package util

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFullJoinCorrectness mirrors spec.md §8 scenario 5 exactly.
func TestFullJoinCorrectness(t *testing.T) {
	left := []Pair[int, string]{{1, "a"}, {3, "b"}, {5, "c"}}
	right := []Pair[int, string]{{1, "x"}, {4, "y"}, {5, "z"}}

	var got []Item[int, string, string]
	for item := range FullJoin(left, right, cmp.Compare[int]) {
		got = append(got, item)
	}

	require.Equal(t, []Item[int, string, string]{
		{Key: 1, Kind: Both, Left: "a", Right: "x"},
		{Key: 3, Kind: LeftOnly, Left: "b"},
		{Key: 4, Kind: RightOnly, Right: "y"},
		{Key: 5, Kind: Both, Left: "c", Right: "z"},
	}, got)
}

func TestFullJoinEmptySides(t *testing.T) {
	left := []Pair[int, string]{{1, "a"}, {2, "b"}}
	var right []Pair[int, string]

	var got []Item[int, string, string]
	for item := range FullJoin(left, right, cmp.Compare[int]) {
		got = append(got, item)
	}
	require.Len(t, got, 2)
	for _, item := range got {
		require.Equal(t, LeftOnly, item.Kind)
	}
}

func TestFullJoinStopsEarlyWhenYieldReturnsFalse(t *testing.T) {
	left := []Pair[int, string]{{1, "a"}, {2, "b"}, {3, "c"}}
	right := []Pair[int, string]{{2, "x"}}

	var keys []int
	for item := range FullJoin(left, right, cmp.Compare[int]) {
		keys = append(keys, item.Key)
		if item.Key == 2 {
			break
		}
	}
	require.True(t, slices.IsSorted(keys))
	require.Equal(t, []int{1, 2}, keys)
}
