package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginateHiddenForSinglePage(t *testing.T) {
	require.False(t, Paginate(1, 1).Visible)
	require.False(t, Paginate(1, 0).Visible)
}

func TestPaginateMiddleOfLongRange(t *testing.T) {
	w := Paginate(7, 10)
	require.True(t, w.Visible)
	require.Equal(t, []int{5, 6, 7, 8, 9}, w.Pages)
	require.True(t, w.ShowFirst)
	require.True(t, w.LeadingEllipsis)
	// the window's trailing edge is adjacent to the last page: the jump
	// button renders but no ellipsis
	require.True(t, w.ShowLast)
	require.False(t, w.TrailingEllipsis)
	require.True(t, w.HasPrev)
	require.True(t, w.HasNext)
}

func TestPaginateAtStart(t *testing.T) {
	w := Paginate(1, 10)
	require.Equal(t, []int{1, 2, 3, 4, 5}, w.Pages)
	require.False(t, w.ShowFirst)
	require.False(t, w.LeadingEllipsis)
	require.True(t, w.TrailingEllipsis)
	require.True(t, w.ShowLast)
	require.False(t, w.HasPrev)
	require.True(t, w.HasNext)
}

func TestPaginateAtEnd(t *testing.T) {
	w := Paginate(10, 10)
	require.Equal(t, []int{6, 7, 8, 9, 10}, w.Pages)
	require.True(t, w.ShowFirst)
	require.True(t, w.LeadingEllipsis)
	require.False(t, w.ShowLast)
	require.False(t, w.TrailingEllipsis)
	require.True(t, w.HasPrev)
	require.False(t, w.HasNext)
}

func TestPaginateFewerPagesThanWindow(t *testing.T) {
	w := Paginate(2, 3)
	require.Equal(t, []int{1, 2, 3}, w.Pages)
	require.False(t, w.ShowFirst)
	require.False(t, w.ShowLast)
}

func TestPaginateSecondPage(t *testing.T) {
	// start clamps to 1, so the "1" lives inside the window
	w := Paginate(2, 10)
	require.Equal(t, []int{1, 2, 3, 4, 5}, w.Pages)
	require.False(t, w.ShowFirst)
	require.True(t, w.ShowLast)
	require.True(t, w.TrailingEllipsis)
}
