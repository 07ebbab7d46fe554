package search

// the window is always at most 5 numbered buttons centered on the
// current page, clamped to [1, totalPages]
const maxPageButtons = 5

// Window describes the pagination controls for one result page: the
// numbered buttons plus the jump-to-edge affordances that appear when
// the window doesn't reach an end.
type Window struct {
	// Visible is false when one page (or none) renders no controls
	Visible bool

	Current    int
	TotalPages int

	HasPrev bool
	HasNext bool

	// ShowFirst renders a "1" jump button before the window;
	// LeadingEllipsis separates it from the window when there is a gap
	ShowFirst       bool
	LeadingEllipsis bool

	Pages []int

	TrailingEllipsis bool
	ShowLast         bool
}

func Paginate(current, totalPages int) Window {
	if totalPages <= 1 {
		return Window{}
	}

	start := current - maxPageButtons/2
	if start < 1 {
		start = 1
	}
	end := start + maxPageButtons - 1
	if end > totalPages {
		end = totalPages
	}
	if end-start < maxPageButtons-1 {
		start = end - maxPageButtons + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}

	return Window{
		Visible:          true,
		Current:          current,
		TotalPages:       totalPages,
		HasPrev:          current > 1,
		HasNext:          current < totalPages,
		ShowFirst:        start > 1,
		LeadingEllipsis:  start > 2,
		Pages:            pages,
		TrailingEllipsis: end < totalPages-1,
		ShowLast:         end < totalPages,
	}
}
