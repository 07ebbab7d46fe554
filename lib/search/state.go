// Package search owns the state of the search view: the query the user
// typed, where they are in the result pages, how results are sorted and
// filtered, and how all of that round-trips through a shareable URL
// query string.
package search

import (
	"net/url"
	"strconv"
)

const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortSite      = "site"
)

const (
	StockAll = "all"
	StockIn  = "in-stock"
	StockOut = "out-of-stock"
)

type State struct {
	Keyword string
	Page    int
	Sort    string
	Stock   string
}

func DefaultState() State {
	return State{
		Page:  1,
		Sort:  SortPriceAsc,
		Stock: StockAll,
	}
}

// ParseState restores a State from URL query parameters, falling back
// to defaults for anything missing or unparsable.
func ParseState(query url.Values) State {
	state := DefaultState()
	state.Keyword = query.Get("q")
	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		state.Page = page
	}
	if sort := query.Get("sort"); sort != "" {
		state.Sort = sort
	}
	if stock := query.Get("stock"); stock != "" {
		state.Stock = stock
	}
	return state
}

// Values is the inverse of ParseState: `q` always, the rest only when
// they differ from the defaults so shared URLs stay short.
func (s State) Values() url.Values {
	params := url.Values{}
	params.Set("q", s.Keyword)
	if s.Page > 1 {
		params.Set("page", strconv.Itoa(s.Page))
	}
	if s.Sort != SortPriceAsc {
		params.Set("sort", s.Sort)
	}
	if s.Stock != StockAll {
		params.Set("stock", s.Stock)
	}
	return params
}

func (s State) Path() string {
	return "/search?" + s.Values().Encode()
}
