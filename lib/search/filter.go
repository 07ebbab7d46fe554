package search

import (
	"sort"

	"bsprice-client/lib/api"
)

// FilterByStock is the client-side stock predicate used by the legacy
// flat-list views that filter an already-fetched result instead of
// asking the server.
func FilterByStock(products []api.Product, stock string) []api.Product {
	switch stock {
	case StockIn:
		filtered := make([]api.Product, 0, len(products))
		for _, p := range products {
			if p.Stock > 0 {
				filtered = append(filtered, p)
			}
		}
		return filtered
	case StockOut:
		filtered := make([]api.Product, 0, len(products))
		for _, p := range products {
			if p.Stock == 0 {
				filtered = append(filtered, p)
			}
		}
		return filtered
	default:
		return products
	}
}

// SortProducts orders a copy of the list by the given sort key. Tie
// order is unspecified.
func SortProducts(products []api.Product, sortKey string) []api.Product {
	sorted := append([]api.Product(nil), products...)
	switch sortKey {
	case SortPriceDesc:
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case SortSite:
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Site < sorted[j].Site
		})
	default:
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	}
	return sorted
}
