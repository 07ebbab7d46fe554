package commands

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"bsprice-client/cmd/bsprice/globals"
	"bsprice-client/cmd/bsprice/utils"
	"bsprice-client/lib/api"
	"bsprice-client/lib/search"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	searchPage  *int
	searchSort  *string
	searchStock *string
)

func init() {
	searchPage = searchCmd.Flags().Int("page", 1, "Result page to show.")
	searchSort = searchCmd.Flags().String("sort", search.SortPriceAsc,
		"Sort order: price-asc, price-desc or site.")
	searchStock = searchCmd.Flags().String("stock", search.StockAll,
		"Stock filter: all, in-stock or out-of-stock.")
	rootCmd.AddCommand(searchCmd)
}

// searchView renders search output to the terminal. It sits behind the
// same surface as the browser frontend, so pagination, result counts
// and the affiliate panels all come out of the one controller.
type searchView struct {
	favoriteIds []int64
}

func (v *searchView) SetBusy(busy bool) {}

func (v *searchView) ClearResults() {}

func (v *searchView) ShowError(message string) {
	fmt.Fprintln(os.Stderr, message)
}

func (v *searchView) isFavorite(cardId int64) bool {
	for _, id := range v.favoriteIds {
		if id == cardId {
			return true
		}
	}
	return false
}

func (v *searchView) RenderResults(result api.SearchResult, state search.State) {
	if len(result.Items) == 0 {
		fmt.Println("商品が見つかりませんでした")
		return
	}

	t := utils.NewTable()
	t.AppendHeader(table.Row{"", "Site", "Name", "Price", "Stock"})
	for _, p := range result.Items {
		star := ""
		if p.CardId != 0 && v.isFavorite(p.CardId) {
			star = "★"
		}
		t.AppendRow(table.Row{star, p.Site, p.Name, p.PriceText, p.StockText})
	}
	t.Render()
}

func (v *searchView) RenderPagination(window search.Window) {
	if !window.Visible {
		return
	}

	var parts []string
	if window.HasPrev {
		parts = append(parts, "前へ")
	}
	if window.ShowFirst {
		parts = append(parts, "1")
	}
	if window.LeadingEllipsis {
		parts = append(parts, "...")
	}
	for _, page := range window.Pages {
		if page == window.Current {
			parts = append(parts, fmt.Sprintf("[%d]", page))
		} else {
			parts = append(parts, strconv.Itoa(page))
		}
	}
	if window.TrailingEllipsis {
		parts = append(parts, "...")
	}
	if window.ShowLast {
		parts = append(parts, strconv.Itoa(window.TotalPages))
	}
	if window.HasNext {
		parts = append(parts, "次へ")
	}
	fmt.Println(strings.Join(parts, " "))
}

func (v *searchView) SetResultCount(text string) {
	if text != "" {
		fmt.Println(text)
	}
}

func (v *searchView) SetTitle(title string) {}

func (v *searchView) ScrollToTop() {}

func (v *searchView) renderAffiliate(heading string, products []api.AffiliateProduct, links []search.AffiliateLink) {
	fmt.Println()
	fmt.Println(heading)
	for _, p := range products {
		fmt.Printf("  %s %s (税込)\n    %s\n", p.Name, p.PriceText, p.AffiliateUrl)
	}
	for _, l := range links {
		fmt.Printf("  %s\n    %s\n", l.Label, l.Url)
	}
}

func (v *searchView) RenderAmazonSection(keyword string, products []api.AffiliateProduct, links []search.AffiliateLink) {
	v.renderAffiliate("Amazon", products, links)
}

func (v *searchView) RenderRakutenSection(keyword string, products []api.AffiliateProduct, links []search.AffiliateLink) {
	v.renderAffiliate("楽天", products, links)
}

var searchCmd = &cobra.Command{
	Use:   "search [--page N] [--sort <order>] [--stock <filter>] <keyword>...",
	Short: "Searches card prices across the tracked shops.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		g := globals.Get(cmd.Context())

		// star column needs the viewer's favorites; empty when logged out
		ids, err := g.Favorites.Ids(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		view := &searchView{favoriteIds: ids}

		query := url.Values{}
		query.Set("q", strings.Join(args, " "))
		if *searchPage > 1 {
			query.Set("page", strconv.Itoa(*searchPage))
		}
		query.Set("sort", *searchSort)
		query.Set("stock", *searchStock)

		controller := search.NewController(g.Client, view, search.NewMemoryHistory())
		err = controller.Init(cmd.Context(), query)
		if err != nil {
			os.Exit(1)
		}
	},
}
