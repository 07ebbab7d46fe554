package commands

import (
	"fmt"
	"os"
	"strings"

	"bsprice-client/cmd/bsprice/globals"
	"bsprice-client/cmd/bsprice/utils"
	"bsprice-client/lib/textutil"
	"bsprice-client/lib/timezone"
	"bsprice-client/lib/view"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(homeCmd)
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Shows the BSPrice dashboard: stats, movers and hot cards.",
	Run: func(cmd *cobra.Command, args []string) {
		g := globals.Get(cmd.Context())
		data, err := g.Client.Home(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		stats := fmt.Sprintf("登録カード: %d件  価格データ: %d件", data.Stats.TotalCards, data.Stats.TotalPrices)
		if data.Stats.LastUpdated != "" {
			updated, err := timezone.ParseServerTime(data.Stats.LastUpdated)
			if err == nil {
				stats += fmt.Sprintf("  最終更新: %s", updated.Format("1/2 15:04"))
			}
		}
		fmt.Println(stats)

		if len(data.FeaturedKeywords) > 0 {
			keywords := make([]string, 0, len(data.FeaturedKeywords))
			for _, kw := range data.FeaturedKeywords {
				keywords = append(keywords, kw.Keyword)
			}
			fmt.Printf("人気のキーワード: %s\n", strings.Join(keywords, " / "))
		}

		if len(data.RecentlyUpdated) > 0 {
			fmt.Println()
			fmt.Println("最近更新")
			t := utils.NewTable()
			t.AppendHeader(table.Row{"Name", "Price", "Shop"})
			for _, p := range data.RecentlyUpdated {
				t.AppendRow(table.Row{textutil.Truncate(p.Name, 25), p.PriceText, p.Site})
			}
			t.Render()
		}

		if len(data.PriceUp) > 0 {
			fmt.Println()
			fmt.Println("値上がり")
			t := utils.NewTable()
			t.AppendHeader(table.Row{"Name", "Diff", "Shop"})
			for _, m := range data.PriceUp {
				t.AppendRow(table.Row{textutil.Truncate(m.CardName, 20), fmt.Sprintf("+%d円", m.Diff), m.ShopName})
			}
			t.Render()
		}

		if len(data.PriceDown) > 0 {
			fmt.Println()
			fmt.Println("値下がり")
			t := utils.NewTable()
			t.AppendHeader(table.Row{"Name", "Diff", "Shop"})
			for _, m := range data.PriceDown {
				t.AppendRow(table.Row{textutil.Truncate(m.CardName, 20), fmt.Sprintf("-%d円", m.Diff), m.ShopName})
			}
			t.Render()
		}

		if len(data.HotCards) > 0 {
			fmt.Println()
			fmt.Println("注目カード")
			t := utils.NewTable()
			t.AppendHeader(table.Row{"Name", "Clicks"})
			for _, c := range data.HotCards {
				t.AppendRow(table.Row{textutil.Truncate(c.CardName, 25), c.ClickCount})
			}
			t.Render()
		}

		// the crawl summary only means anything to admins
		if g.Session.IsAdmin(cmd.Context()) {
			recent := view.FilterBatchLogs(data.BatchLogs, timezone.Now())
			if len(recent) > 0 {
				fmt.Println()
				fmt.Println("巡回完了")
				t := utils.NewTable()
				t.AppendHeader(table.Row{"Shop", "Total", "New", "Finished"})
				for _, log := range recent {
					finished, _ := timezone.ParseServerTime(log.FinishedAt)
					t.AppendRow(table.Row{log.ShopName, log.CardsTotal, log.CardsNew, finished.Format("1/2 15:04")})
				}
				t.Render()
			}
		}
	},
}
