package commands

import (
	"fmt"
	"os"
	"strconv"

	"bsprice-client/cmd/bsprice/globals"
	"bsprice-client/cmd/bsprice/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.AddCommand(favoritesToggleCmd)
	rootCmd.AddCommand(favoritesCmd)
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Works with the favorite cards of the logged-in account.",
}

func cardIdArg(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid card id %q\n", arg)
		os.Exit(1)
	}
	return id
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the favorite cards.",
	Run: func(cmd *cobra.Command, args []string) {
		g := globals.Get(cmd.Context())
		favs, err := g.Favorites.All(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if len(favs) == 0 {
			fmt.Println("お気に入りはありません")
			return
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Card Id", "Name", "Added"})
		for _, f := range favs {
			t.AppendRow(table.Row{f.CardId, f.CardName, f.CreatedAt})
		}
		t.Render()
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <card-id>",
	Short: "Adds a card to the favorites.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		g := globals.Get(cmd.Context())
		err := g.Favorites.Add(cmd.Context(), cardIdArg(args[0]))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("お気に入りに追加しました")
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <card-id>",
	Short: "Removes a card from the favorites.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		g := globals.Get(cmd.Context())
		err := g.Favorites.Remove(cmd.Context(), cardIdArg(args[0]))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("お気に入りから削除しました")
	},
}

var favoritesToggleCmd = &cobra.Command{
	Use:   "toggle <card-id>",
	Short: "Adds the card when absent, removes it when present.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		g := globals.Get(cmd.Context())
		nowFavorite, err := g.Favorites.Toggle(cmd.Context(), cardIdArg(args[0]))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if nowFavorite {
			fmt.Println("お気に入りに追加しました")
		} else {
			fmt.Println("お気に入りから削除しました")
		}
	},
}
