package commands

import (
	"context"
	"fmt"
	"os"

	"bsprice-client/cmd/bsprice/globals"
	"bsprice-client/lib/api"
	"bsprice-client/lib/configutil"
	"bsprice-client/lib/favorites"
	"bsprice-client/lib/keyv"
	"bsprice-client/lib/session"

	"github.com/spf13/cobra"
)

type Config struct {
	// BaseUrl points at the BSPrice backend, e.g. "https://bsprice.jp"
	BaseUrl string `json:"base_url"`
	// Storage is the sqlite file holding the session; defaults to
	// bsprice.db next to the config
	Storage string `json:"storage"`
}

var rootCmd = &cobra.Command{
	Use:   "bsprice",
	Short: "bsprice is a terminal frontend for the BSPrice card price comparison service.",
}

func ExecuteContext(ctx context.Context) {
	cfg, err := configutil.ReadConfig[Config]("bsprice.json5")
	if err != nil {
		fatal("failed to read bsprice.json5", err)
	}
	if cfg.BaseUrl == "" {
		fatal("invalid bsprice.json5", fmt.Errorf("base_url is required"))
	}
	if cfg.Storage == "" {
		cfg.Storage = "bsprice.db"
	}

	store, err := keyv.Open(cfg.Storage)
	if err != nil {
		fatal("failed to open session storage", err)
	}
	defer store.Close()

	sess := session.NewStore(store)
	client := api.NewClient(api.Options{
		BaseUrl: cfg.BaseUrl,
		Session: sess,
	})

	ctx = globals.Set(ctx, &globals.Value{
		Client:    client,
		Session:   sess,
		Favorites: favorites.NewCache(client),
	})

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", msg, err)
	os.Exit(1)
}
