package commands

import (
	"fmt"
	"os"

	"bsprice-client/cmd/bsprice/globals"
	"bsprice-client/cmd/bsprice/utils"
	"bsprice-client/lib/session"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(adminRegisterCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func greet(user session.User, ok bool) {
	if !ok {
		fmt.Println("ログインしました")
		return
	}
	if user.Role == session.RoleAdmin {
		fmt.Printf("ログインしました: %s (Admin)\n", user.Username)
	} else {
		fmt.Printf("ログインしました: %s\n", user.Username)
	}
}

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Logs into BSPrice and stores the session locally.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		g := globals.Get(cmd.Context())
		_, err := g.Client.Login(cmd.Context(), args[0], args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		greet(g.Session.User(cmd.Context()))
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <username> <email> <password>",
	Short: "Creates a BSPrice account and logs into it.",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		g := globals.Get(cmd.Context())
		_, err := g.Client.Register(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		greet(g.Session.User(cmd.Context()))
	},
}

var adminRegisterCmd = &cobra.Command{
	Use:   "admin-register <username> <email> <password> <invite-code>",
	Short: "Creates an administrator account using an invite code.",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		g := globals.Get(cmd.Context())
		_, err := g.Client.AdminRegister(cmd.Context(), args[0], args[1], args[2], args[3])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		greet(g.Session.User(cmd.Context()))
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discards the stored session.",
	Run: func(cmd *cobra.Command, args []string) {
		g := globals.Get(cmd.Context())
		g.Client.Logout(cmd.Context())
		g.Favorites.ClearCache()
		fmt.Println("ログアウトしました")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Shows the account the stored session belongs to.",
	Run: func(cmd *cobra.Command, args []string) {
		g := globals.Get(cmd.Context())
		user, ok := g.Session.User(cmd.Context())
		if !ok {
			// a token without a cached profile still counts, hydrate it
			user, ok = g.Client.FetchCurrentUser(cmd.Context(), true)
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "未ログインです")
			os.Exit(1)
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Id", "Username", "Email", "Role"})
		t.AppendRow(table.Row{user.Id, user.Username, user.Email, user.Role})
		t.Render()
	},
}
