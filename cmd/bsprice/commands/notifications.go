package commands

import (
	"fmt"
	"os"
	"strconv"

	"bsprice-client/cmd/bsprice/globals"
	"bsprice-client/cmd/bsprice/utils"
	"bsprice-client/lib/api"
	"bsprice-client/lib/notify"
	"bsprice-client/lib/timezone"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsReadCmd)
	notificationsCmd.AddCommand(notificationsReadAllCmd)
	rootCmd.AddCommand(notificationsCmd)
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Works with price alerts and announcements.",
}

type notificationView struct{}

func (v notificationView) SetBadge(text string, visible bool) {
	if visible {
		fmt.Printf("未読: %s\n", text)
	}
}

func (v notificationView) RenderList(items []api.Notification) {
	if len(items) == 0 {
		fmt.Println("通知はありません")
		return
	}

	now := timezone.Now()
	t := utils.NewTable()
	t.AppendHeader(table.Row{"Id", "", "Title", "Message", "When"})
	for _, n := range items {
		state := ""
		if !n.IsRead {
			state = "●"
		}
		t.AppendRow(table.Row{n.Id, state, n.Title, n.Message, notify.RelativeTime(n.CreatedAt, now)})
	}
	t.Render()
}

func (v notificationView) ShowListError(message string) {
	fmt.Fprintln(os.Stderr, message)
}

func (v notificationView) MarkAllRendered() {}

func panelFor(cmd *cobra.Command) *notify.Panel {
	g := globals.Get(cmd.Context())
	return notify.NewPanel(g.Client, notificationView{}, nil)
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Shows the latest notifications.",
	Run: func(cmd *cobra.Command, args []string) {
		panel := panelFor(cmd)
		panel.RefreshCount(cmd.Context())
		panel.Load(cmd.Context())
	},
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Marks one notification as read.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid notification id %q\n", args[0])
			os.Exit(1)
		}
		panelFor(cmd).Click(cmd.Context(), api.Notification{Id: id})
	},
}

var notificationsReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Marks every notification as read.",
	Run: func(cmd *cobra.Command, args []string) {
		panelFor(cmd).MarkAllRead(cmd.Context())
	},
}
