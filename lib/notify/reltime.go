package notify

import (
	"fmt"
	"time"

	"bsprice-client/lib/timezone"
)

// RelativeTime renders a server timestamp the way the notification list
// shows it: recent times as a relative phrase, anything a week or older
// as an absolute JST date.
func RelativeTime(createdAt string, now time.Time) string {
	t, err := timezone.ParseServerTime(createdAt)
	if err != nil {
		return createdAt
	}

	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "たった今"
	case d < time.Hour:
		return fmt.Sprintf("%d分前", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d時間前", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%d日前", int(d.Hours()/24))
	default:
		local := t.In(timezone.Location)
		return fmt.Sprintf("%d/%d/%d", local.Year(), int(local.Month()), local.Day())
	}
}
