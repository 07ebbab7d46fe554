package view

import (
	"time"

	"bsprice-client/lib/api"
	"bsprice-client/lib/notify"
)

type notificationItemData struct {
	Notification api.Notification
	StateClass   string
	TimeText     string
}

// NotificationList renders the dropdown items, newest first as the
// backend returns them. Unread items carry the "unread" class so a
// mark-all-read can flip them in place.
func (r *Renderer) NotificationList(items []api.Notification, now time.Time) (string, error) {
	data := struct{ Items []notificationItemData }{}
	for _, n := range items {
		state := "unread"
		if n.IsRead {
			state = "read"
		}
		data.Items = append(data.Items, notificationItemData{
			Notification: n,
			StateClass:   state,
			TimeText:     notify.RelativeTime(n.CreatedAt, now),
		})
	}
	return r.render("notificationList", data)
}
