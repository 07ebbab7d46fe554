// Package notify drives the notification bell: the unread badge, the
// dropdown list, and read-state transitions. The badge count and the
// list load independently, matching how the header refreshes the count
// without ever opening the dropdown.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"bsprice-client/lib/api"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("lib/notify")

const listLimit = 20

type View interface {
	// SetBadge updates the unread badge; visible is false at zero
	SetBadge(text string, visible bool)
	RenderList(items []api.Notification)
	ShowListError(message string)
	// MarkAllRendered flips every currently rendered item to read
	// without a refetch
	MarkAllRendered()
}

type Panel struct {
	client *api.Client
	view   View
	nav    api.Navigator

	open bool
}

func NewPanel(client *api.Client, view View, nav api.Navigator) *Panel {
	if nav == nil {
		nav = api.NopNavigator{}
	}
	return &Panel{
		client: client,
		view:   view,
		nav:    nav,
	}
}

// BadgeText caps the displayed unread count at "99+".
func BadgeText(count int) (text string, visible bool) {
	if count <= 0 {
		return "0", false
	}
	if count > 99 {
		return "99+", true
	}
	return fmt.Sprintf("%d", count), true
}

// RefreshCount re-reads the unread count. A failed count fetch is a
// background annoyance, not an error the user sees.
func (p *Panel) RefreshCount(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "RefreshCount")
	defer span.End()

	count, err := p.client.NotificationCount(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch count")
		slog.DebugContext(ctx, "notification count unavailable", "err", err)
		return
	}
	p.view.SetBadge(BadgeText(count))
}

// Toggle opens or closes the dropdown. Opening always refetches the
// list; closing is pure UI state.
func (p *Panel) Toggle(ctx context.Context) {
	if p.open {
		p.open = false
		return
	}
	p.open = true
	p.Load(ctx)
}

func (p *Panel) IsOpen() bool {
	return p.open
}

func (p *Panel) Load(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "Load")
	defer span.End()

	items, err := p.client.Notifications(ctx, listLimit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to load list")
		p.view.ShowListError("読み込みに失敗しました")
		return
	}
	p.view.RenderList(items)
}

// Click marks the item read, refreshes the badge, and navigates to the
// card detail view when the notification references one.
func (p *Panel) Click(ctx context.Context, item api.Notification) {
	ctx, span := tracer.Start(ctx, "Click")
	defer span.End()

	err := p.client.MarkNotificationRead(ctx, item.Id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to mark read")
		slog.DebugContext(ctx, "failed to mark notification read", "id", item.Id, "err", err)
	} else {
		p.RefreshCount(ctx)
	}

	if item.CardId != 0 {
		p.nav.NavigateTo(fmt.Sprintf("/card/%d", item.CardId))
	}
}

// MarkAllRead posts the bulk action, then flips the rendered items in
// place instead of refetching the list.
func (p *Panel) MarkAllRead(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "MarkAllRead")
	defer span.End()

	err := p.client.MarkAllNotificationsRead(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to mark all read")
		slog.DebugContext(ctx, "failed to mark all notifications read", "err", err)
		return
	}
	p.RefreshCount(ctx)
	p.view.MarkAllRendered()
}
