package api

import (
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/codes"
)

func (c *Client) Notifications(ctx context.Context, limit int) ([]Notification, error) {
	ctx, span := tracer.Start(ctx, "Notifications")
	defer span.End()

	res, err := c.authRequest(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/api/notifications")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "notifications rejected")
		return nil, serverError(res, "読み込みに失敗しました")
	}

	var payload struct {
		Notifications []Notification `json:"notifications"`
	}
	err = decode(res, &payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected notifications payload")
		return nil, err
	}
	return payload.Notifications, nil
}

func (c *Client) NotificationCount(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "NotificationCount")
	defer span.End()

	res, err := c.authRequest(ctx).Get("/api/notifications/count")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return 0, err
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "notification count rejected")
		return 0, serverError(res, "読み込みに失敗しました")
	}

	var payload struct {
		UnreadCount int `json:"unread_count"`
	}
	err = decode(res, &payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected count payload")
		return 0, err
	}
	return payload.UnreadCount, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	ctx, span := tracer.Start(ctx, "MarkNotificationRead")
	defer span.End()

	res, err := c.authRequest(ctx).
		Post(fmt.Sprintf("/api/notifications/%d/read", id))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to post")
		return err
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "mark read rejected")
		return serverError(res, "既読にできませんでした")
	}
	return nil
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "MarkAllNotificationsRead")
	defer span.End()

	res, err := c.authRequest(ctx).Post("/api/notifications/read-all")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to post")
		return err
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "mark all read rejected")
		return serverError(res, "既読にできませんでした")
	}
	return nil
}
