package api

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"
)

func (c *Client) FavoriteIds(ctx context.Context) ([]int64, error) {
	ctx, span := tracer.Start(ctx, "FavoriteIds")
	defer span.End()

	res, err := c.authRequest(ctx).Get("/api/favorites/ids")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}
	if err := c.checkAuth(ctx, res); err != nil {
		return nil, err
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "favorite ids rejected")
		return nil, serverError(res, "読み込みに失敗しました")
	}

	var payload struct {
		CardIds []int64 `json:"card_ids"`
	}
	err = decode(res, &payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected favorite ids payload")
		return nil, err
	}
	return payload.CardIds, nil
}

func (c *Client) Favorites(ctx context.Context) ([]Favorite, error) {
	ctx, span := tracer.Start(ctx, "Favorites")
	defer span.End()

	res, err := c.authRequest(ctx).Get("/api/favorites")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}
	if err := c.checkAuth(ctx, res); err != nil {
		return nil, err
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "favorites rejected")
		return nil, serverError(res, "読み込みに失敗しました")
	}

	var payload struct {
		Favorites []Favorite `json:"favorites"`
	}
	err = decode(res, &payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected favorites payload")
		return nil, err
	}
	return payload.Favorites, nil
}

func (c *Client) AddFavorite(ctx context.Context, cardId int64) error {
	ctx, span := tracer.Start(ctx, "AddFavorite")
	defer span.End()

	res, err := c.authRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]int64{"card_id": cardId}).
		Post("/api/favorites")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to post")
		return err
	}
	if err := c.checkAuth(ctx, res); err != nil {
		return err
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "add favorite rejected")
		return serverError(res, "追加に失敗しました")
	}
	return nil
}

func (c *Client) RemoveFavorite(ctx context.Context, cardId int64) error {
	ctx, span := tracer.Start(ctx, "RemoveFavorite")
	defer span.End()

	res, err := c.authRequest(ctx).
		Delete(fmt.Sprintf("/api/favorites/%d", cardId))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to delete")
		return err
	}
	if err := c.checkAuth(ctx, res); err != nil {
		return err
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "remove favorite rejected")
		return serverError(res, "削除に失敗しました")
	}
	return nil
}
