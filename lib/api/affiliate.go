package api

import (
	"context"

	"go.opentelemetry.io/otel/codes"
)

func (c *Client) affiliateFeed(ctx context.Context, path string) ([]AffiliateProduct, error) {
	res, err := c.request(ctx).Get(path)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, serverError(res, "読み込みに失敗しました")
	}

	var payload struct {
		Products []AffiliateProduct `json:"products"`
	}
	err = decode(res, &payload)
	if err != nil {
		return nil, err
	}
	return payload.Products, nil
}

func (c *Client) AmazonProducts(ctx context.Context) ([]AffiliateProduct, error) {
	ctx, span := tracer.Start(ctx, "AmazonProducts")
	defer span.End()

	products, err := c.affiliateFeed(ctx, "/api/amazon-products")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch amazon feed")
	}
	return products, err
}

func (c *Client) RakutenProducts(ctx context.Context) ([]AffiliateProduct, error) {
	ctx, span := tracer.Start(ctx, "RakutenProducts")
	defer span.End()

	products, err := c.affiliateFeed(ctx, "/api/rakuten-products")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch rakuten feed")
	}
	return products, err
}
