package api

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// PerPage is fixed at 20 everywhere the search view renders, the
// result-range arithmetic depends on it.
const PerPage = 20

type SearchQuery struct {
	Keyword string
	Page    int
	Sort    string
	Stock   string
}

func (c *Client) Search(ctx context.Context, query SearchQuery) (SearchResult, error) {
	ctx, span := tracer.Start(ctx, "Search")
	defer span.End()
	span.SetAttributes(
		attribute.String("keyword", query.Keyword),
		attribute.Int("page", query.Page),
	)

	res, err := c.request(ctx).
		SetQueryParams(map[string]string{
			"keyword":  query.Keyword,
			"page":     strconv.Itoa(query.Page),
			"per_page": strconv.Itoa(PerPage),
			"sort":     query.Sort,
			"stock":    query.Stock,
		}).
		Get("/api/search")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return SearchResult{}, err
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "search rejected")
		return SearchResult{}, serverError(res, "検索に失敗しました")
	}

	var result SearchResult
	err = decode(res, &result)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected search payload")
		return SearchResult{}, err
	}
	return result, nil
}

func (c *Client) Home(ctx context.Context) (HomeData, error) {
	ctx, span := tracer.Start(ctx, "Home")
	defer span.End()

	res, err := c.request(ctx).Get("/api/home")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return HomeData{}, err
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "home rejected")
		return HomeData{}, serverError(res, "読み込みに失敗しました")
	}

	var data HomeData
	err = decode(res, &data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected home payload")
		return HomeData{}, err
	}
	return data, nil
}
