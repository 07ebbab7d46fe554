package search

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync/atomic"

	"bsprice-client/lib/api"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("lib/search")

const emptyKeywordMessage = "検索キーワードを入力してください"

// View is the render surface the controller drives. The HTML frontend,
// the terminal frontend and the test doubles all sit behind it.
type View interface {
	// SetBusy(true) disables the search trigger and shows the loading
	// indicator; the controller guarantees SetBusy(false) on every exit
	// path of a fetch.
	SetBusy(busy bool)
	// ClearResults empties the result area, hides pagination and blanks
	// the result-count label.
	ClearResults()
	ShowError(message string)
	RenderResults(result api.SearchResult, state State)
	RenderPagination(window Window)
	SetResultCount(text string)
	SetTitle(title string)
	ScrollToTop()
	RenderAmazonSection(keyword string, products []api.AffiliateProduct, links []AffiliateLink)
	RenderRakutenSection(keyword string, products []api.AffiliateProduct, links []AffiliateLink)
}

type Controller struct {
	client  *api.Client
	view    View
	history History

	state State
	// seq orders overlapping fetches so a slow stale response can't
	// overwrite the latest one
	seq atomic.Uint64
}

func NewController(client *api.Client, view View, history History) *Controller {
	return &Controller{
		client:  client,
		view:    view,
		history: history,
		state:   DefaultState(),
	}
}

func (c *Controller) State() State {
	return c.state
}

// Init restores state from the current URL query and, when a keyword is
// present, runs the initial fetch.
func (c *Controller) Init(ctx context.Context, query url.Values) error {
	c.state = ParseState(query)
	if c.state.Keyword == "" {
		return nil
	}
	return c.fetch(ctx, true)
}

// Submit handles the search button and the Enter key. An empty keyword
// is a validation error shown inline, no network call happens.
func (c *Controller) Submit(ctx context.Context, keyword string) error {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		c.view.ShowError(emptyKeywordMessage)
		return nil
	}
	if keyword != c.state.Keyword {
		c.state.Page = 1
	}
	c.state.Keyword = keyword
	return c.fetch(ctx, true)
}

func (c *Controller) SetSort(ctx context.Context, sort string) error {
	c.state.Page = 1
	c.state.Sort = sort
	return c.Submit(ctx, c.state.Keyword)
}

func (c *Controller) SetStock(ctx context.Context, stock string) error {
	c.state.Page = 1
	c.state.Stock = stock
	return c.Submit(ctx, c.state.Keyword)
}

// GoToPage moves to the requested page. Bounds are whatever the server
// reported, the rendered buttons are the only guard.
func (c *Controller) GoToPage(ctx context.Context, page int) error {
	c.state.Page = page
	err := c.fetch(ctx, true)
	c.view.ScrollToTop()
	return err
}

// HandlePopState restores a state carried by a history entry (not by
// re-parsing the URL) and re-fetches without pushing a new entry.
func (c *Controller) HandlePopState(ctx context.Context, state State) error {
	c.state = state
	return c.fetch(ctx, false)
}

func (c *Controller) fetch(ctx context.Context, push bool) error {
	ctx, span := tracer.Start(ctx, "fetch")
	defer span.End()
	span.SetAttributes(
		attribute.String("keyword", c.state.Keyword),
		attribute.Int("page", c.state.Page),
	)

	seq := c.seq.Add(1)
	state := c.state

	if push {
		c.history.Push(state, state.Path())
	} else {
		c.history.Replace(state, state.Path())
	}

	c.view.SetBusy(true)
	c.view.ClearResults()
	defer c.view.SetBusy(false)

	result, err := c.client.Search(ctx, api.SearchQuery{
		Keyword: state.Keyword,
		Page:    state.Page,
		Sort:    state.Sort,
		Stock:   state.Stock,
	})

	if c.seq.Load() != seq {
		// a newer fetch has been issued, this response lost the race
		span.SetStatus(codes.Ok, "stale response discarded")
		return nil
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		c.view.ShowError(err.Error())
		return err
	}

	c.view.RenderResults(result, state)
	c.view.RenderPagination(Paginate(result.Page, result.TotalPages))
	c.view.SetResultCount(FormatResultRange(result))
	c.view.SetTitle(fmt.Sprintf("「%s」の検索結果 | BSPrice - バトスピ価格比較", state.Keyword))

	c.showAmazonSection(ctx, state.Keyword)
	c.showRakutenSection(ctx, state.Keyword)

	return nil
}

// FormatResultRange is the 1-based inclusive "N件中 a-b件を表示" label,
// or "0件" for an empty result.
func FormatResultRange(result api.SearchResult) string {
	if result.TotalCount <= 0 {
		return "0件"
	}
	start := (result.Page-1)*api.PerPage + 1
	end := result.Page * api.PerPage
	if end > result.TotalCount {
		end = result.TotalCount
	}
	return fmt.Sprintf("%d件中 %d-%d件を表示", result.TotalCount, start, end)
}

// the side panels are best-effort: a feed failure renders nothing and
// never disturbs the primary search state

func (c *Controller) showAmazonSection(ctx context.Context, keyword string) {
	products, err := c.client.AmazonProducts(ctx)
	if err != nil {
		slog.DebugContext(ctx, "amazon feed unavailable", "err", err)
		products = nil
	}
	c.view.RenderAmazonSection(keyword, sampleAffiliateProducts(products), AmazonSearchLinks(keyword))
}

func (c *Controller) showRakutenSection(ctx context.Context, keyword string) {
	products, err := c.client.RakutenProducts(ctx)
	if err != nil {
		slog.DebugContext(ctx, "rakuten feed unavailable", "err", err)
		products = nil
	}
	c.view.RenderRakutenSection(keyword, sampleAffiliateProducts(products), RakutenSearchLinks(keyword))
}
