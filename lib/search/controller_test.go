package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"

	"bsprice-client/lib/api"
	"bsprice-client/lib/keyv"
	"bsprice-client/lib/session"
	"bsprice-client/lib/telemetry"

	"github.com/stretchr/testify/require"
)

type fakeView struct {
	busy           bool
	busyChanges    []bool
	errorMessages  []string
	results        []api.SearchResult
	resultKeywords []string
	windows        []Window
	countLabels    []string
	titles         []string
	scrolls        int
	amazonRenders  int
	rakutenState   []int // product counts per render
}

func (v *fakeView) SetBusy(busy bool) {
	v.busy = busy
	v.busyChanges = append(v.busyChanges, busy)
}
func (v *fakeView) ClearResults()               {}
func (v *fakeView) ShowError(message string)    { v.errorMessages = append(v.errorMessages, message) }
func (v *fakeView) RenderResults(r api.SearchResult, s State) {
	v.results = append(v.results, r)
	v.resultKeywords = append(v.resultKeywords, s.Keyword)
}
func (v *fakeView) RenderPagination(w Window)  { v.windows = append(v.windows, w) }
func (v *fakeView) SetResultCount(text string) { v.countLabels = append(v.countLabels, text) }
func (v *fakeView) SetTitle(title string)      { v.titles = append(v.titles, title) }
func (v *fakeView) ScrollToTop()               { v.scrolls++ }
func (v *fakeView) RenderAmazonSection(keyword string, products []api.AffiliateProduct, links []AffiliateLink) {
	v.amazonRenders++
}
func (v *fakeView) RenderRakutenSection(keyword string, products []api.AffiliateProduct, links []AffiliateLink) {
	v.rakutenState = append(v.rakutenState, len(products))
}

type searchBackend struct {
	searchCalls atomic.Int64
	lastQuery   atomic.Value // url.Values
	totalCount  int
	failSearch  atomic.Bool

	// a search for holdKeyword blocks until holdRelease closes,
	// signalling arrival on holdStarted
	holdKeyword string
	holdStarted chan struct{}
	holdRelease chan struct{}
}

func (b *searchBackend) holdSearches(keyword string) {
	b.holdKeyword = keyword
	b.holdStarted = make(chan struct{})
	b.holdRelease = make(chan struct{})
}

func (b *searchBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/search", func(w http.ResponseWriter, r *http.Request) {
		b.searchCalls.Add(1)
		b.lastQuery.Store(r.URL.Query())
		if b.holdKeyword != "" && r.URL.Query().Get("keyword") == b.holdKeyword {
			close(b.holdStarted)
			<-b.holdRelease
		}
		if b.failSearch.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail": "検索サーバーが落ちています"}`))
			return
		}

		page := 1
		if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
			page = p
		}
		items := []api.Product{}
		if b.totalCount > 0 {
			items = append(items, api.Product{
				Site: "遊々亭", Name: "テストカード", Price: 100,
				PriceText: "100円", Stock: 3, StockText: "残り3点",
				Url: "https://shop.example/1", CardId: 1,
			})
		}
		totalPages := (b.totalCount + api.PerPage - 1) / api.PerPage
		json.NewEncoder(w).Encode(api.SearchResult{
			Items:      items,
			Page:       page,
			TotalPages: totalPages,
			TotalCount: b.totalCount,
		})
	})
	mux.HandleFunc("/api/amazon-products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": []}`))
	})
	mux.HandleFunc("/api/rakuten-products", func(w http.ResponseWriter, r *http.Request) {
		// this feed failing must not disturb the search render
		w.WriteHeader(http.StatusBadGateway)
	})
	return mux
}

func setupController(t *testing.T, backend *searchBackend) (*Controller, *fakeView, *MemoryHistory) {
	cleanup := telemetry.SetupForTesting(t, "test:search")
	t.Cleanup(cleanup)

	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	client := api.NewClient(api.Options{
		BaseUrl: server.URL,
		Session: session.NewStore(keyv.NewMemoryStore()),
	})
	view := &fakeView{}
	history := NewMemoryHistory()
	return NewController(client, view, history), view, history
}

func TestSubmitEmptyKeywordNeverFetches(t *testing.T) {
	ctx := context.Background()
	backend := &searchBackend{totalCount: 1}
	ctrl, view, _ := setupController(t, backend)

	err := ctrl.Submit(ctx, "   ")
	require.NoError(t, err)
	require.Equal(t, []string{emptyKeywordMessage}, view.errorMessages)
	require.EqualValues(t, 0, backend.searchCalls.Load())
}

func TestSubmitNewKeywordResetsPage(t *testing.T) {
	ctx := context.Background()
	backend := &searchBackend{totalCount: 200}
	ctrl, _, _ := setupController(t, backend)

	require.NoError(t, ctrl.Submit(ctx, "青眼"))
	require.NoError(t, ctrl.GoToPage(ctx, 5))
	require.Equal(t, 5, ctrl.State().Page)

	require.NoError(t, ctrl.Submit(ctx, "真竜"))
	require.Equal(t, 1, ctrl.State().Page)

	query := backend.lastQuery.Load().(url.Values)
	require.Equal(t, "1", query.Get("page"))
	require.Equal(t, "真竜", query.Get("keyword"))
}

func TestSameKeywordKeepsPage(t *testing.T) {
	ctx := context.Background()
	backend := &searchBackend{totalCount: 200}
	ctrl, _, _ := setupController(t, backend)

	require.NoError(t, ctrl.Submit(ctx, "青眼"))
	require.NoError(t, ctrl.GoToPage(ctx, 3))
	require.NoError(t, ctrl.Submit(ctx, "青眼"))
	require.Equal(t, 3, ctrl.State().Page)
}

func TestSortChangeResetsPageAndRefetches(t *testing.T) {
	ctx := context.Background()
	backend := &searchBackend{totalCount: 200}
	ctrl, _, _ := setupController(t, backend)

	require.NoError(t, ctrl.Submit(ctx, "青眼"))
	require.NoError(t, ctrl.GoToPage(ctx, 3))
	calls := backend.searchCalls.Load()

	require.NoError(t, ctrl.SetSort(ctx, SortPriceDesc))
	require.Equal(t, 1, ctrl.State().Page)
	require.Equal(t, calls+1, backend.searchCalls.Load())

	query := backend.lastQuery.Load().(url.Values)
	require.Equal(t, SortPriceDesc, query.Get("sort"))
}

func TestStockChangeResetsPage(t *testing.T) {
	ctx := context.Background()
	backend := &searchBackend{totalCount: 200}
	ctrl, _, _ := setupController(t, backend)

	require.NoError(t, ctrl.Submit(ctx, "青眼"))
	require.NoError(t, ctrl.GoToPage(ctx, 2))
	require.NoError(t, ctrl.SetStock(ctx, StockIn))
	require.Equal(t, 1, ctrl.State().Page)

	query := backend.lastQuery.Load().(url.Values)
	require.Equal(t, StockIn, query.Get("stock"))
}

func TestGoToPageScrollsToTop(t *testing.T) {
	ctx := context.Background()
	backend := &searchBackend{totalCount: 200}
	ctrl, view, _ := setupController(t, backend)

	require.NoError(t, ctrl.Submit(ctx, "青眼"))
	require.NoError(t, ctrl.GoToPage(ctx, 2))
	require.Equal(t, 1, view.scrolls)
}

func TestEmptyResultRendersZeroLabel(t *testing.T) {
	ctx := context.Background()
	backend := &searchBackend{totalCount: 0}
	ctrl, view, _ := setupController(t, backend)

	require.NoError(t, ctrl.Submit(ctx, "青眼"))
	require.Equal(t, []string{"0件"}, view.countLabels)
	require.Len(t, view.windows, 1)
	require.False(t, view.windows[0].Visible)
}

func TestFetchFailureShowsErrorAndReenablesTrigger(t *testing.T) {
	ctx := context.Background()
	backend := &searchBackend{totalCount: 1}
	backend.failSearch.Store(true)
	ctrl, view, _ := setupController(t, backend)

	err := ctrl.Submit(ctx, "青眼")
	require.Error(t, err)
	require.Equal(t, []string{"検索サーバーが落ちています"}, view.errorMessages)
	require.Empty(t, view.results)
	require.False(t, view.busy, "trigger re-enabled on the failure path")
}

func TestSlowResponseLosesToNewerFetch(t *testing.T) {
	ctx := context.Background()
	backend := &searchBackend{totalCount: 1}
	backend.holdSearches("古いカード")
	ctrl, view, _ := setupController(t, backend)

	done := make(chan error, 1)
	go func() {
		done <- ctrl.Submit(ctx, "古いカード")
	}()
	<-backend.holdStarted

	// a second search while the first is still in flight
	require.NoError(t, ctrl.Submit(ctx, "新しいカード"))

	close(backend.holdRelease)
	require.NoError(t, <-done)

	require.EqualValues(t, 2, backend.searchCalls.Load())
	require.Equal(t, []string{"新しいカード"}, view.resultKeywords, "the superseded response never renders")
	require.Len(t, view.titles, 1)
	require.Contains(t, view.titles[0], "新しいカード")
	require.Equal(t, 1, view.amazonRenders)
	require.False(t, view.busy)
}

func TestAffiliatePanelFailureIsIsolated(t *testing.T) {
	ctx := context.Background()
	backend := &searchBackend{totalCount: 1}
	ctrl, view, _ := setupController(t, backend)

	require.NoError(t, ctrl.Submit(ctx, "青眼"))
	require.Len(t, view.results, 1)
	require.Equal(t, 1, view.amazonRenders)
	// the rakuten feed 502s, the panel renders empty
	require.Equal(t, []int{0}, view.rakutenState)
}

func TestHistoryPushAndPopState(t *testing.T) {
	ctx := context.Background()
	backend := &searchBackend{totalCount: 200}
	ctrl, _, history := setupController(t, backend)

	require.NoError(t, ctrl.Submit(ctx, "青眼"))
	require.NoError(t, ctrl.GoToPage(ctx, 2))

	entry, ok := history.Back()
	require.True(t, ok)
	require.Equal(t, 1, entry.State.Page)

	calls := backend.searchCalls.Load()
	require.NoError(t, ctrl.HandlePopState(ctx, entry.State))
	require.Equal(t, calls+1, backend.searchCalls.Load())
	require.Equal(t, 1, ctrl.State().Page)

	// a popstate restore replaces, it doesn't grow the stack
	current, ok := history.Current()
	require.True(t, ok)
	require.Equal(t, 1, current.State.Page)
	_, ok = history.Forward()
	require.True(t, ok, "forward entry preserved")
}

func TestInitFromURL(t *testing.T) {
	ctx := context.Background()
	backend := &searchBackend{totalCount: 200}
	ctrl, view, _ := setupController(t, backend)

	query, _ := url.ParseQuery("q=青眼&page=2&sort=site")
	require.NoError(t, ctrl.Init(ctx, query))
	require.EqualValues(t, 1, backend.searchCalls.Load())
	require.Equal(t, 2, ctrl.State().Page)
	require.Contains(t, view.titles[0], "青眼")
}

func TestInitWithoutKeywordDoesNothing(t *testing.T) {
	ctx := context.Background()
	backend := &searchBackend{totalCount: 200}
	ctrl, _, _ := setupController(t, backend)

	require.NoError(t, ctrl.Init(ctx, url.Values{}))
	require.EqualValues(t, 0, backend.searchCalls.Load())
}

func TestFormatResultRange(t *testing.T) {
	require.Equal(t, "0件", FormatResultRange(api.SearchResult{TotalCount: 0}))
	require.Equal(t, "45件中 1-20件を表示", FormatResultRange(api.SearchResult{Page: 1, TotalCount: 45}))
	require.Equal(t, "45件中 41-45件を表示", FormatResultRange(api.SearchResult{Page: 3, TotalCount: 45}))
}
