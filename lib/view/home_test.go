package view

import (
	"fmt"
	"net/url"
	"testing"
	"time"

	"bsprice-client/lib/api"
	"bsprice-client/lib/timezone"

	"github.com/stretchr/testify/require"
)

func serverTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}

func TestHomeStats(t *testing.T) {
	r := testRenderer(t)
	updated := time.Date(2025, 6, 15, 9, 30, 0, 0, timezone.Location)
	html, err := r.HomeStats(api.HomeStats{
		TotalCards:  12345,
		TotalPrices: 678901,
		LastUpdated: serverTime(updated),
	})
	require.NoError(t, err)
	doc := parse(t, html)

	spans := doc.Find("span")
	require.Equal(t, 3, spans.Length())
	require.Contains(t, spans.Eq(0).Text(), "12,345")
	require.Contains(t, spans.Eq(1).Text(), "678,901")
	require.Contains(t, spans.Eq(2).Text(), "6/15 09:30")
}

func TestHomeStatsWithoutLastUpdated(t *testing.T) {
	r := testRenderer(t)
	html, err := r.HomeStats(api.HomeStats{TotalCards: 1, TotalPrices: 2})
	require.NoError(t, err)
	require.Equal(t, 2, parse(t, html).Find("span").Length())
}

func TestFeaturedKeywords(t *testing.T) {
	r := testRenderer(t)
	html, err := r.FeaturedKeywords([]api.FeaturedKeyword{
		{Keyword: "バジャーダレス"},
		{Keyword: "契約編"},
	})
	require.NoError(t, err)
	doc := parse(t, html)

	tags := doc.Find("a.featured-keyword-tag")
	require.Equal(t, 2, tags.Length())
	require.Equal(t, "バジャーダレス", tags.First().Text())
	href, _ := tags.First().Attr("href")
	parsed, err := url.Parse(href)
	require.NoError(t, err)
	require.Equal(t, "バジャーダレス", parsed.Query().Get("q"))

	// empty list renders nothing so the section stays hidden
	html, err = r.FeaturedKeywords(nil)
	require.NoError(t, err)
	require.Equal(t, "", html)
}

func TestRecentlyUpdated(t *testing.T) {
	r := testRenderer(t)
	longName := "とてもとてもとてもとてもとてもとてもとても長いカード名"
	html, err := r.RecentlyUpdated([]api.Product{
		{Name: longName, PriceText: "980円", Site: "遊々亭"},
	})
	require.NoError(t, err)
	doc := parse(t, html)

	item := doc.Find("a.home-item")
	require.Equal(t, 1, item.Length())
	name := item.Find(".home-item-name").Text()
	require.Equal(t, string([]rune(longName)[:25])+"...", name)
	require.Equal(t, "980円", item.Find(".home-item-price").Text())
	require.Equal(t, "遊々亭", item.Find(".home-item-shop").Text())

	// the search link carries the full, untruncated name
	href, _ := item.Attr("href")
	parsed, err := url.Parse(href)
	require.NoError(t, err)
	require.Equal(t, longName, parsed.Query().Get("q"))
}

func TestPriceMoves(t *testing.T) {
	r := testRenderer(t)
	moves := []api.PriceMove{{CardName: "バジャーダレス", Diff: 1500, ShopName: "カードラッシュ"}}

	html, err := r.PriceMoves(moves, true)
	require.NoError(t, err)
	diff := parse(t, html).Find(".home-item-diff")
	require.Equal(t, "+1,500円", diff.Text())
	require.True(t, diff.HasClass("up"))

	html, err = r.PriceMoves(moves, false)
	require.NoError(t, err)
	diff = parse(t, html).Find(".home-item-diff")
	require.Equal(t, "-1,500円", diff.Text())
	require.True(t, diff.HasClass("down"))
}

func TestHotCards(t *testing.T) {
	r := testRenderer(t)
	html, err := r.HotCards([]api.HotCard{{CardName: "バジャーダレス", ClickCount: 321}})
	require.NoError(t, err)
	require.Equal(t, "321 clicks", parse(t, html).Find(".home-item-clicks").Text())
}

func TestHomeListEmpty(t *testing.T) {
	r := testRenderer(t)
	html, err := r.HotCards(nil)
	require.NoError(t, err)
	require.Equal(t, "データがありません", parse(t, html).Find(".home-empty").Text())
}

func TestFilterBatchLogs(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	logs := []api.BatchLog{
		{ShopName: "遊々亭", Status: "success", FinishedAt: serverTime(now.Add(-2 * time.Hour))},
		{ShopName: "遊々亭", Status: "success", FinishedAt: serverTime(now.Add(-26 * time.Hour))},
		{ShopName: "カードラッシュ", Status: "error", FinishedAt: serverTime(now.Add(-1 * time.Hour))},
		{ShopName: "ドラスタ", Status: "success", FinishedAt: serverTime(now.Add(-72 * time.Hour))},
	}

	kept := FilterBatchLogs(logs, now)
	require.Len(t, kept, 1)
	require.Equal(t, "遊々亭", kept[0].ShopName)
	require.Equal(t, serverTime(now.Add(-2*time.Hour)), kept[0].FinishedAt)
}

func TestBatchNotification(t *testing.T) {
	r := testRenderer(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	logs := []api.BatchLog{
		{ShopName: "遊々亭", Status: "success", CardsTotal: 1234, CardsNew: 56,
			FinishedAt: serverTime(now.Add(-2 * time.Hour))},
	}

	html, err := r.BatchNotification(logs, true, now)
	require.NoError(t, err)
	doc := parse(t, html)
	require.Equal(t, "巡回完了", doc.Find(".batch-title").Text())
	require.Equal(t, "遊々亭", doc.Find(".batch-shop-name").Text())
	stats := doc.Find(".batch-shop-stats span")
	require.Equal(t, "1,234件取得", stats.Eq(0).Text())
	require.Equal(t, "56件新規", stats.Eq(1).Text())

	// hidden entirely for non-admins
	html, err = r.BatchNotification(logs, false, now)
	require.NoError(t, err)
	require.Equal(t, "", html)

	// and when nothing succeeded recently
	html, err = r.BatchNotification(nil, true, now)
	require.NoError(t, err)
	require.Equal(t, "", html)
}

func TestFormatClock(t *testing.T) {
	jst := time.Date(2025, 12, 3, 7, 5, 0, 0, timezone.Location)
	require.Equal(t, "12/3 07:05", formatClock(jst))

	utc := time.Date(2025, 6, 15, 0, 30, 0, 0, time.UTC)
	require.Equal(t, fmt.Sprintf("6/15 %02d:%02d", 9, 30), formatClock(utc))
}
