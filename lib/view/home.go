package view

import (
	"time"

	"bsprice-client/lib/api"
	"bsprice-client/lib/textutil"
	"bsprice-client/lib/timezone"
)

// formatClock shows a JST timestamp as "M/D HH:MM", the short form the
// dashboard uses for update times.
func formatClock(t time.Time) string {
	local := t.In(timezone.Location)
	return local.Format("1/2 15:04")
}

func (r *Renderer) HomeStats(stats api.HomeStats) (string, error) {
	data := struct {
		Stats       api.HomeStats
		LastUpdated string
	}{Stats: stats}
	if stats.LastUpdated != "" {
		t, err := timezone.ParseServerTime(stats.LastUpdated)
		if err == nil {
			data.LastUpdated = formatClock(t)
		}
	}
	return r.render("homeStats", data)
}

// FeaturedKeywords renders the keyword tag strip. An empty list renders
// nothing; the caller hides the section.
func (r *Renderer) FeaturedKeywords(keywords []api.FeaturedKeyword) (string, error) {
	if len(keywords) == 0 {
		return "", nil
	}
	data := struct{ Keywords []string }{}
	for _, kw := range keywords {
		data.Keywords = append(data.Keywords, kw.Keyword)
	}
	return r.render("featuredKeywords", data)
}

// homeItemData covers every dashboard list; lists only fill the fields
// they show.
type homeItemData struct {
	Query     string
	Name      string
	Price     string
	Diff      string
	DiffClass string
	Shop      string
	Clicks    string
}

func (r *Renderer) homeList(items []homeItemData) (string, error) {
	return r.render("homeList", struct{ Items []homeItemData }{items})
}

func (r *Renderer) RecentlyUpdated(items []api.Product) (string, error) {
	data := make([]homeItemData, 0, len(items))
	for _, p := range items {
		data = append(data, homeItemData{
			Query: p.Name,
			Name:  textutil.Truncate(p.Name, 25),
			Price: p.PriceText,
			Shop:  p.Site,
		})
	}
	return r.homeList(data)
}

// PriceMoves renders the gainers or losers list; up picks the sign and
// the diff color class.
func (r *Renderer) PriceMoves(moves []api.PriceMove, up bool) (string, error) {
	sign, class := "+", "up"
	if !up {
		sign, class = "-", "down"
	}
	data := make([]homeItemData, 0, len(moves))
	for _, m := range moves {
		data = append(data, homeItemData{
			Query:     m.CardName,
			Name:      textutil.Truncate(m.CardName, 20),
			Diff:      sign + comma(m.Diff) + "円",
			DiffClass: class,
			Shop:      m.ShopName,
		})
	}
	return r.homeList(data)
}

func (r *Renderer) HotCards(cards []api.HotCard) (string, error) {
	data := make([]homeItemData, 0, len(cards))
	for _, c := range cards {
		data = append(data, homeItemData{
			Query:  c.CardName,
			Name:   textutil.Truncate(c.CardName, 25),
			Clicks: comma(c.ClickCount) + " clicks",
		})
	}
	return r.homeList(data)
}

type batchShopData struct {
	ShopName     string
	CardsTotal   int64
	CardsNew     int64
	FinishedText string
}

// FilterBatchLogs keeps the crawl results worth announcing: successful
// runs finished within the last 48 hours, the newest per shop. The
// crawler runs daily, so the window spans two runs.
func FilterBatchLogs(logs []api.BatchLog, now time.Time) []api.BatchLog {
	seen := map[string]bool{}
	var kept []api.BatchLog
	for _, log := range logs {
		if log.Status != "success" {
			continue
		}
		finished, err := timezone.ParseServerTime(log.FinishedAt)
		if err != nil || now.Sub(finished) >= 48*time.Hour {
			continue
		}
		if seen[log.ShopName] {
			continue
		}
		seen[log.ShopName] = true
		kept = append(kept, log)
	}
	return kept
}

// BatchNotification renders the admin-only crawl summary. Non-admins
// and windows with no recent successful run render nothing.
func (r *Renderer) BatchNotification(logs []api.BatchLog, isAdmin bool, now time.Time) (string, error) {
	if !isAdmin {
		return "", nil
	}
	kept := FilterBatchLogs(logs, now)
	if len(kept) == 0 {
		return "", nil
	}
	shops := make([]batchShopData, 0, len(kept))
	for _, log := range kept {
		finished, _ := timezone.ParseServerTime(log.FinishedAt)
		shops = append(shops, batchShopData{
			ShopName:     log.ShopName,
			CardsTotal:   log.CardsTotal,
			CardsNew:     log.CardsNew,
			FinishedText: formatClock(finished),
		})
	}
	return r.render("batchNotification", struct{ Shops []batchShopData }{shops})
}
