package search

import (
	"fmt"
	"net/url"

	"bsprice-client/lib/api"

	random "github.com/mazen160/go-random"
)

const (
	amazonAffiliateTag  = "bsprice-22"
	rakutenAffiliateId  = "507d6316.932e0e43.507d6317.e71fdd26"
	affiliateSampleSize = 3
)

type AffiliateLink struct {
	Label string
	Url   string
}

// AmazonSearchLinks builds the keyword-driven storefront links shown
// under the Amazon side panel.
func AmazonSearchLinks(keyword string) []AffiliateLink {
	queries := []struct {
		label string
		query string
	}{
		{fmt.Sprintf("「%s」を検索", keyword), "バトルスピリッツ " + keyword},
		{"ブースターパック", "バトルスピリッツ ブースターパック"},
		{"スリーブ", "バトルスピリッツ スリーブ"},
		{"デッキケース", "トレカ デッキケース"},
	}

	links := make([]AffiliateLink, 0, len(queries))
	for _, q := range queries {
		links = append(links, AffiliateLink{
			Label: q.label,
			Url: fmt.Sprintf(
				"https://www.amazon.co.jp/s?k=%s&tag=%s",
				url.QueryEscape(q.query), amazonAffiliateTag,
			),
		})
	}
	return links
}

func RakutenSearchLinks(keyword string) []AffiliateLink {
	queries := []struct {
		label string
		query string
	}{
		{fmt.Sprintf("「%s」を検索", keyword), "バトルスピリッツ " + keyword},
		{"ブースターパック", "バトルスピリッツ ブースターパック"},
		{"スリーブ", "バトルスピリッツ スリーブ"},
	}

	links := make([]AffiliateLink, 0, len(queries))
	for _, q := range queries {
		target := "https://search.rakuten.co.jp/search/mall/" + url.QueryEscape(q.query) + "/"
		links = append(links, AffiliateLink{
			Label: q.label,
			Url: fmt.Sprintf(
				"https://hb.afl.rakuten.co.jp/hgc/%s/?pc=%s",
				rakutenAffiliateId, url.QueryEscape(target),
			),
		})
	}
	return links
}

// sampleAffiliateProducts picks up to affiliateSampleSize products at
// random so repeat searches don't always pitch the same items.
func sampleAffiliateProducts(products []api.AffiliateProduct) []api.AffiliateProduct {
	if len(products) <= affiliateSampleSize {
		return products
	}
	sampled := append([]api.AffiliateProduct(nil), products...)
	for i := 0; i < affiliateSampleSize; i++ {
		j, err := random.IntRange(i, len(sampled))
		if err != nil {
			// entropy failure just means no shuffle
			break
		}
		sampled[i], sampled[j] = sampled[j], sampled[i]
	}
	return sampled[:affiliateSampleSize]
}
