package api

import (
	"net/url"
	"strings"
)

// RedirectURL builds the click-through href used for every external
// product link: the backend logs the click and forwards the browser to
// the shop.
func (c *Client) RedirectURL(rawUrl, site, card string) string {
	params := url.Values{}
	params.Set("url", rawUrl)
	if site != "" {
		params.Set("site", site)
	}
	if card != "" {
		params.Set("card", card)
	}
	return c.baseUrl + "/api/redirect?" + params.Encode()
}

// ImageProxyURL routes images through the backend proxy, but only for
// hosts known to block hotlinking. Everything else loads directly.
func (c *Client) ImageProxyURL(imageUrl string) string {
	if imageUrl == "" {
		return ""
	}
	if !strings.Contains(imageUrl, "hobbystation-single.jp") {
		return imageUrl
	}
	params := url.Values{}
	params.Set("url", imageUrl)
	return c.baseUrl + "/api/image-proxy?" + params.Encode()
}
