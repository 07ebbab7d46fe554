// Package view renders the HTML fragments the site injects into its
// pages: product cards, pagination controls, the user menu, the
// notification dropdown, and the home dashboard lists. Rendering is
// pure; fetching and state live in lib/search, lib/favorites, and
// lib/notify.
package view

import (
	"bytes"
	"html/template"
	"strconv"
	"strings"

	"bsprice-client/lib/api"
	"bsprice-client/lib/notify"
	"bsprice-client/lib/search"
	"bsprice-client/lib/session"
)

type Renderer struct {
	client *api.Client
	tmpl   *template.Template
}

func NewRenderer(client *api.Client) *Renderer {
	tmpl := template.New("fragments").Funcs(template.FuncMap{
		"comma": comma,
	})
	template.Must(tmpl.Parse(fragments))
	return &Renderer{client: client, tmpl: tmpl}
}

func (r *Renderer) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	err := r.tmpl.ExecuteTemplate(&buf, name, data)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// comma formats a count with thousands separators, e.g. 1234567 to
// "1,234,567".
func comma(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return sign + strings.Join(parts, ",")
}

// SiteClass maps a shop name to the CSS class coloring its badge.
func SiteClass(site string) string {
	switch {
	case strings.Contains(site, "カードラッシュ"):
		return "cardrush"
	case strings.Contains(site, "Tier"):
		return "tierone"
	case strings.Contains(site, "バトスキ"):
		return "batosuki"
	case strings.Contains(site, "フルアヘッド"):
		return "fullahead"
	case strings.Contains(site, "遊々亭"):
		return "yuyutei"
	case strings.Contains(site, "ホビーステーション"):
		return "hobbystation"
	case strings.Contains(site, "ドラスタ"):
		return "dorasuta"
	default:
		return ""
	}
}

// CardOptions carries the viewer-dependent bits of a product card: the
// favorite star only renders for logged-in users on products with a
// card id.
type CardOptions struct {
	LoggedIn    bool
	FavoriteIds []int64
}

type productCardData struct {
	Product      api.Product
	SiteClass    string
	StockClass   string
	ImageUrl     string
	RedirectUrl  string
	DetailUrl    string
	ShowFavorite bool
	IsFavorite   bool
}

func (r *Renderer) cardData(p api.Product, opts CardOptions) productCardData {
	data := productCardData{
		Product:     p,
		SiteClass:   SiteClass(p.Site),
		StockClass:  "out-of-stock",
		ImageUrl:    r.client.ImageProxyURL(p.ImageUrl),
		RedirectUrl: r.client.RedirectURL(p.Url, p.Site, p.Name),
	}
	if p.Stock > 0 {
		data.StockClass = "in-stock"
	}
	if p.CardId != 0 {
		data.DetailUrl = "/card/" + strconv.FormatInt(p.CardId, 10)
		if opts.LoggedIn {
			data.ShowFavorite = true
			for _, id := range opts.FavoriteIds {
				if id == p.CardId {
					data.IsFavorite = true
					break
				}
			}
		}
	}
	return data
}

func (r *Renderer) ProductCard(p api.Product, opts CardOptions) (string, error) {
	return r.render("productCard", r.cardData(p, opts))
}

// ProductGrid renders the result list, or the empty-state message when
// there is nothing to show.
func (r *Renderer) ProductGrid(items []api.Product, opts CardOptions) (string, error) {
	cards := make([]productCardData, 0, len(items))
	for _, p := range items {
		cards = append(cards, r.cardData(p, opts))
	}
	return r.render("productGrid", struct{ Cards []productCardData }{cards})
}

func (r *Renderer) Pagination(w search.Window) (string, error) {
	return r.render("pagination", struct {
		Window   search.Window
		PrevPage int
		NextPage int
	}{w, w.Current - 1, w.Current + 1})
}

type userMenuData struct {
	LoggedIn     bool
	User         session.User
	IsAdmin      bool
	BadgeText    string
	BadgeVisible bool
}

// UserMenu renders the header menu: a bare login link when logged out,
// otherwise the bell plus the account dropdown.
func (r *Renderer) UserMenu(user session.User, loggedIn bool, unreadCount int) (string, error) {
	data := userMenuData{
		LoggedIn: loggedIn,
		User:     user,
		IsAdmin:  loggedIn && user.Role == session.RoleAdmin,
	}
	data.BadgeText, data.BadgeVisible = notify.BadgeText(unreadCount)
	return r.render("userMenu", data)
}

type affiliateSectionData struct {
	Prefix   string
	Rel      string
	Products []struct{ Product api.AffiliateProduct }
	Links    []search.AffiliateLink
}

func affiliateData(prefix, rel string, products []api.AffiliateProduct, links []search.AffiliateLink) affiliateSectionData {
	data := affiliateSectionData{Prefix: prefix, Rel: rel, Links: links}
	for _, p := range products {
		data.Products = append(data.Products, struct{ Product api.AffiliateProduct }{p})
	}
	return data
}

func (r *Renderer) AmazonProducts(products []api.AffiliateProduct) (string, error) {
	return r.render("affiliateProducts", affiliateData("amazon", "noopener", products, nil))
}

func (r *Renderer) AmazonLinks(links []search.AffiliateLink) (string, error) {
	return r.render("affiliateLinks", affiliateData("amazon", "noopener", nil, links))
}

func (r *Renderer) RakutenProducts(products []api.AffiliateProduct) (string, error) {
	return r.render("affiliateProducts", affiliateData("rakuten", "noopener sponsored", products, nil))
}

func (r *Renderer) RakutenLinks(links []search.AffiliateLink) (string, error) {
	return r.render("affiliateLinks", affiliateData("rakuten", "noopener sponsored", nil, links))
}
