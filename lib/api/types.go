package api

// Product is a single shop listing as the backend reports it. The
// client never mutates these, it only filters and sorts copies for
// display.
type Product struct {
	Site      string `json:"site"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	PriceText string `json:"price_text"`
	Stock     int64  `json:"stock"`
	StockText string `json:"stock_text"`
	ImageUrl  string `json:"image_url,omitempty"`
	Url       string `json:"url"`
	CardId    int64  `json:"card_id,omitempty"`
}

type SearchResult struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	TotalCount int       `json:"total_count"`
}

type Favorite struct {
	Id        int64  `json:"id"`
	CardId    int64  `json:"card_id"`
	CardName  string `json:"card_name"`
	CreatedAt string `json:"created_at"`
}

type Notification struct {
	Id        int64  `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CardId    int64  `json:"card_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

type AffiliateProduct struct {
	Name         string `json:"name"`
	PriceText    string `json:"price_text"`
	ImageUrl     string `json:"image_url"`
	AffiliateUrl string `json:"affiliate_url"`
}

type HomeStats struct {
	TotalCards  int64  `json:"total_cards"`
	TotalPrices int64  `json:"total_prices"`
	LastUpdated string `json:"last_updated,omitempty"`
}

type FeaturedKeyword struct {
	Keyword string `json:"keyword"`
}

type PriceMove struct {
	CardName string `json:"card_name"`
	Diff     int64  `json:"diff"`
	ShopName string `json:"shop_name"`
}

type HotCard struct {
	CardName   string `json:"card_name"`
	ClickCount int64  `json:"click_count"`
}

type BatchLog struct {
	ShopName   string `json:"shop_name"`
	Status     string `json:"status"`
	CardsTotal int64  `json:"cards_total"`
	CardsNew   int64  `json:"cards_new"`
	FinishedAt string `json:"finished_at"`
}

type HomeData struct {
	Stats            HomeStats         `json:"stats"`
	FeaturedKeywords []FeaturedKeyword `json:"featured_keywords"`
	RecentlyUpdated  []Product         `json:"recently_updated"`
	PriceUp          []PriceMove       `json:"price_up"`
	PriceDown        []PriceMove       `json:"price_down"`
	HotCards         []HotCard         `json:"hot_cards"`
	BatchLogs        []BatchLog        `json:"batch_logs"`
}
