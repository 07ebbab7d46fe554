package view

// fragments mirror the markup the site renders, one named template per
// injected region.
const fragments = `
{{define "productCard" -}}
<div class="product-card">
{{- if .ImageUrl -}}
<img src="{{.ImageUrl}}" alt="{{.Product.Name}}" class="product-image">
{{- else -}}
<div class="product-image-placeholder"></div>
{{- end -}}
<a href="{{.RedirectUrl}}" target="_blank" rel="noopener" class="site-badge {{.SiteClass}}">{{.Product.Site}}</a>
<div class="product-name">
{{- if .DetailUrl}}<a href="{{.DetailUrl}}">{{.Product.Name}}</a>{{else}}{{.Product.Name}}{{end -}}
</div>
<div class="product-price-stock">
<div class="product-price">{{.Product.PriceText}}</div>
<span class="product-stock {{.StockClass}}">{{.Product.StockText}}</span>
</div>
{{- if .ShowFavorite -}}
<button class="favorite-btn{{if .IsFavorite}} active{{end}}" data-card-id="{{.Product.CardId}}" title="{{if .IsFavorite}}お気に入りから削除{{else}}お気に入りに追加{{end}}">{{if .IsFavorite}}&#9733;{{else}}&#9734;{{end}}</button>
{{- end -}}
</div>
{{- end}}

{{define "productGrid" -}}
{{if not .Cards}}<p class="no-results">商品が見つかりませんでした</p>{{else}}{{range .Cards}}{{template "productCard" .}}{{end}}{{end}}
{{- end}}

{{define "pagination" -}}
{{if .Window.Visible -}}
{{if .Window.HasPrev}}<button class="pagination-btn" data-page="{{.PrevPage}}">前へ</button>{{else}}<button class="pagination-btn disabled" disabled>前へ</button>{{end -}}
{{if .Window.ShowFirst}}<button class="pagination-btn" data-page="1">1</button>{{end -}}
{{if .Window.LeadingEllipsis}}<span class="pagination-ellipsis">...</span>{{end -}}
{{range .Window.Pages -}}
{{if eq . $.Window.Current}}<button class="pagination-btn active">{{.}}</button>{{else}}<button class="pagination-btn" data-page="{{.}}">{{.}}</button>{{end -}}
{{end -}}
{{if .Window.TrailingEllipsis}}<span class="pagination-ellipsis">...</span>{{end -}}
{{if .Window.ShowLast}}<button class="pagination-btn" data-page="{{.Window.TotalPages}}">{{.Window.TotalPages}}</button>{{end -}}
{{if .Window.HasNext}}<button class="pagination-btn" data-page="{{.NextPage}}">次へ</button>{{else}}<button class="pagination-btn disabled" disabled>次へ</button>{{end -}}
{{end -}}
{{- end}}

{{define "userMenu" -}}
{{if not .LoggedIn -}}
<a href="/login" class="login-link">ログイン</a>
{{- else -}}
<div class="notification-bell" id="notification-bell">
<button class="bell-btn">
<span class="bell-icon">&#128276;</span>
<span class="notification-badge{{if not .BadgeVisible}} hidden{{end}}" id="notification-badge">{{.BadgeText}}</span>
</button>
</div>
<div class="user-menu-dropdown">
<button class="user-menu-btn">
<span class="user-icon">&#128100;</span>
<span class="user-name">{{.User.Username}}</span>
{{- if .IsAdmin}}<span class="admin-badge">Admin</span>{{end -}}
</button>
<div class="user-menu-content">
<a href="/favorites" class="menu-item">&#9734; お気に入り</a>
{{- if .IsAdmin}}<a href="/admin" class="menu-item">&#9881; 管理画面</a>{{end -}}
<button class="menu-item logout-btn">&#8594; ログアウト</button>
</div>
</div>
{{- end}}
{{- end}}

{{define "notificationList" -}}
{{if not .Items -}}
<div class="notification-empty">通知はありません</div>
{{- else -}}
{{range .Items -}}
<div class="notification-item {{.StateClass}}" data-id="{{.Notification.Id}}"{{if .Notification.CardId}} data-card-id="{{.Notification.CardId}}"{{end}}>
<div class="notification-title">{{.Notification.Title}}</div>
<div class="notification-message">{{.Notification.Message}}</div>
<div class="notification-time">{{.TimeText}}</div>
</div>
{{end -}}
{{- end}}
{{- end}}

{{define "homeStats" -}}
<span>登録カード: <strong>{{comma .Stats.TotalCards}}</strong>件</span>
<span>価格データ: <strong>{{comma .Stats.TotalPrices}}</strong>件</span>
{{- if .LastUpdated}}<span>最終更新: <strong>{{.LastUpdated}}</strong></span>{{end -}}
{{- end}}

{{define "featuredKeywords" -}}
<div class="featured-keywords-label">人気のキーワード:</div>
<div class="featured-keywords-list">
{{- range .Keywords -}}
<a href="/search?q={{.}}" class="featured-keyword-tag">{{.}}</a>
{{- end -}}
</div>
{{- end}}

{{define "homeList" -}}
{{if not .Items -}}
<div class="home-empty">データがありません</div>
{{- else -}}
{{range .Items -}}
<a href="/search?q={{.Query}}" class="home-item">
<span class="home-item-name">{{.Name}}</span>
{{- if .Price}}<span class="home-item-price">{{.Price}}</span>{{end -}}
{{- if .Diff}}<span class="home-item-diff {{.DiffClass}}">{{.Diff}}</span>{{end -}}
{{- if .Shop}}<span class="home-item-shop">{{.Shop}}</span>{{end -}}
{{- if .Clicks}}<span class="home-item-clicks">{{.Clicks}}</span>{{end -}}
</a>
{{end -}}
{{- end}}
{{- end}}

{{define "batchNotification" -}}
<div class="batch-title">巡回完了</div>
<div class="batch-shops">
{{- range .Shops -}}
<div class="batch-shop-item">
<div class="batch-shop-name">{{.ShopName}}</div>
<div class="batch-shop-stats">
<span>{{comma .CardsTotal}}件取得</span>
<span>{{comma .CardsNew}}件新規</span>
<span>{{.FinishedText}}</span>
</div>
</div>
{{- end -}}
</div>
{{- end}}

{{define "affiliateProducts" -}}
{{range .Products -}}
<a href="{{.Product.AffiliateUrl}}" target="_blank" rel="{{$.Rel}}" class="{{$.Prefix}}-product">
<img src="{{.Product.ImageUrl}}" alt="{{.Product.Name}}" class="{{$.Prefix}}-product-img">
<div class="{{$.Prefix}}-product-info">
<div class="{{$.Prefix}}-product-name">{{.Product.Name}}</div>
<div class="{{$.Prefix}}-product-price">{{.Product.PriceText}} <span class="{{$.Prefix}}-product-note">(税込)</span></div>
</div>
</a>
{{end -}}
{{- end}}

{{define "affiliateLinks" -}}
{{range .Links -}}
<a href="{{.Url}}" target="_blank" rel="{{$.Rel}}" class="{{$.Prefix}}-link">{{.Label}}</a>
{{end -}}
{{- end}}
`
