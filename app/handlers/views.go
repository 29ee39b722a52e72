package handlers

import (
	"time"

	"github.com/hstore/hstore-api/app/helpers"
	"github.com/hstore/hstore-api/app/models"
	"github.com/hstore/hstore-api/app/utils/format"
	"github.com/shopspring/decimal"
)

// View models: stored rows mapped to response payloads, with relative media
// paths resolved to absolute URLs and prices formatted for display.

type CategoryView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

type ProductView struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Company      string          `json:"company"`
	Price        decimal.Decimal `json:"price"`
	DisplayPrice string          `json:"display_price"`
	Description  string          `json:"description,omitempty"`
	Thumbnail    string          `json:"thumbnail"`
	Image1       string          `json:"image_1,omitempty"`
	Image2       string          `json:"image_2,omitempty"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	CategorySlug string          `json:"category_slug,omitempty"`
	IsFeatured   bool            `json:"is_featured"`
	IsBestseller bool            `json:"is_bestseller"`
	CreatedAt    time.Time       `json:"created_at"`
}

type SlideView struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	TitleSpan  string `json:"title_span"`
	ButtonText string `json:"button_text"`
	Link       string `json:"link"`
	Image      string `json:"image"`
	Order      int    `json:"order"`
}

type CompanyLogoView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Logo  string `json:"logo"`
	Order int    `json:"order"`
}

type ProductSummaryView struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Company      string          `json:"company"`
	Price        decimal.Decimal `json:"price"`
	DisplayPrice string          `json:"display_price"`
	Thumbnail    string          `json:"thumbnail"`
}

type CartItemView struct {
	ID        string             `json:"id"`
	Product   ProductSummaryView `json:"product"`
	Quantity  int                `json:"quantity"`
	LineTotal decimal.Decimal    `json:"line_total"`
	CreatedAt time.Time          `json:"created_at"`
}

type CartView struct {
	ID         string          `json:"id"`
	SessionID  string          `json:"session_id"`
	Items      []CartItemView  `json:"items"`
	ItemCount  int             `json:"item_count"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type PageView struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}

func NewCategoryView(baseURL string, c *models.Category) CategoryView {
	return CategoryView{
		ID:    c.ID,
		Name:  c.Name,
		Slug:  c.Slug,
		Image: helpers.ImageURL(baseURL, c.Image),
	}
}

func NewProductView(baseURL string, p *models.Product) ProductView {
	v := ProductView{
		ID:           p.ID,
		Name:         p.Name,
		Company:      p.Company,
		Price:        p.Price,
		DisplayPrice: format.Price(p.Price),
		Description:  p.Description,
		Thumbnail:    helpers.ImageURL(baseURL, p.Thumbnail),
		Image1:       helpers.ImageURL(baseURL, p.Image1),
		Image2:       helpers.ImageURL(baseURL, p.Image2),
		CategoryID:   p.CategoryID,
		IsFeatured:   p.IsFeatured,
		IsBestseller: p.IsBestseller,
		CreatedAt:    p.CreatedAt,
	}
	if p.Category != nil {
		v.CategoryName = p.Category.Name
		v.CategorySlug = p.Category.Slug
	}
	return v
}

func NewProductViews(baseURL string, products []models.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, NewProductView(baseURL, &products[i]))
	}
	return views
}

func NewSlideView(baseURL string, s *models.Slide) SlideView {
	return SlideView{
		ID:         s.ID,
		Title:      s.Title,
		Subtitle:   s.Subtitle,
		TitleSpan:  s.TitleSpan,
		ButtonText: s.ButtonText,
		Link:       s.Link,
		Image:      helpers.ImageURL(baseURL, s.Image),
		Order:      s.Position,
	}
}

func NewCompanyLogoView(baseURL string, l *models.CompanyLogo) CompanyLogoView {
	return CompanyLogoView{
		ID:    l.ID,
		Name:  l.Name,
		Logo:  helpers.ImageURL(baseURL, l.Logo),
		Order: l.Position,
	}
}

func NewCartView(baseURL string, cart *models.Cart) CartView {
	items := make([]CartItemView, 0, len(cart.CartItems))
	for i := range cart.CartItems {
		item := &cart.CartItems[i]

		var product ProductSummaryView
		if item.Product != nil {
			product = ProductSummaryView{
				ID:           item.Product.ID,
				Name:         item.Product.Name,
				Company:      item.Product.Company,
				Price:        item.Product.Price,
				DisplayPrice: format.Price(item.Product.Price),
				Thumbnail:    helpers.ImageURL(baseURL, item.Product.Thumbnail),
			}
		}

		items = append(items, CartItemView{
			ID:        item.ID,
			Product:   product,
			Quantity:  item.Qty,
			LineTotal: item.LineTotal(),
			CreatedAt: item.CreatedAt,
		})
	}

	return CartView{
		ID:         cart.ID,
		SessionID:  cart.SessionID,
		Items:      items,
		ItemCount:  cart.ItemCount(),
		TotalPrice: cart.TotalPrice(),
		CreatedAt:  cart.CreatedAt,
		UpdatedAt:  cart.UpdatedAt,
	}
}
