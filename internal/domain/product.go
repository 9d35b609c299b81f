package domain

import "github.com/shopspring/decimal"

// Product struct - Catalog entry as served by the backend
type Product struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	Category     string          `json:"category"`
	IsNewRelease bool            `json:"is_new_release"`
	IsTrending   bool            `json:"is_trending"`
	Rating       string          `json:"rating"`
	Description  string          `json:"description"`
	Detail       string          `json:"detail"`
	EcoPoint     decimal.Decimal `json:"eco_point"`
	ImgURL       string          `json:"img_url"`
}

// ProductQuery filters a product listing. Nil fields are not applied.
type ProductQuery struct {
	Page         *int
	Limit        *int
	Category     *string
	IsNewRelease *bool
	IsTrending   *bool
}

// Matches reports whether the product passes every filter set on the query
func (q ProductQuery) Matches(p Product) bool {
	if q.Category != nil && p.Category != *q.Category {
		return false
	}
	if q.IsNewRelease != nil && p.IsNewRelease != *q.IsNewRelease {
		return false
	}
	if q.IsTrending != nil && p.IsTrending != *q.IsTrending {
		return false
	}
	return true
}
