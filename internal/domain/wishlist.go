package domain

import "github.com/shopspring/decimal"

// WishlistItem is one saved product
type WishlistItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	ImgURL      string          `json:"img_url"`
}
