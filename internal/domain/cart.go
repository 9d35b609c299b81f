package domain

import "github.com/shopspring/decimal"

// LineItem represents one product entry in the local cart
type LineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
	ImageURL  string          `json:"img_url"`
	Quantity  int             `json:"quantity"`
}

// NewLineItem builds a line item with quantity 1 from a catalog product
func NewLineItem(p Product) LineItem {
	return LineItem{
		ProductID: p.ProductID,
		Name:      p.ProductName,
		Price:     p.Price,
		Category:  p.Category,
		ImageURL:  p.ImgURL,
		Quantity:  1,
	}
}

// Subtotal returns price * quantity
func (i LineItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the ordered list of line items held by one visitor.
// At most one item per ProductID; order is insertion order.
type Cart []LineItem

// Find returns the index of the item for productID, or -1
func (c Cart) Find(productID string) int {
	for i := range c {
		if c[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Total returns the sum of price * quantity over all items
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c {
		total = total.Add(item.Subtotal())
	}
	return total
}

// TotalItems returns the sum of quantities
func (c Cart) TotalItems() int {
	n := 0
	for _, item := range c {
		n += item.Quantity
	}
	return n
}

// Clone returns a copy that shares no backing array with c
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
