package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductCategory groups shop products for browsing.
type ProductCategory string

const (
	CategoryParts       ProductCategory = "parts"
	CategoryConsumables ProductCategory = "consumables"
	CategoryAccessories ProductCategory = "accessories"
	CategoryTooling     ProductCategory = "tooling"
)

// Product is a live catalog item. The order pipeline only reads products:
// cart resolution joins cart quantities against active products, and order
// items snapshot the product fields at checkout time.
type Product struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	SKU       string
	Category  ProductCategory
	Price     decimal.Decimal // Unit price in GBP; zero means "price on request".
	ShowPrice bool            // Per-product price visibility on top of the site-wide flag.
	InStock   bool
	IsActive  bool // Inactive products are silently dropped from carts.
	SortOrder int
	CreatedAt time.Time
}

// EffectivePrice returns the price used for cart views and order snapshots.
// A product hiding its price is treated as price-on-request: zero, which
// renders as "On request" and stays out of totals.
func (p *Product) EffectivePrice() decimal.Decimal {
	if !p.ShowPrice {
		return decimal.Zero
	}

	return p.Price
}
