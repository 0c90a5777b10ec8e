package entities

import "time"

// ProductStatus is the catalog visibility flag for a product.
//
// The catalog keeps products around while orders reference them; deactivation
// is preferred over deletion for anything that ever sold.

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product is a catalog product persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Price is the current catalog price. Order lines snapshot their own
//     price at creation time and never follow later catalog changes.
//
// StockQty is the only concurrently-contended field: it is mutated solely
// through conditional updates inside TransactWriteItems envelopes, never
// read-then-written outside one.

type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	SKU         string        `json:"sku"`
	Price       float64       `json:"price"`
	StockQty    int           `json:"stockQty"`
	Status      ProductStatus `json:"status"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}
