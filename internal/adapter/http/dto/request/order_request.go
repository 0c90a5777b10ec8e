package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidOrderDate = errors.New("invalid order date")

// OrderItemRequest is one requested line of an order create/update payload.
// Price is the caller-supplied snapshot price, not the catalog price.
type OrderItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price"`
}

// OrderRequest is the payload for order creation and full update.
type OrderRequest struct {
	CustomerName string             `json:"customerName" binding:"required"`
	Email        string             `json:"email"`
	MobileNumber string             `json:"mobileNumber"`
	Status       string             `json:"status"`
	OrderDate    string             `json:"orderDate" binding:"required"`
	OrderItems   []OrderItemRequest `json:"orderItems" binding:"required"`
}

// ResolveOrderDate accepts a plain date (2006-01-02) or a full RFC 3339
// timestamp.
func (r OrderRequest) ResolveOrderDate() (time.Time, error) {
	raw := strings.TrimSpace(r.OrderDate)
	if raw == "" {
		return time.Time{}, ErrInvalidOrderDate
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidOrderDate
}

// OrderStatusRequest is the payload for the status transition endpoint.
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
