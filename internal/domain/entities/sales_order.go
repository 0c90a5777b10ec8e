package entities

import "time"

// OrderStatus represents the lifecycle of a sales order.
//
// Domain notes:
//   - The flow is a fixed linear sequence pending -> confirmed -> shipped ->
//     delivered, with cancelled reachable sideways from any non-terminal state.
//   - delivered and cancelled are absorbing: no further transition leaves them.
//   - statusRank is a derived shortcut for the "no backward motion" check and
//     must agree with allowedNextStatuses, which is the source of truth.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// cancelledRank sits above every linear rank so that a cancellation never
// counts as backward motion.
const cancelledRank = 99

var statusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusConfirmed: 1,
	OrderStatusShipped:   2,
	OrderStatusDelivered: 3,
	OrderStatusCancelled: cancelledRank,
}

var allowedNextStatuses = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// ParseOrderStatus validates a raw status string from the API boundary.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(s)
	_, ok := statusRank[st]
	return st, ok
}

// Rank returns the position of the status in the linear flow.
func (s OrderStatus) Rank() int {
	return statusRank[s]
}

// AllowedNextStatuses returns the set of statuses an order in the given
// status may move to. The returned slice is a copy; callers may keep it.
func AllowedNextStatuses(current OrderStatus) []OrderStatus {
	next := allowedNextStatuses[current]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}

// OrderStatuses lists every recognized status, in rank order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// SalesOrder is the order aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - order lines are embedded in the order item (composition: lines cannot
//     outlive the order, and a full update replaces them wholesale).
//
// TotalAmount equals sum(line.Quantity * line.Price) at creation time, using
// the caller-supplied prices (snapshot semantic).

type SalesOrder struct {
	ID           string      `json:"id"`
	OrderNumber  string      `json:"orderNumber"`
	CustomerName string      `json:"customerName"`
	Email        string      `json:"email"`
	MobileNumber string      `json:"mobileNumber"`
	Status       OrderStatus `json:"status"`
	OrderDate    time.Time   `json:"orderDate"`
	TotalAmount  float64     `json:"totalAmount"`
	CreatedAt    time.Time   `json:"createdAt"`
	Items        []OrderLine `json:"orderItems"`
}

// OrderLine is one product/quantity/price entry within an order.
//
// Price is an immutable snapshot captured at order time; it does not track
// later catalog price changes. Product is hydrated on reads for response
// detail and is never persisted with the line.

type OrderLine struct {
	ID        string   `json:"id"`
	ProductID string   `json:"productId"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Product   *Product `json:"product,omitempty"`
}

// StockDelta is a signed adjustment to a product's stock quantity applied as
// a side effect of an order-lifecycle event. Negative quantities decrement.

type StockDelta struct {
	ProductID string
	Quantity  int
}
