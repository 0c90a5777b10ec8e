package interfaces

import (
	"context"
	"errors"
	"time"

	"vendas_xpto/internal/domain/entities"
)

// ErrStockConditionFailed reports that a transactional write was cancelled
// because a conditional stock check failed at commit time (a concurrent
// request consumed the stock between validation and commit).
var ErrStockConditionFailed = errors.New("stock condition failed")

// OrderFilter narrows order listings. Zero values mean "no filter".
// Name, Email and MobileNumber match as case-insensitive substrings; Status
// matches exactly; the date bounds are inclusive.
type OrderFilter struct {
	Name          string
	Email         string
	MobileNumber  string
	Status        entities.OrderStatus
	OrderDateFrom *time.Time
	OrderDateTo   *time.Time
}

// IOrderRepository abstracts DynamoDB persistence for SalesOrder.
//
// The two *WithStockDeltas operations are the atomicity boundaries of the
// order lifecycle: the order write and every stock adjustment commit in a
// single TransactWriteItems call, or none do. Each decrement carries a
// stock_qty >= quantity condition, which is the storage-layer serialization
// guarantee concurrent requests rely on.
//
// Lookup misses return a zero-value entity with a nil error. Reads hydrate
// line items with their product detail.

type IOrderRepository interface {
	CreateWithStockDeltas(ctx context.Context, o entities.SalesOrder, deltas []entities.StockDelta) (entities.SalesOrder, error)
	GetByID(ctx context.Context, id string) (entities.SalesOrder, error)
	List(ctx context.Context, f OrderFilter) ([]entities.SalesOrder, error)
	Update(ctx context.Context, o entities.SalesOrder) (entities.SalesOrder, error)
	UpdateStatusWithStockDeltas(ctx context.Context, id string, status entities.OrderStatus, deltas []entities.StockDelta) (entities.SalesOrder, error)
}
