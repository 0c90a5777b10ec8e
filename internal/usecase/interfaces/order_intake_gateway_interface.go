package interfaces

import (
	"context"
	"vendas_xpto/internal/domain/entities"
)

// IOrderIntakeGateway abstracts the external order-intake system that
// receives a snapshot of every newly created order.
//
// Delivery is best-effort: the order usecase fires it after the creation
// transaction commits and logs failures without surfacing them. No retry,
// no dead-letter, no idempotency key on the wire.
type IOrderIntakeGateway interface {
	PushOrder(ctx context.Context, o entities.SalesOrder) error
}
