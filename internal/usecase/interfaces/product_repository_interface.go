package interfaces

import (
	"context"
	"vendas_xpto/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
//
// Lookup misses return a zero-value entity with a nil error; callers check
// for an empty ID. Stock mutations tied to order lifecycle events do NOT go
// through this interface: they ride inside the order repository's
// transactional envelopes so that stock and order state change together.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
	UpdateImageURL(ctx context.Context, id string, imageURL string) (entities.Product, error)
}
