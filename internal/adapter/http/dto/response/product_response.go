package response

import (
	"time"

	"vendas_xpto/internal/domain/entities"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SKU         string    `json:"sku,omitempty"`
	Price       float64   `json:"price"`
	StockQty    int       `json:"stockQty"`
	Status      string    `json:"status"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Price:       p.Price,
		StockQty:    p.StockQty,
		Status:      string(p.Status),
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
