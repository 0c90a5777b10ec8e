package request

import "vendas_xpto/internal/domain/entities"

// ProductRequest is the payload for product create/update endpoints.
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	SKU         string  `json:"sku"`
	Price       float64 `json:"price"`
	StockQty    int     `json:"stockQty"`
	Status      string  `json:"status"`
}

func (r ProductRequest) ToEntity() entities.Product {
	return entities.Product{
		Name:        r.Name,
		Description: r.Description,
		SKU:         r.SKU,
		Price:       r.Price,
		StockQty:    r.StockQty,
		Status:      entities.ProductStatus(r.Status),
	}
}
