package response

import (
	"time"

	"vendas_xpto/internal/domain/entities"
	"vendas_xpto/pkg"
)

type OrderLineResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	Price     float64          `json:"price"`
	Product   *ProductResponse `json:"product,omitempty"`
}

type OrderResponse struct {
	ID           string              `json:"id"`
	OrderNumber  string              `json:"orderNumber"`
	CustomerName string              `json:"customerName"`
	Email        string              `json:"email"`
	MobileNumber string              `json:"mobileNumber"`
	Status       string              `json:"status"`
	OrderDate    time.Time           `json:"orderDate"`
	TotalAmount  float64             `json:"totalAmount"`
	CreatedAt    time.Time           `json:"createdAt"`
	OrderItems   []OrderLineResponse `json:"orderItems"`
}

// OrderListResponse is the paginated listing envelope.
type OrderListResponse struct {
	Results    []OrderResponse    `json:"results"`
	Pagination pkg.PaginationMeta `json:"pagination"`
}

func FromOrder(o entities.SalesOrder) OrderResponse {
	items := make([]OrderLineResponse, 0, len(o.Items))
	for _, line := range o.Items {
		item := OrderLineResponse{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		}
		if line.Product != nil {
			p := FromProduct(*line.Product)
			item.Product = &p
		}
		items = append(items, item)
	}
	return OrderResponse{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		CustomerName: o.CustomerName,
		Email:        o.Email,
		MobileNumber: o.MobileNumber,
		Status:       string(o.Status),
		OrderDate:    o.OrderDate,
		TotalAmount:  o.TotalAmount,
		CreatedAt:    o.CreatedAt,
		OrderItems:   items,
	}
}

func FromOrders(orders []entities.SalesOrder, meta pkg.PaginationMeta) OrderListResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return OrderListResponse{Results: out, Pagination: meta}
}
