package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"vendas_xpto/internal/domain/entities"
	"vendas_xpto/internal/usecase/interfaces"
)

var (
	ErrMissingIntakeURL   = errors.New("missing ORDER_INTAKE_URL")
	ErrMissingIntakeToken = errors.New("missing ORDER_INTAKE_TOKEN")
)

const defaultRequestTimeout = 10 * time.Second

// intakePayload is the fixed snapshot shape the external order-intake system
// expects: the order header plus per-line product name/quantity/price.

type intakePayload struct {
	SalesOrder intakeOrder     `json:"salesOrder"`
	Products   []intakeProduct `json:"products"`
}

type intakeOrder struct {
	ID           string    `json:"id"`
	OrderNumber  string    `json:"orderNumber"`
	CustomerName string    `json:"customerName"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobileNumber"`
	Status       string    `json:"status"`
	OrderDate    time.Time `json:"orderDate"`
	TotalAmount  float64   `json:"totalAmount"`
}

type intakeProduct struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// OrderIntakeGateway posts order snapshots to the third-party intake
// endpoint with a bearer credential. Callers treat it as fire-and-forget;
// the gateway itself reports errors normally and leaves the swallowing to
// the usecase.

type OrderIntakeGateway struct {
	baseURL string
	token   string
	client  *http.Client
}

var _ interfaces.IOrderIntakeGateway = (*OrderIntakeGateway)(nil)

func NewOrderIntakeGateway(baseURL, token string) (*OrderIntakeGateway, error) {
	if baseURL == "" {
		log.Printf("[intake][gateway] missing ORDER_INTAKE_URL")
		return nil, ErrMissingIntakeURL
	}
	if token == "" {
		log.Printf("[intake][gateway] missing ORDER_INTAKE_TOKEN")
		return nil, ErrMissingIntakeToken
	}
	log.Printf("[intake][gateway] order intake client initialized url=%s", baseURL)

	return &OrderIntakeGateway{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: defaultRequestTimeout},
	}, nil
}

func (g *OrderIntakeGateway) PushOrder(ctx context.Context, o entities.SalesOrder) error {
	payload := intakePayload{
		SalesOrder: intakeOrder{
			ID:           o.ID,
			OrderNumber:  o.OrderNumber,
			CustomerName: o.CustomerName,
			Email:        o.Email,
			MobileNumber: o.MobileNumber,
			Status:       string(o.Status),
			OrderDate:    o.OrderDate,
			TotalAmount:  o.TotalAmount,
		},
		Products: make([]intakeProduct, 0, len(o.Items)),
	}
	for _, line := range o.Items {
		p := intakeProduct{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		}
		if line.Product != nil {
			p.ProductName = line.Product.Name
		}
		payload.Products = append(payload.Products, p)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.token)

	log.Printf("[intake][gateway] push start order_number=%s payload_len=%d", o.OrderNumber, len(body))
	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("order intake returned status %d", resp.StatusCode)
	}
	log.Printf("[intake][gateway] push success order_number=%s status=%d", o.OrderNumber, resp.StatusCode)
	return nil
}
