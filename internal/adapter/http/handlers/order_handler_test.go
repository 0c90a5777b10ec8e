package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vendas_xpto/internal/adapter/http/handlers/mocks"
	"vendas_xpto/internal/domain/entities"
	"vendas_xpto/internal/usecase"
	"vendas_xpto/internal/usecase/interfaces"
	"vendas_xpto/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const testOrderID = "7b8e9a2c-5d41-4f6a-9c3b-2e1d0f8a7b6c"

func orderPayload() string {
	return `{
		"customerName": "Maria Souza",
		"email": "maria@example.com",
		"mobileNumber": "+5511999990000",
		"orderDate": "2026-08-01",
		"orderItems": [{"productId": "p-1", "quantity": 2, "price": 10.5}]
	}`
}

func TestOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid order date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"customerName":"Maria","orderDate":"01/08/2026","orderItems":[{"productId":"p-1","quantity":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("insufficient stock carries details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.SalesOrder{}, &usecase.InsufficientStockError{ProductID: "p-1", Available: 1, Requested: 2})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(orderPayload()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body.Code != "INSUFFICIENT_STOCK" {
			t.Fatalf("expected INSUFFICIENT_STOCK, got %s", body.Code)
		}
		if body.Details["productId"] != "p-1" || body.Details["available"] != float64(1) || body.Details["requested"] != float64(2) {
			t.Fatalf("unexpected details: %+v", body.Details)
		}
	})

	t.Run("unknown status lists the valid set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.SalesOrder{}, usecase.ErrUnknownOrderStatus)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(orderPayload()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body.Code != "UNKNOWN_STATUS" {
			t.Fatalf("expected UNKNOWN_STATUS, got %s", body.Code)
		}
		allowed, ok := body.Details["allowed"].([]any)
		if !ok || len(allowed) != len(entities.OrderStatuses()) {
			t.Fatalf("unexpected allowed set: %+v", body.Details)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateOrderInput) (entities.SalesOrder, error) {
				if in.CustomerName != "Maria Souza" || len(in.Items) != 1 || in.Items[0].Quantity != 2 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.SalesOrder{
					ID:          testOrderID,
					OrderNumber: "SO-1754006400000",
					Status:      entities.OrderStatusPending,
					TotalAmount: 21.0,
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(orderPayload()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["orderNumber"] != "SO-1754006400000" || body["totalAmount"] != float64(21) {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid date filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?orderDateFrom=notadate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("clamps pagination and forwards filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders", h.List)

		uc.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, f interfaces.OrderFilter, p pkg.PaginationParams) ([]entities.SalesOrder, pkg.PaginationMeta, error) {
				if p.Limit != 50 || p.Page != 1 {
					t.Fatalf("expected clamped pagination, got %+v", p)
				}
				if f.Name != "maria" || f.Status != entities.OrderStatusPending {
					t.Fatalf("unexpected filter: %+v", f)
				}
				if f.OrderDateFrom == nil || f.OrderDateTo == nil {
					t.Fatalf("expected date bounds, got %+v", f)
				}
				if !f.OrderDateTo.After(*f.OrderDateFrom) {
					t.Fatalf("upper bound must be inclusive end of day: %+v", f)
				}
				return []entities.SalesOrder{{ID: testOrderID}}, pkg.NewPaginationMeta(1, p), nil
			},
		)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?name=maria&status=pending&orderDateFrom=2026-08-01&orderDateTo=2026-08-01&page=0&limit=1000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if _, ok := body["results"]; !ok {
			t.Fatalf("expected results envelope, got %+v", body)
		}
		if _, ok := body["pagination"]; !ok {
			t.Fatalf("expected pagination envelope, got %+v", body)
		}
	})
}

func TestOrderHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid uuid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/not-a-uuid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), testOrderID).Return(entities.SalesOrder{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/"+testOrderID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), testOrderID).
			Return(entities.SalesOrder{ID: testOrderID, Status: entities.OrderStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/"+testOrderID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing status field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/"+testOrderID+"/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid transition carries allowed set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), testOrderID, "shipped").
			Return(entities.SalesOrder{}, &usecase.InvalidTransitionError{
				Current:   entities.OrderStatusPending,
				Requested: entities.OrderStatusShipped,
				Allowed:   []entities.OrderStatus{entities.OrderStatusConfirmed, entities.OrderStatusCancelled},
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/"+testOrderID+"/status", bytes.NewBufferString(`{"status":"shipped"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body.Code != "INVALID_TRANSITION" {
			t.Fatalf("expected INVALID_TRANSITION, got %s", body.Code)
		}
		if body.Details["current"] != "pending" || body.Details["requested"] != "shipped" {
			t.Fatalf("unexpected details: %+v", body.Details)
		}
		allowed, ok := body.Details["allowed"].([]any)
		if !ok || len(allowed) != 2 || allowed[0] != "confirmed" || allowed[1] != "cancelled" {
			t.Fatalf("unexpected allowed set: %+v", body.Details)
		}
	})

	t.Run("terminal state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), testOrderID, "cancelled").
			Return(entities.SalesOrder{}, &usecase.TerminalStateError{Current: entities.OrderStatusDelivered})

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/"+testOrderID+"/status", bytes.NewBufferString(`{"status":"cancelled"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body.Code != "TERMINAL_STATE" || body.Details["currentStatus"] != "delivered" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), testOrderID, "confirmed").
			Return(entities.SalesOrder{ID: testOrderID, Status: entities.OrderStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/"+testOrderID+"/status", bytes.NewBufferString(`{"status":"confirmed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["status"] != "confirmed" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestOrderHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid uuid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:id", h.Update)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/123", bytes.NewBufferString(orderPayload()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:id", h.Update)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.UpdateOrderInput) (entities.SalesOrder, error) {
				if in.ID != testOrderID || len(in.Items) != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.SalesOrder{ID: testOrderID, CustomerName: in.CustomerName}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/"+testOrderID, bytes.NewBufferString(orderPayload()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:id", h.Update)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.SalesOrder{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/"+testOrderID, bytes.NewBufferString(orderPayload()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
