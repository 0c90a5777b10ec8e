package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	request "vendas_xpto/internal/adapter/http/dto/request"
	response "vendas_xpto/internal/adapter/http/dto/response"
	"vendas_xpto/internal/domain/entities"
	"vendas_xpto/internal/usecase"
	"vendas_xpto/internal/usecase/interfaces"
	"vendas_xpto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidOrderID      = pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order ID", http.StatusBadRequest)
	errInvalidDateFilter   = pkg.NewDomainErrorSimple("INVALID_DATE_FILTER", "Invalid order date filter", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for the sales-order lifecycle.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	orderDate, err := payload.ResolveOrderDate()
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateOrderInput{
		CustomerName: payload.CustomerName,
		Email:        payload.Email,
		MobileNumber: payload.MobileNumber,
		Status:       payload.Status,
		OrderDate:    orderDate,
		Items:        toLineInputs(payload.OrderItems),
	})
	if err != nil {
		log.Printf("[order][handler] create failed err=%v", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(created))
}

func (h *OrderHandler) List(c *gin.Context) {
	filter := interfaces.OrderFilter{
		Name:         c.Query("name"),
		Email:        c.Query("email"),
		MobileNumber: c.Query("mobileNumber"),
		Status:       entities.OrderStatus(c.Query("status")),
	}

	if raw := strings.TrimSpace(c.Query("orderDateFrom")); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(errInvalidDateFilter.HTTPStatus, errInvalidDateFilter.ToHTTPError())
			return
		}
		filter.OrderDateFrom = &t
	}
	if raw := strings.TrimSpace(c.Query("orderDateTo")); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(errInvalidDateFilter.HTTPStatus, errInvalidDateFilter.ToHTTPError())
			return
		}
		// Inclusive upper bound: extend to the end of the day.
		end := t.Add(24*time.Hour - time.Nanosecond)
		filter.OrderDateTo = &end
	}

	params := pkg.NewPaginationParams(c.Query("page"), c.Query("limit"))
	orders, meta, err := h.usecase.List(c.Request.Context(), filter, params)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders, meta))
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(errInvalidOrderID.HTTPStatus, errInvalidOrderID.ToHTTPError())
		return
	}

	o, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// Update performs a full order update: header fields plus wholesale line
// replacement. Stock and total amount are not touched.
func (h *OrderHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(errInvalidOrderID.HTTPStatus, errInvalidOrderID.ToHTTPError())
		return
	}

	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	orderDate, err := payload.ResolveOrderDate()
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), usecase.UpdateOrderInput{
		ID:           id,
		CustomerName: payload.CustomerName,
		Email:        payload.Email,
		MobileNumber: payload.MobileNumber,
		Status:       payload.Status,
		OrderDate:    orderDate,
		Items:        toLineInputs(payload.OrderItems),
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// UpdateStatus runs the status transition engine for one order.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(errInvalidOrderID.HTTPStatus, errInvalidOrderID.ToHTTPError())
		return
	}

	var payload request.OrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), id, payload.Status)
	if err != nil {
		log.Printf("[order][handler] status update failed order_id=%s requested=%s err=%v", id, payload.Status, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(updated))
}

func toLineInputs(items []request.OrderItemRequest) []usecase.OrderLineInput {
	out := make([]usecase.OrderLineInput, 0, len(items))
	for _, item := range items {
		out = append(out, usecase.OrderLineInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return out
}

func mapOrderError(err error) *pkg.AppError {
	var stockErr *usecase.InsufficientStockError
	var transitionErr *usecase.InvalidTransitionError
	var terminalErr *usecase.TerminalStateError

	switch {
	case errors.As(err, &stockErr):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Insufficient stock for product", http.StatusBadRequest).
			WithDetails(map[string]any{
				"productId": stockErr.ProductID,
				"available": stockErr.Available,
				"requested": stockErr.Requested,
			})
	case errors.As(err, &terminalErr):
		return pkg.NewDomainErrorSimple("TERMINAL_STATE", "Delivered orders cannot be modified", http.StatusBadRequest).
			WithDetails(map[string]any{
				"currentStatus": string(terminalErr.Current),
			})
	case errors.As(err, &transitionErr):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Invalid status transition", http.StatusBadRequest).
			WithDetails(map[string]any{
				"current":   string(transitionErr.Current),
				"requested": string(transitionErr.Requested),
				"allowed":   statusStrings(transitionErr.Allowed),
			})
	case errors.Is(err, usecase.ErrUnknownOrderStatus):
		return pkg.NewDomainErrorSimple("UNKNOWN_STATUS", "Unknown order status", http.StatusBadRequest).
			WithDetails(map[string]any{
				"allowed": statusStrings(entities.OrderStatuses()),
			})
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrEmptyOrderItems),
		errors.Is(err, usecase.ErrInvalidOrderItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func statusStrings(statuses []entities.OrderStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
