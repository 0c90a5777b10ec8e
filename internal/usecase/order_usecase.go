package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"vendas_xpto/internal/domain/entities"
	"vendas_xpto/internal/usecase/interfaces"
	"vendas_xpto/pkg"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrEmptyOrderItems    = errors.New("order must have at least one item")
	ErrInvalidOrderItem   = errors.New("invalid order item")
	ErrUnknownOrderStatus = errors.New("unknown order status")
)

const intakePushTimeout = 10 * time.Second

// InsufficientStockError reports the first line whose requested quantity
// exceeds the product's available stock. A missing product reports zero
// availability.
type InsufficientStockError struct {
	ProductID string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: available=%d requested=%d", e.ProductID, e.Available, e.Requested)
}

// InvalidTransitionError reports a status change outside the transition
// table, carrying the allowed next statuses so callers can correct the
// request.
type InvalidTransitionError struct {
	Current   entities.OrderStatus
	Requested entities.OrderStatus
	Allowed   []entities.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.Current, e.Requested)
}

// TerminalStateError reports a status change attempted on a delivered order.
type TerminalStateError struct {
	Current entities.OrderStatus
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("order in terminal status %s cannot change", e.Current)
}

// OrderLineInput is one requested line of an order creation or full update.
// Price is the caller-supplied snapshot, not the catalog's current price.
type OrderLineInput struct {
	ProductID string
	Quantity  int
	Price     float64
}

// CreateOrderInput carries the validated order creation request.
type CreateOrderInput struct {
	CustomerName string
	Email        string
	MobileNumber string
	Status       string
	OrderDate    time.Time
	Items        []OrderLineInput
}

// UpdateOrderInput carries a full order update: header fields plus a
// wholesale replacement of the line items.
type UpdateOrderInput struct {
	ID           string
	CustomerName string
	Email        string
	MobileNumber string
	Status       string
	OrderDate    time.Time
	Items        []OrderLineInput
}

// IOrderUseCase exposes the sales-order lifecycle.
//
// Create and UpdateStatus are the two atomicity boundaries: order state and
// stock quantities always change inside a single repository transaction.

type IOrderUseCase interface {
	Create(ctx context.Context, in CreateOrderInput) (entities.SalesOrder, error)
	GetByID(ctx context.Context, id string) (entities.SalesOrder, error)
	List(ctx context.Context, f interfaces.OrderFilter, p pkg.PaginationParams) ([]entities.SalesOrder, pkg.PaginationMeta, error)
	Update(ctx context.Context, in UpdateOrderInput) (entities.SalesOrder, error)
	UpdateStatus(ctx context.Context, id string, requestedStatus string) (entities.SalesOrder, error)
}

type OrderUseCase struct {
	repo        interfaces.IOrderRepository
	productRepo interfaces.IProductRepository
	intake      interfaces.IOrderIntakeGateway
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, productRepo interfaces.IProductRepository, intake interfaces.IOrderIntakeGateway) *OrderUseCase {
	return &OrderUseCase{repo: repo, productRepo: productRepo, intake: intake}
}

// Create runs the stock-aware order creation workflow:
//
//  1. validate every line against current stock, failing fast on the first
//     insufficient product with no mutation performed;
//  2. compute the total from the caller-supplied prices;
//  3. persist the order, its lines and every stock decrement in one
//     transaction;
//  4. after commit, push the order snapshot to the intake system without
//     awaiting the outcome.
func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (entities.SalesOrder, error) {
	log.Printf("[order][usecase] create start customer=%q items=%d", in.CustomerName, len(in.Items))
	status, err := resolveInitialStatus(in.Status)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if len(in.Items) == 0 {
		return entities.SalesOrder{}, ErrEmptyOrderItems
	}
	for _, item := range in.Items {
		if strings.TrimSpace(item.ProductID) == "" || item.Quantity <= 0 || item.Price < 0 {
			return entities.SalesOrder{}, ErrInvalidOrderItem
		}
	}

	// Stock sufficiency is checked for every line before any write.
	if err := u.checkStock(ctx, in.Items); err != nil {
		return entities.SalesOrder{}, err
	}

	total := 0.0
	for _, item := range in.Items {
		total += float64(item.Quantity) * item.Price
	}

	now := time.Now().UTC()
	order := entities.SalesOrder{
		ID:           uuid.NewString(),
		OrderNumber:  fmt.Sprintf("SO-%d", now.UnixMilli()),
		CustomerName: in.CustomerName,
		Email:        in.Email,
		MobileNumber: in.MobileNumber,
		Status:       status,
		OrderDate:    in.OrderDate,
		TotalAmount:  total,
		CreatedAt:    now,
		Items:        buildOrderLines(in.Items),
	}

	deltas := make([]entities.StockDelta, 0, len(in.Items))
	for _, item := range in.Items {
		deltas = append(deltas, entities.StockDelta{ProductID: item.ProductID, Quantity: -item.Quantity})
	}

	created, err := u.repo.CreateWithStockDeltas(ctx, order, deltas)
	if err != nil {
		if errors.Is(err, interfaces.ErrStockConditionFailed) {
			// A concurrent request consumed the stock between validation and
			// commit; re-read to report accurate numbers.
			if stockErr := u.checkStock(ctx, in.Items); stockErr != nil {
				return entities.SalesOrder{}, stockErr
			}
		}
		log.Printf("[order][usecase] create failed order_number=%s err=%v", order.OrderNumber, err)
		return entities.SalesOrder{}, err
	}
	log.Printf("[order][usecase] create success order_id=%s order_number=%s total=%.2f", created.ID, created.OrderNumber, created.TotalAmount)

	if u.intake != nil {
		go u.notifyIntake(created)
	}
	return created, nil
}

// checkStock validates requested quantities against current stock, summing
// lines that reference the same product so duplicates cannot each pass
// against the full quantity.
func (u *OrderUseCase) checkStock(ctx context.Context, items []OrderLineInput) error {
	requested := make(map[string]int, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		if _, seen := requested[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		requested[item.ProductID] += item.Quantity
	}

	for _, productID := range order {
		p, err := u.productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if p.ID == "" || p.StockQty < requested[productID] {
			return &InsufficientStockError{ProductID: productID, Available: p.StockQty, Requested: requested[productID]}
		}
	}
	return nil
}

// notifyIntake runs detached from the creating request: the order is already
// committed and responded, so delivery failures are logged and dropped.
func (u *OrderUseCase) notifyIntake(o entities.SalesOrder) {
	ctx, cancel := context.WithTimeout(context.Background(), intakePushTimeout)
	defer cancel()

	if err := u.intake.PushOrder(ctx, o); err != nil {
		log.Printf("[order][usecase] intake push failed order_id=%s order_number=%s err=%v", o.ID, o.OrderNumber, err)
		return
	}
	log.Printf("[order][usecase] intake push success order_id=%s order_number=%s", o.ID, o.OrderNumber)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.SalesOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SalesOrder{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if o.ID == "" {
		return entities.SalesOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) List(ctx context.Context, f interfaces.OrderFilter, p pkg.PaginationParams) ([]entities.SalesOrder, pkg.PaginationMeta, error) {
	orders, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, pkg.PaginationMeta{}, err
	}

	meta := pkg.NewPaginationMeta(len(orders), p)
	start := p.Skip
	if start > len(orders) {
		start = len(orders)
	}
	end := start + p.Limit
	if end > len(orders) {
		end = len(orders)
	}
	return orders[start:end], meta, nil
}

// Update replaces the order header fields and the whole line set. It mirrors
// the store semantics of a full update: order number, total amount, creation
// timestamp and stock quantities are left untouched.
func (u *OrderUseCase) Update(ctx context.Context, in UpdateOrderInput) (entities.SalesOrder, error) {
	in.ID = strings.TrimSpace(in.ID)
	if in.ID == "" {
		return entities.SalesOrder{}, ErrInvalidOrderID
	}
	status, err := resolveInitialStatus(in.Status)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if len(in.Items) == 0 {
		return entities.SalesOrder{}, ErrEmptyOrderItems
	}
	for _, item := range in.Items {
		if strings.TrimSpace(item.ProductID) == "" || item.Quantity <= 0 || item.Price < 0 {
			return entities.SalesOrder{}, ErrInvalidOrderItem
		}
	}

	updated, err := u.repo.Update(ctx, entities.SalesOrder{
		ID:           in.ID,
		CustomerName: in.CustomerName,
		Email:        in.Email,
		MobileNumber: in.MobileNumber,
		Status:       status,
		OrderDate:    in.OrderDate,
		Items:        buildOrderLines(in.Items),
	})
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if updated.ID == "" {
		return entities.SalesOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

// UpdateStatus is the status transition engine.
//
// Validation order: unknown status, order not found, terminal state
// (delivered), then the transition table. The table is the source of truth;
// the rank values on OrderStatus are a derived shortcut kept in agreement by
// tests. On success the status update and the compensating stock deltas
// commit in one transaction:
//
//   - any non-terminal status -> cancelled: stock is incremented back for
//     every line;
//   - pending -> confirmed: stock is decremented a second time for every
//     line (reproducing the upstream double-deduction, see DESIGN.md);
//   - confirmed -> shipped, shipped -> delivered: no stock change.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, requestedStatus string) (entities.SalesOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SalesOrder{}, ErrInvalidOrderID
	}
	requested, ok := entities.ParseOrderStatus(requestedStatus)
	if !ok {
		return entities.SalesOrder{}, fmt.Errorf("%w: %q", ErrUnknownOrderStatus, requestedStatus)
	}

	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if order.ID == "" {
		return entities.SalesOrder{}, ErrOrderNotFound
	}

	if order.Status == entities.OrderStatusDelivered {
		return entities.SalesOrder{}, &TerminalStateError{Current: order.Status}
	}
	if !transitionAllowed(order.Status, requested) {
		return entities.SalesOrder{}, &InvalidTransitionError{
			Current:   order.Status,
			Requested: requested,
			Allowed:   entities.AllowedNextStatuses(order.Status),
		}
	}

	deltas := stockDeltasForTransition(order, requested)
	log.Printf("[order][usecase] status update order_id=%s from=%s to=%s deltas=%d", id, order.Status, requested, len(deltas))

	updated, err := u.repo.UpdateStatusWithStockDeltas(ctx, id, requested, deltas)
	if err != nil {
		if errors.Is(err, interfaces.ErrStockConditionFailed) {
			if stockErr := u.checkOrderStock(ctx, order); stockErr != nil {
				return entities.SalesOrder{}, stockErr
			}
		}
		log.Printf("[order][usecase] status update failed order_id=%s to=%s err=%v", id, requested, err)
		return entities.SalesOrder{}, err
	}
	log.Printf("[order][usecase] status update success order_id=%s status=%s", id, updated.Status)
	return updated, nil
}

func (u *OrderUseCase) checkOrderStock(ctx context.Context, order entities.SalesOrder) error {
	items := make([]OrderLineInput, 0, len(order.Items))
	for _, line := range order.Items {
		items = append(items, OrderLineInput{ProductID: line.ProductID, Quantity: line.Quantity, Price: line.Price})
	}
	return u.checkStock(ctx, items)
}

func transitionAllowed(current, requested entities.OrderStatus) bool {
	for _, next := range entities.AllowedNextStatuses(current) {
		if next == requested {
			return true
		}
	}
	return false
}

func stockDeltasForTransition(order entities.SalesOrder, requested entities.OrderStatus) []entities.StockDelta {
	switch {
	case requested == entities.OrderStatusCancelled && order.Status != entities.OrderStatusCancelled:
		// Reverse the decrement applied at creation.
		deltas := make([]entities.StockDelta, 0, len(order.Items))
		for _, line := range order.Items {
			deltas = append(deltas, entities.StockDelta{ProductID: line.ProductID, Quantity: line.Quantity})
		}
		return deltas
	case requested == entities.OrderStatusConfirmed && order.Status == entities.OrderStatusPending:
		// Stock is committed again at confirmation, on top of the decrement
		// already applied at creation. Kept as the upstream system behaves.
		deltas := make([]entities.StockDelta, 0, len(order.Items))
		for _, line := range order.Items {
			deltas = append(deltas, entities.StockDelta{ProductID: line.ProductID, Quantity: -line.Quantity})
		}
		return deltas
	default:
		return nil
	}
}

func resolveInitialStatus(raw string) (entities.OrderStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return entities.OrderStatusPending, nil
	}
	status, ok := entities.ParseOrderStatus(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOrderStatus, raw)
	}
	return status, nil
}

func buildOrderLines(items []OrderLineInput) []entities.OrderLine {
	lines := make([]entities.OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, entities.OrderLine{
			ID:        uuid.NewString(),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return lines
}
