package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"vendas_xpto/internal/domain/entities"
	"vendas_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderLineItem struct {
	ID        string `dynamodbav:"id"`
	ProductID string `dynamodbav:"product_id"`
	Quantity  int    `dynamodbav:"quantity"`
	Price     string `dynamodbav:"price"`
}

type orderItem struct {
	ID           string          `dynamodbav:"id"`
	OrderNumber  string          `dynamodbav:"order_number"`
	CustomerName string          `dynamodbav:"customer_name"`
	Email        string          `dynamodbav:"email"`
	MobileNumber string          `dynamodbav:"mobile_number"`
	Status       string          `dynamodbav:"status"`
	OrderDate    string          `dynamodbav:"order_date"`
	TotalAmount  string          `dynamodbav:"total_amount"`
	CreatedAt    string          `dynamodbav:"created_at"`
	Items        []orderLineItem `dynamodbav:"items"`
}

// OrderDynamoRepository persists SalesOrder aggregates in DynamoDB.
//
// Table requirements:
//   - orders: PK id (string), lines embedded as a list attribute
//   - products: PK id (string), stock_qty as a native number
//
// The *WithStockDeltas operations span both tables inside a single
// TransactWriteItems call: the order write and every stock adjustment commit
// together or not at all. Decrements carry a `stock_qty >= :q` condition, so
// concurrent decrements on the same product serialize on the item and a
// loser surfaces as ErrStockConditionFailed instead of driving stock
// negative.

type OrderDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	productsTable string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		productsTable: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *OrderDynamoRepository) CreateWithStockDeltas(ctx context.Context, o entities.SalesOrder, deltas []entities.StockDelta) (entities.SalesOrder, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.SalesOrder{}, err
	}

	deltas = coalesceDeltas(deltas)
	items := make([]types.TransactWriteItem, 0, 1+len(deltas))
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	for _, d := range deltas {
		items = append(items, r.stockDeltaItem(d))
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return entities.SalesOrder{}, mapTransactionError(err)
	}
	return r.hydrate(ctx, o)
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.SalesOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.SalesOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SalesOrder{}, err
	}
	return r.hydrate(ctx, fromOrderItem(it))
}

func (r *OrderDynamoRepository) List(ctx context.Context, f interfaces.OrderFilter) ([]entities.SalesOrder, error) {
	raw := make([]orderItem, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			raw = append(raw, it)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	orders := make([]entities.SalesOrder, 0, len(raw))
	for _, it := range raw {
		o := fromOrderItem(it)
		if !matchesFilter(o, f) {
			continue
		}
		o, err := r.hydrate(ctx, o)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.SalesOrder) (entities.SalesOrder, error) {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, line := range o.Items {
		lines = append(lines, toOrderLineItem(line))
	}
	linesAV, err := attributevalue.MarshalList(lines)
	if err != nil {
		return entities.SalesOrder{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: o.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #customer_name = :customer_name, #email = :email, #mobile_number = :mobile_number, #status = :status, #order_date = :order_date, #items = :items"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":customer_name": &types.AttributeValueMemberS{Value: o.CustomerName},
			":email":         &types.AttributeValueMemberS{Value: o.Email},
			":mobile_number": &types.AttributeValueMemberS{Value: o.MobileNumber},
			":status":        &types.AttributeValueMemberS{Value: string(o.Status)},
			":order_date":    &types.AttributeValueMemberS{Value: o.OrderDate.UTC().Format(time.RFC3339Nano)},
			":items":         &types.AttributeValueMemberL{Value: linesAV},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#customer_name": "customer_name",
			"#email":         "email",
			"#mobile_number": "mobile_number",
			"#status":        "status",
			"#order_date":    "order_date",
			"#items":         "items",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.SalesOrder{}, nil
		}
		return entities.SalesOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.SalesOrder{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.SalesOrder{}, err
	}
	return r.hydrate(ctx, fromOrderItem(it))
}

func (r *OrderDynamoRepository) UpdateStatusWithStockDeltas(ctx context.Context, id string, status entities.OrderStatus, deltas []entities.StockDelta) (entities.SalesOrder, error) {
	deltas = coalesceDeltas(deltas)
	items := make([]types.TransactWriteItem, 0, 1+len(deltas))
	items = append(items, types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression: aws.String("attribute_exists(#id)"),
			UpdateExpression:    aws.String("SET #status = :status"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
			ExpressionAttributeNames: map[string]string{
				"#id":     "id",
				"#status": "status",
			},
		},
	})
	for _, d := range deltas {
		items = append(items, r.stockDeltaItem(d))
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return entities.SalesOrder{}, mapTransactionError(err)
	}
	return r.GetByID(ctx, id)
}

// coalesceDeltas merges deltas per product, preserving first-occurrence
// order. TransactWriteItems forbids two operations on the same item, so an
// order carrying several lines for one product must adjust its stock in a
// single update. Deltas that net out to zero are dropped.
func coalesceDeltas(deltas []entities.StockDelta) []entities.StockDelta {
	totals := make(map[string]int, len(deltas))
	order := make([]string, 0, len(deltas))
	for _, d := range deltas {
		if _, seen := totals[d.ProductID]; !seen {
			order = append(order, d.ProductID)
		}
		totals[d.ProductID] += d.Quantity
	}

	out := make([]entities.StockDelta, 0, len(order))
	for _, id := range order {
		if totals[id] == 0 {
			continue
		}
		out = append(out, entities.StockDelta{ProductID: id, Quantity: totals[id]})
	}
	return out
}

// stockDeltaItem builds the transactional stock adjustment for one product.
// Decrements guard with stock_qty >= :q so the counter never goes negative.
func (r *OrderDynamoRepository) stockDeltaItem(d entities.StockDelta) types.TransactWriteItem {
	names := map[string]string{
		"#id":        "id",
		"#stock_qty": "stock_qty",
	}
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: d.ProductID},
	}

	if d.Quantity < 0 {
		qty := strconv.Itoa(-d.Quantity)
		return types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(r.productsTable),
				Key:                 key,
				ConditionExpression: aws.String("attribute_exists(#id) AND #stock_qty >= :q"),
				UpdateExpression:    aws.String("SET #stock_qty = #stock_qty - :q"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":q": &types.AttributeValueMemberN{Value: qty},
				},
				ExpressionAttributeNames: names,
			},
		}
	}
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(r.productsTable),
			Key:                 key,
			ConditionExpression: aws.String("attribute_exists(#id)"),
			UpdateExpression:    aws.String("SET #stock_qty = #stock_qty + :q"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":q": &types.AttributeValueMemberN{Value: strconv.Itoa(d.Quantity)},
			},
			ExpressionAttributeNames: names,
		},
	}
}

// hydrate loads the product referenced by each line for response detail.
func (r *OrderDynamoRepository) hydrate(ctx context.Context, o entities.SalesOrder) (entities.SalesOrder, error) {
	cache := make(map[string]*entities.Product, len(o.Items))
	for i, line := range o.Items {
		if p, ok := cache[line.ProductID]; ok {
			o.Items[i].Product = p
			continue
		}
		out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(r.productsTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: line.ProductID},
			},
		})
		if err != nil {
			return entities.SalesOrder{}, err
		}
		if len(out.Item) == 0 {
			cache[line.ProductID] = nil
			continue
		}
		var it productItem
		if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
			return entities.SalesOrder{}, err
		}
		p := fromProductItem(it)
		cache[line.ProductID] = &p
		o.Items[i].Product = &p
	}
	return o, nil
}

func matchesFilter(o entities.SalesOrder, f interfaces.OrderFilter) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(o.CustomerName), strings.ToLower(f.Name)) {
		return false
	}
	if f.Email != "" && !strings.Contains(strings.ToLower(o.Email), strings.ToLower(f.Email)) {
		return false
	}
	if f.MobileNumber != "" && !strings.Contains(o.MobileNumber, f.MobileNumber) {
		return false
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.OrderDateFrom != nil && o.OrderDate.Before(*f.OrderDateFrom) {
		return false
	}
	if f.OrderDateTo != nil && o.OrderDate.After(*f.OrderDateTo) {
		return false
	}
	return true
}

func mapTransactionError(err error) error {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
				return fmt.Errorf("%w: %s", interfaces.ErrStockConditionFailed, aws.ToString(reason.Message))
			}
		}
	}
	return err
}

func toOrderItem(o entities.SalesOrder) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, line := range o.Items {
		lines = append(lines, toOrderLineItem(line))
	}
	return orderItem{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		CustomerName: o.CustomerName,
		Email:        o.Email,
		MobileNumber: o.MobileNumber,
		Status:       string(o.Status),
		OrderDate:    o.OrderDate.UTC().Format(time.RFC3339Nano),
		TotalAmount:  floatToString(o.TotalAmount),
		CreatedAt:    o.CreatedAt.UTC().Format(time.RFC3339Nano),
		Items:        lines,
	}
}

func toOrderLineItem(line entities.OrderLine) orderLineItem {
	return orderLineItem{
		ID:        line.ID,
		ProductID: line.ProductID,
		Quantity:  line.Quantity,
		Price:     floatToString(line.Price),
	}
}

func fromOrderItem(it orderItem) entities.SalesOrder {
	orderDate, _ := time.Parse(time.RFC3339Nano, it.OrderDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	total, _ := strconv.ParseFloat(it.TotalAmount, 64)

	lines := make([]entities.OrderLine, 0, len(it.Items))
	for _, line := range it.Items {
		price, _ := strconv.ParseFloat(line.Price, 64)
		lines = append(lines, entities.OrderLine{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     price,
		})
	}
	return entities.SalesOrder{
		ID:           it.ID,
		OrderNumber:  it.OrderNumber,
		CustomerName: it.CustomerName,
		Email:        it.Email,
		MobileNumber: it.MobileNumber,
		Status:       entities.OrderStatus(it.Status),
		OrderDate:    orderDate,
		TotalAmount:  total,
		CreatedAt:    createdAt,
		Items:        lines,
	}
}
