package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"vendas_xpto/internal/domain/entities"
	"vendas_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type productItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	SKU         string `dynamodbav:"sku,omitempty"`
	Price       string `dynamodbav:"price"`
	StockQty    int    `dynamodbav:"stock_qty"`
	Status      string `dynamodbav:"status"`
	ImageURL    string `dynamodbav:"image_url,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// stock_qty is kept as a native number so that transactional stock deltas in
// the order repository can apply `stock_qty = stock_qty - :q` with a
// `stock_qty >= :q` condition.

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	it := toProductItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Product{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	products := make([]entities.Product, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it productItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			products = append(products, fromProductItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return products, nil
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #name = :name, #description = :description, #sku = :sku, #price = :price, #stock_qty = :stock_qty, #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":        &types.AttributeValueMemberS{Value: p.Name},
			":description": &types.AttributeValueMemberS{Value: p.Description},
			":sku":         &types.AttributeValueMemberS{Value: p.SKU},
			":price":       &types.AttributeValueMemberS{Value: floatToString(p.Price)},
			":stock_qty":   &types.AttributeValueMemberN{Value: strconv.Itoa(p.StockQty)},
			":status":      &types.AttributeValueMemberS{Value: string(p.Status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#name":        "name",
			"#description": "description",
			"#sku":         "sku",
			"#price":       "price",
			"#stock_qty":   "stock_qty",
			"#status":      "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Product{}, nil
	}
	var it productItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ProductDynamoRepository) UpdateImageURL(ctx context.Context, id string, imageURL string) (entities.Product, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #image_url = :image_url"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":image_url": &types.AttributeValueMemberS{Value: imageURL},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#image_url": "image_url",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Product{}, nil
	}
	var it productItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Price:       floatToString(p.Price),
		StockQty:    p.StockQty,
		Status:      string(p.Status),
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProductItem(it productItem) entities.Product {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Product{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		SKU:         it.SKU,
		Price:       price,
		StockQty:    it.StockQty,
		Status:      entities.ProductStatus(it.Status),
		ImageURL:    it.ImageURL,
		CreatedAt:   createdAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
