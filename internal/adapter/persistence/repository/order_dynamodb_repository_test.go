package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vendas_xpto/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestCoalesceDeltas(t *testing.T) {
	t.Run("merges duplicates preserving order", func(t *testing.T) {
		got := coalesceDeltas([]entities.StockDelta{
			{ProductID: "p-1", Quantity: -2},
			{ProductID: "p-2", Quantity: -1},
			{ProductID: "p-1", Quantity: -3},
		})
		want := []entities.StockDelta{
			{ProductID: "p-1", Quantity: -5},
			{ProductID: "p-2", Quantity: -1},
		}
		if len(got) != len(want) {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %+v, got %+v", want, got)
			}
		}
	})

	t.Run("drops deltas that net to zero", func(t *testing.T) {
		got := coalesceDeltas([]entities.StockDelta{
			{ProductID: "p-1", Quantity: -2},
			{ProductID: "p-2", Quantity: 4},
			{ProductID: "p-1", Quantity: 2},
		})
		if len(got) != 1 || got[0] != (entities.StockDelta{ProductID: "p-2", Quantity: 4}) {
			t.Fatalf("unexpected deltas: %+v", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := coalesceDeltas(nil); len(got) != 0 {
			t.Fatalf("unexpected deltas: %+v", got)
		}
	})
}

// transactRequest mirrors the wire shape of a TransactWriteItems call closely
// enough to count operations per item.
type transactRequest struct {
	TransactItems []struct {
		Put    json.RawMessage `json:"Put"`
		Update *struct {
			TableName                 string                       `json:"TableName"`
			Key                       map[string]map[string]string `json:"Key"`
			UpdateExpression          string                       `json:"UpdateExpression"`
			ExpressionAttributeValues map[string]map[string]string `json:"ExpressionAttributeValues"`
		} `json:"Update"`
	} `json:"TransactItems"`
}

func newStubDynamoClient(t *testing.T, captured *transactRequest) *dynamodb.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.Header.Get("X-Amz-Target"), ".TransactWriteItems") {
			if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
				t.Errorf("decode transact request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		w.Write([]byte("{}"))
	}))
	t.Cleanup(srv.Close)

	cfg := aws.Config{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("test", "test", ""),
	}
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(srv.URL)
		o.RetryMaxAttempts = 1
	})
	return client
}

func TestOrderDynamoRepository_CreateWithStockDeltas_DuplicateProductLines(t *testing.T) {
	var captured transactRequest
	repo := NewOrderDynamoRepository(newStubDynamoClient(t, &captured))

	order := entities.SalesOrder{
		ID:     "o-1",
		Status: entities.OrderStatusPending,
		Items: []entities.OrderLine{
			{ID: "l-1", ProductID: "p-1", Quantity: 2, Price: 10},
			{ID: "l-2", ProductID: "p-1", Quantity: 3, Price: 10},
		},
	}
	deltas := []entities.StockDelta{
		{ProductID: "p-1", Quantity: -2},
		{ProductID: "p-1", Quantity: -3},
	}

	if _, err := repo.CreateWithStockDeltas(context.Background(), order, deltas); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One Put for the order, one Update for the product: a transaction may
	// not touch the same item twice.
	if len(captured.TransactItems) != 2 {
		t.Fatalf("expected 2 transact items, got %d", len(captured.TransactItems))
	}
	update := captured.TransactItems[1].Update
	if update == nil {
		t.Fatalf("expected a stock update, got %+v", captured.TransactItems[1])
	}
	if update.Key["id"]["S"] != "p-1" {
		t.Fatalf("unexpected update key: %+v", update.Key)
	}
	if !strings.Contains(update.UpdateExpression, "- :q") {
		t.Fatalf("expected a decrement, got %q", update.UpdateExpression)
	}
	if update.ExpressionAttributeValues[":q"]["N"] != "5" {
		t.Fatalf("expected summed quantity 5, got %+v", update.ExpressionAttributeValues)
	}
}

func TestOrderDynamoRepository_UpdateStatusWithStockDeltas_DuplicateProductLines(t *testing.T) {
	var captured transactRequest
	repo := NewOrderDynamoRepository(newStubDynamoClient(t, &captured))

	// Cancelling an order whose line set carries the same product twice must
	// restore the stock in a single update.
	deltas := []entities.StockDelta{
		{ProductID: "p-1", Quantity: 2},
		{ProductID: "p-1", Quantity: 3},
	}

	if _, err := repo.UpdateStatusWithStockDeltas(context.Background(), "o-1", entities.OrderStatusCancelled, deltas); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(captured.TransactItems) != 2 {
		t.Fatalf("expected 2 transact items, got %d", len(captured.TransactItems))
	}
	update := captured.TransactItems[1].Update
	if update == nil {
		t.Fatalf("expected a stock update, got %+v", captured.TransactItems[1])
	}
	if update.Key["id"]["S"] != "p-1" {
		t.Fatalf("unexpected update key: %+v", update.Key)
	}
	if !strings.Contains(update.UpdateExpression, "+ :q") {
		t.Fatalf("expected an increment, got %q", update.UpdateExpression)
	}
	if update.ExpressionAttributeValues[":q"]["N"] != "5" {
		t.Fatalf("expected summed quantity 5, got %+v", update.ExpressionAttributeValues)
	}
}
