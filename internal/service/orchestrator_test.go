package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-backend/internal/entity"
	"marketplace-backend/internal/repository"
)

type fakeProductRepo struct {
	data map[uuid.UUID][]byte
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{data: map[uuid.UUID][]byte{}}
}

func (r *fakeProductRepo) Load(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	raw, ok := r.data[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	var product entity.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *fakeProductRepo) Save(_ context.Context, product *entity.Product) error {
	raw, err := json.Marshal(product)
	if err != nil {
		return err
	}
	r.data[product.ID] = raw
	return nil
}

func seedProduct(t *testing.T, svc *ProductService, stock int) *entity.Product {
	t.Helper()
	price, err := entity.NewMoney(decimal.NewFromInt(100), "USD")
	require.NoError(t, err)

	product, err := svc.CreateProduct(context.Background(), CreateProductCommand{
		VendorID:     uuid.New(),
		Name:         "Mechanical Keyboard",
		SKU:          "KB-100",
		Price:        price,
		InitialStock: stock,
		Weight:       decimal.Zero,
	})
	require.NoError(t, err)
	return product
}

func newOrchestratorFixture(t *testing.T) (*Orchestrator, *OrderService, *ProductService, *fakePublisher) {
	t.Helper()
	pub := &fakePublisher{}
	clock := fixedClock{t: testTime}

	orders := NewOrderService(newFakeOrderRepo(), pub, clock, stubNumbers{})
	products := NewProductService(newFakeProductRepo(), pub, clock)
	orch := NewOrchestrator(orders, products, nil)
	return orch, orders, products, pub
}

func placedPayload(t *testing.T, order *entity.Order) []byte {
	t.Helper()
	var items []entity.OrderItemSnapshot
	for _, item := range order.Items {
		items = append(items, entity.OrderItemSnapshot{
			ProductID: item.ProductID,
			VendorID:  item.VendorID,
			Quantity:  item.Quantity,
		})
	}
	payload, err := json.Marshal(entity.OrderPlaced{
		OrderID: order.ID,
		UserID:  order.UserID,
		Items:   items,
	})
	require.NoError(t, err)
	return payload
}

func TestOrderPlacedReservesStock(t *testing.T) {
	orch, orders, products, _ := newOrchestratorFixture(t)

	product := seedProduct(t, products, 10)

	cmd := testCreateOrderCommand(t)
	cmd.Items[0].ProductID = product.ID
	cmd.Items[0].Quantity = 4
	order, err := orders.CreateOrder(context.Background(), cmd)
	require.NoError(t, err)

	require.NoError(t, orch.handleOrderPlaced(context.Background(), placedPayload(t, order)))

	updated, err := products.GetProduct(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.ReservedQuantity)
	assert.Equal(t, 6, updated.AvailableQuantity())
}

func TestOrderPlacedInsufficientStockCancelsOrder(t *testing.T) {
	orch, orders, products, _ := newOrchestratorFixture(t)

	inStock := seedProduct(t, products, 10)
	scarce := seedProduct(t, products, 1)

	cmd := testCreateOrderCommand(t)
	cmd.Items[0].ProductID = inStock.ID
	cmd.Items[0].Quantity = 5
	second := cmd.Items[0]
	second.ProductID = scarce.ID
	second.Quantity = 3
	cmd.Items = append(cmd.Items, second)

	order, err := orders.CreateOrder(context.Background(), cmd)
	require.NoError(t, err)

	require.NoError(t, orch.handleOrderPlaced(context.Background(), placedPayload(t, order)))

	// The order was cancelled and the partial reservation rolled back.
	cancelled, err := orders.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)

	first, err := products.GetProduct(context.Background(), inStock.ID)
	require.NoError(t, err)
	assert.Zero(t, first.ReservedQuantity)
}

func TestOrderPaymentConfirmedConfirmsReservations(t *testing.T) {
	orch, orders, products, _ := newOrchestratorFixture(t)

	product := seedProduct(t, products, 10)

	cmd := testCreateOrderCommand(t)
	cmd.Items[0].ProductID = product.ID
	cmd.Items[0].Quantity = 4
	order, err := orders.CreateOrder(context.Background(), cmd)
	require.NoError(t, err)

	require.NoError(t, orch.handleOrderPlaced(context.Background(), placedPayload(t, order)))

	payload, err := json.Marshal(entity.OrderPaymentConfirmed{OrderID: order.ID, PaymentID: uuid.New()})
	require.NoError(t, err)
	require.NoError(t, orch.handleOrderPaymentConfirmed(context.Background(), payload))

	updated, err := products.GetProduct(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.StockQuantity)
	assert.Zero(t, updated.ReservedQuantity)
}

func TestPaymentCompletedConfirmsOrder(t *testing.T) {
	orch, orders, _, _ := newOrchestratorFixture(t)

	order, err := orders.CreateOrder(context.Background(), testCreateOrderCommand(t))
	require.NoError(t, err)
	paymentID := uuid.New()

	payload, err := json.Marshal(entity.PaymentCompleted{PaymentID: paymentID, OrderID: order.ID})
	require.NoError(t, err)

	require.NoError(t, orch.handlePaymentCompleted(context.Background(), payload))

	confirmed, err := orders.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaymentConfirmed, confirmed.Status)
	require.NotNil(t, confirmed.PaymentID)
	assert.Equal(t, paymentID, *confirmed.PaymentID)

	// Redelivery is a no-op instead of an error.
	require.NoError(t, orch.handlePaymentCompleted(context.Background(), payload))
}
