package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShippingAddress() ShippingAddress {
	return ShippingAddress{
		Address: Address{
			Street:  "1 Main St",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62701",
			Country: "US",
		},
		RecipientName: "Jordan Blake",
		PhoneNumber:   "+1-555-0100",
	}
}

func testItem(t *testing.T, quantity int, unitPrice, taxRate string) OrderItem {
	t.Helper()
	item, err := NewOrderItem(
		uuid.New(), uuid.New(), "Mechanical Keyboard", "KB-100",
		quantity, mustMoney(t, unitPrice, "USD"), decimal.RequireFromString(taxRate),
	)
	require.NoError(t, err)
	return item
}

func testOrder(t *testing.T, items ...OrderItem) *Order {
	t.Helper()
	if len(items) == 0 {
		items = []OrderItem{testItem(t, 1, "50", "0")}
	}
	order, err := CreateOrder(
		testClock(), stubNumbers{number: "ORD-20250615-00042"},
		uuid.New(), testShippingAddress(), items,
		ZeroMoney("USD"), ZeroMoney("USD"), "",
	)
	require.NoError(t, err)
	order.DrainEvents()
	return order
}

// advance walks a pending order forward to the given status.
func advance(t *testing.T, order *Order, target OrderStatus) {
	t.Helper()
	steps := []struct {
		status OrderStatus
		fn     func() error
	}{
		{OrderStatusPaymentConfirmed, func() error { return order.ConfirmPayment(uuid.New()) }},
		{OrderStatusProcessing, order.StartProcessing},
		{OrderStatusShipped, func() error { return order.Ship("TRK123", "DHL") }},
		{OrderStatusDelivered, order.MarkDelivered},
		{OrderStatusCompleted, order.Complete},
	}
	for _, step := range steps {
		if order.Status == target {
			return
		}
		require.NoError(t, step.fn())
		if step.status == target {
			return
		}
	}
}

func TestNewOrderItem(t *testing.T) {
	item := testItem(t, 2, "100", "0.1")

	// line total = 2*100 + tax, tax = 2*100*0.1
	assert.Equal(t, "20.00 USD", item.TaxAmount.String())
	assert.Equal(t, "220.00 USD", item.TotalPrice.String())
}

func TestNewOrderItemValidation(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		price    string
		taxRate  string
	}{
		{"zero quantity", 0, "10", "0"},
		{"negative quantity", -1, "10", "0"},
		{"negative price", 1, "-10", "0"},
		{"negative tax rate", 1, "10", "-0.1"},
		{"tax rate above one", 1, "10", "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOrderItem(
				uuid.New(), uuid.New(), "x", "SKU",
				tt.quantity, mustMoney(t, tt.price, "USD"), decimal.RequireFromString(tt.taxRate),
			)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestCreateOrderTotals(t *testing.T) {
	item := testItem(t, 2, "100", "0.1")
	order, err := CreateOrder(
		testClock(), stubNumbers{number: "ORD-20250615-00042"},
		uuid.New(), testShippingAddress(), []OrderItem{item},
		mustMoney(t, "10", "USD"), ZeroMoney("USD"), "leave at door",
	)
	require.NoError(t, err)

	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, "ORD-20250615-00042", order.OrderNumber)
	assert.Equal(t, "200.00 USD", order.Subtotal.String())
	assert.Equal(t, "20.00 USD", order.Tax.String())
	assert.Equal(t, "230.00 USD", order.Total.String())
	assert.Equal(t, testTime, order.OrderDate)

	events := order.PendingEvents()
	require.Len(t, events, 1)
	placed, ok := events[0].(OrderPlaced)
	require.True(t, ok)
	assert.Equal(t, order.ID, placed.OrderID)
	assert.Len(t, placed.Items, 1)
	assert.True(t, placed.TotalAmount.Equal(decimal.RequireFromString("230")))
}

func TestCreateOrderValidation(t *testing.T) {
	item := testItem(t, 1, "10", "0")

	_, err := CreateOrder(testClock(), nil, uuid.Nil, testShippingAddress(), []OrderItem{item}, ZeroMoney("USD"), ZeroMoney("USD"), "")
	assert.True(t, IsValidation(err))

	_, err = CreateOrder(testClock(), nil, uuid.New(), ShippingAddress{}, []OrderItem{item}, ZeroMoney("USD"), ZeroMoney("USD"), "")
	assert.True(t, IsValidation(err))

	_, err = CreateOrder(testClock(), nil, uuid.New(), testShippingAddress(), nil, ZeroMoney("USD"), ZeroMoney("USD"), "")
	assert.True(t, IsValidation(err))
}

func TestOrderDiscountFloorsAtZero(t *testing.T) {
	item := testItem(t, 1, "10", "0")
	order, err := CreateOrder(
		testClock(), nil, uuid.New(), testShippingAddress(), []OrderItem{item},
		ZeroMoney("USD"), mustMoney(t, "50", "USD"), "",
	)
	require.NoError(t, err)
	assert.True(t, order.Total.IsZero())
}

func TestAddItemMergesSameProduct(t *testing.T) {
	item := testItem(t, 1, "10", "0")
	order := testOrder(t, item)

	dup := item
	dup.ID = uuid.New()
	dup.Quantity = 2
	require.NoError(t, order.AddItem(dup))

	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, "30.00 USD", order.Total.String())
}

func TestRemoveItem(t *testing.T) {
	first := testItem(t, 1, "10", "0")
	second := testItem(t, 1, "20", "0")
	order := testOrder(t, first, second)

	require.NoError(t, order.RemoveItem(first.ProductID))
	require.Len(t, order.Items, 1)
	assert.Equal(t, "20.00 USD", order.Total.String())

	err := order.RemoveItem(uuid.New())
	assert.True(t, IsValidation(err))
}

func TestRemoveLastItemRejectedWithoutMutation(t *testing.T) {
	item := testItem(t, 1, "10", "0")
	order := testOrder(t, item)

	err := order.RemoveItem(item.ProductID)
	assert.True(t, IsValidation(err))

	// The failed removal must leave the order untouched.
	require.Len(t, order.Items, 1)
	assert.Equal(t, "10.00 USD", order.Total.String())
	assert.Empty(t, order.PendingEvents())
}

func TestOrderHappyPath(t *testing.T) {
	order := testOrder(t)
	paymentID := uuid.New()

	require.NoError(t, order.ConfirmPayment(paymentID))
	assert.Equal(t, OrderStatusPaymentConfirmed, order.Status)
	require.NotNil(t, order.PaymentID)
	assert.Equal(t, paymentID, *order.PaymentID)

	require.NoError(t, order.StartProcessing())
	require.NoError(t, order.Ship("TRK123", "DHL"))
	assert.Equal(t, "TRK123", order.TrackingNumber)
	require.NoError(t, order.MarkDelivered())
	require.NoError(t, order.Complete())

	assert.Equal(t, OrderStatusCompleted, order.Status)
	assert.True(t, order.IsInFinalState())

	types := []string{}
	for _, e := range order.DrainEvents() {
		types = append(types, e.EventType())
	}
	assert.Equal(t, []string{"OrderPaymentConfirmed", "OrderShipped", "OrderDelivered", "OrderCompleted"}, types)
}

func TestOrderTransitionGuards(t *testing.T) {
	order := testOrder(t)

	// Out-of-order transitions fail from pending.
	assert.True(t, IsStateConflict(order.StartProcessing()))
	assert.True(t, IsStateConflict(order.Ship("TRK", "DHL")))
	assert.True(t, IsStateConflict(order.MarkDelivered()))
	assert.True(t, IsStateConflict(order.Complete()))

	// Failed guards record nothing.
	assert.Empty(t, order.PendingEvents())
}

func TestShipValidation(t *testing.T) {
	order := testOrder(t)
	advance(t, order, OrderStatusProcessing)

	assert.True(t, IsValidation(order.Ship("  ", "DHL")))
	assert.True(t, IsValidation(order.Ship("TRK", "")))
}

func TestCancelMatrix(t *testing.T) {
	cancellable := []OrderStatus{OrderStatusPending, OrderStatusPaymentConfirmed, OrderStatusProcessing}
	for _, status := range cancellable {
		t.Run(string(status), func(t *testing.T) {
			order := testOrder(t)
			advance(t, order, status)
			require.Equal(t, status, order.Status)

			require.NoError(t, order.Cancel("customer request"))
			assert.Equal(t, OrderStatusCancelled, order.Status)
			assert.Equal(t, "customer request", order.CancellationReason)
			require.NotNil(t, order.CancelledAt)
		})
	}

	blocked := []OrderStatus{OrderStatusShipped, OrderStatusDelivered, OrderStatusCompleted}
	for _, status := range blocked {
		t.Run(string(status), func(t *testing.T) {
			order := testOrder(t)
			advance(t, order, status)
			require.Equal(t, status, order.Status)

			assert.True(t, IsStateConflict(order.Cancel("too late")))
		})
	}
}

func TestCancelRequiresReason(t *testing.T) {
	order := testOrder(t)
	assert.True(t, IsValidation(order.Cancel("   ")))
	assert.Equal(t, OrderStatusPending, order.Status)
}

func TestMutationsLockedAfterPending(t *testing.T) {
	item := testItem(t, 1, "10", "0")
	order := testOrder(t, item, testItem(t, 1, "20", "0"))
	require.NoError(t, order.ConfirmPayment(uuid.New()))

	assert.True(t, IsStateConflict(order.AddItem(testItem(t, 1, "5", "0"))))
	assert.True(t, IsStateConflict(order.RemoveItem(item.ProductID)))
	assert.True(t, IsStateConflict(order.UpdateShippingAddress(testShippingAddress())))
	assert.True(t, IsStateConflict(order.ApplyDiscount(mustMoney(t, "1", "USD"))))
}

func TestApplyDiscount(t *testing.T) {
	order := testOrder(t, testItem(t, 1, "50", "0"))

	require.NoError(t, order.ApplyDiscount(mustMoney(t, "5", "USD")))
	assert.Equal(t, "45.00 USD", order.Total.String())

	assert.True(t, IsValidation(order.ApplyDiscount(mustMoney(t, "-1", "USD"))))
}

func TestVendorIDsDeduplicates(t *testing.T) {
	vendorID := uuid.New()
	first, err := NewOrderItem(uuid.New(), vendorID, "a", "A", 1, mustMoney(t, "1", "USD"), decimal.Zero)
	require.NoError(t, err)
	second, err := NewOrderItem(uuid.New(), vendorID, "b", "B", 1, mustMoney(t, "2", "USD"), decimal.Zero)
	require.NoError(t, err)

	order := testOrder(t, first, second)
	assert.Len(t, order.VendorIDs(), 1)
	assert.Equal(t, 2, order.TotalItemCount())
}
