package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the order state machine's status.
type OrderStatus string

const (
	OrderStatusPending          OrderStatus = "pending"
	OrderStatusPaymentConfirmed OrderStatus = "payment_confirmed"
	OrderStatusProcessing       OrderStatus = "processing"
	OrderStatusShipped          OrderStatus = "shipped"
	OrderStatusDelivered        OrderStatus = "delivered"
	OrderStatusCompleted        OrderStatus = "completed"
	OrderStatusCancelled        OrderStatus = "cancelled"
	// OrderStatusRefunded is reached only through external payment-refund
	// orchestration; no Order method transitions to it.
	OrderStatusRefunded OrderStatus = "refunded"
)

// OrderItem is a line item owned by an Order. It has no lifecycle
// outside its order: it is created, mutated and removed only through
// Order methods.
type OrderItem struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	VendorID    uuid.UUID       `json:"vendor_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   Money           `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	TaxAmount   Money           `json:"tax_amount"`
	TotalPrice  Money           `json:"total_price"`
}

// NewOrderItem validates the line and derives its tax and total.
func NewOrderItem(productID, vendorID uuid.UUID, productName, sku string, quantity int, unitPrice Money, taxRate decimal.Decimal) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, &ValidationError{Message: "quantity must be greater than zero"}
	}
	if unitPrice.IsNegative() {
		return OrderItem{}, &ValidationError{Message: "unit price cannot be negative"}
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
		return OrderItem{}, &ValidationError{Message: "tax rate must be between 0 and 1"}
	}

	item := OrderItem{
		ID:          uuid.New(),
		ProductID:   productID,
		VendorID:    vendorID,
		ProductName: productName,
		SKU:         sku,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TaxRate:     taxRate,
	}
	item.recalculateAmounts()
	return item, nil
}

// UpdateQuantity changes the line quantity and re-derives its amounts.
func (i *OrderItem) UpdateQuantity(quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Message: "quantity must be greater than zero"}
	}
	i.Quantity = quantity
	i.recalculateAmounts()
	return nil
}

// UpdatePrice changes the unit price and re-derives the line amounts.
func (i *OrderItem) UpdatePrice(unitPrice Money) error {
	if unitPrice.IsNegative() {
		return &ValidationError{Message: "unit price cannot be negative"}
	}
	i.UnitPrice = unitPrice
	i.recalculateAmounts()
	return nil
}

func (i *OrderItem) recalculateAmounts() {
	subtotal := i.UnitPrice.Amount.Mul(decimal.NewFromInt(int64(i.Quantity)))
	tax := subtotal.Mul(i.TaxRate)
	i.TaxAmount = Money{Amount: tax, Currency: i.UnitPrice.Currency}
	i.TotalPrice = Money{Amount: subtotal.Add(tax), Currency: i.UnitPrice.Currency}
}

// Order is the aggregate root for a customer purchase. All mutations
// to its items go through the order.
type Order struct {
	Base
	UserID          uuid.UUID       `json:"user_id"`
	OrderNumber     string          `json:"order_number"`
	Status          OrderStatus     `json:"status"`
	Subtotal        Money           `json:"subtotal"`
	Tax             Money           `json:"tax"`
	Shipping        Money           `json:"shipping"`
	Discount        Money           `json:"discount"`
	Total           Money           `json:"total"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	TrackingNumber  string          `json:"tracking_number,omitempty"`
	CourierService  string          `json:"courier_service,omitempty"`
	PaymentID       *uuid.UUID      `json:"payment_id,omitempty"`
	CustomerNotes   string          `json:"customer_notes,omitempty"`
	InternalNotes   string          `json:"internal_notes,omitempty"`
	Items           []OrderItem     `json:"items"`

	OrderDate          time.Time  `json:"order_date"`
	PaymentConfirmedAt *time.Time `json:"payment_confirmed_at,omitempty"`
	ShippedAt          *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
}

// CreateOrder builds a new pending order from validated line items and
// emits OrderPlaced.
func CreateOrder(clock Clock, numbers NumberGenerator, userID uuid.UUID, shippingAddress ShippingAddress, items []OrderItem, shipping, discount Money, customerNotes string) (*Order, error) {
	if userID == uuid.Nil {
		return nil, &ValidationError{Message: "user id is required"}
	}
	if shippingAddress.isZero() {
		return nil, &ValidationError{Message: "shipping address is required"}
	}
	if len(items) == 0 {
		return nil, &ValidationError{Message: "order must contain at least one item"}
	}
	if numbers == nil {
		numbers = NewNumberGenerator()
	}

	order := &Order{
		Base:            NewBase(clock),
		UserID:          userID,
		Status:          OrderStatusPending,
		Shipping:        shipping,
		Discount:        discount,
		ShippingAddress: shippingAddress,
		CustomerNotes:   customerNotes,
	}
	order.OrderDate = order.now()
	order.OrderNumber = numbers.OrderNumber(order.OrderDate)

	for _, item := range items {
		if err := order.AddItem(item); err != nil {
			return nil, err
		}
	}

	order.record(OrderPlaced{
		OrderID:     order.ID,
		UserID:      order.UserID,
		OrderNumber: order.OrderNumber,
		TotalAmount: order.Total.Amount,
		Currency:    order.Total.Currency,
		Items:       order.itemSnapshots(),
		PlacedAt:    order.OrderDate,
	})
	return order, nil
}

// AddItem merges the line into an existing one for the same product,
// or appends it. Only valid while the order is pending.
func (o *Order) AddItem(item OrderItem) error {
	if o.Status != OrderStatusPending {
		return &StateConflictError{Op: "add items to order", Status: string(o.Status)}
	}

	merged := false
	for idx := range o.Items {
		if o.Items[idx].ProductID == item.ProductID {
			if err := o.Items[idx].UpdateQuantity(o.Items[idx].Quantity + item.Quantity); err != nil {
				return err
			}
			merged = true
			break
		}
	}
	if !merged {
		o.Items = append(o.Items, item)
	}

	o.recalculateTotals()
	o.touch()
	return nil
}

// RemoveItem removes the line for the given product. It fails if the
// removal would leave the order empty, without mutating anything.
func (o *Order) RemoveItem(productID uuid.UUID) error {
	if o.Status != OrderStatusPending {
		return &StateConflictError{Op: "remove items from order", Status: string(o.Status)}
	}

	idx := -1
	for i := range o.Items {
		if o.Items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return validationErrorf("order item for product %s not found", productID)
	}
	if len(o.Items) == 1 {
		return &ValidationError{Message: "order must contain at least one item"}
	}

	o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
	o.recalculateTotals()
	o.touch()
	return nil
}

// ConfirmPayment ties the order to a completed payment and emits
// OrderPaymentConfirmed.
func (o *Order) ConfirmPayment(paymentID uuid.UUID) error {
	if o.Status != OrderStatusPending {
		return &StateConflictError{Op: "confirm payment for order", Status: string(o.Status)}
	}
	if paymentID == uuid.Nil {
		return &ValidationError{Message: "payment id is required"}
	}

	now := o.now()
	o.PaymentID = &paymentID
	o.Status = OrderStatusPaymentConfirmed
	o.PaymentConfirmedAt = &now
	o.touch()

	o.record(OrderPaymentConfirmed{OrderID: o.ID, PaymentID: paymentID, ConfirmedAt: now})
	return nil
}

// StartProcessing moves a payment-confirmed order into fulfillment.
func (o *Order) StartProcessing() error {
	if o.Status != OrderStatusPaymentConfirmed {
		return &StateConflictError{Op: "start processing order", Status: string(o.Status)}
	}
	o.Status = OrderStatusProcessing
	o.touch()
	return nil
}

// Ship records tracking information and emits OrderShipped.
func (o *Order) Ship(trackingNumber, courierService string) error {
	if o.Status != OrderStatusProcessing {
		return &StateConflictError{Op: "ship order", Status: string(o.Status)}
	}
	if isBlank(trackingNumber) {
		return &ValidationError{Message: "tracking number is required"}
	}
	if isBlank(courierService) {
		return &ValidationError{Message: "courier service is required"}
	}

	now := o.now()
	o.TrackingNumber = trackingNumber
	o.CourierService = courierService
	o.Status = OrderStatusShipped
	o.ShippedAt = &now
	o.touch()

	o.record(OrderShipped{OrderID: o.ID, TrackingNumber: trackingNumber, CourierService: courierService, ShippedAt: now})
	return nil
}

// MarkDelivered records delivery and emits OrderDelivered.
func (o *Order) MarkDelivered() error {
	if o.Status != OrderStatusShipped {
		return &StateConflictError{Op: "mark order as delivered", Status: string(o.Status)}
	}

	now := o.now()
	o.Status = OrderStatusDelivered
	o.DeliveredAt = &now
	o.touch()

	o.record(OrderDelivered{OrderID: o.ID, DeliveredAt: now})
	return nil
}

// Complete finalizes a delivered order and emits OrderCompleted.
func (o *Order) Complete() error {
	if o.Status != OrderStatusDelivered {
		return &StateConflictError{Op: "complete order", Status: string(o.Status)}
	}

	now := o.now()
	o.Status = OrderStatusCompleted
	o.CompletedAt = &now
	o.touch()

	o.record(OrderCompleted{OrderID: o.ID, CompletedAt: now})
	return nil
}

// Cancel aborts the order before it ships and emits OrderCancelled.
func (o *Order) Cancel(reason string) error {
	if o.Status == OrderStatusCompleted || o.Status == OrderStatusCancelled ||
		o.Status == OrderStatusShipped || o.Status == OrderStatusDelivered {
		return &StateConflictError{Op: "cancel order", Status: string(o.Status)}
	}
	if isBlank(reason) {
		return &ValidationError{Message: "cancellation reason is required"}
	}

	now := o.now()
	o.Status = OrderStatusCancelled
	o.CancellationReason = reason
	o.CancelledAt = &now
	o.touch()

	o.record(OrderCancelled{OrderID: o.ID, Reason: reason, CancelledAt: now})
	return nil
}

// UpdateShippingAddress replaces the address while the order is pending.
func (o *Order) UpdateShippingAddress(address ShippingAddress) error {
	if o.Status != OrderStatusPending {
		return &StateConflictError{Op: "update shipping address for order", Status: string(o.Status)}
	}
	if address.isZero() {
		return &ValidationError{Message: "shipping address is required"}
	}
	o.ShippingAddress = address
	o.touch()
	return nil
}

// ApplyDiscount sets the discount and recomputes totals.
func (o *Order) ApplyDiscount(discount Money) error {
	if o.Status != OrderStatusPending {
		return &StateConflictError{Op: "apply discount to order", Status: string(o.Status)}
	}
	if discount.IsNegative() {
		return &ValidationError{Message: "discount amount cannot be negative"}
	}
	o.Discount = discount
	o.recalculateTotals()
	o.touch()
	return nil
}

// UpdateInternalNotes sets staff-facing notes in any state.
func (o *Order) UpdateInternalNotes(notes string) {
	o.InternalNotes = notes
	o.touch()
}

// recalculateTotals derives subtotal, tax and total from the line
// items: subtotal excludes tax, total = max(0, subtotal + tax +
// shipping - discount), in the currency of the first line.
func (o *Order) recalculateTotals() {
	if len(o.Items) == 0 {
		o.Subtotal = Money{}
		o.Tax = Money{}
		o.Total = Money{}
		return
	}

	currency := o.Items[0].UnitPrice.Currency
	subtotal := decimal.Zero
	tax := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.TotalPrice.Amount.Sub(item.TaxAmount.Amount))
		tax = tax.Add(item.TaxAmount.Amount)
	}

	total := subtotal.Add(tax).Add(o.Shipping.Amount).Sub(o.Discount.Amount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	o.Subtotal = Money{Amount: subtotal, Currency: currency}
	o.Tax = Money{Amount: tax, Currency: currency}
	o.Total = Money{Amount: total, Currency: currency}
}

func (o *Order) itemSnapshots() []OrderItemSnapshot {
	snapshots := make([]OrderItemSnapshot, 0, len(o.Items))
	for _, item := range o.Items {
		snapshots = append(snapshots, OrderItemSnapshot{
			ProductID:   item.ProductID,
			VendorID:    item.VendorID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.Amount,
			TotalPrice:  item.TotalPrice.Amount,
		})
	}
	return snapshots
}

// Query helpers.

func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusPaymentConfirmed || o.Status == OrderStatusProcessing
}

func (o *Order) CanBeModified() bool {
	return o.Status == OrderStatusPending
}

func (o *Order) IsInFinalState() bool {
	return o.Status == OrderStatusCompleted || o.Status == OrderStatusCancelled || o.Status == OrderStatusRefunded
}

func (o *Order) TotalItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// VendorIDs returns the distinct vendors represented in the order.
func (o *Order) VendorIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(o.Items))
	var ids []uuid.UUID
	for _, item := range o.Items {
		if _, ok := seen[item.VendorID]; !ok {
			seen[item.VendorID] = struct{}{}
			ids = append(ids, item.VendorID)
		}
	}
	return ids
}
