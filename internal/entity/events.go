package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Order events ---

// OrderItemSnapshot is the line-item data carried inside order events.
type OrderItemSnapshot struct {
	ProductID   uuid.UUID       `json:"product_id"`
	VendorID    uuid.UUID       `json:"vendor_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// OrderPlaced is emitted when a new order is created.
type OrderPlaced struct {
	OrderID     uuid.UUID           `json:"order_id"`
	UserID      uuid.UUID           `json:"user_id"`
	OrderNumber string              `json:"order_number"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Currency    string              `json:"currency"`
	Items       []OrderItemSnapshot `json:"items"`
	PlacedAt    time.Time           `json:"placed_at"`
}

func (e OrderPlaced) EventType() string { return "OrderPlaced" }

// OrderPaymentConfirmed is emitted when payment is confirmed for an order.
type OrderPaymentConfirmed struct {
	OrderID     uuid.UUID `json:"order_id"`
	PaymentID   uuid.UUID `json:"payment_id"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

func (e OrderPaymentConfirmed) EventType() string { return "OrderPaymentConfirmed" }

// OrderShipped is emitted when an order leaves the warehouse.
type OrderShipped struct {
	OrderID        uuid.UUID `json:"order_id"`
	TrackingNumber string    `json:"tracking_number"`
	CourierService string    `json:"courier_service"`
	ShippedAt      time.Time `json:"shipped_at"`
}

func (e OrderShipped) EventType() string { return "OrderShipped" }

// OrderDelivered is emitted when the courier reports delivery.
type OrderDelivered struct {
	OrderID     uuid.UUID `json:"order_id"`
	DeliveredAt time.Time `json:"delivered_at"`
}

func (e OrderDelivered) EventType() string { return "OrderDelivered" }

// OrderCancelled is emitted when an order is cancelled.
type OrderCancelled struct {
	OrderID     uuid.UUID `json:"order_id"`
	Reason      string    `json:"reason"`
	CancelledAt time.Time `json:"cancelled_at"`
}

func (e OrderCancelled) EventType() string { return "OrderCancelled" }

// OrderCompleted is emitted when an order reaches its final state.
type OrderCompleted struct {
	OrderID     uuid.UUID `json:"order_id"`
	CompletedAt time.Time `json:"completed_at"`
}

func (e OrderCompleted) EventType() string { return "OrderCompleted" }

// --- Payment events ---

// PaymentInitiated is emitted when a payment attempt is created.
type PaymentInitiated struct {
	PaymentID uuid.UUID       `json:"payment_id"`
	OrderID   uuid.UUID       `json:"order_id"`
	UserID    uuid.UUID       `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Method    string          `json:"method"`
}

func (e PaymentInitiated) EventType() string { return "PaymentInitiated" }

// PaymentCompleted is emitted when the gateway confirms the charge.
type PaymentCompleted struct {
	PaymentID     uuid.UUID `json:"payment_id"`
	OrderID       uuid.UUID `json:"order_id"`
	TransactionID string    `json:"transaction_id"`
	CompletedAt   time.Time `json:"completed_at"`
}

func (e PaymentCompleted) EventType() string { return "PaymentCompleted" }

// PaymentFailed is emitted when a payment attempt fails.
type PaymentFailed struct {
	PaymentID uuid.UUID `json:"payment_id"`
	OrderID   uuid.UUID `json:"order_id"`
	Reason    string    `json:"reason"`
	FailedAt  time.Time `json:"failed_at"`
}

func (e PaymentFailed) EventType() string { return "PaymentFailed" }

// PaymentRefunded is emitted when a completed payment is refunded.
type PaymentRefunded struct {
	PaymentID    uuid.UUID       `json:"payment_id"`
	OrderID      uuid.UUID       `json:"order_id"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
	Currency     string          `json:"currency"`
	RefundedAt   time.Time       `json:"refunded_at"`
}

func (e PaymentRefunded) EventType() string { return "PaymentRefunded" }

// --- Product events ---

// ProductCreated is emitted when a vendor lists a new product.
type ProductCreated struct {
	ProductID uuid.UUID       `json:"product_id"`
	VendorID  uuid.UUID       `json:"vendor_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
}

func (e ProductCreated) EventType() string { return "ProductCreated" }

// ProductPriceChanged is emitted when a product's price is updated.
type ProductPriceChanged struct {
	ProductID uuid.UUID       `json:"product_id"`
	OldPrice  decimal.Decimal `json:"old_price"`
	NewPrice  decimal.Decimal `json:"new_price"`
	Currency  string          `json:"currency"`
}

func (e ProductPriceChanged) EventType() string { return "ProductPriceChanged" }

// ProductStockUpdated is emitted when physical stock changes.
type ProductStockUpdated struct {
	ProductID uuid.UUID `json:"product_id"`
	OldStock  int       `json:"old_stock"`
	NewStock  int       `json:"new_stock"`
}

func (e ProductStockUpdated) EventType() string { return "ProductStockUpdated" }

// ProductPublished is emitted when a draft product goes live.
type ProductPublished struct {
	ProductID   uuid.UUID `json:"product_id"`
	PublishedAt time.Time `json:"published_at"`
}

func (e ProductPublished) EventType() string { return "ProductPublished" }

// ProductDiscontinued is emitted when a product is taken off the catalog.
type ProductDiscontinued struct {
	ProductID      uuid.UUID `json:"product_id"`
	DiscontinuedAt time.Time `json:"discontinued_at"`
}

func (e ProductDiscontinued) EventType() string { return "ProductDiscontinued" }

// --- Vendor events ---

// VendorRegistered is emitted when a seller applies to the marketplace.
type VendorRegistered struct {
	VendorID     uuid.UUID `json:"vendor_id"`
	UserID       uuid.UUID `json:"user_id"`
	BusinessName string    `json:"business_name"`
	Email        string    `json:"email"`
}

func (e VendorRegistered) EventType() string { return "VendorRegistered" }

// VendorApproved is emitted when onboarding succeeds.
type VendorApproved struct {
	VendorID   uuid.UUID `json:"vendor_id"`
	ApprovedAt time.Time `json:"approved_at"`
}

func (e VendorApproved) EventType() string { return "VendorApproved" }

// VendorRejected is emitted when onboarding is rejected.
type VendorRejected struct {
	VendorID   uuid.UUID `json:"vendor_id"`
	Reason     string    `json:"reason"`
	RejectedAt time.Time `json:"rejected_at"`
}

func (e VendorRejected) EventType() string { return "VendorRejected" }

// VendorSuspended is emitted when an active vendor is suspended.
type VendorSuspended struct {
	VendorID    uuid.UUID `json:"vendor_id"`
	Reason      string    `json:"reason"`
	SuspendedAt time.Time `json:"suspended_at"`
}

func (e VendorSuspended) EventType() string { return "VendorSuspended" }

// VendorReactivated is emitted when a suspended vendor is reinstated.
type VendorReactivated struct {
	VendorID      uuid.UUID `json:"vendor_id"`
	ReactivatedAt time.Time `json:"reactivated_at"`
}

func (e VendorReactivated) EventType() string { return "VendorReactivated" }
