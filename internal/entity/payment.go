package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the payment state machine's status.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// PaymentMethod identifies how the customer pays.
type PaymentMethod string

const (
	PaymentMethodCreditCard     PaymentMethod = "credit_card"
	PaymentMethodDebitCard      PaymentMethod = "debit_card"
	PaymentMethodPayPal         PaymentMethod = "paypal"
	PaymentMethodBankTransfer   PaymentMethod = "bank_transfer"
	PaymentMethodWallet         PaymentMethod = "wallet"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// PaymentProvider identifies the gateway processing the payment.
type PaymentProvider string

const (
	PaymentProviderStripe   PaymentProvider = "stripe"
	PaymentProviderPayPal   PaymentProvider = "paypal"
	PaymentProviderSquare   PaymentProvider = "square"
	PaymentProviderRazorpay PaymentProvider = "razorpay"
	PaymentProviderInternal PaymentProvider = "internal"
)

// Payment is the aggregate root for a single payment attempt against
// an order.
type Payment struct {
	Base
	OrderID         uuid.UUID       `json:"order_id"`
	UserID          uuid.UUID       `json:"user_id"`
	Amount          Money           `json:"amount"`
	Method          PaymentMethod   `json:"method"`
	Provider        PaymentProvider `json:"provider"`
	Status          PaymentStatus   `json:"status"`
	TransactionID   string          `json:"transaction_id,omitempty"`
	GatewayResponse string          `json:"gateway_response,omitempty"`
	CardLast4       string          `json:"card_last4,omitempty"`
	CardBrand       string          `json:"card_brand,omitempty"`

	InitiatedAt         time.Time  `json:"initiated_at"`
	ProcessingAt        *time.Time `json:"processing_at,omitempty"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
	FailedAt            *time.Time `json:"failed_at,omitempty"`
	FailureReason       string     `json:"failure_reason,omitempty"`
	RefundTransactionID string     `json:"refund_transaction_id,omitempty"`
	RefundedAt          *time.Time `json:"refunded_at,omitempty"`
	RefundAmount        *Money     `json:"refund_amount,omitempty"`
}

// InitiatePayment creates a pending payment and emits PaymentInitiated.
func InitiatePayment(clock Clock, orderID, userID uuid.UUID, amount Money, method PaymentMethod, provider PaymentProvider, cardLast4, cardBrand string) (*Payment, error) {
	if orderID == uuid.Nil {
		return nil, &ValidationError{Message: "order id is required"}
	}
	if userID == uuid.Nil {
		return nil, &ValidationError{Message: "user id is required"}
	}
	if !amount.Amount.IsPositive() {
		return nil, &ValidationError{Message: "payment amount must be positive"}
	}

	payment := &Payment{
		Base:      NewBase(clock),
		OrderID:   orderID,
		UserID:    userID,
		Amount:    amount,
		Method:    method,
		Provider:  provider,
		Status:    PaymentStatusPending,
		CardLast4: cardLast4,
		CardBrand: cardBrand,
	}
	payment.InitiatedAt = payment.now()

	payment.record(PaymentInitiated{
		PaymentID: payment.ID,
		OrderID:   orderID,
		UserID:    userID,
		Amount:    amount.Amount,
		Currency:  amount.Currency,
		Method:    string(method),
	})
	return payment, nil
}

// MarkProcessing moves a pending payment into the gateway's hands.
func (p *Payment) MarkProcessing() error {
	if p.Status != PaymentStatusPending {
		return &StateConflictError{Op: "mark payment as processing", Status: string(p.Status)}
	}

	now := p.now()
	p.Status = PaymentStatusProcessing
	p.ProcessingAt = &now
	p.touch()
	return nil
}

// Complete records the gateway's confirmation and emits
// PaymentCompleted. Allowed from pending or processing.
func (p *Payment) Complete(transactionID, gatewayResponse string) error {
	if p.Status != PaymentStatusProcessing && p.Status != PaymentStatusPending {
		return &StateConflictError{Op: "complete payment", Status: string(p.Status)}
	}
	if isBlank(transactionID) {
		return &ValidationError{Message: "transaction id is required"}
	}

	now := p.now()
	p.Status = PaymentStatusCompleted
	p.TransactionID = transactionID
	p.GatewayResponse = gatewayResponse
	p.CompletedAt = &now
	p.touch()

	p.record(PaymentCompleted{PaymentID: p.ID, OrderID: p.OrderID, TransactionID: transactionID, CompletedAt: now})
	return nil
}

// Fail records a gateway failure and emits PaymentFailed. Completed or
// refunded payments cannot fail.
func (p *Payment) Fail(reason, gatewayResponse string) error {
	if p.Status == PaymentStatusCompleted || p.Status == PaymentStatusRefunded {
		return &StateConflictError{Op: "fail payment", Status: string(p.Status)}
	}
	if isBlank(reason) {
		return &ValidationError{Message: "failure reason is required"}
	}

	now := p.now()
	p.Status = PaymentStatusFailed
	p.FailureReason = reason
	p.GatewayResponse = gatewayResponse
	p.FailedAt = &now
	p.touch()

	p.record(PaymentFailed{PaymentID: p.ID, OrderID: p.OrderID, Reason: reason, FailedAt: now})
	return nil
}

// Refund reverses a completed payment, at most once, and emits
// PaymentRefunded. The refund can never exceed the paid amount.
func (p *Payment) Refund(refundAmount Money, refundTransactionID string) error {
	if p.Status != PaymentStatusCompleted {
		return &StateConflictError{Op: "refund payment", Status: string(p.Status)}
	}
	if !refundAmount.Amount.IsPositive() {
		return &ValidationError{Message: "refund amount must be positive"}
	}
	if refundAmount.Amount.GreaterThan(p.Amount.Amount) {
		return validationErrorf("refund amount cannot exceed payment amount of %s", p.Amount)
	}
	if isBlank(refundTransactionID) {
		return &ValidationError{Message: "refund transaction id is required"}
	}

	now := p.now()
	p.Status = PaymentStatusRefunded
	p.RefundAmount = &refundAmount
	p.RefundTransactionID = refundTransactionID
	p.RefundedAt = &now
	p.touch()

	p.record(PaymentRefunded{PaymentID: p.ID, OrderID: p.OrderID, RefundAmount: refundAmount.Amount, Currency: refundAmount.Currency, RefundedAt: now})
	return nil
}

// Cancel aborts a payment that was never handed to the gateway.
func (p *Payment) Cancel() error {
	if p.Status != PaymentStatusPending {
		return &StateConflictError{Op: "cancel payment", Status: string(p.Status)}
	}
	p.Status = PaymentStatusCancelled
	p.touch()
	return nil
}

// Query helpers.

func (p *Payment) IsCompleted() bool { return p.Status == PaymentStatusCompleted }

func (p *Payment) IsPending() bool { return p.Status == PaymentStatusPending }

func (p *Payment) HasFailed() bool { return p.Status == PaymentStatusFailed }

func (p *Payment) IsRefunded() bool { return p.Status == PaymentStatusRefunded }

func (p *Payment) CanBeRefunded() bool {
	return p.Status == PaymentStatusCompleted && p.RefundedAt == nil
}

// RefundableAmount returns what is still refundable.
func (p *Payment) RefundableAmount() Money {
	if p.RefundAmount == nil {
		return p.Amount
	}
	remaining, err := p.Amount.Subtract(*p.RefundAmount)
	if err != nil {
		return ZeroMoney(p.Amount.Currency)
	}
	return remaining
}
