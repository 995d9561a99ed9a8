package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"marketplace-backend/internal/entity"
	"marketplace-backend/internal/messaging"
	"marketplace-backend/internal/repository"
)

// InitiatePaymentCommand carries everything needed to start a payment.
type InitiatePaymentCommand struct {
	OrderID   uuid.UUID
	UserID    uuid.UUID
	Amount    entity.Money
	Method    entity.PaymentMethod
	Provider  entity.PaymentProvider
	CardLast4 string
	CardBrand string
}

// PaymentService orchestrates the payment lifecycle.
type PaymentService struct {
	payments  repository.PaymentRepository
	publisher messaging.Publisher
	clock     entity.Clock
}

func NewPaymentService(payments repository.PaymentRepository, publisher messaging.Publisher, clock entity.Clock) *PaymentService {
	return &PaymentService{payments: payments, publisher: publisher, clock: clock}
}

// InitiatePayment creates a pending payment and publishes PaymentInitiated.
func (s *PaymentService) InitiatePayment(ctx context.Context, cmd InitiatePaymentCommand) (*entity.Payment, error) {
	slog.Info("Service: Initiating payment", "order_id", cmd.OrderID, "amount", cmd.Amount)

	payment, err := entity.InitiatePayment(s.clock, cmd.OrderID, cmd.UserID, cmd.Amount, cmd.Method, cmd.Provider, cmd.CardLast4, cmd.CardBrand)
	if err != nil {
		return nil, err
	}

	if err := s.payments.Save(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	publishEvents(ctx, s.publisher, payment.ID.String(), payment)
	return payment, nil
}

// GetPayment loads a payment by id.
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	return s.payments.Load(ctx, id)
}

func (s *PaymentService) mutate(ctx context.Context, id uuid.UUID, fn func(*entity.Payment) error) (*entity.Payment, error) {
	payment, err := s.payments.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	payment.SetClock(s.clock)

	if err := fn(payment); err != nil {
		return nil, err
	}

	if err := s.payments.Save(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	publishEvents(ctx, s.publisher, payment.ID.String(), payment)
	return payment, nil
}

func (s *PaymentService) MarkProcessing(ctx context.Context, paymentID uuid.UUID) (*entity.Payment, error) {
	return s.mutate(ctx, paymentID, func(p *entity.Payment) error {
		return p.MarkProcessing()
	})
}

func (s *PaymentService) CompletePayment(ctx context.Context, paymentID uuid.UUID, transactionID, gatewayResponse string) (*entity.Payment, error) {
	return s.mutate(ctx, paymentID, func(p *entity.Payment) error {
		return p.Complete(transactionID, gatewayResponse)
	})
}

func (s *PaymentService) FailPayment(ctx context.Context, paymentID uuid.UUID, reason, gatewayResponse string) (*entity.Payment, error) {
	return s.mutate(ctx, paymentID, func(p *entity.Payment) error {
		return p.Fail(reason, gatewayResponse)
	})
}

func (s *PaymentService) RefundPayment(ctx context.Context, paymentID uuid.UUID, amount entity.Money, refundTransactionID string) (*entity.Payment, error) {
	return s.mutate(ctx, paymentID, func(p *entity.Payment) error {
		return p.Refund(amount, refundTransactionID)
	})
}

func (s *PaymentService) CancelPayment(ctx context.Context, paymentID uuid.UUID) (*entity.Payment, error) {
	return s.mutate(ctx, paymentID, func(p *entity.Payment) error {
		return p.Cancel()
	})
}
