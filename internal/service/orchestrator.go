package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"marketplace-backend/internal/entity"
	"marketplace-backend/internal/messaging"
)

// Orchestrator reacts to published domain events and drives the
// cross-aggregate flows: reserving stock when an order is placed and
// confirming the order when its payment completes.
type Orchestrator struct {
	orders     *OrderService
	products   *ProductService
	subscriber messaging.Subscriber
	groupID    string
}

func NewOrchestrator(orders *OrderService, products *ProductService, subscriber messaging.Subscriber) *Orchestrator {
	return &Orchestrator{
		orders:     orders,
		products:   products,
		subscriber: subscriber,
		groupID:    "marketplace-orchestrator",
	}
}

// Run starts the consumers. It returns once ctx is cancelled and all
// consumers have stopped.
func (o *Orchestrator) Run(ctx context.Context) {
	done := make(chan struct{}, 3)

	go func() {
		o.subscriber.Consume(ctx, "orders.placed", o.groupID, o.handleOrderPlaced)
		done <- struct{}{}
	}()
	go func() {
		o.subscriber.Consume(ctx, "payments.completed", o.groupID, o.handlePaymentCompleted)
		done <- struct{}{}
	}()
	go func() {
		o.subscriber.Consume(ctx, "orders.payment_confirmed", o.groupID, o.handleOrderPaymentConfirmed)
		done <- struct{}{}
	}()

	slog.Info("Orchestrator consumers started", "group_id", o.groupID)
	for i := 0; i < 3; i++ {
		<-done
	}
}

// handleOrderPlaced reserves stock for every line of a freshly placed
// order. A failed reservation cancels the order and releases whatever
// was already reserved.
func (o *Orchestrator) handleOrderPlaced(ctx context.Context, payload []byte) error {
	var event entity.OrderPlaced
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("failed to unmarshal OrderPlaced event: %w", err)
	}

	slog.Info("Orchestrator: Reserving stock for order", "order_id", event.OrderID, "items", len(event.Items))

	reserved := make([]entity.OrderItemSnapshot, 0, len(event.Items))
	for _, item := range event.Items {
		if _, err := o.products.ReserveStock(ctx, item.ProductID, item.Quantity); err != nil {
			slog.Error("Stock reservation failed, cancelling order", "order_id", event.OrderID, "product_id", item.ProductID, "err", err)

			for _, r := range reserved {
				if _, relErr := o.products.ReleaseReservedStock(ctx, r.ProductID, r.Quantity); relErr != nil {
					slog.Error("Failed to release reserved stock", "product_id", r.ProductID, "err", relErr)
				}
			}

			if _, cancelErr := o.orders.CancelOrder(ctx, event.OrderID, fmt.Sprintf("insufficient stock for product %s", item.ProductID)); cancelErr != nil {
				return fmt.Errorf("failed to cancel order %s after reservation failure: %w", event.OrderID, cancelErr)
			}
			return nil
		}
		reserved = append(reserved, item)
	}

	return nil
}

// handleOrderPaymentConfirmed turns the order's soft stock reservations
// into hard deductions once the money is in.
func (o *Orchestrator) handleOrderPaymentConfirmed(ctx context.Context, payload []byte) error {
	var event entity.OrderPaymentConfirmed
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("failed to unmarshal OrderPaymentConfirmed event: %w", err)
	}

	order, err := o.orders.GetOrder(ctx, event.OrderID)
	if err != nil {
		return fmt.Errorf("failed to load order %s: %w", event.OrderID, err)
	}

	slog.Info("Orchestrator: Confirming stock reservations", "order_id", order.ID, "items", len(order.Items))
	for _, item := range order.Items {
		if _, err := o.products.ConfirmReservation(ctx, item.ProductID, item.Quantity); err != nil {
			slog.Error("Failed to confirm reservation", "order_id", order.ID, "product_id", item.ProductID, "err", err)
		}
	}
	return nil
}

// handlePaymentCompleted confirms the order tied to a completed payment.
func (o *Orchestrator) handlePaymentCompleted(ctx context.Context, payload []byte) error {
	var event entity.PaymentCompleted
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("failed to unmarshal PaymentCompleted event: %w", err)
	}

	slog.Info("Orchestrator: Confirming order payment", "order_id", event.OrderID, "payment_id", event.PaymentID)

	if _, err := o.orders.ConfirmPayment(ctx, event.OrderID, event.PaymentID); err != nil {
		if entity.IsStateConflict(err) {
			slog.Info("Order already past pending, skipping confirmation", "order_id", event.OrderID)
			return nil
		}
		return err
	}
	return nil
}
