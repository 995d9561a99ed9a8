package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"marketplace-backend/internal/entity"
	"marketplace-backend/internal/messaging"
	"marketplace-backend/internal/repository"
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID   uuid.UUID
	VendorID    uuid.UUID
	ProductName string
	SKU         string
	Quantity    int
	UnitPrice   entity.Money
	TaxRate     decimal.Decimal
}

// CreateOrderCommand carries everything needed to place an order.
type CreateOrderCommand struct {
	UserID          uuid.UUID
	ShippingAddress entity.ShippingAddress
	Items           []OrderItemInput
	Shipping        entity.Money
	Discount        entity.Money
	CustomerNotes   string
}

// OrderService orchestrates the order lifecycle.
type OrderService struct {
	orders    repository.OrderRepository
	publisher messaging.Publisher
	clock     entity.Clock
	numbers   entity.NumberGenerator
}

func NewOrderService(orders repository.OrderRepository, publisher messaging.Publisher, clock entity.Clock, numbers entity.NumberGenerator) *OrderService {
	return &OrderService{orders: orders, publisher: publisher, clock: clock, numbers: numbers}
}

// CreateOrder places a new order and publishes OrderPlaced once it is durable.
func (s *OrderService) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*entity.Order, error) {
	slog.Info("Service: Creating order", "user_id", cmd.UserID, "items", len(cmd.Items))

	items := make([]entity.OrderItem, 0, len(cmd.Items))
	for _, in := range cmd.Items {
		item, err := entity.NewOrderItem(in.ProductID, in.VendorID, in.ProductName, in.SKU, in.Quantity, in.UnitPrice, in.TaxRate)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	order, err := entity.CreateOrder(s.clock, s.numbers, cmd.UserID, cmd.ShippingAddress, items, cmd.Shipping, cmd.Discount, cmd.CustomerNotes)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	publishEvents(ctx, s.publisher, order.ID.String(), order)
	slog.Info("Order placed", "order_id", order.ID, "order_number", order.OrderNumber, "total", order.Total)
	return order, nil
}

// GetOrder loads an order by id.
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return s.orders.Load(ctx, id)
}

// mutate loads the order, applies fn and saves it, publishing any
// events the mutation recorded only after the save succeeded.
func (s *OrderService) mutate(ctx context.Context, id uuid.UUID, fn func(*entity.Order) error) (*entity.Order, error) {
	order, err := s.orders.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	order.SetClock(s.clock)

	if err := fn(order); err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	publishEvents(ctx, s.publisher, order.ID.String(), order)
	return order, nil
}

func (s *OrderService) ConfirmPayment(ctx context.Context, orderID, paymentID uuid.UUID) (*entity.Order, error) {
	return s.mutate(ctx, orderID, func(o *entity.Order) error {
		return o.ConfirmPayment(paymentID)
	})
}

func (s *OrderService) StartProcessing(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	return s.mutate(ctx, orderID, func(o *entity.Order) error {
		return o.StartProcessing()
	})
}

func (s *OrderService) ShipOrder(ctx context.Context, orderID uuid.UUID, trackingNumber, courierService string) (*entity.Order, error) {
	return s.mutate(ctx, orderID, func(o *entity.Order) error {
		return o.Ship(trackingNumber, courierService)
	})
}

func (s *OrderService) MarkDelivered(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	return s.mutate(ctx, orderID, func(o *entity.Order) error {
		return o.MarkDelivered()
	})
}

func (s *OrderService) CompleteOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	return s.mutate(ctx, orderID, func(o *entity.Order) error {
		return o.Complete()
	})
}

func (s *OrderService) CancelOrder(ctx context.Context, orderID uuid.UUID, reason string) (*entity.Order, error) {
	return s.mutate(ctx, orderID, func(o *entity.Order) error {
		return o.Cancel(reason)
	})
}

func (s *OrderService) AddItem(ctx context.Context, orderID uuid.UUID, in OrderItemInput) (*entity.Order, error) {
	return s.mutate(ctx, orderID, func(o *entity.Order) error {
		item, err := entity.NewOrderItem(in.ProductID, in.VendorID, in.ProductName, in.SKU, in.Quantity, in.UnitPrice, in.TaxRate)
		if err != nil {
			return err
		}
		return o.AddItem(item)
	})
}

func (s *OrderService) RemoveItem(ctx context.Context, orderID, productID uuid.UUID) (*entity.Order, error) {
	return s.mutate(ctx, orderID, func(o *entity.Order) error {
		return o.RemoveItem(productID)
	})
}

func (s *OrderService) UpdateShippingAddress(ctx context.Context, orderID uuid.UUID, address entity.ShippingAddress) (*entity.Order, error) {
	return s.mutate(ctx, orderID, func(o *entity.Order) error {
		return o.UpdateShippingAddress(address)
	})
}

func (s *OrderService) ApplyDiscount(ctx context.Context, orderID uuid.UUID, discount entity.Money) (*entity.Order, error) {
	return s.mutate(ctx, orderID, func(o *entity.Order) error {
		return o.ApplyDiscount(discount)
	})
}

func (s *OrderService) UpdateInternalNotes(ctx context.Context, orderID uuid.UUID, notes string) (*entity.Order, error) {
	return s.mutate(ctx, orderID, func(o *entity.Order) error {
		o.UpdateInternalNotes(notes)
		return nil
	})
}
