package service

import (
	"context"
	"log/slog"

	"marketplace-backend/internal/entity"
	"marketplace-backend/internal/messaging"
)

// eventTopics routes each domain event type to its Kafka topic.
var eventTopics = map[string]string{
	"OrderPlaced":           "orders.placed",
	"OrderPaymentConfirmed": "orders.payment_confirmed",
	"OrderShipped":          "orders.shipped",
	"OrderDelivered":        "orders.delivered",
	"OrderCancelled":        "orders.cancelled",
	"OrderCompleted":        "orders.completed",
	"PaymentInitiated":      "payments.initiated",
	"PaymentCompleted":      "payments.completed",
	"PaymentFailed":         "payments.failed",
	"PaymentRefunded":       "payments.refunded",
	"ProductCreated":        "products.created",
	"ProductPriceChanged":   "products.price_changed",
	"ProductStockUpdated":   "products.stock_updated",
	"ProductPublished":      "products.published",
	"ProductDiscontinued":   "products.discontinued",
	"VendorRegistered":      "vendors.registered",
	"VendorApproved":        "vendors.approved",
	"VendorRejected":        "vendors.rejected",
	"VendorSuspended":       "vendors.suspended",
	"VendorReactivated":     "vendors.reactivated",
}

// drainer is implemented by every aggregate root.
type drainer interface {
	DrainEvents() []entity.Event
}

// publishEvents drains the aggregate's pending events and publishes each to
// its topic. It must only be called after the aggregate was saved; a publish
// failure is logged but does not fail the operation, since the state change
// is already durable.
func publishEvents(ctx context.Context, publisher messaging.Publisher, key string, agg drainer) {
	for _, event := range agg.DrainEvents() {
		topic, ok := eventTopics[event.EventType()]
		if !ok {
			topic = "events.unrouted"
		}
		if err := publisher.PublishEvent(ctx, topic, key, event); err != nil {
			slog.Error("Failed to publish event", "type", event.EventType(), "topic", topic, "key", key, "err", err)
		}
	}
}
