package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill"
	wkafka "github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	kafkaGo "github.com/segmentio/kafka-go"

	"marketplace-backend/internal/messaging"
)

const keyMetadataField = "key"

type kafkaBroker struct {
	brokers   []string
	publisher *wkafka.Publisher
}

// NewKafkaBroker creates a Kafka publisher and subscriber for the given brokers.
// Events published with the same key land on the same partition, so per-aggregate
// ordering is preserved.
func NewKafkaBroker(brokers []string) (messaging.Publisher, messaging.Subscriber, error) {
	saramaConfig := wkafka.DefaultSaramaSyncPublisherConfig()
	saramaConfig.ClientID = "marketplace-backend"
	saramaConfig.Producer.Compression = sarama.CompressionSnappy

	publisher, err := wkafka.NewPublisher(
		wkafka.PublisherConfig{
			Brokers: brokers,
			Marshaler: wkafka.NewWithPartitioningMarshaler(func(topic string, msg *message.Message) (string, error) {
				return msg.Metadata.Get(keyMetadataField), nil
			}),
			OverwriteSaramaConfig: saramaConfig,
		},
		watermill.NewSlogLogger(slog.Default()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}

	kb := &kafkaBroker{brokers: brokers, publisher: publisher}
	return kb, kb, nil
}

func (k *kafkaBroker) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(keyMetadataField, key)
	msg.SetContext(ctx)

	return k.publisher.Publish(topic, msg)
}

func (k *kafkaBroker) Close() error {
	return k.publisher.Close()
}

func (k *kafkaBroker) Consume(ctx context.Context, topic string, groupID string, handler func(ctx context.Context, payload []byte) error) {
	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers: k.brokers,
		Topic:   topic,
		GroupID: groupID,
	})
	defer reader.Close()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				slog.Info("Consumer shutting down", "topic", topic)
				return
			}
			slog.Error("Error reading message", "topic", topic, "err", err)
			continue
		}

		if err := handler(ctx, msg.Value); err != nil {
			slog.Error("Error handling message", "topic", topic, "err", err)
		}
	}
}
