package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"tablebite/internal/domain"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher emits order lifecycle events for downstream consumers
// (kitchen display, analytics). Events are keyed by order id so per-order
// ordering is preserved within a partition.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.OrderID)),
		Value: payload,
	})
}
