package delivery_events

import (
	"context"
	"encoding/json"
	"fmt"

	"dispatch/internal/entities"
	"github.com/IBM/sarama"
)

// Publisher пишет события о заказах в Kafka. Ключ сообщения - id заказа,
// поэтому события одного заказа попадают в одну партицию и читаются по порядку.
type Publisher struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) PublishDeliveryEvent(ctx context.Context, event entities.DeliveryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("marshal delivery event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventType)},
		},
		Timestamp: event.OccurredAt,
	}

	_, _, err = p.producer.SendMessage(msg)
	if err != nil {
		PublishedTotal.WithLabelValues(event.Status.String(), "error").Inc()
		return fmt.Errorf("send delivery event for order %s: %w", event.OrderID, err)
	}

	PublishedTotal.WithLabelValues(event.Status.String(), "ok").Inc()
	return nil
}
