package storage

import (
	"context"
	"encoding/json"

	"tablemenu/internal/domain"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher fans activity events out to the activity topic; the
// dispatcher on the other side writes the activity log rows.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishActivity(ctx context.Context, event domain.ActivityEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Type),
		Value: payload,
	})
}
