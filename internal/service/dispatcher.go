package service

import (
	"context"
	"encoding/json"
	"log"

	"tablemenu/internal/domain"

	"github.com/segmentio/kafka-go"
)

var knownActivityTypes = map[string]bool{
	domain.ActivityItemCreated: true,
	domain.ActivityItemUpdated: true,
	domain.ActivityItemDeleted: true,
	domain.ActivityOrderPlaced: true,
	domain.ActivityQRGenerated: true,
	domain.ActivityLogin:       true,
	domain.ActivityLogout:      true,
}

// ActivityDispatcher consumes activity events from the broker and writes the
// append-only activity log. Keeping the write here decouples mutation paths
// from logging side effects.
type ActivityDispatcher struct {
	Reader *kafka.Reader
	Logs   LogRepository
}

func NewActivityDispatcher(reader *kafka.Reader, logs LogRepository) *ActivityDispatcher {
	return &ActivityDispatcher{Reader: reader, Logs: logs}
}

func (d *ActivityDispatcher) Start(ctx context.Context) {
	log.Println("Starting activity dispatcher...")
	for {
		message, err := d.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading activity message: %v", err)
			continue
		}

		var event domain.ActivityEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling activity message: %v", err)
			continue
		}

		d.Process(event)
	}
}

// Process writes one event to the activity log. Unknown event types are
// dropped.
func (d *ActivityDispatcher) Process(event domain.ActivityEvent) {
	if !knownActivityTypes[event.Type] {
		return
	}

	entry := domain.ActivityLog{
		ActivityType: event.Type,
		ManagerID:    event.ManagerID,
		Details:      event.Details,
		CreatedAt:    event.Timestamp,
	}
	if entry.Details == nil {
		entry.Details = map[string]string{}
	}
	if err := d.Logs.InsertActivityLog(&entry); err != nil {
		log.Printf("Error writing activity log for %s: %v", event.Type, err)
	}
}

// StorePublisher writes activity rows synchronously. It is the fallback when
// no broker is configured, behind the same publisher interface.
type StorePublisher struct {
	Logs LogRepository
}

func NewStorePublisher(logs LogRepository) *StorePublisher {
	return &StorePublisher{Logs: logs}
}

func (p *StorePublisher) PublishActivity(ctx context.Context, event domain.ActivityEvent) error {
	if !knownActivityTypes[event.Type] {
		return nil
	}
	entry := domain.ActivityLog{
		ActivityType: event.Type,
		ManagerID:    event.ManagerID,
		Details:      event.Details,
		CreatedAt:    event.Timestamp,
	}
	if entry.Details == nil {
		entry.Details = map[string]string{}
	}
	return p.Logs.InsertActivityLog(&entry)
}

var _ ActivityPublisher = (*StorePublisher)(nil)
