package tests

import (
	"context"
	"testing"
	"time"

	"tablemenu/internal/domain"
	"tablemenu/internal/mocks"
	"tablemenu/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestActivityDispatcher_Process(t *testing.T) {
	tests := []struct {
		name       string
		event      domain.ActivityEvent
		wantInsert bool
	}{
		{
			name: "known type is written",
			event: domain.ActivityEvent{
				Type:      domain.ActivityOrderPlaced,
				Details:   map[string]string{"order_id": "1"},
				Timestamp: time.Now(),
			},
			wantInsert: true,
		},
		{
			name: "nil details normalized to empty map",
			event: domain.ActivityEvent{
				Type:      domain.ActivityLogin,
				Timestamp: time.Now(),
			},
			wantInsert: true,
		},
		{
			name:  "unknown type is dropped",
			event: domain.ActivityEvent{Type: "rating_posted"},
		},
		{
			name:  "empty type is dropped",
			event: domain.ActivityEvent{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockLogs := mocks.NewLogRepository(t)
			dispatcher := service.NewActivityDispatcher(nil, mockLogs)

			if testCase.wantInsert {
				mockLogs.On("InsertActivityLog", mock.MatchedBy(func(entry *domain.ActivityLog) bool {
					return entry.ActivityType == testCase.event.Type && entry.Details != nil
				})).Return(nil).Once()
			}

			dispatcher.Process(testCase.event)
		})
	}
}

func TestStorePublisher_WritesInline(t *testing.T) {
	mockLogs := mocks.NewLogRepository(t)
	publisher := service.NewStorePublisher(mockLogs)

	mockLogs.On("InsertActivityLog", mock.MatchedBy(func(entry *domain.ActivityLog) bool {
		return entry.ActivityType == domain.ActivityQRGenerated &&
			entry.Details["table_number"] == "5"
	})).Return(nil).Once()

	event := domain.NewActivityEvent(domain.ActivityQRGenerated, domain.ManagerActor(1), map[string]string{
		"table_number": "5",
	})
	assert.NoError(t, publisher.PublishActivity(context.Background(), event))
}

func TestStorePublisher_DropsUnknownTypes(t *testing.T) {
	mockLogs := mocks.NewLogRepository(t)
	publisher := service.NewStorePublisher(mockLogs)

	event := domain.NewActivityEvent("mystery", domain.SystemActor, nil)
	assert.NoError(t, publisher.PublishActivity(context.Background(), event))
	mockLogs.AssertNotCalled(t, "InsertActivityLog", mock.Anything)
}
