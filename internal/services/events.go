package services

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// Lifecycle event types, used as the AMQP message type.
const (
	EventUserRegistered = "user.registered"
	EventUserDeleted    = "user.deleted"
	EventErrandCreated  = "errand.created"
	EventErrandUpdated  = "errand.updated"
	EventErrandDeleted  = "errand.deleted"
)

// EventPublisher delivers encoded lifecycle events to a broker.
type EventPublisher interface {
	Publish(eventType string, body []byte) error
}

// Event is the payload published after every successful mutation.
type Event struct {
	Type       string    `json:"type"`
	ID         string    `json:"id"`
	UserID     string    `json:"userId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// eventEmitter publishes events on a best-effort basis: failures are
// logged and never reach the caller.
type eventEmitter struct {
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func newEventEmitter(publisher EventPublisher, logger *zap.Logger) eventEmitter {
	return eventEmitter{publisher: publisher, logger: logger, now: time.Now}
}

func (e eventEmitter) emit(eventType, id, userID string) {
	if e.publisher == nil {
		e.logger.Debug("event publisher not configured, skipping event", zap.String("event", eventType), zap.String("id", id))
		return
	}

	body, err := json.Marshal(Event{
		Type:       eventType,
		ID:         id,
		UserID:     userID,
		OccurredAt: e.now().UTC(),
	})
	if err != nil {
		e.logger.Warn("failed to encode event", zap.String("event", eventType), zap.Error(err))
		return
	}

	if err := e.publisher.Publish(eventType, body); err != nil {
		e.logger.Warn("failed to publish event", zap.String("event", eventType), zap.String("id", id), zap.Error(err))
	}
}
