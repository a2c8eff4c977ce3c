package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/lawbridge/lawbridge-backend/internal/domain/entity"
	"github.com/lawbridge/lawbridge-backend/pkg/helpers"
)

// EventDispatcher forwards domain events to the notification queue after a
// successful persist. Dispatch never runs before the commit so the queue
// never announces state that did not happen.
type EventDispatcher struct {
	Publisher *helpers.RabbitPublisher
	Logger    *logrus.Logger
}

func NewEventDispatcher(pub *helpers.RabbitPublisher, logger *logrus.Logger) *EventDispatcher {
	return &EventDispatcher{Publisher: pub, Logger: logger}
}

type eventEnvelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Dispatch publishes each event; failures are logged and swallowed because
// the state change already committed.
func (d *EventDispatcher) Dispatch(ctx context.Context, events []entity.DomainEvent) {
	if d == nil || len(events) == 0 {
		return
	}
	for _, ev := range events {
		if d.Logger != nil {
			d.Logger.WithField("event", ev.EventName()).Info("domain event")
		}
		if d.Publisher == nil {
			continue
		}
		if err := d.Publisher.PublishJSON(ctx, eventEnvelope{Event: ev.EventName(), Payload: ev}); err != nil && d.Logger != nil {
			d.Logger.WithError(err).WithField("event", ev.EventName()).Warn("event publish failed")
		}
	}
}
