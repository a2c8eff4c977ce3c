package entity

import "time"

// DomainEvent is a record of a significant state change. Aggregates collect
// events while mutating; the application layer pulls and dispatches them
// only after a successful persist.
type DomainEvent interface {
	EventName() string
}

// Meta carries the shared identity, timestamps and event bookkeeping every
// aggregate embeds.
type Meta struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	events []DomainEvent
}

func newMeta(id string, now time.Time) Meta {
	return Meta{ID: id, CreatedAt: now, UpdatedAt: now}
}

func (m *Meta) record(ev DomainEvent) {
	m.events = append(m.events, ev)
}

func (m *Meta) touch() {
	m.UpdatedAt = time.Now().UTC()
}

// PullEvents returns the pending events and clears the buffer.
func (m *Meta) PullEvents() []DomainEvent {
	evs := m.events
	m.events = nil
	return evs
}
