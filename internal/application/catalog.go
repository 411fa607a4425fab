package application

import (
	"github.com/sanosuguru/go-event-registration/internal/domain/event"
)

// Catalog はシード済みのイベントを保持する読み取り専用のストア
type Catalog struct {
	events []event.Event
}

func NewCatalog(events []event.Event) *Catalog {
	seeded := make([]event.Event, len(events))
	copy(seeded, events)
	return &Catalog{events: seeded}
}

func NewDefaultCatalog() *Catalog {
	return NewCatalog(event.Seed())
}

func (c *Catalog) ListEvents() []event.Event {
	events := make([]event.Event, len(c.events))
	copy(events, c.events)
	return events
}

// GetEvent は該当イベントがなければ false を返す
func (c *Catalog) GetEvent(id int) (event.Event, bool) {
	for _, e := range c.events {
		if e.ID == id {
			return e, true
		}
	}
	return event.Event{}, false
}

func (c *Catalog) EventExists(id int) bool {
	_, ok := c.GetEvent(id)
	return ok
}
