package handler

import (
	"context"

	"github.com/sanosuguru/go-event-registration/internal/domain/event"
	"github.com/sanosuguru/go-event-registration/internal/domain/registration"
	"github.com/sanosuguru/go-event-registration/internal/domain/session"
)

// CatalogInterface はイベントカタログのインターフェース
type CatalogInterface interface {
	ListEvents() []event.Event
	GetEvent(id int) (event.Event, bool)
	EventExists(id int) bool
}

// RegistrarInterface は登録サービスのインターフェース
type RegistrarInterface interface {
	RegisterForEvent(ctx context.Context, d registration.Draft) (*registration.Registration, error)
	GetUserRegistrations(email string) []registration.Registration
	GetEventRegistrations(eventID int) []registration.Registration
	IsUserRegistered(email string, eventID int) bool
	GetTotalRegistrations() int
	GetEventRegistrationCount(eventID int) int
}

// SessionTrackerInterface はリクエストに紐づくセッションのインターフェース
type SessionTrackerInterface interface {
	GetSession() session.Session
	AddRegisteredEvent(eventID int)
	IsEventRegistered(eventID int) bool
	GetRegisteredEventIDs() []int
	GetSessionStats() session.Stats
	ClearSession()
}
