package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sanosuguru/go-event-registration/internal/domain/event"
	"github.com/sanosuguru/go-event-registration/internal/domain/registration"
)

// MockCatalog はCatalogInterfaceのモック
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) ListEvents() []event.Event {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]event.Event)
}

func (m *MockCatalog) GetEvent(id int) (event.Event, bool) {
	args := m.Called(id)
	return args.Get(0).(event.Event), args.Bool(1)
}

func (m *MockCatalog) EventExists(id int) bool {
	args := m.Called(id)
	return args.Bool(0)
}

// MockRegistrar はRegistrarInterfaceのモック
type MockRegistrar struct {
	mock.Mock
}

func (m *MockRegistrar) RegisterForEvent(ctx context.Context, d registration.Draft) (*registration.Registration, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registration.Registration), args.Error(1)
}

func (m *MockRegistrar) GetUserRegistrations(email string) []registration.Registration {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]registration.Registration)
}

func (m *MockRegistrar) GetEventRegistrations(eventID int) []registration.Registration {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]registration.Registration)
}

func (m *MockRegistrar) IsUserRegistered(email string, eventID int) bool {
	args := m.Called(email, eventID)
	return args.Bool(0)
}

func (m *MockRegistrar) GetTotalRegistrations() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockRegistrar) GetEventRegistrationCount(eventID int) int {
	args := m.Called(eventID)
	return args.Int(0)
}
