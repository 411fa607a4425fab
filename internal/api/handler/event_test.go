package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-event-registration/internal/domain/event"
	"github.com/sanosuguru/go-event-registration/internal/domain/registration"
	"github.com/sanosuguru/go-event-registration/internal/pkg/clock"
)

// イベント1（3/15）と2（4/20）の間の時刻
var eventTestNow = time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

func newTestEventHandler(catalog CatalogInterface, registrar RegistrarInterface) *EventHandler {
	return NewEventHandler(catalog, registrar, clock.NewFixed(eventTestNow))
}

func testEvents() []event.Event {
	return []event.Event{
		event.NewEvent(1, "Tech Conference 2025", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), "San Francisco", "年次カンファレンス"),
		event.NewEvent(2, "Music Festival", time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC), "Austin", "野外フェス"),
	}
}

func TestEventHandler_List(t *testing.T) {
	e := NewTestEcho()
	catalog := new(MockCatalog)
	registrar := new(MockRegistrar)
	catalog.On("ListEvents").Return(testEvents())
	registrar.On("GetEventRegistrationCount", 1).Return(3)
	registrar.On("GetEventRegistrationCount", 2).Return(0)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := newTestEventHandler(catalog, registrar).List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []EventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, 1, resp[0].ID)
	assert.Equal(t, "2025-03-15", resp[0].Date)
	assert.Equal(t, 3, resp[0].RegistrationCount)
	assert.False(t, resp[0].Upcoming)
	assert.Equal(t, "Music Festival", resp[1].Name)
	assert.Equal(t, 0, resp[1].RegistrationCount)
	assert.True(t, resp[1].Upcoming)

	catalog.AssertExpectations(t)
	registrar.AssertExpectations(t)
}

func TestEventHandler_GetByID(t *testing.T) {
	e := NewTestEcho()

	t.Run("存在するイベントを返す", func(t *testing.T) {
		catalog := new(MockCatalog)
		registrar := new(MockRegistrar)
		catalog.On("GetEvent", 2).Return(testEvents()[1], true)
		registrar.On("GetEventRegistrationCount", 2).Return(5)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/events/:id")
		c.SetParamNames("id")
		c.SetParamValues("2")

		err := newTestEventHandler(catalog, registrar).GetByID(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		var resp EventResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.ID)
		assert.Equal(t, "Austin", resp.Location)
		assert.Equal(t, 5, resp.RegistrationCount)
		assert.True(t, resp.Upcoming)
	})

	t.Run("存在しないイベントはErrEventNotFound", func(t *testing.T) {
		catalog := new(MockCatalog)
		catalog.On("GetEvent", 99).Return(event.Event{}, false)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("99")

		err := newTestEventHandler(catalog, new(MockRegistrar)).GetByID(c)

		assert.ErrorIs(t, err, event.ErrEventNotFound)
	})

	t.Run("不正なIDはErrInvalidID", func(t *testing.T) {
		for _, raw := range []string{"abc", "0", "-1"} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(raw)

			err := newTestEventHandler(new(MockCatalog), new(MockRegistrar)).GetByID(c)

			assert.ErrorIs(t, err, event.ErrInvalidID, raw)
		}
	})
}

func TestEventHandler_Registrations(t *testing.T) {
	e := NewTestEcho()
	at := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	t.Run("イベントの登録一覧を返す", func(t *testing.T) {
		catalog := new(MockCatalog)
		registrar := new(MockRegistrar)
		catalog.On("EventExists", 1).Return(true)
		registrar.On("GetEventRegistrations", 1).Return([]registration.Registration{
			{ID: 2, EventID: 1, FullName: "佐藤 花子", Email: "hanako@example.com", NumberOfAttendees: 2, RegisteredAt: at.Add(time.Minute)},
			{ID: 1, EventID: 1, FullName: "山田 太郎", Email: "taro@example.com", NumberOfAttendees: 1, RegisteredAt: at},
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("1")

		err := newTestEventHandler(catalog, registrar).Registrations(c)

		require.NoError(t, err)
		var resp []RegistrationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, 2, resp[0].ID)
		assert.Equal(t, "taro@example.com", resp[1].Email)
		assert.True(t, resp[1].RegisteredAt.Equal(at))
	})

	t.Run("登録がない場合は空配列", func(t *testing.T) {
		catalog := new(MockCatalog)
		registrar := new(MockRegistrar)
		catalog.On("EventExists", 3).Return(true)
		registrar.On("GetEventRegistrations", 3).Return([]registration.Registration{})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("3")

		err := newTestEventHandler(catalog, registrar).Registrations(c)

		require.NoError(t, err)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("存在しないイベント", func(t *testing.T) {
		catalog := new(MockCatalog)
		catalog.On("EventExists", 42).Return(false)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("42")

		err := newTestEventHandler(catalog, new(MockRegistrar)).Registrations(c)

		assert.ErrorIs(t, err, event.ErrEventNotFound)
	})
}
