package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-registration/internal/domain/event"
	"github.com/sanosuguru/go-event-registration/internal/pkg/clock"
)

type EventHandler struct {
	catalog   CatalogInterface
	registrar RegistrarInterface
	clock     clock.Clock
}

// NewEventHandler はイベントハンドラーを作成する（clk は開催予定の判定に使う）
func NewEventHandler(catalog CatalogInterface, registrar RegistrarInterface, clk clock.Clock) *EventHandler {
	return &EventHandler{catalog: catalog, registrar: registrar, clock: clk}
}

type EventResponse struct {
	ID                int    `json:"id" example:"1"`
	Name              string `json:"name" example:"Tech Conference 2025"`
	Date              string `json:"date" example:"2025-03-15"`
	Location          string `json:"location" example:"San Francisco Convention Center"`
	Description       string `json:"description" example:"年次テックカンファレンス"`
	Upcoming          bool   `json:"upcoming" example:"true"`
	RegistrationCount int    `json:"registration_count" example:"12"`
}

func toEventResponse(e event.Event, registrationCount int, now time.Time) EventResponse {
	return EventResponse{
		ID:                e.ID,
		Name:              e.Name,
		Date:              e.FormattedDate(),
		Location:          e.Location,
		Description:       e.Description,
		Upcoming:          e.IsUpcoming(now),
		RegistrationCount: registrationCount,
	}
}

// List godoc
// @Summary イベント一覧を取得
// @Description シード順にすべてのイベントを返します
// @Tags events
// @Produce json
// @Success 200 {array} EventResponse
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	events := h.catalog.ListEvents()
	now := h.clock.Now()

	responses := make([]EventResponse, len(events))
	for i, e := range events {
		responses[i] = toEventResponse(e, h.registrar.GetEventRegistrationCount(e.ID), now)
	}
	return c.JSON(http.StatusOK, responses)
}

// GetByID godoc
// @Summary イベントを取得
// @Description 指定IDのイベントを取得します
// @Tags events
// @Produce json
// @Param id path int true "イベントID"
// @Success 200 {object} EventResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) GetByID(c echo.Context) error {
	id, err := parseEventID(c.Param("id"))
	if err != nil {
		return err
	}
	e, ok := h.catalog.GetEvent(id)
	if !ok {
		return event.ErrEventNotFound
	}
	return c.JSON(http.StatusOK, toEventResponse(e, h.registrar.GetEventRegistrationCount(id), h.clock.Now()))
}

// Registrations godoc
// @Summary イベントの登録一覧を取得
// @Description 指定イベントの登録を新しい順に返します
// @Tags events
// @Produce json
// @Param id path int true "イベントID"
// @Success 200 {array} RegistrationResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /events/{id}/registrations [get]
func (h *EventHandler) Registrations(c echo.Context) error {
	id, err := parseEventID(c.Param("id"))
	if err != nil {
		return err
	}
	if !h.catalog.EventExists(id) {
		return event.ErrEventNotFound
	}
	return c.JSON(http.StatusOK, toRegistrationResponses(h.registrar.GetEventRegistrations(id)))
}
