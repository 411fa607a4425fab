package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-registration/internal/api"
	"github.com/sanosuguru/go-event-registration/internal/domain/event"
)

// parseEventID はパスパラメータからイベントIDを取り出す
func parseEventID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, event.ErrInvalidID
	}
	return id, nil
}

// sessionTracker はミドルウェアが設定した SessionTracker を取り出す
func sessionTracker(c echo.Context) (SessionTrackerInterface, bool) {
	t, ok := c.Get(api.SessionTrackerContextKey).(SessionTrackerInterface)
	return t, ok
}
