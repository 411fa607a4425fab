package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-registration/internal/domain/session"
)

// SessionHandler はリクエストに紐づくセッションを扱う
// セッションは SessionMiddleware がコンテキストに設定する
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

type SessionResponse struct {
	ID                 string    `json:"id"`
	FirstVisit         time.Time `json:"first_visit"`
	LastVisit          time.Time `json:"last_visit"`
	TotalVisits        int       `json:"total_visits" example:"3"`
	RegisteredEventIDs []int     `json:"registered_event_ids"`
}

type SessionStatsResponse struct {
	FirstVisit  time.Time `json:"first_visit"`
	LastVisit   time.Time `json:"last_visit"`
	TotalVisits int       `json:"total_visits" example:"3"`
}

type SessionEventsResponse struct {
	EventIDs []int `json:"event_ids"`
}

type SessionEventCheckResponse struct {
	EventID    int  `json:"event_id"`
	Registered bool `json:"registered"`
}

func toSessionResponse(s session.Session) SessionResponse {
	return SessionResponse{
		ID:                 s.ID,
		FirstVisit:         s.FirstVisit,
		LastVisit:          s.LastVisit,
		TotalVisits:        s.TotalVisits,
		RegisteredEventIDs: s.RegisteredEventIDs,
	}
}

// Get godoc
// @Summary セッションを取得
// @Description セッションを取得し、訪問として記録します
// @Tags session
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	tracker, err := requireSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(tracker.GetSession()))
}

// Stats godoc
// @Summary セッションの訪問統計を取得
// @Description 訪問回数は変更しません
// @Tags session
// @Produce json
// @Success 200 {object} SessionStatsResponse
// @Router /session/stats [get]
func (h *SessionHandler) Stats(c echo.Context) error {
	tracker, err := requireSession(c)
	if err != nil {
		return err
	}
	st := tracker.GetSessionStats()
	return c.JSON(http.StatusOK, SessionStatsResponse{
		FirstVisit:  st.FirstVisit,
		LastVisit:   st.LastVisit,
		TotalVisits: st.TotalVisits,
	})
}

// RegisteredEvents godoc
// @Summary セッションで登録したイベントID一覧
// @Tags session
// @Produce json
// @Success 200 {object} SessionEventsResponse
// @Router /session/events [get]
func (h *SessionHandler) RegisteredEvents(c echo.Context) error {
	tracker, err := requireSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SessionEventsResponse{EventIDs: tracker.GetRegisteredEventIDs()})
}

// IsRegistered godoc
// @Summary セッションでイベントを登録済みか確認
// @Tags session
// @Produce json
// @Param id path int true "イベントID"
// @Success 200 {object} SessionEventCheckResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /session/events/{id} [get]
func (h *SessionHandler) IsRegistered(c echo.Context) error {
	id, err := parseEventID(c.Param("id"))
	if err != nil {
		return err
	}
	tracker, err := requireSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SessionEventCheckResponse{
		EventID:    id,
		Registered: tracker.IsEventRegistered(id),
	})
}

// Clear godoc
// @Summary セッションを破棄
// @Description 次のアクセスで新しいセッションが作成されます
// @Tags session
// @Success 204
// @Router /session [delete]
func (h *SessionHandler) Clear(c echo.Context) error {
	tracker, err := requireSession(c)
	if err != nil {
		return err
	}
	tracker.ClearSession()
	return c.NoContent(http.StatusNoContent)
}

func requireSession(c echo.Context) (SessionTrackerInterface, error) {
	tracker, ok := sessionTracker(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "セッションが初期化されていません")
	}
	return tracker, nil
}
