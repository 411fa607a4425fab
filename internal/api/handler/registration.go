package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-registration/internal/domain/event"
	"github.com/sanosuguru/go-event-registration/internal/domain/registration"
	"github.com/sanosuguru/go-event-registration/internal/pkg/logger"
	"github.com/sanosuguru/go-event-registration/internal/pkg/metrics"
)

type RegistrationHandler struct {
	catalog   CatalogInterface
	registrar RegistrarInterface
	metrics   *metrics.Metrics
}

// NewRegistrationHandler は登録ハンドラーを作成する（m は nil 可）
func NewRegistrationHandler(catalog CatalogInterface, registrar RegistrarInterface, m *metrics.Metrics) *RegistrationHandler {
	return &RegistrationHandler{catalog: catalog, registrar: registrar, metrics: m}
}

type CreateRegistrationRequest struct {
	EventID           int    `json:"event_id" validate:"required,gt=0" example:"1"`
	FullName          string `json:"full_name" validate:"required" example:"山田 太郎"`
	Email             string `json:"email" validate:"required,email" example:"taro@example.com"`
	Phone             string `json:"phone" example:"090-1234-5678"`
	NumberOfAttendees int    `json:"number_of_attendees" validate:"gte=1,lte=10" example:"2"`
	Comments          string `json:"comments" validate:"max=500" example:"車椅子席を希望します"`
}

type RegistrationResponse struct {
	ID                int       `json:"id" example:"1"`
	EventID           int       `json:"event_id" example:"1"`
	FullName          string    `json:"full_name" example:"山田 太郎"`
	Email             string    `json:"email" example:"taro@example.com"`
	Phone             string    `json:"phone" example:"090-1234-5678"`
	NumberOfAttendees int       `json:"number_of_attendees" example:"2"`
	Comments          string    `json:"comments" example:"車椅子席を希望します"`
	RegisteredAt      time.Time `json:"registered_at"`
}

type RegistrationCheckResponse struct {
	Email      string `json:"email"`
	EventID    int    `json:"event_id"`
	Registered bool   `json:"registered"`
}

type EventRegistrationCount struct {
	EventID int `json:"event_id"`
	Count   int `json:"count"`
}

type RegistrationStatsResponse struct {
	Total  int                      `json:"total"`
	Events []EventRegistrationCount `json:"events"`
}

func toRegistrationResponse(r registration.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID: r.ID, EventID: r.EventID, FullName: r.FullName,
		Email: r.Email, Phone: r.Phone, NumberOfAttendees: r.NumberOfAttendees,
		Comments: r.Comments, RegisteredAt: r.RegisteredAt,
	}
}

func toRegistrationResponses(regs []registration.Registration) []RegistrationResponse {
	resp := make([]RegistrationResponse, len(regs))
	for i, r := range regs {
		resp[i] = toRegistrationResponse(r)
	}
	return resp
}

// Create godoc
// @Summary イベントに登録
// @Description イベントへの参加登録を行い、セッションに登録済みイベントとして記録します
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body CreateRegistrationRequest true "登録情報"
// @Success 201 {object} RegistrationResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse "イベントが存在しない"
// @Failure 409 {object} api.ErrorResponse "登録済み"
// @Router /registrations [post]
func (h *RegistrationHandler) Create(c echo.Context) error {
	var req CreateRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "リクエストの形式が不正です")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// イベントの存在確認と重複登録の確認はここで行う（Registrar は検証しない）
	if !h.catalog.EventExists(req.EventID) {
		h.metrics.ObserveRegistration(metrics.RegistrationEventNotFound, 0)
		return event.ErrEventNotFound
	}
	if h.registrar.IsUserRegistered(req.Email, req.EventID) {
		h.metrics.ObserveRegistration(metrics.RegistrationConflict, 0)
		return registration.ErrAlreadyRegistered
	}

	start := time.Now()
	r, err := h.registrar.RegisterForEvent(c.Request().Context(), registration.Draft{
		EventID:           req.EventID,
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		NumberOfAttendees: req.NumberOfAttendees,
		Comments:          req.Comments,
	})
	if err != nil {
		h.metrics.ObserveRegistration(metrics.RegistrationError, 0)
		return err
	}
	h.metrics.ObserveRegistration(metrics.RegistrationSuccess, time.Since(start).Seconds())

	if tracker, ok := sessionTracker(c); ok {
		tracker.AddRegisteredEvent(r.EventID)
	} else {
		logger.FromContext(c.Request().Context()).Warn("セッションが見つからないため登録済みイベントを記録できません",
			zap.Int("registration_id", r.ID),
		)
	}

	return c.JSON(http.StatusCreated, toRegistrationResponse(*r))
}

// ListByUser godoc
// @Summary メールアドレスで登録一覧を取得
// @Description 大文字小文字を区別せずに一致する登録を新しい順に返します
// @Tags registrations
// @Produce json
// @Param email query string true "メールアドレス"
// @Success 200 {array} RegistrationResponse
// @Router /registrations [get]
func (h *RegistrationHandler) ListByUser(c echo.Context) error {
	regs := h.registrar.GetUserRegistrations(c.QueryParam("email"))
	return c.JSON(http.StatusOK, toRegistrationResponses(regs))
}

// Check godoc
// @Summary 登録済みか確認
// @Tags registrations
// @Produce json
// @Param email query string true "メールアドレス"
// @Param event_id query int true "イベントID"
// @Success 200 {object} RegistrationCheckResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /registrations/check [get]
func (h *RegistrationHandler) Check(c echo.Context) error {
	eventID, err := parseEventID(c.QueryParam("event_id"))
	if err != nil {
		return err
	}
	email := c.QueryParam("email")
	return c.JSON(http.StatusOK, RegistrationCheckResponse{
		Email:      email,
		EventID:    eventID,
		Registered: h.registrar.IsUserRegistered(email, eventID),
	})
}

// Stats godoc
// @Summary 登録件数を取得
// @Description 総登録数とイベントごとの登録数を返します
// @Tags registrations
// @Produce json
// @Success 200 {object} RegistrationStatsResponse
// @Router /registrations/stats [get]
func (h *RegistrationHandler) Stats(c echo.Context) error {
	events := h.catalog.ListEvents()
	counts := make([]EventRegistrationCount, len(events))
	for i, e := range events {
		counts[i] = EventRegistrationCount{EventID: e.ID, Count: h.registrar.GetEventRegistrationCount(e.ID)}
	}
	return c.JSON(http.StatusOK, RegistrationStatsResponse{
		Total:  h.registrar.GetTotalRegistrations(),
		Events: counts,
	})
}
