package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-registration/internal/pkg/clock"
)

// HealthHandler はヘルスチェックハンドラー
type HealthHandler struct {
	clock     clock.Clock
	startedAt time.Time
}

// NewHealthHandler はHealthHandlerを作成する
func NewHealthHandler(clk clock.Clock) *HealthHandler {
	return &HealthHandler{clock: clk, startedAt: clk.Now()}
}

// HealthResponse はヘルスチェックのレスポンス
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
}

// Check はヘルスチェックを行う
// @Summary ヘルスチェック
// @Description アプリケーションの健全性を確認する
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c echo.Context) error {
	now := h.clock.Now()
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: now.Format(time.RFC3339),
		Uptime:    now.Sub(h.startedAt).Truncate(time.Second).String(),
	})
}
