package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-registration/internal/domain/event"
	"github.com/sanosuguru/go-event-registration/internal/domain/registration"
	"github.com/sanosuguru/go-event-registration/internal/pkg/logger"
)

// ErrorResponse はエラーレスポンスの統一フォーマット
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

// CustomHTTPErrorHandler はカスタムエラーハンドラー
// ハンドラーから返されたドメインエラーもここでステータスコードに変換する
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, message := resolveError(err)
	log := logger.FromContext(c.Request().Context())

	// エラーログを出力（5xx エラーの場合）
	if code >= 500 {
		log.Error("サーバーエラー",
			zap.Int("status", code),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
	}

	var resp error
	if c.Request().Method == http.MethodHead {
		resp = c.NoContent(code)
	} else {
		resp = c.JSON(code, ErrorResponse{Error: message, Code: code})
	}
	if resp != nil {
		log.Error("エラーレスポンス送信失敗", zap.Error(resp))
	}
}

func resolveError(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if m, ok := he.Message.(string); ok {
			return he.Code, m
		}
		return he.Code, http.StatusText(he.Code)
	}

	switch {
	case errors.Is(err, event.ErrEventNotFound):
		return http.StatusNotFound, event.ErrEventNotFound.Error()
	case errors.Is(err, event.ErrInvalidID):
		return http.StatusBadRequest, event.ErrInvalidID.Error()
	case errors.Is(err, registration.ErrAlreadyRegistered):
		return http.StatusConflict, registration.ErrAlreadyRegistered.Error()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "リクエストが中断されました"
	}
	return http.StatusInternalServerError, "内部サーバーエラー"
}
