package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-event-registration/internal/config"
)

func serveMetrics(t *testing.T, cfg config.MetricsConfig, authorization string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := MetricsBasicAuth(cfg)(func(c echo.Context) error {
		return c.String(http.StatusOK, "metrics")
	})
	return rec, handler(c)
}

func basic(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestMetricsBasicAuth_NoCredentials(t *testing.T) {
	// 認証設定がない場合はスキップ
	rec, err := serveMetrics(t, config.MetricsConfig{}, "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "metrics", rec.Body.String())
}

func TestMetricsBasicAuth_PartialCredentials(t *testing.T) {
	// ユーザーのみの設定は無効扱い
	rec, err := serveMetrics(t, config.MetricsConfig{User: "testuser"}, "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsBasicAuth_ValidCredentials(t *testing.T) {
	cfg := config.MetricsConfig{User: "testuser", Password: "testpass"}

	rec, err := serveMetrics(t, cfg, basic("testuser", "testpass"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsBasicAuth_InvalidCredentials(t *testing.T) {
	cfg := config.MetricsConfig{User: "testuser", Password: "testpass"}

	_, err := serveMetrics(t, cfg, basic("wronguser", "wrongpass"))

	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestMetricsBasicAuth_NoAuthHeader(t *testing.T) {
	cfg := config.MetricsConfig{User: "testuser", Password: "testpass"}

	rec, err := serveMetrics(t, cfg, "")

	// Authorization ヘッダーがない場合は 401（WWW-Authenticate を返す）
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderWWWAuthenticate), "basic")
}
