package http_test

import (
	"bytes"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	adapter "orders/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggerLogsMethodPathAndStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	e.Use(adapter.RequestLogger(logger))
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(nethttp.StatusOK, "Healthy")
	})

	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusOK, rec.Code)
	logged := buf.String()
	assert.Contains(t, logged, "method=GET")
	assert.Contains(t, logged, "path=/health")
	assert.Contains(t, logged, "status=200")
}
