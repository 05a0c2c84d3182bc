package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
)

func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	return &buf
}

func logHandler(c echo.Context) error {
	FromContext(c.Request().Context()).Info("handled")
	return c.NoContent(http.StatusOK)
}

func TestLogger(t *testing.T) {
	t.Run("uses the generated request ID", func(t *testing.T) {
		buf := captureDefault(t)

		e := echo.New()
		e.Use(echomw.RequestID())
		e.Use(Logger)
		e.POST("/login", logHandler)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

		reqID := rec.Header().Get(echo.HeaderXRequestID)
		assert.NotEmpty(t, reqID)
		assert.Contains(t, buf.String(), "request_id="+reqID)
		assert.Contains(t, buf.String(), "method=POST")
		assert.Contains(t, buf.String(), "path=/login")
	})

	t.Run("falls back to the incoming header", func(t *testing.T) {
		buf := captureDefault(t)

		e := echo.New()
		e.Use(Logger)
		e.GET("/", logHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRequestID, "proxy-42")
		e.ServeHTTP(httptest.NewRecorder(), req)

		assert.Contains(t, buf.String(), "request_id=proxy-42")
	})
}

func TestFromContext(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, l, FromContext(WithLogger(context.Background(), l)))
}
