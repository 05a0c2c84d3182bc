package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type ctxKey struct{}

// Logger stores a per-request slog.Logger on the request context. Records
// carry the request ID, method and path, so console actions can be matched
// with the access log and with the backend calls they trigger.
//
// The ID comes from echo's RequestID middleware when it runs first, otherwise
// from an X-Request-ID header sent by a proxy in front of the console.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		id := c.Response().Header().Get(echo.HeaderXRequestID)
		if id == "" {
			id = req.Header.Get(echo.HeaderXRequestID)
		}

		l := slog.Default().With(
			"request_id", id,
			"method", req.Method,
			"path", req.URL.Path,
		)
		c.SetRequest(req.WithContext(WithLogger(req.Context(), l)))
		return next(c)
	}
}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored by Logger, falling back to
// slog.Default outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
