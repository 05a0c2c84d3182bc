package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"

	"github.com/nfrund/orderdesk/internal/backend"
	"github.com/nfrund/orderdesk/internal/config"
	"github.com/nfrund/orderdesk/internal/dashboard"
	"github.com/nfrund/orderdesk/internal/handlers"
	"github.com/nfrund/orderdesk/internal/messages"
	"github.com/nfrund/orderdesk/internal/middleware"
	"github.com/nfrund/orderdesk/internal/rendering"
	ordersession "github.com/nfrund/orderdesk/internal/session"
)

// Server holds the dependencies for the console's HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg *config.Config

	console    *handlers.ConsoleHandler
	controller *dashboard.Controller // nil when each browser has its own session
	redis      redis.UniversalClient
}

// Option customizes how New builds the server.
type Option func(*options)

type options struct {
	fs afero.Fs
}

// WithFs sets the filesystem used by the file session backend.
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// New wires the console from cfg.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	o := options{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(&o)
	}

	client, err := backend.NewClient(cfg.BackendURL, backend.WithTimeout(cfg.BackendTimeout))
	if err != nil {
		return nil, fmt.Errorf("create backend client: %w", err)
	}
	auth := backend.NewAuthGateway(client)
	orders := backend.NewOrderGateway(client)

	lang := messages.Match(cfg.Locale).String()
	printer := messages.Printer(lang)
	ctrlOpts := []dashboard.Option{
		dashboard.WithPrinter(printer),
		dashboard.WithObserver(logTransition),
	}

	s := &Server{Cfg: cfg}

	var controllers handlers.ControllerFunc
	if cfg.Session.Backend == config.SessionBackendCookie {
		controllers = func(c echo.Context) *dashboard.Controller {
			return dashboard.New(ordersession.NewCookieStore(c), auth, orders, ctrlOpts...)
		}
	} else {
		store, err := s.sharedStore(cfg, o.fs)
		if err != nil {
			return nil, err
		}
		s.controller = dashboard.New(store, auth, orders, ctrlOpts...)
		controllers = handlers.SharedController(s.controller)
	}
	s.console = handlers.NewConsoleHandler(controllers, printer, lang)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	cookieStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(cookieStore))
	e.Renderer = rendering.NewUniversalRenderer()
	s.E = e

	slog.Info("Console configured",
		"backend", client.BaseURL(),
		"session_backend", string(cfg.Session.Backend),
		"locale", lang,
	)
	return s, nil
}

// sharedStore builds the process-wide session store for file, memory and
// redis backends.
func (s *Server) sharedStore(cfg *config.Config, fs afero.Fs) (ordersession.Store, error) {
	switch cfg.Session.Backend {
	case config.SessionBackendMemory:
		return ordersession.NewMemoryStore(), nil
	case config.SessionBackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		s.redis = client
		return ordersession.NewRedisStoreWithKey(client, cfg.Session.RedisKey), nil
	default:
		return ordersession.NewFileStore(fs, cfg.Session.File), nil
	}
}

// Restore runs the startup restore of the shared session, if any.
func (s *Server) Restore(ctx context.Context) dashboard.State {
	if s.controller == nil {
		return dashboard.State{Status: dashboard.StatusLoggedOut}
	}
	return s.controller.Start(ctx)
}

// Controller returns the shared controller, or nil in cookie mode.
func (s *Server) Controller() *dashboard.Controller {
	return s.controller
}

// Close releases external connections.
func (s *Server) Close() error {
	if s.redis != nil {
		return s.redis.Close()
	}
	return nil
}

func logTransition(st dashboard.State) {
	attrs := []any{"status", st.Status.String(), "orders", len(st.Orders)}
	if st.Error != nil {
		attrs = append(attrs, "error", st.Error.Kind)
	}
	slog.Debug("Dashboard state changed", attrs...)
}
