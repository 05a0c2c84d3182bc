package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/message"

	"github.com/nfrund/orderdesk/internal/dashboard"
	"github.com/nfrund/orderdesk/internal/domain"
	"github.com/nfrund/orderdesk/internal/messages"
	"github.com/nfrund/orderdesk/internal/middleware"
	"github.com/nfrund/orderdesk/internal/view"
)

// ControllerFunc returns the dashboard controller that serves the request in c.
// A shared controller gives one console state for the whole process; a
// per-request controller bound to the session cookie gives one per browser.
type ControllerFunc func(c echo.Context) *dashboard.Controller

// SharedController serves every request from ctrl.
func SharedController(ctrl *dashboard.Controller) ControllerFunc {
	return func(echo.Context) *dashboard.Controller {
		return ctrl
	}
}

// ConsoleHandler serves the login and orders screens.
type ConsoleHandler struct {
	controllers ControllerFunc
	printer     *message.Printer
	lang        string
}

// NewConsoleHandler creates a new ConsoleHandler.
func NewConsoleHandler(controllers ControllerFunc, printer *message.Printer, lang string) *ConsoleHandler {
	return &ConsoleHandler{
		controllers: controllers,
		printer:     printer,
		lang:        lang,
	}
}

// IndexGet renders the current state (GET /). The first visit served by a
// controller restores the persisted session; later visits show the snapshot
// without fetching again.
func (h *ConsoleHandler) IndexGet(c echo.Context) error {
	st := h.controllers(c).Start(c.Request().Context())
	return h.render(c, st)
}

// LoginPost handles the password form (POST /login) and renders the result.
// Errors are part of the rendered state, so the response is always 200.
func (h *ConsoleHandler) LoginPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	st := h.controllers(c).Login(ctx, c.FormValue("password"))
	if st.Error != nil {
		logger.Warn("Login attempt finished with an error", "status", st.Status.String(), "error", st.Error.Kind)
	} else {
		logger.Info("Logged in", "orders", len(st.Orders))
	}
	return h.render(c, st)
}

// LoginThrottled answers a login refused by the rate limiter. The password
// never reaches the backend and the console state is left alone; the login
// form is shown again with the refusal, with 200 so htmx swaps it in.
func (h *ConsoleHandler) LoginThrottled(c echo.Context) error {
	middleware.FromContext(c.Request().Context()).Warn("Login attempt rate limited", "ip", c.RealIP())
	return h.render(c, dashboard.State{
		Status: dashboard.StatusLoggedOut,
		Error: &dashboard.ErrorState{
			Kind:    domain.ErrTooManyAttempts,
			Message: h.printer.Sprintf(messages.TooManyAttempts),
		},
	})
}

// LogoutPost ends the session (POST /logout) and redirects to the login screen.
func (h *ConsoleHandler) LogoutPost(c echo.Context) error {
	h.controllers(c).Logout()
	middleware.FromContext(c.Request().Context()).Info("Logged out")
	return c.Redirect(http.StatusSeeOther, "/")
}

// HealthGet reports liveness (GET /health).
func (h *ConsoleHandler) HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *ConsoleHandler) render(c echo.Context, st dashboard.State) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.Render(http.StatusOK, "", view.Page(st, h.printer, h.lang))
}
