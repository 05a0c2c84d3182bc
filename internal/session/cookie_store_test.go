package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/orderdesk/internal/domain"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func newCookieEcho() *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	return e
}

func TestCookieStore_WithinRequest(t *testing.T) {
	e := newCookieEcho()
	e.GET("/", func(c echo.Context) error {
		assertStoreContract(t, NewCookieStore(c))
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCookieStore_AcrossRequests(t *testing.T) {
	e := newCookieEcho()
	e.POST("/save", func(c echo.Context) error {
		NewCookieStore(c).Save("from-cookie")
		return c.NoContent(http.StatusOK)
	})
	e.POST("/clear", func(c echo.Context) error {
		NewCookieStore(c).Clear()
		return c.NoContent(http.StatusOK)
	})
	e.GET("/load", func(c echo.Context) error {
		tok, ok := NewCookieStore(c).Load()
		if !ok {
			return c.String(http.StatusNotFound, "")
		}
		return c.String(http.StatusOK, string(tok))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/save", nil))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "save should set the session cookie")

	req := httptest.NewRequest(http.MethodGet, "/load", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(domain.Token("from-cookie")), rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/clear", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	cleared := rec.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.True(t, cleared[0].MaxAge < 0, "clear should expire the cookie")
}

func TestCookieStore_NoCookieIsNoSession(t *testing.T) {
	e := newCookieEcho()
	e.GET("/", func(c echo.Context) error {
		_, ok := NewCookieStore(c).Load()
		assert.False(t, ok)
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
