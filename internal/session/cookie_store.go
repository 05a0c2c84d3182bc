package session

import (
	"log/slog"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/orderdesk/internal/domain"
)

const (
	// CookieName is the gorilla session that carries the token.
	CookieName = "orderdesk-session"
	tokenKey   = "token"
)

// CookieStore keeps the token in the browser's session cookie. It is bound
// to a single request; the echo-contrib session middleware must be installed.
type CookieStore struct {
	c echo.Context
}

// NewCookieStore binds a CookieStore to the request in c.
func NewCookieStore(c echo.Context) *CookieStore {
	return &CookieStore{c: c}
}

func (s *CookieStore) Load() (domain.Token, bool) {
	sess, err := session.Get(CookieName, s.c)
	if err != nil {
		slog.Warn("Failed to decode session cookie", "error", err)
		return "", false
	}
	val, ok := sess.Values[tokenKey].(string)
	if !ok || val == "" {
		return "", false
	}
	return domain.Token(val), true
}

func (s *CookieStore) Save(token domain.Token) {
	sess, err := session.Get(CookieName, s.c)
	if err != nil {
		// A cookie that fails to decode still yields a fresh session we can overwrite.
		slog.Warn("Replacing undecodable session cookie", "error", err)
	}
	if sess == nil {
		return
	}
	sess.Values[tokenKey] = string(token)
	if err := sess.Save(s.c.Request(), s.c.Response()); err != nil {
		slog.Error("Failed to save session cookie", "error", err)
	}
}

func (s *CookieStore) Clear() {
	sess, err := session.Get(CookieName, s.c)
	if sess == nil {
		slog.Warn("Failed to decode session cookie", "error", err)
		return
	}
	delete(sess.Values, tokenKey)
	sess.Options.MaxAge = -1
	if err := sess.Save(s.c.Request(), s.c.Response()); err != nil {
		slog.Error("Failed to clear session cookie", "error", err)
	}
}
