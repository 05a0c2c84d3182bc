package server

import (
	"github.com/nfrund/orderdesk/internal/middleware"
)

// RegisterRoutes sets up all the console routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(middleware.LoginAttemptsPerMinute, s.console.LoginThrottled)

	s.E.GET("/", s.console.IndexGet)
	s.E.POST("/login", s.console.LoginPost, rateLimiter)
	s.E.POST("/logout", s.console.LogoutPost)
	s.E.GET("/health", s.console.HealthGet)
}
