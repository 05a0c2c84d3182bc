package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Start restores the shared session, runs the HTTP server and blocks until an
// interrupt or terminate signal, then shuts down gracefully.
func (s *Server) Start() error {
	st := s.Restore(context.Background())
	slog.Info("Session restored", "status", st.Status.String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.E.Start(s.Cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
	case <-waitForShutdown():
		slog.Info("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.E.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return s.Close()
}
