package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/nfrund/orderdesk/internal/domain"
)

const loginPath = "/admin/login"

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token" validate:"required"`
}

// AuthGateway exchanges the admin password for a session token.
type AuthGateway struct {
	client *Client
}

// NewAuthGateway creates an AuthGateway on top of client.
func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// Login sends password to the backend and returns the issued token. Every
// failure is reported as domain.ErrAuthFailed.
func (g *AuthGateway) Login(ctx context.Context, password string) (domain.Token, error) {
	token, reqID, err := g.login(ctx, password)
	if err != nil {
		slog.DebugContext(ctx, "Login request failed", "request_id", reqID, "error", err)
		return "", domain.ErrAuthFailed
	}
	return token, nil
}

func (g *AuthGateway) login(ctx context.Context, password string) (domain.Token, string, error) {
	body, err := json.Marshal(loginRequest{Password: password})
	if err != nil {
		return "", "", fmt.Errorf("encode login request: %w", err)
	}

	req, reqID, err := g.client.newRequest(ctx, http.MethodPost, loginPath, bytes.NewReader(body))
	if err != nil {
		return "", "", fmt.Errorf("build login request: %w", err)
	}

	resp, err := g.client.http.Do(req)
	if err != nil {
		return "", reqID, fmt.Errorf("send login request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", reqID, err
	}

	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", reqID, fmt.Errorf("decode login response: %w", err)
	}
	if err := g.client.validate.Struct(out); err != nil {
		return "", reqID, fmt.Errorf("invalid login response: %w", err)
	}
	return domain.Token(out.Token), reqID, nil
}
