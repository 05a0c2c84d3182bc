package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/nfrund/orderdesk/internal/domain"
)

const ordersPath = "/admin/orders"

// OrderGateway lists the orders held by the backend.
type OrderGateway struct {
	client *Client
}

// NewOrderGateway creates an OrderGateway on top of client.
func NewOrderGateway(client *Client) *OrderGateway {
	return &OrderGateway{client: client}
}

// FetchOrders returns the full order list in backend order, authenticated by
// token. Every failure is reported as domain.ErrFetchFailed.
func (g *OrderGateway) FetchOrders(ctx context.Context, token domain.Token) ([]domain.Order, error) {
	orders, reqID, err := g.fetch(ctx, token)
	if err != nil {
		slog.DebugContext(ctx, "Order request failed", "request_id", reqID, "error", err)
		return nil, domain.ErrFetchFailed
	}
	return orders, nil
}

// bearerClient wraps the shared HTTP client so that token is sent as
// "Authorization: Bearer <token>".
func (g *OrderGateway) bearerClient(token domain.Token) *http.Client {
	base := g.client.http
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: string(token),
				TokenType:   "Bearer",
			}),
			Base: base.Transport,
		},
		Timeout:       base.Timeout,
		CheckRedirect: base.CheckRedirect,
		Jar:           base.Jar,
	}
}

func (g *OrderGateway) fetch(ctx context.Context, token domain.Token) ([]domain.Order, string, error) {
	if token.IsZero() {
		return nil, "", errors.New("no session token")
	}

	req, reqID, err := g.client.newRequest(ctx, http.MethodGet, ordersPath, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build orders request: %w", err)
	}

	resp, err := g.bearerClient(token).Do(req)
	if err != nil {
		return nil, reqID, fmt.Errorf("send orders request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, reqID, err
	}

	var orders []domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, reqID, fmt.Errorf("decode orders response: %w", err)
	}
	if orders == nil {
		// A JSON null is not a list.
		return nil, reqID, errors.New("orders response is not an array")
	}
	for i := range orders {
		if err := g.client.validate.Struct(orders[i]); err != nil {
			return nil, reqID, fmt.Errorf("invalid order at index %d: %w", i, err)
		}
	}
	return orders, reqID, nil
}
