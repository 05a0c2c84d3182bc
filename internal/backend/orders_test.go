package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/orderdesk/internal/domain"
)

func newOrderGateway(t *testing.T, url string) *OrderGateway {
	t.Helper()
	c, err := NewClient(url)
	require.NoError(t, err)
	return NewOrderGateway(c)
}

// newOrdersBackend serves body on /admin/orders to requests bearing token T1.
func newOrdersBackend(t *testing.T, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/orders", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Header.Get("Authorization") != "Bearer T1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid or expired token"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestOrderGateway_FetchOrders(t *testing.T) {
	body := `[
		{"id":2,"name":"Zeta","email":"z@zeta.io","image_url":"https://img/z.png","date":"2024-02-01T09:30:00.250000"},
		{"id":1,"name":"Acme","email":"a@acme.co","image_url":"/i.png","date":"2024-01-01T00:00:00Z"}
	]`
	srv, calls := newOrdersBackend(t, body)
	gw := newOrderGateway(t, srv.URL)

	orders, err := gw.FetchOrders(context.Background(), "T1")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// Backend order is preserved.
	assert.Equal(t, int64(2), orders[0].ID)
	assert.Equal(t, int64(1), orders[1].ID)
	assert.Equal(t, "Acme", orders[1].Name)
	assert.Equal(t, "a@acme.co", orders[1].Email)
	assert.Equal(t, "/i.png", orders[1].ImageURL)
	assert.True(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Equal(orders[1].Date.Time))
	assert.True(t, time.Date(2024, 2, 1, 9, 30, 0, 250000000, time.UTC).Equal(orders[0].Date.Time))
	assert.Equal(t, int32(1), calls.Load())
}

func TestOrderGateway_FetchOrders_Empty(t *testing.T) {
	srv, _ := newOrdersBackend(t, `[]`)

	orders, err := newOrderGateway(t, srv.URL).FetchOrders(context.Background(), "T1")
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrderGateway_FetchOrders_Failures(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		token domain.Token
	}{
		{name: "wrong token", body: `[]`, token: "expired"},
		{name: "no token", body: `[]`, token: ""},
		{name: "not json", body: `<html>`, token: "T1"},
		{name: "null body", body: `null`, token: "T1"},
		{name: "object instead of array", body: `{"orders":[]}`, token: "T1"},
		{name: "missing email", body: `[{"id":1,"name":"Acme","image_url":"/i.png","date":"2024-01-01T00:00:00Z"}]`, token: "T1"},
		{name: "bad date", body: `[{"id":1,"name":"Acme","email":"a@acme.co","image_url":"/i.png","date":"soon"}]`, token: "T1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newOrdersBackend(t, tt.body)

			orders, err := newOrderGateway(t, srv.URL).FetchOrders(context.Background(), tt.token)
			assert.Equal(t, domain.ErrFetchFailed, err)
			assert.Nil(t, orders)
		})
	}
}

func TestOrderGateway_NoCaching(t *testing.T) {
	srv, calls := newOrdersBackend(t, `[]`)
	gw := newOrderGateway(t, srv.URL)

	for i := 0; i < 3; i++ {
		_, err := gw.FetchOrders(context.Background(), "T1")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), calls.Load())
}
