// Package dashboard implements the console's session state machine: it turns
// a password into a persisted token and the token into a snapshot of orders.
package dashboard

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/message"

	"github.com/nfrund/orderdesk/internal/domain"
	"github.com/nfrund/orderdesk/internal/messages"
	"github.com/nfrund/orderdesk/internal/session"
)

// Authenticator exchanges a password for a session token.
type Authenticator interface {
	Login(ctx context.Context, password string) (domain.Token, error)
}

// OrderSource lists the current orders for a session token.
type OrderSource interface {
	FetchOrders(ctx context.Context, token domain.Token) ([]domain.Order, error)
}

// Observer is notified with a snapshot after every state transition.
type Observer func(State)

// Option configures a Controller.
type Option func(*Controller)

// WithObserver registers fn to be called after each transition.
func WithObserver(fn Observer) Option {
	return func(c *Controller) {
		c.observers = append(c.observers, fn)
	}
}

// WithPrinter sets the printer used to localize error messages.
func WithPrinter(p *message.Printer) Option {
	return func(c *Controller) {
		c.printer = p
	}
}

// Controller owns the dashboard state. Its methods block on the gateways and
// are safe to call from concurrent goroutines; the state lock is never held
// across a network call.
type Controller struct {
	store  session.Store
	auth   Authenticator
	orders OrderSource

	printer   *message.Printer
	observers []Observer

	mu    sync.Mutex
	state State

	startOnce sync.Once
	inflight  singleflight.Group
}

// New creates a Controller in the logged-out state. Call Start to restore a
// persisted session.
func New(store session.Store, auth Authenticator, orders OrderSource, opts ...Option) *Controller {
	c := &Controller{
		store:   store,
		auth:    auth,
		orders:  orders,
		printer: messages.Printer("en"),
		state:   State{Status: StatusLoggedOut},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Start restores a persisted session. If a token is stored the orders are
// fetched with it; a failed fetch leaves the console logged in with no orders
// and the fetch error, so logout stays reachable. Start runs at most once per
// Controller and never after a Login or Logout; later calls return the
// current state.
func (c *Controller) Start(ctx context.Context) State {
	c.startOnce.Do(func() {
		token, ok := c.store.Load()
		if !ok {
			c.transition(func(s *State) {
				*s = State{Status: StatusLoggedOut}
			})
			return
		}
		c.loadOrders(ctx, token)
	})
	return c.State()
}

// Login authenticates with password, persists the issued token and fetches
// the orders. A Login with the same password as one already in flight joins
// it and returns its result; a different password is sent on its own.
func (c *Controller) Login(ctx context.Context, password string) State {
	v, _, _ := c.inflight.Do(attemptKey(password), func() (any, error) {
		return c.login(ctx, password), nil
	})
	return v.(State).clone()
}

func (c *Controller) login(ctx context.Context, password string) State {
	c.markStarted()
	c.transition(func(s *State) {
		s.Status = StatusAuthenticating
		s.Error = nil
	})

	token, err := c.auth.Login(ctx, password)
	if err != nil {
		// A logged-out console holds no token, whatever was saved before.
		c.store.Clear()
		return c.transition(func(s *State) {
			*s = State{
				Status: StatusLoggedOut,
				Error:  c.errorState(domain.ErrAuthFailed, messages.IncorrectPassword),
			}
		})
	}

	c.store.Save(token)
	return c.loadOrders(ctx, token)
}

// loadOrders fetches with token and lands in StatusLoggedIn either way.
func (c *Controller) loadOrders(ctx context.Context, token domain.Token) State {
	orders, err := c.orders.FetchOrders(ctx, token)
	if err != nil {
		return c.transition(func(s *State) {
			*s = State{
				Status: StatusLoggedIn,
				Orders: []domain.Order{},
				Error:  c.errorState(domain.ErrFetchFailed, messages.FetchFailed),
			}
		})
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.transition(func(s *State) {
		*s = State{Status: StatusLoggedIn, Orders: orders}
	})
}

// Logout forgets the persisted token, drops the orders and clears any error.
func (c *Controller) Logout() State {
	c.markStarted()
	c.store.Clear()
	return c.transition(func(s *State) {
		*s = State{Status: StatusLoggedOut}
	})
}

// attemptKey identifies a login attempt without keeping the password around.
func attemptKey(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// markStarted consumes Start so an explicit action is never overwritten by a
// later restore.
func (c *Controller) markStarted() {
	c.startOnce.Do(func() {})
}

func (c *Controller) errorState(kind error, key string) *ErrorState {
	return &ErrorState{Kind: kind, Message: c.printer.Sprintf(key)}
}

// transition applies fn under the lock and notifies observers with the result.
func (c *Controller) transition(fn func(*State)) State {
	c.mu.Lock()
	fn(&c.state)
	snapshot := c.state.clone()
	c.mu.Unlock()

	for _, obs := range c.observers {
		obs(snapshot.clone())
	}
	return snapshot
}
