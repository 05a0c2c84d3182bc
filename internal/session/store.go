// Package session persists the console's session token.
//
// Every Store is synchronous and best-effort: write failures are logged and
// swallowed, and a read failure is reported as "no session".
package session

import "github.com/nfrund/orderdesk/internal/domain"

// Store is the durable holder of the session token.
type Store interface {
	// Load returns the persisted token, or false if none is stored.
	Load() (domain.Token, bool)
	// Save persists token, replacing any previous value.
	Save(token domain.Token)
	// Clear removes the persisted token.
	Clear()
}
