package dashboard

import (
	"slices"

	"github.com/nfrund/orderdesk/internal/domain"
)

// Status is the coarse position of the console in its session lifecycle.
type Status int

const (
	StatusLoggedOut Status = iota
	StatusAuthenticating
	StatusLoggedIn
)

func (s Status) String() string {
	switch s {
	case StatusLoggedOut:
		return "logged_out"
	case StatusAuthenticating:
		return "authenticating"
	case StatusLoggedIn:
		return "logged_in"
	default:
		return "unknown"
	}
}

// ErrorState is the transient, user-facing failure of the last operation.
type ErrorState struct {
	// Kind is domain.ErrAuthFailed or domain.ErrFetchFailed.
	Kind error
	// Message is the localized text shown to the user.
	Message string
}

// State is a snapshot of what the console should display. Orders is only
// meaningful when Status is StatusLoggedIn; Error may accompany any status.
type State struct {
	Status Status
	Orders []domain.Order
	Error  *ErrorState
}

// LoggedIn reports whether the state shows the orders screen.
func (s State) LoggedIn() bool {
	return s.Status == StatusLoggedIn
}

// clone returns a copy that shares no memory with s.
func (s State) clone() State {
	out := State{Status: s.Status, Orders: slices.Clone(s.Orders)}
	if s.Error != nil {
		e := *s.Error
		out.Error = &e
	}
	return out
}
