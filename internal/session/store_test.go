package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nfrund/orderdesk/internal/domain"
)

// assertStoreContract checks the behaviour every Store must share.
func assertStoreContract(t *testing.T, s Store) {
	t.Helper()

	_, ok := s.Load()
	assert.False(t, ok, "fresh store should be empty")

	s.Save("first-token")
	tok, ok := s.Load()
	assert.True(t, ok)
	assert.Equal(t, domain.Token("first-token"), tok)

	// Repeated loads without a write are stable.
	again, ok := s.Load()
	assert.True(t, ok)
	assert.Equal(t, tok, again)

	s.Save("second-token")
	tok, ok = s.Load()
	assert.True(t, ok)
	assert.Equal(t, domain.Token("second-token"), tok, "save should overwrite")

	s.Clear()
	_, ok = s.Load()
	assert.False(t, ok, "clear should remove the token")

	// Clearing an empty store is a no-op.
	s.Clear()
	_, ok = s.Load()
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	assertStoreContract(t, NewMemoryStore())
}
