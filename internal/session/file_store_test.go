package session

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/orderdesk/internal/domain"
)

func TestFileStore(t *testing.T) {
	memFs := afero.NewMemMapFs()
	assertStoreContract(t, NewFileStore(memFs, ".orderdesk/session"))
}

func TestFileStore_SurvivesRestart(t *testing.T) {
	memFs := afero.NewMemMapFs()
	path := "state/dir/session"

	NewFileStore(memFs, path).Save("persisted")

	exists, err := afero.Exists(memFs, path)
	require.NoError(t, err)
	assert.True(t, exists, "token file should be written")

	// A second store over the same filesystem stands in for a new process.
	tok, ok := NewFileStore(memFs, path).Load()
	assert.True(t, ok)
	assert.Equal(t, domain.Token("persisted"), tok)
}

func TestFileStore_AcceptsFileWithoutNewline(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "session", []byte("abc"), 0o600))

	tok, ok := NewFileStore(memFs, "session").Load()
	assert.True(t, ok)
	assert.Equal(t, domain.Token("abc"), tok)
}

func TestFileStore_KeepsTokenVerbatim(t *testing.T) {
	memFs := afero.NewMemMapFs()
	s := NewFileStore(memFs, "session")

	for _, tok := range []domain.Token{" t\n", "t ", "\tpadded\t", "line\r\n", "\n"} {
		s.Save(tok)
		got, ok := s.Load()
		assert.True(t, ok, "token %q", tok)
		assert.Equal(t, tok, got)
	}
}

func TestFileStore_EmptyFileIsNoSession(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "session", nil, 0o600))

	_, ok := NewFileStore(memFs, "session").Load()
	assert.False(t, ok)
}

func TestFileStore_ReadOnlyFsIsBestEffort(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "session", []byte("kept"), 0o600))

	s := NewFileStore(afero.NewReadOnlyFs(memFs), "session")
	s.Save("replacement")
	s.Clear()

	tok, ok := s.Load()
	assert.True(t, ok)
	assert.Equal(t, domain.Token("kept"), tok)
}
