package session

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/nfrund/orderdesk/internal/domain"
)

// FileStore keeps the token in a single file, so a session survives process
// restarts. The filesystem is injected so tests can use afero.NewMemMapFs.
type FileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore creates a FileStore that reads and writes path on fs.
func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

func (s *FileStore) Load() (domain.Token, bool) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Error("Failed to read session file", "path", s.path, "error", err)
		}
		return "", false
	}
	// The file holds one line; only its terminator is dropped.
	token := domain.Token(bytes.TrimSuffix(data, []byte("\n")))
	return token, !token.IsZero()
}

func (s *FileStore) Save(token domain.Token) {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		slog.Error("Failed to create session directory", "path", s.path, "error", err)
		return
	}
	if err := afero.WriteFile(s.fs, s.path, []byte(string(token)+"\n"), 0o600); err != nil {
		slog.Error("Failed to write session file", "path", s.path, "error", err)
	}
}

func (s *FileStore) Clear() {
	if err := s.fs.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("Failed to remove session file", "path", s.path, "error", err)
	}
}
