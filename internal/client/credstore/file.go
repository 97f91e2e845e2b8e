package credstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/common"
	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/logging"
)

// FileStore keeps the token verbatim in a single file.
type FileStore struct {
	path   string
	logger logging.Logger
}

// NewFileStore builds a FileStore writing to path. An empty path selects
// the default location under the user config dir.
func NewFileStore(path string, logger logging.Logger) *FileStore {
	if path == "" {
		path = DefaultPath()
	}
	return &FileStore{path: path, logger: logger}
}

// DefaultPath returns the well-known token location. Falls back to the
// current directory when the user config dir cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.FromSlash(common.TokenFileName)
	}
	return filepath.Join(dir, filepath.FromSlash(common.TokenFileName))
}

func (s *FileStore) Get() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn(context.Background(), "token file unreadable", "path", s.path, "error", err)
		}
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *FileStore) Set(token string) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.logger.Warn(context.Background(), "token dir not created", "path", s.path, "error", err)
		return
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		s.logger.Warn(context.Background(), "token not persisted", "path", s.path, "error", err)
	}
}

func (s *FileStore) Clear() {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn(context.Background(), "token not removed", "path", s.path, "error", err)
	}
}
