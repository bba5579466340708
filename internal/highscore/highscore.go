// Package highscore persists the best score as a single plain-text integer.
package highscore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultPath is the high score file used when none is configured.
const DefaultPath = "highscore.txt"

// ErrInvalid is returned when the file content is not a non-negative integer.
var ErrInvalid = errors.New("highscore: invalid content")

// FileStore reads and writes the high score file.
type FileStore struct {
	path string
}

// NewFileStore creates a store for the given path. A leading ~ expands to
// the home directory; an empty path uses DefaultPath.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &FileStore{path: path}
}

// Path returns the file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored high score. A missing, unreadable, non-numeric or
// negative file yields 0 together with the reason; callers that only want a
// starting value can ignore the error.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}
	return Parse(data)
}

// Save overwrites the file with the given score.
func (s *FileStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("%w: negative score %d", ErrInvalid, score)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", s.path, err)
	}
	return nil
}

// Parse decodes file content. Surrounding whitespace is allowed.
func Parse(data []byte) (int, error) {
	text := strings.TrimSpace(string(data))
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, text)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative score %d", ErrInvalid, n)
	}
	return n, nil
}
