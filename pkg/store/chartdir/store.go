package chartdir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Store satisfies the chart publisher contract with a local directory. The
// CLI uses it so reports written to disk reference files next to them.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create charts dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Publish(_ context.Context, key string, png []byte) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(key))
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("write chart %s: %w", path, err)
	}
	return path, nil
}
