package seedfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	FileMode = 0o600
	DirMode  = 0o700
)

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

// LockForPath returns the process-wide lock guarding path, so repositories
// opened twice on the same file do not interleave writes.
func LockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func NormalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve tickets path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

// WriteAtomic replaces path with data through a temp file in the same
// directory.
func WriteAtomic(path string, data []byte, tempPattern string) error {
	if err := os.MkdirAll(filepath.Dir(path), DirMode); err != nil {
		return fmt.Errorf("create tickets directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return fmt.Errorf("create temp tickets file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp tickets file: %w", err)
	}

	if err := tempFile.Chmod(FileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp tickets file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp tickets file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace tickets file: %w", err)
	}

	cleanup = false
	return nil
}
