package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/bnema/remote-assist-console/internal/ports"
)

const (
	outboxDirMode   = 0o700
	commandFileMode = 0o600
	commandFileExt  = ".json"
	tempFilePattern = ".command-*.json.tmp"
	fileTimeLayout  = "20060102T150405.000000000Z"
)

// Outbox writes every command as its own JSON file under root. File names
// sort by issue time, so List returns commands in the order they were sent.
type Outbox struct {
	root string
	mu   sync.RWMutex
}

var _ ports.CommandOutbox = (*Outbox)(nil)

func NewOutbox(root string) *Outbox {
	return &Outbox{root: filepath.Clean(root)}
}

func (o *Outbox) Send(ctx context.Context, cmd domain.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, err := fileName(cmd)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cmd, "", "  ")
	if err != nil {
		return fmt.Errorf("encode command %s: %w", cmd.ID, err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := os.MkdirAll(o.root, outboxDirMode); err != nil {
		return fmt.Errorf("create outbox directory: %w", err)
	}

	tempFile, err := os.CreateTemp(o.root, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp command file: %w", err)
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
		return fmt.Errorf("write temp command file: %w", err)
	}
	if err := tempFile.Chmod(commandFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp command file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp command file: %w", err)
	}

	if err := os.Rename(tempName, filepath.Join(o.root, name)); err != nil {
		return fmt.Errorf("publish command file: %w", err)
	}

	cleanup = false
	return nil
}

func (o *Outbox) List(ctx context.Context) ([]domain.Command, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	entries, err := os.ReadDir(o.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read outbox directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") || filepath.Ext(entry.Name()) != commandFileExt {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	commands := make([]domain.Command, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(o.root, name))
		if err != nil {
			return nil, fmt.Errorf("read command file %q: %w", name, err)
		}

		var cmd domain.Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			return nil, fmt.Errorf("decode command file %q: %w", name, err)
		}
		commands = append(commands, cmd)
	}

	return commands, nil
}

func (o *Outbox) CountByKind(ctx context.Context) (map[domain.CommandKind]int64, error) {
	commands, err := o.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.CommandKind]int64)
	for _, cmd := range commands {
		counts[cmd.Kind]++
	}
	return counts, nil
}

func fileName(cmd domain.Command) (string, error) {
	id := strings.TrimSpace(cmd.ID)
	if id == "" {
		return "", errors.New("command id is empty")
	}
	if strings.ContainsAny(id, `/\`) || strings.HasPrefix(id, ".") {
		return "", fmt.Errorf("invalid command id %q", cmd.ID)
	}

	return cmd.IssuedAt.UTC().Format(fileTimeLayout) + "-" + id + commandFileExt, nil
}
