package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/bnema/remote-assist-console/internal/adapters/repo/seedfile"
	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/bnema/remote-assist-console/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const tempFilePattern = ".tickets-*.toml.tmp"

// Repository reads and writes the ticket seed as a TOML file.
type Repository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.TicketRepository = (*Repository)(nil)

func NewRepository(path string) (*Repository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("tickets path is empty")
	}

	path, err := seedfile.NormalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, mu: seedfile.LockForPath(path)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) List(ctx context.Context) ([]domain.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSeedNotFound, r.path)
		}
		return nil, fmt.Errorf("read tickets file: %w", err)
	}

	var file seedfile.File
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode tickets file: %w", err)
	}
	if err := file.ValidateVersion(); err != nil {
		return nil, err
	}
	file.ApplyDefaults()

	tickets, err := file.Decode()
	if err != nil {
		return nil, fmt.Errorf("decode tickets file: %w", err)
	}

	return tickets, nil
}

func (r *Repository) ReplaceAll(ctx context.Context, tickets []domain.Ticket) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := toml.Marshal(seedfile.Encode(tickets))
	if err != nil {
		return fmt.Errorf("encode tickets file: %w", err)
	}

	return seedfile.WriteAtomic(r.path, data, tempFilePattern)
}
