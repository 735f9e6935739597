package builtin

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/bnema/remote-assist-console/internal/ports"
)

var ErrReadOnly = errors.New("built-in ticket seed is read-only")

type Repository struct{}

var _ ports.TicketRepository = Repository{}

func (Repository) List(ctx context.Context) ([]domain.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Tickets(), nil
}

func (Repository) ReplaceAll(context.Context, []domain.Ticket) error {
	return ErrReadOnly
}

// Fallback reads from a file-backed repository and serves the built-in
// queue while that file does not exist yet. Writes always go to the file.
type Fallback struct {
	primary ports.TicketRepository
}

var _ ports.TicketRepository = (*Fallback)(nil)

func NewFallback(primary ports.TicketRepository) *Fallback {
	return &Fallback{primary: primary}
}

func (f *Fallback) List(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := f.primary.List(ctx)
	if err == nil {
		return tickets, nil
	}
	if !errors.Is(err, domain.ErrSeedNotFound) {
		return nil, err
	}

	tickets, fallbackErr := Repository{}.List(ctx)
	if fallbackErr != nil {
		return nil, fmt.Errorf("load built-in tickets: %w", errors.Join(err, fallbackErr))
	}
	return tickets, nil
}

func (f *Fallback) ReplaceAll(ctx context.Context, tickets []domain.Ticket) error {
	return f.primary.ReplaceAll(ctx, tickets)
}
