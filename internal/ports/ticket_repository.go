package ports

import (
	"context"

	"github.com/bnema/remote-assist-console/internal/domain"
)

// TicketRepository is where the console's tickets come from. Tickets are
// read once at start-up; the console never writes assignment changes back.
type TicketRepository interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	ReplaceAll(ctx context.Context, tickets []domain.Ticket) error
}
