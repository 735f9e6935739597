package ports

import (
	"context"

	"github.com/bnema/remote-assist-console/internal/domain"
)

// CommandOutbox is a CommandSink that keeps what it was sent and can list
// it back, oldest first.
type CommandOutbox interface {
	CommandSink
	List(ctx context.Context) ([]domain.Command, error)
	CountByKind(ctx context.Context) (map[domain.CommandKind]int64, error)
}
