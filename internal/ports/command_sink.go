package ports

import (
	"context"

	"github.com/bnema/remote-assist-console/internal/domain"
)

// CommandSink hands dispatched commands to whatever transport reaches the
// vehicles or the fleet map service.
type CommandSink interface {
	Send(ctx context.Context, command domain.Command) error
}
