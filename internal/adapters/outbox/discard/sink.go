// Package discard drops every command. It backs dry runs.
package discard

import (
	"context"

	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/bnema/remote-assist-console/internal/ports"
)

type Sink struct{}

var _ ports.CommandSink = Sink{}

func (Sink) Send(ctx context.Context, _ domain.Command) error {
	return ctx.Err()
}
