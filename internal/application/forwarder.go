package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/bnema/remote-assist-console/internal/ports"
)

var ErrNoCommandSink = errors.New("no command sink configured")

// Forwarder hands issued commands to the vehicle command channel.
type Forwarder struct {
	sink ports.CommandSink
}

func NewForwarder(sink ports.CommandSink) *Forwarder {
	return &Forwarder{sink: sink}
}

func (f *Forwarder) Forward(ctx context.Context, cmd domain.Command) error {
	if f.sink == nil {
		return ErrNoCommandSink
	}
	if err := f.sink.Send(ctx, cmd); err != nil {
		return fmt.Errorf("forward %s command %s: %w", cmd.Kind, cmd.ID, err)
	}

	return nil
}
