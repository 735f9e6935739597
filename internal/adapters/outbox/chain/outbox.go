package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/bnema/remote-assist-console/internal/ports"
)

// Sink sends to primary and falls back to the second sink when the primary
// fails for any reason other than cancellation.
type Sink struct {
	primary  ports.CommandSink
	fallback ports.CommandSink
}

var _ ports.CommandSink = (*Sink)(nil)

var (
	errNilPrimarySink  = errors.New("primary command sink is nil")
	errNilFallbackSink = errors.New("fallback command sink is nil")
)

func NewSink(primary ports.CommandSink, fallback ports.CommandSink) (*Sink, error) {
	if primary == nil {
		return nil, errNilPrimarySink
	}
	if fallback == nil {
		return nil, errNilFallbackSink
	}

	return &Sink{primary: primary, fallback: fallback}, nil
}

func (s *Sink) Send(ctx context.Context, cmd domain.Command) error {
	err := s.primary.Send(ctx, cmd)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Send(ctx, cmd)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary sink send failed: %w; fallback sink send failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
