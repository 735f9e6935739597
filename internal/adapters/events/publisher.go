package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/bnema/remote-assist-console/internal/ports"
)

// Logger writes every console event as one structured log record.
type Logger struct {
	logger *slog.Logger
}

var _ ports.EventPublisher = (*Logger)(nil)

func NewLogger(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{logger: logger}
}

func (l *Logger) Publish(event domain.Event) {
	attrs := []slog.Attr{
		slog.String("event_id", event.ID),
		slog.String("kind", string(event.Kind)),
	}
	if event.TicketID != "" {
		attrs = append(attrs, slog.String("ticket", string(event.TicketID)))
	}
	if event.VehicleID != "" {
		attrs = append(attrs, slog.String("vehicle", string(event.VehicleID)))
	}
	if event.PreviousOperator != "" {
		attrs = append(attrs, slog.String("previous_operator", event.PreviousOperator))
	}
	if event.Command != nil {
		attrs = append(attrs,
			slog.String("command_id", event.Command.ID),
			slog.String("command_kind", string(event.Command.Kind)),
			slog.Bool("quick_action", event.Command.Kind.QuickAction()),
		)
		if event.Command.Reason != "" {
			attrs = append(attrs, slog.String("reason", string(event.Command.Reason)))
		}
	}

	l.logger.LogAttrs(context.Background(), slog.LevelInfo, event.Message, attrs...)
}

// Recorder keeps the most recent events in memory for surfaces that show a
// notification feed.
type Recorder struct {
	mu     sync.Mutex
	limit  int
	events []domain.Event
}

var _ ports.EventPublisher = (*Recorder)(nil)

const DefaultRecorderLimit = 50

func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = DefaultRecorderLimit
	}
	return &Recorder{limit: limit}
}

func (r *Recorder) Publish(event domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
	if over := len(r.events) - r.limit; over > 0 {
		r.events = append(r.events[:0:0], r.events[over:]...)
	}
}

// Recent returns recorded events, oldest first.
func (r *Recorder) Recent() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]domain.Event, len(r.events))
	copy(events, r.events)
	return events
}

// Last returns the newest event.
func (r *Recorder) Last() (domain.Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.events) == 0 {
		return domain.Event{}, false
	}
	return r.events[len(r.events)-1], true
}

// Fanout delivers each event to every publisher in order.
type Fanout []ports.EventPublisher

func (f Fanout) Publish(event domain.Event) {
	for _, publisher := range f {
		if publisher != nil {
			publisher.Publish(event)
		}
	}
}
