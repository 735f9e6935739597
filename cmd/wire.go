package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/bnema/remote-assist-console/internal/adapters/events"
	"github.com/bnema/remote-assist-console/internal/adapters/outbox/chain"
	"github.com/bnema/remote-assist-console/internal/adapters/outbox/discard"
	fileoutbox "github.com/bnema/remote-assist-console/internal/adapters/outbox/file"
	sqliteoutbox "github.com/bnema/remote-assist-console/internal/adapters/outbox/sqlite"
	consolerender "github.com/bnema/remote-assist-console/internal/adapters/render/console"
	"github.com/bnema/remote-assist-console/internal/adapters/repo/builtin"
	tomlrepo "github.com/bnema/remote-assist-console/internal/adapters/repo/toml"
	yamlrepo "github.com/bnema/remote-assist-console/internal/adapters/repo/yaml"
	"github.com/bnema/remote-assist-console/internal/application"
	"github.com/bnema/remote-assist-console/internal/config"
	"github.com/bnema/remote-assist-console/internal/ports"
	"github.com/spf13/viper"
)

const outboxDBFile = "outbox.db"

var errNoOutbox = errors.New("outbox driver is none, commands are not kept")

type app struct {
	cfg config.Config
	// seedFile is the configured tickets file; tickets wraps it with the
	// built-in queue for when the file does not exist yet.
	seedFile ports.TicketRepository
	tickets  ports.TicketRepository
	renderer func(application.Snapshot, consolerender.RenderOptions) (string, error)
}

// commandOutbox is the opened command sink plus, when the driver keeps
// commands, the outbox to read them back from.
type commandOutbox struct {
	sink   ports.CommandSink
	outbox ports.CommandOutbox
	close  func() error
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var seedFile ports.TicketRepository
	switch cfg.TicketsFormat() {
	case "yaml":
		seedFile, err = yamlrepo.NewRepository(cfg.TicketsPath)
	default:
		seedFile, err = tomlrepo.NewRepository(cfg.TicketsPath)
	}
	if err != nil {
		return nil, fmt.Errorf("wire ticket repository: %w", err)
	}

	return &app{
		cfg:      cfg,
		seedFile: seedFile,
		tickets:  builtin.NewFallback(seedFile),
		renderer: consolerender.Render,
	}, nil
}

func (a *app) newLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: a.cfg.LogLevel}
	if a.cfg.LogFormat == config.LogJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (a *app) openOutbox() (*commandOutbox, error) {
	noop := func() error { return nil }

	switch a.cfg.OutboxDriver {
	case config.OutboxNone:
		return &commandOutbox{sink: discard.Sink{}, close: noop}, nil
	case config.OutboxFile:
		outbox := fileoutbox.NewOutbox(a.cfg.OutboxPath)
		return &commandOutbox{sink: outbox, outbox: outbox, close: noop}, nil
	case config.OutboxSQLite, config.OutboxChain:
		db, err := sqliteoutbox.Open(filepath.Join(a.cfg.OutboxPath, outboxDBFile))
		if err != nil {
			return nil, fmt.Errorf("wire sqlite outbox: %w", err)
		}
		if a.cfg.OutboxDriver == config.OutboxSQLite {
			return &commandOutbox{sink: db, outbox: db, close: db.Close}, nil
		}

		sink, err := chain.NewSink(db, fileoutbox.NewOutbox(filepath.Join(a.cfg.OutboxPath, "spool")))
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("wire outbox chain: %w", err)
		}
		return &commandOutbox{sink: sink, outbox: db, close: db.Close}, nil
	default:
		return nil, fmt.Errorf("unsupported outbox driver %q", a.cfg.OutboxDriver)
	}
}

// newService starts a fresh console session over the configured tickets.
func (a *app) newService(ctx context.Context, sink ports.CommandSink, publishers ...ports.EventPublisher) (*application.Service, error) {
	return application.NewService(ctx, a.tickets, sink, application.ConsoleOptions{
		Operator:         a.cfg.Operator,
		AffectedVehicles: a.cfg.AffectedVehicles,
		ReasonPolicy:     a.cfg.ReasonPolicy,
		Clock:            ports.SystemClock{},
		Events:           events.Fanout(publishers),
	})
}
