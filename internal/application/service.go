package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/bnema/remote-assist-console/internal/ports"
)

var ErrUnsupportedAction = errors.New("unsupported action")

// Service owns one Console and serializes every operator event delivered to
// it, whichever surface it comes from. Commands the console issues are
// forwarded before Execute returns.
type Service struct {
	mu        sync.Mutex
	console   *Console
	forwarder *Forwarder
}

// NewService loads the ticket seed from repo and starts a console over it.
func NewService(ctx context.Context, repo ports.TicketRepository, sink ports.CommandSink, opts ConsoleOptions) (*Service, error) {
	tickets, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	console, err := NewConsole(tickets, opts)
	if err != nil {
		return nil, fmt.Errorf("start console: %w", err)
	}

	return &Service{
		console:   console,
		forwarder: NewForwarder(sink),
	}, nil
}

func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.console.Snapshot()
}

func (s *Service) Readiness() Readiness {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.console.Readiness()
}

func (s *Service) Tickets() []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.console.Tickets()
}

// Execute applies one action. When the action issues a command and the
// forward fails, the console keeps the command as issued and the error is
// returned alongside the outcome.
func (s *Service) Execute(ctx context.Context, action Action) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome, err := s.apply(action)
	if err != nil {
		return Outcome{}, err
	}

	if outcome.Command != nil {
		if err := s.forwarder.Forward(ctx, *outcome.Command); err != nil {
			return outcome, err
		}
	}

	return outcome, nil
}

func (s *Service) apply(action Action) (Outcome, error) {
	c := s.console

	switch action.Kind {
	case ActionSelectTicket:
		return Outcome{}, c.SelectTicket(action.TicketID)
	case ActionTakeTask:
		take, err := c.TakeTask(action.TicketID)
		if err != nil {
			return Outcome{}, err
		}
		outcome := Outcome{Take: take}
		if pending, ok := c.Pending(); ok {
			outcome.Confirmation = &pending
		}
		return outcome, nil
	case ActionConfirmTake:
		return Outcome{}, c.ConfirmTakeFromOther(action.TicketID)
	case ActionCancelTake:
		return Outcome{}, c.CancelTakeConfirmation()
	case ActionReleaseTask:
		released, err := c.ReleaseTask(action.TicketID)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Released: &released}, nil
	case ActionSelectMode:
		return Outcome{}, c.SelectMode(action.Mode)
	case ActionAddWaypoint:
		return Outcome{}, c.AddWaypoint(action.Point)
	case ActionClearPath:
		return Outcome{}, c.ClearPath()
	case ActionSelectNudge:
		return Outcome{}, c.SelectNudgeAction(action.Nudge)
	case ActionSetPickup:
		return Outcome{}, c.SetPickupLocation(action.Location)
	case ActionClearPickup:
		return Outcome{}, c.ClearPickupLocation()
	case ActionToggleHold:
		return toggled(c.ToggleHold())
	case ActionToggleHazards:
		return toggled(c.ToggleHazards())
	case ActionHonk:
		return issued(c.Honk())
	case ActionFlashLights:
		return issued(c.FlashLights())
	case ActionSetScope:
		return Outcome{}, c.SetScope(action.Scope)
	case ActionSelectBlocker:
		return Outcome{}, c.SelectBlockerAction(action.Blocker)
	case ActionClearBlocker:
		return Outcome{}, c.ClearBlockerAction()
	case ActionPlaceBlocker:
		return Outcome{}, c.PlaceBlocker(action.Location)
	case ActionSetReason:
		return Outcome{}, c.SetReason(action.Reason)
	case ActionClearReason:
		return Outcome{}, c.ClearReason()
	case ActionDispatch:
		result, err := c.Dispatch()
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Command: result.Command, Confirmation: result.Confirmation}, nil
	case ActionConfirmFleet:
		return issued(c.ConfirmFleetDispatch())
	case ActionDeclineFleet:
		return Outcome{}, c.CancelFleetDispatch()
	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnsupportedAction, action.Kind)
	}
}

func toggled(on bool, cmd domain.Command, err error) (Outcome, error) {
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Toggled: &on, Command: &cmd}, nil
}

func issued(cmd domain.Command, err error) (Outcome, error) {
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Command: &cmd}, nil
}
