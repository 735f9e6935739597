package application

import (
	"fmt"

	"github.com/bnema/remote-assist-console/internal/domain"
)

const (
	HintSelectTicket   = "Select a ticket first"
	HintSelectReason   = "Select reason first"
	HintPlaceWaypoints = "Place waypoints on video"
	HintSelectAction   = "Select action above"
	HintSetLocation    = "Click map to set location"
	HintPlacePin       = "Click map to place pin"
	HintReady          = "Ready to send"
	HintNeedsConfirm   = "Requires confirmation"
	HintAnswerPending  = "Answer the pending confirmation"
)

type Readiness struct {
	Ready bool   `json:"ready"`
	Hint  string `json:"hint"`
}

// Readiness reports whether Dispatch would proceed, and if not, what the
// operator still has to do.
func (c *Console) Readiness() Readiness {
	if c.pending != nil {
		return Readiness{Hint: HintAnswerPending}
	}
	if c.scope == domain.ScopeFleet {
		switch {
		case c.fleet.action == "":
			return Readiness{Hint: HintSelectAction}
		case c.fleet.location == nil:
			return Readiness{Hint: HintPlacePin}
		case c.reason == "":
			return Readiness{Hint: HintSelectReason}
		default:
			return Readiness{Ready: true, Hint: HintNeedsConfirm}
		}
	}

	if _, ok := c.Active(); !ok {
		return Readiness{Hint: HintSelectTicket}
	}
	if c.reason == "" {
		return Readiness{Hint: HintSelectReason}
	}
	switch c.session.mode {
	case domain.ModeDraw:
		if len(c.session.path) == 0 {
			return Readiness{Hint: HintPlaceWaypoints}
		}
	case domain.ModeNudge:
		if c.session.nudge == "" {
			return Readiness{Hint: HintSelectAction}
		}
	case domain.ModeRelocate:
		if c.session.pickup == nil {
			return Readiness{Hint: HintSetLocation}
		}
	}
	return Readiness{Ready: true, Hint: HintReady}
}

// DispatchResult carries either the command that was issued (vehicle scope)
// or the confirmation that now has to be answered (fleet scope).
type DispatchResult struct {
	Command      *domain.Command `json:"command,omitempty"`
	Confirmation *Confirmation   `json:"confirmation,omitempty"`
}

// Dispatch sends the intervention built so far. Vehicle-scope commands are
// issued immediately and their buffer is emptied; fleet-scope edits open a
// confirmation and change nothing else.
func (c *Console) Dispatch() (DispatchResult, error) {
	readiness := c.Readiness()
	if !readiness.Ready {
		if c.pending != nil {
			return DispatchResult{}, fmt.Errorf("%w: %w", domain.ErrNotReady, c.ensureNoPending())
		}
		return DispatchResult{}, fmt.Errorf("%w: %s", domain.ErrNotReady, readiness.Hint)
	}

	if c.scope == domain.ScopeFleet {
		c.pending = &Confirmation{
			Kind: ConfirmationFleetDispatch,
			Fleet: &FleetConfirmation{
				Action:           c.fleet.action,
				Location:         *c.fleet.location,
				Reason:           c.reason,
				AffectedVehicles: c.affected,
			},
		}
		c.emit(domain.Event{
			Kind:    domain.EventConfirmationRequested,
			Message: c.pending.Prompt(),
		})
		pending, _ := c.Pending()
		return DispatchResult{Confirmation: &pending}, nil
	}

	ticket, _ := c.Active()
	cmd := domain.Command{
		ID:        c.newID(),
		Scope:     domain.ScopeVehicle,
		TicketID:  ticket.ID,
		VehicleID: ticket.VehicleID,
		Reason:    c.reason,
		Operator:  c.operator,
		IssuedAt:  c.clock.Now(),
	}
	switch c.session.mode {
	case domain.ModeDraw:
		cmd.Kind = domain.CommandPath
		cmd.Path = c.PathPoints()
		c.session.path = nil
	case domain.ModeNudge:
		cmd.Kind = domain.CommandNudge
		cmd.Nudge = c.session.nudge
		c.session.nudge = ""
	case domain.ModeRelocate:
		pickup := *c.session.pickup
		cmd.Kind = domain.CommandRelocatePickup
		cmd.Pickup = &pickup
		c.session.pickup = nil
	}

	c.afterDispatch()
	c.emitDispatched(cmd)
	return DispatchResult{Command: &cmd}, nil
}

// ConfirmFleetDispatch issues the fleet edit captured when the confirmation
// was opened. The action and pin are cleared; the console stays in fleet
// scope.
func (c *Console) ConfirmFleetDispatch() (domain.Command, error) {
	if c.pending == nil || c.pending.Kind != ConfirmationFleetDispatch {
		return domain.Command{}, domain.ErrNoPendingConfirmation
	}

	edit := *c.pending.Fleet
	c.pending = nil

	cmd := domain.Command{
		ID:       c.newID(),
		Kind:     domain.CommandFleetMapEdit,
		Scope:    domain.ScopeFleet,
		Reason:   edit.Reason,
		Operator: c.operator,
		IssuedAt: c.clock.Now(),
		Fleet: &domain.BlockerEdit{
			Action:           edit.Action,
			Location:         edit.Location,
			AffectedVehicles: edit.AffectedVehicles,
		},
	}

	c.fleet.clear()
	c.afterDispatch()
	c.emitDispatched(cmd)
	return cmd, nil
}

// CancelFleetDispatch declines a pending fleet edit. The action, pin and
// reason stay as they were.
func (c *Console) CancelFleetDispatch() error {
	if c.pending == nil || c.pending.Kind != ConfirmationFleetDispatch {
		return domain.ErrNoPendingConfirmation
	}

	c.pending = nil
	c.emit(domain.Event{
		Kind:    domain.EventConfirmationCancelled,
		Message: "Fleet-wide update cancelled",
	})
	return nil
}

func (c *Console) afterDispatch() {
	if c.reasonPolicy == ReasonPolicyClear {
		c.reason = ""
	}
}
