package application

import (
	"fmt"

	"github.com/bnema/remote-assist-console/internal/domain"
)

type TakeOutcome string

const (
	TakeAssigned          TakeOutcome = "assigned"
	TakeAlreadyOwned      TakeOutcome = "already_owned"
	TakeNeedsConfirmation TakeOutcome = "needs_confirmation"
)

// TakeTask claims a ticket for the local operator. Tickets held by another
// operator are not reassigned here; a takeover confirmation is opened
// instead and the ticket stays untouched until ConfirmTakeFromOther.
// An empty id means the active ticket.
func (c *Console) TakeTask(id domain.TicketID) (TakeOutcome, error) {
	if err := c.ensureNoPending(); err != nil {
		return "", err
	}
	ticket, err := c.resolveTicket(id)
	if err != nil {
		return "", err
	}

	switch ticket.AssignedTo {
	case domain.AssigneeSelf:
		return TakeAlreadyOwned, nil
	case domain.AssigneeOther:
		c.pending = &Confirmation{
			Kind:     ConfirmationTakeover,
			TicketID: ticket.ID,
			Operator: ticket.AssignedOperator,
		}
		c.emit(domain.Event{
			Kind:      domain.EventConfirmationRequested,
			TicketID:  ticket.ID,
			VehicleID: ticket.VehicleID,
			Message:   c.pending.Prompt(),
		})
		return TakeNeedsConfirmation, nil
	default:
		ticket = c.setAssignment(ticket.ID, domain.AssigneeSelf, c.operator)
		c.emit(domain.Event{
			Kind:      domain.EventTaskAssigned,
			TicketID:  ticket.ID,
			VehicleID: ticket.VehicleID,
			Message:   fmt.Sprintf("Ticket %s assigned to you", ticket.ID),
		})
		return TakeAssigned, nil
	}
}

// ConfirmTakeFromOther completes a takeover opened by TakeTask for id.
func (c *Console) ConfirmTakeFromOther(id domain.TicketID) error {
	if c.pending == nil || c.pending.Kind != ConfirmationTakeover {
		return domain.ErrNoPendingConfirmation
	}
	if id == "" {
		id = c.pending.TicketID
	}
	if c.pending.TicketID != id {
		return fmt.Errorf("%w: takeover pending for %s, not %s", domain.ErrNoPendingConfirmation, c.pending.TicketID, id)
	}

	previous := c.pending.Operator
	c.pending = nil

	ticket := c.setAssignment(id, domain.AssigneeSelf, c.operator)
	c.emit(domain.Event{
		Kind:             domain.EventTaskReassigned,
		TicketID:         ticket.ID,
		VehicleID:        ticket.VehicleID,
		PreviousOperator: previous,
		Message:          fmt.Sprintf("Ticket %s reassigned from %s to you", ticket.ID, previous),
	})

	return nil
}

// CancelTakeConfirmation discards a pending takeover without touching the
// ticket.
func (c *Console) CancelTakeConfirmation() error {
	if c.pending == nil || c.pending.Kind != ConfirmationTakeover {
		return domain.ErrNoPendingConfirmation
	}

	pending := c.pending
	c.pending = nil

	ticket, _ := c.Ticket(pending.TicketID)
	c.emit(domain.Event{
		Kind:      domain.EventConfirmationCancelled,
		TicketID:  ticket.ID,
		VehicleID: ticket.VehicleID,
		Message:   fmt.Sprintf("Takeover of %s cancelled", ticket.ID),
	})

	return nil
}

// ReleaseTask returns a ticket held by the local operator to the open pool.
// It reports false and changes nothing for tickets the operator does not
// hold.
func (c *Console) ReleaseTask(id domain.TicketID) (bool, error) {
	if err := c.ensureNoPending(); err != nil {
		return false, err
	}
	ticket, err := c.resolveTicket(id)
	if err != nil {
		return false, err
	}
	if ticket.AssignedTo != domain.AssigneeSelf {
		return false, nil
	}

	ticket = c.setAssignment(ticket.ID, domain.AssigneeNone, "")
	c.emit(domain.Event{
		Kind:      domain.EventTaskReleased,
		TicketID:  ticket.ID,
		VehicleID: ticket.VehicleID,
		Message:   fmt.Sprintf("Ticket %s released", ticket.ID),
	})

	return true, nil
}
