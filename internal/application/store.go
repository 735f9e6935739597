package application

import (
	"fmt"

	"github.com/bnema/remote-assist-console/internal/domain"
)

type QueueSummary struct {
	Total int `json:"total"`
	Open  int `json:"open"`
	Mine  int `json:"mine"`
	Other int `json:"other"`
}

// Tickets returns the tickets in display order.
func (c *Console) Tickets() []domain.Ticket {
	tickets := make([]domain.Ticket, len(c.tickets))
	copy(tickets, c.tickets)
	return tickets
}

func (c *Console) Ticket(id domain.TicketID) (domain.Ticket, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.Ticket{}, false
	}
	return c.tickets[i], true
}

// Active returns the selected ticket; ok is false only when the store is
// empty.
func (c *Console) Active() (domain.Ticket, bool) {
	if c.activeID == "" {
		return domain.Ticket{}, false
	}
	return c.Ticket(c.activeID)
}

// SelectTicket makes id the active ticket. Moving to another vehicle drops
// any half-built intervention so it cannot be sent to the wrong vehicle;
// quick-action state stays with each vehicle.
func (c *Console) SelectTicket(id domain.TicketID) error {
	if err := c.ensureNoPending(); err != nil {
		return err
	}
	ticket, ok := c.Ticket(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownTicket, id)
	}
	if id == c.activeID {
		return nil
	}

	c.activeID = id
	c.session.clearBuffers()

	c.emit(domain.Event{
		Kind:      domain.EventTicketSelected,
		TicketID:  ticket.ID,
		VehicleID: ticket.VehicleID,
		Message:   fmt.Sprintf("Ticket %s selected (%s)", ticket.ID, ticket.VehicleID),
	})

	return nil
}

func (c *Console) QueueSummary() QueueSummary {
	summary := QueueSummary{Total: len(c.tickets)}
	for _, ticket := range c.tickets {
		switch ticket.AssignedTo {
		case domain.AssigneeNone:
			summary.Open++
		case domain.AssigneeSelf:
			summary.Mine++
		case domain.AssigneeOther:
			summary.Other++
		}
	}
	return summary
}

// resolveTicket maps an empty id to the active ticket.
func (c *Console) resolveTicket(id domain.TicketID) (domain.Ticket, error) {
	if id == "" {
		ticket, ok := c.Active()
		if !ok {
			return domain.Ticket{}, domain.ErrNoActiveTicket
		}
		return ticket, nil
	}

	ticket, ok := c.Ticket(id)
	if !ok {
		return domain.Ticket{}, fmt.Errorf("%w: %s", domain.ErrUnknownTicket, id)
	}
	return ticket, nil
}

func (c *Console) setAssignment(id domain.TicketID, to domain.Assignee, operator string) domain.Ticket {
	i := c.index[id]
	c.tickets[i].AssignedTo = to
	c.tickets[i].AssignedOperator = operator
	return c.tickets[i]
}
