package application

import (
	"github.com/bnema/remote-assist-console/internal/domain"
)

type TicketView struct {
	ID               domain.TicketID         `json:"id"`
	VehicleID        domain.VehicleID        `json:"vehicle_id"`
	Stalled          string                  `json:"stalled"`
	Priority         domain.Priority         `json:"priority"`
	Context          domain.PassengerContext `json:"context"`
	Status           string                  `json:"status,omitempty"`
	Issue            string                  `json:"issue,omitempty"`
	Location         string                  `json:"location,omitempty"`
	Notes            string                  `json:"notes,omitempty"`
	AssignedTo       domain.Assignee         `json:"assigned_to"`
	AssignedOperator string                  `json:"assigned_operator,omitempty"`
	Badge            string                  `json:"badge"`
	Active           bool                    `json:"active"`
}

// Snapshot is a read-only copy of everything a surface needs to draw the
// console.
type Snapshot struct {
	Operator        string                `json:"operator"`
	Tickets         []TicketView          `json:"tickets"`
	Queue           QueueSummary          `json:"queue"`
	ActiveTicketID  domain.TicketID       `json:"active_ticket_id,omitempty"`
	Scope           domain.Scope          `json:"scope"`
	Mode            domain.Mode           `json:"mode"`
	PathPoints      []domain.Point        `json:"path_points"`
	NudgeAction     domain.NudgeAction    `json:"nudge_action,omitempty"`
	PickupLocation  *domain.LatLng        `json:"pickup_location,omitempty"`
	BlockerAction   domain.BlockerAction  `json:"blocker_action,omitempty"`
	BlockerLocation *domain.LatLng        `json:"blocker_location,omitempty"`
	Reason          domain.IncidentReason `json:"reason,omitempty"`
	Vehicle         domain.VehicleState   `json:"vehicle"`
	Readiness       Readiness             `json:"readiness"`
	Pending         *Confirmation         `json:"pending,omitempty"`
}

func NewTicketView(ticket domain.Ticket, active bool) TicketView {
	return TicketView{
		ID:               ticket.ID,
		VehicleID:        ticket.VehicleID,
		Stalled:          ticket.StallLabel(),
		Priority:         ticket.Priority,
		Context:          ticket.Context,
		Status:           ticket.Status,
		Issue:            ticket.Issue,
		Location:         ticket.Location,
		Notes:            ticket.Notes,
		AssignedTo:       ticket.AssignedTo,
		AssignedOperator: ticket.AssignedOperator,
		Badge:            ticket.AssignedTo.Label(),
		Active:           active,
	}
}

func (c *Console) Snapshot() Snapshot {
	snap := Snapshot{
		Operator:       c.operator,
		Tickets:        make([]TicketView, 0, len(c.tickets)),
		Queue:          c.QueueSummary(),
		ActiveTicketID: c.activeID,
		Scope:          c.scope,
		Mode:           c.session.mode,
		PathPoints:     c.PathPoints(),
		NudgeAction:    c.session.nudge,
		BlockerAction:  c.fleet.action,
		Reason:         c.reason,
		Readiness:      c.Readiness(),
	}
	if snap.PathPoints == nil {
		snap.PathPoints = []domain.Point{}
	}

	for _, ticket := range c.tickets {
		snap.Tickets = append(snap.Tickets, NewTicketView(ticket, ticket.ID == c.activeID))
	}
	if pickup, ok := c.PickupLocation(); ok {
		snap.PickupLocation = &pickup
	}
	if location, ok := c.BlockerLocation(); ok {
		snap.BlockerLocation = &location
	}
	if active, ok := c.Active(); ok {
		snap.Vehicle = c.VehicleState(active.VehicleID)
	}
	if pending, ok := c.Pending(); ok {
		snap.Pending = &pending
	}

	return snap
}
