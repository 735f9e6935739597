package application

import (
	"fmt"

	"github.com/bnema/remote-assist-console/internal/domain"
)

type ConfirmationKind string

const (
	ConfirmationTakeover      ConfirmationKind = "takeover"
	ConfirmationFleetDispatch ConfirmationKind = "fleet_dispatch"
)

// Confirmation is a question the operator must answer before anything else
// can happen. Only one is open at a time.
type Confirmation struct {
	Kind ConfirmationKind `json:"kind"`

	// Takeover fields.
	TicketID domain.TicketID `json:"ticket_id,omitempty"`
	Operator string          `json:"operator,omitempty"`

	Fleet *FleetConfirmation `json:"fleet,omitempty"`
}

type FleetConfirmation struct {
	Action           domain.BlockerAction  `json:"action"`
	Location         domain.LatLng         `json:"location"`
	Reason           domain.IncidentReason `json:"reason"`
	AffectedVehicles int                   `json:"affected_vehicles"`
}

func (c Confirmation) Prompt() string {
	switch c.Kind {
	case ConfirmationTakeover:
		return fmt.Sprintf("This ticket is currently assigned to %s. Are you sure you want to take over?", c.Operator)
	case ConfirmationFleetDispatch:
		if c.Fleet == nil {
			return "Confirm fleet-wide update?"
		}
		return fmt.Sprintf(
			"You are about to %s at %s (%s). This will affect ~%d vehicles. Confirm fleet-wide update?",
			c.Fleet.Action.Effect(), c.Fleet.Location, c.Fleet.Reason, c.Fleet.AffectedVehicles,
		)
	default:
		return string(c.Kind)
	}
}

// Pending returns the open confirmation, if any.
func (c *Console) Pending() (Confirmation, bool) {
	if c.pending == nil {
		return Confirmation{}, false
	}

	pending := *c.pending
	if pending.Fleet != nil {
		fleet := *pending.Fleet
		pending.Fleet = &fleet
	}
	return pending, true
}
