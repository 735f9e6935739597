package domain

import (
	"fmt"
	"time"
)

type CommandKind string

const (
	CommandPath           CommandKind = "path"
	CommandNudge          CommandKind = "nudge"
	CommandRelocatePickup CommandKind = "relocate_pickup"
	CommandHold           CommandKind = "hold"
	CommandReleaseHold    CommandKind = "release_hold"
	CommandHazardsOn      CommandKind = "hazards_on"
	CommandHazardsOff     CommandKind = "hazards_off"
	CommandHonk           CommandKind = "honk"
	CommandFlashLights    CommandKind = "flash_lights"
	CommandFleetMapEdit   CommandKind = "fleet_map_edit"
)

// QuickAction reports whether the command is one of the one-tap vehicle
// commands that bypass the readiness gate.
func (k CommandKind) QuickAction() bool {
	switch k {
	case CommandHold, CommandReleaseHold, CommandHazardsOn, CommandHazardsOff, CommandHonk, CommandFlashLights:
		return true
	default:
		return false
	}
}

type BlockerEdit struct {
	Action           BlockerAction `json:"action"`
	Location         LatLng        `json:"location"`
	AffectedVehicles int           `json:"affected_vehicles"`
}

// Command is an outbound instruction produced by the console. Exactly one
// payload field is set, matching Kind; quick actions carry none.
type Command struct {
	ID        string         `json:"id"`
	Kind      CommandKind    `json:"kind"`
	Scope     Scope          `json:"scope"`
	TicketID  TicketID       `json:"ticket_id,omitempty"`
	VehicleID VehicleID      `json:"vehicle_id,omitempty"`
	Reason    IncidentReason `json:"reason,omitempty"`
	Operator  string         `json:"operator,omitempty"`
	IssuedAt  time.Time      `json:"issued_at"`

	Path   []Point      `json:"path,omitempty"`
	Nudge  NudgeAction  `json:"nudge,omitempty"`
	Pickup *LatLng      `json:"pickup,omitempty"`
	Fleet  *BlockerEdit `json:"fleet,omitempty"`
}

// Summary is a one-line description suitable for an operator notification.
func (c Command) Summary() string {
	switch c.Kind {
	case CommandPath:
		return fmt.Sprintf("Sending path with %d waypoints to %s", len(c.Path), c.VehicleID)
	case CommandNudge:
		return fmt.Sprintf("Sending %q to %s", c.Nudge.Label(), c.VehicleID)
	case CommandRelocatePickup:
		return "Updating pickup pin for " + string(c.VehicleID)
	case CommandHold:
		return "Vehicle holding position - " + string(c.VehicleID)
	case CommandReleaseHold:
		return "Vehicle released from hold - " + string(c.VehicleID)
	case CommandHazardsOn:
		return "Hazards ON - " + string(c.VehicleID)
	case CommandHazardsOff:
		return "Hazards OFF - " + string(c.VehicleID)
	case CommandHonk:
		return "Honk sent to " + string(c.VehicleID)
	case CommandFlashLights:
		return "Flash lights command sent to " + string(c.VehicleID)
	case CommandFleetMapEdit:
		if c.Fleet == nil {
			return "Fleet map updated"
		}
		return fmt.Sprintf("Fleet map updated: %s, %d vehicles rerouted", c.Fleet.Action, c.Fleet.AffectedVehicles)
	default:
		return string(c.Kind)
	}
}
