package application

import (
	"github.com/bnema/remote-assist-console/internal/domain"
)

// VehicleState returns the quick-action toggles recorded for a vehicle.
func (c *Console) VehicleState(id domain.VehicleID) domain.VehicleState {
	return c.vehicles[id]
}

// ToggleHold flips hold-for-instructions on the active vehicle and returns
// the new value with the command that carries it.
func (c *Console) ToggleHold() (bool, domain.Command, error) {
	ticket, err := c.ensureVehicleInput()
	if err != nil {
		return false, domain.Command{}, err
	}

	state := c.vehicles[ticket.VehicleID]
	state.HoldForInstructions = !state.HoldForInstructions
	c.vehicles[ticket.VehicleID] = state

	kind := domain.CommandReleaseHold
	if state.HoldForInstructions {
		kind = domain.CommandHold
	}
	return state.HoldForInstructions, c.quickCommand(ticket, kind), nil
}

func (c *Console) ToggleHazards() (bool, domain.Command, error) {
	ticket, err := c.ensureVehicleInput()
	if err != nil {
		return false, domain.Command{}, err
	}

	state := c.vehicles[ticket.VehicleID]
	state.HazardsOn = !state.HazardsOn
	c.vehicles[ticket.VehicleID] = state

	kind := domain.CommandHazardsOff
	if state.HazardsOn {
		kind = domain.CommandHazardsOn
	}
	return state.HazardsOn, c.quickCommand(ticket, kind), nil
}

func (c *Console) Honk() (domain.Command, error) {
	ticket, err := c.ensureVehicleInput()
	if err != nil {
		return domain.Command{}, err
	}
	return c.quickCommand(ticket, domain.CommandHonk), nil
}

func (c *Console) FlashLights() (domain.Command, error) {
	ticket, err := c.ensureVehicleInput()
	if err != nil {
		return domain.Command{}, err
	}
	return c.quickCommand(ticket, domain.CommandFlashLights), nil
}

// quickCommand issues a one-tap command. These skip the readiness gate and
// never touch the intervention buffers or the reason.
func (c *Console) quickCommand(ticket domain.Ticket, kind domain.CommandKind) domain.Command {
	cmd := domain.Command{
		ID:        c.newID(),
		Kind:      kind,
		Scope:     domain.ScopeVehicle,
		TicketID:  ticket.ID,
		VehicleID: ticket.VehicleID,
		Operator:  c.operator,
		IssuedAt:  c.clock.Now(),
	}
	c.emitDispatched(cmd)
	return cmd
}

func (c *Console) emitDispatched(cmd domain.Command) {
	event := cmd
	c.emit(domain.Event{
		Kind:      domain.EventCommandDispatched,
		TicketID:  cmd.TicketID,
		VehicleID: cmd.VehicleID,
		Message:   cmd.Summary(),
		Command:   &event,
	})
}
