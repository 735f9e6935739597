package application

import (
	"fmt"

	"github.com/bnema/remote-assist-console/internal/domain"
)

func (c *Console) Mode() domain.Mode {
	return c.session.mode
}

// PathPoints returns the waypoints drawn so far, in insertion order.
func (c *Console) PathPoints() []domain.Point {
	if len(c.session.path) == 0 {
		return nil
	}
	points := make([]domain.Point, len(c.session.path))
	copy(points, c.session.path)
	return points
}

func (c *Console) NudgeAction() domain.NudgeAction {
	return c.session.nudge
}

func (c *Console) PickupLocation() (domain.LatLng, bool) {
	if c.session.pickup == nil {
		return domain.LatLng{}, false
	}
	return *c.session.pickup, true
}

// SelectMode switches the intervention mode and empties the buffers of the
// other two modes. Reselecting the current mode keeps its buffer.
func (c *Console) SelectMode(mode domain.Mode) error {
	if err := c.ensureNoPending(); err != nil {
		return err
	}
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidMode, mode)
	}
	if c.scope != domain.ScopeVehicle {
		return fmt.Errorf("%w: intervention modes need vehicle scope", domain.ErrScopeMismatch)
	}

	c.session.mode = mode
	c.session.keepOnly(mode)
	return nil
}

func (c *Console) AddWaypoint(p domain.Point) error {
	if err := c.ensureModeInput(domain.ModeDraw); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	c.session.path = append(c.session.path, p)
	return nil
}

func (c *Console) ClearPath() error {
	if err := c.ensureModeInput(domain.ModeDraw); err != nil {
		return err
	}

	c.session.path = nil
	return nil
}

func (c *Console) SelectNudgeAction(action domain.NudgeAction) error {
	if err := c.ensureModeInput(domain.ModeNudge); err != nil {
		return err
	}
	if !action.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidNudgeAction, action)
	}

	c.session.nudge = action
	return nil
}

func (c *Console) SetPickupLocation(location domain.LatLng) error {
	if err := c.ensureModeInput(domain.ModeRelocate); err != nil {
		return err
	}
	if err := location.Validate(); err != nil {
		return err
	}

	c.session.pickup = &location
	return nil
}

func (c *Console) ClearPickupLocation() error {
	if err := c.ensureModeInput(domain.ModeRelocate); err != nil {
		return err
	}

	c.session.pickup = nil
	return nil
}

func (c *Console) ensureVehicleInput() (domain.Ticket, error) {
	if err := c.ensureNoPending(); err != nil {
		return domain.Ticket{}, err
	}
	if c.scope != domain.ScopeVehicle {
		return domain.Ticket{}, fmt.Errorf("%w: console is in %s scope", domain.ErrScopeMismatch, c.scope)
	}
	ticket, ok := c.Active()
	if !ok {
		return domain.Ticket{}, domain.ErrNoActiveTicket
	}
	return ticket, nil
}

func (c *Console) ensureModeInput(mode domain.Mode) error {
	if _, err := c.ensureVehicleInput(); err != nil {
		return err
	}
	if c.session.mode != mode {
		return fmt.Errorf("%w: %s input while in %s mode", domain.ErrModeMismatch, mode, c.session.mode)
	}
	return nil
}
