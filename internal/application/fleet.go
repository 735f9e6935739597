package application

import (
	"fmt"

	"github.com/bnema/remote-assist-console/internal/domain"
)

func (c *Console) BlockerAction() domain.BlockerAction {
	return c.fleet.action
}

func (c *Console) BlockerLocation() (domain.LatLng, bool) {
	if c.fleet.location == nil {
		return domain.LatLng{}, false
	}
	return *c.fleet.location, true
}

// SetScope moves between vehicle and fleet scope.
func (c *Console) SetScope(scope domain.Scope) error {
	switch scope {
	case domain.ScopeVehicle:
		return c.LeaveFleetScope()
	case domain.ScopeFleet:
		return c.EnterFleetScope()
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidScope, scope)
	}
}

// EnterFleetScope drops every vehicle intervention buffer. The selected
// mode, the reason and per-vehicle toggles are kept.
func (c *Console) EnterFleetScope() error {
	if err := c.ensureNoPending(); err != nil {
		return err
	}
	if c.scope == domain.ScopeFleet {
		return nil
	}

	c.scope = domain.ScopeFleet
	c.session.clearBuffers()
	return nil
}

// LeaveFleetScope drops the blocker action and its pin.
func (c *Console) LeaveFleetScope() error {
	if err := c.ensureNoPending(); err != nil {
		return err
	}
	if c.scope == domain.ScopeVehicle {
		return nil
	}

	c.scope = domain.ScopeVehicle
	c.fleet.clear()
	return nil
}

// SelectBlockerAction picks a blocker and always drops any placed pin, so a
// pin is never paired with an action chosen after it.
func (c *Console) SelectBlockerAction(action domain.BlockerAction) error {
	if err := c.ensureFleetInput(); err != nil {
		return err
	}
	if !action.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidBlockerAction, action)
	}

	c.fleet.action = action
	c.fleet.location = nil
	return nil
}

func (c *Console) ClearBlockerAction() error {
	if err := c.ensureFleetInput(); err != nil {
		return err
	}

	c.fleet.clear()
	return nil
}

func (c *Console) PlaceBlocker(location domain.LatLng) error {
	if err := c.ensureFleetInput(); err != nil {
		return err
	}
	if c.fleet.action == "" {
		return domain.ErrNoActionSelected
	}
	if err := location.Validate(); err != nil {
		return err
	}

	c.fleet.location = &location
	return nil
}

func (c *Console) ensureFleetInput() error {
	if err := c.ensureNoPending(); err != nil {
		return err
	}
	if c.scope != domain.ScopeFleet {
		return fmt.Errorf("%w: blocker edits need fleet scope", domain.ErrScopeMismatch)
	}
	return nil
}
