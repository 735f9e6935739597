package application

import (
	"github.com/bnema/remote-assist-console/internal/domain"
)

// ActionKind names one operator event. The string values double as the
// verbs of the operator script.
type ActionKind string

const (
	ActionSelectTicket  ActionKind = "select"
	ActionTakeTask      ActionKind = "take"
	ActionConfirmTake   ActionKind = "confirm-take"
	ActionCancelTake    ActionKind = "cancel-take"
	ActionReleaseTask   ActionKind = "release"
	ActionSelectMode    ActionKind = "mode"
	ActionAddWaypoint   ActionKind = "waypoint"
	ActionClearPath     ActionKind = "clear-path"
	ActionSelectNudge   ActionKind = "nudge"
	ActionSetPickup     ActionKind = "pickup"
	ActionClearPickup   ActionKind = "clear-pickup"
	ActionToggleHold    ActionKind = "hold"
	ActionToggleHazards ActionKind = "hazards"
	ActionHonk          ActionKind = "honk"
	ActionFlashLights   ActionKind = "flash"
	ActionSetScope      ActionKind = "scope"
	ActionSelectBlocker ActionKind = "blocker"
	ActionClearBlocker  ActionKind = "clear-blocker"
	ActionPlaceBlocker  ActionKind = "place"
	ActionSetReason     ActionKind = "reason"
	ActionClearReason   ActionKind = "clear-reason"
	ActionDispatch      ActionKind = "send"
	ActionConfirmFleet  ActionKind = "confirm"
	ActionDeclineFleet  ActionKind = "decline"
)

// Action is one operator event with whichever argument its kind needs.
type Action struct {
	Kind     ActionKind
	TicketID domain.TicketID
	Mode     domain.Mode
	Point    domain.Point
	Nudge    domain.NudgeAction
	Location domain.LatLng
	Scope    domain.Scope
	Blocker  domain.BlockerAction
	Reason   domain.IncidentReason
}

// Outcome reports what an action did beyond changing console state.
type Outcome struct {
	Take         TakeOutcome     `json:"take,omitempty"`
	Released     *bool           `json:"released,omitempty"`
	Toggled      *bool           `json:"toggled,omitempty"`
	Command      *domain.Command `json:"command,omitempty"`
	Confirmation *Confirmation   `json:"confirmation,omitempty"`
}
