package domain

type Scope string

const (
	ScopeVehicle Scope = "vehicle"
	ScopeFleet   Scope = "fleet"
)

func (s Scope) Valid() bool {
	return s == ScopeVehicle || s == ScopeFleet
}

type Mode string

const (
	ModeDraw     Mode = "draw"
	ModeNudge    Mode = "nudge"
	ModeRelocate Mode = "relocate"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeDraw, ModeNudge, ModeRelocate:
		return true
	default:
		return false
	}
}

func (m Mode) Label() string {
	switch m {
	case ModeDraw:
		return "Draw Path"
	case ModeNudge:
		return "Nudge"
	case ModeRelocate:
		return "Relocate Pickup"
	default:
		return string(m)
	}
}

type NudgeAction string

const (
	NudgePullOver      NudgeAction = "pull_over"
	NudgeProceedSlowly NudgeAction = "proceed_slowly"
	NudgeWait          NudgeAction = "wait"
	NudgeResume        NudgeAction = "resume"
	NudgeMoveLeft      NudgeAction = "move_left"
	NudgeMoveRight     NudgeAction = "move_right"
)

func NudgeActions() []NudgeAction {
	return []NudgeAction{
		NudgePullOver,
		NudgeProceedSlowly,
		NudgeWait,
		NudgeResume,
		NudgeMoveLeft,
		NudgeMoveRight,
	}
}

func (a NudgeAction) Valid() bool {
	for _, known := range NudgeActions() {
		if a == known {
			return true
		}
	}
	return false
}

func (a NudgeAction) Label() string {
	switch a {
	case NudgePullOver:
		return "Pull Over Safely"
	case NudgeProceedSlowly:
		return "Proceed Slowly (5 mph)"
	case NudgeWait:
		return "Wait for Clear Signal"
	case NudgeResume:
		return "Resume Normal Speed"
	case NudgeMoveLeft:
		return "Move Left 2 ft"
	case NudgeMoveRight:
		return "Move Right 2 ft"
	default:
		return string(a)
	}
}

// VehicleState is the actual state of a vehicle's quick-action toggles. It
// is keyed by vehicle and outlives any intervention session.
type VehicleState struct {
	HoldForInstructions bool `json:"hold_for_instructions"`
	HazardsOn           bool `json:"hazards_on"`
}
