package domain

type BlockerAction string

const (
	BlockerRoadClosure  BlockerAction = "road_closure"
	BlockerHazard       BlockerAction = "hazard"
	BlockerConstruction BlockerAction = "construction"
)

func BlockerActions() []BlockerAction {
	return []BlockerAction{BlockerRoadClosure, BlockerHazard, BlockerConstruction}
}

func (a BlockerAction) Valid() bool {
	switch a {
	case BlockerRoadClosure, BlockerHazard, BlockerConstruction:
		return true
	default:
		return false
	}
}

func (a BlockerAction) Label() string {
	switch a {
	case BlockerRoadClosure:
		return "Mark Road Closed"
	case BlockerHazard:
		return "Report Hazard"
	case BlockerConstruction:
		return "Construction Zone"
	default:
		return string(a)
	}
}

// Effect describes the fleet-wide change in the words used when asking the
// operator to confirm it.
func (a BlockerAction) Effect() string {
	switch a {
	case BlockerRoadClosure:
		return "mark this road as CLOSED"
	case BlockerHazard:
		return "report a HAZARD on this road"
	case BlockerConstruction:
		return "mark this area as a CONSTRUCTION ZONE"
	default:
		return string(a)
	}
}
