package domain

import (
	"fmt"
	"strings"
)

type IncidentReason string

const (
	ReasonConstructionZone       IncidentReason = "Construction Zone"
	ReasonRoadDebris             IncidentReason = "Road Debris"
	ReasonUnclearLaneMarkings    IncidentReason = "Unclear Lane Markings"
	ReasonEventClosure           IncidentReason = "Event Closure (Marathon/Parade)"
	ReasonPickupLocationMismatch IncidentReason = "Pickup Location Mismatch"
	ReasonNarrowPassage          IncidentReason = "Narrow Passage"
	ReasonHeavyTrafficMerge      IncidentReason = "Heavy Traffic Merge"
	ReasonOtherObstruction       IncidentReason = "Other Obstruction"
)

func IncidentReasons() []IncidentReason {
	return []IncidentReason{
		ReasonConstructionZone,
		ReasonRoadDebris,
		ReasonUnclearLaneMarkings,
		ReasonEventClosure,
		ReasonPickupLocationMismatch,
		ReasonNarrowPassage,
		ReasonHeavyTrafficMerge,
		ReasonOtherObstruction,
	}
}

func (r IncidentReason) Valid() bool {
	for _, known := range IncidentReasons() {
		if r == known {
			return true
		}
	}
	return false
}

// ParseIncidentReason resolves operator input to one of the fixed reasons.
// Matching ignores case and surrounding space; a unique prefix of a reason
// is also accepted so "Event Closure" selects the marathon/parade entry.
func ParseIncidentReason(raw string) (IncidentReason, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	if needle == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidReason)
	}

	var matches []IncidentReason
	for _, reason := range IncidentReasons() {
		candidate := strings.ToLower(string(reason))
		if candidate == needle {
			return reason, nil
		}
		if strings.HasPrefix(candidate, needle) {
			matches = append(matches, reason)
		}
	}

	if len(matches) == 1 {
		return matches[0], nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidReason, raw)
}
