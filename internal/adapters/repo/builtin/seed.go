// Package builtin ships the demo ticket queue used when no seed file has
// been written yet.
package builtin

import (
	"time"

	"github.com/bnema/remote-assist-console/internal/domain"
)

func Tickets() []domain.Ticket {
	return []domain.Ticket{
		{
			ID:               "AV-2847",
			VehicleID:        "RT-4521",
			TimeStalled:      45 * time.Second,
			Priority:         domain.PriorityHigh,
			Context:          domain.ContextPaxWaiting,
			Status:           "Pickup Location Issue",
			Scenario:         "pickup_mismatch",
			Issue:            "Pax unable to locate vehicle",
			Location:         "Civic Center Plaza",
			Notes:            "Pin shows north side, vehicle on south entrance",
			AssignedTo:       domain.AssigneeSelf,
			AssignedOperator: "Sarah K.",
		},
		{
			ID:               "AV-2848",
			VehicleID:        "RT-3309",
			TimeStalled:      12 * time.Second,
			Priority:         domain.PriorityMedium,
			Context:          domain.ContextPaxWaiting,
			Status:           "Complex Navigation",
			Scenario:         "construction",
			Issue:            "Construction zone - needs routing",
			Location:         "5th St between Market & Mission",
			Notes:            "Multiple lane closures, unclear detour signage",
			AssignedTo:       domain.AssigneeOther,
			AssignedOperator: "Mike T.",
		},
		{
			ID:          "AV-2849",
			VehicleID:   "ND-7856",
			TimeStalled: 2*time.Minute + 34*time.Second,
			Priority:    domain.PriorityLow,
			Context:     domain.ContextEmpty,
			Status:      "Route Blocked",
			Scenario:    "event_closure",
			Issue:       "Street closed - marathon event",
			Location:    "Embarcadero & Bay St",
			Notes:       "City marathon in progress, road closure until 2pm",
		},
		{
			ID:          "AV-2850",
			VehicleID:   "RT-2190",
			TimeStalled: 8 * time.Second,
			Priority:    domain.PriorityHigh,
			Context:     domain.ContextPaxOnboard,
			Status:      "Traffic Merge",
			Scenario:    "traffic",
			Issue:       "Unable to merge into traffic",
			Location:    "I-280 Onramp at King St",
			Notes:       "Heavy traffic, waiting for safe merge opportunity",
		},
	}
}
