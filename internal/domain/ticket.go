package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type TicketID string
type VehicleID string

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

type PassengerContext string

const (
	ContextPaxOnboard PassengerContext = "Pax Onboard"
	ContextPaxWaiting PassengerContext = "Pax Waiting"
	ContextEmpty      PassengerContext = "Empty"
	ContextDelivery   PassengerContext = "Delivery"
)

func (c PassengerContext) Valid() bool {
	switch c {
	case ContextPaxOnboard, ContextPaxWaiting, ContextEmpty, ContextDelivery:
		return true
	default:
		return false
	}
}

// Assignee is the ownership state of a ticket. The zero value means open.
type Assignee string

const (
	AssigneeNone  Assignee = ""
	AssigneeSelf  Assignee = "self"
	AssigneeOther Assignee = "other"
)

func (a Assignee) Valid() bool {
	switch a {
	case AssigneeNone, AssigneeSelf, AssigneeOther:
		return true
	default:
		return false
	}
}

func (a Assignee) Label() string {
	switch a {
	case AssigneeNone:
		return "open"
	case AssigneeSelf:
		return "yours"
	default:
		return string(a)
	}
}

type Ticket struct {
	ID               TicketID
	VehicleID        VehicleID
	TimeStalled      time.Duration
	Priority         Priority
	Context          PassengerContext
	Status           string
	Issue            string
	Location         string
	Notes            string
	Scenario         string
	AssignedTo       Assignee
	AssignedOperator string
}

// Validate checks field values and the assignment invariant. localOperator
// is the name of the operator running this console; it may be empty for an
// anonymous operator, in which case self-owned tickets carry no name.
func (t Ticket) Validate(localOperator string) error {
	if strings.TrimSpace(string(t.ID)) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidTicket)
	}
	if strings.TrimSpace(string(t.VehicleID)) == "" {
		return fmt.Errorf("%w: %s: vehicle id is required", ErrInvalidTicket, t.ID)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: %s: unsupported priority %q", ErrInvalidTicket, t.ID, t.Priority)
	}
	if !t.Context.Valid() {
		return fmt.Errorf("%w: %s: unsupported passenger context %q", ErrInvalidTicket, t.ID, t.Context)
	}
	if t.TimeStalled < 0 {
		return fmt.Errorf("%w: %s: negative stall duration", ErrInvalidTicket, t.ID)
	}

	switch t.AssignedTo {
	case AssigneeNone:
		if t.AssignedOperator != "" {
			return fmt.Errorf("%w: %s: open ticket carries operator %q", ErrInvalidTicket, t.ID, t.AssignedOperator)
		}
	case AssigneeSelf:
		if t.AssignedOperator != localOperator {
			return fmt.Errorf("%w: %s: self-assigned ticket carries operator %q", ErrInvalidTicket, t.ID, t.AssignedOperator)
		}
	case AssigneeOther:
		name := strings.TrimSpace(t.AssignedOperator)
		if name == "" {
			return fmt.Errorf("%w: %s: ticket held by another operator has no operator name", ErrInvalidTicket, t.ID)
		}
		if localOperator != "" && name == localOperator {
			return fmt.Errorf("%w: %s: ticket held by another operator names the local operator", ErrInvalidTicket, t.ID)
		}
	default:
		return fmt.Errorf("%w: %s: unsupported assignee %q", ErrInvalidTicket, t.ID, t.AssignedTo)
	}

	return nil
}

// StallLabel formats the stall duration as MM:SS.
func (t Ticket) StallLabel() string {
	return FormatStall(t.TimeStalled)
}

func FormatStall(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ParseStall parses an MM:SS stall label.
func ParseStall(raw string) (time.Duration, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}

	minutes, seconds, ok := strings.Cut(trimmed, ":")
	if !ok {
		return 0, fmt.Errorf("invalid stall duration %q", raw)
	}

	m, err := strconv.Atoi(minutes)
	if err != nil || m < 0 {
		return 0, fmt.Errorf("invalid stall duration %q", raw)
	}
	s, err := strconv.Atoi(seconds)
	if err != nil || s < 0 || s >= 60 {
		return 0, fmt.Errorf("invalid stall duration %q", raw)
	}

	return time.Duration(m)*time.Minute + time.Duration(s)*time.Second, nil
}
