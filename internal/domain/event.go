package domain

import "time"

type EventKind string

const (
	EventTicketSelected        EventKind = "ticket_selected"
	EventTaskAssigned          EventKind = "task_assigned"
	EventTaskReassigned        EventKind = "task_reassigned"
	EventTaskReleased          EventKind = "task_released"
	EventConfirmationRequested EventKind = "confirmation_requested"
	EventConfirmationCancelled EventKind = "confirmation_cancelled"
	EventCommandDispatched     EventKind = "command_dispatched"
)

// Event is a notification describing a state transition that already
// happened. Consumers display or forward it; they never feed it back.
type Event struct {
	ID        string    `json:"id"`
	Kind      EventKind `json:"kind"`
	At        time.Time `json:"at"`
	TicketID  TicketID  `json:"ticket_id,omitempty"`
	VehicleID VehicleID `json:"vehicle_id,omitempty"`
	Message   string    `json:"message"`

	// PreviousOperator is set on reassignment from another operator.
	PreviousOperator string   `json:"previous_operator,omitempty"`
	Command          *Command `json:"command,omitempty"`
}
