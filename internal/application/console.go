package application

import (
	"fmt"
	"strings"

	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/bnema/remote-assist-console/internal/ports"
	"github.com/google/uuid"
)

// DefaultAffectedVehicles is the placeholder fleet size quoted when asking
// the operator to confirm a fleet-wide map edit.
const DefaultAffectedVehicles = 12

// ReasonPolicy decides what happens to the incident reason after a command
// has been sent.
type ReasonPolicy string

const (
	ReasonPolicyKeep  ReasonPolicy = "keep"
	ReasonPolicyClear ReasonPolicy = "clear"
)

func (p ReasonPolicy) Valid() bool {
	return p == ReasonPolicyKeep || p == ReasonPolicyClear
}

type ConsoleOptions struct {
	// Operator is the local operator's display name. Empty means anonymous.
	Operator         string
	AffectedVehicles int
	ReasonPolicy     ReasonPolicy
	Clock            ports.Clock
	Events           ports.EventPublisher
	NewID            func() string
}

// Console is the single-operator intervention state machine. It is not safe
// for concurrent use; callers deliver one operator event at a time.
type Console struct {
	operator     string
	affected     int
	reasonPolicy ReasonPolicy
	clock        ports.Clock
	events       ports.EventPublisher
	newID        func() string

	tickets  []domain.Ticket
	index    map[domain.TicketID]int
	activeID domain.TicketID

	scope    domain.Scope
	session  interventionSession
	fleet    fleetSession
	reason   domain.IncidentReason
	vehicles map[domain.VehicleID]domain.VehicleState
	pending  *Confirmation
}

type interventionSession struct {
	mode   domain.Mode
	path   []domain.Point
	nudge  domain.NudgeAction
	pickup *domain.LatLng
}

// keepOnly empties every buffer that does not belong to mode.
func (s *interventionSession) keepOnly(mode domain.Mode) {
	if mode != domain.ModeDraw {
		s.path = nil
	}
	if mode != domain.ModeNudge {
		s.nudge = ""
	}
	if mode != domain.ModeRelocate {
		s.pickup = nil
	}
}

func (s *interventionSession) clearBuffers() {
	s.path = nil
	s.nudge = ""
	s.pickup = nil
}

type fleetSession struct {
	action   domain.BlockerAction
	location *domain.LatLng
}

func (f *fleetSession) clear() {
	f.action = ""
	f.location = nil
}

func NewConsole(tickets []domain.Ticket, opts ConsoleOptions) (*Console, error) {
	if opts.AffectedVehicles <= 0 {
		opts.AffectedVehicles = DefaultAffectedVehicles
	}
	if opts.ReasonPolicy == "" {
		opts.ReasonPolicy = ReasonPolicyKeep
	}
	if !opts.ReasonPolicy.Valid() {
		return nil, fmt.Errorf("unsupported reason policy %q", opts.ReasonPolicy)
	}
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.Events == nil {
		opts.Events = ports.EventPublisherFunc(func(domain.Event) {})
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	operator := strings.TrimSpace(opts.Operator)
	c := &Console{
		operator:     operator,
		affected:     opts.AffectedVehicles,
		reasonPolicy: opts.ReasonPolicy,
		clock:        opts.Clock,
		events:       opts.Events,
		newID:        opts.NewID,
		tickets:      make([]domain.Ticket, 0, len(tickets)),
		index:        make(map[domain.TicketID]int, len(tickets)),
		scope:        domain.ScopeVehicle,
		session:      interventionSession{mode: domain.ModeDraw},
		vehicles:     map[domain.VehicleID]domain.VehicleState{},
	}

	vehicles := make(map[domain.VehicleID]domain.TicketID, len(tickets))
	for _, ticket := range tickets {
		if ticket.AssignedTo == domain.AssigneeSelf {
			// "self" always means whoever runs this console.
			ticket.AssignedOperator = operator
		}
		if err := ticket.Validate(operator); err != nil {
			return nil, err
		}
		if _, ok := c.index[ticket.ID]; ok {
			return nil, fmt.Errorf("%w: id %s", domain.ErrDuplicateTicket, ticket.ID)
		}
		if other, ok := vehicles[ticket.VehicleID]; ok {
			return nil, fmt.Errorf("%w: vehicle %s on %s and %s", domain.ErrDuplicateTicket, ticket.VehicleID, other, ticket.ID)
		}
		vehicles[ticket.VehicleID] = ticket.ID
		c.index[ticket.ID] = len(c.tickets)
		c.tickets = append(c.tickets, ticket)
	}

	if len(c.tickets) > 0 {
		c.activeID = c.tickets[0].ID
	}

	return c, nil
}

func (c *Console) Operator() string {
	return c.operator
}

func (c *Console) Scope() domain.Scope {
	return c.scope
}

func (c *Console) Reason() domain.IncidentReason {
	return c.reason
}

// SetReason selects the incident reason shared by both scopes.
func (c *Console) SetReason(reason domain.IncidentReason) error {
	if err := c.ensureNoPending(); err != nil {
		return err
	}
	if !reason.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidReason, reason)
	}

	c.reason = reason
	return nil
}

func (c *Console) ClearReason() error {
	if err := c.ensureNoPending(); err != nil {
		return err
	}

	c.reason = ""
	return nil
}

// ensureNoPending makes confirmations modal: nothing else may change state
// while the operator is being asked to confirm.
func (c *Console) ensureNoPending() error {
	if c.pending != nil {
		return fmt.Errorf("%w: %s", domain.ErrConfirmationPending, c.pending.Kind)
	}
	return nil
}

func (c *Console) emit(event domain.Event) {
	event.ID = c.newID()
	event.At = c.clock.Now()
	c.events.Publish(event)
}
