// Package seedfile holds the on-disk ticket seed schema shared by the TOML
// and YAML ticket repositories.
package seedfile

import (
	"fmt"
	"strings"

	"github.com/bnema/remote-assist-console/internal/domain"
)

const CurrentVersion = 1

type File struct {
	Version int      `toml:"version" yaml:"version"`
	Tickets []Ticket `toml:"tickets" yaml:"tickets"`
}

type Ticket struct {
	ID               string `toml:"id" yaml:"id"`
	VehicleID        string `toml:"vehicle_id" yaml:"vehicle_id"`
	Stalled          string `toml:"stalled" yaml:"stalled"`
	Priority         string `toml:"priority" yaml:"priority"`
	Context          string `toml:"context" yaml:"context"`
	Status           string `toml:"status,omitempty" yaml:"status,omitempty"`
	Scenario         string `toml:"scenario,omitempty" yaml:"scenario,omitempty"`
	Issue            string `toml:"issue,omitempty" yaml:"issue,omitempty"`
	Location         string `toml:"location,omitempty" yaml:"location,omitempty"`
	Notes            string `toml:"notes,omitempty" yaml:"notes,omitempty"`
	AssignedTo       string `toml:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
	AssignedOperator string `toml:"assigned_operator,omitempty" yaml:"assigned_operator,omitempty"`
}

func (f *File) ApplyDefaults() {
	if f.Version == 0 {
		f.Version = CurrentVersion
	}
}

func (f File) ValidateVersion() error {
	if f.Version > CurrentVersion {
		return fmt.Errorf("unsupported ticket schema version %d (current %d)", f.Version, CurrentVersion)
	}

	return nil
}

// Decode converts the file entries to domain tickets, keeping file order.
func (f File) Decode() ([]domain.Ticket, error) {
	tickets := make([]domain.Ticket, 0, len(f.Tickets))
	for i, entry := range f.Tickets {
		ticket, err := entry.toDomain()
		if err != nil {
			return nil, fmt.Errorf("ticket %d (%s): %w", i+1, entry.ID, err)
		}
		tickets = append(tickets, ticket)
	}

	return tickets, nil
}

func Encode(tickets []domain.Ticket) File {
	file := File{Version: CurrentVersion, Tickets: make([]Ticket, 0, len(tickets))}
	for _, ticket := range tickets {
		file.Tickets = append(file.Tickets, fromDomain(ticket))
	}

	return file
}

func (t Ticket) toDomain() (domain.Ticket, error) {
	stalled, err := domain.ParseStall(t.Stalled)
	if err != nil {
		return domain.Ticket{}, err
	}

	assignee := domain.Assignee(strings.ToLower(strings.TrimSpace(t.AssignedTo)))
	if assignee == "none" || assignee == "open" {
		assignee = domain.AssigneeNone
	}

	return domain.Ticket{
		ID:               domain.TicketID(strings.TrimSpace(t.ID)),
		VehicleID:        domain.VehicleID(strings.TrimSpace(t.VehicleID)),
		TimeStalled:      stalled,
		Priority:         domain.Priority(strings.ToLower(strings.TrimSpace(t.Priority))),
		Context:          domain.PassengerContext(strings.TrimSpace(t.Context)),
		Status:           t.Status,
		Scenario:         t.Scenario,
		Issue:            t.Issue,
		Location:         t.Location,
		Notes:            t.Notes,
		AssignedTo:       assignee,
		AssignedOperator: strings.TrimSpace(t.AssignedOperator),
	}, nil
}

func fromDomain(ticket domain.Ticket) Ticket {
	return Ticket{
		ID:               string(ticket.ID),
		VehicleID:        string(ticket.VehicleID),
		Stalled:          ticket.StallLabel(),
		Priority:         string(ticket.Priority),
		Context:          string(ticket.Context),
		Status:           ticket.Status,
		Scenario:         ticket.Scenario,
		Issue:            ticket.Issue,
		Location:         ticket.Location,
		Notes:            ticket.Notes,
		AssignedTo:       string(ticket.AssignedTo),
		AssignedOperator: ticket.AssignedOperator,
	}
}
