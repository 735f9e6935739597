package console

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/remote-assist-console/internal/application"
	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// stallBarFull is the stall time at which the urgency bar is full.
const stallBarFull = 3 * time.Minute

type RenderOptions struct {
	// Notice is shown under the header, typically the latest event message.
	Notice string
}

func renderView(snap application.Snapshot, opts RenderOptions, s styles) string {
	operator := snap.Operator
	if operator == "" {
		operator = "anonymous"
	}

	lines := []string{
		s.title.Render("Remote Assistance Console") + "  " + s.header.Render("operator: "+operator),
		s.header.Render(fmt.Sprintf("queue: %d tickets, %d open, %d yours", snap.Queue.Total, snap.Queue.Open, snap.Queue.Mine)),
	}
	if opts.Notice != "" {
		lines = append(lines, s.notice.Render(opts.Notice))
	}

	lines = append(lines, s.section.Render(renderQueue(snap, s)))
	if active, ok := activeTicket(snap); ok {
		lines = append(lines, s.section.Render(renderActive(active, snap.Vehicle, s)))
	}
	lines = append(lines, s.section.Render(renderIntervention(snap, s)))
	if snap.Pending != nil {
		lines = append(lines, s.section.Render(renderPending(*snap.Pending, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderQueue(snap application.Snapshot, s styles) string {
	if len(snap.Tickets) == 0 {
		return s.faint.Render("No tickets in queue.")
	}

	rows := make([]string, 0, len(snap.Tickets))
	for _, ticket := range snap.Tickets {
		marker := "  "
		id := s.detail.Render(string(ticket.ID))
		if ticket.Active {
			marker = s.active.Render("> ")
			id = s.active.Render(string(ticket.ID))
		}

		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Top,
			marker,
			id,
			"  ",
			s.detail.Render(fmt.Sprintf("%-8s", ticket.VehicleID)),
			" ",
			renderStallBar(ticket.Stalled, 8, s),
			" ",
			s.detail.Render(ticket.Stalled),
			"  ",
			priorityStyle(ticket.Priority, s).Render(fmt.Sprintf("%-6s", strings.ToUpper(string(ticket.Priority)))),
			"  ",
			s.label.Render(fmt.Sprintf("%-11s", ticket.Context)),
			"  ",
			renderBadge(ticket, s),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderBadge(ticket application.TicketView, s styles) string {
	switch ticket.AssignedTo {
	case domain.AssigneeSelf:
		return s.badgeMine.Render("[yours]")
	case domain.AssigneeOther:
		return s.badgeOther.Render("[" + ticket.AssignedOperator + "]")
	default:
		return s.badgeOpen.Render("[open]")
	}
}

func priorityStyle(priority domain.Priority, s styles) lipgloss.Style {
	switch priority {
	case domain.PriorityHigh:
		return s.high
	case domain.PriorityMedium:
		return s.medium
	default:
		return s.low
	}
}

func renderActive(ticket application.TicketView, vehicle domain.VehicleState, s styles) string {
	parts := []string{
		s.active.Render(fmt.Sprintf("%s  %s", ticket.ID, ticket.VehicleID)) + "  " + s.detail.Render(ticket.Status),
	}
	if ticket.Issue != "" {
		parts = append(parts, s.detail.Render(ticket.Issue))
	}
	if ticket.Location != "" {
		parts = append(parts, s.label.Render("location: ")+s.detail.Render(ticket.Location))
	}
	if ticket.Notes != "" {
		parts = append(parts, s.faint.Render(ticket.Notes))
	}
	parts = append(parts, lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Render("hold: "),
		renderToggle(vehicle.HoldForInstructions, s),
		"  ",
		s.label.Render("hazards: "),
		renderToggle(vehicle.HazardsOn, s),
	))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderToggle(on bool, s styles) string {
	if on {
		return s.toggleOn.Render("ON")
	}
	return s.faint.Render("off")
}

func renderIntervention(snap application.Snapshot, s styles) string {
	var parts []string

	if snap.Scope == domain.ScopeFleet {
		parts = append(parts, s.label.Render("scope: ")+s.detail.Render("fleet (all vehicles)"))
		action := "none"
		if snap.BlockerAction != "" {
			action = snap.BlockerAction.Label()
		}
		parts = append(parts, s.label.Render("blocker: ")+s.detail.Render(action))
		parts = append(parts, s.label.Render("pin: ")+s.detail.Render(formatLocation(snap.BlockerLocation)))
	} else {
		parts = append(parts, s.label.Render("scope: ")+s.detail.Render("this vehicle")+"  "+s.label.Render("mode: ")+s.detail.Render(snap.Mode.Label()))
		switch snap.Mode {
		case domain.ModeDraw:
			parts = append(parts, s.label.Render("path: ")+s.detail.Render(formatPath(snap.PathPoints)))
		case domain.ModeNudge:
			action := "none"
			if snap.NudgeAction != "" {
				action = snap.NudgeAction.Label()
			}
			parts = append(parts, s.label.Render("nudge: ")+s.detail.Render(action))
		case domain.ModeRelocate:
			parts = append(parts, s.label.Render("pickup: ")+s.detail.Render(formatLocation(snap.PickupLocation)))
		}
	}

	reason := "none"
	if snap.Reason != "" {
		reason = string(snap.Reason)
	}
	parts = append(parts, s.label.Render("reason: ")+s.detail.Render(reason))

	if snap.Readiness.Ready {
		parts = append(parts, s.ready.Render("[ "+snap.Readiness.Hint+" ]"))
	} else {
		parts = append(parts, s.notReady.Render("[ "+snap.Readiness.Hint+" ]"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderPending(pending application.Confirmation, s styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.prompt.Render(pending.Prompt()),
		s.faint.Render(pendingHint(pending.Kind)),
	)
}

func pendingHint(kind application.ConfirmationKind) string {
	if kind == application.ConfirmationTakeover {
		return "confirm-take to take over, cancel-take to keep it with them"
	}
	return "confirm to update the fleet map, decline to go back"
}

func activeTicket(snap application.Snapshot) (application.TicketView, bool) {
	for _, ticket := range snap.Tickets {
		if ticket.Active {
			return ticket, true
		}
	}
	return application.TicketView{}, false
}

func formatPath(points []domain.Point) string {
	if len(points) == 0 {
		return "no waypoints"
	}

	parts := make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, fmt.Sprintf("(%g, %g)", p.X, p.Y))
	}
	return fmt.Sprintf("%d waypoints %s", len(points), strings.Join(parts, " -> "))
}

func formatLocation(location *domain.LatLng) string {
	if location == nil {
		return "not set"
	}
	return location.String()
}

func renderStallBar(stalled string, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	d, err := domain.ParseStall(stalled)
	if err != nil {
		d = 0
	}

	fraction := math.Min(float64(d)/float64(stallBarFull), 1)
	filled := int(math.Round(float64(width) * fraction))
	if filled < 0 {
		filled = 0
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}
