// Package script reads operator event scripts: one console action per line,
// the same grammar the interactive prompt accepts.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/remote-assist-console/internal/application"
	"github.com/bnema/remote-assist-console/internal/domain"
)

var ErrSyntax = errors.New("script syntax error")

type Query string

const (
	QueryReady Query = "ready"
	QueryShow  Query = "show"
)

// Directive is one parsed line. Exactly one of Query and Action.Kind is set.
type Directive struct {
	Line   int
	Text   string
	Query  Query
	Action application.Action
}

// Parse reads a whole script. Blank lines and # comments are skipped.
func Parse(r io.Reader) ([]Directive, error) {
	var directives []Directive

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		directive, ok, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if !ok {
			continue
		}
		directive.Line = line
		directives = append(directives, directive)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	return directives, nil
}

// ParseLine parses one line. ok is false for blank and comment lines.
func ParseLine(raw string) (Directive, bool, error) {
	text := raw
	if i := strings.Index(text, "#"); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Directive{}, false, nil
	}

	verb, rest, _ := strings.Cut(text, " ")
	verb = strings.ToLower(verb)
	rest = strings.TrimSpace(rest)
	args := fields(rest)

	directive := Directive{Text: text}
	action := application.Action{Kind: application.ActionKind(verb)}

	switch action.Kind {
	case application.ActionSelectTicket:
		if len(args) != 1 {
			return Directive{}, false, usage("select TICKET")
		}
		action.TicketID = domain.TicketID(args[0])
	case application.ActionTakeTask, application.ActionConfirmTake, application.ActionReleaseTask:
		if len(args) > 1 {
			return Directive{}, false, usage(verb + " [TICKET]")
		}
		if len(args) == 1 {
			action.TicketID = domain.TicketID(args[0])
		}
	case application.ActionSelectMode:
		if len(args) != 1 {
			return Directive{}, false, usage("mode draw|nudge|relocate")
		}
		action.Mode = domain.Mode(strings.ToLower(args[0]))
	case application.ActionAddWaypoint:
		x, y, err := pair(args, "waypoint X Y")
		if err != nil {
			return Directive{}, false, err
		}
		action.Point = domain.Point{X: x, Y: y}
	case application.ActionSelectNudge:
		if len(args) != 1 {
			return Directive{}, false, usage("nudge ACTION")
		}
		action.Nudge = domain.NudgeAction(enumArg(args[0]))
	case application.ActionSetPickup, application.ActionPlaceBlocker:
		lat, lng, err := pair(args, verb+" LAT LNG")
		if err != nil {
			return Directive{}, false, err
		}
		action.Location = domain.LatLng{Lat: lat, Lng: lng}
	case application.ActionSetScope:
		if len(args) != 1 {
			return Directive{}, false, usage("scope vehicle|fleet")
		}
		action.Scope = domain.Scope(strings.ToLower(args[0]))
	case application.ActionSelectBlocker:
		if len(args) != 1 {
			return Directive{}, false, usage("blocker " + choices(domain.BlockerActions()))
		}
		action.Blocker = domain.BlockerAction(enumArg(args[0]))
	case application.ActionSetReason:
		if rest == "" {
			return Directive{}, false, usage("reason TEXT")
		}
		reason, err := domain.ParseIncidentReason(rest)
		if err != nil {
			return Directive{}, false, err
		}
		action.Reason = reason
	case application.ActionCancelTake,
		application.ActionClearPath,
		application.ActionClearPickup,
		application.ActionToggleHold,
		application.ActionToggleHazards,
		application.ActionHonk,
		application.ActionFlashLights,
		application.ActionClearBlocker,
		application.ActionClearReason,
		application.ActionDispatch,
		application.ActionConfirmFleet,
		application.ActionDeclineFleet:
		if len(args) != 0 {
			return Directive{}, false, usage(verb)
		}
	default:
		switch Query(verb) {
		case QueryReady, QueryShow:
			if len(args) != 0 {
				return Directive{}, false, usage(verb)
			}
			directive.Query = Query(verb)
			return directive, true, nil
		}
		return Directive{}, false, fmt.Errorf("%w: unknown action %q", ErrSyntax, verb)
	}

	directive.Action = action
	return directive, true, nil
}

func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
}

func enumArg(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "-", "_")
}

func pair(args []string, form string) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, usage(form)
	}
	a, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a number", ErrSyntax, args[0])
	}
	b, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a number", ErrSyntax, args[1])
	}
	return a, b, nil
}

func choices[T ~string](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return strings.Join(names, "|")
}

func usage(form string) error {
	return fmt.Errorf("%w: usage: %s", ErrSyntax, form)
}
