package script

import (
	"strings"
	"testing"

	"github.com/bnema/remote-assist-console/internal/application"
	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want application.Action
	}{
		{line: "select AV-2848", want: application.Action{Kind: application.ActionSelectTicket, TicketID: "AV-2848"}},
		{line: "take", want: application.Action{Kind: application.ActionTakeTask}},
		{line: "TAKE AV-2849", want: application.Action{Kind: application.ActionTakeTask, TicketID: "AV-2849"}},
		{line: "confirm-take AV-2848", want: application.Action{Kind: application.ActionConfirmTake, TicketID: "AV-2848"}},
		{line: "mode Relocate", want: application.Action{Kind: application.ActionSelectMode, Mode: domain.ModeRelocate}},
		{line: "waypoint 10 15.5", want: application.Action{Kind: application.ActionAddWaypoint, Point: domain.Point{X: 10, Y: 15.5}}},
		{line: "nudge pull-over", want: application.Action{Kind: application.ActionSelectNudge, Nudge: domain.NudgePullOver}},
		{line: "pickup 37.7749, -122.4194", want: application.Action{Kind: application.ActionSetPickup, Location: domain.LatLng{Lat: 37.7749, Lng: -122.4194}}},
		{line: "place 37.78 -122.41  # pin", want: application.Action{Kind: application.ActionPlaceBlocker, Location: domain.LatLng{Lat: 37.78, Lng: -122.41}}},
		{line: "scope fleet", want: application.Action{Kind: application.ActionSetScope, Scope: domain.ScopeFleet}},
		{line: "blocker road-closure", want: application.Action{Kind: application.ActionSelectBlocker, Blocker: domain.BlockerRoadClosure}},
		{line: "reason event closure", want: application.Action{Kind: application.ActionSetReason, Reason: domain.ReasonEventClosure}},
		{line: "reason Construction Zone", want: application.Action{Kind: application.ActionSetReason, Reason: domain.ReasonConstructionZone}},
		{line: "send", want: application.Action{Kind: application.ActionDispatch}},
		{line: "  decline ", want: application.Action{Kind: application.ActionDeclineFleet}},
		{line: "hazards", want: application.Action{Kind: application.ActionToggleHazards}},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			directive, ok, err := ParseLine(tc.line)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tc.want, directive.Action)
			assert.Empty(t, directive.Query)
		})
	}
}

func TestParseLineQueriesAndComments(t *testing.T) {
	t.Parallel()

	directive, ok, err := ParseLine("ready")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, QueryReady, directive.Query)

	for _, line := range []string{"", "   ", "# just a comment"} {
		_, ok, err := ParseLine(line)
		require.NoError(t, err)
		assert.False(t, ok, line)
	}
}

func TestParseLineErrors(t *testing.T) {
	t.Parallel()

	for _, line := range []string{
		"teleport AV-1",
		"select",
		"select A B",
		"waypoint 1",
		"waypoint a b",
		"pickup 1 2 3",
		"send now",
		"show everything",
		"reason",
	} {
		_, _, err := ParseLine(line)
		assert.ErrorIs(t, err, ErrSyntax, line)
	}

	_, _, err := ParseLine("reason Alien Landing")
	assert.ErrorIs(t, err, domain.ErrInvalidReason)
}

func TestParseReportsLineNumbers(t *testing.T) {
	t.Parallel()

	directives, err := Parse(strings.NewReader("# demo\nselect AV-2848\n\ntake\n"))
	require.NoError(t, err)
	require.Len(t, directives, 2)
	assert.Equal(t, 2, directives[0].Line)
	assert.Equal(t, 4, directives[1].Line)
	assert.Equal(t, "take", directives[1].Text)

	_, err = Parse(strings.NewReader("take\nbogus\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestParseLineBlockerUsageListsActions(t *testing.T) {
	t.Parallel()

	_, _, err := ParseLine("blocker")
	require.ErrorIs(t, err, ErrSyntax)
	assert.Contains(t, err.Error(), "usage: blocker road_closure|hazard|construction")
}
