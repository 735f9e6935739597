package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIncidentReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    IncidentReason
		wantErr bool
	}{
		{name: "exact", raw: "Construction Zone", want: ReasonConstructionZone},
		{name: "case insensitive", raw: "  road debris ", want: ReasonRoadDebris},
		{name: "unique prefix", raw: "Event Closure", want: ReasonEventClosure},
		{name: "prefix of no reason", raw: "Zebra", wantErr: true},
		{name: "unknown", raw: "Alien Landing", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseIncidentReason(tc.raw)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidReason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIncidentReasonsAreFixed(t *testing.T) {
	t.Parallel()

	reasons := IncidentReasons()
	require.Len(t, reasons, 8)
	for _, reason := range reasons {
		assert.True(t, reason.Valid(), reason)
	}
	assert.False(t, IncidentReason("Construction").Valid())
}

func TestEnumerationsValidity(t *testing.T) {
	t.Parallel()

	assert.Len(t, NudgeActions(), 6)
	for _, action := range NudgeActions() {
		assert.True(t, action.Valid())
		assert.NotEqual(t, string(action), action.Label())
	}
	assert.False(t, NudgeAction("reverse").Valid())

	assert.Len(t, BlockerActions(), 3)
	for _, action := range BlockerActions() {
		assert.True(t, action.Valid())
		assert.NotEmpty(t, action.Effect())
	}
	assert.False(t, BlockerAction("flood").Valid())

	assert.True(t, ModeDraw.Valid())
	assert.False(t, Mode("erase").Valid())
	assert.True(t, ScopeFleet.Valid())
	assert.False(t, Scope("region").Valid())
}

func TestLatLngValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, LatLng{Lat: 37.78, Lng: -122.41}.Validate())
	assert.ErrorIs(t, LatLng{Lat: 91, Lng: 0}.Validate(), ErrInvalidCoordinate)
	assert.ErrorIs(t, LatLng{Lat: 0, Lng: -181}.Validate(), ErrInvalidCoordinate)
	assert.ErrorIs(t, LatLng{Lat: math.NaN(), Lng: 0}.Validate(), ErrInvalidCoordinate)
	assert.Equal(t, "37.780000, -122.410000", LatLng{Lat: 37.78, Lng: -122.41}.String())
}

func TestPointValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Point{X: 10, Y: -15.5}.Validate())
	assert.ErrorIs(t, Point{X: math.NaN(), Y: 1}.Validate(), ErrInvalidCoordinate)
	assert.ErrorIs(t, Point{X: 1, Y: math.Inf(1)}.Validate(), ErrInvalidCoordinate)
	assert.ErrorIs(t, Point{X: math.Inf(-1), Y: 0}.Validate(), ErrInvalidCoordinate)
}

func TestCommandSummary(t *testing.T) {
	t.Parallel()

	pickup := LatLng{Lat: 37.7, Lng: -122.4}
	tests := []struct {
		cmd  Command
		want string
	}{
		{cmd: Command{Kind: CommandPath, VehicleID: "RT-1", Path: []Point{{X: 1, Y: 1}, {X: 2, Y: 2}}}, want: "Sending path with 2 waypoints to RT-1"},
		{cmd: Command{Kind: CommandNudge, VehicleID: "RT-1", Nudge: NudgePullOver}, want: `Sending "Pull Over Safely" to RT-1`},
		{cmd: Command{Kind: CommandRelocatePickup, VehicleID: "RT-1", Pickup: &pickup}, want: "Updating pickup pin for RT-1"},
		{cmd: Command{Kind: CommandHold, VehicleID: "RT-1"}, want: "Vehicle holding position - RT-1"},
		{cmd: Command{Kind: CommandFleetMapEdit, Fleet: &BlockerEdit{Action: BlockerHazard, AffectedVehicles: 12}}, want: "Fleet map updated: hazard, 12 vehicles rerouted"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.cmd.Summary())
	}

	assert.True(t, CommandHonk.QuickAction())
	assert.False(t, CommandPath.QuickAction())
}
