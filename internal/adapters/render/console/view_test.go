package console

import (
	"testing"

	"github.com/bnema/remote-assist-console/internal/adapters/repo/builtin"
	"github.com/bnema/remote-assist-console/internal/application"
	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSnapshotConsole(t *testing.T) *application.Console {
	t.Helper()

	c, err := application.NewConsole(builtin.Tickets(), application.ConsoleOptions{Operator: "Sarah K."})
	require.NoError(t, err)
	return c
}

func TestRenderVehicleScope(t *testing.T) {
	c := newSnapshotConsole(t)
	require.NoError(t, c.AddWaypoint(domain.Point{X: 10, Y: 10}))
	require.NoError(t, c.AddWaypoint(domain.Point{X: 20, Y: 15}))
	_, _, err := c.ToggleHazards()
	require.NoError(t, err)

	output, err := Render(c.Snapshot(), RenderOptions{Notice: "Hazards ON - RT-4521"})
	require.NoError(t, err)

	assert.Contains(t, output, "operator: Sarah K.")
	assert.Contains(t, output, "queue: 4 tickets, 2 open, 1 yours")
	assert.Contains(t, output, "Hazards ON - RT-4521")
	assert.Contains(t, output, "> AV-2847")
	assert.Contains(t, output, "[Mike T.]")
	assert.Contains(t, output, "[open]")
	assert.Contains(t, output, "Civic Center Plaza")
	assert.Contains(t, output, "mode: Draw Path")
	assert.Contains(t, output, "2 waypoints (10, 10) -> (20, 15)")
	assert.Contains(t, output, "hazards: ON")
	assert.Contains(t, output, "[ Select reason first ]")
}

func TestRenderFleetScopeWithPendingConfirmation(t *testing.T) {
	c := newSnapshotConsole(t)
	require.NoError(t, c.EnterFleetScope())
	require.NoError(t, c.SelectBlockerAction(domain.BlockerConstruction))
	require.NoError(t, c.PlaceBlocker(domain.LatLng{Lat: 37.78, Lng: -122.41}))
	require.NoError(t, c.SetReason(domain.ReasonConstructionZone))
	_, err := c.Dispatch()
	require.NoError(t, err)

	output := View(c.Snapshot(), RenderOptions{})

	assert.Contains(t, output, "fleet (all vehicles)")
	assert.Contains(t, output, "blocker: Construction Zone")
	assert.Contains(t, output, "pin: 37.780000, -122.410000")
	assert.Contains(t, output, "[ Requires confirmation ]")
	assert.Contains(t, output, "mark this area as a CONSTRUCTION ZONE")
	assert.Contains(t, output, "confirm to update the fleet map")
}

func TestRenderEmptyQueue(t *testing.T) {
	c, err := application.NewConsole(nil, application.ConsoleOptions{})
	require.NoError(t, err)

	output, err := Render(c.Snapshot(), RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "operator: anonymous")
	assert.Contains(t, output, "No tickets in queue.")
	assert.Contains(t, output, "[ Select a ticket first ]")
}

func TestRenderStallBar(t *testing.T) {
	s := newStyles()
	assert.Equal(t, "[----]", renderStallBar("00:00", 4, s))
	assert.Equal(t, "[==--]", renderStallBar("01:30", 4, s))
	assert.Equal(t, "[====]", renderStallBar("09:00", 4, s))
}
