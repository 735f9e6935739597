package script

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bnema/remote-assist-console/internal/adapters/outbox/file"
	"github.com/bnema/remote-assist-console/internal/adapters/repo/builtin"
	"github.com/bnema/remote-assist-console/internal/application"
	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T) (*Runner, *file.Outbox, *bytes.Buffer) {
	t.Helper()

	outbox := file.NewOutbox(t.TempDir())
	service, err := application.NewService(context.Background(), builtin.Repository{}, outbox, application.ConsoleOptions{
		Operator: "Sarah K.",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	return NewRunner(service, &out, nil), outbox, &out
}

func TestRunnerPlaysDrawScenario(t *testing.T) {
	runner, outbox, out := newTestRunner(t)

	directives, err := Parse(strings.NewReader(strings.Join([]string{
		"mode draw",
		"waypoint 10 10",
		"waypoint 20 15",
		"ready",
		"reason Construction Zone",
		"ready",
		"send",
	}, "\n")))
	require.NoError(t, err)

	result, err := runner.Run(context.Background(), directives)
	require.NoError(t, err)
	assert.Equal(t, Result{Executed: 7}, result)

	output := out.String()
	assert.Contains(t, output, "4> ready\nnot ready: Select reason first")
	assert.Contains(t, output, "6> ready\nready: Ready to send")
	assert.Contains(t, output, "sent: Sending path with 2 waypoints to RT-4521")

	commands, err := outbox.List(context.Background())
	require.NoError(t, err)
	require.Len(t, commands, 1)
	assert.Equal(t, []domain.Point{{X: 10, Y: 10}, {X: 20, Y: 15}}, commands[0].Path)
	assert.Equal(t, domain.ReasonConstructionZone, commands[0].Reason)
}

func TestRunnerReportsFailuresAndContinues(t *testing.T) {
	runner, outbox, out := newTestRunner(t)

	directives, err := Parse(strings.NewReader(strings.Join([]string{
		"scope fleet",
		"place 37.78 -122.41",
		"blocker road_closure",
		"place 37.78 -122.41",
		"reason Event Closure",
		"send",
		"decline",
		"take AV-2848",
		"confirm-take",
		"show",
	}, "\n")))
	require.NoError(t, err)

	result, err := runner.Run(context.Background(), directives)
	require.NoError(t, err)
	assert.Equal(t, Result{Executed: 10, Failed: 1}, result)

	output := out.String()
	assert.Contains(t, output, "2> place 37.78 -122.41\nerror: no blocker action selected")
	assert.Contains(t, output, "confirm? You are about to mark this road as CLOSED at 37.780000, -122.410000")
	assert.Contains(t, output, "confirm? This ticket is currently assigned to Mike T.")
	assert.Contains(t, output, `"blocker_action": "road_closure"`)

	commands, err := outbox.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, commands)
}

func TestRunnerRejectsNonFiniteWaypoints(t *testing.T) {
	runner, _, out := newTestRunner(t)

	directives, err := Parse(strings.NewReader("waypoint NaN 1\nwaypoint 1 +Inf\nwaypoint 3 4\nshow\n"))
	require.NoError(t, err)

	result, err := runner.Run(context.Background(), directives)
	require.NoError(t, err)
	assert.Equal(t, Result{Executed: 4, Failed: 2}, result)

	output := out.String()
	assert.Contains(t, output, "1> waypoint NaN 1\nerror: invalid coordinate")
	assert.Contains(t, output, "2> waypoint 1 +Inf\nerror: invalid coordinate")
	assert.Contains(t, output, "\"path_points\": [\n    {\n      \"x\": 3,\n      \"y\": 4\n    }\n  ]")
}

func TestDescribeOutcome(t *testing.T) {
	t.Parallel()

	released := true
	notReleased := false
	assert.Equal(t, "ok", DescribeOutcome(application.Outcome{}))
	assert.Equal(t, "ticket assigned to you", DescribeOutcome(application.Outcome{Take: application.TakeAssigned}))
	assert.Equal(t, "ticket already yours", DescribeOutcome(application.Outcome{Take: application.TakeAlreadyOwned}))
	assert.Equal(t, "ticket released", DescribeOutcome(application.Outcome{Released: &released}))
	assert.Equal(t, "ticket not yours, nothing released", DescribeOutcome(application.Outcome{Released: &notReleased}))
	assert.Equal(t, "sent: Honk sent to RT-1", DescribeOutcome(application.Outcome{
		Command: &domain.Command{Kind: domain.CommandHonk, VehicleID: "RT-1"},
	}))
}
