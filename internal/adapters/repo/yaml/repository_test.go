package yaml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tickets.yaml")
	repo, err := NewRepository(path)
	require.NoError(t, err)

	tickets := []domain.Ticket{
		{
			ID:               "AV-2848",
			VehicleID:        "RT-3309",
			TimeStalled:      12 * time.Second,
			Priority:         domain.PriorityMedium,
			Context:          domain.ContextPaxWaiting,
			Notes:            "Cones blocking right lane",
			AssignedTo:       domain.AssigneeOther,
			AssignedOperator: "Mike T.",
		},
	}
	require.NoError(t, repo.ReplaceAll(context.Background(), tickets))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tickets, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "vehicle_id: RT-3309")
}

func TestParse(t *testing.T) {
	t.Parallel()

	tickets, err := Parse([]byte(`
tickets:
  - id: AV-9
    vehicle_id: RT-9
    stalled: "03:00"
    priority: low
    context: Pax Onboard
    assigned_to: self
`))
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, 3*time.Minute, tickets[0].TimeStalled)
	assert.Equal(t, domain.AssigneeSelf, tickets[0].AssignedTo)
	assert.Equal(t, domain.ContextPaxOnboard, tickets[0].Context)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("tickets: [unclosed"))
	assert.ErrorContains(t, err, "decode tickets file")

	_, err = Parse([]byte("version: 7\ntickets: []\n"))
	assert.ErrorContains(t, err, "unsupported ticket schema version 7")
}

func TestRepositoryMissingFile(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filepath.Join(t.TempDir(), "tickets.yml"))
	require.NoError(t, err)

	_, err = repo.List(context.Background())
	require.ErrorIs(t, err, domain.ErrSeedNotFound)
}
