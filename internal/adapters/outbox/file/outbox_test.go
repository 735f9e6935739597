package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxSendAndList(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "outbox")
	outbox := NewOutbox(root)
	base := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	later := domain.Command{
		ID:        "cmd-b",
		Kind:      domain.CommandHonk,
		Scope:     domain.ScopeVehicle,
		VehicleID: "RT-4521",
		IssuedAt:  base.Add(time.Second),
	}
	earlier := domain.Command{
		ID:        "cmd-a",
		Kind:      domain.CommandPath,
		Scope:     domain.ScopeVehicle,
		VehicleID: "RT-4521",
		Reason:    domain.ReasonConstructionZone,
		IssuedAt:  base,
		Path:      []domain.Point{{X: 10, Y: 10}, {X: 20, Y: 15}},
	}

	require.NoError(t, outbox.Send(context.Background(), later))
	require.NoError(t, outbox.Send(context.Background(), earlier))

	commands, err := outbox.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Command{earlier, later}, commands)

	info, err := os.Stat(filepath.Join(root, "20260314T093000.000000000Z-cmd-a.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestOutboxCountByKind(t *testing.T) {
	t.Parallel()

	outbox := NewOutbox(filepath.Join(t.TempDir(), "outbox"))
	base := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	for i, kind := range []domain.CommandKind{domain.CommandHonk, domain.CommandHold, domain.CommandHonk} {
		require.NoError(t, outbox.Send(context.Background(), domain.Command{
			ID:        fmt.Sprintf("cmd-%d", i),
			Kind:      kind,
			Scope:     domain.ScopeVehicle,
			VehicleID: "RT-4521",
			IssuedAt:  base.Add(time.Duration(i) * time.Second),
		}))
	}

	counts, err := outbox.CountByKind(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[domain.CommandKind]int64{domain.CommandHonk: 2, domain.CommandHold: 1}, counts)
}

func TestOutboxListMissingDirectory(t *testing.T) {
	t.Parallel()

	commands, err := NewOutbox(filepath.Join(t.TempDir(), "none")).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, commands)
}

func TestOutboxRejectsUnsafeIDs(t *testing.T) {
	t.Parallel()

	outbox := NewOutbox(t.TempDir())
	for _, id := range []string{"", "  ", "../escape", "a/b", ".hidden"} {
		err := outbox.Send(context.Background(), domain.Command{ID: id, Kind: domain.CommandHonk})
		assert.Error(t, err, id)
	}
}

func TestOutboxSkipsForeignFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.txt"), []byte("hi"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".command-1.json.tmp"), []byte("{"), 0o600))

	commands, err := NewOutbox(root).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, commands)
}

func TestOutboxCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewOutbox(t.TempDir()).Send(ctx, domain.Command{ID: "x"})
	assert.True(t, errors.Is(err, context.Canceled))
}
