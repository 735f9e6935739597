package cmd

import (
	"context"
	"testing"

	"github.com/bnema/remote-assist-console/internal/adapters/events"
	"github.com/bnema/remote-assist-console/internal/adapters/outbox/discard"
	"github.com/bnema/remote-assist-console/internal/adapters/repo/builtin"
	"github.com/bnema/remote-assist-console/internal/adapters/script"
	"github.com/bnema/remote-assist-console/internal/application"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsoleModel(t *testing.T) consoleModel {
	t.Helper()

	recorder := events.NewRecorder(consoleFeedSize)
	service, err := application.NewService(context.Background(), builtin.Repository{}, discard.Sink{}, application.ConsoleOptions{
		Operator: "Sarah K.",
		Events:   recorder,
	})
	require.NoError(t, err)

	return newConsoleModel(context.Background(), service, recorder)
}

func typeLine(t *testing.T, m consoleModel, line string) (consoleModel, tea.Cmd) {
	t.Helper()

	m.input.SetValue(line)
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, ok := model.(consoleModel)
	require.True(t, ok)
	return next, cmd
}

// finishAction runs the batched command and feeds the action result back.
func finishAction(t *testing.T, m consoleModel, cmd tea.Cmd) consoleModel {
	t.Helper()
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if c == nil {
			continue
		}
		if done, ok := c().(actionDoneMsg); ok {
			model, _ := m.Update(done)
			return model.(consoleModel)
		}
	}

	t.Fatal("no action result in batch")
	return m
}

func TestConsoleModelRunsTypedAction(t *testing.T) {
	m := newTestConsoleModel(t)

	m, cmd := typeLine(t, m, "hold")
	assert.True(t, m.busy)
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.View(), "sending...")

	m = finishAction(t, m, cmd)
	assert.False(t, m.busy)
	require.NoError(t, m.err)
	assert.Equal(t, "sent: Vehicle holding position - RT-4521", m.result)

	view := m.View()
	assert.Contains(t, view, "sent: Vehicle holding position - RT-4521")
	assert.Contains(t, view, "Remote Assistance Console")
}

func TestConsoleModelShowsRejectedAction(t *testing.T) {
	m := newTestConsoleModel(t)

	m, cmd := typeLine(t, m, "send")
	m = finishAction(t, m, cmd)
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "error: command not ready: Select reason first")
}

func TestConsoleModelReportsSyntaxErrorsWithoutRunning(t *testing.T) {
	m := newTestConsoleModel(t)

	m, cmd := typeLine(t, m, "waypoint ten")
	assert.Nil(t, cmd)
	assert.False(t, m.busy)
	require.ErrorIs(t, m.err, script.ErrSyntax)
}

func TestConsoleModelQuits(t *testing.T) {
	m := newTestConsoleModel(t)

	_, cmd := typeLine(t, m, "quit")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
