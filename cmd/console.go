package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/remote-assist-console/internal/adapters/events"
	consolerender "github.com/bnema/remote-assist-console/internal/adapters/render/console"
	"github.com/bnema/remote-assist-console/internal/adapters/script"
	"github.com/bnema/remote-assist-console/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const consoleFeedSize = 4

var (
	consoleHelpStyle  = lipgloss.NewStyle().Faint(true)
	consoleErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	consoleFeedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func newConsoleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Open the interactive operator console",
		Long:  "Open the interactive operator console. Type the same actions an operator script uses (take, mode nudge, waypoint 10 10, reason construction zone, send, ...); quit with ctrl+c.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			outbox, err := app.openOutbox()
			if err != nil {
				return err
			}
			defer func() { _ = outbox.close() }()

			recorder := events.NewRecorder(consoleFeedSize)
			service, err := app.newService(cmd.Context(), outbox.sink, recorder)
			if err != nil {
				return err
			}

			return runConsoleTUI(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), newConsoleModel(cmd.Context(), service, recorder))
		},
	}
}

type actionDoneMsg struct {
	text string
	err  error
}

type consoleModel struct {
	ctx      context.Context
	service  *application.Service
	runner   *script.Runner
	recorder *events.Recorder
	input    textinput.Model
	spinner  spinner.Model
	busy     bool
	result   string
	err      error
}

func newConsoleModel(ctx context.Context, service *application.Service, recorder *events.Recorder) consoleModel {
	input := textinput.New()
	input.Prompt = "ra> "
	input.CharLimit = 256
	input.Placeholder = "take, mode draw, waypoint 10 10, reason construction zone, send"
	input.Focus()

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	show := func(snap application.Snapshot) (string, error) {
		return fmt.Sprintf("%d tickets, scope %s, mode %s", len(snap.Tickets), snap.Scope, snap.Mode), nil
	}

	return consoleModel{
		ctx:      ctx,
		service:  service,
		runner:   script.NewRunner(service, io.Discard, show),
		recorder: recorder,
		input:    input,
		spinner:  s,
	}
}

func (m consoleModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case actionDoneMsg:
		m.busy = false
		m.result = msg.text
		m.err = msg.err
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			return m, tea.Quit
		case "enter":
			if m.busy {
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m consoleModel) submit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	switch raw {
	case "":
		return m, nil
	case "quit", "exit":
		return m, tea.Quit
	}

	directive, ok, err := script.ParseLine(raw)
	if err != nil {
		m.result, m.err = "", err
		return m, nil
	}
	if !ok {
		return m, nil
	}

	m.busy = true
	run := func() tea.Msg {
		text, err := m.runner.Exec(m.ctx, directive)
		return actionDoneMsg{text: text, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, run)
}

func (m consoleModel) View() string {
	notice := ""
	if last, ok := m.recorder.Last(); ok {
		notice = last.Message
	}

	lines := []string{
		consolerender.View(m.service.Snapshot(), consolerender.RenderOptions{Notice: notice}),
		"",
	}

	for _, event := range m.recorder.Recent() {
		lines = append(lines, consoleFeedStyle.Render(fmt.Sprintf("%s  %s", event.At.Format("15:04:05"), event.Message)))
	}

	switch {
	case m.busy:
		lines = append(lines, m.spinner.View()+" sending...")
	case m.err != nil:
		lines = append(lines, consoleErrorStyle.Render("error: "+m.err.Error()))
	case m.result != "":
		lines = append(lines, m.result)
	}

	lines = append(lines, m.input.View(), consoleHelpStyle.Render("enter to run, quit or ctrl+c to leave"))

	return strings.Join(lines, "\n")
}

func runConsoleTUI(ctx context.Context, input io.Reader, output io.Writer, model consoleModel) error {
	p := tea.NewProgram(
		model,
		tea.WithInput(input),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run console: %w", err)
	}

	return nil
}
