package console

import (
	"errors"
	"io"

	"github.com/bnema/remote-assist-console/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	snap   application.Snapshot
	opts   RenderOptions
	styles styles
	output string
}

func newModel(snap application.Snapshot, opts RenderOptions) model {
	return model{
		snap:   snap,
		opts:   opts,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.snap, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws one frame of the console without a terminal attached.
func Render(snap application.Snapshot, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(snap, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

// View draws a frame synchronously, for callers that already run inside a
// bubbletea program.
func View(snap application.Snapshot, opts RenderOptions) string {
	return renderView(snap, opts, newStyles())
}
