package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	section    lipgloss.Style
	label      lipgloss.Style
	detail     lipgloss.Style
	faint      lipgloss.Style
	active     lipgloss.Style
	high       lipgloss.Style
	medium     lipgloss.Style
	low        lipgloss.Style
	badgeOpen  lipgloss.Style
	badgeMine  lipgloss.Style
	badgeOther lipgloss.Style
	ready      lipgloss.Style
	notReady   lipgloss.Style
	toggleOn   lipgloss.Style
	prompt     lipgloss.Style
	notice     lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:    lipgloss.NewStyle().MarginTop(1),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		faint:      lipgloss.NewStyle().Faint(true),
		active:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		high:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		medium:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		low:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		badgeOpen:  lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		badgeMine:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		badgeOther: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		ready:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
		notReady:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		toggleOn:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		prompt:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
