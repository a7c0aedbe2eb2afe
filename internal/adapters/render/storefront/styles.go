package storefront

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	card        lipgloss.Style
	cardTitle   lipgloss.Style
	selected    lipgloss.Style
	detail      lipgloss.Style
	faint       lipgloss.Style
	price       lipgloss.Style
	badgeOK     lipgloss.Style
	badgeWarn   lipgloss.Style
	badgeOff    lipgloss.Style
	empty       lipgloss.Style
	tableHeader lipgloss.Style
	balance     lipgloss.Style
	section     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		header:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		cardTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		detail:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		faint:       lipgloss.NewStyle().Faint(true),
		price:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		badgeOK:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		badgeWarn:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		badgeOff:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		empty:       lipgloss.NewStyle().Faint(true),
		tableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		balance:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		section:     lipgloss.NewStyle().MarginTop(1),
	}
}
