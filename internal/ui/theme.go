package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/pagingmenu/internal/config"
)

// Styles are the lipgloss styles used to draw the pager.
type Styles struct {
	Item       lipgloss.Style
	Selected   lipgloss.Style
	Indicator  lipgloss.Style
	Border     lipgloss.Style
	Status     lipgloss.Style
	StatusErr  lipgloss.Style
	HelpKey    lipgloss.Style
	HelpValue  lipgloss.Style
	PageBorder lipgloss.Style
}

// StylesFromTheme converts theme colours into styles. With noColor every
// style is plain except for bold and reverse attributes, so the selection
// stays visible.
func StylesFromTheme(th config.ThemeConfig, noColor bool) Styles {
	if noColor {
		return Styles{
			Item:       lipgloss.NewStyle(),
			Selected:   lipgloss.NewStyle().Bold(true).Reverse(true),
			Indicator:  lipgloss.NewStyle(),
			Border:     lipgloss.NewStyle(),
			Status:     lipgloss.NewStyle(),
			StatusErr:  lipgloss.NewStyle().Bold(true),
			HelpKey:    lipgloss.NewStyle().Bold(true),
			HelpValue:  lipgloss.NewStyle(),
			PageBorder: lipgloss.NewStyle(),
		}
	}
	fg := func(c string) lipgloss.Style {
		s := lipgloss.NewStyle()
		if c != "" {
			s = s.Foreground(lipgloss.Color(c))
		}
		return s
	}
	status := fg(th.Status)
	if th.StatusBG != "" {
		status = status.Background(lipgloss.Color(th.StatusBG))
	}
	return Styles{
		Item:       fg(th.Item),
		Selected:   fg(th.Selected).Bold(true),
		Indicator:  fg(th.Indicator),
		Border:     fg(th.Border),
		Status:     status,
		StatusErr:  fg(th.StatusErr).Bold(true),
		HelpKey:    fg(th.HelpKey),
		HelpValue:  fg(th.HelpValue),
		PageBorder: fg(th.PageBorder),
	}
}
