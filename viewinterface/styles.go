package viewinterface

import (
	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	Screen lipgloss.Style
	LedOn  lipgloss.Style
	LedOff lipgloss.Style
	Scroll lipgloss.Style
	Help   lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		Screen: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			PaddingLeft(2).
			PaddingRight(2).
			BorderForeground(lipgloss.ANSIColor(8)),

		LedOn: lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(9)),

		LedOff: lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(8)),

		Scroll: lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(11)),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(8)),
	}
}

var DefaultStyles = NewStyles()
