package tui

import (
	"github.com/charmbracelet/lipgloss"

	"trainlock/internal/models"
)

type Theme struct {
	Name             string
	Base             lipgloss.Style
	Border           lipgloss.Color
	Header           lipgloss.Style
	Session          lipgloss.Style
	CompletedSession lipgloss.Style
	InactiveSession  lipgloss.Style
	TypeLight        lipgloss.Style
	TypeInterval     lipgloss.Style
	TypeStrength     lipgloss.Style
	TypeModerate     lipgloss.Style
	TypeLongRun      lipgloss.Style
	TypeDefault      lipgloss.Style
	Input            lipgloss.Style
	Focused          lipgloss.Style
	Dim              lipgloss.Style
	Highlight        lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:             "Default",
		Base:             lipgloss.NewStyle().Margin(1, 2),
		Border:           lipgloss.Color("63"),
		Header:           lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Session:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CompletedSession: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		InactiveSession:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Faint(true),
		TypeLight:        lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		TypeInterval:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		TypeStrength:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		TypeModerate:     lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		TypeLongRun:      lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true),
		TypeDefault:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Input:            lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:          lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:              lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:        lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:             "Dracula",
		Base:             lipgloss.NewStyle().Margin(1, 2),
		Border:           lipgloss.Color("62"),
		Header:           lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Session:          lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		CompletedSession: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		InactiveSession:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Faint(true),
		TypeLight:        lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		TypeInterval:     lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		TypeStrength:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		TypeModerate:     lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		TypeLongRun:      lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		TypeDefault:      lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Input:            lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Focused:          lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:              lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:        lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

func typeStyle(t models.SessionType) lipgloss.Style {
	switch t {
	case models.TypeLight:
		return CurrentTheme.TypeLight
	case models.TypeInterval:
		return CurrentTheme.TypeInterval
	case models.TypeStrength:
		return CurrentTheme.TypeStrength
	case models.TypeModerate:
		return CurrentTheme.TypeModerate
	case models.TypeLongRun:
		return CurrentTheme.TypeLongRun
	}
	return CurrentTheme.TypeDefault
}
