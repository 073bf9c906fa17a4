package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	InputBox     lipgloss.Style
	SearchGlyph  lipgloss.Style
	ClearButton  lipgloss.Style
	Loader       lipgloss.Style
	ErrorBanner  lipgloss.Style
	Dropdown     lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Match        lipgloss.Style
	Status       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim:  lipgloss.NewStyle().Faint(true),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchGlyph: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ClearButton: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // red
		Loader:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),            // yellow
		ErrorBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("203")).
			PaddingLeft(1),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		Item:         lipgloss.NewStyle().Padding(0, 1),
		ItemSelected: lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("238")),
		Match:        lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
	}
}
