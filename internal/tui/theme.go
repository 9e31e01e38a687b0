package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the console.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Header      lipgloss.Style
	Cell        lipgloss.Style
	Cursor      lipgloss.Style
	Muted       lipgloss.Style
	Box         lipgloss.Style
	Tile        lipgloss.Style
	TileValue   lipgloss.Style
	Field       lipgloss.Style
	FocusField  lipgloss.Style
	NoticeInfo  lipgloss.Style
	NoticeOK    lipgloss.Style
	NoticeError lipgloss.Style
	FlagIn      lipgloss.Style
	FlagLow     lipgloss.Style
	FlagOut     lipgloss.Style
	Inactive    lipgloss.Style
}

var (
	primary = lipgloss.Color("#2563eb")
	success = lipgloss.Color("#10b981")
	warning = lipgloss.Color("#f59e0b")
	danger  = lipgloss.Color("#ef4444")
	info    = lipgloss.Color("#3b82f6")
	muted   = lipgloss.Color("#737373")
	border  = lipgloss.Color("#404040")
)

// DefaultTheme is used when no theme is configured.
var DefaultTheme = Theme{
	Title:       lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
	Subtitle:    lipgloss.NewStyle().Foreground(muted),
	Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fafafa")).Background(primary).Padding(0, 1),
	Cell:        lipgloss.NewStyle().Padding(0, 1),
	Cursor:      lipgloss.NewStyle().Bold(true).Foreground(primary),
	Muted:       lipgloss.NewStyle().Foreground(muted),
	Box:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(1, 2),
	Tile:        lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(border).Padding(0, 1).Width(22),
	TileValue:   lipgloss.NewStyle().Bold(true).Foreground(primary),
	Field:       lipgloss.NewStyle().Foreground(muted).Width(20),
	FocusField:  lipgloss.NewStyle().Bold(true).Foreground(primary).Width(20),
	NoticeInfo:  lipgloss.NewStyle().Foreground(info),
	NoticeOK:    lipgloss.NewStyle().Foreground(success),
	NoticeError: lipgloss.NewStyle().Bold(true).Foreground(danger),
	FlagIn:      lipgloss.NewStyle().Foreground(success),
	FlagLow:     lipgloss.NewStyle().Foreground(warning),
	FlagOut:     lipgloss.NewStyle().Foreground(danger),
	Inactive:    lipgloss.NewStyle().Foreground(muted).Italic(true),
}
