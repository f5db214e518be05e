package app

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette of the application.
type Theme struct {
	Primary   lipgloss.Color // Purple - cursor, active view
	Secondary lipgloss.Color // Gold - ratings, breadcrumbs separator

	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	BgCursor lipgloss.Color
	Border   lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
}

var theme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#303030"),
	Border:   lipgloss.Color("#585858"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
}

var (
	baseStyle   = lipgloss.NewStyle().Foreground(theme.FgBase)
	mutedStyle  = lipgloss.NewStyle().Foreground(theme.FgMuted)
	subtleStyle = lipgloss.NewStyle().Foreground(theme.FgSubtle)
	titleStyle  = lipgloss.NewStyle().Foreground(theme.FgBase).Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	cursorStyle = lipgloss.NewStyle().Foreground(theme.Primary).Background(theme.BgCursor).Bold(true)
	activeStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(theme.Error)
	statusStyle = lipgloss.NewStyle().Foreground(theme.Success)

	menuStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(theme.Border).
			PaddingRight(1)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1)
)
