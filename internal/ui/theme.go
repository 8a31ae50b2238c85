package ui

import "github.com/charmbracelet/lipgloss"

// habitkit's palette: leafy greens with warm highlights.
var (
	Leaf   = lipgloss.Color("#10B981")
	Moss   = lipgloss.Color("#84CC16")
	Amber  = lipgloss.Color("#F59E0B")
	Coral  = lipgloss.Color("#EF4444")
	Sky    = lipgloss.Color("#3B82F6")
	Dim    = lipgloss.Color("#666666")
	Bright = lipgloss.Color("#FFFFFF")
	Empty  = lipgloss.Color("#3A3A3A")

	// Semantic styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Leaf)

	Subtitle = lipgloss.NewStyle().
			Foreground(Moss)

	Success = lipgloss.NewStyle().
		Foreground(Leaf)

	Error = lipgloss.NewStyle().
		Foreground(Coral)

	Warning = lipgloss.NewStyle().
		Foreground(Amber)

	Info = lipgloss.NewStyle().
		Foreground(Sky)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Moss).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)
)

// Icon constants.
const (
	IconHabit    = "🌱"
	IconFire     = "🔥"
	IconCalendar = "📅"
	IconDone     = "✅"
	IconWarn     = "⚠️ "
	IconError    = "✗ "
	IconOk       = "✓ "
	IconArrow    = "→"
	IconDot      = "·"
)

// HabitStyle returns a foreground style in the habit's own color.
func HabitStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
