package ui

import "github.com/charmbracelet/lipgloss"

// Palette shared by the inspector. Adaptive colors keep the output legible
// on both light and dark terminals.
var (
	// Primary is the accent/focus color.
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the default border color.
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// TextPrimary is the main text color.
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for labels and descriptions.
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text.
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// Active marks the class the viewport currently falls in.
	Active = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(TextSecondary)

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimary)

	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Active)

	queryStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)
