// Package app wires the breakpoint inspector into a terminal program.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"screenbuckets/screen"
	"screenbuckets/ui"
)

// Run is the main entrypoint into the inspector.
func Run(ctx context.Context, initial screen.Metrics) error {
	p := tea.NewProgram(
		ui.NewModel(initial),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
