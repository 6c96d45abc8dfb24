// Package ui implements the breakpoint inspector: a simulated viewport
// whose dimensions the user nudges from the keyboard, with the bucket
// classification and media queries re-rendered on every change.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"screenbuckets/bucket"
	"screenbuckets/log"
	"screenbuckets/media"
	"screenbuckets/screen"
)

const fastStep = 32

// Model is the inspector's bubbletea model.
type Model struct {
	metrics screen.Metrics
	keys    keyMap
	help    help.Model

	// terminal size, for framing only
	width  int
	height int
}

// NewModel returns an inspector showing the given initial viewport.
func NewModel(initial screen.Metrics) Model {
	return Model{
		metrics: initial,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Narrower):
			m.setMetrics(resize(m.metrics, -1, 0))
		case key.Matches(msg, m.keys.Wider):
			m.setMetrics(resize(m.metrics, 1, 0))
		case key.Matches(msg, m.keys.Shorter):
			m.setMetrics(resize(m.metrics, 0, -1))
		case key.Matches(msg, m.keys.Taller):
			m.setMetrics(resize(m.metrics, 0, 1))
		case key.Matches(msg, m.keys.NarrowerFast):
			m.setMetrics(resize(m.metrics, -fastStep, 0))
		case key.Matches(msg, m.keys.WiderFast):
			m.setMetrics(resize(m.metrics, fastStep, 0))
		case key.Matches(msg, m.keys.ShorterFast):
			m.setMetrics(resize(m.metrics, 0, -fastStep))
		case key.Matches(msg, m.keys.TallerFast):
			m.setMetrics(resize(m.metrics, 0, fastStep))
		case key.Matches(msg, m.keys.Preset):
			i := int(msg.String()[0] - '1')
			if i >= 0 && i < len(presets) {
				p := presets[i]
				m.setMetrics(screen.FromInts(p.Width, p.Height))
			}
		}
	}
	return m, nil
}

func (m *Model) setMetrics(next screen.Metrics) {
	m.metrics = next
	log.Debug("viewport %dx%d -> %s/%s/%s", next.Width, next.Height,
		bucket.ClassifyBroad(next.Width),
		bucket.ClassifyWidth(next.Width),
		bucket.ClassifyHeight(next.Height))
}

// resize returns a fresh snapshot; the old one is never mutated field by
// field. Dimensions clamp at zero.
func resize(m screen.Metrics, dw, dh int) screen.Metrics {
	return screen.FromInts(max(m.Width+dw, 0), max(m.Height+dh, 0))
}

// View implements tea.Model.
func (m Model) View() string {
	broad := bucket.ClassifyBroad(m.metrics.Width)
	fine := bucket.ClassifyWidth(m.metrics.Width)
	high := bucket.ClassifyHeight(m.metrics.Height)

	rows := []string{
		labelStyle.Render("viewport  ") +
			valueStyle.Render(fmt.Sprintf("%d x %d px", m.metrics.Width, m.metrics.Height)),
		"",
		labelStyle.Render("broad     ") + tierRow(bucket.WidthBroadTier, int(broad)),
		labelStyle.Render("fine      ") + tierRow(bucket.WidthFineTier, int(fine)),
		labelStyle.Render("height    ") + tierRow(bucket.HeightTier, int(high)),
		"",
		labelStyle.Render("width     ") +
			queryStyle.Render(media.FromBucket(bucket.WidthFineTier[fine]).String()),
		labelStyle.Render("height    ") +
			queryStyle.Render(media.FromBucket(bucket.HeightTier[high]).String()),
	}

	pane := paneStyle.Render(strings.Join(rows, "\n"))
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("screenbuckets"),
		pane,
		m.help.View(m.keys),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

// tierRow renders every bucket name in a tier, highlighting the active one.
func tierRow(tier []bucket.Bucket, active int) string {
	names := make([]string, len(tier))
	for i, b := range tier {
		name := tierName(b)
		if i == active {
			names[i] = activeStyle.Render(name)
		} else {
			names[i] = queryStyle.Render(name)
		}
	}
	return strings.Join(names, " ")
}

// tierName resolves a tier member back to its catalog name.
func tierName(b bucket.Bucket) string {
	for _, name := range bucket.CatalogNames {
		if got, ok := bucket.ByName(name); ok && got == b {
			return name
		}
	}
	return fmt.Sprintf("%s..%s", b.Min, b.Max)
}
