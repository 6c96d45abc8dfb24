package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screenbuckets/screen"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok)
	return got
}

func TestUpdateResizesViewport(t *testing.T) {
	m := NewModel(screen.FromInts(512, 800))

	m = update(t, m, keyMsg("right"))
	assert.Equal(t, screen.FromInts(513, 800), m.metrics)

	m = update(t, m, keyMsg("left"))
	m = update(t, m, keyMsg("left"))
	assert.Equal(t, screen.FromInts(511, 800), m.metrics)

	m = update(t, m, keyMsg("up"))
	assert.Equal(t, screen.FromInts(511, 801), m.metrics)

	m = update(t, m, keyMsg("down"))
	assert.Equal(t, screen.FromInts(511, 800), m.metrics)
}

func TestUpdateFastStep(t *testing.T) {
	m := NewModel(screen.FromInts(512, 800))

	m = update(t, m, keyMsg("L"))
	assert.Equal(t, screen.FromInts(512+fastStep, 800), m.metrics)

	m = update(t, m, keyMsg("H"))
	assert.Equal(t, screen.FromInts(512, 800), m.metrics)
}

func TestUpdateClampsAtZero(t *testing.T) {
	m := NewModel(screen.FromInts(0, 0))

	m = update(t, m, keyMsg("left"))
	m = update(t, m, keyMsg("down"))
	m = update(t, m, keyMsg("H"))
	assert.Equal(t, screen.FromInts(0, 0), m.metrics)
}

func TestUpdatePresetJump(t *testing.T) {
	m := NewModel(screen.FromInts(512, 800))

	m = update(t, m, keyMsg("3"))
	assert.Equal(t, screen.FromInts(768, 1024), m.metrics)
}

func TestUpdateQuit(t *testing.T) {
	m := NewModel(screen.FromInts(512, 800))

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewShowsClassification(t *testing.T) {
	m := NewModel(screen.FromInts(600, 400))
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	assert.Contains(t, view, "600 x 400 px")
	assert.Contains(t, view, "portable1")
	assert.Contains(t, view, "limited")
	assert.Contains(t, view, "(min-width: 512px) and (max-width: 863px)")
}
