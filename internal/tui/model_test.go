package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjordan/vscolors/internal/report"
	"github.com/rjordan/vscolors/internal/theme"
)

func testModel() Model {
	cm := theme.ColorMaps{
		Colors: []theme.ColorGroup{
			{Color: "#ff0000", Scopes: []string{"constant.character", "string"}},
			{Color: "#888888", Scopes: []string{"comment"}},
		},
	}
	m := NewModel("dark.json", cm, report.New(9))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestEnterOpensScopeView(t *testing.T) {
	m := testModel()

	updated, _ := m.Update(keyMsg("enter"))
	m = updated.(Model)

	require.Equal(t, StateScopes, m.state)
	assert.Equal(t, "#ff0000", m.selected.Color)

	view := m.View()
	assert.Contains(t, view, "#ff0000")
	assert.Contains(t, view, "string")
}

func TestEscReturnsToColorList(t *testing.T) {
	m := testModel()

	updated, _ := m.Update(keyMsg("enter"))
	updated, _ = updated.(Model).Update(keyMsg("esc"))
	m = updated.(Model)

	assert.Equal(t, StateColors, m.state)
}

func TestQuitFromEitherState(t *testing.T) {
	m := testModel()

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	updated, _ := m.Update(keyMsg("enter"))
	_, cmd = updated.(Model).Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestColorListViewShowsColors(t *testing.T) {
	m := testModel()
	view := m.View()
	assert.True(t, strings.Contains(view, "#ff0000") || strings.Contains(view, "colors"))
}
