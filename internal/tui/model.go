// Package tui is the interactive browser for a resolved theme: a color list
// drilling down into per-color scope views.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rjordan/vscolors/internal/report"
	"github.com/rjordan/vscolors/internal/theme"
)

type colorItem struct {
	group theme.ColorGroup
}

func (i colorItem) Title() string { return i.group.Color }

func (i colorItem) Description() string {
	if len(i.group.Scopes) == 1 {
		return "1 scope"
	}
	return fmt.Sprintf("%d scopes", len(i.group.Scopes))
}

func (i colorItem) FilterValue() string { return i.group.Color }

type Model struct {
	state    ViewState
	name     string
	maps     theme.ColorMaps
	renderer report.Renderer
	styles   Styles

	list     list.Model
	selected theme.ColorGroup

	width  int
	height int
}

func NewModel(name string, cm theme.ColorMaps, renderer report.Renderer) Model {
	items := make([]list.Item, 0, len(cm.Colors))
	for _, group := range cm.Colors {
		items = append(items, colorItem{group: group})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("%s: colors", name)
	l.SetShowStatusBar(false)

	return Model{
		state:    StateColors,
		name:     name,
		maps:     cm,
		renderer: renderer,
		styles:   DefaultStyles(),
		list:     l,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateColors:
			return m.updateColorsState(msg)
		case StateScopes:
			return m.updateScopesState(msg)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateColorsState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(colorItem); ok {
				m.selected = item.group
				m.state = StateScopes
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateScopesState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "backspace":
		m.state = StateColors
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case StateScopes:
		return m.viewScopes()
	default:
		return m.list.View()
	}
}

func (m Model) viewScopes() string {
	var b strings.Builder

	title := m.styles.Title.Render(fmt.Sprintf("%s  [%d scopes]", m.selected.Color, len(m.selected.Scopes)))
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(m.renderer.Swatch(m.selected.Color))
	b.WriteString("\n\n")

	for _, scope := range m.selected.Scopes {
		b.WriteString(m.renderer.ScopeLine(m.selected.Color, scope))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("esc to go back, q to quit"))
	return b.String()
}
