package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bingo/internal/registry"
)

// MenuItem represents a selectable catalog in the picker.
type MenuItem struct {
	CatalogID string
	Title     string
	Size      int
}

// MenuKeyMap defines the key bindings for the catalog picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the catalog picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	keys     MenuKeyMap
	quitting bool
	selected *MenuItem // Set when the user picks a catalog

	titleStyle  lipgloss.Style
	activeStyle lipgloss.Style
	dimStyle    lipgloss.Style
}

// NewMenuModel creates a picker over all registered catalogs.
func NewMenuModel(width int) MenuModel {
	catalogs := registry.List()
	items := make([]MenuItem, 0, len(catalogs))
	for _, c := range catalogs {
		items = append(items, MenuItem{CatalogID: c.ID, Title: c.Title, Size: c.Size})
	}

	return MenuModel{
		items:       items,
		width:       width,
		keys:        DefaultMenuKeyMap(),
		titleStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		activeStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		dimStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				selected := m.items[m.cursor]
				m.selected = &selected
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.titleStyle.Render("B I N G O"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a catalog", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %s  %s", item.Title, m.dimStyle.Render(fmt.Sprintf("(%d items)", item.Size)))
		if i == m.cursor {
			line = m.activeStyle.Render("> "+item.Title) + "  " + m.dimStyle.Render(fmt.Sprintf("(%d items)", item.Size))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.dimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the picked item, or nil if none was picked.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if the user left without picking.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
