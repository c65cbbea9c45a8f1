package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/qryptshare/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type MenuModel struct {
	items []models.Mode
	idx   int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: models.Modes,
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m, m.open(m.items[m.idx])
	default:
		// digits pick a mode directly
		s := keyMsg.String()
		if len(s) == 1 && s[0] >= '1' && int(s[0]-'0') <= len(m.items) {
			m.idx = int(s[0] - '1')
			return m, m.open(m.items[m.idx])
		}
	}

	return m, nil
}

func (m *MenuModel) open(mode models.Mode) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: pageForm, Payload: modeSelectedMsg{mode: mode}}
	}
}

func (m *MenuModel) View() string {
	var b strings.Builder

	titleWidth := 0
	for _, item := range m.items {
		if w := lipgloss.Width(item.Title()); w > titleWidth {
			titleWidth = w
		}
	}

	b.WriteString("What do you want to share?\n\n")
	for i, item := range m.items {
		cursor := " "
		line := fmt.Sprintf("%d  %-*s", i+1, titleWidth, item.Title())
		if i == m.idx {
			cursor = ">"
			line = focusedStyle.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	return renderPage("QRY-SHARE", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}
