// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type MenuModel struct {
	items []string
	pages []string
	idx   int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []string{"Sign in", "Create account"},
		pages: []string{pageLogin, pageRegister},
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
		page := m.pages[m.idx]
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	width := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > width {
			width = w
		}
	}

	b.WriteString(fmt.Sprintf("    %-*s\n", width, "Action"))
	b.WriteString("    ")
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("\n")

	for i, item := range m.items {
		if i == m.idx {
			b.WriteString(selectedStyle.Render(fmt.Sprintf("> %d %s", i+1, item)))
		} else {
			b.WriteString(fmt.Sprintf("  %d %s", i+1, item))
		}
		b.WriteString("\n")
	}

	return renderPage("NOVELTEA", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: version │ q: quit")
}
