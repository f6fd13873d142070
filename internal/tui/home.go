// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type homeItem struct {
	title       string
	description string
	target      view
}

// HomeModel is the dashboard listing every screen of the client.
type HomeModel struct {
	items []homeItem
	idx   int
}

func NewHomeModel() *HomeModel {
	return &HomeModel{
		items: []homeItem{
			{title: "Equal Split", description: "Divide expenses equally among all participants", target: viewEqualSplit},
			{title: "Custom Split", description: "Set specific amounts for each person", target: viewCustomSplit},
			{title: "Pay Share", description: "Send your portion of an expense", target: viewPayShare},
			{title: "Settle", description: "Mark expense as fully paid", target: viewSettle},
			{title: "View Expenses", description: "Track and monitor all your group expenses", target: viewExpenses},
			{title: "Transaction History", description: "Recent transactions sent from this client", target: viewHistory},
		},
	}
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and emits a select event on enter.
func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		target := m.items[m.idx].target
		return m, func() tea.Msg { return navEvent{kind: navSelect, target: target} }
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items))) + 2

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString("Split expenses effortlessly with blockchain transparency\n\n")
	b.WriteString(fmt.Sprintf("%-*s │ %-*s │ %s\n", idColWidth, "#", actionColWidth, "Action", "Description"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 20))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s │ %s\n", idColWidth, idCell, actionColWidth, item.title, helpStyle.Render(item.description)))
	}

	return renderPage("FAIRSHARE", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: navigate │ v: version │ q: quit")
}
