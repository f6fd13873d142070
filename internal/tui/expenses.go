// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-fair-share/internal/service"
	"github.com/MKhiriev/go-fair-share/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ExpensesModel is the read-only expense viewer. Every load re-runs all
// queries the inputs enable; nothing is cached between loads.
type ExpensesModel struct {
	ctx      context.Context
	expenses service.ExpenseService

	inputs  []textinput.Model
	focus   int
	loading bool
	result  models.ExpenseView
	loaded  bool
}

func NewExpensesModel(ctx context.Context, expenses service.ExpenseService) *ExpensesModel {
	idInput := textinput.New()
	idInput.Placeholder = "0"
	idInput.CharLimit = 78
	idInput.Width = 48
	idInput.Focus()

	participantInput := textinput.New()
	participantInput.Placeholder = "0x123..."
	participantInput.CharLimit = 42
	participantInput.Width = 48

	return &ExpensesModel{
		ctx:      ctx,
		expenses: expenses,
		inputs:   []textinput.Model{idInput, participantInput},
	}
}

func (m *ExpensesModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles editing keys and starts a load on enter or ctrl+r.
// Load results arrive as expenseLoadedMsg through onLoaded.
func (m *ExpensesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.refresh):
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, m.cmdLoad()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// onLoaded stores a load result. A non-nil err means no query was issued;
// the caller reports it.
func (m *ExpensesModel) onLoaded(msg expenseLoadedMsg) {
	m.loading = false
	if msg.err != nil {
		return
	}
	m.result = msg.result
	m.loaded = true
}

func (m *ExpensesModel) View() string {
	var b strings.Builder
	b.WriteString("Track and monitor all your group expenses\n\n")

	cursor := func(i int) string {
		if i == m.focus {
			return ">"
		}
		return " "
	}
	b.WriteString(fmt.Sprintf("%s %-24s │ [%s]\n", cursor(0), "Expense ID", m.inputs[0].View()))
	b.WriteString(fmt.Sprintf("%s %-24s │ [%s]\n", cursor(1), "Your Address (optional)", m.inputs[1].View()))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("[Loading...]\n")
	} else {
		b.WriteString("[Load Expense Data]\n")
	}

	if m.loaded {
		b.WriteString(renderExpenseView(m.result))
	}

	return renderPage("VIEW EXPENSES", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: field │ enter/ctrl+r: load")
}

func renderExpenseView(v models.ExpenseView) string {
	var b strings.Builder

	if v.Expense == nil && v.ExpenseErr == nil && v.EveryonePaidErr == nil && v.EveryonePaid == nil {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Enter an expense ID to load its details"))
		b.WriteString("\n")
		return b.String()
	}

	if v.Err() != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error Loading Data"))
		b.WriteString("\n")
		if v.ExpenseErr != nil {
			b.WriteString("Expense: " + v.ExpenseErr.Error() + "\n")
		}
		if v.ShareErr != nil {
			b.WriteString("Share: " + v.ShareErr.Error() + "\n")
		}
		if v.EveryonePaidErr != nil {
			b.WriteString("Payment Status: " + v.EveryonePaidErr.Error() + "\n")
		}
	}

	if e := v.Expense; e != nil {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Expense Details"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-12s │ %s\n", "Title", e.Title))
		b.WriteString(fmt.Sprintf("%-12s │ %s\n", "Amount", formatEther(e.Amount)))
		b.WriteString(fmt.Sprintf("%-12s │ %s\n", "Payer", e.Payer.Hex()))
		b.WriteString(fmt.Sprintf("%-12s │ %s\n", "Created", e.CreatedAt.Local().Format(time.DateTime)))
		status := warnStyle.Render("Pending")
		if e.Settled {
			status = okStyle.Render("Settled")
		}
		b.WriteString(fmt.Sprintf("%-12s │ %s\n", "Status", status))
		splitType := "Custom Split"
		if e.IsEqualSplit {
			splitType = "Equal Split"
		}
		b.WriteString(fmt.Sprintf("%-12s │ %s\n", "Split Type", splitType))
	}

	if v.ShareQueried && v.Share != nil {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Your Share"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-12s │ %s\n", "Amount Owed", formatEther(v.Share)))
		paid := errorStyle.Render("Unpaid")
		if v.Share.Sign() == 0 {
			paid = okStyle.Render("Paid")
		}
		b.WriteString(fmt.Sprintf("%-12s │ %s\n", "Payment", paid))
	}

	if v.EveryonePaid != nil {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Payment Status"))
		b.WriteString("\n")
		if *v.EveryonePaid {
			b.WriteString(okStyle.Render("All participants have paid their shares"))
		} else {
			b.WriteString(warnStyle.Render("Waiting for payments from participants"))
		}
		b.WriteString("\n")
	}

	if !v.LoadedAt.IsZero() {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Loaded at " + v.LoadedAt.Local().Format(time.TimeOnly)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *ExpensesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	expenses := m.expenses
	query := models.ExpenseQuery{
		ExpenseID:   m.inputs[0].Value(),
		Participant: m.inputs[1].Value(),
	}

	return func() tea.Msg {
		result, err := expenses.Load(ctx, query)
		return expenseLoadedMsg{result: result, err: err}
	}
}

func (m *ExpensesModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
