// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-fair-share/internal/service"
	"github.com/MKhiriev/go-fair-share/internal/utils"
	"github.com/MKhiriev/go-fair-share/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const historyLimit = 20

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// HistoryModel lists the most recent journal entries.
type HistoryModel struct {
	ctx     context.Context
	journal service.JournalService

	entries []models.JournalEntry
	idx     int
	loading bool
	status  string
	errMsg  string
}

func NewHistoryModel(ctx context.Context, journal service.JournalService) *HistoryModel {
	return &HistoryModel{
		ctx:     ctx,
		journal: journal,
	}
}

// Init reloads the journal every time the screen is opened.
func (m *HistoryModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.entries = msg.entries
		if m.idx >= len(m.entries) {
			m.idx = max(len(m.entries)-1, 0)
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Copied " + utils.ShortHex(msg.text)
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.entries)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.refresh):
			if m.loading {
				return m, nil
			}
			return m, m.Init()
		case key.Matches(msg, keys.copy), key.Matches(msg, keys.enter):
			entry, ok := m.current()
			if !ok || entry.Hash == "" {
				m.status = "Nothing to copy"
				return m, cmdClearStatus()
			}
			return m, cmdCopyToClipboard(entry.Hash)
		}
	}

	return m, nil
}

func (m *HistoryModel) View() string {
	const hotKeys = "esc: back │ ↑/↓: navigate │ c/enter: copy hash │ ctrl+r: reload"

	var b strings.Builder
	if m.loading {
		b.WriteString("Loading history...\n")
		return renderPage("TRANSACTION HISTORY", strings.TrimRight(b.String(), "\n"), hotKeys)
	}

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString(okStyle.Render(m.status) + "\n")
	}

	if len(m.entries) == 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("No transactions yet\n")
		return renderPage("TRANSACTION HISTORY", strings.TrimRight(b.String(), "\n"), hotKeys)
	}

	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("  %-19s │ %-28s │ %-10s │ %-13s │ %s\n", "Time", "Operation", "Phase", "Hash", "Block"))
	b.WriteString("─────────────────────┼──────────────────────────────┼────────────┼───────────────┼──────\n")
	for i, entry := range m.entries {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		block := "-"
		if entry.BlockNumber > 0 {
			block = fmt.Sprintf("%d", entry.BlockNumber)
		}
		hash := "-"
		if entry.Hash != "" {
			hash = utils.ShortHex(entry.Hash)
		}
		b.WriteString(fmt.Sprintf(
			"%s %-19s │ %-28s │ %-10s │ %-13s │ %s\n",
			cursor,
			entry.CreatedAt.Local().Format(time.DateTime),
			fitText(string(entry.Operation), 28),
			entry.Phase,
			hash,
			block,
		))
	}

	if entry, ok := m.current(); ok && entry.Error != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: "))
		b.WriteString(entry.Error)
		b.WriteString("\n")
	}

	return renderPage("TRANSACTION HISTORY", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *HistoryModel) current() (models.JournalEntry, bool) {
	if m.idx < 0 || m.idx >= len(m.entries) {
		return models.JournalEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m *HistoryModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	journal := m.journal

	return func() tea.Msg {
		entries, err := journal.Recent(ctx, historyLimit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copiedMsg{text: text, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{text: text}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
