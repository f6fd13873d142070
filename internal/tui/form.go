// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fair-share/internal/service"
	"github.com/MKhiriev/go-fair-share/internal/utils"
	"github.com/MKhiriev/go-fair-share/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type fieldSpec struct {
	label       string
	placeholder string
	hint        string
}

// formSpec describes one submission screen. values passed to build and
// submit are the raw input texts in field order.
type formSpec struct {
	view     view
	title    string
	subtitle string
	fields   []fieldSpec

	submitLabel  string
	busyLabel    string
	failureTitle string
	note         string

	build  func(values []string) any
	submit func(ctx context.Context, split service.SplitService, values []string) (models.PendingTx, error)
}

// formModel is a submission screen. It tracks the lifecycle of its own
// transaction, so only its submit action is disabled while in flight.
type formModel struct {
	ctx   context.Context
	split service.SplitService
	spec  formSpec

	inputs []textinput.Model
	focus  int

	phase   models.TxPhase
	pending models.PendingTx
	errMsg  string
	status  string
	ready   bool
}

func newFormModel(ctx context.Context, split service.SplitService, spec formSpec) *formModel {
	inputs := make([]textinput.Model, len(spec.fields))
	for i, field := range spec.fields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = field.placeholder
		inputs[i].CharLimit = 4096
		inputs[i].Width = 48
	}
	inputs[0].Focus()

	m := &formModel{
		ctx:    ctx,
		split:  split,
		spec:   spec,
		inputs: inputs,
		phase:  models.PhaseIdle,
	}
	m.refreshReady()
	return m
}

func (m *formModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles editing keys and the submit action. Transaction results are
// delivered through onSubmitted and onConfirmed.
func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if !m.canSubmit() {
				return m, nil
			}
			m.phase = models.PhasePending
			m.errMsg = ""
			m.status = ""
			return m, m.cmdSubmit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.refreshReady()
	return m, cmd
}

func (m *formModel) View() string {
	var b strings.Builder
	b.WriteString(m.spec.subtitle)
	b.WriteString("\n\n")

	labelWidth := 0
	for _, field := range m.spec.fields {
		if w := len(field.label); w > labelWidth {
			labelWidth = w
		}
	}

	for i, field := range m.spec.fields {
		cursor := " "
		if i == m.focus {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-*s │ [%s]\n", cursor, labelWidth, field.label, m.inputs[i].View()))
		if field.hint != "" {
			b.WriteString(fmt.Sprintf("  %-*s │ %s\n", labelWidth, "", helpStyle.Render(field.hint)))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.buttonView())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.spec.failureTitle))
		b.WriteString("\n")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}
	if m.spec.note != "" {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(m.spec.note))
		b.WriteString("\n")
	}

	return renderPage(strings.ToUpper(m.spec.title), strings.TrimRight(b.String(), "\n"), "esc: back │ tab/↑/↓: field │ enter: submit")
}

func (m *formModel) buttonView() string {
	switch m.phase {
	case models.PhasePending:
		return "[" + m.spec.busyLabel + "]"
	case models.PhaseConfirming:
		return "[Confirming...]"
	}
	if !m.ready {
		return helpStyle.Render("[" + m.spec.submitLabel + "]")
	}
	return "[" + m.spec.submitLabel + "]"
}

func (m *formModel) values() []string {
	values := make([]string, len(m.inputs))
	for i := range m.inputs {
		values[i] = m.inputs[i].Value()
	}
	return values
}

func (m *formModel) canSubmit() bool {
	return m.ready && !m.phase.InFlight()
}

func (m *formModel) refreshReady() {
	m.ready = m.split.Ready(m.ctx, m.spec.build(m.values())) == nil
}

// onSubmitted applies a broadcast result. Local validation failures return
// the form to idle and are reported by the caller.
func (m *formModel) onSubmitted(msg txSubmittedMsg) tea.Cmd {
	if msg.err != nil {
		if isValidationError(msg.err) {
			m.phase = models.PhaseIdle
			return nil
		}
		m.phase = models.PhaseFailed
		m.errMsg = msg.err.Error()
		return nil
	}

	m.phase = models.PhaseConfirming
	m.pending = msg.pending
	return m.cmdAwait(msg.pending)
}

// onConfirmed applies a receipt result. A failure keeps every field; a
// success clears them.
func (m *formModel) onConfirmed(msg txConfirmedMsg) {
	if msg.err != nil {
		m.phase = models.PhaseFailed
		m.errMsg = msg.err.Error()
		return
	}

	m.phase = models.PhaseConfirmed
	m.errMsg = ""
	m.status = fmt.Sprintf("Confirmed in block %d: %s", msg.receipt.BlockNumber, utils.ShortHex(msg.receipt.Hash.Hex()))
	m.reset()
}

func (m *formModel) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.refreshReady()
}

func (m *formModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	split := m.split
	spec := m.spec
	values := m.values()

	return func() tea.Msg {
		pending, err := spec.submit(ctx, split, values)
		return txSubmittedMsg{view: spec.view, pending: pending, err: err}
	}
}

func (m *formModel) cmdAwait(pending models.PendingTx) tea.Cmd {
	ctx := m.ctx
	split := m.split
	target := m.spec.view

	return func() tea.Msg {
		receipt, err := split.AwaitConfirmation(ctx, pending)
		return txConfirmedMsg{view: target, receipt: receipt, err: err}
	}
}

func (m *formModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *formModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
