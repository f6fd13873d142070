// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-fair-share/internal/logger"
	"github.com/MKhiriev/go-fair-share/internal/service"
	"github.com/MKhiriev/go-fair-share/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is the TUI router:
// 1) keeps the active view and changes it only through transition
// 2) handles global quit, the build info window and the error overlay
// 3) routes transaction results to the form that started them
// 4) delegates all other messages to the active screen
type RootModel struct {
	ctx       context.Context
	logger    *logger.Logger
	buildInfo models.AppBuildInfo

	current  view
	home     *HomeModel
	forms    map[view]*formModel
	expenses *ExpensesModel
	history  *HistoryModel

	conn      models.ConnectionStatus
	connKnown bool

	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel
	quitByUser    bool
}

// NewRootModel builds every screen and opens the home view.
func NewRootModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) RootModel {
	forms := make(map[view]*formModel, 4)
	for _, spec := range []formSpec{equalSplitSpec(), customSplitSpec(), payShareSpec(), settleSpec()} {
		forms[spec.view] = newFormModel(ctx, services.SplitService, spec)
	}

	return RootModel{
		ctx:       ctx,
		logger:    logger,
		buildInfo: buildInfo,
		current:   viewHome,
		home:      NewHomeModel(),
		forms:     forms,
		expenses:  NewExpensesModel(ctx, services.ExpenseService),
		history:   NewHistoryModel(ctx, services.JournalService),
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.home.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			r.quitByUser = true
			return r, tea.Quit
		}
		if r.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				r.showError = false
				r.errorOverlay.message = ""
			}
			return r, nil
		}
		if r.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				r.showBuildInfo = false
			}
			return r, nil
		}

		if r.current == viewHome {
			switch {
			case key.Matches(msg, keys.version):
				r.showBuildInfo = true
				return r, nil
			case key.Matches(msg, keys.quit):
				r.quitByUser = true
				return r, tea.Quit
			}
		} else if key.Matches(msg, keys.esc) {
			cmd := r.navigate(navEvent{kind: navBack})
			return r, cmd
		}

	case navEvent:
		cmd := r.navigate(msg)
		return r, cmd

	case connectionMsg:
		r.conn = msg.status
		r.connKnown = true
		return r, nil

	case txSubmittedMsg:
		form, ok := r.forms[msg.view]
		if !ok {
			return r, nil
		}
		if msg.err != nil && isValidationError(msg.err) {
			r.showErrorf(msg.err.Error())
		}
		return r, form.onSubmitted(msg)

	case txConfirmedMsg:
		form, ok := r.forms[msg.view]
		if !ok {
			return r, nil
		}
		form.onConfirmed(msg)
		if msg.err == nil && r.current == msg.view {
			cmd := r.navigate(navEvent{kind: navSubmitted})
			return r, cmd
		}
		return r, nil

	case expenseLoadedMsg:
		r.expenses.onLoaded(msg)
		if msg.err != nil {
			r.showErrorf(msg.err.Error())
		}
		return r, nil

	case historyLoadedMsg, copiedMsg, clearStatusMsg:
		_, cmd := r.history.Update(msg)
		return r, cmd
	}

	_, cmd := r.active().Update(msg)
	return r, cmd
}

func (r RootModel) View() string {
	navbar := renderNavbar(r.conn, r.connKnown)

	var page string
	switch {
	case r.showError:
		page = r.errorOverlay.View()
	case r.showBuildInfo:
		page = renderBuildInfoWindow(r.buildInfo)
	default:
		page = r.active().View()
	}

	return appStyle.Render(navbar + "\n\n" + page)
}

// navigate applies event to the active view and initializes the screen it
// lands on.
func (r *RootModel) navigate(event navEvent) tea.Cmd {
	next := transition(r.current, event)
	if next == r.current {
		return nil
	}

	r.logger.Debug().
		Str("func", "RootModel.navigate").
		Str("from", r.current.String()).
		Str("to", next.String()).
		Msg("view changed")

	r.current = next
	return r.active().Init()
}

func (r RootModel) active() tea.Model {
	switch r.current {
	case viewExpenses:
		return r.expenses
	case viewHistory:
		return r.history
	case viewHome:
		return r.home
	}
	if form, ok := r.forms[r.current]; ok {
		return form
	}
	return r.home
}

func (r *RootModel) showErrorf(message string) {
	r.showError = true
	r.errorOverlay.message = message
}
