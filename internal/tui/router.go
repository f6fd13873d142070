// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// view enumerates the screens of the client. Exactly one is active.
type view int

const (
	viewHome view = iota
	viewEqualSplit
	viewCustomSplit
	viewPayShare
	viewSettle
	viewExpenses
	viewHistory
)

func (v view) String() string {
	switch v {
	case viewHome:
		return "home"
	case viewEqualSplit:
		return "equalSplit"
	case viewCustomSplit:
		return "customSplit"
	case viewPayShare:
		return "payShare"
	case viewSettle:
		return "settle"
	case viewExpenses:
		return "view"
	case viewHistory:
		return "history"
	default:
		return "unknown"
	}
}

// isForm reports whether v is one of the submission screens.
func (v view) isForm() bool {
	switch v {
	case viewEqualSplit, viewCustomSplit, viewPayShare, viewSettle:
		return true
	default:
		return false
	}
}

type navKind int

const (
	// navSelect opens target from the home screen.
	navSelect navKind = iota
	// navBack returns to the home screen.
	navBack
	// navSubmitted follows a confirmed submission.
	navSubmitted
)

type navEvent struct {
	kind   navKind
	target view
}

// transition is the only place the active view changes. Events that do not
// apply to the current view leave it unchanged.
func transition(current view, event navEvent) view {
	switch event.kind {
	case navSelect:
		if current == viewHome && event.target > viewHome && event.target <= viewHistory {
			return event.target
		}
	case navBack:
		return viewHome
	case navSubmitted:
		if current.isForm() {
			return viewExpenses
		}
	}
	return current
}
