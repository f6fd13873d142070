// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fair-share/internal/adapter"
	"github.com/MKhiriev/go-fair-share/internal/logger"
	"github.com/MKhiriev/go-fair-share/internal/mock"
	"github.com/MKhiriev/go-fair-share/internal/service"
	"github.com/MKhiriev/go-fair-share/internal/validators"
	"github.com/MKhiriev/go-fair-share/models"
)

var (
	testHash = common.HexToHash("0x9a8b7c6d5e4f30211203f4e5d6c7b8a99a8b7c6d5e4f30211203f4e5d6c7b8a9")

	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

type testMocks struct {
	split      *mock.MockSplitService
	expenses   *mock.MockExpenseService
	connection *mock.MockConnectionService
	journal    *mock.MockJournalService
}

// newTestRoot builds a root model over mocked services. Ready succeeds for
// every form unless a test overrides it before the first call.
func newTestRoot(t *testing.T, ready func(form any) error) (RootModel, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		split:      mock.NewMockSplitService(ctrl),
		expenses:   mock.NewMockExpenseService(ctrl),
		connection: mock.NewMockConnectionService(ctrl),
		journal:    mock.NewMockJournalService(ctrl),
	}
	if ready == nil {
		ready = func(any) error { return nil }
	}
	m.split.EXPECT().Ready(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, form any) error { return ready(form) }).
		AnyTimes()

	services := &service.ClientServices{
		SplitService:      m.split,
		ExpenseService:    m.expenses,
		ConnectionService: m.connection,
		JournalService:    m.journal,
	}

	root := NewRootModel(context.Background(), services, models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc1234"), logger.Nop())
	return root, m
}

func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func open(t *testing.T, r RootModel, target view) RootModel {
	t.Helper()
	r, _ = update(t, r, navEvent{kind: navSelect, target: target})
	require.Equal(t, target, r.current)
	return r
}

func fill(t *testing.T, r RootModel, v view, values ...string) {
	t.Helper()
	form := r.forms[v]
	require.Len(t, form.inputs, len(values))
	for i, value := range values {
		form.inputs[i].SetValue(value)
	}
	form.refreshReady()
}

// execute runs cmd and returns the message it produced.
func execute(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestRootModel_HomeSelectAndBack(t *testing.T) {
	root, _ := newTestRoot(t, nil)

	root, cmd := update(t, root, runeKey('j'))
	assert.Nil(t, cmd)
	root, cmd = update(t, root, keyEnter)
	msg := execute(t, cmd)
	assert.Equal(t, navEvent{kind: navSelect, target: viewCustomSplit}, msg)

	root, _ = update(t, root, msg)
	assert.Equal(t, viewCustomSplit, root.current)
	assert.Contains(t, root.View(), "CUSTOM SPLIT")

	root, _ = update(t, root, keyEsc)
	assert.Equal(t, viewHome, root.current)
}

func TestRootModel_EveryScreenReturnsHomeOnEsc(t *testing.T) {
	for _, target := range []view{viewEqualSplit, viewCustomSplit, viewPayShare, viewSettle, viewExpenses} {
		t.Run(target.String(), func(t *testing.T) {
			root, _ := newTestRoot(t, nil)
			root = open(t, root, target)
			root, _ = update(t, root, keyEsc)
			assert.Equal(t, viewHome, root.current)
		})
	}
}

func TestRootModel_NavigationReturnsLandingScreen(t *testing.T) {
	root, mocks := newTestRoot(t, nil)
	mocks.journal.EXPECT().Recent(gomock.Any(), historyLimit).Return(nil, nil)

	root, cmd := update(t, root, navEvent{kind: navSelect, target: viewHistory})
	assert.Equal(t, viewHistory, root.current)
	assert.IsType(t, historyLoadedMsg{}, execute(t, cmd))

	root, cmd = update(t, root, keyEsc)
	assert.Equal(t, viewHome, root.current)
	assert.Nil(t, cmd)

	root = open(t, root, viewSettle)
	root, cmd = update(t, root, txConfirmedMsg{
		view:    viewSettle,
		receipt: models.TxReceipt{Hash: testHash, BlockNumber: 3, Status: 1},
	})
	assert.Equal(t, viewExpenses, root.current)
	assert.NotNil(t, cmd)
	assert.Contains(t, root.View(), "VIEW EXPENSES")
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	root, _ := newTestRoot(t, nil)

	root, _ = update(t, root, runeKey('v'))
	require.True(t, root.showBuildInfo)
	out := root.View()
	assert.Contains(t, out, "FairShare")
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc1234")

	root, _ = update(t, root, keyEsc)
	assert.False(t, root.showBuildInfo)
	assert.Equal(t, viewHome, root.current)
}

func TestRootModel_VersionKeyIsTextOnForms(t *testing.T) {
	root, _ := newTestRoot(t, nil)
	root = open(t, root, viewSettle)

	root, _ = update(t, root, runeKey('v'))
	assert.False(t, root.showBuildInfo)
	assert.Equal(t, "v", root.forms[viewSettle].inputs[0].Value())
}

func TestRootModel_Quit(t *testing.T) {
	root, _ := newTestRoot(t, nil)

	root, cmd := update(t, root, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, root.quitByUser)
	assert.Equal(t, tea.QuitMsg{}, execute(t, cmd))

	root, _ = newTestRoot(t, nil)
	root, cmd = update(t, root, runeKey('q'))
	assert.True(t, root.quitByUser)
	assert.Equal(t, tea.QuitMsg{}, execute(t, cmd))
}

func TestRootModel_ConnectionStatus(t *testing.T) {
	root, _ := newTestRoot(t, nil)
	assert.Contains(t, root.View(), "Connecting...")

	root, _ = update(t, root, connectionMsg{status: models.ConnectionStatus{
		Connected:       true,
		Account:         common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		ChainID:         31337,
		ExpectedChainID: 31337,
		ChainName:       "anvil",
	}})
	assert.Contains(t, root.View(), "anvil")

	root, _ = update(t, root, connectionMsg{status: models.ConnectionStatus{Connected: true, ChainName: "sepolia", Unsupported: true}})
	assert.Contains(t, root.View(), "Wrong network")
}

func TestRootModel_CustomSplitConfirmed(t *testing.T) {
	root, mocks := newTestRoot(t, nil)
	root = open(t, root, viewCustomSplit)
	fill(t, root, viewCustomSplit, "Dinner", "0xAAA, 0xBBB", "0.08", "0.05, 0.03", "0xAAA")

	pending := models.PendingTx{JournalID: "j-1", Operation: models.OpCreateCustomSplit, Hash: testHash}
	gomock.InOrder(
		mocks.split.EXPECT().SubmitCustomSplit(gomock.Any(), models.CustomSplitForm{
			Title:        "Dinner",
			Participants: "0xAAA, 0xBBB",
			Amount:       "0.08",
			Shares:       "0.05, 0.03",
			Payer:        "0xAAA",
		}).Return(pending, nil),
		mocks.split.EXPECT().AwaitConfirmation(gomock.Any(), pending).
			Return(models.TxReceipt{Hash: testHash, BlockNumber: 7, Status: 1}, nil),
	)

	root, cmd := update(t, root, keyEnter)
	form := root.forms[viewCustomSplit]
	assert.Equal(t, models.PhasePending, form.phase)
	assert.Contains(t, root.View(), "[Creating...]")

	root, cmd = update(t, root, execute(t, cmd))
	assert.Equal(t, models.PhaseConfirming, form.phase)
	assert.Contains(t, root.View(), "[Confirming...]")

	root, _ = update(t, root, execute(t, cmd))
	assert.Equal(t, models.PhaseConfirmed, form.phase)
	assert.Equal(t, viewExpenses, root.current)
	for _, value := range form.values() {
		assert.Empty(t, value)
	}
	assert.Contains(t, form.status, "block 7")
}

func TestRootModel_CountMismatchShowsOverlay(t *testing.T) {
	root, mocks := newTestRoot(t, nil)
	root = open(t, root, viewCustomSplit)
	fill(t, root, viewCustomSplit, "Trip", "0xAAA, 0xBBB, 0xCCC", "0.1", "0.05, 0.05", "0xAAA")

	mocks.split.EXPECT().SubmitCustomSplit(gomock.Any(), gomock.Any()).
		Return(models.PendingTx{}, validators.ErrShareCountMismatch)

	root, cmd := update(t, root, keyEnter)
	root, cmd = update(t, root, execute(t, cmd))
	assert.Nil(t, cmd)

	form := root.forms[viewCustomSplit]
	assert.True(t, root.showError)
	assert.Contains(t, root.View(), "Number of participants must match number of custom shares")
	assert.Equal(t, models.PhaseIdle, form.phase)
	assert.Empty(t, form.errMsg)
	assert.Equal(t, "0xAAA, 0xBBB, 0xCCC", form.inputs[1].Value())
	assert.Equal(t, viewCustomSplit, root.current)

	root, _ = update(t, root, keyEnter)
	assert.False(t, root.showError)
	assert.Equal(t, viewCustomSplit, root.current)
}

func TestRootModel_RevertedReceiptKeepsFields(t *testing.T) {
	root, mocks := newTestRoot(t, nil)
	root = open(t, root, viewEqualSplit)
	fill(t, root, viewEqualSplit, "Lunch", "0xAAA, 0xBBB", "0.2", "0xAAA")

	reverted := fmt.Errorf("%w: %w: Payer must be a participant", adapter.ErrTransactionReverted, adapter.ErrExecutionReverted)
	pending := models.PendingTx{JournalID: "j-2", Operation: models.OpCreateEqualSplit, Hash: testHash}
	mocks.split.EXPECT().SubmitEqualSplit(gomock.Any(), gomock.Any()).Return(pending, nil)
	mocks.split.EXPECT().AwaitConfirmation(gomock.Any(), pending).
		Return(models.TxReceipt{Hash: testHash, BlockNumber: 9, Status: 0}, reverted)

	root, cmd := update(t, root, keyEnter)
	root, cmd = update(t, root, execute(t, cmd))
	root, _ = update(t, root, execute(t, cmd))

	form := root.forms[viewEqualSplit]
	assert.Equal(t, models.PhaseFailed, form.phase)
	assert.Equal(t, reverted.Error(), form.errMsg)
	assert.Equal(t, []string{"Lunch", "0xAAA, 0xBBB", "0.2", "0xAAA"}, form.values())
	assert.Equal(t, viewEqualSplit, root.current)
	assert.False(t, root.showError)

	out := root.View()
	assert.Contains(t, out, "Transaction Failed")
	assert.Contains(t, out, "Payer must be a participant")
}

func TestRootModel_BroadcastFailureShownInForm(t *testing.T) {
	root, mocks := newTestRoot(t, nil)
	root = open(t, root, viewSettle)
	fill(t, root, viewSettle, "3")

	rejected := fmt.Errorf("%w: Only payer can settle", adapter.ErrExecutionReverted)
	mocks.split.EXPECT().Settle(gomock.Any(), models.SettleForm{ExpenseID: "3"}).Return(models.PendingTx{}, rejected)

	root, cmd := update(t, root, keyEnter)
	assert.Contains(t, root.View(), "[Processing...]")
	root, cmd = update(t, root, execute(t, cmd))
	assert.Nil(t, cmd)

	form := root.forms[viewSettle]
	assert.Equal(t, models.PhaseFailed, form.phase)
	assert.Equal(t, rejected.Error(), form.errMsg)
	assert.Contains(t, root.View(), "Settlement Failed")
	assert.Equal(t, "3", form.inputs[0].Value())
}

func TestRootModel_ConfirmationAfterLeavingForm(t *testing.T) {
	root, mocks := newTestRoot(t, nil)
	root = open(t, root, viewPayShare)
	fill(t, root, viewPayShare, "1", "0.04")

	pending := models.PendingTx{Operation: models.OpPayShare, Hash: testHash}
	mocks.split.EXPECT().PayShare(gomock.Any(), models.PayShareForm{ExpenseID: "1", ShareAmount: "0.04"}).Return(pending, nil)
	mocks.split.EXPECT().AwaitConfirmation(gomock.Any(), pending).
		Return(models.TxReceipt{Hash: testHash, BlockNumber: 3, Status: 1}, nil)

	root, cmd := update(t, root, keyEnter)
	root, awaitCmd := update(t, root, execute(t, cmd))

	root, _ = update(t, root, keyEsc)
	require.Equal(t, viewHome, root.current)

	root, _ = update(t, root, execute(t, awaitCmd))
	assert.Equal(t, viewHome, root.current)

	form := root.forms[viewPayShare]
	assert.Equal(t, models.PhaseConfirmed, form.phase)
	assert.Equal(t, []string{"", ""}, form.values())
}

func TestRootModel_InFlightFormIgnoresSubmit(t *testing.T) {
	root, mocks := newTestRoot(t, nil)
	root = open(t, root, viewSettle)
	fill(t, root, viewSettle, "5")

	mocks.split.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(models.PendingTx{Hash: testHash}, nil).Times(1)

	root, cmd := update(t, root, keyEnter)
	require.NotNil(t, cmd)

	root, second := update(t, root, keyEnter)
	assert.Nil(t, second)

	execute(t, cmd)
}

func TestRootModel_OtherFormsStayUsableWhileOneIsInFlight(t *testing.T) {
	root, mocks := newTestRoot(t, nil)
	root = open(t, root, viewSettle)
	fill(t, root, viewSettle, "5")
	mocks.split.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(models.PendingTx{Hash: testHash}, nil)

	root, settleCmd := update(t, root, keyEnter)
	root, _ = update(t, root, keyEsc)
	root = open(t, root, viewPayShare)
	fill(t, root, viewPayShare, "5", "0.01")
	mocks.split.EXPECT().PayShare(gomock.Any(), gomock.Any()).Return(models.PendingTx{Hash: testHash}, nil)

	root, payCmd := update(t, root, keyEnter)
	assert.NotNil(t, payCmd)
	assert.Equal(t, models.PhasePending, root.forms[viewSettle].phase)
	assert.Equal(t, models.PhasePending, root.forms[viewPayShare].phase)

	execute(t, settleCmd)
	execute(t, payCmd)
}

func TestRootModel_PayShareDisabledUntilReady(t *testing.T) {
	ready := func(form any) error {
		f, ok := form.(models.PayShareForm)
		if !ok {
			return nil
		}
		if f.ExpenseID == "" {
			return validators.ErrExpenseIDRequired
		}
		if f.ShareAmount == "" {
			return validators.ErrShareAmountRequired
		}
		return nil
	}
	root, _ := newTestRoot(t, ready)
	root = open(t, root, viewPayShare)

	form := root.forms[viewPayShare]
	assert.False(t, form.ready)

	fill(t, root, viewPayShare, "1", "")
	root, cmd := update(t, root, keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, models.PhaseIdle, form.phase)

	fill(t, root, viewPayShare, "1", "0.5")
	assert.True(t, form.ready)
}

func TestRootModel_ExpenseLoadErrorShowsOverlay(t *testing.T) {
	root, mocks := newTestRoot(t, nil)
	root = open(t, root, viewExpenses)
	root.expenses.inputs[0].SetValue("abc")

	mocks.expenses.EXPECT().Load(gomock.Any(), models.ExpenseQuery{ExpenseID: "abc"}).
		Return(models.ExpenseView{}, fmt.Errorf("%w: %q", validators.ErrInvalidExpenseID, "abc"))

	root, cmd := update(t, root, keyEnter)
	root, _ = update(t, root, execute(t, cmd))

	assert.True(t, root.showError)
	assert.Contains(t, root.View(), "invalid expense ID")
	assert.False(t, root.expenses.loading)
	assert.False(t, root.expenses.loaded)
}

func TestRootModel_HistoryLoadsOnOpen(t *testing.T) {
	root, mocks := newTestRoot(t, nil)
	mocks.journal.EXPECT().Recent(gomock.Any(), historyLimit).Return(nil, errors.New("load transaction history: disk I/O error"))

	root, cmd := update(t, root, navEvent{kind: navSelect, target: viewHistory})
	root, _ = update(t, root, execute(t, cmd))

	assert.Contains(t, root.View(), "disk I/O error")
}
