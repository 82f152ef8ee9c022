package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crane-recon/internal/domain"
	"crane-recon/internal/matcher"
	"crane-recon/internal/repository/mocks"
)

type reconMocks struct {
	tx      *mocks.MockBankTransactionRepository
	payment *mocks.MockPaymentRepository
	recon   *mocks.MockReconciliationRepository
}

func newTestReconciliationService(t *testing.T) (ReconciliationService, reconMocks) {
	ctrl := gomock.NewController(t)
	m := reconMocks{
		tx:      mocks.NewMockBankTransactionRepository(ctrl),
		payment: mocks.NewMockPaymentRepository(ctrl),
		recon:   mocks.NewMockReconciliationRepository(ctrl),
	}
	engine := matcher.NewReconciliationEngine(matcher.DefaultTolerance, nil)
	return NewReconciliationService(m.tx, m.payment, m.recon, engine, time.Minute), m
}

func bankTx(id string, amount int64, credit bool, status domain.TransactionStatus) domain.BankTransaction {
	return domain.BankTransaction{
		ID:              id,
		TransactionDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Description:     "Deposito " + id,
		Amount:          decimal.NewFromInt(amount),
		IsCredit:        credit,
		Status:          status,
	}
}

func payment(id string, amount int64, client string) domain.Payment {
	return domain.Payment{
		ID:          id,
		Amount:      decimal.NewFromInt(amount),
		PaymentDate: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
		ClientID:    "c-" + id,
		ClientName:  client,
		Status:      domain.PaymentPending,
	}
}

func TestReconciliationService_ListTransactions(t *testing.T) {
	svc, m := newTestReconciliationService(t)
	ctx := context.Background()

	m.tx.EXPECT().List(ctx).Return([]domain.BankTransaction{
		bankTx("t1", 1000, true, domain.TransactionPending),
		bankTx("t2", 500, false, domain.TransactionPending),
		bankTx("t3", 700, true, domain.TransactionMatched),
	}, nil)
	m.payment.EXPECT().ListPending(ctx).Return([]domain.Payment{payment("p1", 1020, "Acme")}, nil)

	items, err := svc.ListTransactions(ctx, domain.FilterCredit, "")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "t1", items[0].ID)
	assert.True(t, items[0].SuggestedMatch)
}

func TestReconciliationService_ListTransactions_PersistenceError(t *testing.T) {
	svc, m := newTestReconciliationService(t)
	ctx := context.Background()

	m.tx.EXPECT().List(ctx).Return(nil, errors.New("timeout"))

	_, err := svc.ListTransactions(ctx, domain.FilterAll, "")
	var persistenceErr *domain.PersistenceError
	assert.ErrorAs(t, err, &persistenceErr)
}

func TestReconciliationService_ListPayments(t *testing.T) {
	ctx := context.Background()
	payments := []domain.Payment{payment("p1", 1000, "Acme"), payment("p2", 1300, "Beta")}

	t.Run("without a dragged transaction", func(t *testing.T) {
		svc, m := newTestReconciliationService(t)
		m.payment.EXPECT().ListPending(ctx).Return(payments, nil)

		items, err := svc.ListPayments(ctx, "acme", "")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "p1", items[0].ID)
		assert.Nil(t, items[0].DropPreview)
	})

	t.Run("classifies against the dragged transaction", func(t *testing.T) {
		svc, m := newTestReconciliationService(t)
		tx := bankTx("t1", 1000, true, domain.TransactionPending)
		m.payment.EXPECT().ListPending(ctx).Return(payments, nil)
		m.tx.EXPECT().GetByID(ctx, "t1").Return(&tx, nil)

		items, err := svc.ListPayments(ctx, "", "t1")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, domain.MatchExact, items[0].DropPreview.Quality)
		assert.Equal(t, domain.MatchSignificant, items[1].DropPreview.Quality)
	})

	t.Run("matched transaction cannot be dragged", func(t *testing.T) {
		svc, m := newTestReconciliationService(t)
		tx := bankTx("t1", 1000, true, domain.TransactionMatched)
		m.payment.EXPECT().ListPending(ctx).Return(payments, nil)
		m.tx.EXPECT().GetByID(ctx, "t1").Return(&tx, nil)

		_, err := svc.ListPayments(ctx, "", "t1")
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestReconciliationService_ProposeAndConfirm(t *testing.T) {
	svc, m := newTestReconciliationService(t)
	ctx := context.Background()
	tx := bankTx("t1", 1000, true, domain.TransactionPending)
	p := payment("p1", 1030, "Acme")

	m.tx.EXPECT().GetByID(ctx, "t1").Return(&tx, nil)
	m.payment.EXPECT().GetByID(ctx, "p1").Return(&p, nil)

	proposal, err := svc.Propose(ctx, "t1", "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.MatchClose, proposal.Quality)
	assert.Equal(t, "30", proposal.Difference.String())

	_, err = svc.Propose(ctx, "t1", "p1")
	assert.ErrorIs(t, err, domain.ErrDragInProgress)

	m.recon.EXPECT().Match(ctx, "t1", "p1").Return(errors.New("connection reset"))
	_, err = svc.ConfirmProposal(ctx, proposal.ID)
	var persistenceErr *domain.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)

	m.recon.EXPECT().Match(ctx, "t1", "p1").Return(nil)
	confirmed, err := svc.ConfirmProposal(ctx, proposal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionMatched, confirmed.Transaction.Status)
	assert.Equal(t, domain.PaymentReconciled, confirmed.Payment.Status)
	require.NotNil(t, confirmed.Transaction.MatchedPaymentID)
	assert.Equal(t, "p1", *confirmed.Transaction.MatchedPaymentID)

	_, err = svc.ConfirmProposal(ctx, proposal.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReconciliationService_ConfirmProposal_Conflict(t *testing.T) {
	svc, m := newTestReconciliationService(t)
	ctx := context.Background()
	tx := bankTx("t1", 1000, true, domain.TransactionPending)
	p := payment("p1", 1000, "Acme")

	m.tx.EXPECT().GetByID(ctx, "t1").Return(&tx, nil)
	m.payment.EXPECT().GetByID(ctx, "p1").Return(&p, nil)
	proposal, err := svc.Propose(ctx, "t1", "p1")
	require.NoError(t, err)

	m.recon.EXPECT().Match(ctx, "t1", "p1").Return(domain.ErrConflict)
	_, err = svc.ConfirmProposal(ctx, proposal.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	assert.ErrorIs(t, svc.CancelProposal(proposal.ID), domain.ErrNotFound)
}

func TestReconciliationService_Propose_Rejected(t *testing.T) {
	ctx := context.Background()

	t.Run("payment already reconciled", func(t *testing.T) {
		svc, m := newTestReconciliationService(t)
		tx := bankTx("t1", 1000, true, domain.TransactionPending)
		p := payment("p1", 1000, "Acme")
		p.Status = domain.PaymentReconciled
		m.tx.EXPECT().GetByID(ctx, "t1").Return(&tx, nil)
		m.payment.EXPECT().GetByID(ctx, "p1").Return(&p, nil)

		_, err := svc.Propose(ctx, "t1", "p1")
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		svc, m := newTestReconciliationService(t)
		m.tx.EXPECT().GetByID(ctx, "t9").Return(nil, domain.ErrNotFound)

		_, err := svc.Propose(ctx, "t9", "p1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestReconciliationService_CancelProposal(t *testing.T) {
	svc, m := newTestReconciliationService(t)
	ctx := context.Background()
	tx := bankTx("t1", 1000, true, domain.TransactionPending)
	p := payment("p1", 1000, "Acme")

	m.tx.EXPECT().GetByID(ctx, "t1").Return(&tx, nil).Times(2)
	m.payment.EXPECT().GetByID(ctx, "p1").Return(&p, nil).Times(2)

	proposal, err := svc.Propose(ctx, "t1", "p1")
	require.NoError(t, err)
	require.NoError(t, svc.CancelProposal(proposal.ID))

	// the transaction is free to be dragged again
	_, err = svc.Propose(ctx, "t1", "p1")
	assert.NoError(t, err)
}

func TestReconciliationService_Unmatch(t *testing.T) {
	svc, m := newTestReconciliationService(t)
	ctx := context.Background()

	m.recon.EXPECT().Unmatch(ctx, "t1").Return(nil)
	assert.NoError(t, svc.Unmatch(ctx, "t1"))

	m.recon.EXPECT().Unmatch(ctx, "t2").Return(domain.ErrNotFound)
	assert.ErrorIs(t, svc.Unmatch(ctx, "t2"), domain.ErrNotFound)
}

func TestReconciliationService_ConfirmPayment(t *testing.T) {
	svc, m := newTestReconciliationService(t)
	ctx := context.Background()

	m.payment.EXPECT().Confirm(ctx, "p1").Return(nil)
	assert.NoError(t, svc.ConfirmPayment(ctx, "p1"))

	m.payment.EXPECT().Confirm(ctx, "p2").Return(domain.ErrConflict)
	assert.ErrorIs(t, svc.ConfirmPayment(ctx, "p2"), domain.ErrConflict)
}

func TestReconciliationService_ConfirmPayment_HeldByProposal(t *testing.T) {
	svc, m := newTestReconciliationService(t)
	ctx := context.Background()
	tx := bankTx("t1", 1000, true, domain.TransactionPending)
	p := payment("p1", 1000, "Acme")

	m.tx.EXPECT().GetByID(ctx, "t1").Return(&tx, nil)
	m.payment.EXPECT().GetByID(ctx, "p1").Return(&p, nil)
	proposal, err := svc.Propose(ctx, "t1", "p1")
	require.NoError(t, err)

	err = svc.ConfirmPayment(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrDragInProgress)
	assert.Contains(t, err.Error(), "t1")

	require.NoError(t, svc.CancelProposal(proposal.ID))
	m.payment.EXPECT().Confirm(ctx, "p1").Return(nil)
	assert.NoError(t, svc.ConfirmPayment(ctx, "p1"))
}

func TestReconciliationService_Propose_Concurrent(t *testing.T) {
	svc, m := newTestReconciliationService(t)
	ctx := context.Background()
	tx := bankTx("t1", 1000, true, domain.TransactionPending)
	p1 := payment("p1", 1000, "Acme")
	p2 := payment("p2", 1010, "Globex")

	m.tx.EXPECT().
		GetByID(ctx, "t1").
		DoAndReturn(func(context.Context, string) (*domain.BankTransaction, error) {
			time.Sleep(20 * time.Millisecond)
			return &tx, nil
		}).
		MinTimes(1).MaxTimes(2)
	m.payment.EXPECT().GetByID(ctx, "p1").Return(&p1, nil).MaxTimes(1)
	m.payment.EXPECT().GetByID(ctx, "p2").Return(&p2, nil).MaxTimes(1)

	paymentIDs := []string{"p1", "p2"}
	errs := make([]error, len(paymentIDs))
	var wg sync.WaitGroup
	for i, paymentID := range paymentIDs {
		wg.Add(1)
		go func(i int, paymentID string) {
			defer wg.Done()
			_, errs[i] = svc.Propose(ctx, "t1", paymentID)
		}(i, paymentID)
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrDragInProgress)
	}
	assert.Equal(t, 1, accepted)
}

func TestReconciliationService_SummaryAndSuggestions(t *testing.T) {
	svc, m := newTestReconciliationService(t)
	ctx := context.Background()
	txs := []domain.BankTransaction{
		bankTx("t1", 1000, true, domain.TransactionPending),
		bankTx("t2", 400, false, domain.TransactionPending),
		bankTx("t3", 700, true, domain.TransactionMatched),
	}
	payments := []domain.Payment{payment("p1", 1000, "Acme"), payment("p2", 990, "Beta")}

	m.tx.EXPECT().List(ctx).Return(txs, nil).Times(2)
	m.payment.EXPECT().ListPending(ctx).Return(payments, nil).Times(2)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.PendingTransactions)
	assert.Equal(t, 1, summary.MatchedTransactions)
	assert.Equal(t, 1, summary.SuggestedMatches)

	out, err := svc.Suggestions(ctx)
	require.NoError(t, err)
	require.Len(t, out.Suggestions, 1)
	assert.Equal(t, "t1", out.Suggestions[0].Transaction.ID)
	require.Len(t, out.Suggestions[0].Candidates, 2)
	assert.Equal(t, "p1", out.Suggestions[0].Candidates[0].PaymentID)
}
