package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"crane-recon/internal/domain"
	"crane-recon/internal/matcher"
	"crane-recon/internal/repository"
	"crane-recon/pkg/logger"
)

type ReconciliationService interface {
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, search string) ([]domain.TransactionListItem, error)
	ListPayments(ctx context.Context, search, activeTransactionID string) ([]domain.PaymentListItem, error)
	Suggestions(ctx context.Context) (*matcher.SuggestionOutput, error)
	Propose(ctx context.Context, transactionID, paymentID string) (*domain.MatchProposal, error)
	ConfirmProposal(ctx context.Context, proposalID string) (*domain.MatchProposal, error)
	CancelProposal(proposalID string) error
	Unmatch(ctx context.Context, transactionID string) error
	ConfirmPayment(ctx context.Context, paymentID string) error
	Summary(ctx context.Context) (*domain.ReconciliationSummary, error)
}

type reconciliationService struct {
	txRepo      repository.BankTransactionRepository
	paymentRepo repository.PaymentRepository
	reconRepo   repository.ReconciliationRepository
	engine      *matcher.ReconciliationEngine
	proposals   *cache.Cache

	// mu makes the pending-proposal check and its update atomic
	mu sync.Mutex
}

func NewReconciliationService(
	txRepo repository.BankTransactionRepository,
	paymentRepo repository.PaymentRepository,
	reconRepo repository.ReconciliationRepository,
	engine *matcher.ReconciliationEngine,
	proposalTTL time.Duration,
) ReconciliationService {
	return &reconciliationService{
		txRepo:      txRepo,
		paymentRepo: paymentRepo,
		reconRepo:   reconRepo,
		engine:      engine,
		proposals:   cache.New(proposalTTL, proposalTTL*2),
	}
}

// ListTransactions returns the filtered transactions flagged with whether a
// pending payment is within tolerance.
func (s *reconciliationService) ListTransactions(ctx context.Context, filter domain.TransactionFilter, search string) ([]domain.TransactionListItem, error) {
	transactions, payments, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	filtered := matcher.FilterTransactions(transactions, filter, search)
	return s.engine.Annotate(filtered, payments), nil
}

// ListPayments returns pending payments. When activeTransactionID is set each
// payment carries its classification against that transaction.
func (s *reconciliationService) ListPayments(ctx context.Context, search, activeTransactionID string) ([]domain.PaymentListItem, error) {
	payments, err := s.paymentRepo.ListPending(ctx)
	if err != nil {
		return nil, domain.Persistence("list payments", err)
	}
	payments = matcher.FilterPayments(payments, search)

	if activeTransactionID == "" {
		items := make([]domain.PaymentListItem, len(payments))
		for i, p := range payments {
			items[i] = domain.PaymentListItem{Payment: p}
		}
		return items, nil
	}

	tx, err := s.txRepo.GetByID(ctx, activeTransactionID)
	if err != nil {
		return nil, domain.Persistence("get bank transaction", err)
	}
	drag := s.engine.NewDragContext([]domain.BankTransaction{*tx}, payments)
	if err := drag.Begin(tx.ID); err != nil {
		return nil, err
	}
	return drag.DropTargets(), nil
}

func (s *reconciliationService) Suggestions(ctx context.Context) (*matcher.SuggestionOutput, error) {
	transactions, payments, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Suggest(matcher.SuggestionInput{
		Transactions: transactions,
		Payments:     payments,
	}), nil
}

// Propose drops a transaction on a payment. The pairing is held until it is
// confirmed or cancelled; nothing is written.
func (s *reconciliationService) Propose(ctx context.Context, transactionID, paymentID string) (*domain.MatchProposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pending, ok := s.pendingProposal(func(p domain.MatchProposal) bool { return p.Transaction.ID == transactionID }); ok {
		return nil, fmt.Errorf("transaction %s awaits confirmation of proposal %s: %w", transactionID, pending.ID, domain.ErrDragInProgress)
	}

	tx, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, domain.Persistence("get bank transaction", err)
	}
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, domain.Persistence("get payment", err)
	}

	drag := s.engine.NewDragContext([]domain.BankTransaction{*tx}, []domain.Payment{*payment})
	if err := drag.Begin(tx.ID); err != nil {
		return nil, err
	}
	proposal, err := drag.Drop(payment.ID)
	if err != nil {
		return nil, err
	}
	s.proposals.Set(proposal.ID, *proposal, cache.DefaultExpiration)

	logger.GetLogger().WithFields(logrus.Fields{
		"proposal_id":    proposal.ID,
		"transaction_id": transactionID,
		"payment_id":     paymentID,
		"quality":        proposal.Quality,
	}).Info("Match proposed")

	return proposal, nil
}

// ConfirmProposal persists the pairing. A proposal whose write failed is kept
// so the confirmation can be retried.
func (s *reconciliationService) ConfirmProposal(ctx context.Context, proposalID string) (*domain.MatchProposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposal, err := s.proposal(proposalID)
	if err != nil {
		return nil, err
	}

	if err := s.reconRepo.Match(ctx, proposal.Transaction.ID, proposal.Payment.ID); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.proposals.Delete(proposalID)
		}
		logger.GetLogger().WithError(err).WithField("proposal_id", proposalID).Warn("Failed to confirm match")
		return nil, domain.Persistence("match transaction", err)
	}
	s.proposals.Delete(proposalID)

	logger.GetLogger().WithFields(logrus.Fields{
		"proposal_id":    proposalID,
		"transaction_id": proposal.Transaction.ID,
		"payment_id":     proposal.Payment.ID,
	}).Info("Match confirmed")

	proposal.Transaction.Status = domain.TransactionMatched
	proposal.Transaction.MatchedPaymentID = &proposal.Payment.ID
	proposal.Payment.Status = domain.PaymentReconciled
	proposal.Payment.BankTransactionID = &proposal.Transaction.ID
	return proposal, nil
}

// CancelProposal ends the drag held by the proposal; nothing is written
func (s *reconciliationService) CancelProposal(proposalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposal, err := s.proposal(proposalID)
	if err != nil {
		return err
	}
	drag := s.resume(*proposal)
	held := drag.Active()
	drag.Cancel()
	s.proposals.Delete(proposalID)

	if held != nil {
		logger.GetLogger().WithFields(logrus.Fields{
			"proposal_id":    proposalID,
			"transaction_id": held.ID,
		}).Info("Match proposal cancelled")
	}
	return nil
}

// Unmatch returns a transaction and its payment to pending
func (s *reconciliationService) Unmatch(ctx context.Context, transactionID string) error {
	if err := s.reconRepo.Unmatch(ctx, transactionID); err != nil {
		return domain.Persistence("unmatch transaction", err)
	}
	logger.GetLogger().WithField("transaction_id", transactionID).Info("Transaction unmatched")
	return nil
}

// ConfirmPayment marks a pending payment as confirmed without a bank
// transaction. It is refused while the payment is the target of a pending
// proposal, since that drag has not ended yet.
func (s *reconciliationService) ConfirmPayment(ctx context.Context, paymentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pending, ok := s.pendingProposal(func(p domain.MatchProposal) bool { return p.Payment.ID == paymentID }); ok {
		if drag := s.resume(pending); !drag.CanConfirmPayment() {
			return fmt.Errorf("payment %s is held by transaction %s in proposal %s: %w",
				paymentID, drag.Active().ID, pending.ID, domain.ErrDragInProgress)
		}
	}

	if err := s.paymentRepo.Confirm(ctx, paymentID); err != nil {
		return domain.Persistence("confirm payment", err)
	}
	logger.GetLogger().WithField("payment_id", paymentID).Info("Payment confirmed")
	return nil
}

func (s *reconciliationService) Summary(ctx context.Context) (*domain.ReconciliationSummary, error) {
	transactions, payments, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Summarize(transactions, payments), nil
}

func (s *reconciliationService) snapshot(ctx context.Context) ([]domain.BankTransaction, []domain.Payment, error) {
	transactions, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, nil, domain.Persistence("list bank transactions", err)
	}
	payments, err := s.paymentRepo.ListPending(ctx)
	if err != nil {
		return nil, nil, domain.Persistence("list payments", err)
	}
	return transactions, payments, nil
}

func (s *reconciliationService) proposal(id string) (*domain.MatchProposal, error) {
	v, ok := s.proposals.Get(id)
	if !ok {
		return nil, fmt.Errorf("proposal %s: %w", id, domain.ErrNotFound)
	}
	proposal := v.(domain.MatchProposal)
	return &proposal, nil
}

func (s *reconciliationService) pendingProposal(match func(domain.MatchProposal) bool) (domain.MatchProposal, bool) {
	for _, item := range s.proposals.Items() {
		if p, ok := item.Object.(domain.MatchProposal); ok && match(p) {
			return p, true
		}
	}
	return domain.MatchProposal{}, false
}

// resume rebuilds the board of a pending proposal with its transaction still
// being dragged. The proposal snapshot was pending when proposed, so Begin
// cannot fail on it.
func (s *reconciliationService) resume(p domain.MatchProposal) *matcher.DragContext {
	drag := s.engine.NewDragContext([]domain.BankTransaction{p.Transaction}, []domain.Payment{p.Payment})
	_ = drag.Begin(p.Transaction.ID)
	return drag
}
