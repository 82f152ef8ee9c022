package matcher

import (
	"sort"

	"github.com/shopspring/decimal"

	"crane-recon/internal/domain"
	"crane-recon/pkg/logger"
)

// MatchingStrategy decides whether a payment is a plausible match for a transaction
type MatchingStrategy interface {
	Match(tx domain.BankTransaction, payment domain.Payment) bool
}

// ToleranceStrategy matches amounts within a fraction of the transaction amount
type ToleranceStrategy struct {
	Tolerance decimal.Decimal
}

func (s *ToleranceStrategy) Match(tx domain.BankTransaction, payment domain.Payment) bool {
	return WithinTolerance(tx.Amount, payment.Amount, s.Tolerance)
}

// ReconciliationEngine computes suggested pairings between pending bank
// transactions and pending payments. It never mutates its inputs.
type ReconciliationEngine struct {
	strategy  MatchingStrategy
	tolerance decimal.Decimal
}

func NewReconciliationEngine(tolerance decimal.Decimal, strategy MatchingStrategy) *ReconciliationEngine {
	if strategy == nil {
		strategy = &ToleranceStrategy{Tolerance: tolerance}
	}
	return &ReconciliationEngine{
		strategy:  strategy,
		tolerance: tolerance,
	}
}

// Tolerance returns the relative tolerance used for classification
func (e *ReconciliationEngine) Tolerance() decimal.Decimal {
	return e.tolerance
}

// SuggestionInput contains the snapshot to compute suggestions on
type SuggestionInput struct {
	Transactions []domain.BankTransaction
	Payments     []domain.Payment
}

// SuggestionOutput contains the results
type SuggestionOutput struct {
	Suggestions []Suggestion             `json:"suggestions"`
	Unsuggested []domain.BankTransaction `json:"unsuggested"`
}

// Suggestion is a transaction with its plausible payments, closest first
type Suggestion struct {
	Transaction domain.BankTransaction  `json:"transaction"`
	Candidates  []domain.MatchCandidate `json:"candidates"`
}

// Evaluate classifies a payment against a transaction
func (e *ReconciliationEngine) Evaluate(tx domain.BankTransaction, payment domain.Payment) domain.MatchCandidate {
	return domain.MatchCandidate{
		PaymentID:  payment.ID,
		Difference: Difference(tx.Amount, payment.Amount),
		Quality:    Classify(tx.Amount, payment.Amount, e.tolerance),
	}
}

// HasSuggestedMatch reports whether tx is a pending credit with at least one
// pending payment the strategy accepts.
func (e *ReconciliationEngine) HasSuggestedMatch(tx domain.BankTransaction, payments []domain.Payment) bool {
	if !eligible(tx) {
		return false
	}
	for _, p := range payments {
		if p.IsPending() && e.strategy.Match(tx, p) {
			return true
		}
	}
	return false
}

// Suggest lists, for every eligible transaction, the payments the strategy accepts
func (e *ReconciliationEngine) Suggest(input SuggestionInput) *SuggestionOutput {
	output := &SuggestionOutput{
		Suggestions: make([]Suggestion, 0),
		Unsuggested: make([]domain.BankTransaction, 0),
	}

	for _, tx := range input.Transactions {
		if !tx.IsPending() {
			continue
		}
		candidates := e.candidates(tx, input.Payments)
		if len(candidates) == 0 {
			output.Unsuggested = append(output.Unsuggested, tx)
			continue
		}
		output.Suggestions = append(output.Suggestions, Suggestion{
			Transaction: tx,
			Candidates:  candidates,
		})
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"transactions": len(input.Transactions),
		"payments":     len(input.Payments),
		"suggested":    len(output.Suggestions),
		"unsuggested":  len(output.Unsuggested),
	}).Debug("Suggestions computed")

	return output
}

func (e *ReconciliationEngine) candidates(tx domain.BankTransaction, payments []domain.Payment) []domain.MatchCandidate {
	if !eligible(tx) {
		return nil
	}

	var out []domain.MatchCandidate
	for _, p := range payments {
		if !p.IsPending() || !e.strategy.Match(tx, p) {
			continue
		}
		out = append(out, e.Evaluate(tx, p))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Difference.LessThan(out[j].Difference)
	})
	return out
}

// Annotate flags each transaction that has a suggested match
func (e *ReconciliationEngine) Annotate(transactions []domain.BankTransaction, payments []domain.Payment) []domain.TransactionListItem {
	items := make([]domain.TransactionListItem, len(transactions))
	for i, tx := range transactions {
		items[i] = domain.TransactionListItem{
			BankTransaction: tx,
			SuggestedMatch:  e.HasSuggestedMatch(tx, payments),
		}
	}
	return items
}

// Only pending inbound movements are matched against receivables.
func eligible(tx domain.BankTransaction) bool {
	return tx.IsPending() && tx.IsCredit
}
