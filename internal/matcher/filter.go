package matcher

import (
	"strings"

	"github.com/shopspring/decimal"

	"crane-recon/internal/domain"
)

// FilterTransactions applies the list filter and a case-insensitive search
// over description and reference. Credit and debit filters only keep
// pending transactions.
func FilterTransactions(transactions []domain.BankTransaction, filter domain.TransactionFilter, search string) []domain.BankTransaction {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]domain.BankTransaction, 0, len(transactions))
	for _, tx := range transactions {
		if !matchesFilter(tx, filter) {
			continue
		}
		if needle != "" && !containsAny(needle, &tx.Description, tx.Reference) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func matchesFilter(tx domain.BankTransaction, filter domain.TransactionFilter) bool {
	switch filter {
	case domain.FilterPending:
		return tx.IsPending()
	case domain.FilterCredit:
		return tx.IsPending() && tx.IsCredit
	case domain.FilterDebit:
		return tx.IsPending() && !tx.IsCredit
	default:
		return true
	}
}

// FilterPayments keeps payments whose client name, reference number or
// invoice folio contains search, ignoring case.
func FilterPayments(payments []domain.Payment, search string) []domain.Payment {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return payments
	}

	out := make([]domain.Payment, 0, len(payments))
	for _, p := range payments {
		if containsAny(needle, &p.ClientName, p.ReferenceNumber, p.InvoiceFolio) {
			out = append(out, p)
		}
	}
	return out
}

func containsAny(needle string, fields ...*string) bool {
	for _, f := range fields {
		if f != nil && strings.Contains(strings.ToLower(*f), needle) {
			return true
		}
	}
	return false
}

// Summarize computes the dashboard counters for a snapshot
func (e *ReconciliationEngine) Summarize(transactions []domain.BankTransaction, payments []domain.Payment) *domain.ReconciliationSummary {
	summary := &domain.ReconciliationSummary{
		PendingCreditTotal:  decimal.Zero,
		PendingDebitTotal:   decimal.Zero,
		PendingPaymentTotal: decimal.Zero,
	}

	for _, tx := range transactions {
		switch {
		case tx.Status == domain.TransactionMatched:
			summary.MatchedTransactions++
		case tx.IsPending():
			summary.PendingTransactions++
			if tx.IsCredit {
				summary.PendingCreditTotal = summary.PendingCreditTotal.Add(tx.Amount)
			} else {
				summary.PendingDebitTotal = summary.PendingDebitTotal.Add(tx.Amount)
			}
			if e.HasSuggestedMatch(tx, payments) {
				summary.SuggestedMatches++
			}
		}
	}

	for _, p := range payments {
		if p.IsPending() {
			summary.PendingPayments++
			summary.PendingPaymentTotal = summary.PendingPaymentTotal.Add(p.Amount)
		}
	}

	return summary
}
