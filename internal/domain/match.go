package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MatchQuality classifies how close a payment amount is to a transaction amount
type MatchQuality string

const (
	MatchExact       MatchQuality = "exact"
	MatchClose       MatchQuality = "close"
	MatchSignificant MatchQuality = "significant"
)

// MatchCandidate is a payment evaluated against one transaction
type MatchCandidate struct {
	PaymentID  string          `json:"payment_id"`
	Difference decimal.Decimal `json:"difference"`
	Quality    MatchQuality    `json:"quality"`
}

// MatchProposal is a transaction→payment pairing awaiting explicit confirmation.
// Nothing is persisted until the proposal is confirmed.
type MatchProposal struct {
	ID          string          `json:"id"`
	Transaction BankTransaction `json:"transaction"`
	Payment     Payment         `json:"payment"`
	Difference  decimal.Decimal `json:"difference"`
	Quality     MatchQuality    `json:"quality"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ReconciliationSummary represents the dashboard counters
type ReconciliationSummary struct {
	PendingTransactions int             `json:"pending_transactions"`
	MatchedTransactions int             `json:"matched_transactions"`
	SuggestedMatches    int             `json:"suggested_matches"`
	PendingCreditTotal  decimal.Decimal `json:"pending_credit_total"`
	PendingDebitTotal   decimal.Decimal `json:"pending_debit_total"`
	PendingPayments     int             `json:"pending_payments"`
	PendingPaymentTotal decimal.Decimal `json:"pending_payment_total"`
}
