package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus represents the reconciliation state of a bank transaction
type TransactionStatus string

const (
	TransactionPending TransactionStatus = "pending"
	TransactionMatched TransactionStatus = "matched"
)

// BankTransaction represents an imported bank movement
type BankTransaction struct {
	ID               string            `json:"id" db:"id"`
	TransactionDate  time.Time         `json:"transaction_date" db:"transaction_date"`
	Description      string            `json:"description" db:"description"`
	Amount           decimal.Decimal   `json:"amount" db:"amount"`
	IsCredit         bool              `json:"is_credit" db:"is_credit"`
	Reference        *string           `json:"reference" db:"reference"`
	BankName         *string           `json:"bank_name" db:"bank_name"`
	Status           TransactionStatus `json:"status" db:"status"`
	MatchedPaymentID *string           `json:"matched_payment_id,omitempty" db:"matched_payment_id"`
	ImportBatchID    *string           `json:"import_batch_id,omitempty" db:"import_batch_id"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" db:"updated_at"`
}

// IsPending reports whether the transaction still awaits a match
func (t BankTransaction) IsPending() bool {
	return t.Status == TransactionPending
}

// NewBankTransaction is the creation payload for a bank transaction.
// It carries no id; ids are assigned when the row is persisted.
type NewBankTransaction struct {
	TransactionDate string            `json:"transaction_date"`
	Description     string            `json:"description"`
	Amount          decimal.Decimal   `json:"amount"`
	Reference       *string           `json:"reference"`
	IsCredit        bool              `json:"is_credit"`
	BankName        *string           `json:"bank_name"`
	Status          TransactionStatus `json:"status"`
}

// TransactionFilter narrows the bank transaction list
type TransactionFilter string

const (
	FilterAll     TransactionFilter = "all"
	FilterPending TransactionFilter = "pending"
	FilterCredit  TransactionFilter = "credit"
	FilterDebit   TransactionFilter = "debit"
)

// ParseTransactionFilter maps a query value to a filter, defaulting to all
func ParseTransactionFilter(s string) (TransactionFilter, bool) {
	switch TransactionFilter(s) {
	case "", FilterAll:
		return FilterAll, true
	case FilterPending, FilterCredit, FilterDebit:
		return TransactionFilter(s), true
	}
	return FilterAll, false
}

// TransactionListItem is a bank transaction annotated with its suggestion flag
type TransactionListItem struct {
	BankTransaction
	SuggestedMatch bool `json:"suggested_match"`
}
