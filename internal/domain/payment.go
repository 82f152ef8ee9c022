package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents where a receivable stands in reconciliation
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentReconciled PaymentStatus = "reconciled"
	PaymentConfirmed  PaymentStatus = "confirmed"
)

// Payment is a receivable recorded elsewhere in the platform.
// This service only reads payments and moves them out of pending.
type Payment struct {
	ID                string          `json:"id" db:"id"`
	Amount            decimal.Decimal `json:"amount" db:"amount"`
	PaymentDate       time.Time       `json:"payment_date" db:"payment_date"`
	ReferenceNumber   *string         `json:"reference_number" db:"reference_number"`
	ClientID          string          `json:"client_id" db:"client_id"`
	ClientName        string          `json:"client_name" db:"client_name"`
	InvoiceID         *string         `json:"invoice_id,omitempty" db:"invoice_id"`
	InvoiceFolio      *string         `json:"invoice_folio,omitempty" db:"invoice_folio"`
	Status            PaymentStatus   `json:"status" db:"status"`
	BankTransactionID *string         `json:"bank_transaction_id,omitempty" db:"bank_transaction_id"`
}

// IsPending reports whether the payment still awaits reconciliation
func (p Payment) IsPending() bool {
	return p.Status == PaymentPending
}

// PaymentListItem is a payment annotated with the live classification
// against the transaction currently being dragged, if any.
type PaymentListItem struct {
	Payment
	DropPreview *MatchCandidate `json:"drop_preview,omitempty"`
}
