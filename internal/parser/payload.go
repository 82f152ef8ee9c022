package parser

import (
	"strings"

	"crane-recon/internal/domain"
)

// Preview is the parse result shown to the operator before import
type Preview struct {
	Rows         []domain.ParsedRow `json:"rows"`
	ValidCount   int                `json:"valid_count"`
	InvalidCount int                `json:"invalid_count"`
}

// NewPreview counts valid and invalid rows
func NewPreview(rows []domain.ParsedRow) Preview {
	p := Preview{Rows: rows}
	for _, r := range rows {
		if r.IsValid {
			p.ValidCount++
		} else {
			p.InvalidCount++
		}
	}
	return p
}

// BuildPayloads projects the valid rows into creation payloads.
// Invalid rows are dropped.
func BuildPayloads(rows []domain.ParsedRow, bankName string) []domain.NewBankTransaction {
	bank := optional(bankName)

	payloads := make([]domain.NewBankTransaction, 0, len(rows))
	for _, row := range rows {
		if !row.IsValid {
			continue
		}
		payloads = append(payloads, domain.NewBankTransaction{
			TransactionDate: row.Date,
			Description:     row.Description,
			Amount:          row.Amount,
			Reference:       optional(row.Reference),
			IsCredit:        row.IsCredit,
			BankName:        bank,
			Status:          domain.TransactionPending,
		})
	}
	return payloads
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
