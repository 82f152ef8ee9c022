package matcher

import (
	"github.com/shopspring/decimal"

	"crane-recon/internal/domain"
)

// DefaultTolerance is the relative difference still treated as a close match
var DefaultTolerance = decimal.RequireFromString("0.05")

// Difference is the absolute gap between two amounts
func Difference(transactionAmount, paymentAmount decimal.Decimal) decimal.Decimal {
	return transactionAmount.Sub(paymentAmount).Abs()
}

// Classify rates a payment against a transaction. The tolerance is relative
// to the transaction amount, not the payment amount.
func Classify(transactionAmount, paymentAmount, tolerance decimal.Decimal) domain.MatchQuality {
	diff := Difference(transactionAmount, paymentAmount)
	switch {
	case diff.IsZero():
		return domain.MatchExact
	case diff.LessThanOrEqual(transactionAmount.Mul(tolerance)):
		return domain.MatchClose
	default:
		return domain.MatchSignificant
	}
}

// WithinTolerance reports whether the payment is an exact or close match
func WithinTolerance(transactionAmount, paymentAmount, tolerance decimal.Decimal) bool {
	return Difference(transactionAmount, paymentAmount).LessThanOrEqual(transactionAmount.Mul(tolerance))
}
