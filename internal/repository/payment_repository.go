package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"crane-recon/internal/domain"
	"crane-recon/pkg/logger"
)

// PaymentRepository reads receivables and moves them out of pending
type PaymentRepository interface {
	ListPending(ctx context.Context) ([]domain.Payment, error)
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	Confirm(ctx context.Context, id string) error
}

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentSelect = `
	SELECT p.id, p.amount, p.payment_date, p.reference_number, p.client_id, c.name,
		   p.invoice_id, i.folio, p.status, p.bank_transaction_id
	FROM payments p
	JOIN clients c ON c.id = p.client_id
	LEFT JOIN invoices i ON i.id = p.invoice_id`

func scanPayment(row rowScanner) (domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.ID,
		&p.Amount,
		&p.PaymentDate,
		&p.ReferenceNumber,
		&p.ClientID,
		&p.ClientName,
		&p.InvoiceID,
		&p.InvoiceFolio,
		&p.Status,
		&p.BankTransactionID,
	)
	return p, err
}

func (r *paymentRepository) ListPending(ctx context.Context) ([]domain.Payment, error) {
	query := paymentSelect + `
		WHERE p.status = $1
		ORDER BY p.payment_date DESC`

	rows, err := r.db.QueryContext(ctx, query, domain.PaymentPending)
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to query pending payments")
		return nil, err
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			logger.GetLogger().WithError(err).Error("Failed to scan payment")
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	p, err := scanPayment(r.db.QueryRowContext(ctx, paymentSelect+` WHERE p.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("payment %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		logger.GetLogger().WithError(err).WithField("id", id).Error("Failed to get payment")
		return nil, err
	}

	return &p, nil
}

// Confirm marks a pending payment as confirmed without a bank transaction
func (r *paymentRepository) Confirm(ctx context.Context, id string) error {
	query := `
		UPDATE payments
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	res, err := r.db.ExecContext(ctx, query, domain.PaymentConfirmed, id, domain.PaymentPending)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("id", id).Error("Failed to confirm payment")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("payment %s is missing or not pending: %w", id, domain.ErrConflict)
	}

	return nil
}
