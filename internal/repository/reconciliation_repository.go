package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"crane-recon/internal/domain"
	"crane-recon/pkg/logger"
)

// ReconciliationRepository applies match state transitions to both sides
// of a pairing atomically.
type ReconciliationRepository interface {
	Match(ctx context.Context, transactionID, paymentID string) error
	Unmatch(ctx context.Context, transactionID string) error
}

type reconciliationRepository struct {
	db *sql.DB
}

func NewReconciliationRepository(db *sql.DB) ReconciliationRepository {
	return &reconciliationRepository{db: db}
}

// Match moves the transaction to matched and the payment to reconciled.
// Both must be pending; otherwise nothing changes and ErrConflict is returned.
func (r *reconciliationRepository) Match(ctx context.Context, transactionID, paymentID string) error {
	log := logger.GetLogger().WithFields(map[string]interface{}{
		"transaction_id": transactionID,
		"payment_id":     paymentID,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.WithError(err).Error("Failed to begin transaction")
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE bank_transactions
		SET status = $1, matched_payment_id = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`, domain.TransactionMatched, paymentID, transactionID, domain.TransactionPending)
	if err := expectOneRow(res, err, "bank transaction "+transactionID); err != nil {
		log.WithError(err).Warn("Failed to mark bank transaction matched")
		return err
	}

	res, err = tx.ExecContext(ctx, `
		UPDATE payments
		SET status = $1, bank_transaction_id = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`, domain.PaymentReconciled, transactionID, paymentID, domain.PaymentPending)
	if err := expectOneRow(res, err, "payment "+paymentID); err != nil {
		log.WithError(err).Warn("Failed to mark payment reconciled")
		return err
	}

	if err := tx.Commit(); err != nil {
		log.WithError(err).Error("Failed to commit match")
		return err
	}

	return nil
}

// Unmatch returns the transaction to pending and releases its payment.
// Unmatching a pending transaction is a no-op.
func (r *reconciliationRepository) Unmatch(ctx context.Context, transactionID string) error {
	log := logger.GetLogger().WithField("transaction_id", transactionID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.WithError(err).Error("Failed to begin transaction")
		return err
	}
	defer tx.Rollback()

	var status domain.TransactionStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM bank_transactions WHERE id = $1 FOR UPDATE`, transactionID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("bank transaction %s: %w", transactionID, domain.ErrNotFound)
	}
	if err != nil {
		log.WithError(err).Error("Failed to lock bank transaction")
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE payments
		SET status = $1, bank_transaction_id = NULL, updated_at = NOW()
		WHERE bank_transaction_id = $2 AND status = $3
	`, domain.PaymentPending, transactionID, domain.PaymentReconciled); err != nil {
		log.WithError(err).Error("Failed to release payment")
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE bank_transactions
		SET status = $1, matched_payment_id = NULL, updated_at = NOW()
		WHERE id = $2
	`, domain.TransactionPending, transactionID); err != nil {
		log.WithError(err).Error("Failed to reset bank transaction")
		return err
	}

	if err := tx.Commit(); err != nil {
		log.WithError(err).Error("Failed to commit unmatch")
		return err
	}

	return nil
}

func expectOneRow(res sql.Result, err error, subject string) error {
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%s is missing or not pending: %w", subject, domain.ErrConflict)
	}
	return nil
}
