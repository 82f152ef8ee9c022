package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"crane-recon/internal/domain"
	"crane-recon/pkg/logger"
)

// BankTransactionRepository reads imported bank transactions
type BankTransactionRepository interface {
	List(ctx context.Context) ([]domain.BankTransaction, error)
	GetByID(ctx context.Context, id string) (*domain.BankTransaction, error)
}

type bankTransactionRepository struct {
	db *sql.DB
}

func NewBankTransactionRepository(db *sql.DB) BankTransactionRepository {
	return &bankTransactionRepository{db: db}
}

const bankTransactionColumns = `
	id, transaction_date, description, amount, is_credit, reference, bank_name,
	status, matched_payment_id, import_batch_id, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBankTransaction(row rowScanner) (domain.BankTransaction, error) {
	var tx domain.BankTransaction
	err := row.Scan(
		&tx.ID,
		&tx.TransactionDate,
		&tx.Description,
		&tx.Amount,
		&tx.IsCredit,
		&tx.Reference,
		&tx.BankName,
		&tx.Status,
		&tx.MatchedPaymentID,
		&tx.ImportBatchID,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	return tx, err
}

func (r *bankTransactionRepository) List(ctx context.Context) ([]domain.BankTransaction, error) {
	query := `SELECT` + bankTransactionColumns + `
		FROM bank_transactions
		ORDER BY transaction_date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to query bank transactions")
		return nil, err
	}
	defer rows.Close()

	transactions := make([]domain.BankTransaction, 0)
	for rows.Next() {
		tx, err := scanBankTransaction(rows)
		if err != nil {
			logger.GetLogger().WithError(err).Error("Failed to scan bank transaction")
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func (r *bankTransactionRepository) GetByID(ctx context.Context, id string) (*domain.BankTransaction, error) {
	query := `SELECT` + bankTransactionColumns + `
		FROM bank_transactions
		WHERE id = $1`

	tx, err := scanBankTransaction(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("bank transaction %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		logger.GetLogger().WithError(err).WithField("id", id).Error("Failed to get bank transaction")
		return nil, err
	}

	return &tx, nil
}
