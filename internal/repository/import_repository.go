package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"crane-recon/internal/domain"
	"crane-recon/pkg/logger"
)

// ImportRepository persists committed statement imports
type ImportRepository interface {
	CreateBatch(ctx context.Context, batch *domain.ImportBatch, transactions []domain.NewBankTransaction) error
	GetBatch(ctx context.Context, id string) (*domain.ImportBatch, error)
	ListBatches(ctx context.Context, limit int) ([]domain.ImportBatch, error)
}

type importRepository struct {
	db *sql.DB
}

func NewImportRepository(db *sql.DB) ImportRepository {
	return &importRepository{db: db}
}

// CreateBatch inserts the batch record and all its transactions in one
// database transaction. Either every row is stored or none is.
func (r *importRepository) CreateBatch(ctx context.Context, batch *domain.ImportBatch, transactions []domain.NewBankTransaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to begin transaction")
		return err
	}
	defer tx.Rollback()

	batch.ID = uuid.New().String()
	err = tx.QueryRowContext(ctx, `
		INSERT INTO import_batches (id, file_name, bank_name, total_rows, valid_rows, invalid_rows)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`,
		batch.ID,
		batch.FileName,
		batch.BankName,
		batch.TotalRows,
		batch.ValidRows,
		batch.InvalidRows,
	).Scan(&batch.CreatedAt)
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to create import batch")
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO bank_transactions (
			id, import_batch_id, transaction_date, description, amount,
			reference, is_credit, bank_name, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`)
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to prepare statement")
		return err
	}
	defer stmt.Close()

	for i, t := range transactions {
		_, err = stmt.ExecContext(ctx,
			uuid.New().String(),
			batch.ID,
			t.TransactionDate,
			t.Description,
			t.Amount,
			t.Reference,
			t.IsCredit,
			t.BankName,
			t.Status,
		)
		if err != nil {
			logger.GetLogger().WithError(err).WithField("index", i).Error("Failed to insert bank transaction")
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.GetLogger().WithError(err).Error("Failed to commit transaction")
		return err
	}

	return nil
}

const importBatchColumns = `id, file_name, bank_name, total_rows, valid_rows, invalid_rows, created_at`

func scanImportBatch(row rowScanner) (domain.ImportBatch, error) {
	var b domain.ImportBatch
	err := row.Scan(
		&b.ID,
		&b.FileName,
		&b.BankName,
		&b.TotalRows,
		&b.ValidRows,
		&b.InvalidRows,
		&b.CreatedAt,
	)
	return b, err
}

func (r *importRepository) GetBatch(ctx context.Context, id string) (*domain.ImportBatch, error) {
	query := `SELECT ` + importBatchColumns + ` FROM import_batches WHERE id = $1`

	b, err := scanImportBatch(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("import batch %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		logger.GetLogger().WithError(err).WithField("id", id).Error("Failed to get import batch")
		return nil, err
	}

	return &b, nil
}

func (r *importRepository) ListBatches(ctx context.Context, limit int) ([]domain.ImportBatch, error) {
	query := `SELECT ` + importBatchColumns + `
		FROM import_batches
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to query import batches")
		return nil, err
	}
	defer rows.Close()

	batches := make([]domain.ImportBatch, 0)
	for rows.Next() {
		b, err := scanImportBatch(rows)
		if err != nil {
			logger.GetLogger().WithError(err).Error("Failed to scan import batch")
			return nil, err
		}
		batches = append(batches, b)
	}

	return batches, rows.Err()
}
