package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crane-recon/internal/domain"
)

var bankTransactionColumnNames = []string{
	"id", "transaction_date", "description", "amount", "is_credit", "reference", "bank_name",
	"status", "matched_payment_id", "import_batch_id", "created_at", "updated_at",
}

func TestBankTransactionRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBankTransactionRepository(db)
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM bank_transactions`).
		WillReturnRows(sqlmock.NewRows(bankTransactionColumnNames).
			AddRow("t1", day, "SPEI Acme", "1000.00", true, "REF-1", "BBVA", "pending", nil, "b1", day, day).
			AddRow("t2", day, "Comision", "15.5", false, nil, nil, "matched", "p3", "b1", day, day))

	txs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.True(t, txs[0].IsPending())
	assert.True(t, txs[0].IsCredit)
	require.NotNil(t, txs[0].Reference)
	assert.Equal(t, "REF-1", *txs[0].Reference)
	assert.Equal(t, domain.TransactionMatched, txs[1].Status)
	require.NotNil(t, txs[1].MatchedPaymentID)
	assert.Equal(t, "p3", *txs[1].MatchedPaymentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBankTransactionRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBankTransactionRepository(db)

	mock.ExpectQuery(`WHERE id = \$1`).WithArgs("t9").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "t9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
