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

var paymentColumns = []string{
	"id", "amount", "payment_date", "reference_number", "client_id", "name",
	"invoice_id", "folio", "status", "bank_transaction_id",
}

func TestPaymentRepository_ListPending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)
	paidAt := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM payments p`).
		WithArgs("pending").
		WillReturnRows(sqlmock.NewRows(paymentColumns).
			AddRow("p1", "1500.50", paidAt, "REF-9", "c1", "Acme SA", "i1", "F-001", "pending", nil).
			AddRow("p2", "300", paidAt, nil, "c2", "Beta", nil, nil, "pending", nil))

	payments, err := repo.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, payments, 2)

	assert.Equal(t, "1500.5", payments[0].Amount.String())
	assert.Equal(t, "Acme SA", payments[0].ClientName)
	require.NotNil(t, payments[0].InvoiceFolio)
	assert.Equal(t, "F-001", *payments[0].InvoiceFolio)
	assert.Equal(t, domain.PaymentPending, payments[0].Status)
	assert.Nil(t, payments[1].ReferenceNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectQuery(`WHERE p.id = \$1`).WithArgs("p9").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "p9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPaymentRepository_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("pending payment", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPaymentRepository(db)

		mock.ExpectExec(`UPDATE payments`).
			WithArgs("confirmed", "p1", "pending").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Confirm(ctx, "p1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already reconciled", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPaymentRepository(db)

		mock.ExpectExec(`UPDATE payments`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Confirm(ctx, "p1"), domain.ErrConflict)
	})
}
