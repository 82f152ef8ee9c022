// Package repository persists bank transactions, payments and import batches
// in PostgreSQL.
package repository

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks crane-recon/internal/repository BankTransactionRepository,PaymentRepository,ReconciliationRepository,ImportRepository
