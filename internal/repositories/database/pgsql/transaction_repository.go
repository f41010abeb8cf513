package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/corebanking/retail_ledger_app/internal/apperrors"
	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	portsrepo "github.com/corebanking/retail_ledger_app/internal/core/ports/repositories"
	"github.com/corebanking/retail_ledger_app/internal/middleware"
	"github.com/corebanking/retail_ledger_app/internal/models"
	"github.com/corebanking/retail_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger entries.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// ApplyTransaction posts a single credit or debit against an account. The
// account row is locked FOR UPDATE for the duration of the transaction, so
// concurrent postings against the same account serialize at the database and
// each running balance reflects exactly the prior committed entries. A debit
// that would take the balance below zero is rejected before any row is
// written.
func (r *PgxTransactionRepository) ApplyTransaction(ctx context.Context, accountNumber int64, paymentType domain.PaymentType, amount decimal.Decimal, appliedAt time.Time, appliedBy string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("failed to rollback transaction", "error", rbErr)
		}
	}()

	var balance decimal.Decimal
	err = tx.QueryRow(ctx, `SELECT balance FROM accounts WHERE account_number = $1 FOR UPDATE;`, accountNumber).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock account row", err)
	}

	newBalance := balance.Add(amount)
	if paymentType == domain.Debit {
		newBalance = balance.Sub(amount)
		if newBalance.IsNegative() {
			return nil, apperrors.ErrInsufficientFunds
		}
	}

	var m models.Transaction
	m.AccountNumber = accountNumber
	m.PaymentType = models.PaymentType(paymentType)
	m.Amount = amount
	m.RunningBalance = newBalance
	m.TransactionAt = appliedAt
	m.CreatedAt = appliedAt
	m.CreatedBy = appliedBy
	m.LastUpdatedAt = appliedAt
	m.LastUpdatedBy = appliedBy

	insertQuery := `
		INSERT INTO transactions (
			account_number, payment_type, amount, running_balance, transaction_at,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING transaction_id;
	`
	err = tx.QueryRow(ctx, insertQuery,
		m.AccountNumber, m.PaymentType, m.Amount, m.RunningBalance, m.TransactionAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.TransactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert ledger entry", err)
	}

	updateQuery := `
		UPDATE accounts
		SET balance = $1, last_updated_at = $2, last_updated_by = $3
		WHERE account_number = $4;
	`
	if _, err := tx.Exec(ctx, updateQuery, m.RunningBalance, appliedAt, appliedBy, accountNumber); err != nil {
		return nil, apperrors.NewAppError(500, "failed to update account balance", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	domainTxn := mapping.ToDomainTransaction(m)
	return &domainTxn, nil
}

const transactionColumns = `transaction_id, account_number, payment_type, amount, running_balance,
	transaction_at, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountNumber,
		&m.PaymentType,
		&m.Amount,
		&m.RunningBalance,
		&m.TransactionAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// ListTransactionsByAccount retrieves ledger entries for an account within
// [from, to]. Zero time bounds leave that side of the window open.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountNumber int64, from time.Time, to time.Time) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_number = $1`
	args := []any{accountNumber}

	if !from.IsZero() {
		args = append(args, from)
		query += ` AND transaction_at >= $2`
	}
	if !to.IsZero() {
		args = append(args, to)
		if len(args) == 3 {
			query += ` AND transaction_at <= $3`
		} else {
			query += ` AND transaction_at <= $2`
		}
	}
	query += ` ORDER BY transaction_at ASC, transaction_id ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger entries", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}
