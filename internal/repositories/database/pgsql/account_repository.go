package pgsql

import (
	"context"
	"errors"

	"github.com/corebanking/retail_ledger_app/internal/apperrors"
	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	portsrepo "github.com/corebanking/retail_ledger_app/internal/core/ports/repositories"
	"github.com/corebanking/retail_ledger_app/internal/models"
	"github.com/corebanking/retail_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_number, account_type, opening_date, opening_balance, balance,
	application_id, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountNumber,
		&m.AccountType,
		&m.OpeningDate,
		&m.OpeningBalance,
		&m.Balance,
		&m.ApplicationID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindAccountByNumber retrieves an account by its account number.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1;`

	modelAcc, err := scanAccount(r.Pool.QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by number", err)
	}

	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

// FindAccountHolder retrieves the 1:1 holder snapshot for an account.
func (r *PgxAccountRepository) FindAccountHolder(ctx context.Context, accountNumber int64) (*domain.AccountHolder, error) {
	query := `
		SELECT account_number, holder_name, date_of_birth, national_id, mobile,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM account_holders
		WHERE account_number = $1;
	`
	var m models.AccountHolder
	err := r.Pool.QueryRow(ctx, query, accountNumber).Scan(
		&m.AccountNumber,
		&m.HolderName,
		&m.DateOfBirth,
		&m.NationalID,
		&m.Mobile,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account holder", err)
	}

	domainHolder := mapping.ToDomainAccountHolder(m)
	return &domainHolder, nil
}

// ListAccounts retrieves a paginated list of accounts ordered by account number.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY account_number LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	modelAccs := []models.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		modelAccs = append(modelAccs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}

	return mapping.ToDomainAccountSlice(modelAccs), nil
}
