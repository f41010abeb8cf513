package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/corebanking/retail_ledger_app/internal/apperrors"
	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	portsrepo "github.com/corebanking/retail_ledger_app/internal/core/ports/repositories"
	"github.com/corebanking/retail_ledger_app/internal/models"
	"github.com/corebanking/retail_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxApplicationRepository struct {
	BaseRepository
}

// newPgxApplicationRepository creates a new repository for application data.
func newPgxApplicationRepository(pool *pgxpool.Pool) portsrepo.ApplicationRepositoryFacade {
	return &PgxApplicationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxApplicationRepository implements portsrepo.ApplicationRepositoryFacade
var _ portsrepo.ApplicationRepositoryFacade = (*PgxApplicationRepository)(nil)

const applicationColumns = `application_id, holder_name, date_of_birth, national_id, mobile,
	account_type, opening_balance, address, kyc_status,
	created_at, created_by, last_updated_at, last_updated_by`

func scanApplication(row pgx.Row) (models.Application, error) {
	var m models.Application
	err := row.Scan(
		&m.ApplicationID,
		&m.HolderName,
		&m.DateOfBirth,
		&m.NationalID,
		&m.Mobile,
		&m.AccountType,
		&m.OpeningBalance,
		&m.Address,
		&m.KYCStatus,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveApplication admits a new PENDING application. The unique indexes on
// national_id and mobile are the identity registry: a violation of either is
// surfaced as ErrDuplicateIdentity even under concurrent submissions.
func (r *PgxApplicationRepository) SaveApplication(ctx context.Context, application domain.Application) error {
	modelApp := mapping.ToModelApplication(application)
	query := `
		INSERT INTO applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelApp.ApplicationID,
		modelApp.HolderName,
		modelApp.DateOfBirth,
		modelApp.NationalID,
		modelApp.Mobile,
		modelApp.AccountType,
		modelApp.OpeningBalance,
		modelApp.Address,
		modelApp.KYCStatus,
		modelApp.CreatedAt,
		modelApp.CreatedBy,
		modelApp.LastUpdatedAt,
		modelApp.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				switch pgErr.ConstraintName {
				case "applications_national_id_key":
					return fmt.Errorf("%w: national identity number", apperrors.ErrDuplicateIdentity)
				case "applications_mobile_key":
					return fmt.Errorf("%w: mobile number", apperrors.ErrDuplicateIdentity)
				default:
					return fmt.Errorf("%w: application %s", apperrors.ErrDuplicateIdentity, modelApp.ApplicationID)
				}
			}
		}
		return apperrors.NewAppError(500, "failed to save application "+modelApp.ApplicationID, err)
	}
	return nil
}

// IdentityExists reports whether either identity value is already registered
// against any application, whatever its outcome.
func (r *PgxApplicationRepository) IdentityExists(ctx context.Context, nationalID string, mobile string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM applications WHERE national_id = $1 OR mobile = $2
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, nationalID, mobile).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check identity registry", err)
	}
	return exists, nil
}

// FindApplicationByID retrieves an application by its ID.
func (r *PgxApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE application_id = $1;`

	modelApp, err := scanApplication(r.Pool.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find application by ID "+applicationID, err)
	}

	domainApp := mapping.ToDomainApplication(modelApp)
	return &domainApp, nil
}

// ListApplications retrieves a paginated list of applications, optionally
// filtered by KYC status, newest first.
func (r *PgxApplicationRepository) ListApplications(ctx context.Context, status *domain.KYCStatus, limit int, offset int) ([]domain.Application, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	baseQuery := `SELECT ` + applicationColumns + ` FROM applications`
	orderByClause := `ORDER BY created_at DESC, application_id DESC`

	args := []interface{}{}
	var query string
	if status != nil {
		args = append(args, *status)
		query = baseQuery + ` WHERE kyc_status = $1 ` + orderByClause
	} else {
		query = baseQuery + ` ` + orderByClause
	}
	query += ` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2) + `;`
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query applications", err)
	}
	defer rows.Close()

	modelApps := []models.Application{}
	for rows.Next() {
		m, err := scanApplication(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan application row", err)
		}
		modelApps = append(modelApps, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating application rows", err)
	}

	return mapping.ToDomainApplicationSlice(modelApps), nil
}

// ApproveApplication provisions the account for a PENDING application. The
// whole sequence runs in one database transaction: lock the application row,
// verify PENDING, allocate the next account number from the counters row,
// insert the account and the holder snapshot, and mark the application
// APPROVED. Either every step commits or none does, so a concurrent or
// repeated approval observes the terminal state and gets ErrInvalidState
// instead of a second account.
func (r *PgxApplicationRepository) ApproveApplication(ctx context.Context, applicationID string, approvedBy string, now time.Time) (*domain.Account, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + applicationColumns + ` FROM applications WHERE application_id = $1 FOR UPDATE;`
	modelApp, err := scanApplication(tx.QueryRow(ctx, lockQuery, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock application "+applicationID, err)
	}

	if modelApp.KYCStatus != models.KYCPending {
		return nil, fmt.Errorf("%w: application %s is already %s", apperrors.ErrInvalidState, applicationID, modelApp.KYCStatus)
	}

	// Allocate the next account number. The counter row is updated under
	// this transaction's scope, so allocation is gapless and collision-free.
	var accountNumber int64
	counterQuery := `
		UPDATE counters SET value = value + 1
		WHERE name = 'account_number'
		RETURNING value;
	`
	if err := tx.QueryRow(ctx, counterQuery).Scan(&accountNumber); err != nil {
		return nil, apperrors.NewAppError(500, "failed to allocate account number", err)
	}

	accountQuery := `
		INSERT INTO accounts (account_number, account_type, opening_date, opening_balance, balance,
			application_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $4, $5, $6, $7, $6, $7);
	`
	if _, err := tx.Exec(ctx, accountQuery,
		accountNumber,
		modelApp.AccountType,
		now,
		modelApp.OpeningBalance,
		modelApp.ApplicationID,
		now,
		approvedBy,
	); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert account for application "+applicationID, err)
	}

	holderQuery := `
		INSERT INTO account_holders (account_number, holder_name, date_of_birth, national_id, mobile,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $6, $7);
	`
	if _, err := tx.Exec(ctx, holderQuery,
		accountNumber,
		modelApp.HolderName,
		modelApp.DateOfBirth,
		modelApp.NationalID,
		modelApp.Mobile,
		now,
		approvedBy,
	); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert account holder for application "+applicationID, err)
	}

	statusQuery := `
		UPDATE applications
		SET kyc_status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE application_id = $1;
	`
	if _, err := tx.Exec(ctx, statusQuery, applicationID, models.KYCApproved, now, approvedBy); err != nil {
		return nil, apperrors.NewAppError(500, "failed to mark application "+applicationID+" approved", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	account := domain.Account{
		AccountNumber:  accountNumber,
		AccountType:    domain.AccountType(modelApp.AccountType),
		OpeningDate:    now,
		OpeningBalance: modelApp.OpeningBalance,
		Balance:        modelApp.OpeningBalance,
		ApplicationID:  modelApp.ApplicationID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     approvedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: approvedBy,
		},
	}
	return &account, nil
}

// RejectApplication marks a PENDING application REJECTED under the same
// row-lock guard as approval.
func (r *PgxApplicationRepository) RejectApplication(ctx context.Context, applicationID string, rejectedBy string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT kyc_status FROM applications WHERE application_id = $1 FOR UPDATE;`
	var status models.KYCStatus
	if err := tx.QueryRow(ctx, lockQuery, applicationID).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock application "+applicationID, err)
	}

	if status != models.KYCPending {
		return fmt.Errorf("%w: application %s is already %s", apperrors.ErrInvalidState, applicationID, status)
	}

	statusQuery := `
		UPDATE applications
		SET kyc_status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE application_id = $1;
	`
	if _, err := tx.Exec(ctx, statusQuery, applicationID, models.KYCRejected, now, rejectedBy); err != nil {
		return apperrors.NewAppError(500, "failed to mark application "+applicationID+" rejected", err)
	}

	return r.Commit(ctx, tx)
}
