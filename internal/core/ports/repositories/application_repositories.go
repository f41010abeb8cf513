package repositories

import (
	"context"
	"time"

	"github.com/corebanking/retail_ledger_app/internal/core/domain"
)

// ApplicationReaderRepo defines read operations for application data
type ApplicationReaderRepo interface {
	// FindApplicationByID retrieves an application by its unique identifier.
	FindApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error)

	// ListApplications retrieves a paginated list of applications, optionally
	// filtered by KYC status.
	ListApplications(ctx context.Context, status *domain.KYCStatus, limit int, offset int) ([]domain.Application, error)

	// IdentityExists reports whether the national identity number or the
	// mobile number is already registered against any application, whatever
	// its outcome. Uniqueness is permanent and global.
	IdentityExists(ctx context.Context, nationalID string, mobile string) (bool, error)
}

// ApplicationWriterRepo defines write operations for application data
type ApplicationWriterRepo interface {
	// SaveApplication admits a new PENDING application. Identity uniqueness
	// is enforced by the registry's unique indexes; a conflict surfaces as
	// apperrors.ErrDuplicateIdentity.
	SaveApplication(ctx context.Context, application domain.Application) error

	// ApproveApplication performs the provisioning transaction: it locks the
	// application row, verifies the PENDING state, allocates the next account
	// number, creates the account and the holder snapshot, and marks the
	// application APPROVED. All steps commit or none do. A terminal
	// application yields apperrors.ErrInvalidState and no second account.
	ApproveApplication(ctx context.Context, applicationID string, approvedBy string, now time.Time) (*domain.Account, error)

	// RejectApplication marks a PENDING application REJECTED under the same
	// row-lock guard. No account is created.
	RejectApplication(ctx context.Context, applicationID string, rejectedBy string, now time.Time) error
}

// ApplicationRepositoryFacade combines all application repository interfaces
type ApplicationRepositoryFacade interface {
	ApplicationReaderRepo
	ApplicationWriterRepo
}
