package services

import (
	"context"

	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	"github.com/corebanking/retail_ledger_app/internal/dto"
)

// ApplicationReaderSvc defines read operations for application data
type ApplicationReaderSvc interface {
	// GetApplicationByID retrieves a specific application by its identifier.
	GetApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error)

	// ListApplications retrieves applications, optionally filtered by KYC status.
	ListApplications(ctx context.Context, status *domain.KYCStatus, limit int, offset int) ([]domain.Application, error)
}

// ApplicationWriterSvc defines the application lifecycle operations
type ApplicationWriterSvc interface {
	// SubmitApplication validates and admits a new PENDING application.
	SubmitApplication(ctx context.Context, req dto.SubmitApplicationRequest, submitterID string) (*domain.Application, error)

	// ApproveApplication records the KYC approval and provisions the account.
	// Returns the created account; a terminal application yields
	// apperrors.ErrInvalidState without creating anything.
	ApproveApplication(ctx context.Context, applicationID string, reviewerID string) (*domain.Account, error)

	// RejectApplication records the KYC rejection.
	RejectApplication(ctx context.Context, applicationID string, reviewerID string) error
}

// ApplicationSvcFacade combines all application-related service interfaces
type ApplicationSvcFacade interface {
	ApplicationReaderSvc
	ApplicationWriterSvc
}
