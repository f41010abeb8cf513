package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/corebanking/retail_ledger_app/internal/apperrors"
	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	portsrepo "github.com/corebanking/retail_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/corebanking/retail_ledger_app/internal/core/ports/services"
	"github.com/corebanking/retail_ledger_app/internal/dto"
	"github.com/corebanking/retail_ledger_app/internal/middleware"
)

// applicationService implements the application state machine: admission of
// PENDING applications gated by the identity registry, and the terminal
// APPROVED/REJECTED transitions.
type applicationService struct {
	applicationRepo portsrepo.ApplicationRepositoryFacade

	// Minimum opening balances by requested type (policy, injected from config).
	savingsMinOpeningBalance decimal.Decimal
	currentMinOpeningBalance decimal.Decimal
}

// ApplicationServiceOption is a functional option for configuring the application service
type ApplicationServiceOption func(*applicationService)

// WithMinimumOpeningBalances overrides the per-type opening balance minimums.
func WithMinimumOpeningBalances(savings, current decimal.Decimal) ApplicationServiceOption {
	return func(s *applicationService) {
		s.savingsMinOpeningBalance = savings
		s.currentMinOpeningBalance = current
	}
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(applicationRepo portsrepo.ApplicationRepositoryFacade, options ...ApplicationServiceOption) portssvc.ApplicationSvcFacade {
	svc := &applicationService{
		applicationRepo:          applicationRepo,
		savingsMinOpeningBalance: decimal.NewFromInt(1000),
		currentMinOpeningBalance: decimal.Zero,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure applicationService implements the portssvc.ApplicationSvcFacade interface
var _ portssvc.ApplicationSvcFacade = (*applicationService)(nil)

// minimumOpeningBalance returns the policy minimum for the requested type.
func (s *applicationService) minimumOpeningBalance(accountType domain.AccountType) decimal.Decimal {
	if accountType == domain.Savings {
		return s.savingsMinOpeningBalance
	}
	return s.currentMinOpeningBalance
}

// SubmitApplication validates and admits a new PENDING application.
func (s *applicationService) SubmitApplication(ctx context.Context, req dto.SubmitApplicationRequest, submitterID string) (*domain.Application, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.AccountType != domain.Savings && req.AccountType != domain.Current {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	if minimum := s.minimumOpeningBalance(req.AccountType); req.OpeningBalance.LessThan(minimum) {
		return nil, fmt.Errorf("%w: opening balance %s is below the %s minimum of %s",
			apperrors.ErrValidation, req.OpeningBalance.String(), req.AccountType, minimum.String())
	}

	// Pre-admission registry check. The unique indexes remain the
	// serializable source of truth; SaveApplication maps a concurrent
	// conflict to the same error.
	exists, err := s.applicationRepo.IdentityExists(ctx, req.NationalID, req.Mobile)
	if err != nil {
		logger.Error("Failed to check identity registry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check identity registry: %w", err)
	}
	if exists {
		logger.Warn("Identity already registered", slog.String("mobile", req.Mobile))
		return nil, apperrors.ErrDuplicateIdentity
	}

	now := time.Now().UTC()
	application := domain.Application{
		ApplicationID:  uuid.NewString(),
		HolderName:     req.HolderName,
		DateOfBirth:    req.DateOfBirth,
		NationalID:     req.NationalID,
		Mobile:         req.Mobile,
		AccountType:    req.AccountType,
		OpeningBalance: req.OpeningBalance,
		Address:        req.Address,
		KYCStatus:      domain.KYCPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     submitterID,
			LastUpdatedAt: now,
			LastUpdatedBy: submitterID,
		},
	}

	if err := s.applicationRepo.SaveApplication(ctx, application); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateIdentity) {
			logger.Warn("Identity registered concurrently", slog.String("mobile", req.Mobile))
			return nil, err
		}
		logger.Error("Failed to save application", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save application: %w", err)
	}

	logger.Info("Application admitted", slog.String("application_id", application.ApplicationID), slog.String("account_type", string(application.AccountType)))
	return &application, nil
}

// ApproveApplication records the KYC approval and provisions the account.
// The repository performs the guard and all provisioning steps in one
// database transaction, so a second approval can never create a second
// account: it surfaces apperrors.ErrInvalidState instead.
func (s *applicationService) ApproveApplication(ctx context.Context, applicationID string, reviewerID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.applicationRepo.ApproveApplication(ctx, applicationID, reviewerID, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Application not found for approval", slog.String("application_id", applicationID))
		case errors.Is(err, apperrors.ErrInvalidState):
			logger.Warn("Approval attempted on terminal application", slog.String("application_id", applicationID))
		default:
			logger.Error("Failed to approve application", slog.String("application_id", applicationID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Application approved, account provisioned",
		slog.String("application_id", applicationID),
		slog.Int64("account_number", account.AccountNumber))
	return account, nil
}

// RejectApplication records the KYC rejection. Terminal applications yield
// apperrors.ErrInvalidState.
func (s *applicationService) RejectApplication(ctx context.Context, applicationID string, reviewerID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.applicationRepo.RejectApplication(ctx, applicationID, reviewerID, time.Now().UTC()); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Application not found for rejection", slog.String("application_id", applicationID))
		case errors.Is(err, apperrors.ErrInvalidState):
			logger.Warn("Rejection attempted on terminal application", slog.String("application_id", applicationID))
		default:
			logger.Error("Failed to reject application", slog.String("application_id", applicationID), slog.String("error", err.Error()))
		}
		return err
	}

	logger.Info("Application rejected", slog.String("application_id", applicationID))
	return nil
}

// GetApplicationByID retrieves a specific application.
func (s *applicationService) GetApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	application, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find application", slog.String("application_id", applicationID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return application, nil
}

// ListApplications retrieves applications, optionally filtered by KYC status.
func (s *applicationService) ListApplications(ctx context.Context, status *domain.KYCStatus, limit int, offset int) ([]domain.Application, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if limit <= 0 {
		limit = 20
	}
	applications, err := s.applicationRepo.ListApplications(ctx, status, limit, offset)
	if err != nil {
		logger.Error("Failed to list applications", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}
