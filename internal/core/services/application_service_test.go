package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/corebanking/retail_ledger_app/internal/apperrors"
	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	portssvc "github.com/corebanking/retail_ledger_app/internal/core/ports/services"
	"github.com/corebanking/retail_ledger_app/internal/core/services"
	"github.com/corebanking/retail_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockApplicationRepository is a mock type for the ApplicationRepositoryFacade interface
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListApplications(ctx context.Context, status *domain.KYCStatus, limit int, offset int) ([]domain.Application, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepository) IdentityExists(ctx context.Context, nationalID string, mobile string) (bool, error) {
	args := m.Called(ctx, nationalID, mobile)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepository) SaveApplication(ctx context.Context, application domain.Application) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockApplicationRepository) ApproveApplication(ctx context.Context, applicationID string, approvedBy string, now time.Time) (*domain.Account, error) {
	args := m.Called(ctx, applicationID, approvedBy, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockApplicationRepository) RejectApplication(ctx context.Context, applicationID string, rejectedBy string, now time.Time) error {
	args := m.Called(ctx, applicationID, rejectedBy, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type ApplicationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockApplicationRepository
	service  portssvc.ApplicationSvcFacade
}

func (suite *ApplicationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockApplicationRepository)
	suite.service = services.NewApplicationService(suite.mockRepo)
}

func validSubmitRequest() dto.SubmitApplicationRequest {
	return dto.SubmitApplicationRequest{
		HolderName:     "Asha Verma",
		DateOfBirth:    time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		NationalID:     "IN-1984-2231-8876",
		Mobile:         "+919812345678",
		AccountType:    domain.Savings,
		OpeningBalance: decimal.NewFromInt(2500),
		Address:        "14 MG Road, Pune",
	}
}

// --- Test Cases ---

func (suite *ApplicationServiceTestSuite) TestSubmitApplication_Success() {
	ctx := context.Background()
	submitterID := uuid.NewString()
	req := validSubmitRequest()

	suite.mockRepo.On("IdentityExists", ctx, req.NationalID, req.Mobile).Return(false, nil).Once()
	suite.mockRepo.On("SaveApplication", ctx, mock.AnythingOfType("domain.Application")).Return(nil).Once()

	app, err := suite.service.SubmitApplication(ctx, req, submitterID)

	suite.Require().NoError(err)
	suite.Require().NotNil(app)
	suite.NotEmpty(app.ApplicationID)
	suite.Equal(domain.KYCPending, app.KYCStatus)
	suite.Equal(req.NationalID, app.NationalID)
	suite.Equal(submitterID, app.CreatedBy)
	suite.WithinDuration(time.Now(), app.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ApplicationServiceTestSuite) TestSubmitApplication_SavingsBelowMinimum() {
	ctx := context.Background()
	req := validSubmitRequest()
	req.OpeningBalance = decimal.NewFromInt(999)

	app, err := suite.service.SubmitApplication(ctx, req, "teller-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(app)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveApplication", mock.Anything, mock.Anything)
}

func (suite *ApplicationServiceTestSuite) TestSubmitApplication_CurrentAllowsZeroOpening() {
	ctx := context.Background()
	req := validSubmitRequest()
	req.AccountType = domain.Current
	req.OpeningBalance = decimal.Zero

	suite.mockRepo.On("IdentityExists", ctx, req.NationalID, req.Mobile).Return(false, nil).Once()
	suite.mockRepo.On("SaveApplication", ctx, mock.AnythingOfType("domain.Application")).Return(nil).Once()

	app, err := suite.service.SubmitApplication(ctx, req, "teller-1")

	suite.Require().NoError(err)
	suite.Equal(domain.Current, app.AccountType)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ApplicationServiceTestSuite) TestSubmitApplication_UnknownAccountType() {
	ctx := context.Background()
	req := validSubmitRequest()
	req.AccountType = domain.AccountType("FIXED_DEPOSIT")

	app, err := suite.service.SubmitApplication(ctx, req, "teller-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(app)
	suite.mockRepo.AssertNotCalled(suite.T(), "IdentityExists", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApplicationServiceTestSuite) TestSubmitApplication_DuplicateIdentity() {
	ctx := context.Background()
	req := validSubmitRequest()

	suite.mockRepo.On("IdentityExists", ctx, req.NationalID, req.Mobile).Return(true, nil).Once()

	app, err := suite.service.SubmitApplication(ctx, req, "teller-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicateIdentity)
	suite.Nil(app)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveApplication", mock.Anything, mock.Anything)
}

func (suite *ApplicationServiceTestSuite) TestSubmitApplication_ConcurrentDuplicateFromSave() {
	ctx := context.Background()
	req := validSubmitRequest()

	// Registry looked clear but the unique index caught a concurrent admit.
	suite.mockRepo.On("IdentityExists", ctx, req.NationalID, req.Mobile).Return(false, nil).Once()
	suite.mockRepo.On("SaveApplication", ctx, mock.AnythingOfType("domain.Application")).Return(apperrors.ErrDuplicateIdentity).Once()

	app, err := suite.service.SubmitApplication(ctx, req, "teller-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicateIdentity)
	suite.Nil(app)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ApplicationServiceTestSuite) TestApproveApplication_Success() {
	ctx := context.Background()
	applicationID := uuid.NewString()
	expected := &domain.Account{
		AccountNumber:  10000,
		AccountType:    domain.Savings,
		OpeningBalance: decimal.NewFromInt(2500),
		Balance:        decimal.NewFromInt(2500),
		ApplicationID:  applicationID,
	}

	suite.mockRepo.On("ApproveApplication", ctx, applicationID, "officer-7", mock.AnythingOfType("time.Time")).Return(expected, nil).Once()

	account, err := suite.service.ApproveApplication(ctx, applicationID, "officer-7")

	suite.Require().NoError(err)
	suite.Equal(int64(10000), account.AccountNumber)
	suite.True(account.Balance.Equal(account.OpeningBalance))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ApplicationServiceTestSuite) TestApproveApplication_TerminalState() {
	ctx := context.Background()
	applicationID := uuid.NewString()

	suite.mockRepo.On("ApproveApplication", ctx, applicationID, "officer-7", mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrInvalidState).Once()

	account, err := suite.service.ApproveApplication(ctx, applicationID, "officer-7")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.Nil(account)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ApplicationServiceTestSuite) TestApproveApplication_NotFound() {
	ctx := context.Background()
	applicationID := uuid.NewString()

	suite.mockRepo.On("ApproveApplication", ctx, applicationID, "officer-7", mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.ApproveApplication(ctx, applicationID, "officer-7")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(account)
}

func (suite *ApplicationServiceTestSuite) TestRejectApplication_Success() {
	ctx := context.Background()
	applicationID := uuid.NewString()

	suite.mockRepo.On("RejectApplication", ctx, applicationID, "officer-7", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.RejectApplication(ctx, applicationID, "officer-7")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ApplicationServiceTestSuite) TestRejectApplication_TerminalState() {
	ctx := context.Background()
	applicationID := uuid.NewString()

	suite.mockRepo.On("RejectApplication", ctx, applicationID, "officer-7", mock.AnythingOfType("time.Time")).Return(apperrors.ErrInvalidState).Once()

	err := suite.service.RejectApplication(ctx, applicationID, "officer-7")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *ApplicationServiceTestSuite) TestListApplications_StatusFilterPassedThrough() {
	ctx := context.Background()
	status := domain.KYCPending
	expected := []domain.Application{{ApplicationID: uuid.NewString(), KYCStatus: domain.KYCPending}}

	suite.mockRepo.On("ListApplications", ctx, &status, 20, 0).Return(expected, nil).Once()

	apps, err := suite.service.ListApplications(ctx, &status, 0, 0)

	suite.Require().NoError(err)
	suite.Len(apps, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ApplicationServiceTestSuite) TestSubmitApplication_ConfiguredMinimumOverridesDefault() {
	ctx := context.Background()
	svc := services.NewApplicationService(suite.mockRepo,
		services.WithMinimumOpeningBalances(decimal.NewFromInt(500), decimal.Zero))

	req := validSubmitRequest()
	req.OpeningBalance = decimal.NewFromInt(600)

	suite.mockRepo.On("IdentityExists", ctx, req.NationalID, req.Mobile).Return(false, nil).Once()
	suite.mockRepo.On("SaveApplication", ctx, mock.AnythingOfType("domain.Application")).Return(nil).Once()

	app, err := svc.SubmitApplication(ctx, req, "teller-1")

	suite.Require().NoError(err)
	suite.NotNil(app)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestApplicationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationServiceTestSuite))
}
