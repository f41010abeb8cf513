package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/corebanking/retail_ledger_app/internal/apperrors"
	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	portssvc "github.com/corebanking/retail_ledger_app/internal/core/ports/services"
	"github.com/corebanking/retail_ledger_app/internal/dto"
	"github.com/corebanking/retail_ledger_app/internal/handlers"
	"github.com/corebanking/retail_ledger_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ApplicationService ---
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) SubmitApplication(ctx context.Context, req dto.SubmitApplicationRequest, submitterID string) (*domain.Application, error) {
	args := m.Called(ctx, req, submitterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationService) ApproveApplication(ctx context.Context, applicationID string, reviewerID string) (*domain.Account, error) {
	args := m.Called(ctx, applicationID, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockApplicationService) RejectApplication(ctx context.Context, applicationID string, reviewerID string) error {
	args := m.Called(ctx, applicationID, reviewerID)
	return args.Error(0)
}
func (m *MockApplicationService) GetApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationService) ListApplications(ctx context.Context, status *domain.KYCStatus, limit int, offset int) ([]domain.Application, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

var _ portssvc.ApplicationSvcFacade = (*MockApplicationService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetBalance(ctx context.Context, accountNumber int64) (decimal.Decimal, error) {
	args := m.Called(ctx, accountNumber)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockLedgerService) GetAccount(ctx context.Context, accountNumber int64) (*domain.Account, *domain.AccountHolder, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Account), args.Get(1).(*domain.AccountHolder), args.Error(2)
}
func (m *MockLedgerService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockLedgerService) ListTransactions(ctx context.Context, accountNumber int64, from time.Time, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountNumber, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) Apply(ctx context.Context, req dto.ApplyTransactionRequest, tellerID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, tellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Passbook(ctx context.Context, accountNumber int64, from, to time.Time) (*dto.PassbookResponse, error) {
	args := m.Called(ctx, accountNumber, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PassbookResponse), args.Error(1)
}
func (m *MockReportingService) TopBalances(ctx context.Context, n int) ([]dto.AccountBalanceResponse, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AccountBalanceResponse), args.Error(1)
}
func (m *MockReportingService) AccountSummary(ctx context.Context, accountNumber int64, from, to time.Time) (*dto.AccountSummaryResponse, error) {
	args := m.Called(ctx, accountNumber, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountSummaryResponse), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Test Suite Setup ---

type HandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockApplication *MockApplicationService
	mockLedger      *MockLedgerService
	mockTransaction *MockTransactionService
	mockReporting   *MockReportingService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = dto.RegisterCustomValidators(v)
	}

	suite.mockApplication = new(MockApplicationService)
	suite.mockLedger = new(MockLedgerService)
	suite.mockTransaction = new(MockTransactionService)
	suite.mockReporting = new(MockReportingService)

	container := &portssvc.ServiceContainer{
		Application: suite.mockApplication,
		Ledger:      suite.mockLedger,
		Transaction: suite.mockTransaction,
		Reporting:   suite.mockReporting,
	}

	suite.router = gin.New()
	cfg := &config.Config{IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *HandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Operator-ID", "teller-3")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestApplyTransaction_Created() {
	req := dto.ApplyTransactionRequest{
		AccountNumber: 10000,
		PaymentType:   domain.Credit,
		Amount:        decimal.NewFromInt(250),
	}
	expected := &domain.Transaction{
		TransactionID:  42,
		AccountNumber:  10000,
		PaymentType:    domain.Credit,
		Amount:         req.Amount,
		RunningBalance: decimal.NewFromInt(1250),
	}

	suite.mockTransaction.On("Apply", mock.Anything, mock.AnythingOfType("dto.ApplyTransactionRequest"), "teller-3").Return(expected, nil).Once()

	w := suite.postJSON("/api/v1/transactions", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(42), resp.TransactionID)
	suite.mockTransaction.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestApplyTransaction_InsufficientFundsMapsTo422() {
	req := dto.ApplyTransactionRequest{
		AccountNumber: 10000,
		PaymentType:   domain.Debit,
		Amount:        decimal.NewFromInt(5000),
	}

	suite.mockTransaction.On("Apply", mock.Anything, mock.AnythingOfType("dto.ApplyTransactionRequest"), "teller-3").Return(nil, apperrors.ErrInsufficientFunds).Once()

	w := suite.postJSON("/api/v1/transactions", req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestApplyTransaction_UnknownPaymentTypeRejectedByBinding() {
	w := suite.postJSON("/api/v1/transactions", gin.H{
		"accountNumber": 10000,
		"paymentType":   "TRANSFER",
		"amount":        "10",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransaction.AssertNotCalled(suite.T(), "Apply", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestApproveApplication_Created() {
	applicationID := uuid.NewString()
	account := &domain.Account{
		AccountNumber:  10000,
		ApplicationID:  applicationID,
		Balance:        decimal.NewFromInt(2500),
		OpeningBalance: decimal.NewFromInt(2500),
		OpeningDate:    time.Now().UTC(),
	}

	suite.mockApplication.On("ApproveApplication", mock.Anything, applicationID, "teller-3").Return(account, nil).Once()

	w := suite.postJSON("/api/v1/applications/"+applicationID+"/approve", nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ApprovalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(10000), resp.AccountNumber)
	suite.mockApplication.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestApproveApplication_TerminalMapsTo409() {
	applicationID := uuid.NewString()

	suite.mockApplication.On("ApproveApplication", mock.Anything, applicationID, "teller-3").Return(nil, apperrors.ErrInvalidState).Once()

	w := suite.postJSON("/api/v1/applications/"+applicationID+"/approve", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestSubmitApplication_DuplicateIdentityMapsTo409() {
	req := dto.SubmitApplicationRequest{
		HolderName:     "Asha Verma",
		DateOfBirth:    time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		NationalID:     "IN-1984-2231-8876",
		Mobile:         "+919812345678",
		AccountType:    domain.Savings,
		OpeningBalance: decimal.NewFromInt(2500),
	}

	suite.mockApplication.On("SubmitApplication", mock.Anything, mock.AnythingOfType("dto.SubmitApplicationRequest"), "teller-3").Return(nil, apperrors.ErrDuplicateIdentity).Once()

	w := suite.postJSON("/api/v1/applications", req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestGetBalance_NotFoundMapsTo404() {
	suite.mockLedger.On("GetBalance", mock.Anything, int64(99999)).Return(decimal.Zero, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/99999/balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetBalance_OK() {
	suite.mockLedger.On("GetBalance", mock.Anything, int64(10000)).Return(decimal.NewFromInt(1500), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/10000/balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.NewFromInt(1500)))
}

func (suite *HandlerTestSuite) TestGetBalance_NonNumericAccountNumber() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/abc/balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "GetBalance", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestTopBalances_OK() {
	expected := []dto.AccountBalanceResponse{
		{AccountNumber: 10001, Balance: decimal.NewFromInt(900)},
		{AccountNumber: 10000, Balance: decimal.NewFromInt(500)},
	}

	suite.mockReporting.On("TopBalances", mock.Anything, 2).Return(expected, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/top-balances?limit=2", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal(int64(10001), resp[0].AccountNumber)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
