package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/corebanking/retail_ledger_app/internal/apperrors"
	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	portssvc "github.com/corebanking/retail_ledger_app/internal/core/ports/services"
	"github.com/corebanking/retail_ledger_app/internal/core/services"
	"github.com/corebanking/retail_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MockTransactionRepository is a mock type for the TransactionWriterRepo interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ApplyTransaction(ctx context.Context, accountNumber int64, paymentType domain.PaymentType, amount decimal.Decimal, appliedAt time.Time, appliedBy string) (*domain.Transaction, error) {
	args := m.Called(ctx, accountNumber, paymentType, amount, appliedAt, appliedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// --- Test Suite Setup ---

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestApply_CreditSuccess() {
	ctx := context.Background()
	req := dto.ApplyTransactionRequest{
		AccountNumber: 10000,
		PaymentType:   domain.Credit,
		Amount:        decimal.NewFromInt(250),
	}
	expected := &domain.Transaction{
		TransactionID:  1,
		AccountNumber:  10000,
		PaymentType:    domain.Credit,
		Amount:         req.Amount,
		RunningBalance: decimal.NewFromInt(1250),
	}

	suite.mockRepo.On("ApplyTransaction", ctx, int64(10000), domain.Credit, req.Amount, mock.AnythingOfType("time.Time"), "teller-3").Return(expected, nil).Once()

	txn, err := suite.service.Apply(ctx, req, "teller-3")

	suite.Require().NoError(err)
	suite.Equal(int64(1), txn.TransactionID)
	suite.True(txn.RunningBalance.Equal(decimal.NewFromInt(1250)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestApply_ZeroAmountNeverReachesRepo() {
	ctx := context.Background()
	req := dto.ApplyTransactionRequest{
		AccountNumber: 10000,
		PaymentType:   domain.Debit,
		Amount:        decimal.Zero,
	}

	txn, err := suite.service.Apply(ctx, req, "teller-3")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.Nil(txn)
	suite.mockRepo.AssertNotCalled(suite.T(), "ApplyTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestApply_NegativeAmountNeverReachesRepo() {
	ctx := context.Background()
	req := dto.ApplyTransactionRequest{
		AccountNumber: 10000,
		PaymentType:   domain.Credit,
		Amount:        decimal.NewFromInt(-5),
	}

	txn, err := suite.service.Apply(ctx, req, "teller-3")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.Nil(txn)
	suite.mockRepo.AssertNotCalled(suite.T(), "ApplyTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestApply_UnknownPaymentType() {
	ctx := context.Background()
	req := dto.ApplyTransactionRequest{
		AccountNumber: 10000,
		PaymentType:   domain.PaymentType("TRANSFER"),
		Amount:        decimal.NewFromInt(10),
	}

	txn, err := suite.service.Apply(ctx, req, "teller-3")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
}

func (suite *TransactionServiceTestSuite) TestApply_InsufficientFunds() {
	ctx := context.Background()
	req := dto.ApplyTransactionRequest{
		AccountNumber: 10000,
		PaymentType:   domain.Debit,
		Amount:        decimal.NewFromInt(5000),
	}

	suite.mockRepo.On("ApplyTransaction", ctx, int64(10000), domain.Debit, req.Amount, mock.AnythingOfType("time.Time"), "teller-3").Return(nil, apperrors.ErrInsufficientFunds).Once()

	txn, err := suite.service.Apply(ctx, req, "teller-3")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Nil(txn)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestApply_AccountNotFound() {
	ctx := context.Background()
	req := dto.ApplyTransactionRequest{
		AccountNumber: 99999,
		PaymentType:   domain.Credit,
		Amount:        decimal.NewFromInt(10),
	}

	suite.mockRepo.On("ApplyTransaction", ctx, int64(99999), domain.Credit, req.Amount, mock.AnythingOfType("time.Time"), "teller-3").Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.Apply(ctx, req, "teller-3")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txn)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

// --- Concurrency property ---

// fakeLedgerRepo serializes appliers per account the way the database row
// lock does, so the service can be driven from many goroutines.
type fakeLedgerRepo struct {
	mu       sync.Mutex
	balances map[int64]decimal.Decimal
	entries  map[int64][]domain.Transaction
	nextID   int64
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{
		balances: make(map[int64]decimal.Decimal),
		entries:  make(map[int64][]domain.Transaction),
	}
}

func (f *fakeLedgerRepo) ApplyTransaction(ctx context.Context, accountNumber int64, paymentType domain.PaymentType, amount decimal.Decimal, appliedAt time.Time, appliedBy string) (*domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	balance, ok := f.balances[accountNumber]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	newBalance := balance.Add(amount)
	if paymentType == domain.Debit {
		newBalance = balance.Sub(amount)
		if newBalance.IsNegative() {
			return nil, apperrors.ErrInsufficientFunds
		}
	}

	f.nextID++
	txn := domain.Transaction{
		TransactionID:  f.nextID,
		AccountNumber:  accountNumber,
		PaymentType:    paymentType,
		Amount:         amount,
		RunningBalance: newBalance,
		TransactionAt:  appliedAt,
	}
	f.balances[accountNumber] = newBalance
	f.entries[accountNumber] = append(f.entries[accountNumber], txn)
	return &txn, nil
}

func TestApply_ConcurrentCreditsAllLand(t *testing.T) {
	const (
		accountNumber = int64(10000)
		workers       = 50
	)
	opening := decimal.NewFromInt(1000)
	creditAmount := decimal.NewFromInt(7)

	repo := newFakeLedgerRepo()
	repo.balances[accountNumber] = opening
	svc := services.NewTransactionService(repo)

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Apply(context.Background(), dto.ApplyTransactionRequest{
				AccountNumber: accountNumber,
				PaymentType:   domain.Credit,
				Amount:        creditAmount,
			}, "teller-3")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	expected := opening.Add(creditAmount.Mul(decimal.NewFromInt(workers)))
	require.True(t, repo.balances[accountNumber].Equal(expected),
		"balance %s != expected %s", repo.balances[accountNumber], expected)
	require.Len(t, repo.entries[accountNumber], workers)
}

func TestApply_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	const (
		accountNumber = int64(10000)
		workers       = 30
	)
	opening := decimal.NewFromInt(100)
	debitAmount := decimal.NewFromInt(10)

	repo := newFakeLedgerRepo()
	repo.balances[accountNumber] = opening
	svc := services.NewTransactionService(repo)

	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Apply(context.Background(), dto.ApplyTransactionRequest{
				AccountNumber: accountNumber,
				PaymentType:   domain.Debit,
				Amount:        debitAmount,
			}, "teller-3")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
		}
	}

	// Exactly 10 debits of 10 fit into 100; the rest must be vetoed.
	require.Equal(t, 10, succeeded)
	require.True(t, repo.balances[accountNumber].Equal(decimal.Zero))
	require.Len(t, repo.entries[accountNumber], succeeded)
}
