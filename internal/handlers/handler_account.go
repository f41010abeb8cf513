package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/corebanking/retail_ledger_app/internal/apperrors"
	portssvc "github.com/corebanking/retail_ledger_app/internal/core/ports/services"
	"github.com/corebanking/retail_ledger_app/internal/dto"
	"github.com/corebanking/retail_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests against the account ledger read surface.
type accountHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(ls portssvc.LedgerSvcFacade) *accountHandler {
	return &accountHandler{
		ledgerService: ls,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newAccountHandler(ledgerService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountNumber", h.getAccount)
		accounts.GET("/:accountNumber/balance", h.getBalance)
		accounts.GET("/:accountNumber/transactions", h.listTransactions)
	}
}

func accountNumberParam(c *gin.Context) (int64, bool) {
	n, err := strconv.ParseInt(c.Param("accountNumber"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account number"})
		return 0, false
	}
	return n, true
}

// getAccount godoc
// @Summary Get an account by number
// @Description Retrieves an account together with its holder snapshot
// @Tags accounts
// @Produce  json
// @Param   accountNumber path int true "Account number"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid account number"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Router /accounts/{accountNumber} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber, ok := accountNumberParam(c)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("account_number", accountNumber))
	logger.Info("Received request to get account")

	account, holder, err := h.ledgerService.GetAccount(c.Request.Context(), accountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account, holder))
}

// getBalance godoc
// @Summary Get the current balance of an account
// @Description Returns the authoritative committed balance
// @Tags accounts
// @Produce  json
// @Param   accountNumber path int true "Account number"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 400 {object} map[string]string "Invalid account number"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Router /accounts/{accountNumber}/balance [get]
func (h *accountHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber, ok := accountNumberParam(c)
	if !ok {
		return
	}

	balance, err := h.ledgerService.GetBalance(c.Request.Context(), accountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for balance query", slog.Int64("account_number", accountNumber))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get balance from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AccountBalanceResponse{AccountNumber: accountNumber, Balance: balance})
}

// listAccounts godoc
// @Summary List accounts
// @Description Retrieves a paginated list of accounts ordered by account number
// @Tags accounts
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.ledgerService.ListAccounts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list accounts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// listTransactions godoc
// @Summary List ledger entries for an account
// @Description Retrieves the account's ledger entries within an optional [from, to] window
// @Tags accounts
// @Produce  json
// @Param   accountNumber path int true "Account number"
// @Param   from query string false "Window start (YYYY-MM-DD)"
// @Param   to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /accounts/{accountNumber}/transactions [get]
func (h *accountHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber, ok := accountNumberParam(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), accountNumber, params.From, params.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid transaction window", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for transaction listing", slog.Int64("account_number", accountNumber))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(txns)})
}
