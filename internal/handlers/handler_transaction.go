package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/corebanking/retail_ledger_app/internal/apperrors"
	portssvc "github.com/corebanking/retail_ledger_app/internal/core/ports/services"
	"github.com/corebanking/retail_ledger_app/internal/dto"
	"github.com/corebanking/retail_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for teller credit/debit postings.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers routes related to ledger postings.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.applyTransaction)
	}
}

// applyTransaction godoc
// @Summary Apply a credit or debit to an account
// @Description Atomically posts one ledger entry; a debit that would overdraw the account is rejected with nothing written
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.ApplyTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or amount"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Failure 500 {object} map[string]string "Failed to apply transaction"
// @Router /transactions [post]
func (h *transactionHandler) applyTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApplyTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tellerID := operatorID(c)
	logger = logger.With(
		slog.Int64("account_number", req.AccountNumber),
		slog.String("payment_type", string(req.PaymentType)),
		slog.String("teller_id", tellerID),
	)
	logger.Info("Received request to apply transaction")

	txn, err := h.transactionService.Apply(c.Request.Context(), req, tellerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidAmount) || errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error applying transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for transaction")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else if errors.Is(err, apperrors.ErrInsufficientFunds) {
			logger.Warn("Insufficient funds for debit")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Insufficient funds"})
		} else {
			logger.Error("Failed to apply transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply transaction"})
		}
		return
	}

	logger.Info("Transaction applied successfully", slog.Int64("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}
