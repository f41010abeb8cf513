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

// reportingHandler handles HTTP requests for read-only aggregate reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reporting.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/top-balances", h.topBalances)
		reports.GET("/accounts/:accountNumber/passbook", h.passbook)
		reports.GET("/accounts/:accountNumber/summary", h.accountSummary)
	}
}

// topBalances godoc
// @Summary Top accounts by balance
// @Description Returns the n accounts with the highest balances
// @Tags reports
// @Produce  json
// @Param   limit query int false "Number of accounts" default(10)
// @Success 200 {array} dto.AccountBalanceResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/top-balances [get]
func (h *reportingHandler) topBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TopBalancesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for TopBalances", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	balances, err := h.reportingService.TopBalances(c.Request.Context(), params.Limit)
	if err != nil {
		logger.Error("Failed to build top balances report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, balances)
}

// passbook godoc
// @Summary Passbook for an account
// @Description Renders the date-filtered ledger of an account with running balances
// @Tags reports
// @Produce  json
// @Param   accountNumber path int true "Account number"
// @Param   from query string false "Window start (YYYY-MM-DD)"
// @Param   to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.PassbookResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/accounts/{accountNumber}/passbook [get]
func (h *reportingHandler) passbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber, ok := accountNumberParam(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for Passbook", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	passbook, err := h.reportingService.Passbook(c.Request.Context(), accountNumber, params.From, params.To)
	if err != nil {
		h.replyReportError(c, logger, accountNumber, err)
		return
	}

	c.JSON(http.StatusOK, passbook)
}

// accountSummary godoc
// @Summary Activity summary for an account
// @Description Totals the credits and debits of an account within an optional window
// @Tags reports
// @Produce  json
// @Param   accountNumber path int true "Account number"
// @Param   from query string false "Window start (YYYY-MM-DD)"
// @Param   to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountSummaryResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/accounts/{accountNumber}/summary [get]
func (h *reportingHandler) accountSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber, ok := accountNumberParam(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for AccountSummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.reportingService.AccountSummary(c.Request.Context(), accountNumber, params.From, params.To)
	if err != nil {
		h.replyReportError(c, logger, accountNumber, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *reportingHandler) replyReportError(c *gin.Context, logger *slog.Logger, accountNumber int64, err error) {
	if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Invalid report window", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Account not found for report", slog.Int64("account_number", accountNumber))
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
	} else {
		logger.Error("Failed to build report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
	}
}
