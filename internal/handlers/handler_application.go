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

// applicationHandler handles HTTP requests related to account applications.
type applicationHandler struct {
	applicationService portssvc.ApplicationSvcFacade
}

// newApplicationHandler creates a new applicationHandler.
func newApplicationHandler(as portssvc.ApplicationSvcFacade) *applicationHandler {
	return &applicationHandler{
		applicationService: as,
	}
}

// registerApplicationRoutes registers routes related to account applications.
func registerApplicationRoutes(rg *gin.RouterGroup, applicationService portssvc.ApplicationSvcFacade) {
	h := newApplicationHandler(applicationService)

	applications := rg.Group("/applications")
	{
		applications.POST("", h.submitApplication)
		applications.GET("", h.listApplications)
		applications.GET("/:applicationID", h.getApplication)
		applications.POST("/:applicationID/approve", h.approveApplication)
		applications.POST("/:applicationID/reject", h.rejectApplication)
	}
}

// submitApplication godoc
// @Summary Submit a new account application
// @Description Admits a new application in PENDING state after identity and opening-balance checks
// @Tags applications
// @Accept  json
// @Produce  json
// @Param   application body dto.SubmitApplicationRequest true "Application details"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Identity already registered"
// @Failure 500 {object} map[string]string "Failed to submit application"
// @Router /applications [post]
func (h *applicationHandler) submitApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitApplication", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	submitterID := operatorID(c)
	logger = logger.With(slog.String("submitter_id", submitterID))
	logger.Info("Received request to submit application", slog.String("account_type", string(req.AccountType)))

	newApp, err := h.applicationService.SubmitApplication(c.Request.Context(), req, submitterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error submitting application", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicateIdentity) {
			logger.Warn("Duplicate identity submitting application", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to submit application in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		}
		return
	}

	logger.Info("Application submitted successfully", slog.String("application_id", newApp.ApplicationID))
	c.JSON(http.StatusCreated, dto.ToApplicationResponse(newApp))
}

// getApplication godoc
// @Summary Get an application by ID
// @Description Retrieves details for a specific application including its KYC status
// @Tags applications
// @Produce  json
// @Param   applicationID path string true "Application ID"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 404 {object} map[string]string "Application not found"
// @Failure 500 {object} map[string]string "Failed to retrieve application"
// @Router /applications/{applicationID} [get]
func (h *applicationHandler) getApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	applicationID := c.Param("applicationID")

	logger = logger.With(slog.String("application_id", applicationID))
	logger.Info("Received request to get application")

	app, err := h.applicationService.GetApplicationByID(c.Request.Context(), applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Application not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			logger.Error("Failed to get application from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve application"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationResponse(app))
}

// listApplications godoc
// @Summary List applications
// @Description Retrieves applications, optionally filtered by KYC status
// @Tags applications
// @Produce  json
// @Param   status query string false "KYC status filter" Enums(PENDING, APPROVED, REJECTED)
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListApplicationsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list applications"
// @Router /applications [get]
func (h *applicationHandler) listApplications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListApplicationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListApplications", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	apps, err := h.applicationService.ListApplications(c.Request.Context(), params.Status, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list applications from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list applications"})
		return
	}

	c.JSON(http.StatusOK, dto.ListApplicationsResponse{Applications: dto.ToListApplicationResponse(apps)})
}

// approveApplication godoc
// @Summary Approve a pending application
// @Description Records the KYC approval and provisions the account in one step
// @Tags applications
// @Produce  json
// @Param   applicationID path string true "Application ID"
// @Success 201 {object} dto.ApprovalResponse
// @Failure 404 {object} map[string]string "Application not found"
// @Failure 409 {object} map[string]string "Application already decided"
// @Failure 500 {object} map[string]string "Failed to approve application"
// @Router /applications/{applicationID}/approve [post]
func (h *applicationHandler) approveApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	applicationID := c.Param("applicationID")
	reviewerID := operatorID(c)

	logger = logger.With(slog.String("application_id", applicationID), slog.String("reviewer_id", reviewerID))
	logger.Info("Received request to approve application")

	account, err := h.applicationService.ApproveApplication(c.Request.Context(), applicationID, reviewerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Application not found for approval")
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else if errors.Is(err, apperrors.ErrInvalidState) {
			logger.Warn("Application already decided", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to approve application in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve application"})
		}
		return
	}

	logger.Info("Application approved successfully", slog.Int64("account_number", account.AccountNumber))
	c.JSON(http.StatusCreated, dto.ApprovalResponse{
		ApplicationID: account.ApplicationID,
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance,
		OpeningDate:   account.OpeningDate,
	})
}

// rejectApplication godoc
// @Summary Reject a pending application
// @Description Records the KYC rejection; no account is created
// @Tags applications
// @Produce  json
// @Param   applicationID path string true "Application ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Application not found"
// @Failure 409 {object} map[string]string "Application already decided"
// @Failure 500 {object} map[string]string "Failed to reject application"
// @Router /applications/{applicationID}/reject [post]
func (h *applicationHandler) rejectApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	applicationID := c.Param("applicationID")
	reviewerID := operatorID(c)

	logger = logger.With(slog.String("application_id", applicationID), slog.String("reviewer_id", reviewerID))
	logger.Info("Received request to reject application")

	err := h.applicationService.RejectApplication(c.Request.Context(), applicationID, reviewerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Application not found for rejection")
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else if errors.Is(err, apperrors.ErrInvalidState) {
			logger.Warn("Application already decided", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to reject application in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject application"})
		}
		return
	}

	logger.Info("Application rejected successfully")
	c.JSON(http.StatusOK, gin.H{"status": "REJECTED"})
}
