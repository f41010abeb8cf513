package dto

import (
	"time"

	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitApplicationRequest defines the data needed to open an application.
// Format/range checks on raw identity input (digit counts etc.) are the
// intake caller's responsibility; the core enforces uniqueness and the
// opening-balance minimum.
type SubmitApplicationRequest struct {
	HolderName     string             `json:"holderName" binding:"required"`
	DateOfBirth    time.Time          `json:"dateOfBirth" binding:"required"`
	NationalID     string             `json:"nationalID" binding:"required"`
	Mobile         string             `json:"mobile" binding:"required"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,accounttype"`
	OpeningBalance decimal.Decimal    `json:"openingBalance" binding:"required"`
	Address        string             `json:"address"`
}

// ApplicationResponse defines the data returned for an application.
type ApplicationResponse struct {
	ApplicationID  string             `json:"applicationID"`
	HolderName     string             `json:"holderName"`
	DateOfBirth    time.Time          `json:"dateOfBirth"`
	NationalID     string             `json:"nationalID"`
	Mobile         string             `json:"mobile"`
	AccountType    domain.AccountType `json:"accountType"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
	Address        string             `json:"address"`
	KYCStatus      domain.KYCStatus   `json:"kycStatus"`
	CreatedAt      time.Time          `json:"createdAt"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
}

// ToApplicationResponse converts a domain.Application to ApplicationResponse
func ToApplicationResponse(app *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ApplicationID:  app.ApplicationID,
		HolderName:     app.HolderName,
		DateOfBirth:    app.DateOfBirth,
		NationalID:     app.NationalID,
		Mobile:         app.Mobile,
		AccountType:    app.AccountType,
		OpeningBalance: app.OpeningBalance,
		Address:        app.Address,
		KYCStatus:      app.KYCStatus,
		CreatedAt:      app.CreatedAt,
		LastUpdatedAt:  app.LastUpdatedAt,
	}
}

// ToListApplicationResponse converts a slice of domain.Application to DTOs
func ToListApplicationResponse(apps []domain.Application) []ApplicationResponse {
	res := make([]ApplicationResponse, len(apps))
	for i := range apps {
		res[i] = ToApplicationResponse(&apps[i])
	}
	return res
}

// ListApplicationsParams defines query parameters for listing applications.
type ListApplicationsParams struct {
	Status *domain.KYCStatus `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Limit  int               `form:"limit,default=20"`
	Offset int               `form:"offset,default=0"`
}

// ListApplicationsResponse wraps the list of applications.
type ListApplicationsResponse struct {
	Applications []ApplicationResponse `json:"applications"`
}

// ApprovalResponse is returned when an application is approved: the account
// that was provisioned by the approval.
type ApprovalResponse struct {
	ApplicationID string          `json:"applicationID"`
	AccountNumber int64           `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	OpeningDate   time.Time       `json:"openingDate"`
}
