package models

import (
	"time"

	"github.com/tidewatch/bluecarbon-backend/errs"
)

// CarbonCredit is a marketplace listing of verified credits for one project.
type CarbonCredit struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"projectId"`
	Quantity      int       `json:"quantity"`
	PricePerTonne string    `json:"pricePerTonne"`
	IsAvailable   bool      `json:"isAvailable"`
	SellerAddress string    `json:"sellerAddress"`
	CreatedAt     time.Time `json:"createdAt"`
}

// InsertCarbonCredit carries the client-suppliable fields of a credit
// listing. IsAvailable defaults to true when omitted. The referenced
// project is not checked to exist, matching the permissive contract.
type InsertCarbonCredit struct {
	ProjectID     string `json:"projectId"`
	Quantity      *int   `json:"quantity"`
	PricePerTonne string `json:"pricePerTonne"`
	IsAvailable   *bool  `json:"isAvailable"`
	SellerAddress string `json:"sellerAddress"`
}

func (c InsertCarbonCredit) Validate() error {
	if c.ProjectID == "" {
		return errs.NewMissingRequiredFieldError("projectId")
	}
	if c.Quantity == nil {
		return errs.NewMissingRequiredFieldError("quantity")
	}
	if c.PricePerTonne == "" {
		return errs.NewMissingRequiredFieldError("pricePerTonne")
	}
	if !validDecimal(c.PricePerTonne) {
		return errs.NewInvalidFieldError("pricePerTonne", "must be a decimal string")
	}
	if c.SellerAddress == "" {
		return errs.NewMissingRequiredFieldError("sellerAddress")
	}
	return nil
}
