package models

import (
	"time"

	"github.com/tidewatch/bluecarbon-backend/errs"
)

// MRV data source types.
const (
	MrvSourceDrone     = "drone"
	MrvSourceMobile    = "mobile"
	MrvSourceSatellite = "satellite"
)

// VerificationPending is the initial verification status of every record.
const VerificationPending = "pending"

// MrvData is one monitoring/reporting/verification record for a project.
// Metrics is a free-form payload whose shape depends on the data source.
type MrvData struct {
	ID                 string         `json:"id"`
	ProjectID          string         `json:"projectId"`
	DataType           string         `json:"dataType"`
	Metrics            map[string]any `json:"metrics"`
	VerificationStatus string         `json:"verificationStatus"`
	CollectedAt        time.Time      `json:"collectedAt"`
}

// InsertMrvData carries the client-suppliable fields of an MRV record.
// VerificationStatus defaults to "pending" when omitted.
type InsertMrvData struct {
	ProjectID          string         `json:"projectId"`
	DataType           string         `json:"dataType"`
	Metrics            map[string]any `json:"metrics"`
	VerificationStatus string         `json:"verificationStatus"`
}

func validMrvSource(t string) bool {
	switch t {
	case MrvSourceDrone, MrvSourceMobile, MrvSourceSatellite:
		return true
	}
	return false
}

func (m InsertMrvData) Validate() error {
	if m.ProjectID == "" {
		return errs.NewMissingRequiredFieldError("projectId")
	}
	if !validMrvSource(m.DataType) {
		return errs.NewInvalidFieldError("dataType", "must be one of drone, mobile, satellite")
	}
	if m.Metrics == nil {
		return errs.NewMissingRequiredFieldError("metrics")
	}
	return nil
}
