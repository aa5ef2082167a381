package models

import (
	"strconv"
	"time"

	"github.com/tidewatch/bluecarbon-backend/errs"
)

// Ecosystem types a restoration project can target.
const (
	EcosystemMangrove  = "mangrove"
	EcosystemSeagrass  = "seagrass"
	EcosystemSaltmarsh = "saltmarsh"
)

// Project lifecycle statuses.
const (
	ProjectStatusActive     = "active"
	ProjectStatusPlanning   = "planning"
	ProjectStatusMonitoring = "monitoring"
	ProjectStatusCompleted  = "completed"
)

// Project represents a blue carbon restoration project
type Project struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	AreaHectares  string    `json:"areaHectares"`
	CarbonCredits int       `json:"carbonCredits"`
	ImageURL      *string   `json:"imageUrl"`
	LastUpdate    time.Time `json:"lastUpdate"`
	CreatedAt     time.Time `json:"createdAt"`
}

// InsertProject carries the client-suppliable fields of a project.
// CarbonCredits and the timestamps are server-controlled and cannot
// be supplied here.
type InsertProject struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	AreaHectares string  `json:"areaHectares"`
	ImageURL     *string `json:"imageUrl"`
}

// ProjectUpdate is a partial project patch; nil fields are left untouched.
type ProjectUpdate struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Location      *string `json:"location"`
	Type          *string `json:"type"`
	Status        *string `json:"status"`
	AreaHectares  *string `json:"areaHectares"`
	CarbonCredits *int    `json:"carbonCredits"`
	ImageURL      *string `json:"imageUrl"`
}

func validEcosystemType(t string) bool {
	switch t {
	case EcosystemMangrove, EcosystemSeagrass, EcosystemSaltmarsh:
		return true
	}
	return false
}

func validProjectStatus(s string) bool {
	switch s {
	case ProjectStatusActive, ProjectStatusPlanning, ProjectStatusMonitoring, ProjectStatusCompleted:
		return true
	}
	return false
}

func validDecimal(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func (p InsertProject) Validate() error {
	if p.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if p.Description == "" {
		return errs.NewMissingRequiredFieldError("description")
	}
	if p.Location == "" {
		return errs.NewMissingRequiredFieldError("location")
	}
	if !validEcosystemType(p.Type) {
		return errs.NewInvalidFieldError("type", "must be one of mangrove, seagrass, saltmarsh")
	}
	if !validProjectStatus(p.Status) {
		return errs.NewInvalidFieldError("status", "must be one of active, planning, monitoring, completed")
	}
	if p.AreaHectares == "" {
		return errs.NewMissingRequiredFieldError("areaHectares")
	}
	if !validDecimal(p.AreaHectares) {
		return errs.NewInvalidFieldError("areaHectares", "must be a decimal string")
	}
	return nil
}

func (u ProjectUpdate) Validate() error {
	if u.Type != nil && !validEcosystemType(*u.Type) {
		return errs.NewInvalidFieldError("type", "must be one of mangrove, seagrass, saltmarsh")
	}
	if u.Status != nil && !validProjectStatus(*u.Status) {
		return errs.NewInvalidFieldError("status", "must be one of active, planning, monitoring, completed")
	}
	if u.AreaHectares != nil && !validDecimal(*u.AreaHectares) {
		return errs.NewInvalidFieldError("areaHectares", "must be a decimal string")
	}
	return nil
}
