package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidewatch/bluecarbon-backend/errs"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func validInsertProject() InsertProject {
	return InsertProject{
		Name:         "Sundarbans Revival",
		Description:  "Mangrove restoration in the delta",
		Location:     "West Bengal",
		Type:         EcosystemMangrove,
		Status:       ProjectStatusActive,
		AreaHectares: "2500.00",
	}
}

func TestInsertProject_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*InsertProject)
		wantErr bool
	}{
		{name: "valid payload", mutate: func(p *InsertProject) {}, wantErr: false},
		{name: "missing name", mutate: func(p *InsertProject) { p.Name = "" }, wantErr: true},
		{name: "missing description", mutate: func(p *InsertProject) { p.Description = "" }, wantErr: true},
		{name: "missing location", mutate: func(p *InsertProject) { p.Location = "" }, wantErr: true},
		{name: "unknown ecosystem type", mutate: func(p *InsertProject) { p.Type = "kelp" }, wantErr: true},
		{name: "unknown status", mutate: func(p *InsertProject) { p.Status = "paused" }, wantErr: true},
		{name: "missing area", mutate: func(p *InsertProject) { p.AreaHectares = "" }, wantErr: true},
		{name: "non-decimal area", mutate: func(p *InsertProject) { p.AreaHectares = "lots" }, wantErr: true},
		{name: "monitoring status", mutate: func(p *InsertProject) { p.Status = ProjectStatusMonitoring }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validInsertProject()
			tt.mutate(&payload)
			err := payload.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProjectUpdate_Validate(t *testing.T) {
	assert.NoError(t, ProjectUpdate{}.Validate())
	assert.NoError(t, ProjectUpdate{Status: strPtr(ProjectStatusCompleted)}.Validate())
	assert.Error(t, ProjectUpdate{Status: strPtr("paused")}.Validate())
	assert.Error(t, ProjectUpdate{Type: strPtr("kelp")}.Validate())
	assert.Error(t, ProjectUpdate{AreaHectares: strPtr("wide")}.Validate())
}

func TestInsertTransaction_Validate(t *testing.T) {
	valid := InsertTransaction{
		Hash:        "0xa7b3...c8d9",
		Type:        TxTypeCarbonCredit,
		FromAddress: "0x123",
		ToAddress:   "0x456",
		BlockNumber: intPtr(12847),
	}
	assert.NoError(t, valid.Validate())

	missingHash := valid
	missingHash.Hash = ""
	assert.Error(t, missingHash.Validate())

	badType := valid
	badType.Type = "transfer"
	assert.Error(t, badType.Validate())

	missingBlock := valid
	missingBlock.BlockNumber = nil
	err := missingBlock.Validate()
	assert.Error(t, err)
	assert.True(t, errs.IsMissingRequiredFieldError(err))
}

func TestInsertCarbonCredit_Validate(t *testing.T) {
	valid := InsertCarbonCredit{
		ProjectID:     "proj-1",
		Quantity:      intPtr(500),
		PricePerTonne: "2850.00",
		SellerAddress: "0x123",
	}
	assert.NoError(t, valid.Validate())

	missingQuantity := valid
	missingQuantity.Quantity = nil
	assert.Error(t, missingQuantity.Validate())

	badPrice := valid
	badPrice.PricePerTonne = "a lot"
	assert.Error(t, badPrice.Validate())

	missingSeller := valid
	missingSeller.SellerAddress = ""
	assert.Error(t, missingSeller.Validate())
}

func TestInsertMrvData_Validate(t *testing.T) {
	valid := InsertMrvData{
		ProjectID: "proj-1",
		DataType:  MrvSourceDrone,
		Metrics:   map[string]any{"canopyCover": 0.82},
	}
	assert.NoError(t, valid.Validate())

	badSource := valid
	badSource.DataType = "balloon"
	assert.Error(t, badSource.Validate())

	missingMetrics := valid
	missingMetrics.Metrics = nil
	assert.Error(t, missingMetrics.Validate())
}

func TestInsertCommunity_Validate(t *testing.T) {
	assert.NoError(t, InsertCommunityPost{Author: "Team", Content: "Planted 500 saplings"}.Validate())
	assert.Error(t, InsertCommunityPost{Content: "no author"}.Validate())
	assert.Error(t, InsertCommunityPost{Author: "Team"}.Validate())

	assert.NoError(t, InsertCommunityMember{Name: "Sundarbans Team"}.Validate())
	assert.Error(t, InsertCommunityMember{}.Validate())
}

func TestInsertUser_Validate(t *testing.T) {
	assert.NoError(t, InsertUser{Username: "ranger", Password: "hunter2"}.Validate())
	assert.Error(t, InsertUser{Password: "hunter2"}.Validate())
	assert.Error(t, InsertUser{Username: "ranger"}.Validate())
}
