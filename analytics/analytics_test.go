package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewatch/bluecarbon-backend/database"
	"github.com/tidewatch/bluecarbon-backend/models"
)

func intPtr(i int) *int { return &i }

func TestDashboard_LiveTotals(t *testing.T) {
	db := database.New()
	database.Seed(db)
	agg := New(db)

	summary := agg.Dashboard()
	assert.Equal(t, 3, summary.TotalProjects)
	assert.Equal(t, 15840+11200+19600, summary.TotalCredits)
	assert.Equal(t, 2, summary.TotalTransactions)
	assert.Equal(t, 2, summary.ActiveMonitoring)
	assert.Equal(t, ProjectTypeBreakdown{Mangrove: 1, Seagrass: 1, Saltmarsh: 1}, summary.ProjectTypes)

	// a fresh project carries zero credits, so only the counts move
	db.ProjectRepo().Add(models.InsertProject{
		Name:         "New Meadow",
		Description:  "d",
		Location:     "l",
		Type:         models.EcosystemSeagrass,
		Status:       models.ProjectStatusActive,
		AreaHectares: "10.0",
	})

	after := agg.Dashboard()
	assert.Equal(t, 4, after.TotalProjects)
	assert.Equal(t, summary.TotalCredits, after.TotalCredits)
	assert.Equal(t, 3, after.ActiveMonitoring)
	assert.Equal(t, 2, after.ProjectTypes.Seagrass)
}

func TestDashboard_ConstantSeries(t *testing.T) {
	db := database.New()
	summary := New(db).Dashboard()

	require.Len(t, summary.MonthlyData, 6)
	assert.Equal(t, MonthlyCredits{Month: "Jan", Credits: 12000}, summary.MonthlyData[0])
	require.Len(t, summary.SequestrationData, 4)
	assert.Equal(t, QuarterlySequestration{Quarter: "Q4", Sequestration: 18900}, summary.SequestrationData[3])
	assert.Equal(t, 94, summary.BiodiversityData.HabitatQuality)
}

func TestBlockchain_OnlyTransactionCountIsLive(t *testing.T) {
	db := database.New()
	agg := New(db)

	stats := agg.Blockchain()
	assert.Equal(t, 12847, stats.TotalBlocks)
	assert.Equal(t, 342, stats.SmartContracts)
	assert.Equal(t, "2.3 TH/s", stats.NetworkHashRate)
	assert.Equal(t, 0, stats.TotalTransactions)

	db.TransactionRepo().Add(models.InsertTransaction{
		Hash: "0x1", Type: models.TxTypeCarbonCredit, FromAddress: "a", ToAddress: "b", BlockNumber: intPtr(1),
	})
	assert.Equal(t, 1, agg.Blockchain().TotalTransactions)
}

func TestMarketplace_SumsAllQuantitiesRegardlessOfAvailability(t *testing.T) {
	db := database.New()
	agg := New(db)

	off := false
	db.CarbonCreditRepo().Add(models.InsertCarbonCredit{ProjectID: "p1", Quantity: intPtr(500), PricePerTonne: "2850.00", SellerAddress: "0x1"})
	db.CarbonCreditRepo().Add(models.InsertCarbonCredit{ProjectID: "p2", Quantity: intPtr(300), PricePerTonne: "2820.00", IsAvailable: &off, SellerAddress: "0x2"})

	stats := agg.Marketplace()
	assert.Equal(t, 800, stats.AvailableCredits)
	assert.Equal(t, 2847, stats.MarketPrice)
	assert.Equal(t, 12.5, stats.PriceChange)
	assert.Equal(t, 24891, stats.TradingVolume)
	assert.Equal(t, 8.3, stats.VolumeChange)
}

func TestNewWithConstants_Overrides(t *testing.T) {
	db := database.New()
	c := DefaultConstants()
	c.MarketPrice = 3000
	c.NetworkHashRate = "9.9 TH/s"

	agg := NewWithConstants(db, c)
	assert.Equal(t, 3000, agg.Marketplace().MarketPrice)
	assert.Equal(t, "9.9 TH/s", agg.Blockchain().NetworkHashRate)
}
