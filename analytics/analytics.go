// Package analytics computes read-only summaries over the live store.
// Every call recomputes from the current contents; nothing is cached,
// which is fine at dashboard scale.
package analytics

import (
	"github.com/tidewatch/bluecarbon-backend/database"
	"github.com/tidewatch/bluecarbon-backend/models"
)

// Aggregator derives dashboard, blockchain and marketplace summaries
// from the store it was constructed with.
type Aggregator struct {
	db        database.Database
	constants Constants
}

func New(db database.Database) Aggregator {
	return Aggregator{db: db, constants: DefaultConstants()}
}

// NewWithConstants builds an aggregator with overridden illustrative
// constants, mainly for tests and staged demos.
func NewWithConstants(db database.Database, c Constants) Aggregator {
	return Aggregator{db: db, constants: c}
}

// ProjectTypeBreakdown counts projects per ecosystem type.
type ProjectTypeBreakdown struct {
	Mangrove  int `json:"mangrove"`
	Seagrass  int `json:"seagrass"`
	Saltmarsh int `json:"saltmarsh"`
}

// DashboardSummary is the payload of /api/analytics/dashboard.
type DashboardSummary struct {
	TotalProjects     int                      `json:"totalProjects"`
	TotalCredits      int                      `json:"totalCredits"`
	TotalTransactions int                      `json:"totalTransactions"`
	ActiveMonitoring  int                      `json:"activeMonitoring"`
	ProjectTypes      ProjectTypeBreakdown     `json:"projectTypes"`
	MonthlyData       []MonthlyCredits         `json:"monthlyData"`
	SequestrationData []QuarterlySequestration `json:"sequestrationData"`
	BiodiversityData  BiodiversityIndex        `json:"biodiversityData"`
}

// BlockchainStats is the payload of /api/analytics/blockchain. Only
// the transaction count is live; the rest are network constants.
type BlockchainStats struct {
	TotalBlocks       int    `json:"totalBlocks"`
	TotalTransactions int    `json:"totalTransactions"`
	SmartContracts    int    `json:"smartContracts"`
	NetworkHashRate   string `json:"networkHashRate"`
}

// MarketStats is the payload of /api/analytics/marketplace. Only the
// available-credits total is live.
type MarketStats struct {
	MarketPrice      int     `json:"marketPrice"`
	TradingVolume    int     `json:"tradingVolume"`
	AvailableCredits int     `json:"availableCredits"`
	PriceChange      float64 `json:"priceChange"`
	VolumeChange     float64 `json:"volumeChange"`
}

// Dashboard recomputes the dashboard summary from the current store
func (a Aggregator) Dashboard() DashboardSummary {
	projects := a.db.ProjectRepo().FindAll()
	transactions := a.db.TransactionRepo().FindAll()

	summary := DashboardSummary{
		TotalProjects:     len(projects),
		TotalTransactions: len(transactions),
		MonthlyData:       a.constants.MonthlyData,
		SequestrationData: a.constants.SequestrationData,
		BiodiversityData:  a.constants.Biodiversity,
	}

	for _, p := range projects {
		summary.TotalCredits += p.CarbonCredits
		if p.Status == models.ProjectStatusActive {
			summary.ActiveMonitoring++
		}
		switch p.Type {
		case models.EcosystemMangrove:
			summary.ProjectTypes.Mangrove++
		case models.EcosystemSeagrass:
			summary.ProjectTypes.Seagrass++
		case models.EcosystemSaltmarsh:
			summary.ProjectTypes.Saltmarsh++
		}
	}

	return summary
}

// Blockchain recomputes the blockchain stats from the current store
func (a Aggregator) Blockchain() BlockchainStats {
	return BlockchainStats{
		TotalBlocks:       a.constants.TotalBlocks,
		TotalTransactions: len(a.db.TransactionRepo().FindAll()),
		SmartContracts:    a.constants.SmartContracts,
		NetworkHashRate:   a.constants.NetworkHashRate,
	}
}

// Marketplace recomputes the market stats from the current store. The
// available-credits total sums quantity over every listing, including
// ones whose availability flag is off.
func (a Aggregator) Marketplace() MarketStats {
	stats := MarketStats{
		MarketPrice:   a.constants.MarketPrice,
		TradingVolume: a.constants.TradingVolume,
		PriceChange:   a.constants.PriceChange,
		VolumeChange:  a.constants.VolumeChange,
	}
	for _, c := range a.db.CarbonCreditRepo().FindAll() {
		stats.AvailableCredits += c.Quantity
	}
	return stats
}
