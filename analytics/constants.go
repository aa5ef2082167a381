package analytics

// MonthlyCredits is one point of the monthly issuance series.
type MonthlyCredits struct {
	Month   string `json:"month"`
	Credits int    `json:"credits"`
}

// QuarterlySequestration is one point of the quarterly series.
type QuarterlySequestration struct {
	Quarter       string `json:"quarter"`
	Sequestration int    `json:"sequestration"`
}

// BiodiversityIndex is the fixed biodiversity snapshot.
type BiodiversityIndex struct {
	FishSpecies    int `json:"fishSpecies"`
	BirdSpecies    int `json:"birdSpecies"`
	PlantSpecies   int `json:"plantSpecies"`
	WaterQuality   int `json:"waterQuality"`
	HabitatQuality int `json:"habitatQuality"`
}

// Constants holds the illustrative figures the aggregator reports
// alongside live totals. These are placeholders, not derived from the
// store; they are kept configurable rather than hardcoded in the
// formulas so a deployment can swap them out.
type Constants struct {
	MonthlyData       []MonthlyCredits
	SequestrationData []QuarterlySequestration
	Biodiversity      BiodiversityIndex

	TotalBlocks     int
	SmartContracts  int
	NetworkHashRate string

	MarketPrice   int
	PriceChange   float64
	TradingVolume int
	VolumeChange  float64
}

// DefaultConstants returns the demo figures shown on the dashboard.
func DefaultConstants() Constants {
	return Constants{
		MonthlyData: []MonthlyCredits{
			{Month: "Jan", Credits: 12000},
			{Month: "Feb", Credits: 15000},
			{Month: "Mar", Credits: 18000},
			{Month: "Apr", Credits: 22000},
			{Month: "May", Credits: 25000},
			{Month: "Jun", Credits: 28000},
		},
		SequestrationData: []QuarterlySequestration{
			{Quarter: "Q1", Sequestration: 8500},
			{Quarter: "Q2", Sequestration: 12300},
			{Quarter: "Q3", Sequestration: 15600},
			{Quarter: "Q4", Sequestration: 18900},
		},
		Biodiversity: BiodiversityIndex{
			FishSpecies:    85,
			BirdSpecies:    78,
			PlantSpecies:   92,
			WaterQuality:   88,
			HabitatQuality: 94,
		},
		TotalBlocks:     12847,
		SmartContracts:  342,
		NetworkHashRate: "2.3 TH/s",
		MarketPrice:     2847,
		PriceChange:     12.5,
		TradingVolume:   24891,
		VolumeChange:    8.3,
	}
}
