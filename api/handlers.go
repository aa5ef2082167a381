package api

import (
	"github.com/tidewatch/bluecarbon-backend/analytics"
	"github.com/tidewatch/bluecarbon-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, aggregator analytics.Aggregator) *routeHandlers {
	return &routeHandlers{
		projectHandler:     newProjectHandler(db.ProjectRepo()),
		transactionHandler: newTransactionHandler(db.TransactionRepo()),
		creditHandler:      newCarbonCreditHandler(db.CarbonCreditRepo()),
		mrvHandler:         newMrvDataHandler(db.MrvDataRepo()),
		communityHandler:   newCommunityHandler(db.CommunityPostRepo(), db.CommunityMemberRepo()),
		analyticsHandler:   newAnalyticsHandler(aggregator),
	}
}
