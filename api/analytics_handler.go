package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tidewatch/bluecarbon-backend/analytics"
)

type analyticsHandler struct {
	responder  Responder
	logger     zerolog.Logger
	aggregator analytics.Aggregator
}

func newAnalyticsHandler(aggregator analytics.Aggregator) analyticsHandler {
	logger := log.With().Str("handlerName", "analyticsHandler").Logger()

	return analyticsHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		aggregator: aggregator,
	}
}

// getDashboard returns the live dashboard summary
func (h analyticsHandler) getDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.aggregator.Dashboard())
	}
}

// getBlockchain returns the blockchain stats
func (h analyticsHandler) getBlockchain() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.aggregator.Blockchain())
	}
}

// getMarketplace returns the marketplace stats
func (h analyticsHandler) getMarketplace() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.aggregator.Marketplace())
	}
}
