package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tidewatch/bluecarbon-backend/database"
	"github.com/tidewatch/bluecarbon-backend/errs"
	"github.com/tidewatch/bluecarbon-backend/models"
)

type carbonCreditHandler struct {
	responder  Responder
	logger     zerolog.Logger
	creditRepo *database.CarbonCreditRepo
}

func newCarbonCreditHandler(creditRepo *database.CarbonCreditRepo) carbonCreditHandler {
	logger := log.With().Str("handlerName", "carbonCreditHandler").Logger()

	return carbonCreditHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		creditRepo: creditRepo,
	}
}

// getAllCarbonCredits retrieves every marketplace listing
func (h carbonCreditHandler) getAllCarbonCredits() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.creditRepo.FindAll())
	}
}

// createCarbonCredit validates and stores a new listing
func (h carbonCreditHandler) createCarbonCredit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var insert models.InsertCarbonCredit
		if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
			h.logger.Warn().Err(err).Msg("failed to decode carbon credit payload")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("carbon credit", err))
			return
		}

		if err := insert.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		credit := h.creditRepo.Add(insert)
		h.responder.WriteJSONStatus(w, http.StatusCreated, credit)
	}
}
