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

type mrvDataHandler struct {
	responder Responder
	logger    zerolog.Logger
	mrvRepo   *database.MrvDataRepo
}

func newMrvDataHandler(mrvRepo *database.MrvDataRepo) mrvDataHandler {
	logger := log.With().Str("handlerName", "mrvDataHandler").Logger()

	return mrvDataHandler{
		responder: NewResponder(logger),
		logger:    logger,
		mrvRepo:   mrvRepo,
	}
}

// getMrvData retrieves MRV records, optionally filtered by the
// projectId query parameter
func (h mrvDataHandler) getMrvData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := r.URL.Query().Get("projectId")
		h.responder.WriteJSON(w, h.mrvRepo.FindAll(projectID))
	}
}

// createMrvData validates and stores a new monitoring record
func (h mrvDataHandler) createMrvData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var insert models.InsertMrvData
		if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
			h.logger.Warn().Err(err).Msg("failed to decode MRV payload")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("MRV data", err))
			return
		}

		if err := insert.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		data := h.mrvRepo.Add(insert)
		h.responder.WriteJSONStatus(w, http.StatusCreated, data)
	}
}
