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

type transactionHandler struct {
	responder       Responder
	logger          zerolog.Logger
	transactionRepo *database.TransactionRepo
}

func newTransactionHandler(transactionRepo *database.TransactionRepo) transactionHandler {
	logger := log.With().Str("handlerName", "transactionHandler").Logger()

	return transactionHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		transactionRepo: transactionRepo,
	}
}

// getAllTransactions retrieves the transaction log, newest first
func (h transactionHandler) getAllTransactions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.transactionRepo.FindAll())
	}
}

// createTransaction validates and appends a new log entry
func (h transactionHandler) createTransaction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var insert models.InsertTransaction
		if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
			h.logger.Warn().Err(err).Msg("failed to decode transaction payload")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("transaction", err))
			return
		}

		if err := insert.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tx := h.transactionRepo.Add(insert)
		h.responder.WriteJSONStatus(w, http.StatusCreated, tx)
	}
}
