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

type communityHandler struct {
	responder  Responder
	logger     zerolog.Logger
	postRepo   *database.CommunityPostRepo
	memberRepo *database.CommunityMemberRepo
}

func newCommunityHandler(postRepo *database.CommunityPostRepo, memberRepo *database.CommunityMemberRepo) communityHandler {
	logger := log.With().Str("handlerName", "communityHandler").Logger()

	return communityHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		postRepo:   postRepo,
		memberRepo: memberRepo,
	}
}

// getAllPosts retrieves the community feed, newest first
func (h communityHandler) getAllPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.postRepo.FindAll())
	}
}

// createPost validates and stores a new feed post
func (h communityHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var insert models.InsertCommunityPost
		if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
			h.logger.Warn().Err(err).Msg("failed to decode community post payload")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("community post", err))
			return
		}

		if err := insert.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post := h.postRepo.Add(insert)
		h.responder.WriteJSONStatus(w, http.StatusCreated, post)
	}
}

// getAllMembers retrieves the leaderboard, points descending
func (h communityHandler) getAllMembers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.memberRepo.FindAll())
	}
}

// createMember validates and stores a new leaderboard member
func (h communityHandler) createMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var insert models.InsertCommunityMember
		if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
			h.logger.Warn().Err(err).Msg("failed to decode community member payload")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("community member", err))
			return
		}

		if err := insert.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		member := h.memberRepo.Add(insert)
		h.responder.WriteJSONStatus(w, http.StatusCreated, member)
	}
}
