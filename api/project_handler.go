package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tidewatch/bluecarbon-backend/database"
	"github.com/tidewatch/bluecarbon-backend/errs"
	"github.com/tidewatch/bluecarbon-backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// getAllProjects retrieves all restoration projects
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.projectRepo.FindAll())
	}
}

// getProject retrieves a specific project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		project := h.projectRepo.FindByID(projectID)
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject validates the insert payload and stores a new project
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var insert models.InsertProject
		if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
			h.logger.Warn().Err(err).Msg("failed to decode project payload")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if err := insert.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := h.projectRepo.Add(insert)
		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

// updateProject merges a partial patch onto an existing project
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		var updates models.ProjectUpdate
		if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
			h.logger.Warn().Err(err).Msg("failed to decode project patch")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if err := updates.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := h.projectRepo.Update(projectID, updates)
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}
