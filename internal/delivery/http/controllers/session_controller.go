package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// CreateSessionRequest is the request body for POST /conferences/{conferenceID}/sessions
type CreateSessionRequest struct {
	Name              string `json:"name"`
	TypeOfSession     string `json:"type_of_session"`
	DurationMinutes   int    `json:"duration_minutes"`
	Date              string `json:"date"`       // YYYY-MM-DD
	StartTime         string `json:"start_time"` // HH:MM
	SpeakerName       string `json:"speaker_name"`
	SpeakerProfession string `json:"speaker_profession"`
}

// Validate implements Validator.
func (s CreateSessionRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, "name is required")
	}
	if s.DurationMinutes < 0 {
		errs = append(errs, "duration_minutes must not be negative")
	}
	return errs
}

type SessionController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService) *SessionController {
	return &SessionController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSession godoc
// @Summary Create a session under a conference
// @Description Create a session. Only the conference organizer may do this. Creation is idempotent by session name within the conference: repeats return the existing session with 200. Naming a speaker registers them and schedules the featured-speaker recompute.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param body body CreateSessionRequest true "Session data"
// @Success 201 {object} helpers.APIResponse "data contains the created session"
// @Success 200 {object} helpers.APIResponse "data contains the pre-existing session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	conferenceID := r.PathValue("conferenceID")
	if !uuidRegex.MatchString(conferenceID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid conferenceID")
		return
	}
	var req CreateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	sess, created, err := c.Service.CreateSession(r.Context(), profileID, &domain.CreateSessionInput{
		ConferenceID:      conferenceID,
		Name:              strings.TrimSpace(req.Name),
		TypeOfSession:     req.TypeOfSession,
		DurationMinutes:   req.DurationMinutes,
		Date:              req.Date,
		StartTime:         req.StartTime,
		SpeakerName:       strings.TrimSpace(req.SpeakerName),
		SpeakerProfession: strings.TrimSpace(req.SpeakerProfession),
	})
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, sess)
}

// ListConferenceSessions godoc
// @Summary List a conference's sessions
// @Description List all sessions of the conference, optionally narrowed by ?type=.
// @Tags sessions
// @Produce json
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param type query string false "Session type filter"
// @Success 200 {object} helpers.APIResponse "data contains the session list"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions [get]
func (c *SessionController) ListConferenceSessions(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if !uuidRegex.MatchString(conferenceID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid conferenceID")
		return
	}
	typeOfSession := r.URL.Query().Get("type")

	sessions, err := c.Service.ListConferenceSessions(r.Context(), conferenceID, typeOfSession)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListSessionsBySpeaker godoc
// @Summary List sessions by speaker
// @Description List every session attributed to the named speaker across all conferences, optionally narrowed by ?type=.
// @Tags sessions
// @Produce json
// @Param speaker query string true "Speaker full name"
// @Param type query string false "Session type filter"
// @Success 200 {object} helpers.APIResponse "data contains the session list"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions [get]
func (c *SessionController) ListSessionsBySpeaker(w http.ResponseWriter, r *http.Request) {
	speaker := strings.TrimSpace(r.URL.Query().Get("speaker"))
	if speaker == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing speaker")
		return
	}
	typeOfSession := r.URL.Query().Get("type")

	sessions, err := c.Service.ListSessionsBySpeaker(r.Context(), speaker, typeOfSession)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}
