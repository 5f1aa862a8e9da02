package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

const dateLayout = "2006-01-02"

// CreateConferenceRequest is the request body for POST /conferences
type CreateConferenceRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	City         string   `json:"city"`
	Topics       []string `json:"topics"`
	MaxAttendees int      `json:"max_attendees"`
	StartDate    string   `json:"start_date"` // YYYY-MM-DD
	EndDate      string   `json:"end_date"`   // YYYY-MM-DD
}

// Validate implements Validator.
func (c CreateConferenceRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if c.MaxAttendees < 0 {
		errs = append(errs, "max_attendees must not be negative")
	}
	if c.StartDate != "" {
		if _, err := time.Parse(dateLayout, c.StartDate); err != nil {
			errs = append(errs, "start_date must be YYYY-MM-DD")
		}
	}
	if c.EndDate != "" {
		if _, err := time.Parse(dateLayout, c.EndDate); err != nil {
			errs = append(errs, "end_date must be YYYY-MM-DD")
		}
	}
	return errs
}

// UpdateConferenceRequest is the request body for PUT /conferences/{conferenceID}.
// Omitted fields are left unchanged.
type UpdateConferenceRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	City         *string  `json:"city"`
	Topics       []string `json:"topics"`
	MaxAttendees *int     `json:"max_attendees"`
	StartDate    *string  `json:"start_date"` // YYYY-MM-DD
	EndDate      *string  `json:"end_date"`   // YYYY-MM-DD
}

// Validate implements Validator.
func (c UpdateConferenceRequest) Validate() []string {
	var errs []string
	if c.Name != nil && strings.TrimSpace(*c.Name) == "" {
		errs = append(errs, "name must not be empty")
	}
	if c.MaxAttendees != nil && *c.MaxAttendees < 0 {
		errs = append(errs, "max_attendees must not be negative")
	}
	if c.StartDate != nil && *c.StartDate != "" {
		if _, err := time.Parse(dateLayout, *c.StartDate); err != nil {
			errs = append(errs, "start_date must be YYYY-MM-DD")
		}
	}
	if c.EndDate != nil && *c.EndDate != "" {
		if _, err := time.Parse(dateLayout, *c.EndDate); err != nil {
			errs = append(errs, "end_date must be YYYY-MM-DD")
		}
	}
	return errs
}

// QueryFilter is one filter clause of a conference query.
type QueryFilter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// QueryConferencesRequest is the request body for POST /conferences/query
type QueryConferencesRequest struct {
	Filters []QueryFilter `json:"filters"`
}

// Validate implements Validator.
func (q QueryConferencesRequest) Validate() []string {
	var errs []string
	for _, f := range q.Filters {
		if strings.TrimSpace(f.Field) == "" {
			errs = append(errs, "filter field is required")
		}
		if strings.TrimSpace(f.Operator) == "" {
			errs = append(errs, "filter operator is required")
		}
	}
	return errs
}

// RegistrationResponse reports the outcome of a register/unregister call.
type RegistrationResponse struct {
	Result bool `json:"result"`
}

type ConferenceController struct {
	Logger  *slog.Logger
	Service domain.ConferenceService
}

func NewConferenceController(logger *slog.Logger, svc domain.ConferenceService) *ConferenceController {
	return &ConferenceController{
		Logger:  logger,
		Service: svc,
	}
}

func parseDatePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// CreateConference godoc
// @Summary Create a conference
// @Description Create a conference owned by the caller. Missing city and topics get defaults; seats start at max_attendees; month is derived from start_date.
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateConferenceRequest true "Conference data"
// @Success 201 {object} helpers.APIResponse "data contains the created conference"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences [post]
func (c *ConferenceController) CreateConference(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req CreateConferenceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	now := time.Now().UTC()
	conf := domain.NewConference(profileID, strings.TrimSpace(req.Name), now, now)
	conf.Description = req.Description
	conf.City = req.City
	conf.Topics = req.Topics
	conf.MaxAttendees = req.MaxAttendees
	conf.StartDate = parseDatePtr(req.StartDate)
	conf.EndDate = parseDatePtr(req.EndDate)

	created, err := c.Service.CreateConference(r.Context(), profileID, conf)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// GetConference godoc
// @Summary Get a conference
// @Tags conferences
// @Produce json
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the conference"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID} [get]
func (c *ConferenceController) GetConference(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	if !uuidRegex.MatchString(conferenceID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid conferenceID")
		return
	}
	conf, err := c.Service.GetConference(r.Context(), conferenceID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, conf)
}

// UpdateConference godoc
// @Summary Update a conference
// @Description Update a conference the caller organizes. Omitted fields are left unchanged; shrinking max_attendees preserves taken seats.
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param body body UpdateConferenceRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated conference"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID} [put]
func (c *ConferenceController) UpdateConference(w http.ResponseWriter, r *http.Request) {
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
	var req UpdateConferenceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	upd := &domain.ConferenceUpdate{
		Name:         req.Name,
		Description:  req.Description,
		City:         req.City,
		Topics:       req.Topics,
		MaxAttendees: req.MaxAttendees,
	}
	if req.StartDate != nil {
		upd.StartDate = parseDatePtr(*req.StartDate)
	}
	if req.EndDate != nil {
		upd.EndDate = parseDatePtr(*req.EndDate)
	}

	conf, err := c.Service.UpdateConference(r.Context(), profileID, conferenceID, upd)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, conf)
}

// ListCreated godoc
// @Summary List conferences organized by the caller
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the conference list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/created [get]
func (c *ConferenceController) ListCreated(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	confs, err := c.Service.ListConferencesCreated(r.Context(), profileID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, confs)
}

// ListAttending godoc
// @Summary List conferences the caller is registered for
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the conference list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/attending [get]
func (c *ConferenceController) ListAttending(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	confs, err := c.Service.ListConferencesToAttend(r.Context(), profileID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, confs)
}

// QueryConferences godoc
// @Summary Query conferences with filters
// @Description Filter conferences by CITY, TOPIC, MONTH or MAX_ATTENDEES using EQ, GT, GTEQ, LT, LTEQ or NE. Inequality operators are allowed on at most one field.
// @Tags conferences
// @Accept json
// @Produce json
// @Param body body QueryConferencesRequest true "Filter clauses"
// @Success 200 {object} helpers.APIResponse "data contains the matching conferences"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/query [post]
func (c *ConferenceController) QueryConferences(w http.ResponseWriter, r *http.Request) {
	var req QueryConferencesRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	filters := make([]domain.Filter, 0, len(req.Filters))
	for _, f := range req.Filters {
		filters = append(filters, domain.Filter{
			Field:    f.Field,
			Operator: f.Operator,
			Value:    f.Value,
		})
	}

	confs, err := c.Service.QueryConferences(r.Context(), filters)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, confs)
}

// Register godoc
// @Summary Register for a conference
// @Description Take a seat at the conference. Fails with 409 when sold out or already registered.
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains {result: true}"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/registration [post]
func (c *ConferenceController) Register(w http.ResponseWriter, r *http.Request) {
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
	result, err := c.Service.RegisterForConference(r.Context(), profileID, conferenceID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationResponse{Result: result})
}

// Unregister godoc
// @Summary Unregister from a conference
// @Description Give the seat back. Returns {result: false} when the caller was not registered.
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains {result: bool}"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/registration [delete]
func (c *ConferenceController) Unregister(w http.ResponseWriter, r *http.Request) {
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
	result, err := c.Service.UnregisterFromConference(r.Context(), profileID, conferenceID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationResponse{Result: result})
}
