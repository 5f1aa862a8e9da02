package controllers

import (
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// SaveProfileRequest is the request body for PUT /profile. Empty fields are
// left unchanged.
type SaveProfileRequest struct {
	DisplayName  string `json:"display_name"`
	TeeShirtSize string `json:"tee_shirt_size"`
}

// Validate implements Validator.
func (s SaveProfileRequest) Validate() []string {
	var errs []string
	if s.TeeShirtSize != "" && !domain.ValidTeeShirtSize(s.TeeShirtSize) {
		errs = append(errs, "invalid tee_shirt_size")
	}
	return errs
}

type ProfileController struct {
	Logger  *slog.Logger
	Service domain.ProfileService
}

func NewProfileController(logger *slog.Logger, svc domain.ProfileService) *ProfileController {
	return &ProfileController{
		Logger:  logger,
		Service: svc,
	}
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the profile"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /profile [get]
func (c *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	profile, err := c.Service.GetProfile(r.Context(), profileID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, profile)
}

// SaveProfile godoc
// @Summary Update the caller's profile
// @Description Update display name and tee shirt size. Empty fields are left unchanged.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SaveProfileRequest true "Profile fields"
// @Success 200 {object} helpers.APIResponse "data contains the updated profile"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /profile [put]
func (c *ProfileController) SaveProfile(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req SaveProfileRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	profile, err := c.Service.SaveProfile(r.Context(), profileID, req.DisplayName, req.TeeShirtSize)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, profile)
}
