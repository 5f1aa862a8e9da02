package controllers

import (
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/domain"
)

// AnnouncementResponse carries a cached announcement text. Message is the
// empty string when the cache slot is unset.
type AnnouncementResponse struct {
	Message string `json:"message"`
}

type AnnouncementController struct {
	Logger  *slog.Logger
	Service domain.AnnouncementService
}

func NewAnnouncementController(logger *slog.Logger, svc domain.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		Logger:  logger,
		Service: svc,
	}
}

// GetAnnouncement godoc
// @Summary Get the nearly-sold-out announcement
// @Description Return the cached announcement listing nearly-sold-out conferences. Empty message when none qualify.
// @Tags announcements
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains {message}"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /announcements [get]
func (c *AnnouncementController) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	msg, err := c.Service.GetAnnouncement(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, AnnouncementResponse{Message: msg})
}

// GetFeaturedSpeaker godoc
// @Summary Get the featured-speaker notice
// @Description Return the cached featured-speaker notice. Empty message when no speaker has been featured yet.
// @Tags announcements
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains {message}"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /announcements/featured-speaker [get]
func (c *AnnouncementController) GetFeaturedSpeaker(w http.ResponseWriter, r *http.Request) {
	msg, err := c.Service.GetFeaturedSpeaker(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, AnnouncementResponse{Message: msg})
}
