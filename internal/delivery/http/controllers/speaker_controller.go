package controllers

import (
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/domain"
)

type SpeakerController struct {
	Logger *slog.Logger
	Repo   domain.SpeakerRepository
}

func NewSpeakerController(logger *slog.Logger, repo domain.SpeakerRepository) *SpeakerController {
	return &SpeakerController{
		Logger: logger,
		Repo:   repo,
	}
}

// ListSpeakers godoc
// @Summary List all speakers
// @Description List every registered speaker in full-name order.
// @Tags speakers
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the speaker list"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [get]
func (c *SpeakerController) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	speakers, err := c.Repo.List(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, speakers)
}
