package controllers

import (
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

type WishlistController struct {
	Logger  *slog.Logger
	Service domain.WishlistService
}

func NewWishlistController(logger *slog.Logger, svc domain.WishlistService) *WishlistController {
	return &WishlistController{
		Logger:  logger,
		Service: svc,
	}
}

// AddToWishlist godoc
// @Summary Add a session to the caller's wishlist
// @Description Idempotent: wishlisting the same session twice returns the existing entry with 200.
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID (UUID)"
// @Success 201 {object} helpers.APIResponse "data contains the wishlist entry"
// @Success 200 {object} helpers.APIResponse "data contains the pre-existing entry"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wishlist/{sessionID} [post]
func (c *WishlistController) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	sessionID := r.PathValue("sessionID")
	if !uuidRegex.MatchString(sessionID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid sessionID")
		return
	}

	entry, created, err := c.Service.AddToWishlist(r.Context(), profileID, sessionID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, entry)
}

// ListWishlist godoc
// @Summary List the caller's wishlist
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the wishlist entries"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wishlist [get]
func (c *WishlistController) ListWishlist(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	entries, err := c.Service.ListWishlist(r.Context(), profileID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}
