package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"conferencecentral/internal/delivery/http/controllers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// Controllers bundles the route handlers wired by NewRouter.
type Controllers struct {
	Auth         *controllers.AuthController
	Profile      *controllers.ProfileController
	Conference   *controllers.ConferenceController
	Session      *controllers.SessionController
	Wishlist     *controllers.WishlistController
	Speaker      *controllers.SpeakerController
	Announcement *controllers.AnnouncementController
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(c Controllers, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Profile
	mux.HandleFunc("GET /profile", auth(c.Profile.GetProfile))
	mux.HandleFunc("PUT /profile", auth(c.Profile.SaveProfile))

	// Conferences
	mux.HandleFunc("POST /conferences", auth(c.Conference.CreateConference))
	mux.HandleFunc("POST /conferences/query", c.Conference.QueryConferences)
	mux.HandleFunc("GET /conferences/created", auth(c.Conference.ListCreated))
	mux.HandleFunc("GET /conferences/attending", auth(c.Conference.ListAttending))
	mux.HandleFunc("GET /conferences/{conferenceID}", c.Conference.GetConference)
	mux.HandleFunc("PUT /conferences/{conferenceID}", auth(c.Conference.UpdateConference))
	mux.HandleFunc("POST /conferences/{conferenceID}/registration", auth(c.Conference.Register))
	mux.HandleFunc("DELETE /conferences/{conferenceID}/registration", auth(c.Conference.Unregister))

	// Sessions
	mux.HandleFunc("POST /conferences/{conferenceID}/sessions", auth(c.Session.CreateSession))
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions", c.Session.ListConferenceSessions)
	mux.HandleFunc("GET /sessions", c.Session.ListSessionsBySpeaker)

	// Speakers
	mux.HandleFunc("GET /speakers", c.Speaker.ListSpeakers)

	// Wishlist
	mux.HandleFunc("GET /wishlist", auth(c.Wishlist.ListWishlist))
	mux.HandleFunc("POST /wishlist/{sessionID}", auth(c.Wishlist.AddToWishlist))

	// Announcements
	mux.HandleFunc("GET /announcements", c.Announcement.GetAnnouncement)
	mux.HandleFunc("GET /announcements/featured-speaker", c.Announcement.GetFeaturedSpeaker)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
