package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"conferencecentral/config"
	_ "conferencecentral/docs"
	authadapter "conferencecentral/internal/adapters/auth"
	"conferencecentral/internal/adapters/cache"
	"conferencecentral/internal/adapters/tasks"
	delivery "conferencecentral/internal/delivery/http"
	"conferencecentral/internal/delivery/http/controllers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/repository/postgres"
	"conferencecentral/internal/services"
)

// @title Conference Central API
// @version 1.0
// @description Conference management backend: conferences, sessions, speakers, wishlists and announcements.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Error("invalid redis url", "err", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	profileRepo := postgres.NewProfileRepository(db)
	conferenceRepo := postgres.NewConferenceRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)
	wishlistRepo := postgres.NewWishlistRepository(db)

	cacheStore := cache.NewRedisStore(redisClient)
	queue := tasks.NewRedisQueue(redisClient, cfg.TaskQueueKey)

	hasher := authadapter.NewBcryptHasher(0)
	issuer := authadapter.NewJWTIssuer(cfg.JWTSecret)
	verifier := authadapter.NewJWTVerifier(cfg.JWTSecret)

	authService := services.NewAuthService(profileRepo, hasher, issuer, cfg.JWTExpiry)
	profileService := services.NewProfileService(profileRepo)
	conferenceService := services.NewConferenceService(conferenceRepo, profileRepo, queue, logger)
	sessionService := services.NewSessionService(sessionRepo, speakerRepo, conferenceRepo, queue, logger)
	wishlistService := services.NewWishlistService(wishlistRepo, sessionRepo)
	announcementService := services.NewAnnouncementService(conferenceRepo, sessionRepo, speakerRepo, cacheStore, logger)

	mux := delivery.NewRouter(delivery.Controllers{
		Auth:         controllers.NewAuthController(logger, authService),
		Profile:      controllers.NewProfileController(logger, profileService),
		Conference:   controllers.NewConferenceController(logger, conferenceService),
		Session:      controllers.NewSessionController(logger, sessionService),
		Wishlist:     controllers.NewWishlistController(logger, wishlistService),
		Speaker:      controllers.NewSpeakerController(logger, speakerRepo),
		Announcement: controllers.NewAnnouncementController(logger, announcementService),
	}, verifier)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("api listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
