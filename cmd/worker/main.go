package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"conferencecentral/config"
	"conferencecentral/internal/adapters/cache"
	emailadapter "conferencecentral/internal/adapters/email"
	"conferencecentral/internal/adapters/tasks"
	"conferencecentral/internal/domain"
	"conferencecentral/internal/repository/postgres"
	"conferencecentral/internal/services"
)

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

	conferenceRepo := postgres.NewConferenceRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)

	cacheStore := cache.NewRedisStore(redisClient)
	queue := tasks.NewRedisQueue(redisClient, cfg.TaskQueueKey)

	announcementService := services.NewAnnouncementService(conferenceRepo, sessionRepo, speakerRepo, cacheStore, logger)

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.Email.SESRegion,
			AccessKeyID:     cfg.Email.SESAccessKeyID,
			SecretAccessKey: cfg.Email.SESSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer(), logger)

	consumer := tasks.NewConsumer(queue, logger)
	consumer.Register(domain.TaskFeaturedSpeaker, func(ctx context.Context, params map[string]string) error {
		return announcementService.HandleFeaturedSpeaker(ctx,
			params[domain.TaskParamConferenceID],
			params[domain.TaskParamSpeakerName],
			params[domain.TaskParamSpeakerProfession],
		)
	})
	consumer.Register(domain.TaskConfirmationEmail, func(ctx context.Context, params map[string]string) error {
		email := params[domain.TaskParamEmail]
		if email == "" {
			return fmt.Errorf("%w: email param is required", domain.ErrInvalidInput)
		}
		return emailService.SendConferenceCreated(ctx, &domain.ConferenceCreatedEmailData{
			Email:          email,
			ConferenceName: params[domain.TaskParamConferenceName],
		})
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.AnnouncementCron, func() {
		runCtx, runCancel := context.WithTimeout(ctx, 30*time.Second)
		defer runCancel()
		if _, err := announcementService.RecomputeAnnouncement(runCtx); err != nil {
			logger.Error("announcement recompute failed", "err", err)
		}
	}); err != nil {
		logger.Error("invalid announcement schedule", "schedule", cfg.AnnouncementCron, "err", err)
		os.Exit(1)
	}
	scheduler.Start()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.Run(ctx)
	}()

	logger.Info("worker running", "queue", cfg.TaskQueueKey, "announcement_cron", cfg.AnnouncementCron)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	cancel()
	<-scheduler.Stop().Done()
	<-done
}
