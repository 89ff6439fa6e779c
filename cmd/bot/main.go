package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/scrimbot/internal/common/clock"
	"github.com/KirkDiggler/scrimbot/internal/common/uuid"
	"github.com/KirkDiggler/scrimbot/internal/config"
	"github.com/KirkDiggler/scrimbot/internal/events"
	"github.com/KirkDiggler/scrimbot/internal/eventtime"
	"github.com/KirkDiggler/scrimbot/internal/handlers/discord"
	"github.com/KirkDiggler/scrimbot/internal/repositories/guild_config"
	"github.com/KirkDiggler/scrimbot/internal/repositories/session"
	"github.com/KirkDiggler/scrimbot/internal/services/messaging"
	"github.com/KirkDiggler/scrimbot/internal/services/provisioner"
	"github.com/KirkDiggler/scrimbot/internal/services/registration"
	"github.com/KirkDiggler/scrimbot/internal/services/reminder"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	if err := cfg.ConfigureLogging(); err != nil {
		log.WithError(err).Fatal("Failed to configure logging")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.WithError(err).Fatal("Failed to connect to Redis")
	}

	// Initialize repositories
	sessionRepo, err := session.NewRedis(&session.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create session repository")
	}

	guildConfigRepo, err := guild_config.NewRedis(&guild_config.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create guild config repository")
	}

	systemClock := &clock.DefaultClock{}
	uuidGenerator := uuid.New()

	// Event publishing is optional
	var publisher events.Publisher = events.NewNoopPublisher()
	var natsConn *nats.Conn
	if cfg.NATSURL != "" {
		natsConn, err = events.Connect(cfg.NATSURL)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to NATS")
		}

		publisher, err = events.NewNATSPublisher(&events.NATSConfig{
			Conn:  natsConn,
			Clock: systemClock,
			UUID:  uuidGenerator,
		})
		if err != nil {
			log.WithError(err).Fatal("Failed to create event publisher")
		}
	}

	// Discord session and the platform adapter the services talk through
	discordSession, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		log.WithError(err).Fatal("Failed to create Discord session")
	}

	discordPlatform, err := discord.NewPlatform(&discord.PlatformConfig{
		API: discordSession,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create Discord platform")
	}

	// Initialize services
	provisionerSvc, err := provisioner.New(&provisioner.Config{
		Platform: discordPlatform,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create provisioner")
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.WithError(err).Fatal("Failed to create messaging service")
	}

	reminderSvc, err := reminder.New(&reminder.Config{
		Clock: systemClock,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create reminder service")
	}

	registrationSvc, err := registration.New(&registration.Config{
		SessionRepo:     sessionRepo,
		GuildConfigRepo: guildConfigRepo,
		Platform:        discordPlatform,
		Provisioner:     provisionerSvc,
		Messaging:       messagingSvc,
		Reminders:       reminderSvc,
		Publisher:       publisher,
		Clock:           systemClock,
		UUIDGenerator:   uuidGenerator,
		TimeParser:      eventtime.NewParser(cfg.EventUTCOffset),
		ReminderLead:    cfg.ReminderLead,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create registration service")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:             discordSession,
		ApplicationID:       cfg.ApplicationID,
		GuildID:             cfg.GuildID,
		RegistrationService: registrationSvc,
		MessagingService:    messagingSvc,
		OnReady:             discordPlatform.SetBotUserID,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		log.WithError(err).Fatal("Failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Pending reminders are in memory only and do not survive a restart
	reminderSvc.Stop()

	if err := bot.Stop(); err != nil {
		log.WithError(err).Error("Error stopping bot")
	}

	if natsConn != nil {
		if err := natsConn.Drain(); err != nil {
			log.WithError(err).Warn("Failed to drain NATS connection")
		}
	}

	if err := redisClient.Close(); err != nil {
		log.WithError(err).Warn("Failed to close Redis client")
	}

	log.Info("Bot has been shut down")
}
