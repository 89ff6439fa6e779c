package registration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/scrimbot/internal/common/clock"
	"github.com/KirkDiggler/scrimbot/internal/common/keylock"
	"github.com/KirkDiggler/scrimbot/internal/common/uuid"
	"github.com/KirkDiggler/scrimbot/internal/events"
	"github.com/KirkDiggler/scrimbot/internal/eventtime"
	"github.com/KirkDiggler/scrimbot/internal/models"
	"github.com/KirkDiggler/scrimbot/internal/platform"
	guildConfigRepo "github.com/KirkDiggler/scrimbot/internal/repositories/guild_config"
	sessionRepo "github.com/KirkDiggler/scrimbot/internal/repositories/session"
	"github.com/KirkDiggler/scrimbot/internal/roster"
	"github.com/KirkDiggler/scrimbot/internal/services/messaging"
	"github.com/KirkDiggler/scrimbot/internal/services/provisioner"
	"github.com/KirkDiggler/scrimbot/internal/services/reminder"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

// service implements the Service interface
type service struct {
	sessionRepo     sessionRepo.Repository
	guildConfigRepo guildConfigRepo.Repository
	platform        platform.Platform
	provisioner     provisioner.Service
	messaging       messaging.Service
	reminders       reminder.Service
	publisher       events.Publisher
	clock           clock.Clock
	uuid            uuid.UUID
	timeParser      *eventtime.Parser
	reminderLead    time.Duration
	pendingTeamTTL  time.Duration
	validate        *validator.Validate

	// locks serializes every read-modify-write of a session, keyed by session ID,
	// and session creation, keyed by guild and channel
	locks *keylock.KeyLock
}

// New creates a new registration service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.GuildConfigRepo == nil {
		return nil, ErrNilGuildConfigRepo
	}

	if cfg.Platform == nil {
		return nil, ErrNilPlatform
	}

	if cfg.Provisioner == nil {
		return nil, ErrNilProvisioner
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	if cfg.Reminders == nil {
		return nil, ErrNilReminders
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	publisher := cfg.Publisher
	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}

	timeParser := cfg.TimeParser
	if timeParser == nil {
		timeParser = eventtime.NewParser(eventtime.DefaultOffset)
	}

	lead := cfg.ReminderLead
	if lead <= 0 {
		lead = DefaultReminderLead
	}

	pendingTTL := cfg.PendingTeamTTL
	if pendingTTL <= 0 {
		pendingTTL = DefaultPendingTeamTTL
	}

	return &service{
		sessionRepo:     cfg.SessionRepo,
		guildConfigRepo: cfg.GuildConfigRepo,
		platform:        cfg.Platform,
		provisioner:     cfg.Provisioner,
		messaging:       cfg.Messaging,
		reminders:       cfg.Reminders,
		publisher:       publisher,
		clock:           cfg.Clock,
		uuid:            cfg.UUIDGenerator,
		timeParser:      timeParser,
		reminderLead:    lead,
		pendingTeamTTL:  pendingTTL,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
		locks:           keylock.New(),
	}, nil
}

func (s *service) now() time.Time {
	return s.clock.Now().UTC()
}

// loadSession maps the repository's not-found to ErrSessionNotFound
func (s *service) loadSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	return session, nil
}

func (s *service) saveSession(ctx context.Context, session *models.Session) error {
	session.UpdatedAt = s.now()
	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return fmt.Errorf("failed to save session %s: %w", session.ID, err)
	}
	return nil
}

// resolveSessionID returns sessionID, or the ID of the open session in the channel
func (s *service) resolveSessionID(ctx context.Context, sessionID, guildID, channelID string) (string, error) {
	if sessionID != "" {
		return sessionID, nil
	}

	if guildID == "" || channelID == "" {
		return "", ErrSessionNotFound
	}

	session, err := s.sessionRepo.GetSessionByChannel(ctx, &sessionRepo.GetSessionByChannelInput{
		GuildID:   guildID,
		ChannelID: channelID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return "", ErrSessionNotFound
		}
		return "", fmt.Errorf("failed to find session for channel %s: %w", channelID, err)
	}

	return session.ID, nil
}

// updateSession applies mutate under the session lock and saves when it reports a change
func (s *service) updateSession(ctx context.Context, sessionID string, mutate func(*models.Session) bool) error {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if !mutate(session) {
		return nil
	}

	return s.saveSession(ctx, session)
}

func (s *service) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithFields(log.Fields{
			"eventType": event.Type(),
			"error":     err,
		}).Warn("Failed to publish event")
	}
}

// CreateSession opens a registration session in a channel
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	guildConfig := &models.GuildConfig{}
	if input.GuildID != "" {
		loaded, err := s.guildConfigRepo.LoadGuildConfig(ctx, &guildConfigRepo.LoadGuildConfigInput{
			GuildID: input.GuildID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load guild config: %w", err)
		}
		guildConfig = loaded
	}

	settings := *input
	if settings.ChannelID == "" {
		settings.ChannelID = guildConfig.PostChannelID
	}
	if settings.AssignedRoleID == "" {
		settings.AssignedRoleID = guildConfig.TeamRoleID
	}
	if settings.RosterChannelID == "" {
		settings.RosterChannelID = guildConfig.RosterChannelID
	}
	if settings.RosterChannelID == "" {
		settings.RosterChannelID = settings.ChannelID
	}
	if settings.ModeratorRoleID == "" {
		settings.ModeratorRoleID = guildConfig.ModeratorRoleID
	}
	if settings.AccessMode == "" {
		settings.AccessMode = models.AccessModeRole
	}

	if err := s.validate.Struct(&settings); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return nil, newInvalidSessionError(validationErrors)
		}
		return nil, fmt.Errorf("failed to validate session settings: %w", err)
	}

	unlock := s.locks.Lock(fmt.Sprintf("create:%s:%s", settings.GuildID, settings.ChannelID))
	existing, err := s.sessionRepo.GetSessionByChannel(ctx, &sessionRepo.GetSessionByChannelInput{
		GuildID:   settings.GuildID,
		ChannelID: settings.ChannelID,
	})
	if err == nil && existing != nil && !existing.State.IsClosed() {
		unlock()
		return nil, ErrSessionAlreadyExists
	}
	if err != nil && !errors.Is(err, sessionRepo.ErrSessionNotFound) {
		unlock()
		return nil, fmt.Errorf("failed to check channel for sessions: %w", err)
	}

	now := s.now()
	session := &models.Session{
		ID:              uuid.Scoped(s.uuid, settings.GuildID),
		GuildID:         settings.GuildID,
		ChannelID:       settings.ChannelID,
		RosterChannelID: settings.RosterChannelID,
		TournamentName:  settings.TournamentName,
		TeamSize:        settings.TeamSize,
		MaxSlots:        settings.MaxSlots,
		AssignedRoleID:  settings.AssignedRoleID,
		ModeratorRoleID: settings.ModeratorRoleID,
		AccessMode:      settings.AccessMode,
		OrganizerID:     settings.OrganizerID,
		Roster:          []*models.Team{},
		State:           models.SessionStateCollecting,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session})
	unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	log.WithFields(log.Fields{
		"sessionID": session.ID,
		"guildID":   session.GuildID,
		"channelID": session.ChannelID,
		"teamSize":  session.TeamSize,
		"maxSlots":  session.MaxSlots,
	}).Info("Registration session created")

	s.announceOpened(ctx, session)

	return &CreateSessionOutput{
		Session: session,
	}, nil
}

func newInvalidSessionError(validationErrors validator.ValidationErrors) *InvalidSessionError {
	problems := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is required", fe.Field()))
		case "min":
			problems = append(problems, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "max":
			problems = append(problems, fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
		default:
			problems = append(problems, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return &InvalidSessionError{Problems: problems}
}

// CloseSession ends a session for good
func (s *service) CloseSession(ctx context.Context, input *CloseSessionInput) (*CloseSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrNilInput
	}

	unlock := s.locks.Lock(input.SessionID)
	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		unlock()
		if errors.Is(err, ErrSessionNotFound) {
			return &CloseSessionOutput{Rejection: ErrSessionNotFound}, nil
		}
		return nil, err
	}

	if input.GuildID != "" && session.GuildID != input.GuildID {
		unlock()
		return &CloseSessionOutput{Rejection: ErrSessionNotFound}, nil
	}

	if session.OrganizerID != input.RequesterID && !input.RequesterIsAdmin {
		unlock()
		return &CloseSessionOutput{Rejection: ErrNotOrganizer, Session: session}, nil
	}

	if session.State.IsClosed() {
		unlock()
		return &CloseSessionOutput{Rejection: roster.ErrSessionNotAccepting, Session: session}, nil
	}

	session.State = models.SessionStateClosed
	if err := s.saveSession(ctx, session); err != nil {
		unlock()
		return nil, err
	}
	s.cancelReminder(ctx, session.ID)
	unlock()

	s.afterClose(ctx, session, input.RequesterID)

	return &CloseSessionOutput{Session: session}, nil
}

// CloseGuildSessions closes every open session in a guild and deletes its configuration
func (s *service) CloseGuildSessions(ctx context.Context, input *CloseGuildSessionsInput) (*CloseGuildSessionsOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrNilInput
	}

	list, err := s.sessionRepo.ListSessionsByGuild(ctx, &sessionRepo.ListSessionsByGuildInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list guild sessions: %w", err)
	}

	output := &CloseGuildSessionsOutput{}
	for _, listed := range list.Sessions {
		closed, err := s.destroySession(ctx, listed.ID)
		if err != nil {
			log.WithFields(log.Fields{
				"sessionID": listed.ID,
				"error":     err,
			}).Error("Failed to remove session during guild cleanup")
			continue
		}
		if !closed {
			continue
		}

		s.publish(ctx, events.SessionClosed{
			GuildID:   input.GuildID,
			SessionID: listed.ID,
			ClosedBy:  "guild_removed",
			Timestamp: s.now(),
		})
		output.ClosedSessionIDs = append(output.ClosedSessionIDs, listed.ID)
	}

	if err := s.guildConfigRepo.DeleteGuildConfig(ctx, &guildConfigRepo.DeleteGuildConfigInput{
		GuildID: input.GuildID,
	}); err != nil {
		return output, fmt.Errorf("failed to delete guild config: %w", err)
	}

	log.WithFields(log.Fields{
		"guildID": input.GuildID,
		"closed":  len(output.ClosedSessionIDs),
	}).Info("Cleaned up guild")

	return output, nil
}

// destroySession deletes a session record outright and disarms its reminder.
// Nothing is left behind because the bot can no longer act in the guild.
func (s *service) destroySession(ctx context.Context, sessionID string) (bool, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		SessionID: session.ID,
	}); err != nil {
		return false, fmt.Errorf("failed to delete session %s: %w", session.ID, err)
	}
	s.cancelReminder(ctx, session.ID)

	return !session.State.IsClosed(), nil
}

// ListSessions returns summaries of a guild's open sessions
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrNilInput
	}

	list, err := s.sessionRepo.ListSessionsByGuild(ctx, &sessionRepo.ListSessionsByGuildInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	summaries := make([]*models.SessionSummary, 0, len(list.Sessions))
	for _, session := range list.Sessions {
		summaries = append(summaries, session.Summary())
	}

	return &ListSessionsOutput{
		Summaries: summaries,
	}, nil
}

// GetSession retrieves a session by ID
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrNilInput
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if input.GuildID != "" && session.GuildID != input.GuildID {
		return nil, ErrSessionNotFound
	}

	return &GetSessionOutput{
		Session: session,
	}, nil
}

// GetSessionByChannel retrieves the open session in a channel
func (s *service) GetSessionByChannel(ctx context.Context, input *GetSessionByChannelInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sessionID, err := s.resolveSessionID(ctx, "", input.GuildID, input.ChannelID)
	if err != nil {
		return nil, err
	}

	return s.GetSession(ctx, &GetSessionInput{SessionID: sessionID})
}

// GetTeam returns the team a member belongs to
func (s *service) GetTeam(ctx context.Context, input *GetTeamInput) (*GetTeamOutput, error) {
	if input == nil || input.MemberID == "" {
		return nil, ErrNilInput
	}

	sessionID, err := s.resolveSessionID(ctx, input.SessionID, input.GuildID, input.ChannelID)
	if err != nil {
		return nil, err
	}

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	team := session.TeamByMember(input.MemberID)
	if team == nil {
		return nil, roster.ErrTeamNotFound
	}

	return &GetTeamOutput{
		Session:   session,
		Team:      team,
		IsCaptain: team.CaptainID == input.MemberID,
	}, nil
}

// ConfigureGuild stores the defaults used for new sessions in a guild
func (s *service) ConfigureGuild(ctx context.Context, input *ConfigureGuildInput) (*ConfigureGuildOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrNilInput
	}

	cfg := &models.GuildConfig{GuildID: input.GuildID}
	if !input.Reset {
		current, err := s.guildConfigRepo.LoadGuildConfig(ctx, &guildConfigRepo.LoadGuildConfigInput{
			GuildID: input.GuildID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load guild config: %w", err)
		}
		cfg = current
		cfg.GuildID = input.GuildID
	}

	if input.TeamRoleID != "" {
		cfg.TeamRoleID = input.TeamRoleID
	}
	if input.PostChannelID != "" {
		cfg.PostChannelID = input.PostChannelID
	}
	if input.RosterChannelID != "" {
		cfg.RosterChannelID = input.RosterChannelID
	}
	if input.ModeratorRoleID != "" {
		cfg.ModeratorRoleID = input.ModeratorRoleID
	}

	if err := s.guildConfigRepo.SaveGuildConfig(ctx, &guildConfigRepo.SaveGuildConfigInput{
		Config: cfg,
	}); err != nil {
		return nil, fmt.Errorf("failed to save guild config: %w", err)
	}

	return &ConfigureGuildOutput{
		Config: cfg,
	}, nil
}
