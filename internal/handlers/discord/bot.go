package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/scrimbot/internal/roster"
	"github.com/KirkDiggler/scrimbot/internal/services/messaging"
	"github.com/KirkDiggler/scrimbot/internal/services/registration"
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Gateway intents the bot needs; message content is required to read free-text registrations
const intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsGuildMembers |
	discordgo.IntentsMessageContent

// moderatorPermissions marks authors whose channel messages are never treated as registrations
const moderatorPermissions = discordgo.PermissionAdministrator | discordgo.PermissionManageMessages

// Bot represents the Discord bot instance
type Bot struct {
	session             *discordgo.Session
	commands            map[string]CommandHandler
	commandIDs          map[string]string // Maps command name to command ID
	registrationService registration.Service
	messagingService    messaging.Service
	config              *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the Discord session, see NewSession
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	RegistrationService registration.Service
	MessagingService    messaging.Service

	// OnReady receives the bot's own user ID each time the gateway session becomes ready
	OnReady func(botUserID string)
}

// NewSession creates a Discord session with the intents the bot needs
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = intents

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.RegistrationService == nil {
		return nil, errors.New("registration service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	bot := &Bot{
		session:             cfg.Session,
		commands:            make(map[string]CommandHandler),
		commandIDs:          make(map[string]string),
		registrationService: cfg.RegistrationService,
		messagingService:    cfg.MessagingService,
		config:              cfg,
	}

	cfg.Session.AddHandler(bot.handleReady)
	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handleMessageCreate)
	cfg.Session.AddHandler(bot.handleGuildDelete)

	return bot, nil
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	scrimCmd := NewScrimCommand(b.registrationService, b.messagingService)
	if err := b.RegisterCommand(scrimCmd); err != nil {
		return fmt.Errorf("failed to register scrim command: %w", err)
	}

	log.Info("Bot is now running")
	return nil
}

// BotUserID returns the bot's own user ID once connected
func (b *Bot) BotUserID() string {
	if b.session.State == nil || b.session.State.User == nil {
		return ""
	}
	return b.session.State.User.ID
}

// Stop removes registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.applicationID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.WithFields(log.Fields{
				"command":   cmdName,
				"commandID": cmdID,
				"error":     err,
			}).Warn("Failed to delete command")
			continue
		}
		log.WithField("command", cmdName).Info("Deleted command")
	}

	return b.session.Close()
}

func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.BotUserID()
}

// RegisterCommand registers a command with Discord, in the configured guild or globally
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	fields := log.Fields{"command": cmd.GetName(), "guildID": b.config.GuildID}
	if b.config.GuildID == "" {
		fields["guildID"] = "global"
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.applicationID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	fields["commandID"] = createdCmd.ID
	log.WithFields(fields).Info("Registered command")

	return nil
}

// handleReady passes the bot identity on; it also runs again after a reconnect
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	if r.User == nil {
		return
	}

	log.WithFields(log.Fields{
		"userID":   r.User.ID,
		"username": r.User.Username,
	}).Info("Gateway session ready")

	if b.config.OnReady != nil {
		b.config.OnReady(r.User.ID)
	}
}

// handleInteraction routes slash commands, buttons and modals
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.WithFields(log.Fields{
					"command": name,
					"error":   err,
				}).Error("Error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.WithError(err).Error("Error handling component interaction")
		}
	case discordgo.InteractionModalSubmit:
		if err := b.handleModalSubmit(s, i); err != nil {
			log.WithError(err).Error("Error handling modal submit")
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, registration.ScheduleButtonPrefix):
		return b.handleScheduleButton(s, i, strings.TrimPrefix(customID, registration.ScheduleButtonPrefix))
	case strings.HasPrefix(customID, registration.TeamNameButtonPrefix):
		return RespondWithModal(s, i, teamNameModal(strings.TrimPrefix(customID, registration.TeamNameButtonPrefix)))
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

// handleScheduleButton opens the start time modal for organizers and delegates
func (b *Bot) handleScheduleButton(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) error {
	ctx := context.Background()

	output, err := b.registrationService.GetSession(ctx, &registration.GetSessionInput{
		SessionID: sessionID,
		GuildID:   i.GuildID,
	})
	if err != nil {
		if roster.IsRejection(err) {
			return respondRejection(ctx, b.messagingService, s, i, err, "")
		}
		return err
	}

	session := output.Session
	if !registration.IsDelegate(session, interactionUserID(i), interactionRoleIDs(i), isGuildAdmin(i)) {
		return respondRejection(ctx, b.messagingService, s, i, registration.ErrNotOrganizer, session.State)
	}

	return RespondWithModal(s, i, scheduleModal(session))
}

// handleModalSubmit handles modal forms
func (b *Bot) handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ModalSubmitData()

	switch {
	case strings.HasPrefix(data.CustomID, ScheduleModalPrefix):
		values := modalValues(data)
		return scheduleEvent(context.Background(), b.registrationService, b.messagingService, s, i,
			strings.TrimPrefix(data.CustomID, ScheduleModalPrefix),
			values[modalFieldStartTime], values[modalFieldDetails])
	case strings.HasPrefix(data.CustomID, TeamNameModalPrefix):
		return b.handleTeamNameSubmit(s, i, data)
	default:
		return RespondWithError(s, i, "Unknown form")
	}
}

// handleTeamNameSubmit registers a held member list under the submitted name
func (b *Bot) handleTeamNameSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) error {
	ctx := context.Background()

	output, err := completeTeamRegistration(ctx, b.registrationService, data, interactionUserID(i))
	if err != nil {
		log.WithError(err).Error("Failed to complete team registration")
		return RespondWithError(s, i, "Failed to register your team. Please try again.")
	}
	if !output.Accepted() {
		return respondRejection(ctx, b.messagingService, s, i, output.Rejection, sessionState(output.Session))
	}

	accepted, err := b.messagingService.GetRegistrationAcceptedMessage(ctx, &messaging.GetRegistrationAcceptedMessageInput{
		Session: output.Session,
		Team:    output.Team,
		Slot:    output.Slot,
	})
	if err != nil {
		return err
	}
	return RespondWithEmbed(s, i, renderAccepted(accepted), false)
}

// completeTeamRegistration reads the team name modal and submits it for the captain
func completeTeamRegistration(ctx context.Context, registrations registration.Service, data discordgo.ModalSubmitInteractionData, captainID string) (*registration.SubmitRegistrationOutput, error) {
	sessionID := strings.TrimPrefix(data.CustomID, TeamNameModalPrefix)
	if sessionID == "" || captainID == "" {
		return nil, errors.New("team name form is missing its session or captain")
	}

	return registrations.CompleteTeamRegistration(ctx, &registration.CompleteTeamRegistrationInput{
		SessionID: sessionID,
		CaptainID: captainID,
		TeamName:  strings.TrimSpace(modalValues(data)[modalFieldTeamName]),
	})
}

// handleMessageCreate treats messages in registration channels as team submissions
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	// Moderators talk in registration channels without being parsed
	if perms, err := s.State.UserChannelPermissions(m.Author.ID, m.ChannelID); err == nil && perms&moderatorPermissions != 0 {
		return
	}

	mentioned := make([]string, 0, len(m.Mentions))
	for _, user := range m.Mentions {
		if user != nil && !user.Bot {
			mentioned = append(mentioned, user.ID)
		}
	}

	ctx := context.Background()
	output, err := b.registrationService.HandleInboundMessage(ctx, &registration.HandleInboundMessageInput{
		GuildID:      m.GuildID,
		ChannelID:    m.ChannelID,
		AuthorID:     m.Author.ID,
		Content:      m.Content,
		MentionedIDs: mentioned,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"channelID": m.ChannelID,
			"authorID":  m.Author.ID,
			"error":     err,
		}).Error("Failed to handle registration message")
		b.reply(s, m, &discordgo.MessageEmbed{
			Title:       "Something Went Wrong",
			Description: "Your registration could not be processed. Please try again in a moment.",
			Color:       colorError,
		})
		return
	}
	if !output.Handled {
		return
	}

	if output.NeedsTeamName {
		prompt, err := b.messagingService.GetTeamNamePromptMessage(ctx, &messaging.GetTeamNamePromptMessageInput{
			Session:   output.Session,
			MemberIDs: output.MemberIDs,
			Expires:   registration.DefaultPendingTeamTTL,
		})
		if err != nil {
			log.WithError(err).Error("Failed to build team name prompt")
			return
		}
		embed, components := renderTeamNamePrompt(output.Session.ID, prompt)
		b.reply(s, m, embed, components...)
		return
	}

	if !output.Accepted() {
		explained, err := b.messagingService.GetRejectionMessage(ctx, &messaging.GetRejectionMessageInput{
			Err:   output.Rejection,
			State: sessionState(output.Session),
		})
		if err != nil {
			log.WithError(err).Error("Failed to build rejection message")
			return
		}
		b.reply(s, m, renderRejection(roster.KindOf(output.Rejection), explained))
		return
	}

	accepted, err := b.messagingService.GetRegistrationAcceptedMessage(ctx, &messaging.GetRegistrationAcceptedMessageInput{
		Session: output.Session,
		Team:    output.Team,
		Slot:    output.Slot,
	})
	if err != nil {
		log.WithError(err).Error("Failed to build accepted message")
		return
	}
	b.reply(s, m, renderAccepted(accepted))
}

func (b *Bot) reply(s *discordgo.Session, m *discordgo.MessageCreate, embed *discordgo.MessageEmbed, components ...discordgo.MessageComponent) {
	_, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
		Reference:  m.Reference(),
	})
	if err != nil {
		log.WithFields(log.Fields{
			"channelID": m.ChannelID,
			"error":     err,
		}).Warn("Failed to reply to registration message")
	}
}

// handleGuildDelete closes a guild's sessions when the bot is removed from it
func (b *Bot) handleGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	if g.Guild == nil || g.Unavailable {
		// An outage, not a removal
		return
	}

	output, err := b.registrationService.CloseGuildSessions(context.Background(), &registration.CloseGuildSessionsInput{
		GuildID: g.ID,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"guildID": g.ID,
			"error":   err,
		}).Error("Failed to clean up guild")
		return
	}

	log.WithFields(log.Fields{
		"guildID": g.ID,
		"closed":  len(output.ClosedSessionIDs),
	}).Info("Removed from guild")
}
