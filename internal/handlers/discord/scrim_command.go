package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/scrimbot/internal/models"
	"github.com/KirkDiggler/scrimbot/internal/parser"
	"github.com/KirkDiggler/scrimbot/internal/roster"
	"github.com/KirkDiggler/scrimbot/internal/services/messaging"
	"github.com/KirkDiggler/scrimbot/internal/services/registration"
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// ScrimCommand handles the /scrim command
type ScrimCommand struct {
	BaseCommand
	registration registration.Service
	messaging    messaging.Service
}

type optionMap map[string]*discordgo.ApplicationCommandInteractionDataOption

func minValue(v float64) *float64 {
	return &v
}

// NewScrimCommand creates a new scrim command handler
func NewScrimCommand(registrationService registration.Service, messagingService messaging.Service) *ScrimCommand {
	return &ScrimCommand{
		BaseCommand: BaseCommand{
			Name:        "scrim",
			Description: "Team registration for scrims and tournaments",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Open team registration in a channel",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Tournament name", Required: true, MaxLength: 100},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "team_size", Description: "Players per team, captain included", Required: true, MinValue: minValue(1), MaxValue: 20},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "max_slots", Description: "Number of teams", Required: true, MinValue: minValue(1), MaxValue: 100},
						{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "Registration channel (defaults to the configured post channel, then this one)"},
						{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "Role given to registered players"},
						{Type: discordgo.ApplicationCommandOptionChannel, Name: "roster_channel", Description: "Where confirmed teams are announced"},
						{Type: discordgo.ApplicationCommandOptionRole, Name: "moderator_role", Description: "Role that may schedule the event"},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "access",
							Description: "Also open the registration channel to each registered player",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Role only", Value: string(models.AccessModeRole)},
								{Name: "Role and channel", Value: string(models.AccessModeChannel)},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List open registration sessions",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "teams",
					Description: "Show the registered teams",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "session_id", Description: "Session ID (defaults to this channel's session)"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "close",
					Description: "Close a registration session",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "session_id", Description: "Session ID (defaults to this channel's session)"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "schedule",
					Description: "Set the event start time once every slot is filled",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "start_time", Description: "YYYY-MM-DD HH:MM (IST)", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "details", Description: "Map, lobby or rules"},
						{Type: discordgo.ApplicationCommandOptionString, Name: "session_id", Description: "Session ID (defaults to this channel's session)"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "register",
					Description: "Register your team in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "team_name", Description: "Team name", Required: true, MaxLength: 32},
						{Type: discordgo.ApplicationCommandOptionString, Name: "members", Description: "Mention your teammates (you are added automatically)", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "withdraw",
					Description: "Withdraw your team and free its slot",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rename",
					Description: "Change your team name",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "new_name", Description: "New team name", Required: true, MaxLength: 32},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "myteam",
					Description: "Show the team you are registered with",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "config",
					Description: "Set server defaults for new sessions",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionRole, Name: "team_role", Description: "Role given to registered players"},
						{Type: discordgo.ApplicationCommandOptionChannel, Name: "post_channel", Description: "Default registration channel"},
						{Type: discordgo.ApplicationCommandOptionChannel, Name: "roster_channel", Description: "Where confirmed teams are announced"},
						{Type: discordgo.ApplicationCommandOptionRole, Name: "moderator_role", Description: "Role that may schedule events"},
						{Type: discordgo.ApplicationCommandOptionBoolean, Name: "reset", Description: "Clear settings not given in this command"},
					},
				},
			},
		},
		registration: registrationService,
		messaging:    messagingService,
	}
}

// Handle processes a Discord interaction for the scrim command
func (c *ScrimCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	if i.GuildID == "" {
		return RespondWithEphemeralMessage(s, i, "Scrim commands only work inside a server.")
	}

	sub := data.Options[0]
	options := make(optionMap, len(sub.Options))
	for _, opt := range sub.Options {
		options[opt.Name] = opt
	}

	ctx := context.Background()

	switch sub.Name {
	case "create":
		return c.handleCreate(ctx, s, i, options)
	case "list":
		return c.handleList(ctx, s, i)
	case "teams":
		return c.handleTeams(ctx, s, i, options)
	case "close":
		return c.handleClose(ctx, s, i, options)
	case "schedule":
		return c.handleSchedule(ctx, s, i, options)
	case "register":
		return c.handleRegister(ctx, s, i, options)
	case "withdraw":
		return c.handleWithdraw(ctx, s, i)
	case "rename":
		return c.handleRename(ctx, s, i, options)
	case "myteam":
		return c.handleMyTeam(ctx, s, i)
	case "config":
		return c.handleConfig(ctx, s, i, options)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *ScrimCommand) handleCreate(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options optionMap) error {
	if !isGuildAdmin(i) {
		return RespondWithError(s, i, "You need the Manage Server permission to open registration.")
	}

	input := &registration.CreateSessionInput{
		GuildID:         i.GuildID,
		OrganizerID:     interactionUserID(i),
		TournamentName:  options.getString("name"),
		TeamSize:        int(options.getInt("team_size")),
		MaxSlots:        int(options.getInt("max_slots")),
		ChannelID:       options.channelID("channel"),
		AssignedRoleID:  options.roleID("role"),
		RosterChannelID: options.channelID("roster_channel"),
		ModeratorRoleID: options.roleID("moderator_role"),
		AccessMode:      models.AccessMode(options.getString("access")),
	}

	output, err := c.registration.CreateSession(ctx, input)
	if errors.Is(err, registration.ErrSessionAlreadyExists) {
		return c.respondRejection(ctx, s, i, err, "")
	}
	var invalid *registration.InvalidSessionError
	if errors.As(err, &invalid) && input.ChannelID == "" {
		// No configured post channel; fall back to the channel the command ran in
		input.ChannelID = i.ChannelID
		output, err = c.registration.CreateSession(ctx, input)
	}
	if err != nil {
		if errors.As(err, &invalid) || errors.Is(err, registration.ErrSessionAlreadyExists) {
			return c.respondRejection(ctx, s, i, err, "")
		}
		log.WithError(err).Error("Failed to create session")
		return RespondWithError(s, i, "Failed to open registration. Please try again.")
	}

	session := output.Session
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Registration for **%s** is open in %s (session `%s`).",
		session.TournamentName, messaging.ChannelMention(session.ChannelID), session.ID))
}

func (c *ScrimCommand) handleList(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.registration.ListSessions(ctx, &registration.ListSessionsInput{GuildID: i.GuildID})
	if err != nil {
		log.WithError(err).Error("Failed to list sessions")
		return RespondWithError(s, i, "Failed to list sessions.")
	}

	listing, err := c.messaging.GetSessionListMessage(ctx, &messaging.GetSessionListMessageInput{Summaries: output.Summaries})
	if err != nil {
		return err
	}

	return RespondWithEphemeralMessage(s, i, listing.Message)
}

func (c *ScrimCommand) handleTeams(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options optionMap) error {
	session, err := c.lookupSession(ctx, i, options.getString("session_id"))
	if err != nil {
		return c.respondLookupError(ctx, s, i, err)
	}

	rendered, err := c.messaging.GetRosterMessage(ctx, &messaging.GetRosterMessageInput{Session: session})
	if err != nil {
		return err
	}

	return RespondWithEmbed(s, i, renderRoster(session, rendered.Message), true)
}

func (c *ScrimCommand) handleClose(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options optionMap) error {
	session, err := c.lookupSession(ctx, i, options.getString("session_id"))
	if err != nil {
		return c.respondLookupError(ctx, s, i, err)
	}

	output, err := c.registration.CloseSession(ctx, &registration.CloseSessionInput{
		SessionID:        session.ID,
		GuildID:          i.GuildID,
		RequesterID:      interactionUserID(i),
		RequesterIsAdmin: isGuildAdmin(i),
	})
	if err != nil {
		log.WithError(err).Error("Failed to close session")
		return RespondWithError(s, i, "Failed to close the session.")
	}
	if output.Rejection != nil {
		return c.respondRejection(ctx, s, i, output.Rejection, session.State)
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Closed **%s**.", session.TournamentName))
}

func (c *ScrimCommand) handleSchedule(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options optionMap) error {
	session, err := c.lookupSession(ctx, i, options.getString("session_id"))
	if err != nil {
		return c.respondLookupError(ctx, s, i, err)
	}

	return scheduleEvent(ctx, c.registration, c.messaging, s, i, session.ID, options.getString("start_time"), options.getString("details"))
}

func (c *ScrimCommand) handleRegister(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options optionMap) error {
	output, err := c.registration.SubmitRegistration(ctx, &registration.SubmitRegistrationInput{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		CaptainID: interactionUserID(i),
		TeamName:  options.getString("team_name"),
		MemberIDs: parser.ExtractMentions(options.getString("members")),
	})
	if err != nil {
		log.WithError(err).Error("Failed to submit registration")
		return RespondWithError(s, i, "Failed to register your team. Please try again.")
	}
	if !output.Accepted() {
		return c.respondRejection(ctx, s, i, output.Rejection, sessionState(output.Session))
	}

	accepted, err := c.messaging.GetRegistrationAcceptedMessage(ctx, &messaging.GetRegistrationAcceptedMessageInput{
		Session: output.Session,
		Team:    output.Team,
		Slot:    output.Slot,
	})
	if err != nil {
		return err
	}

	return RespondWithEmbed(s, i, renderAccepted(accepted), false)
}

func (c *ScrimCommand) handleWithdraw(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.registration.Withdraw(ctx, &registration.WithdrawInput{
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		RequesterID: interactionUserID(i),
	})
	if err != nil {
		log.WithError(err).Error("Failed to withdraw team")
		return RespondWithError(s, i, "Failed to withdraw your team. Please try again.")
	}
	if !output.Accepted() {
		return c.respondRejection(ctx, s, i, output.Rejection, sessionState(output.Session))
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("**%s** has withdrawn and its slot is free.", output.Team.Name))
}

func (c *ScrimCommand) handleRename(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options optionMap) error {
	output, err := c.registration.RenameTeam(ctx, &registration.RenameTeamInput{
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		RequesterID: interactionUserID(i),
		NewName:     options.getString("new_name"),
	})
	if err != nil {
		log.WithError(err).Error("Failed to rename team")
		return RespondWithError(s, i, "Failed to rename your team. Please try again.")
	}
	if !output.Accepted() {
		return c.respondRejection(ctx, s, i, output.Rejection, sessionState(output.Session))
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("**%s** is now **%s**.", output.PreviousName, output.Team.Name))
}

func (c *ScrimCommand) handleMyTeam(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.registration.GetTeam(ctx, &registration.GetTeamInput{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		MemberID:  interactionUserID(i),
	})
	if err != nil {
		return c.respondLookupError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, renderTeam(output.Session, output.Team, output.IsCaptain), true)
}

func (c *ScrimCommand) handleConfig(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options optionMap) error {
	if !isGuildAdmin(i) {
		return RespondWithError(s, i, "You need the Manage Server permission to change scrim settings.")
	}

	output, err := c.registration.ConfigureGuild(ctx, &registration.ConfigureGuildInput{
		GuildID:         i.GuildID,
		TeamRoleID:      options.roleID("team_role"),
		PostChannelID:   options.channelID("post_channel"),
		RosterChannelID: options.channelID("roster_channel"),
		ModeratorRoleID: options.roleID("moderator_role"),
		Reset:           options.getBool("reset"),
	})
	if err != nil {
		log.WithError(err).Error("Failed to configure guild")
		return RespondWithError(s, i, "Failed to save settings.")
	}

	cfg := output.Config
	return RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title: "Scrim settings",
		Color: colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Team role", Value: roleOrNone(cfg.TeamRoleID), Inline: true},
			{Name: "Moderator role", Value: roleOrNone(cfg.ModeratorRoleID), Inline: true},
			{Name: "Post channel", Value: channelOrNone(cfg.PostChannelID), Inline: true},
			{Name: "Roster channel", Value: channelOrNone(cfg.RosterChannelID), Inline: true},
		},
	}, true)
}

// lookupSession finds a session by ID within the guild, or the session in the current channel
func (c *ScrimCommand) lookupSession(ctx context.Context, i *discordgo.InteractionCreate, sessionID string) (*models.Session, error) {
	if sessionID != "" {
		output, err := c.registration.GetSession(ctx, &registration.GetSessionInput{
			SessionID: sessionID,
			GuildID:   i.GuildID,
		})
		if err != nil {
			return nil, err
		}
		return output.Session, nil
	}

	output, err := c.registration.GetSessionByChannel(ctx, &registration.GetSessionByChannelInput{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return nil, err
	}
	return output.Session, nil
}

func (c *ScrimCommand) respondLookupError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	if roster.IsRejection(err) {
		return c.respondRejection(ctx, s, i, err, "")
	}
	log.WithError(err).Error("Failed to look up session")
	return RespondWithError(s, i, "Something went wrong. Please try again.")
}

func (c *ScrimCommand) respondRejection(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, rejection error, state models.SessionState) error {
	return respondRejection(ctx, c.messaging, s, i, rejection, state)
}

// respondRejection explains a rejection to the invoking user only
func respondRejection(ctx context.Context, messages messaging.Service, s *discordgo.Session, i *discordgo.InteractionCreate, rejection error, state models.SessionState) error {
	explained, err := messages.GetRejectionMessage(ctx, &messaging.GetRejectionMessageInput{
		Err:   rejection,
		State: state,
	})
	if err != nil {
		return err
	}
	return RespondWithEmbed(s, i, renderRejection(roster.KindOf(rejection), explained), true)
}

// scheduleEvent runs a schedule request from either the slash command or the modal
func scheduleEvent(ctx context.Context, registrations registration.Service, messages messaging.Service, s *discordgo.Session, i *discordgo.InteractionCreate, sessionID, startTime, details string) error {
	output, err := registrations.ScheduleEvent(ctx, &registration.ScheduleEventInput{
		SessionID:        sessionID,
		RequesterID:      interactionUserID(i),
		RequesterRoleIDs: interactionRoleIDs(i),
		RequesterIsAdmin: isGuildAdmin(i),
		StartTime:        startTime,
		Details:          details,
	})
	if err != nil {
		log.WithError(err).Error("Failed to schedule event")
		return RespondWithError(s, i, "Failed to schedule the event. Please try again.")
	}
	if output.Rejection != nil {
		return respondRejection(ctx, messages, s, i, output.Rejection, sessionState(output.Session))
	}

	verb := "Scheduled"
	if output.Rescheduled {
		verb = "Rescheduled"
	}
	message := fmt.Sprintf("%s **%s** for **%s IST**. Every player has been notified.", verb, output.Session.TournamentName, output.LocalTime)
	if !output.ReminderScheduled {
		message += " The start is too close for a reminder."
	}
	return RespondWithEphemeralMessage(s, i, message)
}

func sessionState(session *models.Session) models.SessionState {
	if session == nil {
		return ""
	}
	return session.State
}

func (o optionMap) getString(name string) string {
	if opt, ok := o[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func (o optionMap) getInt(name string) int64 {
	if opt, ok := o[name]; ok {
		return opt.IntValue()
	}
	return 0
}

func (o optionMap) getBool(name string) bool {
	if opt, ok := o[name]; ok {
		return opt.BoolValue()
	}
	return false
}

func (o optionMap) channelID(name string) string {
	if opt, ok := o[name]; ok {
		if id, ok := opt.Value.(string); ok {
			return id
		}
	}
	return ""
}

func (o optionMap) roleID(name string) string {
	return o.channelID(name)
}

func roleOrNone(id string) string {
	if id == "" {
		return "not set"
	}
	return fmt.Sprintf("<@&%s>", id)
}

func channelOrNone(id string) string {
	if id == "" {
		return "not set"
	}
	return messaging.ChannelMention(id)
}
