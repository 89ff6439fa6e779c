package registration

import (
	"time"

	"github.com/KirkDiggler/scrimbot/internal/common/clock"
	"github.com/KirkDiggler/scrimbot/internal/common/uuid"
	"github.com/KirkDiggler/scrimbot/internal/events"
	"github.com/KirkDiggler/scrimbot/internal/eventtime"
	"github.com/KirkDiggler/scrimbot/internal/models"
	"github.com/KirkDiggler/scrimbot/internal/platform"
	guildConfigRepo "github.com/KirkDiggler/scrimbot/internal/repositories/guild_config"
	sessionRepo "github.com/KirkDiggler/scrimbot/internal/repositories/session"
	"github.com/KirkDiggler/scrimbot/internal/services/messaging"
	"github.com/KirkDiggler/scrimbot/internal/services/provisioner"
	"github.com/KirkDiggler/scrimbot/internal/services/reminder"
)

const (
	// DefaultReminderLead is how long before the start the reminder goes out
	DefaultReminderLead = 30 * time.Minute

	// ScheduleButtonPrefix prefixes the custom ID of the "Set event time" button
	ScheduleButtonPrefix = "scrim_schedule:"

	// TeamNameButtonPrefix prefixes the custom ID of the "Enter team name" button
	TeamNameButtonPrefix = "scrim_team_name:"

	// DefaultPendingTeamTTL is how long a mentioned member list waits for its team name
	DefaultPendingTeamTTL = 15 * time.Minute
)

// Config holds configuration for the registration service
type Config struct {
	// Repository dependencies
	SessionRepo     sessionRepo.Repository
	GuildConfigRepo guildConfigRepo.Repository

	// Service dependencies
	Platform    platform.Platform
	Provisioner provisioner.Service
	Messaging   messaging.Service
	Reminders   reminder.Service

	// Publisher receives domain events. Defaults to a no-op publisher.
	Publisher events.Publisher

	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// TimeParser reads organizer start times. Defaults to UTC+5:30.
	TimeParser *eventtime.Parser

	// ReminderLead defaults to DefaultReminderLead
	ReminderLead time.Duration

	// PendingTeamTTL defaults to DefaultPendingTeamTTL
	PendingTeamTTL time.Duration
}

// Outcome is either an accepted team or a user-facing rejection
type Outcome struct {
	// Team is set when the request was accepted
	Team *models.Team

	// Rejection explains why the request was refused; classify it with roster.KindOf
	Rejection error
}

// Accepted reports whether the request went through
func (o Outcome) Accepted() bool {
	return o.Rejection == nil
}

// CreateSessionInput contains parameters for opening a session
type CreateSessionInput struct {
	GuildID string `validate:"required"`

	// ChannelID defaults to the guild's post channel
	ChannelID string `validate:"required"`

	OrganizerID    string `validate:"required"`
	TournamentName string `validate:"required,max=100"`
	TeamSize       int    `validate:"min=1,max=20"`
	MaxSlots       int    `validate:"min=1,max=100"`

	// AssignedRoleID defaults to the guild's team role
	AssignedRoleID string

	// RosterChannelID defaults to the guild's roster channel, then ChannelID
	RosterChannelID string

	// ModeratorRoleID defaults to the guild's moderator role
	ModeratorRoleID string

	// AccessMode defaults to role-only
	AccessMode models.AccessMode `validate:"omitempty,oneof=role channel"`
}

// CreateSessionOutput contains the created session
type CreateSessionOutput struct {
	Session *models.Session
}

// HandleInboundMessageInput contains a channel message to consider as a registration
type HandleInboundMessageInput struct {
	GuildID   string
	ChannelID string
	AuthorID  string
	Content   string

	// MentionedIDs are the user mentions the platform resolved for the message
	MentionedIDs []string
}

// HandleInboundMessageOutput contains the result of a free-text registration
type HandleInboundMessageOutput struct {
	// Handled is false when the message was ignored: the channel has no session,
	// or the session is not collecting and the message is not a registration
	Handled bool

	Outcome

	// Session is the session after the attempt
	Session *models.Session

	// Slot is the 1-based position of an accepted team
	Slot int

	// BecameFull is true when this registration took the last slot
	BecameFull bool

	// NeedsTeamName is true when the message mentioned a valid member list
	// but had no team name line. The list is held for CompleteTeamRegistration;
	// Team and Rejection are both nil.
	NeedsTeamName bool

	// MemberIDs is the held member list, captain first
	MemberIDs []string
}

// SubmitRegistrationInput contains a structured registration
type SubmitRegistrationInput struct {
	// SessionID identifies the session. When empty, GuildID and ChannelID are used.
	SessionID string
	GuildID   string
	ChannelID string

	CaptainID string
	TeamName  string
	MemberIDs []string
}

// SubmitRegistrationOutput contains the result of a structured registration
type SubmitRegistrationOutput struct {
	Outcome
	Session    *models.Session
	Slot       int
	BecameFull bool
}

// CompleteTeamRegistrationInput names a team whose members were mentioned earlier
type CompleteTeamRegistrationInput struct {
	SessionID string
	CaptainID string
	TeamName  string
}

// WithdrawInput contains parameters for withdrawing a team
type WithdrawInput struct {
	SessionID string
	GuildID   string
	ChannelID string

	RequesterID string
}

// WithdrawOutput contains the result of a withdrawal
type WithdrawOutput struct {
	// Outcome.Team is the team that was removed
	Outcome
	Session *models.Session

	// Reopened is true when a full session started collecting again
	Reopened bool
}

// RenameTeamInput contains parameters for renaming a team
type RenameTeamInput struct {
	SessionID string
	GuildID   string
	ChannelID string

	RequesterID string
	NewName     string
}

// RenameTeamOutput contains the result of a rename
type RenameTeamOutput struct {
	Outcome
	Session *models.Session

	// PreviousName is the team name before the rename
	PreviousName string
}

// ScheduleEventInput contains parameters for setting the start time
type ScheduleEventInput struct {
	SessionID   string
	RequesterID string

	// RequesterRoleIDs are checked against the session moderator role
	RequesterRoleIDs []string

	// RequesterIsAdmin lets server administrators act as delegates
	RequesterIsAdmin bool

	// StartTime is wall-clock input in the configured offset
	StartTime string

	// Details is free text shown with the announcement
	Details string
}

// ScheduleEventOutput contains the result of scheduling
type ScheduleEventOutput struct {
	// Rejection is set when the schedule was refused and the session is unchanged
	Rejection error

	Session *models.Session

	// StartTime is the event start in UTC
	StartTime time.Time

	// LocalTime is StartTime rendered in the configured offset
	LocalTime string

	Rescheduled       bool
	ReminderScheduled bool
}

// CloseSessionInput contains parameters for closing a session
type CloseSessionInput struct {
	SessionID string

	// GuildID scopes the lookup; a session from another guild is not found
	GuildID string

	RequesterID      string
	RequesterIsAdmin bool
}

// CloseSessionOutput contains the result of closing a session
type CloseSessionOutput struct {
	Rejection error
	Session   *models.Session
}

// CloseGuildSessionsInput contains parameters for guild cleanup
type CloseGuildSessionsInput struct {
	GuildID string
}

// CloseGuildSessionsOutput lists what was closed
type CloseGuildSessionsOutput struct {
	ClosedSessionIDs []string
}

// ListSessionsInput contains parameters for listing sessions
type ListSessionsInput struct {
	GuildID string
}

// ListSessionsOutput contains the session summaries, oldest first
type ListSessionsOutput struct {
	Summaries []*models.SessionSummary
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID string

	// GuildID, when set, must match the session's guild
	GuildID string
}

// GetSessionByChannelInput contains parameters for retrieving a channel's session
type GetSessionByChannelInput struct {
	GuildID   string
	ChannelID string
}

// GetSessionOutput contains a session
type GetSessionOutput struct {
	Session *models.Session
}

// GetTeamInput contains parameters for finding a member's team
type GetTeamInput struct {
	SessionID string
	GuildID   string
	ChannelID string

	MemberID string
}

// GetTeamOutput contains the member's team
type GetTeamOutput struct {
	Session *models.Session
	Team    *models.Team

	// IsCaptain is true when the member captains the team
	IsCaptain bool
}

// ConfigureGuildInput contains the guild defaults to store. Empty fields keep
// their current value unless Reset is set.
type ConfigureGuildInput struct {
	GuildID         string
	TeamRoleID      string
	PostChannelID   string
	RosterChannelID string
	ModeratorRoleID string
	Reset           bool
}

// ConfigureGuildOutput contains the stored configuration
type ConfigureGuildOutput struct {
	Config *models.GuildConfig
}
