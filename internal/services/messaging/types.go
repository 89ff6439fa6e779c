package messaging

import (
	"math/rand"
	"time"

	"github.com/KirkDiggler/scrimbot/internal/models"
)

// GetRejectionMessageInput contains parameters for explaining a rejection
type GetRejectionMessageInput struct {
	// Err is the rejection returned by the registration service
	Err error

	// State is the session state at the time, if known
	State models.SessionState
}

// GetRejectionMessageOutput contains the explanation
type GetRejectionMessageOutput struct {
	Title   string
	Message string

	// ShowFormatHelp is true when the submission could not be read at all
	ShowFormatHelp bool
}

// GetRegistrationAcceptedMessageInput contains parameters for a confirmation
type GetRegistrationAcceptedMessageInput struct {
	Session *models.Session
	Team    *models.Team
	Slot    int
}

// GetRegistrationAcceptedMessageOutput contains the confirmation
type GetRegistrationAcceptedMessageOutput struct {
	Title   string
	Message string
}

// GetRosterMessageInput contains parameters for rendering a roster
type GetRosterMessageInput struct {
	Session *models.Session
}

// GetRosterMessageOutput contains the rendered roster
type GetRosterMessageOutput struct {
	Message string
}

// GetSessionOpenedMessageInput contains parameters for a new session announcement
type GetSessionOpenedMessageInput struct {
	Session *models.Session
}

// GetSessionOpenedMessageOutput contains the announcement
type GetSessionOpenedMessageOutput struct {
	Message string
}

// GetSlotsFilledMessageInput contains parameters for the full announcement
type GetSlotsFilledMessageInput struct {
	Session *models.Session
}

// GetSlotsFilledMessageOutput contains the full announcement and final roster
type GetSlotsFilledMessageOutput struct {
	Message string
}

// GetSlotReopenedMessageInput contains parameters for the reopen announcement
type GetSlotReopenedMessageInput struct {
	Session *models.Session

	// TeamName is the team that withdrew
	TeamName string
}

// GetSlotReopenedMessageOutput contains the reopen announcement
type GetSlotReopenedMessageOutput struct {
	Message string
}

// GetTeamNamePromptMessageInput contains a held member list
type GetTeamNamePromptMessageInput struct {
	Session   *models.Session
	MemberIDs []string

	// Expires is how long the member list is held
	Expires time.Duration
}

// GetTeamNamePromptMessageOutput contains the captain prompt
type GetTeamNamePromptMessageOutput struct {
	Title       string
	Message     string
	ButtonLabel string
}

// GetSchedulePromptMessageInput contains parameters for the organizer prompt
type GetSchedulePromptMessageInput struct {
	Session *models.Session
}

// GetSchedulePromptMessageOutput contains the organizer prompt
type GetSchedulePromptMessageOutput struct {
	Message     string
	ButtonLabel string
}

// GetScheduleAnnouncementMessageInput contains parameters for the schedule broadcast
type GetScheduleAnnouncementMessageInput struct {
	Session *models.Session

	// LocalTime is the start time as organizers typed it
	LocalTime string

	Rescheduled bool
}

// GetScheduleAnnouncementMessageOutput contains the schedule broadcast
type GetScheduleAnnouncementMessageOutput struct {
	// DirectMessage goes to each member
	DirectMessage string

	// ChannelMessage goes to the roster channel
	ChannelMessage string
}

// GetReminderMessageInput contains parameters for the pre-start reminder
type GetReminderMessageInput struct {
	Session   *models.Session
	LocalTime string
	Lead      time.Duration
}

// GetReminderMessageOutput contains the pre-start reminder
type GetReminderMessageOutput struct {
	DirectMessage  string
	ChannelMessage string
}

// GetSessionListMessageInput contains parameters for listing sessions
type GetSessionListMessageInput struct {
	Summaries []*models.SessionSummary
}

// GetSessionListMessageOutput contains the listing
type GetSessionListMessageOutput struct {
	Message string
}

// GetSessionClosedMessageInput contains parameters for the close announcement
type GetSessionClosedMessageInput struct {
	Session *models.Session
}

// GetSessionClosedMessageOutput contains the close announcement
type GetSessionClosedMessageOutput struct {
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Rand picks between message variants. Defaults to a time-seeded source.
	Rand *rand.Rand
}
