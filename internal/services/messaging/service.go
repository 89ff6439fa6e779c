package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/scrimbot/internal/eventtime"
	"github.com/KirkDiggler/scrimbot/internal/models"
	"github.com/KirkDiggler/scrimbot/internal/parser"
	"github.com/KirkDiggler/scrimbot/internal/roster"
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var r *rand.Rand
	if config != nil {
		r = config.Rand
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &service{
		rand: r,
	}, nil
}

func (s *service) pick(options []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return options[s.rand.Intn(len(options))]
}

// Mention formats a user mention
func Mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// ChannelMention formats a channel mention
func ChannelMention(channelID string) string {
	return fmt.Sprintf("<#%s>", channelID)
}

func mentions(userIDs []string) string {
	parts := make([]string, len(userIDs))
	for i, id := range userIDs {
		parts[i] = Mention(id)
	}
	return strings.Join(parts, " ")
}

// GetRejectionMessage explains a rejection by kind and, where useful, by type
func (s *service) GetRejectionMessage(ctx context.Context, input *GetRejectionMessageInput) (*GetRejectionMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	err := input.Err
	output := &GetRejectionMessageOutput{Message: err.Error()}

	switch roster.KindOf(err) {
	case roster.KindValidation:
		output.Title = "Registration Rejected"
	case roster.KindState:
		output.Title = "Registration Unavailable"
	case roster.KindPermission:
		output.Title = "Not Allowed"
	case roster.KindTimeParse:
		output.Title = "Invalid Start Time"
	default:
		output.Title = "Something Went Wrong"
		output.Message = "Something went wrong on our side. Please try again in a moment."
		return output, nil
	}

	var (
		sizeErr     *roster.WrongTeamSizeError
		dupErr      *roster.DuplicateMemberError
		nameErr     *roster.DuplicateTeamNameError
		takenErr    *roster.MemberAlreadyRegisteredError
		timeErr     *eventtime.PastOrInvalidTimeError
		parseErr    parser.ParseError
		rosterError roster.RosterError
	)

	switch {
	case errors.As(err, &sizeErr):
		output.Message = fmt.Sprintf("Teams need exactly %d members including the captain. You listed %d.", sizeErr.Required, sizeErr.Given)
	case errors.As(err, &dupErr):
		output.Message = fmt.Sprintf("These members are listed more than once: %s", mentions(dupErr.MemberIDs))
	case errors.As(err, &nameErr):
		output.Message = fmt.Sprintf("The team name **%s** is already taken in this session. Pick another one.", nameErr.Name)
	case errors.As(err, &takenErr):
		lines := make([]string, len(takenErr.MemberIDs))
		for i, id := range takenErr.MemberIDs {
			team := ""
			if i < len(takenErr.TeamNames) {
				team = takenErr.TeamNames[i]
			}
			lines[i] = fmt.Sprintf("%s is already on **%s**", Mention(id), team)
		}
		output.Message = "Each member can only play for one team:\n" + strings.Join(lines, "\n")
	case errors.As(err, &timeErr):
		output.Message = fmt.Sprintf("Could not use %q: %s. Use the format `%s`, e.g. `2025-07-20 18:30`.", timeErr.Input, timeErr.Reason, eventtime.ExpectedFormat)
	case errors.As(err, &parseErr):
		output.Message = fmt.Sprintf("I couldn't read that registration: %s.", parseErr.Error())
		output.ShowFormatHelp = true
	case errors.As(err, &rosterError) && rosterError == roster.ErrSessionNotAccepting:
		output.Message = s.notAcceptingMessage(input.State)
	case errors.As(err, &rosterError) && rosterError == roster.ErrCapacityExceeded:
		output.Message = s.pick([]string{
			"All slots are already filled. Keep an eye on the channel in case one opens up.",
			"Sorry, every slot is taken. If a team withdraws, a slot will open up again.",
		})
	}

	return output, nil
}

func (s *service) notAcceptingMessage(state models.SessionState) string {
	switch state {
	case models.SessionStateFull:
		return "All slots are already filled. Keep an eye on the channel in case one opens up."
	case models.SessionStateScheduled:
		return "Registration is over, the event has already been scheduled."
	case models.SessionStateClosed:
		return "This session has been closed."
	default:
		return "This session is not accepting registrations right now."
	}
}

// GetRegistrationAcceptedMessage confirms a slot
func (s *service) GetRegistrationAcceptedMessage(ctx context.Context, input *GetRegistrationAcceptedMessageInput) (*GetRegistrationAcceptedMessageOutput, error) {
	if input == nil || input.Session == nil || input.Team == nil {
		return nil, errors.New("input, session and team cannot be nil")
	}

	title := s.pick([]string{
		"Team Registered!",
		"Slot Secured!",
		"You're In!",
	})

	message := fmt.Sprintf("**%s** took slot %d/%d for %s.\nCaptain: %s\nMembers: %s",
		input.Team.Name,
		input.Slot,
		input.Session.MaxSlots,
		input.Session.TournamentName,
		Mention(input.Team.CaptainID),
		mentions(input.Team.MemberIDs),
	)

	return &GetRegistrationAcceptedMessageOutput{
		Title:   title,
		Message: message,
	}, nil
}

// GetRosterMessage renders the roster with the remaining slot count
func (s *service) GetRosterMessage(ctx context.Context, input *GetRosterMessageInput) (*GetRosterMessageOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	session := input.Session
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** teams (%d/%d)\n", session.TournamentName, session.SlotsTaken(), session.MaxSlots)

	if len(session.Roster) == 0 {
		b.WriteString("No teams registered yet.")
	}
	for i, team := range session.Roster {
		fmt.Fprintf(&b, "%d. **%s** (captain %s): %s\n", i+1, team.Name, Mention(team.CaptainID), mentions(team.MemberIDs))
	}

	if session.State.IsCollecting() && len(session.Roster) > 0 {
		fmt.Fprintf(&b, "%d slot(s) remaining.", session.SlotsRemaining())
	}

	return &GetRosterMessageOutput{
		Message: strings.TrimRight(b.String(), "\n"),
	}, nil
}

// GetSessionOpenedMessage announces a new session
func (s *service) GetSessionOpenedMessage(ctx context.Context, input *GetSessionOpenedMessageInput) (*GetSessionOpenedMessageOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	session := input.Session
	message := fmt.Sprintf("Registration for **%s** is open! %d slots, %d players per team.\nPost your team in this channel:\n```\n%s\n```",
		session.TournamentName,
		session.MaxSlots,
		session.TeamSize,
		parser.FormatHelp,
	)

	return &GetSessionOpenedMessageOutput{Message: message}, nil
}

// GetSlotsFilledMessage announces a full roster
func (s *service) GetSlotsFilledMessage(ctx context.Context, input *GetSlotsFilledMessageInput) (*GetSlotsFilledMessageOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	rosterOutput, err := s.GetRosterMessage(ctx, &GetRosterMessageInput{Session: input.Session})
	if err != nil {
		return nil, err
	}

	headline := s.pick([]string{
		"All slots are filled!",
		"That's a full house, every slot is taken!",
		"Registration complete, all slots are filled!",
	})

	return &GetSlotsFilledMessageOutput{
		Message: fmt.Sprintf("%s\n\n%s", headline, rosterOutput.Message),
	}, nil
}

// GetSlotReopenedMessage announces a freed slot
func (s *service) GetSlotReopenedMessage(ctx context.Context, input *GetSlotReopenedMessageInput) (*GetSlotReopenedMessageOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	message := fmt.Sprintf("A slot is available in **%s** (%d/%d taken). Post your team to grab it!",
		input.Session.TournamentName,
		input.Session.SlotsTaken(),
		input.Session.MaxSlots,
	)
	if input.TeamName != "" {
		message = fmt.Sprintf("**%s** withdrew. %s", input.TeamName, message)
	}

	return &GetSlotReopenedMessageOutput{Message: message}, nil
}

// GetSchedulePromptMessage asks the organizer for a start time
func (s *service) GetSchedulePromptMessage(ctx context.Context, input *GetSchedulePromptMessageInput) (*GetSchedulePromptMessageOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	message := fmt.Sprintf("%s every slot for **%s** is filled. Set the event time so teams get notified (format `%s`).",
		Mention(input.Session.OrganizerID),
		input.Session.TournamentName,
		eventtime.ExpectedFormat,
	)

	return &GetSchedulePromptMessageOutput{
		Message:     message,
		ButtonLabel: "Set event time",
	}, nil
}

// GetTeamNamePromptMessage builds the prompt shown after a mention-only registration
func (s *service) GetTeamNamePromptMessage(ctx context.Context, input *GetTeamNamePromptMessageInput) (*GetTeamNamePromptMessageOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	message := fmt.Sprintf("Members for **%s**: %s\nPress the button to name your team.",
		input.Session.TournamentName,
		mentions(input.MemberIDs),
	)
	if input.Expires > 0 {
		message += fmt.Sprintf(" This list is kept for %d minutes.", int(input.Expires.Minutes()))
	}

	return &GetTeamNamePromptMessageOutput{
		Title:       "Almost There",
		Message:     message,
		ButtonLabel: "Enter team name",
	}, nil
}

// GetScheduleAnnouncementMessage builds the schedule broadcast
func (s *service) GetScheduleAnnouncementMessage(ctx context.Context, input *GetScheduleAnnouncementMessageInput) (*GetScheduleAnnouncementMessageOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	session := input.Session
	verb := "is scheduled for"
	if input.Rescheduled {
		verb = "has been moved to"
	}

	details := ""
	if session.ScheduledDetails != "" {
		details = "\n" + session.ScheduledDetails
	}

	return &GetScheduleAnnouncementMessageOutput{
		DirectMessage:  fmt.Sprintf("**%s** %s **%s IST**.%s", session.TournamentName, verb, input.LocalTime, details),
		ChannelMessage: fmt.Sprintf("📅 **%s** %s **%s IST** with %d teams.%s", session.TournamentName, verb, input.LocalTime, session.SlotsTaken(), details),
	}, nil
}

// GetReminderMessage builds the pre-start reminder
func (s *service) GetReminderMessage(ctx context.Context, input *GetReminderMessageInput) (*GetReminderMessageOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	minutes := int(input.Lead / time.Minute)

	return &GetReminderMessageOutput{
		DirectMessage:  fmt.Sprintf("⏰ **%s** starts in %d minutes (%s IST). Get ready!", input.Session.TournamentName, minutes, input.LocalTime),
		ChannelMessage: fmt.Sprintf("⏰ **%s** starts in %d minutes (%s IST). Captains, make sure your teams are online.", input.Session.TournamentName, minutes, input.LocalTime),
	}, nil
}

// GetSessionListMessage renders open sessions
func (s *service) GetSessionListMessage(ctx context.Context, input *GetSessionListMessageInput) (*GetSessionListMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.Summaries) == 0 {
		return &GetSessionListMessageOutput{Message: "There are no open registration sessions in this server."}, nil
	}

	var b strings.Builder
	b.WriteString("**Open sessions**\n")
	for _, summary := range input.Summaries {
		fmt.Fprintf(&b, "• **%s** in %s: %d/%d teams, %s, organizer %s (`%s`)\n",
			summary.TournamentName,
			ChannelMention(summary.ChannelID),
			summary.TeamCount,
			summary.MaxSlots,
			summary.State,
			Mention(summary.OrganizerID),
			summary.ID,
		)
	}

	return &GetSessionListMessageOutput{Message: strings.TrimRight(b.String(), "\n")}, nil
}

// GetSessionClosedMessage announces a closed session
func (s *service) GetSessionClosedMessage(ctx context.Context, input *GetSessionClosedMessageInput) (*GetSessionClosedMessageOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	return &GetSessionClosedMessageOutput{
		Message: fmt.Sprintf("Registration for **%s** has been closed.", input.Session.TournamentName),
	}, nil
}
