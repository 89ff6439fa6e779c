package messaging

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/KirkDiggler/scrimbot/internal/eventtime"
	"github.com/KirkDiggler/scrimbot/internal/models"
	"github.com/KirkDiggler/scrimbot/internal/parser"
	"github.com/KirkDiggler/scrimbot/internal/roster"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service Service
	ctx     context.Context
	session *models.Session
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Rand: rand.New(rand.NewSource(1))})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()

	now := time.Date(2025, 7, 10, 10, 0, 0, 0, time.UTC)
	s.session = &models.Session{
		ID:             "guild-1-abc",
		GuildID:        "guild-1",
		ChannelID:      "channel-1",
		TournamentName: "Friday Scrims",
		TeamSize:       2,
		MaxSlots:       3,
		OrganizerID:    "org",
		State:          models.SessionStateCollecting,
		Roster: []*models.Team{
			{Name: "Alpha", CaptainID: "u1", MemberIDs: []string{"u1", "u2"}, RegisteredAt: now},
			{Name: "Bravo", CaptainID: "u3", MemberIDs: []string{"u3", "u4"}, RegisteredAt: now},
		},
	}
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestNewService_NilConfig() {
	svc, err := NewService(nil)
	s.Require().NoError(err)
	s.NotNil(svc)
}

func (s *MessagingServiceTestSuite) TestRejection_ByType() {
	testCases := []struct {
		name     string
		err      error
		state    models.SessionState
		title    string
		contains string
		help     bool
	}{
		{
			name:     "wrong size",
			err:      &roster.WrongTeamSizeError{Required: 5, Given: 3},
			title:    "Registration Rejected",
			contains: "exactly 5 members",
		},
		{
			name:     "duplicate member",
			err:      &roster.DuplicateMemberError{MemberIDs: []string{"u9"}},
			title:    "Registration Rejected",
			contains: "<@u9>",
		},
		{
			name:     "duplicate name",
			err:      &roster.DuplicateTeamNameError{Name: "alpha"},
			title:    "Registration Rejected",
			contains: "**alpha** is already taken",
		},
		{
			name:     "member taken",
			err:      &roster.MemberAlreadyRegisteredError{MemberIDs: []string{"u2"}, TeamNames: []string{"Alpha"}},
			title:    "Registration Rejected",
			contains: "<@u2> is already on **Alpha**",
		},
		{
			name:     "scheduled",
			err:      roster.ErrSessionNotAccepting,
			state:    models.SessionStateScheduled,
			title:    "Registration Unavailable",
			contains: "already been scheduled",
		},
		{
			name:     "capacity",
			err:      roster.ErrCapacityExceeded,
			title:    "Registration Unavailable",
			contains: "slot",
		},
		{
			name:     "not captain",
			err:      roster.ErrNotCaptain,
			title:    "Not Allowed",
			contains: "captain",
		},
		{
			name:     "bad time",
			err:      &eventtime.PastOrInvalidTimeError{Input: "yesterday", Reason: "could not read the date and time"},
			title:    "Invalid Start Time",
			contains: eventtime.ExpectedFormat,
		},
		{
			name:     "parse failure",
			err:      parser.ErrMissingTeamName,
			title:    "Registration Rejected",
			contains: "Team Name:",
			help:     true,
		},
		{
			name:     "platform fault",
			err:      errors.New("redis: connection refused"),
			title:    "Something Went Wrong",
			contains: "try again",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.service.GetRejectionMessage(s.ctx, &GetRejectionMessageInput{Err: tc.err, State: tc.state})
			s.Require().NoError(err)
			s.Equal(tc.title, output.Title)
			s.Contains(output.Message, tc.contains)
			s.Equal(tc.help, output.ShowFormatHelp)
		})
	}
}

func (s *MessagingServiceTestSuite) TestRejection_PlatformFaultHidesDetails() {
	output, err := s.service.GetRejectionMessage(s.ctx, &GetRejectionMessageInput{Err: errors.New("redis: connection refused")})
	s.Require().NoError(err)
	s.NotContains(output.Message, "redis")
}

func (s *MessagingServiceTestSuite) TestRosterMessage() {
	output, err := s.service.GetRosterMessage(s.ctx, &GetRosterMessageInput{Session: s.session})
	s.Require().NoError(err)
	s.Contains(output.Message, "Friday Scrims** teams (2/3)")
	s.Contains(output.Message, "1. **Alpha** (captain <@u1>): <@u1> <@u2>")
	s.Contains(output.Message, "2. **Bravo**")
	s.Contains(output.Message, "1 slot(s) remaining")
}

func (s *MessagingServiceTestSuite) TestRosterMessage_Empty() {
	s.session.Roster = nil
	output, err := s.service.GetRosterMessage(s.ctx, &GetRosterMessageInput{Session: s.session})
	s.Require().NoError(err)
	s.Contains(output.Message, "No teams registered yet")
}

func (s *MessagingServiceTestSuite) TestSlotsFilledIncludesRoster() {
	s.session.State = models.SessionStateFull
	output, err := s.service.GetSlotsFilledMessage(s.ctx, &GetSlotsFilledMessageInput{Session: s.session})
	s.Require().NoError(err)
	s.Contains(output.Message, "**Alpha**")
	s.Contains(output.Message, "**Bravo**")
	s.NotContains(output.Message, "remaining")
}

func (s *MessagingServiceTestSuite) TestAccepted() {
	output, err := s.service.GetRegistrationAcceptedMessage(s.ctx, &GetRegistrationAcceptedMessageInput{
		Session: s.session,
		Team:    s.session.Roster[1],
		Slot:    2,
	})
	s.Require().NoError(err)
	s.NotEmpty(output.Title)
	s.Contains(output.Message, "**Bravo** took slot 2/3")
}

func (s *MessagingServiceTestSuite) TestSchedule() {
	s.session.ScheduledDetails = "Erangel, TPP"
	output, err := s.service.GetScheduleAnnouncementMessage(s.ctx, &GetScheduleAnnouncementMessageInput{
		Session:   s.session,
		LocalTime: "2025-07-12 20:00",
	})
	s.Require().NoError(err)
	s.Contains(output.DirectMessage, "scheduled for **2025-07-12 20:00 IST**")
	s.Contains(output.DirectMessage, "Erangel, TPP")
	s.Contains(output.ChannelMessage, "2 teams")

	output, err = s.service.GetScheduleAnnouncementMessage(s.ctx, &GetScheduleAnnouncementMessageInput{
		Session:     s.session,
		LocalTime:   "2025-07-12 21:00",
		Rescheduled: true,
	})
	s.Require().NoError(err)
	s.Contains(output.DirectMessage, "moved to")
}

func (s *MessagingServiceTestSuite) TestReminder() {
	output, err := s.service.GetReminderMessage(s.ctx, &GetReminderMessageInput{
		Session:   s.session,
		LocalTime: "2025-07-12 20:00",
		Lead:      30 * time.Minute,
	})
	s.Require().NoError(err)
	s.Contains(output.DirectMessage, "starts in 30 minutes")
}

func (s *MessagingServiceTestSuite) TestSessionList() {
	output, err := s.service.GetSessionListMessage(s.ctx, &GetSessionListMessageInput{})
	s.Require().NoError(err)
	s.Contains(output.Message, "no open registration sessions")

	output, err = s.service.GetSessionListMessage(s.ctx, &GetSessionListMessageInput{
		Summaries: []*models.SessionSummary{s.session.Summary()},
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "2/3 teams")
	s.Contains(output.Message, "<#channel-1>")
	s.Contains(output.Message, "guild-1-abc")
}

func (s *MessagingServiceTestSuite) TestReopenedAndPrompt() {
	output, err := s.service.GetSlotReopenedMessage(s.ctx, &GetSlotReopenedMessageInput{Session: s.session, TeamName: "Charlie"})
	s.Require().NoError(err)
	s.Contains(output.Message, "**Charlie** withdrew")
	s.Contains(output.Message, "A slot is available")

	prompt, err := s.service.GetSchedulePromptMessage(s.ctx, &GetSchedulePromptMessageInput{Session: s.session})
	s.Require().NoError(err)
	s.Contains(prompt.Message, "<@org>")
	s.Equal("Set event time", prompt.ButtonLabel)
}

func (s *MessagingServiceTestSuite) TestTeamNamePrompt() {
	prompt, err := s.service.GetTeamNamePromptMessage(s.ctx, &GetTeamNamePromptMessageInput{
		Session:   s.session,
		MemberIDs: []string{"cap", "mate"},
		Expires:   15 * time.Minute,
	})
	s.Require().NoError(err)
	s.Contains(prompt.Message, "<@cap> <@mate>")
	s.Contains(prompt.Message, "15 minutes")
	s.Equal("Enter team name", prompt.ButtonLabel)

	_, err = s.service.GetTeamNamePromptMessage(s.ctx, &GetTeamNamePromptMessageInput{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestNilInputs() {
	_, err := s.service.GetRejectionMessage(s.ctx, nil)
	s.Error(err)
	_, err = s.service.GetRosterMessage(s.ctx, &GetRosterMessageInput{})
	s.Error(err)
	_, err = s.service.GetSessionOpenedMessage(s.ctx, nil)
	s.Error(err)
}
