package registration

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/scrimbot/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/scrimbot/internal/common/uuid/mocks"
	"github.com/KirkDiggler/scrimbot/internal/events"
	eventMocks "github.com/KirkDiggler/scrimbot/internal/events/mocks"
	"github.com/KirkDiggler/scrimbot/internal/eventtime"
	"github.com/KirkDiggler/scrimbot/internal/models"
	"github.com/KirkDiggler/scrimbot/internal/parser"
	"github.com/KirkDiggler/scrimbot/internal/platform"
	platformMocks "github.com/KirkDiggler/scrimbot/internal/platform/mocks"
	guildConfigRepo "github.com/KirkDiggler/scrimbot/internal/repositories/guild_config"
	sessionRepo "github.com/KirkDiggler/scrimbot/internal/repositories/session"
	"github.com/KirkDiggler/scrimbot/internal/roster"
	"github.com/KirkDiggler/scrimbot/internal/services/messaging"
	"github.com/KirkDiggler/scrimbot/internal/services/provisioner"
	provisionerMocks "github.com/KirkDiggler/scrimbot/internal/services/provisioner/mocks"
	"github.com/KirkDiggler/scrimbot/internal/services/reminder"
	reminderMocks "github.com/KirkDiggler/scrimbot/internal/services/reminder/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RegistrationServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mr              *miniredis.Miniredis
	client          *redis.Client
	sessionRepo     sessionRepo.Repository
	guildConfigRepo guildConfigRepo.Repository
	mockPlatform    *platformMocks.MockPlatform
	mockProvisioner *provisionerMocks.MockService
	mockReminders   *reminderMocks.MockService
	mockPublisher   *eventMocks.MockPublisher
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	service         *service
	ctx             context.Context

	testNow       time.Time
	testGuildID   string
	testChannelID string
	testOrganizer string
}

func (s *RegistrationServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.ctx = context.Background()

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.sessionRepo = sessions

	guildConfigs, err := guildConfigRepo.NewRedis(&guildConfigRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.guildConfigRepo = guildConfigs

	s.mockPlatform = platformMocks.NewMockPlatform(s.mockCtrl)
	s.mockProvisioner = provisionerMocks.NewMockService(s.mockCtrl)
	s.mockReminders = reminderMocks.NewMockService(s.mockCtrl)
	s.mockPublisher = eventMocks.NewMockPublisher(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	messages, err := messaging.NewService(&messaging.ServiceConfig{Rand: rand.New(rand.NewSource(7))})
	s.Require().NoError(err)

	s.testNow = time.Date(2025, 7, 10, 10, 0, 0, 0, time.UTC)
	s.testGuildID = "guild-1"
	s.testChannelID = "channel-1"
	s.testOrganizer = "organizer"

	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc, err := New(&Config{
		SessionRepo:     s.sessionRepo,
		GuildConfigRepo: s.guildConfigRepo,
		Platform:        s.mockPlatform,
		Provisioner:     s.mockProvisioner,
		Messaging:       messages,
		Reminders:       s.mockReminders,
		Publisher:       s.mockPublisher,
		Clock:           s.mockClock,
		UUIDGenerator:   s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *RegistrationServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestRegistrationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationServiceTestSuite))
}

// allowNotifications accepts any outbound traffic the tests don't assert on
func (s *RegistrationServiceTestSuite) allowNotifications() {
	s.mockPlatform.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(&platform.SendMessageOutput{MessageID: "roster-msg"}, nil).AnyTimes()
	s.mockPlatform.EXPECT().EditMessage(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockPlatform.EXPECT().SendDirectMessage(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockPlatform.EXPECT().CreatePrivateChannel(gomock.Any(), gomock.Any()).Return(&platform.CreatePrivateChannelOutput{ChannelID: "followup-1"}, nil).AnyTimes()
	s.mockProvisioner.EXPECT().GrantTeamAccess(gomock.Any(), gomock.Any()).Return(&provisioner.GrantTeamAccessOutput{}, nil).AnyTimes()
	s.mockProvisioner.EXPECT().RevokeTeamAccess(gomock.Any(), gomock.Any()).Return(&provisioner.RevokeTeamAccessOutput{}, nil).AnyTimes()
}

// seedSession stores a session directly, skipping creation side effects
func (s *RegistrationServiceTestSuite) seedSession(teamSize, maxSlots int, teams ...*models.Team) *models.Session {
	state := models.SessionStateCollecting
	if len(teams) >= maxSlots {
		state = models.SessionStateFull
	}
	session := &models.Session{
		ID:              "guild-1-seeded",
		GuildID:         s.testGuildID,
		ChannelID:       s.testChannelID,
		RosterChannelID: "roster-channel",
		TournamentName:  "Friday Scrims",
		TeamSize:        teamSize,
		MaxSlots:        maxSlots,
		AssignedRoleID:  "team-role",
		ModeratorRoleID: "mod-role",
		AccessMode:      models.AccessModeRole,
		OrganizerID:     s.testOrganizer,
		Roster:          append([]*models.Team{}, teams...),
		State:           state,
		RosterMessageID: "roster-msg",
		CreatedAt:       s.testNow,
		UpdatedAt:       s.testNow,
	}
	s.Require().NoError(s.sessionRepo.SaveSession(s.ctx, &sessionRepo.SaveSessionInput{Session: session}))
	return session
}

func (s *RegistrationServiceTestSuite) reload(sessionID string) *models.Session {
	session, err := s.sessionRepo.GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: sessionID})
	s.Require().NoError(err)
	return session
}

func (s *RegistrationServiceTestSuite) submit(sessionID, captain, name string, members ...string) *SubmitRegistrationOutput {
	output, err := s.service.SubmitRegistration(s.ctx, &SubmitRegistrationInput{
		SessionID: sessionID,
		CaptainID: captain,
		TeamName:  name,
		MemberIDs: members,
	})
	s.Require().NoError(err)
	return output
}

func (s *RegistrationServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilSessionRepo)

	_, err = New(&Config{SessionRepo: s.sessionRepo, GuildConfigRepo: s.guildConfigRepo})
	s.ErrorIs(err, ErrNilPlatform)
}

func (s *RegistrationServiceTestSuite) TestCreateSession_DefaultsFromGuildConfig() {
	s.Require().NoError(s.guildConfigRepo.SaveGuildConfig(s.ctx, &guildConfigRepo.SaveGuildConfigInput{
		Config: &models.GuildConfig{
			GuildID:         s.testGuildID,
			TeamRoleID:      "config-role",
			PostChannelID:   "post-channel",
			RosterChannelID: "config-roster",
			ModeratorRoleID: "config-mods",
		},
	}))
	s.mockUUID.EXPECT().NewUUID().Return("uuid-1")

	gomock.InOrder(
		s.mockPlatform.EXPECT().SendMessage(s.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, input *platform.SendMessageInput) (*platform.SendMessageOutput, error) {
				s.Equal("post-channel", input.ChannelID)
				s.Contains(input.Content, "Registration for **Friday Scrims** is open")
				s.Contains(input.Content, parser.FormatHelp)
				return &platform.SendMessageOutput{MessageID: "opened-msg"}, nil
			}),
		s.mockPlatform.EXPECT().SendMessage(s.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, input *platform.SendMessageInput) (*platform.SendMessageOutput, error) {
				s.Contains(input.Content, "No teams registered yet")
				return &platform.SendMessageOutput{MessageID: "roster-msg"}, nil
			}),
	)

	output, err := s.service.CreateSession(s.ctx, &CreateSessionInput{
		GuildID:        s.testGuildID,
		OrganizerID:    s.testOrganizer,
		TournamentName: "Friday Scrims",
		TeamSize:       4,
		MaxSlots:       16,
	})
	s.Require().NoError(err)

	session := output.Session
	s.Equal("guild-1-uuid-1", session.ID)
	s.Equal("post-channel", session.ChannelID)
	s.Equal("config-role", session.AssignedRoleID)
	s.Equal("config-roster", session.RosterChannelID)
	s.Equal("config-mods", session.ModeratorRoleID)
	s.Equal(models.AccessModeRole, session.AccessMode)
	s.Equal(models.SessionStateCollecting, session.State)

	stored := s.reload("guild-1-uuid-1")
	s.Equal("roster-msg", stored.RosterMessageID)
}

func (s *RegistrationServiceTestSuite) TestCreateSession_AlreadyExists() {
	s.seedSession(2, 4)

	_, err := s.service.CreateSession(s.ctx, &CreateSessionInput{
		GuildID:        s.testGuildID,
		ChannelID:      s.testChannelID,
		OrganizerID:    s.testOrganizer,
		TournamentName: "Second",
		TeamSize:       2,
		MaxSlots:       4,
	})
	s.ErrorIs(err, ErrSessionAlreadyExists)
	s.Equal(roster.KindState, roster.KindOf(err))
}

func (s *RegistrationServiceTestSuite) TestCreateSession_InvalidSettings() {
	_, err := s.service.CreateSession(s.ctx, &CreateSessionInput{
		GuildID:        s.testGuildID,
		ChannelID:      s.testChannelID,
		OrganizerID:    s.testOrganizer,
		TournamentName: "Broken",
		TeamSize:       0,
		MaxSlots:       4,
		AccessMode:     "everyone",
	})

	var invalid *InvalidSessionError
	s.Require().ErrorAs(err, &invalid)
	s.Equal(roster.KindValidation, roster.KindOf(err))
	s.Contains(err.Error(), "TeamSize must be at least 1")
	s.Contains(err.Error(), "AccessMode must be one of")
}

func (s *RegistrationServiceTestSuite) TestScenarioA_NameAndMemberCollisions() {
	s.allowNotifications()
	session := s.seedSession(3, 2)

	first := s.submit(session.ID, "A", "Alpha", "B", "C")
	s.Require().True(first.Accepted())
	s.Equal(1, first.Slot)

	dupName := s.submit(session.ID, "D", "Alpha", "E", "F")
	var nameErr *roster.DuplicateTeamNameError
	s.ErrorAs(dupName.Rejection, &nameErr)

	taken := s.submit(session.ID, "G", "Beta", "A", "H")
	var takenErr *roster.MemberAlreadyRegisteredError
	s.Require().ErrorAs(taken.Rejection, &takenErr)
	s.Equal([]string{"A"}, takenErr.MemberIDs)

	second := s.submit(session.ID, "D", "Beta", "E", "F")
	s.Require().True(second.Accepted())
	s.Equal(2, second.Slot)
	s.True(second.BecameFull)

	stored := s.reload(session.ID)
	s.Equal(models.SessionStateFull, stored.State)
	s.Len(stored.Roster, 2)
	s.Equal("followup-1", stored.FollowUpChannelID)
}

func (s *RegistrationServiceTestSuite) TestScenarioB_CaptainAutoIncluded() {
	s.allowNotifications()
	session := s.seedSession(2, 4)

	output, err := s.service.HandleInboundMessage(s.ctx, &HandleInboundMessageInput{
		GuildID:      s.testGuildID,
		ChannelID:    s.testChannelID,
		AuthorID:     "captain",
		Content:      "Team Name: Night Owls\nMembers: <@mate>",
		MentionedIDs: []string{"mate"},
	})
	s.Require().NoError(err)
	s.True(output.Handled)
	s.Require().True(output.Accepted())
	s.Equal([]string{"captain", "mate"}, output.Team.MemberIDs)
	s.Equal("captain", output.Team.CaptainID)

	stored := s.reload(session.ID)
	s.Require().Len(stored.Roster, 1)
	s.Equal("Night Owls", stored.Roster[0].Name)
}

func (s *RegistrationServiceTestSuite) TestScenarioC_PastTimeLeavesSessionFull() {
	session := s.seedSession(2, 1, &models.Team{Name: "Alpha", CaptainID: "a", MemberIDs: []string{"a", "b"}})

	output, err := s.service.ScheduleEvent(s.ctx, &ScheduleEventInput{
		SessionID:   session.ID,
		RequesterID: s.testOrganizer,
		StartTime:   "2025-07-01 18:00",
	})
	s.Require().NoError(err)

	var timeErr *eventtime.PastOrInvalidTimeError
	s.Require().ErrorAs(output.Rejection, &timeErr)
	s.Equal(roster.KindTimeParse, roster.KindOf(output.Rejection))

	stored := s.reload(session.ID)
	s.Equal(models.SessionStateFull, stored.State)
	s.Nil(stored.ScheduledTime)
}

func (s *RegistrationServiceTestSuite) TestScenarioD_ConcurrentLastSlot() {
	s.allowNotifications()
	session := s.seedSession(2, 2, &models.Team{Name: "Alpha", CaptainID: "a1", MemberIDs: []string{"a1", "a2"}})

	const contenders = 8
	outputs := make([]*SubmitRegistrationOutput, contenders)
	errs := make([]error, contenders)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			captain := string(rune('c' + i))
			outputs[i], errs[i] = s.service.SubmitRegistration(s.ctx, &SubmitRegistrationInput{
				SessionID: session.ID,
				CaptainID: "captain-" + captain,
				TeamName:  "Team " + captain,
				MemberIDs: []string{"mate-" + captain},
			})
		}(i)
	}
	close(start)
	wg.Wait()

	accepted := 0
	for i := 0; i < contenders; i++ {
		s.Require().NoError(errs[i])
		if outputs[i].Accepted() {
			accepted++
			continue
		}
		s.ErrorIs(outputs[i].Rejection, roster.ErrCapacityExceeded)
	}
	s.Equal(1, accepted)

	stored := s.reload(session.ID)
	s.Len(stored.Roster, 2)
	s.Equal(models.SessionStateFull, stored.State)
}

func (s *RegistrationServiceTestSuite) TestHandleInboundMessage_NoSessionIgnored() {
	output, err := s.service.HandleInboundMessage(s.ctx, &HandleInboundMessageInput{
		GuildID:   s.testGuildID,
		ChannelID: "general",
		AuthorID:  "someone",
		Content:   "hello",
	})
	s.Require().NoError(err)
	s.False(output.Handled)
}

func (s *RegistrationServiceTestSuite) TestHandleInboundMessage_ParseFailureDoesNotMutate() {
	session := s.seedSession(2, 4)

	output, err := s.service.HandleInboundMessage(s.ctx, &HandleInboundMessageInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		AuthorID:  "captain",
		Content:   "can I join?",
	})
	s.Require().NoError(err)
	s.True(output.Handled)
	s.ErrorIs(output.Rejection, parser.ErrMissingTeamName)
	s.False(output.NeedsTeamName)
	s.Empty(s.reload(session.ID).Roster)
}

func (s *RegistrationServiceTestSuite) TestHandleInboundMessage_ClosedToRegistrationIgnoresChatter() {
	session := s.seedSession(2, 1, &models.Team{Name: "Alpha", CaptainID: "a", MemberIDs: []string{"a", "b"}})
	session.State = models.SessionStateScheduled
	s.Require().NoError(s.sessionRepo.SaveSession(s.ctx, &sessionRepo.SaveSessionInput{Session: session}))

	chatter, err := s.service.HandleInboundMessage(s.ctx, &HandleInboundMessageInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		AuthorID:  "late",
		Content:   "gibberish",
	})
	s.Require().NoError(err)
	s.False(chatter.Handled)
	s.Nil(chatter.Rejection)

	attempt, err := s.service.HandleInboundMessage(s.ctx, &HandleInboundMessageInput{
		GuildID:      s.testGuildID,
		ChannelID:    s.testChannelID,
		AuthorID:     "late",
		Content:      "Team Name: Stragglers\nMembers: <@other>",
		MentionedIDs: []string{"other"},
	})
	s.Require().NoError(err)
	s.True(attempt.Handled)
	s.ErrorIs(attempt.Rejection, roster.ErrSessionNotAccepting)
	s.Len(s.reload(session.ID).Roster, 1)
}

func (s *RegistrationServiceTestSuite) TestHandleInboundMessage_MentionsOnlyWaitsForTeamName() {
	s.allowNotifications()
	session := s.seedSession(2, 4, &models.Team{Name: "Alpha", CaptainID: "a", MemberIDs: []string{"a", "b"}})
	pendingKey := "pending_team:" + session.ID + ":captain"

	tooMany, err := s.service.HandleInboundMessage(s.ctx, &HandleInboundMessageInput{
		GuildID:      s.testGuildID,
		ChannelID:    s.testChannelID,
		AuthorID:     "captain",
		Content:      "<@mate> <@extra>",
		MentionedIDs: []string{"mate", "extra"},
	})
	s.Require().NoError(err)
	s.True(tooMany.Handled)
	s.False(tooMany.NeedsTeamName)
	var sizeErr *roster.WrongTeamSizeError
	s.ErrorAs(tooMany.Rejection, &sizeErr)
	s.False(s.mr.Exists(pendingKey))

	output, err := s.service.HandleInboundMessage(s.ctx, &HandleInboundMessageInput{
		GuildID:      s.testGuildID,
		ChannelID:    s.testChannelID,
		AuthorID:     "captain",
		Content:      "<@mate>",
		MentionedIDs: []string{"mate"},
	})
	s.Require().NoError(err)
	s.True(output.Handled)
	s.True(output.NeedsTeamName)
	s.Nil(output.Rejection)
	s.Equal([]string{"captain", "mate"}, output.MemberIDs)
	s.True(s.mr.Exists(pendingKey))

	// A taken name is refused but the member list is kept for another try
	clash, err := s.service.CompleteTeamRegistration(s.ctx, &CompleteTeamRegistrationInput{
		SessionID: session.ID,
		CaptainID: "captain",
		TeamName:  "alpha",
	})
	s.Require().NoError(err)
	var nameErr *roster.DuplicateTeamNameError
	s.ErrorAs(clash.Rejection, &nameErr)
	s.True(s.mr.Exists(pendingKey))

	done, err := s.service.CompleteTeamRegistration(s.ctx, &CompleteTeamRegistrationInput{
		SessionID: session.ID,
		CaptainID: "captain",
		TeamName:  "Night Owls",
	})
	s.Require().NoError(err)
	s.Require().True(done.Accepted())
	s.Equal(2, done.Slot)
	s.Equal([]string{"captain", "mate"}, done.Team.MemberIDs)
	s.False(s.mr.Exists(pendingKey))

	stored := s.reload(session.ID)
	s.Require().Len(stored.Roster, 2)
	s.Equal("Night Owls", stored.Roster[1].Name)
}

func (s *RegistrationServiceTestSuite) TestCompleteTeamRegistration_NothingHeld() {
	session := s.seedSession(2, 4)

	output, err := s.service.CompleteTeamRegistration(s.ctx, &CompleteTeamRegistrationInput{
		SessionID: session.ID,
		CaptainID: "captain",
		TeamName:  "Night Owls",
	})
	s.Require().NoError(err)
	s.ErrorIs(output.Rejection, ErrNoPendingTeam)
	s.Empty(s.reload(session.ID).Roster)

	_, err = s.service.CompleteTeamRegistration(s.ctx, &CompleteTeamRegistrationInput{SessionID: session.ID})
	s.ErrorIs(err, ErrNilInput)
}

func (s *RegistrationServiceTestSuite) TestRegister_BecameFullNotifies() {
	session := s.seedSession(2, 1)

	s.mockProvisioner.EXPECT().GrantTeamAccess(s.ctx, &provisioner.GrantTeamAccessInput{
		GuildID:    s.testGuildID,
		ChannelID:  s.testChannelID,
		RoleID:     "team-role",
		AccessMode: models.AccessModeRole,
		MemberIDs:  []string{"a", "b"},
	}).Return(&provisioner.GrantTeamAccessOutput{RoleGranted: []string{"a", "b"}}, nil)
	s.mockPlatform.EXPECT().EditMessage(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *platform.EditMessageInput) error {
			s.Equal("roster-msg", input.MessageID)
			s.Contains(input.Content, "1. **Alpha**")
			return nil
		})
	s.mockPlatform.EXPECT().SendMessage(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *platform.SendMessageInput) (*platform.SendMessageOutput, error) {
			s.Equal("roster-channel", input.ChannelID)
			s.Contains(input.Content, "**Alpha**")
			return &platform.SendMessageOutput{MessageID: "full-msg"}, nil
		})
	s.mockPlatform.EXPECT().CreatePrivateChannel(s.ctx, &platform.CreatePrivateChannelInput{
		GuildID: s.testGuildID,
		Name:    "friday-scrims-schedule",
		UserIDs: []string{s.testOrganizer},
		RoleIDs: []string{"mod-role"},
	}).Return(&platform.CreatePrivateChannelOutput{ChannelID: "followup-1"}, nil)
	s.mockPlatform.EXPECT().SendMessage(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *platform.SendMessageInput) (*platform.SendMessageOutput, error) {
			s.Equal("followup-1", input.ChannelID)
			s.Require().Len(input.Buttons, 1)
			s.Equal(ScheduleButtonPrefix+session.ID, input.Buttons[0].CustomID)
			return &platform.SendMessageOutput{MessageID: "prompt-msg"}, nil
		})

	output := s.submit(session.ID, "a", "Alpha", "b")
	s.Require().True(output.Accepted())
	s.True(output.BecameFull)
	s.Equal("followup-1", s.reload(session.ID).FollowUpChannelID)
}

func (s *RegistrationServiceTestSuite) TestRegister_PlatformFailureDoesNotFailRegistration() {
	session := s.seedSession(2, 4)

	s.mockProvisioner.EXPECT().GrantTeamAccess(gomock.Any(), gomock.Any()).Return(&provisioner.GrantTeamAccessOutput{RoleFailed: []string{"a", "b"}}, nil)
	s.mockPlatform.EXPECT().EditMessage(gomock.Any(), gomock.Any()).Return(errors.New("unknown message"))
	s.mockPlatform.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(nil, errors.New("missing access"))

	output := s.submit(session.ID, "a", "Alpha", "b")
	s.Require().True(output.Accepted())
	s.Len(s.reload(session.ID).Roster, 1)
}

func (s *RegistrationServiceTestSuite) TestWithdraw_ReopensAndAnnounces() {
	session := s.seedSession(2, 2,
		&models.Team{Name: "Alpha", CaptainID: "a", MemberIDs: []string{"a", "b"}},
		&models.Team{Name: "Bravo", CaptainID: "c", MemberIDs: []string{"c", "d"}},
	)

	s.mockProvisioner.EXPECT().RevokeTeamAccess(s.ctx, &provisioner.RevokeTeamAccessInput{
		GuildID:    s.testGuildID,
		ChannelID:  s.testChannelID,
		RoleID:     "team-role",
		AccessMode: models.AccessModeRole,
		MemberIDs:  []string{"c", "d"},
	}).Return(&provisioner.RevokeTeamAccessOutput{}, nil)
	s.mockPlatform.EXPECT().EditMessage(s.ctx, gomock.Any()).Return(nil)
	s.mockPlatform.EXPECT().SendMessage(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *platform.SendMessageInput) (*platform.SendMessageOutput, error) {
			s.Equal(s.testChannelID, input.ChannelID)
			s.Contains(input.Content, "A slot is available")
			return &platform.SendMessageOutput{MessageID: "reopen-msg"}, nil
		})

	notCaptain, err := s.service.Withdraw(s.ctx, &WithdrawInput{SessionID: session.ID, RequesterID: "d"})
	s.Require().NoError(err)
	s.ErrorIs(notCaptain.Rejection, roster.ErrNotCaptain)

	output, err := s.service.Withdraw(s.ctx, &WithdrawInput{GuildID: s.testGuildID, ChannelID: s.testChannelID, RequesterID: "c"})
	s.Require().NoError(err)
	s.Require().True(output.Accepted())
	s.True(output.Reopened)
	s.Equal("Bravo", output.Team.Name)

	stored := s.reload(session.ID)
	s.Equal(models.SessionStateCollecting, stored.State)
	s.Len(stored.Roster, 1)
}

func (s *RegistrationServiceTestSuite) TestRenameTeam() {
	session := s.seedSession(2, 4,
		&models.Team{Name: "Alpha", CaptainID: "a", MemberIDs: []string{"a", "b"}},
		&models.Team{Name: "Bravo", CaptainID: "c", MemberIDs: []string{"c", "d"}},
	)
	s.mockPlatform.EXPECT().EditMessage(s.ctx, gomock.Any()).Return(nil)

	clash, err := s.service.RenameTeam(s.ctx, &RenameTeamInput{SessionID: session.ID, RequesterID: "a", NewName: "bravo"})
	s.Require().NoError(err)
	var nameErr *roster.DuplicateTeamNameError
	s.ErrorAs(clash.Rejection, &nameErr)

	output, err := s.service.RenameTeam(s.ctx, &RenameTeamInput{SessionID: session.ID, RequesterID: "a", NewName: "Apex"})
	s.Require().NoError(err)
	s.Require().True(output.Accepted())
	s.Equal("Alpha", output.PreviousName)
	s.Equal("Apex", s.reload(session.ID).Roster[0].Name)
}

func (s *RegistrationServiceTestSuite) TestScheduleEvent_AnnouncesAndArmsReminder() {
	session := s.seedSession(2, 1, &models.Team{Name: "Alpha", CaptainID: "a", MemberIDs: []string{"a", "b"}})

	var onFire reminder.FireFunc
	s.mockReminders.EXPECT().Schedule(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *reminder.ScheduleInput) (*reminder.ScheduleOutput, error) {
			s.Equal(session.ID, input.Key)
			// 20:00 IST is 14:30 UTC; the reminder goes out 30 minutes earlier
			s.True(input.FireAt.Equal(time.Date(2025, 7, 12, 14, 0, 0, 0, time.UTC)))
			onFire = input.OnFire
			return &reminder.ScheduleOutput{Scheduled: true}, nil
		})
	s.mockPlatform.EXPECT().SendDirectMessage(s.ctx, &platform.SendDirectMessageInput{UserID: "a", Content: "**Friday Scrims** is scheduled for **2025-07-12 20:00 IST**.\nErangel"}).Return(nil)
	s.mockPlatform.EXPECT().SendDirectMessage(s.ctx, gomock.Any()).Return(errors.New("cannot send messages to this user"))
	s.mockPlatform.EXPECT().SendMessage(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *platform.SendMessageInput) (*platform.SendMessageOutput, error) {
			s.Equal("roster-channel", input.ChannelID)
			s.Contains(input.Content, "2025-07-12 20:00 IST")
			return &platform.SendMessageOutput{MessageID: "announce"}, nil
		})

	output, err := s.service.ScheduleEvent(s.ctx, &ScheduleEventInput{
		SessionID:   session.ID,
		RequesterID: s.testOrganizer,
		StartTime:   "2025-07-12 20:00",
		Details:     "Erangel",
	})
	s.Require().NoError(err)
	s.Require().Nil(output.Rejection)
	s.True(output.StartTime.Equal(time.Date(2025, 7, 12, 14, 30, 0, 0, time.UTC)))
	s.Equal("2025-07-12 20:00", output.LocalTime)
	s.False(output.Rescheduled)
	s.True(output.ReminderScheduled)

	stored := s.reload(session.ID)
	s.Equal(models.SessionStateScheduled, stored.State)
	s.Equal("Erangel", stored.ScheduledDetails)

	// Reminder fires for the current schedule
	s.mockPlatform.EXPECT().SendDirectMessage(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.mockPlatform.EXPECT().SendMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *platform.SendMessageInput) (*platform.SendMessageOutput, error) {
			s.Contains(input.Content, "starts in 30 minutes")
			return &platform.SendMessageOutput{MessageID: "reminder"}, nil
		})
	s.Require().NotNil(onFire)
	onFire(s.ctx, session.ID, time.Date(2025, 7, 12, 14, 0, 0, 0, time.UTC))

	// A reminder armed for an older start time does nothing
	onFire(s.ctx, session.ID, time.Date(2025, 7, 12, 13, 0, 0, 0, time.UTC))
}

func (s *RegistrationServiceTestSuite) TestScheduleEvent_Permissions() {
	session := s.seedSession(2, 1, &models.Team{Name: "Alpha", CaptainID: "a", MemberIDs: []string{"a", "b"}})

	output, err := s.service.ScheduleEvent(s.ctx, &ScheduleEventInput{
		SessionID:   session.ID,
		RequesterID: "a",
		StartTime:   "2025-07-12 20:00",
	})
	s.Require().NoError(err)
	s.ErrorIs(output.Rejection, ErrNotOrganizer)
	s.Equal(roster.KindPermission, roster.KindOf(output.Rejection))

	s.True(IsDelegate(session, "someone", []string{"mod-role"}, false))
	s.True(IsDelegate(session, "someone", nil, true))
	s.False(IsDelegate(session, "someone", []string{"other"}, false))
}

func (s *RegistrationServiceTestSuite) TestScheduleEvent_RequiresFull() {
	session := s.seedSession(2, 4)

	output, err := s.service.ScheduleEvent(s.ctx, &ScheduleEventInput{
		SessionID:   session.ID,
		RequesterID: s.testOrganizer,
		StartTime:   "2025-07-12 20:00",
	})
	s.Require().NoError(err)
	s.ErrorIs(output.Rejection, ErrSessionNotFull)
}

func (s *RegistrationServiceTestSuite) TestScheduleEvent_Reschedule() {
	session := s.seedSession(2, 1, &models.Team{Name: "Alpha", CaptainID: "a", MemberIDs: []string{"a", "b"}})
	s.allowNotifications()
	s.mockReminders.EXPECT().Schedule(gomock.Any(), gomock.Any()).Return(&reminder.ScheduleOutput{Scheduled: true}, nil).Times(2)

	first, err := s.service.ScheduleEvent(s.ctx, &ScheduleEventInput{SessionID: session.ID, RequesterID: s.testOrganizer, StartTime: "2025-07-12 20:00"})
	s.Require().NoError(err)
	s.False(first.Rescheduled)

	second, err := s.service.ScheduleEvent(s.ctx, &ScheduleEventInput{SessionID: session.ID, RequesterID: s.testOrganizer, StartTime: "2025-07-12 21:00"})
	s.Require().NoError(err)
	s.Require().Nil(second.Rejection)
	s.True(second.Rescheduled)
	s.True(s.reload(session.ID).ScheduledTime.Equal(time.Date(2025, 7, 12, 15, 30, 0, 0, time.UTC)))
}

func (s *RegistrationServiceTestSuite) TestScheduleEvent_OverlappingReschedulesKeepReminderInStep() {
	session := s.seedSession(2, 1, &models.Team{Name: "Alpha", CaptainID: "a", MemberIDs: []string{"a", "b"}})
	s.allowNotifications()

	entered := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	var armed []time.Time
	s.mockReminders.EXPECT().Schedule(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *reminder.ScheduleInput) (*reminder.ScheduleOutput, error) {
			mu.Lock()
			armed = append(armed, input.FireAt)
			first := len(armed) == 1
			mu.Unlock()
			if first {
				close(entered)
				<-release
			}
			return &reminder.ScheduleOutput{Scheduled: true}, nil
		}).Times(2)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, errs[0] = s.service.ScheduleEvent(s.ctx, &ScheduleEventInput{SessionID: session.ID, RequesterID: s.testOrganizer, StartTime: "2025-07-12 20:00"})
	}()
	<-entered

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, errs[1] = s.service.ScheduleEvent(s.ctx, &ScheduleEventInput{SessionID: session.ID, RequesterID: s.testOrganizer, StartTime: "2025-07-12 21:00"})
	}()

	// The second schedule waits for the first to finish arming
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	s.Len(armed, 1)
	mu.Unlock()

	close(release)
	wg.Wait()
	s.Require().NoError(errs[0])
	s.Require().NoError(errs[1])

	stored := s.reload(session.ID)
	s.True(stored.ScheduledTime.Equal(time.Date(2025, 7, 12, 15, 30, 0, 0, time.UTC)))
	s.Require().Len(armed, 2)
	s.True(armed[1].Equal(stored.ScheduledTime.Add(-30 * time.Minute)))
}

func (s *RegistrationServiceTestSuite) TestCloseSession_WhileSchedulingLeavesNoReminder() {
	session := s.seedSession(2, 1, &models.Team{Name: "Alpha", CaptainID: "a", MemberIDs: []string{"a", "b"}})
	s.allowNotifications()

	entered := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	var calls []string
	s.mockReminders.EXPECT().Schedule(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *reminder.ScheduleInput) (*reminder.ScheduleOutput, error) {
			mu.Lock()
			calls = append(calls, "schedule")
			mu.Unlock()
			close(entered)
			<-release
			return &reminder.ScheduleOutput{Scheduled: true}, nil
		})
	s.mockReminders.EXPECT().Cancel(gomock.Any(), &reminder.CancelInput{Key: session.ID}).DoAndReturn(
		func(_ context.Context, _ *reminder.CancelInput) (*reminder.CancelOutput, error) {
			mu.Lock()
			calls = append(calls, "cancel")
			mu.Unlock()
			return &reminder.CancelOutput{Cancelled: true}, nil
		})

	var wg sync.WaitGroup
	var scheduleErr, closeErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, scheduleErr = s.service.ScheduleEvent(s.ctx, &ScheduleEventInput{SessionID: session.ID, RequesterID: s.testOrganizer, StartTime: "2025-07-12 20:00"})
	}()
	<-entered

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, closeErr = s.service.CloseSession(s.ctx, &CloseSessionInput{SessionID: session.ID, RequesterID: s.testOrganizer})
	}()

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	s.Require().NoError(scheduleErr)
	s.Require().NoError(closeErr)

	s.Equal([]string{"schedule", "cancel"}, calls)
	s.True(s.reload(session.ID).State.IsClosed())
}

func (s *RegistrationServiceTestSuite) TestCloseSession() {
	session := s.seedSession(2, 4)
	s.allowNotifications()
	s.mockReminders.EXPECT().Cancel(s.ctx, &reminder.CancelInput{Key: session.ID}).Return(&reminder.CancelOutput{}, nil)

	otherGuild, err := s.service.CloseSession(s.ctx, &CloseSessionInput{SessionID: session.ID, GuildID: "guild-2", RequesterID: s.testOrganizer})
	s.Require().NoError(err)
	s.ErrorIs(otherGuild.Rejection, ErrSessionNotFound)

	notAllowed, err := s.service.CloseSession(s.ctx, &CloseSessionInput{SessionID: session.ID, GuildID: s.testGuildID, RequesterID: "random"})
	s.Require().NoError(err)
	s.ErrorIs(notAllowed.Rejection, ErrNotOrganizer)

	output, err := s.service.CloseSession(s.ctx, &CloseSessionInput{SessionID: session.ID, GuildID: s.testGuildID, RequesterID: "admin", RequesterIsAdmin: true})
	s.Require().NoError(err)
	s.Nil(output.Rejection)
	s.True(s.reload(session.ID).State.IsClosed())

	// The channel is free for a new session
	_, err = s.service.GetSessionByChannel(s.ctx, &GetSessionByChannelInput{GuildID: s.testGuildID, ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrSessionNotFound)

	// Registrations on a closed session are refused
	late := s.submit(session.ID, "x", "Late", "y")
	s.ErrorIs(late.Rejection, roster.ErrSessionNotAccepting)
}

func (s *RegistrationServiceTestSuite) TestCloseGuildSessions() {
	session := s.seedSession(2, 4)
	s.Require().NoError(s.guildConfigRepo.SaveGuildConfig(s.ctx, &guildConfigRepo.SaveGuildConfigInput{
		Config: &models.GuildConfig{GuildID: s.testGuildID, TeamRoleID: "r"},
	}))
	s.mockReminders.EXPECT().Cancel(s.ctx, &reminder.CancelInput{Key: session.ID}).Return(&reminder.CancelOutput{}, nil)

	output, err := s.service.CloseGuildSessions(s.ctx, &CloseGuildSessionsInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Equal([]string{session.ID}, output.ClosedSessionIDs)
	s.False(s.mr.Exists("session:" + session.ID))
	s.False(s.mr.Exists("channel_session:" + s.testGuildID + ":" + s.testChannelID))
	s.False(s.mr.Exists("guild_config:" + s.testGuildID))
}

func (s *RegistrationServiceTestSuite) TestReadsAndListing() {
	session := s.seedSession(2, 4, &models.Team{Name: "Alpha", CaptainID: "a", MemberIDs: []string{"a", "b"}})

	list, err := s.service.ListSessions(s.ctx, &ListSessionsInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Require().Len(list.Summaries, 1)
	s.Equal(1, list.Summaries[0].TeamCount)

	got, err := s.service.GetSession(s.ctx, &GetSessionInput{SessionID: session.ID, GuildID: "guild-2"})
	s.ErrorIs(err, ErrSessionNotFound)
	s.Nil(got)

	team, err := s.service.GetTeam(s.ctx, &GetTeamInput{GuildID: s.testGuildID, ChannelID: s.testChannelID, MemberID: "b"})
	s.Require().NoError(err)
	s.Equal("Alpha", team.Team.Name)
	s.False(team.IsCaptain)

	_, err = s.service.GetTeam(s.ctx, &GetTeamInput{SessionID: session.ID, MemberID: "nobody"})
	s.ErrorIs(err, roster.ErrTeamNotFound)
}

func (s *RegistrationServiceTestSuite) TestConfigureGuild_Merges() {
	_, err := s.service.ConfigureGuild(s.ctx, &ConfigureGuildInput{GuildID: s.testGuildID, TeamRoleID: "r1", PostChannelID: "p1"})
	s.Require().NoError(err)

	output, err := s.service.ConfigureGuild(s.ctx, &ConfigureGuildInput{GuildID: s.testGuildID, RosterChannelID: "rc"})
	s.Require().NoError(err)
	s.Equal("r1", output.Config.TeamRoleID)
	s.Equal("p1", output.Config.PostChannelID)
	s.Equal("rc", output.Config.RosterChannelID)

	reset, err := s.service.ConfigureGuild(s.ctx, &ConfigureGuildInput{GuildID: s.testGuildID, ModeratorRoleID: "mods", Reset: true})
	s.Require().NoError(err)
	s.Empty(reset.Config.TeamRoleID)
	s.Equal("mods", reset.Config.ModeratorRoleID)
}

func (s *RegistrationServiceTestSuite) TestPublishesTeamRegistered() {
	publisher := eventMocks.NewMockPublisher(s.mockCtrl)
	s.service.publisher = publisher
	session := s.seedSession(2, 4)
	s.allowNotifications()

	publisher.EXPECT().Publish(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, event events.Event) error {
		registered, ok := event.(events.TeamRegistered)
		s.Require().True(ok)
		s.Equal("Alpha", registered.TeamName)
		s.Equal(1, registered.Slot)
		return errors.New("nats down")
	})

	output := s.submit(session.ID, "a", "Alpha", "b")
	s.True(output.Accepted())
}
