package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/scrimbot/internal/common/clock"
	"github.com/KirkDiggler/scrimbot/internal/common/clock/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReminderServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mocks.MockClock
	service   *service
	testNow   time.Time

	// fire holds the callbacks handed to AfterFunc, in order
	fire []func()
}

func (s *ReminderServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.ctrl)
	s.testNow = time.Date(2025, 7, 10, 10, 0, 0, 0, time.UTC)
	s.fire = nil

	svc, err := New(&Config{Clock: s.mockClock})
	s.Require().NoError(err)
	s.service = svc

	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()
}

func (s *ReminderServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReminderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReminderServiceTestSuite))
}

// expectTimer records the callback and returns a mock timer
func (s *ReminderServiceTestSuite) expectTimer(delay time.Duration) *mocks.MockTimer {
	timer := mocks.NewMockTimer(s.ctrl)
	s.mockClock.EXPECT().AfterFunc(delay, gomock.Any()).DoAndReturn(func(d time.Duration, f func()) clock.Timer {
		s.fire = append(s.fire, f)
		return timer
	})
	return timer
}

func (s *ReminderServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilClock)
}

func (s *ReminderServiceTestSuite) TestSchedule_Fires() {
	s.expectTimer(90 * time.Minute)

	var firedKey string
	var firedAt time.Time
	output, err := s.service.Schedule(context.Background(), &ScheduleInput{
		Key:    "session-1",
		FireAt: s.testNow.Add(90 * time.Minute),
		OnFire: func(ctx context.Context, key string, fireAt time.Time) {
			firedKey = key
			firedAt = fireAt
		},
	})
	s.Require().NoError(err)
	s.True(output.Scheduled)
	s.False(output.Replaced)
	s.Equal(1, s.service.Pending())

	s.Require().Len(s.fire, 1)
	s.fire[0]()

	s.Equal("session-1", firedKey)
	s.Equal(s.testNow.Add(90*time.Minute), firedAt)
	s.Equal(0, s.service.Pending())
}

func (s *ReminderServiceTestSuite) TestSchedule_PastTimeSkipped() {
	output, err := s.service.Schedule(context.Background(), &ScheduleInput{
		Key:    "session-1",
		FireAt: s.testNow.Add(-time.Minute),
		OnFire: func(context.Context, string, time.Time) {
			s.Fail("should not fire")
		},
	})
	s.Require().NoError(err)
	s.False(output.Scheduled)
	s.Equal(0, s.service.Pending())
}

func (s *ReminderServiceTestSuite) TestSchedule_ReplacesPrevious() {
	first := s.expectTimer(time.Hour)
	first.EXPECT().Stop().Return(true)
	s.expectTimer(2 * time.Hour)

	fired := 0
	onFire := func(context.Context, string, time.Time) { fired++ }

	_, err := s.service.Schedule(context.Background(), &ScheduleInput{Key: "session-1", FireAt: s.testNow.Add(time.Hour), OnFire: onFire})
	s.Require().NoError(err)

	output, err := s.service.Schedule(context.Background(), &ScheduleInput{Key: "session-1", FireAt: s.testNow.Add(2 * time.Hour), OnFire: onFire})
	s.Require().NoError(err)
	s.True(output.Replaced)

	// A stale callback that raced past Stop must not run
	s.fire[0]()
	s.Equal(0, fired)

	s.fire[1]()
	s.Equal(1, fired)
}

func (s *ReminderServiceTestSuite) TestCancel() {
	timer := s.expectTimer(time.Hour)
	timer.EXPECT().Stop().Return(true)

	_, err := s.service.Schedule(context.Background(), &ScheduleInput{
		Key:    "session-1",
		FireAt: s.testNow.Add(time.Hour),
		OnFire: func(context.Context, string, time.Time) { s.Fail("cancelled reminder fired") },
	})
	s.Require().NoError(err)

	output, err := s.service.Cancel(context.Background(), &CancelInput{Key: "session-1"})
	s.Require().NoError(err)
	s.True(output.Cancelled)

	s.fire[0]()

	output, err = s.service.Cancel(context.Background(), &CancelInput{Key: "session-1"})
	s.Require().NoError(err)
	s.False(output.Cancelled)
}

func (s *ReminderServiceTestSuite) TestStop() {
	timer := s.expectTimer(time.Hour)
	timer.EXPECT().Stop().Return(true)

	_, err := s.service.Schedule(context.Background(), &ScheduleInput{
		Key:    "session-1",
		FireAt: s.testNow.Add(time.Hour),
		OnFire: func(context.Context, string, time.Time) {},
	})
	s.Require().NoError(err)

	s.service.Stop()
	s.Equal(0, s.service.Pending())

	_, err = s.service.Schedule(context.Background(), &ScheduleInput{
		Key:    "session-2",
		FireAt: s.testNow.Add(time.Hour),
		OnFire: func(context.Context, string, time.Time) {},
	})
	s.ErrorIs(err, ErrStopped)
}

func (s *ReminderServiceTestSuite) TestSchedule_InvalidInput() {
	_, err := s.service.Schedule(context.Background(), &ScheduleInput{FireAt: s.testNow.Add(time.Hour), OnFire: func(context.Context, string, time.Time) {}})
	s.ErrorIs(err, ErrInvalidKey)

	_, err = s.service.Schedule(context.Background(), &ScheduleInput{Key: "k", FireAt: s.testNow.Add(time.Hour)})
	s.ErrorIs(err, ErrNilCallback)
}
