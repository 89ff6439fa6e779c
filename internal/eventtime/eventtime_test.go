package eventtime

import (
	"testing"
	"time"

	"github.com/KirkDiggler/scrimbot/internal/roster"
	"github.com/stretchr/testify/suite"
)

type EventTimeTestSuite struct {
	suite.Suite
	parser  *Parser
	testNow time.Time
}

func (s *EventTimeTestSuite) SetupTest() {
	s.parser = NewParser(DefaultOffset)
	s.testNow = time.Date(2025, 7, 10, 10, 0, 0, 0, time.UTC)
}

func TestEventTimeTestSuite(t *testing.T) {
	suite.Run(t, new(EventTimeTestSuite))
}

func (s *EventTimeTestSuite) TestParse_ConvertsISTToUTC() {
	got, err := s.parser.Parse("2025-07-10 18:30", s.testNow)
	s.Require().NoError(err)
	s.Equal(time.Date(2025, 7, 10, 13, 0, 0, 0, time.UTC), got)
	s.Equal(time.UTC, got.Location())
}

func (s *EventTimeTestSuite) TestParse_AlternateLayouts() {
	for _, input := range []string{"2025-07-11 09:00:00", "2025-07-11T09:00", "2025/07/11 09:00"} {
		got, err := s.parser.Parse(input, s.testNow)
		s.Require().NoError(err, input)
		s.Equal(time.Date(2025, 7, 11, 3, 30, 0, 0, time.UTC), got, input)
	}
}

func (s *EventTimeTestSuite) TestParse_PastRejected() {
	// 15:30 IST is exactly now in UTC, which is not strictly in the future
	_, err := s.parser.Parse("2025-07-10 15:30", s.testNow)
	var timeErr *PastOrInvalidTimeError
	s.Require().ErrorAs(err, &timeErr)
	s.Contains(timeErr.Reason, "future")
	s.Equal(roster.KindTimeParse, roster.KindOf(err))

	_, err = s.parser.Parse("2024-01-01 00:00", s.testNow)
	s.ErrorAs(err, &timeErr)
}

func (s *EventTimeTestSuite) TestParse_Garbage() {
	for _, input := range []string{"", "tomorrow evening", "2025-13-40 99:99"} {
		_, err := s.parser.Parse(input, s.testNow)
		var timeErr *PastOrInvalidTimeError
		s.Require().ErrorAs(err, &timeErr, input)
		s.Contains(err.Error(), ExpectedFormat)
	}
}

func (s *EventTimeTestSuite) TestFormat() {
	s.Equal("2025-07-10 18:30", s.parser.Format(time.Date(2025, 7, 10, 13, 0, 0, 0, time.UTC)))
}

func (s *EventTimeTestSuite) TestCustomOffset() {
	parser := NewParser(-4 * time.Hour)
	got, err := parser.Parse("2025-07-10 08:00", s.testNow)
	s.Require().NoError(err)
	s.Equal(time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC), got)
}
