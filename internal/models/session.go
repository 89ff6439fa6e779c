package models

import (
	"time"
)

// SessionState represents the current stage of a registration session
type SessionState string

const (
	// SessionStateCollecting indicates teams may still register
	SessionStateCollecting SessionState = "collecting"

	// SessionStateFull indicates every slot is taken
	SessionStateFull SessionState = "full"

	// SessionStateScheduled indicates the organizer has set the event time
	SessionStateScheduled SessionState = "scheduled"

	// SessionStateClosed indicates the session is finished and accepts nothing
	SessionStateClosed SessionState = "closed"
)

// IsCollecting returns true if the session accepts registrations
func (s SessionState) IsCollecting() bool {
	return s == SessionStateCollecting
}

// IsFull returns true if every slot is taken
func (s SessionState) IsFull() bool {
	return s == SessionStateFull
}

// IsScheduled returns true if an event time has been set
func (s SessionState) IsScheduled() bool {
	return s == SessionStateScheduled
}

// IsClosed returns true if the session is terminal
func (s SessionState) IsClosed() bool {
	return s == SessionStateClosed
}

// AccessMode selects how registered members are given access
type AccessMode string

const (
	// AccessModeRole grants the session role to every member
	AccessModeRole AccessMode = "role"

	// AccessModeChannel additionally opens the registration channel to each member
	AccessModeChannel AccessMode = "channel"
)

// Session represents one team registration workflow in a guild channel
type Session struct {
	// ID is the unique identifier for the session, prefixed with the guild ID
	ID string

	// GuildID is the Discord guild the session belongs to
	GuildID string

	// ChannelID is the registration channel where teams submit
	ChannelID string

	// RosterChannelID is where confirmed teams are announced
	RosterChannelID string

	// TournamentName is the display name of the event
	TournamentName string

	// TeamSize is the number of members per team, captain included
	TeamSize int

	// MaxSlots is the number of teams the session accepts
	MaxSlots int

	// AssignedRoleID is granted to every confirmed member
	AssignedRoleID string

	// ModeratorRoleID may schedule the event alongside the organizer
	ModeratorRoleID string

	// AccessMode selects role-only or role plus channel access
	AccessMode AccessMode

	// OrganizerID is the user who created the session
	OrganizerID string

	// Roster holds the registered teams in registration order
	Roster []*Team

	// State is the current stage of the session
	State SessionState

	// ScheduledTime is the event start in UTC, set once scheduled
	ScheduledTime *time.Time

	// ScheduledDetails is the organizer's free-text event description
	ScheduledDetails string

	// RosterMessageID is the message listing registered teams
	RosterMessageID string

	// FollowUpChannelID is the restricted channel opened when the roster fills
	FollowUpChannelID string

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last updated
	UpdatedAt time.Time
}

// SlotsTaken returns the number of registered teams
func (s *Session) SlotsTaken() int {
	return len(s.Roster)
}

// SlotsRemaining returns the number of open slots
func (s *Session) SlotsRemaining() int {
	remaining := s.MaxSlots - len(s.Roster)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// TeamByCaptain returns the team captained by the given member, or nil
func (s *Session) TeamByCaptain(captainID string) *Team {
	for _, team := range s.Roster {
		if team.CaptainID == captainID {
			return team
		}
	}
	return nil
}

// TeamByMember returns the team the given member belongs to, or nil
func (s *Session) TeamByMember(memberID string) *Team {
	for _, team := range s.Roster {
		if team.HasMember(memberID) {
			return team
		}
	}
	return nil
}

// Summary returns a compact view of the session for listings
func (s *Session) Summary() *SessionSummary {
	return &SessionSummary{
		ID:             s.ID,
		GuildID:        s.GuildID,
		ChannelID:      s.ChannelID,
		TournamentName: s.TournamentName,
		OrganizerID:    s.OrganizerID,
		State:          s.State,
		TeamCount:      len(s.Roster),
		MaxSlots:       s.MaxSlots,
		TeamSize:       s.TeamSize,
		ScheduledTime:  s.ScheduledTime,
		CreatedAt:      s.CreatedAt,
	}
}

// SessionSummary is a read-only projection used by list views
type SessionSummary struct {
	ID             string
	GuildID        string
	ChannelID      string
	TournamentName string
	OrganizerID    string
	State          SessionState
	TeamCount      int
	MaxSlots       int
	TeamSize       int
	ScheduledTime  *time.Time
	CreatedAt      time.Time
}
