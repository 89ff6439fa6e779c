// Package events defines the domain events emitted by the registration engine
// and the publishers that carry them off-process.
package events

import "time"

// EventType names a domain event
type EventType string

const (
	EventTypeTeamRegistered   EventType = "team_registered"
	EventTypeTeamWithdrawn    EventType = "team_withdrawn"
	EventTypeSessionFull      EventType = "session_full"
	EventTypeSessionReopened  EventType = "session_reopened"
	EventTypeSessionScheduled EventType = "session_scheduled"
	EventTypeSessionClosed    EventType = "session_closed"
)

// Event is anything that can be published
type Event interface {
	Type() EventType
}

// TeamRegistered is emitted when a team takes a slot
type TeamRegistered struct {
	GuildID   string    `json:"guild_id"`
	SessionID string    `json:"session_id"`
	TeamName  string    `json:"team_name"`
	CaptainID string    `json:"captain_id"`
	MemberIDs []string  `json:"member_ids"`
	Slot      int       `json:"slot"`
	Timestamp time.Time `json:"timestamp"`
}

func (e TeamRegistered) Type() EventType { return EventTypeTeamRegistered }

// TeamWithdrawn is emitted when a captain gives up a slot
type TeamWithdrawn struct {
	GuildID   string    `json:"guild_id"`
	SessionID string    `json:"session_id"`
	TeamName  string    `json:"team_name"`
	CaptainID string    `json:"captain_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e TeamWithdrawn) Type() EventType { return EventTypeTeamWithdrawn }

// SessionFull is emitted when the last slot is taken
type SessionFull struct {
	GuildID   string    `json:"guild_id"`
	SessionID string    `json:"session_id"`
	TeamCount int       `json:"team_count"`
	Timestamp time.Time `json:"timestamp"`
}

func (e SessionFull) Type() EventType { return EventTypeSessionFull }

// SessionReopened is emitted when a full session frees a slot
type SessionReopened struct {
	GuildID   string    `json:"guild_id"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e SessionReopened) Type() EventType { return EventTypeSessionReopened }

// SessionScheduled is emitted when the organizer sets or changes the start time
type SessionScheduled struct {
	GuildID     string    `json:"guild_id"`
	SessionID   string    `json:"session_id"`
	StartTime   time.Time `json:"start_time"`
	Details     string    `json:"details"`
	Rescheduled bool      `json:"rescheduled"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e SessionScheduled) Type() EventType { return EventTypeSessionScheduled }

// SessionClosed is emitted when a session stops for good
type SessionClosed struct {
	GuildID   string    `json:"guild_id"`
	SessionID string    `json:"session_id"`
	ClosedBy  string    `json:"closed_by"`
	Timestamp time.Time `json:"timestamp"`
}

func (e SessionClosed) Type() EventType { return EventTypeSessionClosed }
