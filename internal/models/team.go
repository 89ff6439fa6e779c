package models

import (
	"strings"
	"time"
)

// Team represents one registered team within a session
type Team struct {
	// Name is unique within the session, compared case-insensitively
	Name string

	// CaptainID is the member who registered the team
	CaptainID string

	// MemberIDs lists every member, captain first
	MemberIDs []string

	// RegisteredAt is when the team was accepted
	RegisteredAt time.Time
}

// HasMember returns true if the member belongs to this team
func (t *Team) HasMember(memberID string) bool {
	for _, id := range t.MemberIDs {
		if id == memberID {
			return true
		}
	}
	return false
}

// NameMatches compares team names case-insensitively
func (t *Team) NameMatches(name string) bool {
	return strings.EqualFold(strings.TrimSpace(t.Name), strings.TrimSpace(name))
}
