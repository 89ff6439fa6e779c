// Package roster holds the capacity-gated team list of a registration session.
//
// Every function here is pure: it validates against and mutates a
// *models.Session in memory. Callers are responsible for serializing access to
// a session and for persisting it afterwards.
package roster

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/KirkDiggler/scrimbot/internal/models"
)

// MaxTeamNameLength is the longest accepted team name in runes
const MaxTeamNameLength = 32

// Candidate is a team asking for a slot
type Candidate struct {
	Name         string
	CaptainID    string
	MemberIDs    []string
	RegisteredAt time.Time
}

// RegisterResult describes an accepted registration
type RegisterResult struct {
	Team *models.Team

	// Slot is the 1-based position of the team in the roster
	Slot int

	// BecameFull is true when this registration took the last slot
	BecameFull bool
}

// WithdrawResult describes a removed team
type WithdrawResult struct {
	Team *models.Team

	// Reopened is true when the session went from full back to collecting
	Reopened bool
}

// TryRegister validates the candidate against the session and appends it to
// the roster. Checks run in a fixed order and the first failure is returned;
// the session is left untouched on any failure.
func TryRegister(session *models.Session, candidate Candidate) (*RegisterResult, error) {
	if session == nil {
		return nil, ErrNilSession
	}

	if err := checkOpen(session); err != nil {
		return nil, err
	}

	members := withCaptain(candidate.CaptainID, candidate.MemberIDs)
	if len(members) != session.TeamSize {
		return nil, &WrongTeamSizeError{Required: session.TeamSize, Given: len(members)}
	}

	if dups := duplicates(members); len(dups) > 0 {
		return nil, &DuplicateMemberError{MemberIDs: dups}
	}

	name := strings.TrimSpace(candidate.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	for _, team := range session.Roster {
		if team.NameMatches(name) {
			return nil, &DuplicateTeamNameError{Name: name}
		}
	}

	if err := checkExclusive(session, members); err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:         name,
		CaptainID:    candidate.CaptainID,
		MemberIDs:    members,
		RegisteredAt: candidate.RegisteredAt,
	}
	session.Roster = append(session.Roster, team)

	becameFull := len(session.Roster) == session.MaxSlots
	if becameFull {
		session.State = models.SessionStateFull
	}

	return &RegisterResult{
		Team:       team,
		Slot:       len(session.Roster),
		BecameFull: becameFull,
	}, nil
}

// CheckMembers runs every TryRegister check that does not need a team name.
// It returns the member list with the captain first. Use it to validate a
// member list that is held while the captain picks a name.
func CheckMembers(session *models.Session, captainID string, memberIDs []string) ([]string, error) {
	if session == nil {
		return nil, ErrNilSession
	}

	if err := checkOpen(session); err != nil {
		return nil, err
	}

	members := withCaptain(captainID, memberIDs)
	if len(members) != session.TeamSize {
		return nil, &WrongTeamSizeError{Required: session.TeamSize, Given: len(members)}
	}

	if dups := duplicates(members); len(dups) > 0 {
		return nil, &DuplicateMemberError{MemberIDs: dups}
	}

	if err := checkExclusive(session, members); err != nil {
		return nil, err
	}

	return members, nil
}

// Withdraw removes the team captained by the requester. A full session
// returns to collecting.
func Withdraw(session *models.Session, requesterID string) (*WithdrawResult, error) {
	if session == nil {
		return nil, ErrNilSession
	}

	if session.State.IsScheduled() || session.State.IsClosed() {
		return nil, ErrSessionNotAccepting
	}

	index := -1
	for i, team := range session.Roster {
		if team.CaptainID == requesterID {
			index = i
			break
		}
	}
	if index < 0 {
		if session.TeamByMember(requesterID) != nil {
			return nil, ErrNotCaptain
		}
		return nil, ErrTeamNotFound
	}

	team := session.Roster[index]
	session.Roster = append(session.Roster[:index:index], session.Roster[index+1:]...)

	reopened := false
	if session.State.IsFull() && len(session.Roster) < session.MaxSlots {
		session.State = models.SessionStateCollecting
		reopened = true
	}

	return &WithdrawResult{
		Team:     team,
		Reopened: reopened,
	}, nil
}

// Rename changes the name of the requester's team. Keeping the same name
// with different casing is allowed.
func Rename(session *models.Session, requesterID, newName string) (*models.Team, error) {
	if session == nil {
		return nil, ErrNilSession
	}

	if session.State.IsClosed() {
		return nil, ErrSessionNotAccepting
	}

	team := session.TeamByCaptain(requesterID)
	if team == nil {
		if session.TeamByMember(requesterID) != nil {
			return nil, ErrNotCaptain
		}
		return nil, ErrTeamNotFound
	}

	name := strings.TrimSpace(newName)
	if err := validateName(name); err != nil {
		return nil, err
	}
	for _, other := range session.Roster {
		if other == team {
			continue
		}
		if other.NameMatches(name) {
			return nil, &DuplicateTeamNameError{Name: name}
		}
	}

	team.Name = name
	return team, nil
}

// MemberIDs returns every registered member across all teams in roster order
func MemberIDs(session *models.Session) []string {
	if session == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var ids []string
	for _, team := range session.Roster {
		for _, id := range team.MemberIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// checkOpen rejects sessions that cannot take another team. A full session
// reports capacity rather than state.
func checkOpen(session *models.Session) error {
	switch session.State {
	case models.SessionStateCollecting:
	case models.SessionStateFull:
		return ErrCapacityExceeded
	default:
		return ErrSessionNotAccepting
	}

	if len(session.Roster) >= session.MaxSlots {
		return ErrCapacityExceeded
	}
	return nil
}

// withCaptain returns a copy of members with the captain first. The captain
// is added if the raw input left them out.
func withCaptain(captainID string, memberIDs []string) []string {
	members := make([]string, 0, len(memberIDs)+1)
	members = append(members, captainID)
	captainSeen := false
	for _, id := range memberIDs {
		if id == captainID && !captainSeen {
			captainSeen = true
			continue
		}
		members = append(members, id)
	}
	return members
}

func duplicates(ids []string) []string {
	counts := make(map[string]int, len(ids))
	var dups []string
	for _, id := range ids {
		counts[id]++
		if counts[id] == 2 {
			dups = append(dups, id)
		}
	}
	return dups
}

func validateName(name string) error {
	if name == "" || utf8.RuneCountInString(name) > MaxTeamNameLength {
		return ErrInvalidTeamName
	}
	return nil
}

func checkExclusive(session *models.Session, members []string) error {
	var collided []string
	var teamNames []string
	seenTeams := make(map[*models.Team]struct{})

	for _, id := range members {
		team := session.TeamByMember(id)
		if team == nil {
			continue
		}
		collided = append(collided, id)
		if _, ok := seenTeams[team]; !ok {
			seenTeams[team] = struct{}{}
			teamNames = append(teamNames, team.Name)
		}
	}

	if len(collided) > 0 {
		return &MemberAlreadyRegisteredError{MemberIDs: collided, TeamNames: teamNames}
	}
	return nil
}
