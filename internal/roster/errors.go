package roster

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a rejection for the caller
type Kind string

const (
	// KindValidation is user-correctable input (wrong size, duplicate name or member)
	KindValidation Kind = "validation"

	// KindState means the session is not in a state that allows the action
	KindState Kind = "state"

	// KindPermission means a captain-only or organizer-only action was attempted by someone else
	KindPermission Kind = "permission"

	// KindTimeParse means scheduling input was rejected
	KindTimeParse Kind = "time_parse"

	// KindPlatform is a fault outside the user's control (outbound call, storage,
	// programming error). It is logged, not shown as a rule violation.
	KindPlatform Kind = "platform"
)

// RosterError is a payload-free roster rejection
type RosterError string

// Error implements the error interface
func (e RosterError) Error() string {
	return string(e)
}

// Kind classifies the error
func (e RosterError) Kind() Kind {
	switch e {
	case ErrNilSession:
		return KindPlatform
	case ErrNotCaptain:
		return KindPermission
	case ErrInvalidTeamName:
		return KindValidation
	default:
		return KindState
	}
}

const (
	ErrSessionNotAccepting RosterError = "this session is not accepting registrations"
	ErrCapacityExceeded    RosterError = "all slots are already filled"
	ErrNotCaptain          RosterError = "only the team captain can do that"
	ErrTeamNotFound        RosterError = "you are not registered on any team in this session"
	ErrInvalidTeamName     RosterError = "team name must be between 1 and 32 characters"
	ErrNilSession          RosterError = "session cannot be nil"
)

// WrongTeamSizeError reports a member count that does not match the session team size
type WrongTeamSizeError struct {
	Required int
	Given    int
}

func (e *WrongTeamSizeError) Error() string {
	return fmt.Sprintf("need exactly %d members including the captain, got %d", e.Required, e.Given)
}

// Kind classifies the error
func (e *WrongTeamSizeError) Kind() Kind { return KindValidation }

// DuplicateMemberError reports members listed more than once in a single submission
type DuplicateMemberError struct {
	MemberIDs []string
}

func (e *DuplicateMemberError) Error() string {
	return fmt.Sprintf("members listed more than once: %s", strings.Join(e.MemberIDs, ", "))
}

// Kind classifies the error
func (e *DuplicateMemberError) Kind() Kind { return KindValidation }

// DuplicateTeamNameError reports a name already used in the session
type DuplicateTeamNameError struct {
	Name string
}

func (e *DuplicateTeamNameError) Error() string {
	return fmt.Sprintf("team name %q is already taken", e.Name)
}

// Kind classifies the error
func (e *DuplicateTeamNameError) Kind() Kind { return KindValidation }

// MemberAlreadyRegisteredError lists members who already belong to another team
type MemberAlreadyRegisteredError struct {
	MemberIDs []string
	TeamNames []string
}

func (e *MemberAlreadyRegisteredError) Error() string {
	return fmt.Sprintf("already registered with another team: %s", strings.Join(e.MemberIDs, ", "))
}

// Kind classifies the error
func (e *MemberAlreadyRegisteredError) Kind() Kind { return KindValidation }

type kinded interface {
	Kind() Kind
}

// KindOf returns the classification of err, or KindPlatform for anything
// that is not a known rejection.
func KindOf(err error) Kind {
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindPlatform
}

// IsRejection reports whether err is an expected, user-facing rejection
func IsRejection(err error) bool {
	if err == nil {
		return false
	}
	return KindOf(err) != KindPlatform
}
