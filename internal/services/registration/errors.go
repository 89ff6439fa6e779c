package registration

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/scrimbot/internal/roster"
)

// RegistrationError is a custom error type for session-level errors
type RegistrationError string

// Error implements the error interface
func (e RegistrationError) Error() string {
	return string(e)
}

// Kind classifies the error
func (e RegistrationError) Kind() roster.Kind {
	switch e {
	case ErrNotOrganizer:
		return roster.KindPermission
	case ErrSessionAlreadyExists, ErrSessionNotFound, ErrSessionNotFull, ErrNoPendingTeam:
		return roster.KindState
	default:
		return roster.KindPlatform
	}
}

const (
	ErrSessionAlreadyExists RegistrationError = "a registration session is already running in this channel"
	ErrSessionNotFound      RegistrationError = "no registration session found"
	ErrNotOrganizer         RegistrationError = "only the organizer or a moderator can do that"
	ErrSessionNotFull       RegistrationError = "the event can only be scheduled once every slot is filled"
	ErrNoPendingTeam        RegistrationError = "no member list is waiting for a team name; post your member mentions again"
	ErrNilInput             RegistrationError = "input cannot be nil"
	ErrNilConfig            RegistrationError = "config cannot be nil"
	ErrNilSessionRepo       RegistrationError = "session repository cannot be nil"
	ErrNilGuildConfigRepo   RegistrationError = "guild config repository cannot be nil"
	ErrNilPlatform          RegistrationError = "platform cannot be nil"
	ErrNilProvisioner       RegistrationError = "provisioner cannot be nil"
	ErrNilMessaging         RegistrationError = "messaging service cannot be nil"
	ErrNilReminders         RegistrationError = "reminder service cannot be nil"
	ErrNilClock             RegistrationError = "clock cannot be nil"
	ErrNilUUIDGenerator     RegistrationError = "UUID generator cannot be nil"
)

// InvalidSessionError reports session settings that failed validation
type InvalidSessionError struct {
	Problems []string
}

func (e *InvalidSessionError) Error() string {
	return fmt.Sprintf("invalid session settings: %s", strings.Join(e.Problems, "; "))
}

// Kind classifies the error
func (e *InvalidSessionError) Kind() roster.Kind { return roster.KindValidation }
