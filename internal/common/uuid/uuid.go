package uuid

import (
	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/scrimbot/internal/common/uuid UUID

// UUID generates identifiers for sessions and events
type UUID interface {
	NewUUID() string
}

// DefaultUUID generates random version 4 identifiers
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// Scoped returns an identifier namespaced by scope, e.g. a guild ID, so
// entities from different guilds never collide and can be checked by prefix
func Scoped(gen UUID, scope string) string {
	if scope == "" {
		return gen.NewUUID()
	}
	return scope + "-" + gen.NewUUID()
}
