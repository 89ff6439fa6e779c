package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/scrimbot/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/scrimbot/internal/models"
)

// Repository defines the interface for session persistence
type Repository interface {
	// SaveSession persists a session and keeps the channel and guild indexes in step
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetSessionByChannel retrieves the open session bound to a channel
	GetSessionByChannel(ctx context.Context, input *GetSessionByChannelInput) (*models.Session, error)

	// DeleteSession removes a session and its index entries
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// ListSessionsByGuild retrieves every open session in a guild
	ListSessionsByGuild(ctx context.Context, input *ListSessionsByGuildInput) (*ListSessionsByGuildOutput, error)

	// SavePendingTeam holds a captain's member list until the team name arrives
	SavePendingTeam(ctx context.Context, input *SavePendingTeamInput) error

	// GetPendingTeam returns the member list held for a captain
	GetPendingTeam(ctx context.Context, input *GetPendingTeamInput) ([]string, error)

	// DeletePendingTeam drops a captain's held member list
	DeletePendingTeam(ctx context.Context, input *DeletePendingTeamInput) error
}
