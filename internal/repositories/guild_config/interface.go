package guild_config

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/scrimbot/internal/repositories/guild_config Repository

import (
	"context"

	"github.com/KirkDiggler/scrimbot/internal/models"
)

// Repository defines the interface for per-guild configuration persistence
type Repository interface {
	// LoadGuildConfig retrieves a guild's configuration. A guild that was never
	// configured yields an empty config, not an error.
	LoadGuildConfig(ctx context.Context, input *LoadGuildConfigInput) (*models.GuildConfig, error)

	// SaveGuildConfig persists a guild's configuration
	SaveGuildConfig(ctx context.Context, input *SaveGuildConfigInput) error

	// DeleteGuildConfig removes a guild's configuration
	DeleteGuildConfig(ctx context.Context, input *DeleteGuildConfigInput) error
}
