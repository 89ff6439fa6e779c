package guild_config

import "github.com/KirkDiggler/scrimbot/internal/models"

// LoadGuildConfigInput contains parameters for loading a guild configuration
type LoadGuildConfigInput struct {
	GuildID string
}

// SaveGuildConfigInput contains parameters for saving a guild configuration
type SaveGuildConfigInput struct {
	Config *models.GuildConfig
}

// DeleteGuildConfigInput contains parameters for deleting a guild configuration
type DeleteGuildConfigInput struct {
	GuildID string
}
