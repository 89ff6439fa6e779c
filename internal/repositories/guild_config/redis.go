package guild_config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/scrimbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const guildConfigKeyPrefix = "guild_config:"

// Config holds configuration for the Redis guild config repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed guild config repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func guildConfigKey(guildID string) string {
	return fmt.Sprintf("%s%s", guildConfigKeyPrefix, guildID)
}

// LoadGuildConfig retrieves a guild configuration from Redis
func (r *redisRepository) LoadGuildConfig(ctx context.Context, input *LoadGuildConfigInput) (*models.GuildConfig, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	configJSON, err := r.client.Get(ctx, guildConfigKey(input.GuildID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &models.GuildConfig{GuildID: input.GuildID}, nil
		}
		return nil, fmt.Errorf("failed to get guild config: %w", err)
	}

	var cfg models.GuildConfig
	if err := json.Unmarshal([]byte(configJSON), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guild config: %w", err)
	}

	return &cfg, nil
}

// SaveGuildConfig persists a guild configuration to Redis
func (r *redisRepository) SaveGuildConfig(ctx context.Context, input *SaveGuildConfigInput) error {
	if input == nil || input.Config == nil {
		return errors.New("input and config cannot be nil")
	}

	if input.Config.GuildID == "" {
		return errors.New("guild ID cannot be empty")
	}

	configJSON, err := json.Marshal(input.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal guild config: %w", err)
	}

	if err := r.client.Set(ctx, guildConfigKey(input.Config.GuildID), configJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save guild config: %w", err)
	}

	return nil
}

// DeleteGuildConfig removes a guild configuration from Redis
func (r *redisRepository) DeleteGuildConfig(ctx context.Context, input *DeleteGuildConfigInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	if err := r.client.Del(ctx, guildConfigKey(input.GuildID)).Err(); err != nil {
		return fmt.Errorf("failed to delete guild config: %w", err)
	}

	return nil
}
