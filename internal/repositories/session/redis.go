package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/scrimbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix       = "session:"
	channelKeyPrefix       = "channel_session:"
	guildSessionsKeyPrefix = "guild_sessions:"
	pendingTeamKeyPrefix   = "pending_team:"

	// Closed sessions stay readable for a day so late reminder fires and
	// button clicks can still find them
	closedSessionTTL = 24 * time.Hour
)

var (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrPendingTeamNotFound is returned when no member list is held for a captain
	ErrPendingTeamNotFound = errors.New("pending team not found")
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

func sessionKey(sessionID string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, sessionID)
}

func channelKey(guildID, channelID string) string {
	return fmt.Sprintf("%s%s:%s", channelKeyPrefix, guildID, channelID)
}

func guildSessionsKey(guildID string) string {
	return fmt.Sprintf("%s%s", guildSessionsKeyPrefix, guildID)
}

func pendingTeamKey(sessionID, captainID string) string {
	return fmt.Sprintf("%s%s:%s", pendingTeamKeyPrefix, sessionID, captainID)
}

// SaveSession persists a session to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	s := input.Session
	if s.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	sessionJSON, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// A closed session releases its channel, but only if the channel still points at it
	releaseChannel := false
	if s.State.IsClosed() && s.ChannelID != "" {
		boundID, err := r.client.Get(ctx, channelKey(s.GuildID, s.ChannelID)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to read channel binding: %w", err)
		}
		releaseChannel = boundID == s.ID
	}

	pipe := r.client.TxPipeline()

	if s.State.IsClosed() {
		pipe.Set(ctx, sessionKey(s.ID), sessionJSON, closedSessionTTL)
		pipe.ZRem(ctx, guildSessionsKey(s.GuildID), s.ID)
		if releaseChannel {
			pipe.Del(ctx, channelKey(s.GuildID, s.ChannelID))
		}
	} else {
		pipe.Set(ctx, sessionKey(s.ID), sessionJSON, 0)
		pipe.ZAdd(ctx, guildSessionsKey(s.GuildID), redis.Z{
			Score:  float64(s.CreatedAt.UnixNano()),
			Member: s.ID,
		})
		if s.ChannelID != "" {
			pipe.Set(ctx, channelKey(s.GuildID, s.ChannelID), s.ID, 0)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKey(input.SessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var s models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &s, nil
}

// GetSessionByChannel retrieves the session bound to a channel from Redis
func (r *redisRepository) GetSessionByChannel(ctx context.Context, input *GetSessionByChannelInput) (*models.Session, error) {
	if input == nil || input.GuildID == "" || input.ChannelID == "" {
		return nil, errors.New("input, guild ID and channel ID cannot be empty")
	}

	sessionID, err := r.client.Get(ctx, channelKey(input.GuildID, input.ChannelID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session ID for channel: %w", err)
	}

	return r.GetSession(ctx, &GetSessionInput{
		SessionID: sessionID,
	})
}

// DeleteSession removes a session from Redis
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	s, err := r.GetSession(ctx, &GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return err
	}

	boundID, err := r.client.Get(ctx, channelKey(s.GuildID, s.ChannelID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to read channel binding: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKey(s.ID))
	pipe.ZRem(ctx, guildSessionsKey(s.GuildID), s.ID)
	if boundID == s.ID {
		pipe.Del(ctx, channelKey(s.GuildID, s.ChannelID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// ListSessionsByGuild retrieves open sessions for a guild, oldest first
func (r *redisRepository) ListSessionsByGuild(ctx context.Context, input *ListSessionsByGuildInput) (*ListSessionsByGuildOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	sessionIDs, err := r.client.ZRange(ctx, guildSessionsKey(input.GuildID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session IDs for guild: %w", err)
	}

	if len(sessionIDs) == 0 {
		return &ListSessionsByGuildOutput{
			Sessions: []*models.Session{},
		}, nil
	}

	// Fetch every record in one round trip
	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(sessionIDs))
	for _, id := range sessionIDs {
		commands[id] = pipe.Get(ctx, sessionKey(id))
	}

	// redis.Nil on individual commands surfaces here too; handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(sessionIDs))
	for id, cmd := range commands {
		sessionJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Deleted between reading the index and fetching the record
				continue
			}
			return nil, fmt.Errorf("failed to get session %s: %w", id, err)
		}

		var s models.Session
		if err := json.Unmarshal([]byte(sessionJSON), &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", id, err)
		}

		sessions = append(sessions, &s)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	return &ListSessionsByGuildOutput{
		Sessions: sessions,
	}, nil
}

// SavePendingTeam stores a captain's member list with an expiry
func (r *redisRepository) SavePendingTeam(ctx context.Context, input *SavePendingTeamInput) error {
	if input == nil || input.SessionID == "" || input.CaptainID == "" {
		return errors.New("input, session ID and captain ID cannot be empty")
	}

	if input.TTL <= 0 {
		return errors.New("pending team TTL must be positive")
	}

	membersJSON, err := json.Marshal(input.MemberIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal pending team: %w", err)
	}

	if err := r.client.Set(ctx, pendingTeamKey(input.SessionID, input.CaptainID), membersJSON, input.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save pending team: %w", err)
	}

	return nil
}

// GetPendingTeam retrieves a captain's member list
func (r *redisRepository) GetPendingTeam(ctx context.Context, input *GetPendingTeamInput) ([]string, error) {
	if input == nil || input.SessionID == "" || input.CaptainID == "" {
		return nil, errors.New("input, session ID and captain ID cannot be empty")
	}

	membersJSON, err := r.client.Get(ctx, pendingTeamKey(input.SessionID, input.CaptainID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPendingTeamNotFound
		}
		return nil, fmt.Errorf("failed to get pending team: %w", err)
	}

	var memberIDs []string
	if err := json.Unmarshal([]byte(membersJSON), &memberIDs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending team: %w", err)
	}

	return memberIDs, nil
}

// DeletePendingTeam removes a captain's member list
func (r *redisRepository) DeletePendingTeam(ctx context.Context, input *DeletePendingTeamInput) error {
	if input == nil || input.SessionID == "" || input.CaptainID == "" {
		return errors.New("input, session ID and captain ID cannot be empty")
	}

	if err := r.client.Del(ctx, pendingTeamKey(input.SessionID, input.CaptainID)).Err(); err != nil {
		return fmt.Errorf("failed to delete pending team: %w", err)
	}

	return nil
}
