package session

import (
	"time"

	"github.com/KirkDiggler/scrimbot/internal/models"
)

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type GetSessionByChannelInput struct {
	GuildID   string
	ChannelID string
}

type DeleteSessionInput struct {
	SessionID string
}

type ListSessionsByGuildInput struct {
	GuildID string
}

type ListSessionsByGuildOutput struct {
	Sessions []*models.Session
}

type SavePendingTeamInput struct {
	SessionID string
	CaptainID string
	MemberIDs []string

	// TTL bounds how long the captain has to name the team
	TTL time.Duration
}

type GetPendingTeamInput struct {
	SessionID string
	CaptainID string
}

type DeletePendingTeamInput struct {
	SessionID string
	CaptainID string
}
