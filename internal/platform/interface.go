// Package platform describes the outbound calls the registration engine makes
// against the chat platform. The Discord adapter lives in handlers/discord.
package platform

//go:generate mockgen -package=mocks -destination=mocks/mock_platform.go github.com/KirkDiggler/scrimbot/internal/platform Platform

import "context"

// Platform is the messaging-platform collaborator
type Platform interface {
	// SendMessage posts a message to a channel
	SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error)

	// EditMessage replaces the content of a previously sent message
	EditMessage(ctx context.Context, input *EditMessageInput) error

	// SendDirectMessage delivers a private message to a user
	SendDirectMessage(ctx context.Context, input *SendDirectMessageInput) error

	// GrantRole adds a role to a guild member
	GrantRole(ctx context.Context, input *RoleInput) error

	// RevokeRole removes a role from a guild member
	RevokeRole(ctx context.Context, input *RoleInput) error

	// SetChannelAccess lets a member view and send in a channel
	SetChannelAccess(ctx context.Context, input *ChannelAccessInput) error

	// RemoveChannelAccess drops a member's channel overwrite
	RemoveChannelAccess(ctx context.Context, input *ChannelAccessInput) error

	// CreatePrivateChannel creates a channel only the listed users and roles can see
	CreatePrivateChannel(ctx context.Context, input *CreatePrivateChannelInput) (*CreatePrivateChannelOutput, error)
}
