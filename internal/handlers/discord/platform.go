package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/scrimbot/internal/platform"
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// maxMessageLength is Discord's content limit for a single message
const maxMessageLength = 2000

// memberAccess is what a registered member or organizer is allowed in a restricted channel
const memberAccess = discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionReadMessageHistory

// DiscordAPI is the subset of *discordgo.Session the platform adapter uses
type DiscordAPI interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildMemberRoleRemove(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64, options ...discordgo.RequestOption) error
	ChannelPermissionDelete(channelID, targetID string, options ...discordgo.RequestOption) error
	GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// PlatformConfig holds configuration for the Discord platform adapter
type PlatformConfig struct {
	API DiscordAPI

	// BotUserID is added to restricted channels so the bot can keep posting in them
	BotUserID string
}

// Platform implements platform.Platform on top of discordgo
type Platform struct {
	api DiscordAPI

	mu        sync.RWMutex
	botUserID string
}

// NewPlatform creates a Discord platform adapter
func NewPlatform(cfg *PlatformConfig) (*Platform, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.API == nil {
		return nil, errors.New("discord API cannot be nil")
	}

	return &Platform{
		api:       cfg.API,
		botUserID: cfg.BotUserID,
	}, nil
}

// SetBotUserID records the bot's own user ID. Gateway handlers may be
// creating channels concurrently, so access is guarded.
func (p *Platform) SetBotUserID(userID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.botUserID = userID
}

func (p *Platform) currentBotUserID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.botUserID
}

// SendMessage posts a message, with an optional row of buttons
func (p *Platform) SendMessage(ctx context.Context, input *platform.SendMessageInput) (*platform.SendMessageOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	send := &discordgo.MessageSend{
		Content:         truncate(input.Content),
		AllowedMentions: &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeUsers}},
	}
	if len(input.Buttons) > 0 {
		send.Components = []discordgo.MessageComponent{buttonRow(input.Buttons)}
	}

	msg, err := p.api.ChannelMessageSendComplex(input.ChannelID, send, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to send message to %s: %w", input.ChannelID, err)
	}

	return &platform.SendMessageOutput{
		MessageID: msg.ID,
	}, nil
}

// EditMessage replaces the content of a message the bot posted
func (p *Platform) EditMessage(ctx context.Context, input *platform.EditMessageInput) error {
	if input == nil || input.ChannelID == "" || input.MessageID == "" {
		return errors.New("channel ID and message ID are required")
	}

	edit := discordgo.NewMessageEdit(input.ChannelID, input.MessageID).SetContent(truncate(input.Content))
	if _, err := p.api.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to edit message %s: %w", input.MessageID, err)
	}
	return nil
}

// SendDirectMessage opens a DM channel with the user and posts to it
func (p *Platform) SendDirectMessage(ctx context.Context, input *platform.SendDirectMessageInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("user ID is required")
	}

	channel, err := p.api.UserChannelCreate(input.UserID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open direct message with %s: %w", input.UserID, err)
	}

	if _, err := p.api.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Content: truncate(input.Content),
	}, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send direct message to %s: %w", input.UserID, err)
	}
	return nil
}

// GrantRole adds a role to a guild member
func (p *Platform) GrantRole(ctx context.Context, input *platform.RoleInput) error {
	if input == nil || input.RoleID == "" {
		return errors.New("role ID is required")
	}

	if err := p.api.GuildMemberRoleAdd(input.GuildID, input.UserID, input.RoleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to grant role %s to %s: %w", input.RoleID, input.UserID, err)
	}
	return nil
}

// RevokeRole removes a role from a guild member
func (p *Platform) RevokeRole(ctx context.Context, input *platform.RoleInput) error {
	if input == nil || input.RoleID == "" {
		return errors.New("role ID is required")
	}

	if err := p.api.GuildMemberRoleRemove(input.GuildID, input.UserID, input.RoleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to revoke role %s from %s: %w", input.RoleID, input.UserID, err)
	}
	return nil
}

// SetChannelAccess lets a member view and send in a channel
func (p *Platform) SetChannelAccess(ctx context.Context, input *platform.ChannelAccessInput) error {
	if input == nil || input.ChannelID == "" || input.UserID == "" {
		return errors.New("channel ID and user ID are required")
	}

	err := p.api.ChannelPermissionSet(input.ChannelID, input.UserID, discordgo.PermissionOverwriteTypeMember,
		memberAccess, 0, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open channel %s to %s: %w", input.ChannelID, input.UserID, err)
	}
	return nil
}

// RemoveChannelAccess deletes a member's overwrite on a channel
func (p *Platform) RemoveChannelAccess(ctx context.Context, input *platform.ChannelAccessInput) error {
	if input == nil || input.ChannelID == "" || input.UserID == "" {
		return errors.New("channel ID and user ID are required")
	}

	if err := p.api.ChannelPermissionDelete(input.ChannelID, input.UserID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to close channel %s to %s: %w", input.ChannelID, input.UserID, err)
	}
	return nil
}

// CreatePrivateChannel creates a text channel hidden from everyone except the listed users and roles
func (p *Platform) CreatePrivateChannel(ctx context.Context, input *platform.CreatePrivateChannelInput) (*platform.CreatePrivateChannelOutput, error) {
	if input == nil || input.GuildID == "" || input.Name == "" {
		return nil, errors.New("guild ID and name are required")
	}

	// The @everyone role shares the guild's ID
	overwrites := []*discordgo.PermissionOverwrite{
		{
			ID:   input.GuildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
	}

	userIDs := input.UserIDs
	if botUserID := p.currentBotUserID(); botUserID != "" {
		userIDs = append(append([]string{}, userIDs...), botUserID)
	}
	for _, userID := range userIDs {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    userID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: memberAccess,
		})
	}
	for _, roleID := range input.RoleIDs {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    roleID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: memberAccess,
		})
	}

	channel, err := p.api.GuildChannelCreateComplex(input.GuildID, discordgo.GuildChannelCreateData{
		Name:                 input.Name,
		Type:                 discordgo.ChannelTypeGuildText,
		PermissionOverwrites: overwrites,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to create channel %s: %w", input.Name, err)
	}

	log.WithFields(log.Fields{
		"guildID":   input.GuildID,
		"channelID": channel.ID,
		"name":      input.Name,
	}).Info("Created private channel")

	return &platform.CreatePrivateChannelOutput{
		ChannelID: channel.ID,
	}, nil
}

func buttonRow(buttons []platform.Button) discordgo.ActionsRow {
	components := make([]discordgo.MessageComponent, 0, len(buttons))
	for _, b := range buttons {
		components = append(components, discordgo.Button{
			Label:    b.Label,
			Style:    discordgo.PrimaryButton,
			CustomID: b.CustomID,
		})
	}
	return discordgo.ActionsRow{Components: components}
}

func truncate(content string) string {
	runes := []rune(content)
	if len(runes) <= maxMessageLength {
		return content
	}
	return string(runes[:maxMessageLength-1]) + "…"
}
