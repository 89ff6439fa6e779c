package provisioner

import (
	"context"

	"github.com/KirkDiggler/scrimbot/internal/models"
	"github.com/KirkDiggler/scrimbot/internal/platform"
	log "github.com/sirupsen/logrus"
)

// Config holds configuration for the provisioner
type Config struct {
	Platform platform.Platform
}

type service struct {
	platform platform.Platform
}

// New creates a new provisioner
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Platform == nil {
		return nil, ErrNilPlatform
	}

	return &service{
		platform: cfg.Platform,
	}, nil
}

// GrantTeamAccess provisions every member of a newly registered team
func (s *service) GrantTeamAccess(ctx context.Context, input *GrantTeamAccessInput) (*GrantTeamAccessOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	output := &GrantTeamAccessOutput{}

	if input.RoleID != "" {
		for _, memberID := range input.MemberIDs {
			err := s.platform.GrantRole(ctx, &platform.RoleInput{
				GuildID: input.GuildID,
				UserID:  memberID,
				RoleID:  input.RoleID,
			})
			if err != nil {
				log.WithFields(log.Fields{
					"guildID":  input.GuildID,
					"memberID": memberID,
					"roleID":   input.RoleID,
					"error":    err,
				}).Warn("Failed to grant team role")
				output.RoleFailed = append(output.RoleFailed, memberID)
				continue
			}
			output.RoleGranted = append(output.RoleGranted, memberID)
		}
	}

	if input.AccessMode != models.AccessModeChannel || input.ChannelID == "" {
		return output, nil
	}

	granted := make([]string, 0, len(input.MemberIDs))
	for _, memberID := range input.MemberIDs {
		err := s.platform.SetChannelAccess(ctx, &platform.ChannelAccessInput{
			ChannelID: input.ChannelID,
			UserID:    memberID,
		})
		if err != nil {
			log.WithFields(log.Fields{
				"channelID": input.ChannelID,
				"memberID":  memberID,
				"granted":   len(granted),
				"error":     err,
			}).Warn("Failed to open channel to member, rolling back team channel access")

			s.removeChannelAccess(ctx, input.ChannelID, granted)
			output.ChannelRolledBack = len(granted) > 0
			return output, nil
		}
		granted = append(granted, memberID)
	}

	output.ChannelGranted = true
	return output, nil
}

// RevokeTeamAccess removes what GrantTeamAccess gave
func (s *service) RevokeTeamAccess(ctx context.Context, input *RevokeTeamAccessInput) (*RevokeTeamAccessOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	output := &RevokeTeamAccessOutput{}

	if input.AccessMode == models.AccessModeChannel && input.ChannelID != "" {
		output.ChannelFailed = s.removeChannelAccess(ctx, input.ChannelID, input.MemberIDs)
	}

	if input.RoleID != "" {
		for _, memberID := range input.MemberIDs {
			err := s.platform.RevokeRole(ctx, &platform.RoleInput{
				GuildID: input.GuildID,
				UserID:  memberID,
				RoleID:  input.RoleID,
			})
			if err != nil {
				log.WithFields(log.Fields{
					"guildID":  input.GuildID,
					"memberID": memberID,
					"roleID":   input.RoleID,
					"error":    err,
				}).Warn("Failed to revoke team role")
				output.RoleFailed = append(output.RoleFailed, memberID)
			}
		}
	}

	return output, nil
}

// removeChannelAccess returns the members whose overwrite could not be removed
func (s *service) removeChannelAccess(ctx context.Context, channelID string, memberIDs []string) []string {
	var failed []string
	for _, memberID := range memberIDs {
		err := s.platform.RemoveChannelAccess(ctx, &platform.ChannelAccessInput{
			ChannelID: channelID,
			UserID:    memberID,
		})
		if err != nil {
			log.WithFields(log.Fields{
				"channelID": channelID,
				"memberID":  memberID,
				"error":     err,
			}).Error("Failed to remove channel access")
			failed = append(failed, memberID)
		}
	}
	return failed
}
