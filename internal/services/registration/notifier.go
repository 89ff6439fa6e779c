package registration

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/KirkDiggler/scrimbot/internal/events"
	"github.com/KirkDiggler/scrimbot/internal/models"
	"github.com/KirkDiggler/scrimbot/internal/platform"
	"github.com/KirkDiggler/scrimbot/internal/roster"
	"github.com/KirkDiggler/scrimbot/internal/services/messaging"
	"github.com/KirkDiggler/scrimbot/internal/services/provisioner"
	log "github.com/sirupsen/logrus"
)

// Everything in this file runs after the session lock is released. Platform
// failures are logged and never undo a committed roster change.

var channelNameUnsafe = regexp.MustCompile(`[^a-z0-9-]+`)

// rosterChannel is where announcements for the session go
func rosterChannel(session *models.Session) string {
	if session.RosterChannelID != "" {
		return session.RosterChannelID
	}
	return session.ChannelID
}

func (s *service) send(ctx context.Context, channelID, content string, buttons ...platform.Button) string {
	if channelID == "" || content == "" {
		return ""
	}

	output, err := s.platform.SendMessage(ctx, &platform.SendMessageInput{
		ChannelID: channelID,
		Content:   content,
		Buttons:   buttons,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"channelID": channelID,
			"error":     err,
		}).Warn("Failed to send message")
		return ""
	}
	if output == nil {
		return ""
	}
	return output.MessageID
}

// broadcast sends the same direct message to every member, continuing past failures
func (s *service) broadcast(ctx context.Context, memberIDs []string, content string) int {
	delivered := 0
	for _, memberID := range memberIDs {
		err := s.platform.SendDirectMessage(ctx, &platform.SendDirectMessageInput{
			UserID:  memberID,
			Content: content,
		})
		if err != nil {
			log.WithFields(log.Fields{
				"memberID": memberID,
				"error":    err,
			}).Warn("Failed to deliver direct message")
			continue
		}
		delivered++
	}
	return delivered
}

func (s *service) announceOpened(ctx context.Context, session *models.Session) {
	opened, err := s.messaging.GetSessionOpenedMessage(ctx, &messaging.GetSessionOpenedMessageInput{Session: session})
	if err != nil {
		log.WithError(err).Error("Failed to build session opened message")
		return
	}
	s.send(ctx, session.ChannelID, opened.Message)
	s.refreshRosterMessage(ctx, session.ID)
}

// refreshRosterMessage edits the roster message in place, posting it the first time
func (s *service) refreshRosterMessage(ctx context.Context, sessionID string) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		log.WithFields(log.Fields{
			"sessionID": sessionID,
			"error":     err,
		}).Warn("Failed to load session for roster message")
		return
	}

	rendered, err := s.messaging.GetRosterMessage(ctx, &messaging.GetRosterMessageInput{Session: session})
	if err != nil {
		log.WithError(err).Error("Failed to build roster message")
		return
	}

	if session.RosterMessageID != "" {
		err := s.platform.EditMessage(ctx, &platform.EditMessageInput{
			ChannelID: session.ChannelID,
			MessageID: session.RosterMessageID,
			Content:   rendered.Message,
		})
		if err == nil {
			return
		}
		log.WithFields(log.Fields{
			"sessionID": sessionID,
			"messageID": session.RosterMessageID,
			"error":     err,
		}).Warn("Failed to edit roster message, posting a new one")
	}

	messageID := s.send(ctx, session.ChannelID, rendered.Message)
	if messageID == "" {
		return
	}

	if err := s.updateSession(ctx, sessionID, func(current *models.Session) bool {
		if current.RosterMessageID == messageID {
			return false
		}
		current.RosterMessageID = messageID
		return true
	}); err != nil {
		log.WithFields(log.Fields{
			"sessionID": sessionID,
			"error":     err,
		}).Warn("Failed to record roster message")
	}
}

func (s *service) afterRegister(ctx context.Context, session *models.Session, result *roster.RegisterResult) {
	team := result.Team

	access, err := s.provisioner.GrantTeamAccess(ctx, &provisioner.GrantTeamAccessInput{
		GuildID:    session.GuildID,
		ChannelID:  session.ChannelID,
		RoleID:     session.AssignedRoleID,
		AccessMode: session.AccessMode,
		MemberIDs:  team.MemberIDs,
	})
	if err != nil {
		log.WithError(err).Error("Failed to provision team")
	} else if len(access.RoleFailed) > 0 || access.ChannelRolledBack {
		log.WithFields(log.Fields{
			"sessionID":         session.ID,
			"teamName":          team.Name,
			"roleFailed":        access.RoleFailed,
			"channelRolledBack": access.ChannelRolledBack,
		}).Warn("Team registered with incomplete access")
	}

	s.publish(ctx, events.TeamRegistered{
		GuildID:   session.GuildID,
		SessionID: session.ID,
		TeamName:  team.Name,
		CaptainID: team.CaptainID,
		MemberIDs: team.MemberIDs,
		Slot:      result.Slot,
		Timestamp: team.RegisteredAt,
	})

	s.refreshRosterMessage(ctx, session.ID)

	if result.BecameFull {
		s.onSessionFull(ctx, session)
	}
}

// onSessionFull announces the final roster and opens the organizer follow-up channel
func (s *service) onSessionFull(ctx context.Context, session *models.Session) {
	filled, err := s.messaging.GetSlotsFilledMessage(ctx, &messaging.GetSlotsFilledMessageInput{Session: session})
	if err != nil {
		log.WithError(err).Error("Failed to build slots filled message")
	} else {
		s.send(ctx, rosterChannel(session), filled.Message)
	}

	s.publish(ctx, events.SessionFull{
		GuildID:   session.GuildID,
		SessionID: session.ID,
		TeamCount: len(session.Roster),
		Timestamp: s.now(),
	})

	if session.FollowUpChannelID != "" {
		// Refilled after a withdrawal; the organizer channel already exists
		s.sendSchedulePrompt(ctx, session, session.FollowUpChannelID)
		return
	}

	var roleIDs []string
	if session.ModeratorRoleID != "" {
		roleIDs = append(roleIDs, session.ModeratorRoleID)
	}

	created, err := s.platform.CreatePrivateChannel(ctx, &platform.CreatePrivateChannelInput{
		GuildID: session.GuildID,
		Name:    followUpChannelName(session.TournamentName),
		UserIDs: []string{session.OrganizerID},
		RoleIDs: roleIDs,
	})
	if err != nil || created == nil {
		log.WithFields(log.Fields{
			"sessionID": session.ID,
			"error":     err,
		}).Warn("Failed to create follow-up channel, prompting in the registration channel")
		s.sendSchedulePrompt(ctx, session, session.ChannelID)
		return
	}

	if err := s.updateSession(ctx, session.ID, func(current *models.Session) bool {
		current.FollowUpChannelID = created.ChannelID
		return true
	}); err != nil {
		log.WithFields(log.Fields{
			"sessionID": session.ID,
			"error":     err,
		}).Warn("Failed to record follow-up channel")
	}
	session.FollowUpChannelID = created.ChannelID

	s.sendSchedulePrompt(ctx, session, created.ChannelID)
}

func (s *service) sendSchedulePrompt(ctx context.Context, session *models.Session, channelID string) {
	prompt, err := s.messaging.GetSchedulePromptMessage(ctx, &messaging.GetSchedulePromptMessageInput{Session: session})
	if err != nil {
		log.WithError(err).Error("Failed to build schedule prompt")
		return
	}

	s.send(ctx, channelID, prompt.Message, platform.Button{
		Label:    prompt.ButtonLabel,
		CustomID: ScheduleButtonPrefix + session.ID,
	})
}

func followUpChannelName(tournamentName string) string {
	name := strings.ToLower(strings.TrimSpace(tournamentName))
	name = strings.ReplaceAll(name, " ", "-")
	name = channelNameUnsafe.ReplaceAllString(name, "")
	name = strings.Trim(name, "-")
	if name == "" {
		name = "scrim"
	}
	if len(name) > 80 {
		name = name[:80]
	}
	return fmt.Sprintf("%s-schedule", name)
}

func (s *service) afterWithdraw(ctx context.Context, session *models.Session, result *roster.WithdrawResult) {
	team := result.Team

	if _, err := s.provisioner.RevokeTeamAccess(ctx, &provisioner.RevokeTeamAccessInput{
		GuildID:    session.GuildID,
		ChannelID:  session.ChannelID,
		RoleID:     session.AssignedRoleID,
		AccessMode: session.AccessMode,
		MemberIDs:  team.MemberIDs,
	}); err != nil {
		log.WithError(err).Error("Failed to revoke team access")
	}

	s.publish(ctx, events.TeamWithdrawn{
		GuildID:   session.GuildID,
		SessionID: session.ID,
		TeamName:  team.Name,
		CaptainID: team.CaptainID,
		Timestamp: s.now(),
	})

	s.refreshRosterMessage(ctx, session.ID)

	if !result.Reopened {
		return
	}

	reopened, err := s.messaging.GetSlotReopenedMessage(ctx, &messaging.GetSlotReopenedMessageInput{
		Session:  session,
		TeamName: team.Name,
	})
	if err != nil {
		log.WithError(err).Error("Failed to build slot reopened message")
	} else {
		s.send(ctx, session.ChannelID, reopened.Message)
	}

	s.publish(ctx, events.SessionReopened{
		GuildID:   session.GuildID,
		SessionID: session.ID,
		Timestamp: s.now(),
	})
}

func (s *service) afterClose(ctx context.Context, session *models.Session, closedBy string) {
	closed, err := s.messaging.GetSessionClosedMessage(ctx, &messaging.GetSessionClosedMessageInput{Session: session})
	if err != nil {
		log.WithError(err).Error("Failed to build session closed message")
	} else {
		s.send(ctx, session.ChannelID, closed.Message)
	}

	s.publish(ctx, events.SessionClosed{
		GuildID:   session.GuildID,
		SessionID: session.ID,
		ClosedBy:  closedBy,
		Timestamp: s.now(),
	})

	log.WithFields(log.Fields{
		"sessionID": session.ID,
		"closedBy":  closedBy,
	}).Info("Registration session closed")
}
