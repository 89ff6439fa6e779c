package registration

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/scrimbot/internal/events"
	"github.com/KirkDiggler/scrimbot/internal/models"
	"github.com/KirkDiggler/scrimbot/internal/roster"
	"github.com/KirkDiggler/scrimbot/internal/services/messaging"
	"github.com/KirkDiggler/scrimbot/internal/services/reminder"
	log "github.com/sirupsen/logrus"
)

// IsDelegate reports whether a member may act for the organizer of a session
func IsDelegate(session *models.Session, requesterID string, requesterRoleIDs []string, requesterIsAdmin bool) bool {
	if session == nil {
		return false
	}
	if session.OrganizerID == requesterID || requesterIsAdmin {
		return true
	}
	if session.ModeratorRoleID == "" {
		return false
	}
	for _, roleID := range requesterRoleIDs {
		if roleID == session.ModeratorRoleID {
			return true
		}
	}
	return false
}

// ScheduleEvent sets or changes the start time of a full session
func (s *service) ScheduleEvent(ctx context.Context, input *ScheduleEventInput) (*ScheduleEventOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrNilInput
	}

	unlock := s.locks.Lock(input.SessionID)
	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		unlock()
		if errors.Is(err, ErrSessionNotFound) {
			return &ScheduleEventOutput{Rejection: ErrSessionNotFound}, nil
		}
		return nil, err
	}

	if !IsDelegate(session, input.RequesterID, input.RequesterRoleIDs, input.RequesterIsAdmin) {
		unlock()
		return &ScheduleEventOutput{Rejection: ErrNotOrganizer, Session: session}, nil
	}

	switch {
	case session.State.IsFull(), session.State.IsScheduled():
	case session.State.IsClosed():
		unlock()
		return &ScheduleEventOutput{Rejection: roster.ErrSessionNotAccepting, Session: session}, nil
	default:
		unlock()
		return &ScheduleEventOutput{Rejection: ErrSessionNotFull, Session: session}, nil
	}

	startTime, err := s.timeParser.Parse(input.StartTime, s.now())
	if err != nil {
		unlock()
		log.WithFields(log.Fields{
			"sessionID": session.ID,
			"input":     input.StartTime,
			"error":     err,
		}).Info("Schedule rejected")
		return &ScheduleEventOutput{Rejection: err, Session: session}, nil
	}

	rescheduled := session.State.IsScheduled()
	session.State = models.SessionStateScheduled
	session.ScheduledTime = &startTime
	session.ScheduledDetails = input.Details

	if err := s.saveSession(ctx, session); err != nil {
		unlock()
		return nil, err
	}

	// The pending reminder always matches the stored start time
	reminderScheduled := s.armReminder(ctx, session.ID, startTime)
	unlock()

	localTime := s.timeParser.Format(startTime)

	log.WithFields(log.Fields{
		"sessionID":   session.ID,
		"startTime":   startTime,
		"localTime":   localTime,
		"rescheduled": rescheduled,
	}).Info("Event scheduled")

	output := &ScheduleEventOutput{
		Session:           session,
		StartTime:         startTime,
		LocalTime:         localTime,
		Rescheduled:       rescheduled,
		ReminderScheduled: reminderScheduled,
	}

	announcement, err := s.messaging.GetScheduleAnnouncementMessage(ctx, &messaging.GetScheduleAnnouncementMessageInput{
		Session:     session,
		LocalTime:   localTime,
		Rescheduled: rescheduled,
	})
	if err != nil {
		log.WithError(err).Error("Failed to build schedule announcement")
	} else {
		delivered := s.broadcast(ctx, roster.MemberIDs(session), announcement.DirectMessage)
		s.send(ctx, rosterChannel(session), announcement.ChannelMessage)
		log.WithFields(log.Fields{
			"sessionID": session.ID,
			"delivered": delivered,
		}).Info("Schedule announced")
	}

	s.publish(ctx, events.SessionScheduled{
		GuildID:     session.GuildID,
		SessionID:   session.ID,
		StartTime:   startTime,
		Details:     input.Details,
		Rescheduled: rescheduled,
		Timestamp:   s.now(),
	})

	return output, nil
}

// armReminder replaces any pending reminder for the session. Callers hold the session lock.
func (s *service) armReminder(ctx context.Context, sessionID string, startTime time.Time) bool {
	scheduled, err := s.reminders.Schedule(ctx, &reminder.ScheduleInput{
		Key:    sessionID,
		FireAt: startTime.Add(-s.reminderLead),
		OnFire: s.onReminder,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"sessionID": sessionID,
			"error":     err,
		}).Warn("Failed to arm reminder")
		return false
	}
	return scheduled.Scheduled
}

// cancelReminder disarms the session's reminder. Callers hold the session lock.
func (s *service) cancelReminder(ctx context.Context, sessionID string) {
	if _, err := s.reminders.Cancel(ctx, &reminder.CancelInput{Key: sessionID}); err != nil {
		log.WithFields(log.Fields{
			"sessionID": sessionID,
			"error":     err,
		}).Warn("Failed to cancel reminder")
	}
}

// onReminder runs when a reminder comes due. The session is re-read so a
// reminder for a closed or rescheduled session does nothing.
func (s *service) onReminder(ctx context.Context, sessionID string, fireAt time.Time) {
	unlock := s.locks.Lock(sessionID)
	session, err := s.loadSession(ctx, sessionID)
	unlock()
	if err != nil {
		log.WithFields(log.Fields{
			"sessionID": sessionID,
			"error":     err,
		}).Info("Reminder for missing session dropped")
		return
	}

	if !session.State.IsScheduled() || session.ScheduledTime == nil {
		log.WithField("sessionID", sessionID).Info("Reminder for unscheduled session dropped")
		return
	}

	if !session.ScheduledTime.Add(-s.reminderLead).Equal(fireAt) {
		log.WithFields(log.Fields{
			"sessionID": sessionID,
			"fireAt":    fireAt,
			"startTime": session.ScheduledTime,
		}).Info("Stale reminder dropped")
		return
	}

	message, err := s.messaging.GetReminderMessage(ctx, &messaging.GetReminderMessageInput{
		Session:   session,
		LocalTime: s.timeParser.Format(*session.ScheduledTime),
		Lead:      s.reminderLead,
	})
	if err != nil {
		log.WithError(err).Error("Failed to build reminder message")
		return
	}

	delivered := s.broadcast(ctx, roster.MemberIDs(session), message.DirectMessage)
	s.send(ctx, rosterChannel(session), message.ChannelMessage)

	log.WithFields(log.Fields{
		"sessionID": sessionID,
		"delivered": delivered,
	}).Info("Reminder sent")
}
