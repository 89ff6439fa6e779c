package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/scrimbot/internal/models"
	"github.com/KirkDiggler/scrimbot/internal/parser"
	sessionRepo "github.com/KirkDiggler/scrimbot/internal/repositories/session"
	"github.com/KirkDiggler/scrimbot/internal/roster"
	log "github.com/sirupsen/logrus"
)

// registerResult is shared by the free-text and structured paths
type registerResult struct {
	Outcome
	session    *models.Session
	slot       int
	becameFull bool
}

// HandleInboundMessage treats a channel message as a free-text registration
func (s *service) HandleInboundMessage(ctx context.Context, input *HandleInboundMessageInput) (*HandleInboundMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID == "" || input.ChannelID == "" {
		return &HandleInboundMessageOutput{}, nil
	}

	session, err := s.sessionRepo.GetSessionByChannel(ctx, &sessionRepo.GetSessionByChannelInput{
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return &HandleInboundMessageOutput{}, nil
		}
		return nil, err
	}

	parsed, parseErr := parser.Parse(input.Content, input.MentionedIDs)

	// Outside collecting, only a well-formed registration gets an answer
	if rejection := stateRejection(session); rejection != nil {
		if parseErr != nil {
			return &HandleInboundMessageOutput{Session: session}, nil
		}
		return &HandleInboundMessageOutput{
			Handled: true,
			Outcome: Outcome{Rejection: rejection},
			Session: session,
		}, nil
	}

	if parseErr != nil {
		mentions := parser.Mentions(input.Content, input.MentionedIDs)
		if errors.Is(parseErr, parser.ErrMissingTeamName) && len(mentions) > 0 {
			return s.holdPendingTeam(ctx, session, input.AuthorID, mentions)
		}
		return &HandleInboundMessageOutput{
			Handled: true,
			Outcome: Outcome{Rejection: parseErr},
			Session: session,
		}, nil
	}

	result, err := s.register(ctx, session.ID, roster.Candidate{
		Name:      parsed.TeamName,
		CaptainID: input.AuthorID,
		MemberIDs: parsed.MentionedIDs,
	})
	if err != nil {
		return nil, err
	}

	return &HandleInboundMessageOutput{
		Handled:    true,
		Outcome:    result.Outcome,
		Session:    result.session,
		Slot:       result.slot,
		BecameFull: result.becameFull,
	}, nil
}

// holdPendingTeam checks a mention-only member list and keeps it until the
// captain supplies a team name
func (s *service) holdPendingTeam(ctx context.Context, session *models.Session, captainID string, mentions []string) (*HandleInboundMessageOutput, error) {
	members, err := roster.CheckMembers(session, captainID, mentions)
	if err != nil {
		if roster.IsRejection(err) {
			return &HandleInboundMessageOutput{
				Handled: true,
				Outcome: Outcome{Rejection: err},
				Session: session,
			}, nil
		}
		return nil, err
	}

	if err := s.sessionRepo.SavePendingTeam(ctx, &sessionRepo.SavePendingTeamInput{
		SessionID: session.ID,
		CaptainID: captainID,
		MemberIDs: members,
		TTL:       s.pendingTeamTTL,
	}); err != nil {
		return nil, fmt.Errorf("failed to hold member list: %w", err)
	}

	log.WithFields(log.Fields{
		"sessionID": session.ID,
		"captainID": captainID,
		"members":   len(members),
	}).Info("Member list waiting for a team name")

	return &HandleInboundMessageOutput{
		Handled:       true,
		Session:       session,
		NeedsTeamName: true,
		MemberIDs:     members,
	}, nil
}

// CompleteTeamRegistration registers a held member list under a team name
func (s *service) CompleteTeamRegistration(ctx context.Context, input *CompleteTeamRegistrationInput) (*SubmitRegistrationOutput, error) {
	if input == nil || input.SessionID == "" || input.CaptainID == "" {
		return nil, ErrNilInput
	}

	members, err := s.sessionRepo.GetPendingTeam(ctx, &sessionRepo.GetPendingTeamInput{
		SessionID: input.SessionID,
		CaptainID: input.CaptainID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrPendingTeamNotFound) {
			return &SubmitRegistrationOutput{Outcome: Outcome{Rejection: ErrNoPendingTeam}}, nil
		}
		return nil, fmt.Errorf("failed to load held member list: %w", err)
	}

	output, err := s.SubmitRegistration(ctx, &SubmitRegistrationInput{
		SessionID: input.SessionID,
		CaptainID: input.CaptainID,
		TeamName:  input.TeamName,
		MemberIDs: members,
	})
	if err != nil {
		return nil, err
	}

	// A rejected name can be corrected, so the list is kept until a team is accepted
	if output.Accepted() {
		if err := s.sessionRepo.DeletePendingTeam(ctx, &sessionRepo.DeletePendingTeamInput{
			SessionID: input.SessionID,
			CaptainID: input.CaptainID,
		}); err != nil {
			log.WithFields(log.Fields{
				"sessionID": input.SessionID,
				"captainID": input.CaptainID,
				"error":     err,
			}).Warn("Failed to drop held member list")
		}
	}

	return output, nil
}

// SubmitRegistration registers a team from structured form input
func (s *service) SubmitRegistration(ctx context.Context, input *SubmitRegistrationInput) (*SubmitRegistrationOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sessionID, err := s.resolveSessionID(ctx, input.SessionID, input.GuildID, input.ChannelID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return &SubmitRegistrationOutput{Outcome: Outcome{Rejection: ErrSessionNotFound}}, nil
		}
		return nil, err
	}

	result, err := s.register(ctx, sessionID, roster.Candidate{
		Name:      input.TeamName,
		CaptainID: input.CaptainID,
		MemberIDs: input.MemberIDs,
	})
	if err != nil {
		return nil, err
	}

	return &SubmitRegistrationOutput{
		Outcome:    result.Outcome,
		Session:    result.session,
		Slot:       result.slot,
		BecameFull: result.becameFull,
	}, nil
}

// register runs the capacity-gated roster under the session lock and
// notifies after the lock is released
func (s *service) register(ctx context.Context, sessionID string, candidate roster.Candidate) (*registerResult, error) {
	candidate.RegisteredAt = s.now()

	unlock := s.locks.Lock(sessionID)
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		unlock()
		if errors.Is(err, ErrSessionNotFound) {
			return &registerResult{Outcome: Outcome{Rejection: ErrSessionNotFound}}, nil
		}
		return nil, err
	}

	result, err := roster.TryRegister(session, candidate)
	if err != nil {
		unlock()
		if roster.IsRejection(err) {
			log.WithFields(log.Fields{
				"sessionID": sessionID,
				"captainID": candidate.CaptainID,
				"teamName":  candidate.Name,
				"kind":      roster.KindOf(err),
				"reason":    err.Error(),
			}).Info("Registration rejected")
			return &registerResult{Outcome: Outcome{Rejection: err}, session: session}, nil
		}
		return nil, err
	}

	if err := s.saveSession(ctx, session); err != nil {
		unlock()
		return nil, err
	}
	unlock()

	log.WithFields(log.Fields{
		"sessionID":  sessionID,
		"teamName":   result.Team.Name,
		"captainID":  result.Team.CaptainID,
		"slot":       result.Slot,
		"becameFull": result.BecameFull,
	}).Info("Team registered")

	s.afterRegister(ctx, session, result)

	return &registerResult{
		Outcome:    Outcome{Team: result.Team},
		session:    session,
		slot:       result.Slot,
		becameFull: result.BecameFull,
	}, nil
}

// Withdraw removes the requester's team
func (s *service) Withdraw(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error) {
	if input == nil || input.RequesterID == "" {
		return nil, ErrNilInput
	}

	sessionID, err := s.resolveSessionID(ctx, input.SessionID, input.GuildID, input.ChannelID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return &WithdrawOutput{Outcome: Outcome{Rejection: ErrSessionNotFound}}, nil
		}
		return nil, err
	}

	unlock := s.locks.Lock(sessionID)
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		unlock()
		if errors.Is(err, ErrSessionNotFound) {
			return &WithdrawOutput{Outcome: Outcome{Rejection: ErrSessionNotFound}}, nil
		}
		return nil, err
	}

	result, err := roster.Withdraw(session, input.RequesterID)
	if err != nil {
		unlock()
		if roster.IsRejection(err) {
			return &WithdrawOutput{Outcome: Outcome{Rejection: err}, Session: session}, nil
		}
		return nil, err
	}

	if err := s.saveSession(ctx, session); err != nil {
		unlock()
		return nil, err
	}
	unlock()

	log.WithFields(log.Fields{
		"sessionID": sessionID,
		"teamName":  result.Team.Name,
		"reopened":  result.Reopened,
	}).Info("Team withdrew")

	s.afterWithdraw(ctx, session, result)

	return &WithdrawOutput{
		Outcome:  Outcome{Team: result.Team},
		Session:  session,
		Reopened: result.Reopened,
	}, nil
}

// RenameTeam changes the requester's team name
func (s *service) RenameTeam(ctx context.Context, input *RenameTeamInput) (*RenameTeamOutput, error) {
	if input == nil || input.RequesterID == "" {
		return nil, ErrNilInput
	}

	sessionID, err := s.resolveSessionID(ctx, input.SessionID, input.GuildID, input.ChannelID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return &RenameTeamOutput{Outcome: Outcome{Rejection: ErrSessionNotFound}}, nil
		}
		return nil, err
	}

	unlock := s.locks.Lock(sessionID)
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		unlock()
		if errors.Is(err, ErrSessionNotFound) {
			return &RenameTeamOutput{Outcome: Outcome{Rejection: ErrSessionNotFound}}, nil
		}
		return nil, err
	}

	previousName := ""
	if team := session.TeamByCaptain(input.RequesterID); team != nil {
		previousName = team.Name
	}

	team, err := roster.Rename(session, input.RequesterID, input.NewName)
	if err != nil {
		unlock()
		if roster.IsRejection(err) {
			return &RenameTeamOutput{Outcome: Outcome{Rejection: err}, Session: session}, nil
		}
		return nil, err
	}

	if err := s.saveSession(ctx, session); err != nil {
		unlock()
		return nil, err
	}
	unlock()

	s.refreshRosterMessage(ctx, session.ID)

	return &RenameTeamOutput{
		Outcome:      Outcome{Team: team},
		Session:      session,
		PreviousName: previousName,
	}, nil
}

// stateRejection is the rejection a registration would get from the session state alone
func stateRejection(session *models.Session) error {
	switch {
	case session.State.IsCollecting():
		return nil
	case session.State.IsFull():
		return roster.ErrCapacityExceeded
	default:
		return roster.ErrSessionNotAccepting
	}
}
