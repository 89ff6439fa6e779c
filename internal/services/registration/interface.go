package registration

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/scrimbot/internal/services/registration Service

import "context"

// Service runs team registration sessions.
//
// Registration-path methods report user-facing rejections through the
// Outcome in their output. The error return is reserved for storage and
// programming faults.
type Service interface {
	// CreateSession opens a registration session in a channel
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// HandleInboundMessage treats a channel message as a free-text registration
	HandleInboundMessage(ctx context.Context, input *HandleInboundMessageInput) (*HandleInboundMessageOutput, error)

	// SubmitRegistration registers a team from structured form input
	SubmitRegistration(ctx context.Context, input *SubmitRegistrationInput) (*SubmitRegistrationOutput, error)

	// CompleteTeamRegistration registers a held member list under a team name
	CompleteTeamRegistration(ctx context.Context, input *CompleteTeamRegistrationInput) (*SubmitRegistrationOutput, error)

	// Withdraw removes the requester's team, reopening a full session
	Withdraw(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error)

	// RenameTeam changes the requester's team name
	RenameTeam(ctx context.Context, input *RenameTeamInput) (*RenameTeamOutput, error)

	// ScheduleEvent sets or changes the start time of a full session
	ScheduleEvent(ctx context.Context, input *ScheduleEventInput) (*ScheduleEventOutput, error)

	// CloseSession ends a session for good
	CloseSession(ctx context.Context, input *CloseSessionInput) (*CloseSessionOutput, error)

	// CloseGuildSessions closes every session in a guild and forgets its configuration
	CloseGuildSessions(ctx context.Context, input *CloseGuildSessionsInput) (*CloseGuildSessionsOutput, error)

	// ListSessions returns summaries of a guild's open sessions
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// GetSessionByChannel retrieves the open session in a channel
	GetSessionByChannel(ctx context.Context, input *GetSessionByChannelInput) (*GetSessionOutput, error)

	// GetTeam returns the team a member belongs to
	GetTeam(ctx context.Context, input *GetTeamInput) (*GetTeamOutput, error)

	// ConfigureGuild stores the defaults used for new sessions in a guild
	ConfigureGuild(ctx context.Context, input *ConfigureGuildInput) (*ConfigureGuildOutput, error)
}
