package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/scrimbot/internal/services/messaging Service

import "context"

// Service builds the user-facing text for every registration outcome
type Service interface {
	// GetRejectionMessage explains why a request was turned down
	GetRejectionMessage(ctx context.Context, input *GetRejectionMessageInput) (*GetRejectionMessageOutput, error)

	// GetRegistrationAcceptedMessage confirms a team's slot
	GetRegistrationAcceptedMessage(ctx context.Context, input *GetRegistrationAcceptedMessageInput) (*GetRegistrationAcceptedMessageOutput, error)

	// GetTeamNamePromptMessage asks a captain to name a team whose members were mentioned
	GetTeamNamePromptMessage(ctx context.Context, input *GetTeamNamePromptMessageInput) (*GetTeamNamePromptMessageOutput, error)

	// GetRosterMessage renders the numbered roster for a session
	GetRosterMessage(ctx context.Context, input *GetRosterMessageInput) (*GetRosterMessageOutput, error)

	// GetSessionOpenedMessage announces a new session and how to register
	GetSessionOpenedMessage(ctx context.Context, input *GetSessionOpenedMessageInput) (*GetSessionOpenedMessageOutput, error)

	// GetSlotsFilledMessage announces that every slot is taken
	GetSlotsFilledMessage(ctx context.Context, input *GetSlotsFilledMessageInput) (*GetSlotsFilledMessageOutput, error)

	// GetSlotReopenedMessage announces a freed slot
	GetSlotReopenedMessage(ctx context.Context, input *GetSlotReopenedMessageInput) (*GetSlotReopenedMessageOutput, error)

	// GetSchedulePromptMessage asks the organizer to set the event time
	GetSchedulePromptMessage(ctx context.Context, input *GetSchedulePromptMessageInput) (*GetSchedulePromptMessageOutput, error)

	// GetScheduleAnnouncementMessage tells participants when the event starts
	GetScheduleAnnouncementMessage(ctx context.Context, input *GetScheduleAnnouncementMessageInput) (*GetScheduleAnnouncementMessageOutput, error)

	// GetReminderMessage is sent shortly before the event starts
	GetReminderMessage(ctx context.Context, input *GetReminderMessageInput) (*GetReminderMessageOutput, error)

	// GetSessionListMessage renders a guild's open sessions
	GetSessionListMessage(ctx context.Context, input *GetSessionListMessageInput) (*GetSessionListMessageOutput, error)

	// GetSessionClosedMessage announces that a session has ended
	GetSessionClosedMessage(ctx context.Context, input *GetSessionClosedMessageInput) (*GetSessionClosedMessageOutput, error)
}
