package reminder

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/scrimbot/internal/services/reminder Service

import "context"

// Service arms and cancels one pending reminder per key
type Service interface {
	// Schedule arms a reminder, replacing any pending one for the same key
	Schedule(ctx context.Context, input *ScheduleInput) (*ScheduleOutput, error)

	// Cancel disarms the pending reminder for a key
	Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error)

	// Stop disarms every pending reminder
	Stop()
}
