package provisioner

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/scrimbot/internal/services/provisioner Service

import "context"

// Service gives registered members their role and channel access.
// Failures are reported in the output and logged; they never fail a registration.
type Service interface {
	// GrantTeamAccess grants the session role to every member and, in channel
	// mode, opens the session channel to all of them or none of them
	GrantTeamAccess(ctx context.Context, input *GrantTeamAccessInput) (*GrantTeamAccessOutput, error)

	// RevokeTeamAccess removes channel overwrites and the role, best-effort
	RevokeTeamAccess(ctx context.Context, input *RevokeTeamAccessInput) (*RevokeTeamAccessOutput, error)
}
