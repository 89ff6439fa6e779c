package provisioner

import "github.com/KirkDiggler/scrimbot/internal/models"

// GrantTeamAccessInput contains parameters for provisioning a team
type GrantTeamAccessInput struct {
	GuildID    string
	ChannelID  string
	RoleID     string
	AccessMode models.AccessMode
	MemberIDs  []string
}

// GrantTeamAccessOutput reports what was provisioned
type GrantTeamAccessOutput struct {
	// RoleGranted lists members who received the role
	RoleGranted []string

	// RoleFailed lists members whose role grant failed
	RoleFailed []string

	// ChannelGranted is true when every member can see the session channel.
	// Always false outside channel mode.
	ChannelGranted bool

	// ChannelRolledBack is true when a partial channel grant was undone
	ChannelRolledBack bool
}

// RevokeTeamAccessInput contains parameters for deprovisioning a team
type RevokeTeamAccessInput struct {
	GuildID    string
	ChannelID  string
	RoleID     string
	AccessMode models.AccessMode
	MemberIDs  []string
}

// RevokeTeamAccessOutput reports what could not be revoked
type RevokeTeamAccessOutput struct {
	RoleFailed    []string
	ChannelFailed []string
}
