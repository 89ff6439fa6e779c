package models

// GuildConfig holds the per-guild defaults used when sessions are created
type GuildConfig struct {
	// GuildID is the Discord guild this configuration belongs to
	GuildID string

	// TeamRoleID is granted to registered members when a session names no role
	TeamRoleID string

	// PostChannelID is where registration instructions are posted
	PostChannelID string

	// RosterChannelID is where confirmed teams are announced
	RosterChannelID string

	// ModeratorRoleID may act on behalf of organizers
	ModeratorRoleID string
}
