package platform

// Button is an interactive control attached to a message
type Button struct {
	Label    string
	CustomID string
}

// SendMessageInput contains parameters for posting a channel message
type SendMessageInput struct {
	ChannelID string
	Content   string

	// Buttons are rendered in a single row under the message
	Buttons []Button
}

// SendMessageOutput contains the result of posting a channel message
type SendMessageOutput struct {
	MessageID string
}

// EditMessageInput contains parameters for editing a channel message
type EditMessageInput struct {
	ChannelID string
	MessageID string
	Content   string
}

// SendDirectMessageInput contains parameters for a direct message
type SendDirectMessageInput struct {
	UserID  string
	Content string
}

// RoleInput identifies a role assignment
type RoleInput struct {
	GuildID string
	UserID  string
	RoleID  string
}

// ChannelAccessInput identifies a per-member channel overwrite
type ChannelAccessInput struct {
	ChannelID string
	UserID    string
}

// CreatePrivateChannelInput contains parameters for creating a restricted channel
type CreatePrivateChannelInput struct {
	GuildID string
	Name    string

	// UserIDs may view and send in the channel
	UserIDs []string

	// RoleIDs may view and send in the channel
	RoleIDs []string
}

// CreatePrivateChannelOutput contains the created channel
type CreatePrivateChannelOutput struct {
	ChannelID string
}
