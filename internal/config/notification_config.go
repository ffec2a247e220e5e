package config

// NotificationConfig defines the Discord destinations and message defaults
type NotificationConfig struct {
	WebhookURL            string   `json:"webhook_url,omitempty" yaml:"webhook_url,omitempty" env:"DISCORD_WEBHOOK_URL" validate:"omitempty,url"`
	Username              string   `json:"username,omitempty" yaml:"username,omitempty" validate:"max=80"`
	AvatarURL             string   `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty" validate:"omitempty,url"`
	BotToken              string   `json:"bot_token,omitempty" yaml:"bot_token,omitempty" env:"DISCORD_BOT_TOKEN"`
	ChannelID             string   `json:"channel_id,omitempty" yaml:"channel_id,omitempty" env:"DISCORD_CHANNEL_ID" validate:"omitempty,numeric"`
	MentionRoleIDs        []string `json:"mention_role_ids,omitempty" yaml:"mention_role_ids,omitempty" env:"DISCORD_MENTION_ROLE_IDS" validate:"dive,numeric"`
	SuppressNotifications bool     `json:"suppress_notifications" yaml:"suppress_notifications"`
}

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		MentionRoleIDs: []string{},
	}
}

// HasWebhook reports whether webhook delivery is configured
func (nc NotificationConfig) HasWebhook() bool {
	return nc.WebhookURL != ""
}

// HasBot reports whether bot channel delivery is configured
func (nc NotificationConfig) HasBot() bool {
	return nc.BotToken != "" && nc.ChannelID != ""
}
