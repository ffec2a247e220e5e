package discord

// Webhook-only keys layered on top of a built Message.
const (
	FieldUsername        = "username"
	FieldAvatarURL       = "avatar_url"
	FieldTTS             = "tts"
	FieldThreadName      = "thread_name"
	FieldAllowedMentions = "allowed_mentions"
)

// AllowedMentions specifies how mentions should be handled in a message.
type AllowedMentions struct {
	Parse []string `json:"parse,omitempty" yaml:"parse,omitempty"` // Types of mentions to parse ("roles", "users", "everyone")
	Roles []string `json:"roles,omitempty" yaml:"roles,omitempty"` // Role ids that may be mentioned (max 100)
	Users []string `json:"users,omitempty" yaml:"users,omitempty"` // User ids that may be mentioned (max 100)
}

func (am *AllowedMentions) toMap() map[string]any {
	// An empty parse list is meaningful: it disables every implicit mention.
	mentions := map[string]any{"parse": stringsToAny(am.Parse)}
	if len(am.Roles) > 0 {
		mentions["roles"] = stringsToAny(am.Roles)
	}
	if len(am.Users) > 0 {
		mentions["users"] = stringsToAny(am.Users)
	}
	return mentions
}

// WebhookMessageBuilder decorates any MessageSource with the fields only
// webhook executions accept.
type WebhookMessageBuilder struct {
	source          MessageSource
	username        string
	avatarURL       string
	tts             bool
	threadName      string
	allowedMentions *AllowedMentions
}

// NewWebhookMessageBuilder creates a new instance of WebhookMessageBuilder.
func NewWebhookMessageBuilder(source MessageSource) *WebhookMessageBuilder {
	return &WebhookMessageBuilder{source: source}
}

// WithUsername overrides the default webhook username.
func (b *WebhookMessageBuilder) WithUsername(username string) *WebhookMessageBuilder {
	b.username = username
	return b
}

// WithAvatarURL overrides the default webhook avatar.
func (b *WebhookMessageBuilder) WithAvatarURL(avatarURL string) *WebhookMessageBuilder {
	b.avatarURL = avatarURL
	return b
}

// WithTTS sends the message as text-to-speech.
func (b *WebhookMessageBuilder) WithTTS(tts bool) *WebhookMessageBuilder {
	b.tts = tts
	return b
}

// WithThreadName creates a forum thread with the given name.
func (b *WebhookMessageBuilder) WithThreadName(name string) *WebhookMessageBuilder {
	b.threadName = name
	return b
}

// WithAllowedMentions sets the AllowedMentions for the message.
func (b *WebhookMessageBuilder) WithAllowedMentions(allowedMentions AllowedMentions) *WebhookMessageBuilder {
	b.allowedMentions = &allowedMentions
	return b
}

// Build builds the wrapped source and adds the webhook fields that were set.
func (b *WebhookMessageBuilder) Build() (Message, error) {
	message, err := b.source.Build()
	if err != nil {
		return nil, err
	}

	if b.username != "" {
		message[FieldUsername] = b.username
	}
	if b.avatarURL != "" {
		message[FieldAvatarURL] = b.avatarURL
	}
	if b.tts {
		message[FieldTTS] = true
	}
	if b.threadName != "" {
		message[FieldThreadName] = b.threadName
	}
	if b.allowedMentions != nil {
		message[FieldAllowedMentions] = b.allowedMentions.toMap()
	}
	return message, nil
}

func stringsToAny(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
