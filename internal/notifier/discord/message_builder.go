package discord

import "encoding/json"

// Keys of a built Message.
const (
	FieldContent    = "content"
	FieldEmbeds     = "embeds"
	FieldComponents = "components"
	FieldFlags      = "flags"
)

// Message is the generic representation of a Discord message, ready to be
// encoded as the JSON body of a message-creation request.
type Message map[string]any

// JSON encodes the message as a request body.
func (m Message) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// Embed is anything that can serialize itself as a Discord embed object.
type Embed interface {
	Build() (any, error)
}

// Component is anything that can serialize itself as a Discord message component.
type Component interface {
	Build() (any, error)
}

// Flags exposes the integer form of a message flags bitfield.
type Flags interface {
	Value() int
}

// MessageSource is implemented by every builder that produces a Message.
type MessageSource interface {
	Build() (Message, error)
}

// MessageOption configures a MessageBuilder at construction time.
type MessageOption func(*MessageBuilder)

// WithContent sets the message text.
func WithContent(content string) MessageOption {
	return func(b *MessageBuilder) {
		b.content = &content
	}
}

// WithEmbeds sets the embeds. Applying the option marks the field present,
// so WithEmbeds() with no arguments yields an empty "embeds" list.
func WithEmbeds(embeds ...Embed) MessageOption {
	return func(b *MessageBuilder) {
		if embeds == nil {
			embeds = []Embed{}
		}
		b.embeds = embeds
	}
}

// WithComponents sets the components, with the same presence rule as WithEmbeds.
func WithComponents(components ...Component) MessageOption {
	return func(b *MessageBuilder) {
		if components == nil {
			components = []Component{}
		}
		b.components = components
	}
}

// WithFlags sets the message flags. A nil value, including a nil
// *DiscordMessageFlags, leaves flags absent.
func WithFlags(flags Flags) MessageOption {
	return func(b *MessageBuilder) {
		if f, ok := flags.(*DiscordMessageFlags); ok && f == nil {
			flags = nil
		}
		b.flags = flags
	}
}

// MessageBuilder holds the optional parts of a Discord message and serializes
// only the parts that were provided. It has no mutators; higher-level builders
// compose it by constructing a new one with the fields they need.
//
// A nil embeds or components slice means absent; a non-nil empty slice means
// present but empty.
type MessageBuilder struct {
	content    *string
	embeds     []Embed
	components []Component
	flags      Flags
}

// NewMessageBuilder creates a MessageBuilder from the given options.
func NewMessageBuilder(opts ...MessageOption) *MessageBuilder {
	b := &MessageBuilder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build serializes the fields that are present. Errors from embed or component
// serialization are returned unchanged and no partial message is produced.
func (b *MessageBuilder) Build() (Message, error) {
	message := Message{}

	if b.content != nil {
		message[FieldContent] = *b.content
	}

	if b.embeds != nil {
		embeds := make([]any, 0, len(b.embeds))
		for _, embed := range b.embeds {
			built, err := embed.Build()
			if err != nil {
				return nil, err
			}
			embeds = append(embeds, built)
		}
		message[FieldEmbeds] = embeds
	}

	if b.components != nil {
		components := make([]any, 0, len(b.components))
		for _, component := range b.components {
			built, err := component.Build()
			if err != nil {
				return nil, err
			}
			components = append(components, built)
		}
		message[FieldComponents] = components
	}

	if b.flags != nil {
		message[FieldFlags] = b.flags.Value()
	}

	return message, nil
}
