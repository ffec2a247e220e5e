package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Message flag bits that a client may set when creating a message.
const (
	FlagSuppressEmbeds        = int(discordgo.MessageFlagsSuppressEmbeds)
	FlagEphemeral             = int(discordgo.MessageFlagsEphemeral)
	FlagLoading               = int(discordgo.MessageFlagsLoading)
	FlagSuppressNotifications = int(discordgo.MessageFlagsSuppressNotifications)
)

// DiscordMessageFlags is a mutable message flags bitfield. The setters chain.
type DiscordMessageFlags struct {
	value int
}

// NewDiscordMessageFlags creates an empty bitfield
func NewDiscordMessageFlags() *DiscordMessageFlags {
	return &DiscordMessageFlags{}
}

// DiscordMessageFlagsFromValue wraps a raw flags integer
func DiscordMessageFlagsFromValue(value int) *DiscordMessageFlags {
	return &DiscordMessageFlags{value: value}
}

// SetSuppressEmbeds hides link previews
func (f *DiscordMessageFlags) SetSuppressEmbeds() *DiscordMessageFlags {
	f.value |= FlagSuppressEmbeds
	return f
}

// SetEphemeral makes an interaction response visible to the invoking user only
func (f *DiscordMessageFlags) SetEphemeral() *DiscordMessageFlags {
	f.value |= FlagEphemeral
	return f
}

// SetLoading marks a deferred interaction response
func (f *DiscordMessageFlags) SetLoading() *DiscordMessageFlags {
	f.value |= FlagLoading
	return f
}

// SetSuppressNotifications sends the message without push or desktop notifications
func (f *DiscordMessageFlags) SetSuppressNotifications() *DiscordMessageFlags {
	f.value |= FlagSuppressNotifications
	return f
}

// Has reports whether every bit of flag is set
func (f *DiscordMessageFlags) Has(flag int) bool {
	return f != nil && f.value&flag == flag
}

// Value returns the integer form used on the wire
func (f *DiscordMessageFlags) Value() int {
	if f == nil {
		return 0
	}
	return f.value
}
