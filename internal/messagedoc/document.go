package messagedoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/discordmsg/internal/common/errorwrapper"
	"github.com/aleister1102/discordmsg/internal/notifier/discord"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a message document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Document is a message described in a file. Pointer and slice-pointer fields
// distinguish an absent key from a present but empty one.
type Document struct {
	Content         *string                  `json:"content" yaml:"content"`
	Embeds          *[]discord.DiscordEmbed  `json:"embeds" yaml:"embeds"`
	Components      *[]ComponentDocument     `json:"components" yaml:"components"`
	Flags           *FlagsDocument           `json:"flags" yaml:"flags"`
	Username        string                   `json:"username,omitempty" yaml:"username,omitempty"`
	AvatarURL       string                   `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	TTS             bool                     `json:"tts,omitempty" yaml:"tts,omitempty"`
	ThreadName      string                   `json:"thread_name,omitempty" yaml:"thread_name,omitempty"`
	AllowedMentions *discord.AllowedMentions `json:"allowed_mentions,omitempty" yaml:"allowed_mentions,omitempty"`
}

// FormatFromPath picks the document format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errorwrapper.NewValidationError("path", path, "message documents must be .yaml, .yml or .json")
	}
}

// LoadDocument reads and parses the document at path.
func LoadDocument(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read message document '%s': %w", path, err)
	}

	doc, err := ParseDocument(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse message document '%s': %w", path, err)
	}
	return doc, nil
}

// ParseDocument decodes data in the given format. Unknown keys are rejected.
func ParseDocument(data []byte, format Format) (*Document, error) {
	doc := &Document{}

	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, errorwrapper.WrapError(err, "invalid YAML message document")
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(doc); err != nil {
			return nil, errorwrapper.WrapError(err, "invalid JSON message document")
		}
	default:
		return nil, errorwrapper.NewValidationError("format", format, "unsupported document format")
	}

	return doc, nil
}

// MessageBuilder converts the core message fields of the document.
func (d *Document) MessageBuilder() (*discord.MessageBuilder, error) {
	var opts []discord.MessageOption

	if d.Content != nil {
		opts = append(opts, discord.WithContent(*d.Content))
	}

	if d.Embeds != nil {
		embeds := make([]discord.Embed, 0, len(*d.Embeds))
		for i := range *d.Embeds {
			embed := (*d.Embeds)[i]
			embeds = append(embeds, &embed)
		}
		opts = append(opts, discord.WithEmbeds(embeds...))
	}

	if d.Components != nil {
		components := make([]discord.Component, 0, len(*d.Components))
		for i, componentDoc := range *d.Components {
			component, err := componentDoc.Component()
			if err != nil {
				return nil, fmt.Errorf("components[%d]: %w", i, err)
			}
			components = append(components, component)
		}
		opts = append(opts, discord.WithComponents(components...))
	}

	if d.Flags != nil {
		opts = append(opts, discord.WithFlags(d.Flags.MessageFlags()))
	}

	return discord.NewMessageBuilder(opts...), nil
}

// MessageSource returns the builder for the whole document, adding the webhook
// fields when any of them is set.
func (d *Document) MessageSource() (discord.MessageSource, error) {
	builder, err := d.MessageBuilder()
	if err != nil {
		return nil, err
	}

	if !d.hasWebhookFields() {
		return builder, nil
	}

	webhook := discord.NewWebhookMessageBuilder(builder).
		WithUsername(d.Username).
		WithAvatarURL(d.AvatarURL).
		WithTTS(d.TTS).
		WithThreadName(d.ThreadName)
	if d.AllowedMentions != nil {
		webhook.WithAllowedMentions(*d.AllowedMentions)
	}
	return webhook, nil
}

func (d *Document) hasWebhookFields() bool {
	return d.Username != "" || d.AvatarURL != "" || d.TTS || d.ThreadName != "" || d.AllowedMentions != nil
}
