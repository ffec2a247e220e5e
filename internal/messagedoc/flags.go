package messagedoc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aleister1102/discordmsg/internal/notifier/discord"
	"gopkg.in/yaml.v3"
)

// FlagsDocument is either a raw integer, {value: N}, or a set of named flags.
// Named flags are OR-ed into the raw value.
type FlagsDocument struct {
	Value                 int  `json:"value,omitempty" yaml:"value,omitempty"`
	SuppressEmbeds        bool `json:"suppress_embeds,omitempty" yaml:"suppress_embeds,omitempty"`
	Ephemeral             bool `json:"ephemeral,omitempty" yaml:"ephemeral,omitempty"`
	Loading               bool `json:"loading,omitempty" yaml:"loading,omitempty"`
	SuppressNotifications bool `json:"suppress_notifications,omitempty" yaml:"suppress_notifications,omitempty"`
}

// flagsFields avoids recursing into the custom unmarshalers.
type flagsFields FlagsDocument

var knownFlagKeys = map[string]bool{
	"value":                  true,
	"suppress_embeds":        true,
	"ephemeral":              true,
	"loading":                true,
	"suppress_notifications": true,
}

// UnmarshalYAML accepts a scalar integer or a mapping.
func (f *FlagsDocument) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&f.Value)
	}
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if !knownFlagKeys[key.Value] {
				return fmt.Errorf("line %d: unknown flag %q", key.Line, key.Value)
			}
		}
	}
	fields := flagsFields{}
	if err := node.Decode(&fields); err != nil {
		return err
	}
	*f = FlagsDocument(fields)
	return nil
}

// UnmarshalJSON accepts a number or an object.
func (f *FlagsDocument) UnmarshalJSON(data []byte) error {
	var value int
	if err := json.Unmarshal(data, &value); err == nil {
		f.Value = value
		return nil
	}
	fields := flagsFields{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&fields); err != nil {
		return err
	}
	*f = FlagsDocument(fields)
	return nil
}

// MessageFlags converts the document into a flags bitfield.
func (f *FlagsDocument) MessageFlags() *discord.DiscordMessageFlags {
	flags := discord.DiscordMessageFlagsFromValue(f.Value)
	if f.SuppressEmbeds {
		flags.SetSuppressEmbeds()
	}
	if f.Ephemeral {
		flags.SetEphemeral()
	}
	if f.Loading {
		flags.SetLoading()
	}
	if f.SuppressNotifications {
		flags.SetSuppressNotifications()
	}
	return flags
}
