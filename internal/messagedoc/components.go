package messagedoc

import (
	"fmt"
	"strings"

	"github.com/aleister1102/discordmsg/internal/common/errorwrapper"
	"github.com/aleister1102/discordmsg/internal/notifier/discord"
	"github.com/bwmarrin/discordgo"
)

// Component types accepted in documents.
const (
	ComponentTypeActionRow = "action_row"
	ComponentTypeButton    = "button"
	ComponentTypeSelect    = "select"
	ComponentTypeTextInput = "text_input"
)

var buttonStyles = map[string]discordgo.ButtonStyle{
	"primary":   discord.ButtonStylePrimary,
	"secondary": discord.ButtonStyleSecondary,
	"success":   discord.ButtonStyleSuccess,
	"danger":    discord.ButtonStyleDanger,
	"link":      discord.ButtonStyleLink,
}

var textInputStyles = map[string]discordgo.TextInputStyle{
	"short":     discord.TextInputStyleShort,
	"paragraph": discord.TextInputStyleParagraph,
}

// EmojiDocument is a partial emoji.
type EmojiDocument struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Animated bool   `json:"animated,omitempty" yaml:"animated,omitempty"`
}

func (e *EmojiDocument) emoji() *discord.DiscordComponentEmoji {
	if e == nil {
		return nil
	}
	return &discord.DiscordComponentEmoji{ID: e.ID, Name: e.Name, Animated: e.Animated}
}

// OptionDocument is a select menu option.
type OptionDocument struct {
	Label       string         `json:"label" yaml:"label"`
	Value       string         `json:"value" yaml:"value"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Emoji       *EmojiDocument `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Default     bool           `json:"default,omitempty" yaml:"default,omitempty"`
}

// ComponentDocument describes any component. Which fields apply depends on Type.
type ComponentDocument struct {
	Type        string              `json:"type" yaml:"type"`
	Components  []ComponentDocument `json:"components,omitempty" yaml:"components,omitempty"`
	Style       string              `json:"style,omitempty" yaml:"style,omitempty"`
	Label       string              `json:"label,omitempty" yaml:"label,omitempty"`
	CustomID    string              `json:"custom_id,omitempty" yaml:"custom_id,omitempty"`
	URL         string              `json:"url,omitempty" yaml:"url,omitempty"`
	Emoji       *EmojiDocument      `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Disabled    bool                `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Placeholder string              `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Options     []OptionDocument    `json:"options,omitempty" yaml:"options,omitempty"`
	MinValues   *int                `json:"min_values,omitempty" yaml:"min_values,omitempty"`
	MaxValues   *int                `json:"max_values,omitempty" yaml:"max_values,omitempty"`
	MinLength   *int                `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	MaxLength   *int                `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	Required    bool                `json:"required,omitempty" yaml:"required,omitempty"`
	Value       string              `json:"value,omitempty" yaml:"value,omitempty"`
}

// Component converts the document into a buildable component.
func (c ComponentDocument) Component() (discord.Component, error) {
	switch strings.ToLower(c.Type) {
	case ComponentTypeActionRow:
		row := discord.NewDiscordActionRow()
		for i, child := range c.Components {
			component, err := child.Component()
			if err != nil {
				return nil, fmt.Errorf("components[%d]: %w", i, err)
			}
			row.Components = append(row.Components, component)
		}
		return row, nil

	case ComponentTypeButton:
		style := discord.ButtonStyleSecondary
		if c.URL != "" {
			style = discord.ButtonStyleLink
		}
		if c.Style != "" {
			s, ok := buttonStyles[strings.ToLower(c.Style)]
			if !ok {
				return nil, errorwrapper.NewValidationError("style", c.Style, "unknown button style")
			}
			style = s
		}
		return &discord.DiscordButton{
			Style:    style,
			Label:    c.Label,
			CustomID: c.CustomID,
			URL:      c.URL,
			Emoji:    c.Emoji.emoji(),
			Disabled: c.Disabled,
		}, nil

	case ComponentTypeSelect:
		menu := discord.NewDiscordSelectMenu(c.CustomID)
		for _, option := range c.Options {
			menu.Options = append(menu.Options, discord.DiscordSelectMenuOption{
				Label:       option.Label,
				Value:       option.Value,
				Description: option.Description,
				Emoji:       option.Emoji.emoji(),
				Default:     option.Default,
			})
		}
		menu.Placeholder = c.Placeholder
		menu.MinValues = c.MinValues
		menu.MaxValues = c.MaxValues
		menu.Disabled = c.Disabled
		return menu, nil

	case ComponentTypeTextInput:
		style := discord.TextInputStyleShort
		if c.Style != "" {
			s, ok := textInputStyles[strings.ToLower(c.Style)]
			if !ok {
				return nil, errorwrapper.NewValidationError("style", c.Style, "unknown text input style")
			}
			style = s
		}
		input := discord.NewDiscordTextInput(c.CustomID, style, c.Label)
		input.MinLength = c.MinLength
		input.MaxLength = c.MaxLength
		input.Required = c.Required
		input.Value = c.Value
		input.Placeholder = c.Placeholder
		return input, nil

	default:
		return nil, errorwrapper.NewValidationError("type", c.Type, "unknown component type")
	}
}
