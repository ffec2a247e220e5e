package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Button styles accepted by DiscordButton.
const (
	ButtonStylePrimary   = discordgo.PrimaryButton
	ButtonStyleSecondary = discordgo.SecondaryButton
	ButtonStyleSuccess   = discordgo.SuccessButton
	ButtonStyleDanger    = discordgo.DangerButton
	ButtonStyleLink      = discordgo.LinkButton
)

// Text input styles accepted by DiscordTextInput.
const (
	TextInputStyleShort     = discordgo.TextInputShort
	TextInputStyleParagraph = discordgo.TextInputParagraph
)

// DiscordComponentEmoji is the partial emoji shown on buttons and select options.
type DiscordComponentEmoji struct {
	ID       string
	Name     string
	Animated bool
}

func (e *DiscordComponentEmoji) toMap() map[string]any {
	emoji := map[string]any{}
	putString(emoji, "id", e.ID)
	putString(emoji, "name", e.Name)
	if e.Animated {
		emoji["animated"] = true
	}
	return emoji
}

// DiscordActionRow is the top-level container for interactive components.
type DiscordActionRow struct {
	Components []Component
}

// NewDiscordActionRow creates an action row holding the given components.
func NewDiscordActionRow(components ...Component) *DiscordActionRow {
	return &DiscordActionRow{Components: components}
}

// Build builds each child in order; the first child error aborts the row.
func (r *DiscordActionRow) Build() (any, error) {
	if err := NewDiscordComponentValidator().ValidateActionRow(*r); err != nil {
		return nil, err
	}

	children := make([]any, 0, len(r.Components))
	for _, component := range r.Components {
		built, err := component.Build()
		if err != nil {
			return nil, err
		}
		children = append(children, built)
	}

	return map[string]any{
		"type":       int(discordgo.ActionsRowComponent),
		"components": children,
	}, nil
}

// DiscordButton is a clickable button. Link buttons carry a URL instead of a custom id.
type DiscordButton struct {
	Style    discordgo.ButtonStyle
	Label    string
	CustomID string
	URL      string
	Emoji    *DiscordComponentEmoji
	Disabled bool
}

// NewDiscordButton creates a non-link button that reports customID when clicked.
func NewDiscordButton(style discordgo.ButtonStyle, label, customID string) *DiscordButton {
	return &DiscordButton{
		Style:    style,
		Label:    label,
		CustomID: customID,
	}
}

// NewDiscordLinkButton creates a button that opens url.
func NewDiscordLinkButton(label, url string) *DiscordButton {
	return &DiscordButton{
		Style: ButtonStyleLink,
		Label: label,
		URL:   url,
	}
}

// Build validates the button and returns its wire representation.
func (b *DiscordButton) Build() (any, error) {
	if err := NewDiscordComponentValidator().ValidateButton(*b); err != nil {
		return nil, err
	}

	button := map[string]any{
		"type":  int(discordgo.ButtonComponent),
		"style": int(b.Style),
	}
	putString(button, "label", b.Label)
	putString(button, "custom_id", b.CustomID)
	putString(button, "url", b.URL)
	if b.Emoji != nil {
		button["emoji"] = b.Emoji.toMap()
	}
	if b.Disabled {
		button["disabled"] = true
	}
	return button, nil
}

// DiscordSelectMenuOption is one choice of a DiscordSelectMenu.
type DiscordSelectMenuOption struct {
	Label       string
	Value       string
	Description string
	Emoji       *DiscordComponentEmoji
	Default     bool
}

func (o DiscordSelectMenuOption) toMap() map[string]any {
	option := map[string]any{
		"label": o.Label,
		"value": o.Value,
	}
	putString(option, "description", o.Description)
	if o.Emoji != nil {
		option["emoji"] = o.Emoji.toMap()
	}
	if o.Default {
		option["default"] = true
	}
	return option
}

// DiscordSelectMenu is a string select menu.
type DiscordSelectMenu struct {
	CustomID    string
	Options     []DiscordSelectMenuOption
	Placeholder string
	MinValues   *int
	MaxValues   *int
	Disabled    bool
}

// NewDiscordSelectMenu creates a select menu with the given options.
func NewDiscordSelectMenu(customID string, options ...DiscordSelectMenuOption) *DiscordSelectMenu {
	return &DiscordSelectMenu{
		CustomID: customID,
		Options:  options,
	}
}

// Build validates the menu and returns its wire representation.
func (m *DiscordSelectMenu) Build() (any, error) {
	if err := NewDiscordComponentValidator().ValidateSelectMenu(*m); err != nil {
		return nil, err
	}

	options := make([]any, 0, len(m.Options))
	for _, option := range m.Options {
		options = append(options, option.toMap())
	}

	menu := map[string]any{
		"type":      int(discordgo.SelectMenuComponent),
		"custom_id": m.CustomID,
		"options":   options,
	}
	putString(menu, "placeholder", m.Placeholder)
	if m.MinValues != nil {
		menu["min_values"] = *m.MinValues
	}
	if m.MaxValues != nil {
		menu["max_values"] = *m.MaxValues
	}
	if m.Disabled {
		menu["disabled"] = true
	}
	return menu, nil
}

// DiscordTextInput is a text field, only valid inside modals.
type DiscordTextInput struct {
	CustomID    string
	Style       discordgo.TextInputStyle
	Label       string
	MinLength   *int
	MaxLength   *int
	Required    bool
	Value       string
	Placeholder string
}

// NewDiscordTextInput creates a text input.
func NewDiscordTextInput(customID string, style discordgo.TextInputStyle, label string) *DiscordTextInput {
	return &DiscordTextInput{
		CustomID: customID,
		Style:    style,
		Label:    label,
	}
}

// Build validates the input and returns its wire representation.
func (ti *DiscordTextInput) Build() (any, error) {
	if err := NewDiscordComponentValidator().ValidateTextInput(*ti); err != nil {
		return nil, err
	}

	input := map[string]any{
		"type":      int(discordgo.TextInputComponent),
		"custom_id": ti.CustomID,
		"style":     int(ti.Style),
		"label":     ti.Label,
	}
	if ti.MinLength != nil {
		input["min_length"] = *ti.MinLength
	}
	if ti.MaxLength != nil {
		input["max_length"] = *ti.MaxLength
	}
	if ti.Required {
		input["required"] = true
	}
	putString(input, "value", ti.Value)
	putString(input, "placeholder", ti.Placeholder)
	return input, nil
}
