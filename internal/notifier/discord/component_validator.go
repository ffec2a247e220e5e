package discord

import (
	"fmt"
	"unicode/utf8"

	"github.com/aleister1102/discordmsg/internal/common/errorwrapper"
)

const (
	maxActionRowComponents  = 5
	maxCustomIDLength       = 100
	maxButtonLabelLength    = 80
	maxSelectOptions        = 25
	maxSelectPlaceholder    = 150
	maxSelectOptionLength   = 100
	maxTextInputLabelLength = 45
	maxTextInputLength      = 4000
	maxTextInputPlaceholder = 100
)

// DiscordComponentValidator validates message components against Discord limits.
type DiscordComponentValidator struct{}

// NewDiscordComponentValidator creates a new component validator
func NewDiscordComponentValidator() *DiscordComponentValidator {
	return &DiscordComponentValidator{}
}

// ValidateActionRow checks the child count of an action row
func (dcv *DiscordComponentValidator) ValidateActionRow(row DiscordActionRow) error {
	if len(row.Components) > maxActionRowComponents {
		return errorwrapper.NewValidationError("components", len(row.Components), "an action row cannot hold more than 5 components")
	}
	return nil
}

// ValidateButton validates a button
func (dcv *DiscordComponentValidator) ValidateButton(button DiscordButton) error {
	if button.Style < ButtonStylePrimary || button.Style > ButtonStyleLink {
		return errorwrapper.NewValidationError("style", int(button.Style), "unknown button style")
	}
	if utf8.RuneCountInString(button.Label) > maxButtonLabelLength {
		return errorwrapper.NewValidationError("label", button.Label, "button label cannot exceed 80 characters")
	}
	if button.Label == "" && button.Emoji == nil {
		return errorwrapper.NewValidationError("label", button.Label, "button needs a label or an emoji")
	}

	if button.Style == ButtonStyleLink {
		if button.URL == "" {
			return errorwrapper.NewValidationError("url", button.URL, "link button requires a url")
		}
		if button.CustomID != "" {
			return errorwrapper.NewValidationError("custom_id", button.CustomID, "link button cannot have a custom_id")
		}
		return nil
	}

	if button.URL != "" {
		return errorwrapper.NewValidationError("url", button.URL, "only link buttons can have a url")
	}
	return validateCustomID(button.CustomID)
}

// ValidateSelectMenu validates a select menu
func (dcv *DiscordComponentValidator) ValidateSelectMenu(menu DiscordSelectMenu) error {
	if err := validateCustomID(menu.CustomID); err != nil {
		return err
	}
	if len(menu.Options) == 0 || len(menu.Options) > maxSelectOptions {
		return errorwrapper.NewValidationError("options", len(menu.Options), "select menu needs between 1 and 25 options")
	}
	if utf8.RuneCountInString(menu.Placeholder) > maxSelectPlaceholder {
		return errorwrapper.NewValidationError("placeholder", menu.Placeholder, "placeholder cannot exceed 150 characters")
	}

	minValues, maxValues := 1, 1
	if menu.MinValues != nil {
		minValues = *menu.MinValues
	}
	if menu.MaxValues != nil {
		maxValues = *menu.MaxValues
	}
	if minValues < 0 || minValues > maxSelectOptions {
		return errorwrapper.NewValidationError("min_values", minValues, "min_values must be between 0 and 25")
	}
	if maxValues < 1 || maxValues > maxSelectOptions {
		return errorwrapper.NewValidationError("max_values", maxValues, "max_values must be between 1 and 25")
	}
	if minValues > maxValues {
		return errorwrapper.NewValidationError("min_values", minValues, "min_values cannot exceed max_values")
	}

	for i, option := range menu.Options {
		if option.Label == "" || option.Value == "" {
			return errorwrapper.NewValidationError("options", i, fmt.Sprintf("option %d needs a label and a value", i))
		}
		if utf8.RuneCountInString(option.Label) > maxSelectOptionLength ||
			utf8.RuneCountInString(option.Value) > maxSelectOptionLength ||
			utf8.RuneCountInString(option.Description) > maxSelectOptionLength {
			return errorwrapper.NewValidationError("options", i, fmt.Sprintf("option %d text cannot exceed 100 characters", i))
		}
	}
	return nil
}

// ValidateTextInput validates a text input
func (dcv *DiscordComponentValidator) ValidateTextInput(input DiscordTextInput) error {
	if err := validateCustomID(input.CustomID); err != nil {
		return err
	}
	if input.Style != TextInputStyleShort && input.Style != TextInputStyleParagraph {
		return errorwrapper.NewValidationError("style", int(input.Style), "unknown text input style")
	}
	if input.Label == "" || utf8.RuneCountInString(input.Label) > maxTextInputLabelLength {
		return errorwrapper.NewValidationError("label", input.Label, "label must be between 1 and 45 characters")
	}
	if utf8.RuneCountInString(input.Placeholder) > maxTextInputPlaceholder {
		return errorwrapper.NewValidationError("placeholder", input.Placeholder, "placeholder cannot exceed 100 characters")
	}
	if input.MinLength != nil && (*input.MinLength < 0 || *input.MinLength > maxTextInputLength) {
		return errorwrapper.NewValidationError("min_length", *input.MinLength, "min_length must be between 0 and 4000")
	}
	if input.MaxLength != nil && (*input.MaxLength < 1 || *input.MaxLength > maxTextInputLength) {
		return errorwrapper.NewValidationError("max_length", *input.MaxLength, "max_length must be between 1 and 4000")
	}
	if input.MinLength != nil && input.MaxLength != nil && *input.MinLength > *input.MaxLength {
		return errorwrapper.NewValidationError("min_length", *input.MinLength, "min_length cannot exceed max_length")
	}
	return nil
}

func validateCustomID(customID string) error {
	if customID == "" {
		return errorwrapper.NewValidationError("custom_id", customID, "custom_id is required")
	}
	if utf8.RuneCountInString(customID) > maxCustomIDLength {
		return errorwrapper.NewValidationError("custom_id", customID, "custom_id cannot exceed 100 characters")
	}
	return nil
}
