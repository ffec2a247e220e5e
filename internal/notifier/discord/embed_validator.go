package discord

import (
	"fmt"
	"unicode/utf8"

	"github.com/aleister1102/discordmsg/internal/common/errorwrapper"
)

// Discord embed limits, counted in characters.
const (
	maxEmbedTitleLength       = 256
	maxEmbedDescriptionLength = 4096
	maxEmbedFields            = 25
	maxEmbedFieldNameLength   = 256
	maxEmbedFieldValueLength  = 1024
	maxEmbedFooterLength      = 2048
	maxEmbedAuthorNameLength  = 256
	maxEmbedTotalLength       = 6000
)

// DiscordEmbedValidator validates Discord embed objects
type DiscordEmbedValidator struct{}

// NewDiscordEmbedValidator creates a new embed validator
func NewDiscordEmbedValidator() *DiscordEmbedValidator {
	return &DiscordEmbedValidator{}
}

// ValidateEmbed validates a Discord embed
func (dev *DiscordEmbedValidator) ValidateEmbed(embed DiscordEmbed) error {
	if utf8.RuneCountInString(embed.Title) > maxEmbedTitleLength {
		return errorwrapper.NewValidationError("title", embed.Title, "title cannot exceed 256 characters")
	}

	if utf8.RuneCountInString(embed.Description) > maxEmbedDescriptionLength {
		return errorwrapper.NewValidationError("description", embed.Description, "description cannot exceed 4096 characters")
	}

	if len(embed.Fields) > maxEmbedFields {
		return errorwrapper.NewValidationError("fields", len(embed.Fields), "cannot have more than 25 fields")
	}

	total := utf8.RuneCountInString(embed.Title) + utf8.RuneCountInString(embed.Description)

	for i, field := range embed.Fields {
		if field.Name == "" {
			return errorwrapper.NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot be empty", i))
		}
		if field.Value == "" {
			return errorwrapper.NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot be empty", i))
		}
		if utf8.RuneCountInString(field.Name) > maxEmbedFieldNameLength {
			return errorwrapper.NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot exceed 256 characters", i))
		}
		if utf8.RuneCountInString(field.Value) > maxEmbedFieldValueLength {
			return errorwrapper.NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot exceed 1024 characters", i))
		}
		total += utf8.RuneCountInString(field.Name) + utf8.RuneCountInString(field.Value)
	}

	if embed.Footer != nil {
		if utf8.RuneCountInString(embed.Footer.Text) > maxEmbedFooterLength {
			return errorwrapper.NewValidationError("footer_text", embed.Footer.Text, "footer text cannot exceed 2048 characters")
		}
		total += utf8.RuneCountInString(embed.Footer.Text)
	}

	if embed.Author != nil {
		if utf8.RuneCountInString(embed.Author.Name) > maxEmbedAuthorNameLength {
			return errorwrapper.NewValidationError("author_name", embed.Author.Name, "author name cannot exceed 256 characters")
		}
		total += utf8.RuneCountInString(embed.Author.Name)
	}

	if total > maxEmbedTotalLength {
		return errorwrapper.NewValidationError("embed", total, "embed text cannot exceed 6000 characters in total")
	}

	return nil
}
