package discord

// DiscordEmbedField represents a field in an embed.
type DiscordEmbedField struct {
	Name   string `json:"name" yaml:"name"`                         // Name of the field
	Value  string `json:"value" yaml:"value"`                       // Value of the field
	Inline bool   `json:"inline,omitempty" yaml:"inline,omitempty"` // Whether or not this field should display inline
}

// NewDiscordEmbedField creates a new Discord embed field
func NewDiscordEmbedField(name, value string, inline bool) DiscordEmbedField {
	return DiscordEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	}
}

func (f DiscordEmbedField) toMap() map[string]any {
	field := map[string]any{
		"name":  f.Name,
		"value": f.Value,
	}
	if f.Inline {
		field["inline"] = true
	}
	return field
}
