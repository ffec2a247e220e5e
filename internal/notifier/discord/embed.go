package discord

// DiscordEmbed represents a Discord embed object.
type DiscordEmbed struct {
	Title       string                 `json:"title,omitempty" yaml:"title,omitempty"`             // Title of embed
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"` // Description of embed
	URL         string                 `json:"url,omitempty" yaml:"url,omitempty"`                 // URL of embed
	Timestamp   string                 `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`     // ISO8601 timestamp
	Color       int                    `json:"color,omitempty" yaml:"color,omitempty"`             // Color code of the embed
	Footer      *DiscordEmbedFooter    `json:"footer,omitempty" yaml:"footer,omitempty"`
	Image       *DiscordEmbedImage     `json:"image,omitempty" yaml:"image,omitempty"`
	Thumbnail   *DiscordEmbedThumbnail `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Author      *DiscordEmbedAuthor    `json:"author,omitempty" yaml:"author,omitempty"`
	Fields      []DiscordEmbedField    `json:"fields,omitempty" yaml:"fields,omitempty"` // Array of embed field objects
}

// Build validates the embed and returns its wire representation.
func (e *DiscordEmbed) Build() (any, error) {
	if err := NewDiscordEmbedValidator().ValidateEmbed(*e); err != nil {
		return nil, err
	}

	embed := map[string]any{}
	putString(embed, "title", e.Title)
	putString(embed, "description", e.Description)
	putString(embed, "url", e.URL)
	putString(embed, "timestamp", e.Timestamp)
	if e.Color != 0 {
		embed["color"] = e.Color
	}
	if e.Footer != nil {
		embed["footer"] = e.Footer.toMap()
	}
	if e.Image != nil {
		embed["image"] = map[string]any{"url": e.Image.URL}
	}
	if e.Thumbnail != nil {
		embed["thumbnail"] = map[string]any{"url": e.Thumbnail.URL}
	}
	if e.Author != nil {
		embed["author"] = e.Author.toMap()
	}
	if len(e.Fields) > 0 {
		fields := make([]any, 0, len(e.Fields))
		for _, field := range e.Fields {
			fields = append(fields, field.toMap())
		}
		embed["fields"] = fields
	}
	return embed, nil
}

// DiscordEmbedFooter represents the footer of an embed.
type DiscordEmbedFooter struct {
	Text    string `json:"text" yaml:"text"`                             // Footer text
	IconURL string `json:"icon_url,omitempty" yaml:"icon_url,omitempty"` // URL of footer icon (only supports http(s) and attachments)
}

// NewDiscordEmbedFooter creates a new Discord embed footer
func NewDiscordEmbedFooter(text, iconURL string) *DiscordEmbedFooter {
	return &DiscordEmbedFooter{
		Text:    text,
		IconURL: iconURL,
	}
}

func (f *DiscordEmbedFooter) toMap() map[string]any {
	footer := map[string]any{"text": f.Text}
	putString(footer, "icon_url", f.IconURL)
	return footer
}

// DiscordEmbedImage represents the image of an embed.
type DiscordEmbedImage struct {
	URL string `json:"url" yaml:"url"` // Source URL of image (only supports http(s) and attachments)
}

// NewDiscordEmbedImage creates a new Discord embed image
func NewDiscordEmbedImage(url string) *DiscordEmbedImage {
	return &DiscordEmbedImage{URL: url}
}

// DiscordEmbedThumbnail represents the thumbnail of an embed.
type DiscordEmbedThumbnail struct {
	URL string `json:"url" yaml:"url"`
}

// NewDiscordEmbedThumbnail creates a new Discord embed thumbnail
func NewDiscordEmbedThumbnail(url string) *DiscordEmbedThumbnail {
	return &DiscordEmbedThumbnail{URL: url}
}

// DiscordEmbedAuthor represents the author of an embed.
type DiscordEmbedAuthor struct {
	Name    string `json:"name" yaml:"name"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	IconURL string `json:"icon_url,omitempty" yaml:"icon_url,omitempty"`
}

// NewDiscordEmbedAuthor creates a new Discord embed author
func NewDiscordEmbedAuthor(name, url, iconURL string) *DiscordEmbedAuthor {
	return &DiscordEmbedAuthor{
		Name:    name,
		URL:     url,
		IconURL: iconURL,
	}
}

func (a *DiscordEmbedAuthor) toMap() map[string]any {
	author := map[string]any{"name": a.Name}
	putString(author, "url", a.URL)
	putString(author, "icon_url", a.IconURL)
	return author
}

func putString(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}
