package messagedoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/discordmsg/internal/common/errorwrapper"
	"github.com/aleister1102/discordmsg/internal/notifier/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocument(t *testing.T, data string, format Format) discord.Message {
	t.Helper()

	doc, err := ParseDocument([]byte(data), format)
	require.NoError(t, err)
	source, err := doc.MessageSource()
	require.NoError(t, err)
	message, err := source.Build()
	require.NoError(t, err)
	return message
}

func TestParseDocument_Presence(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		format   Format
		expected discord.Message
	}{
		{"empty yaml", "{}", FormatYAML, discord.Message{}},
		{"empty json", "{}", FormatJSON, discord.Message{}},
		{"content only", "content: hi\n", FormatYAML, discord.Message{"content": "hi"}},
		{"empty embeds yaml", "embeds: []\n", FormatYAML, discord.Message{"embeds": []any{}}},
		{"empty embeds json", `{"embeds": []}`, FormatJSON, discord.Message{"embeds": []any{}}},
		{"empty components", "components: []\n", FormatYAML, discord.Message{"components": []any{}}},
		{"null embeds absent", `{"embeds": null}`, FormatJSON, discord.Message{}},
		{"raw flags", "flags: 64\n", FormatYAML, discord.Message{"flags": 64}},
		{"raw flags json", `{"flags": 4}`, FormatJSON, discord.Message{"flags": 4}},
		{"flags value", "flags:\n  value: 64\n", FormatYAML, discord.Message{"flags": 64}},
		{
			"named flags",
			"flags:\n  suppress_embeds: true\n  suppress_notifications: true\n",
			FormatYAML,
			discord.Message{"flags": 4 | 4096},
		},
		{"named flags json", `{"flags": {"ephemeral": true}}`, FormatJSON, discord.Message{"flags": 64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildDocument(t, tt.data, tt.format))
		})
	}
}

func TestParseDocument_Full(t *testing.T) {
	data := `
content: Deploy finished
username: CI
thread_name: Deploys
embeds:
  - title: v1.2.3
    color: 0x00FF00
    fields:
      - name: Env
        value: prod
        inline: true
components:
  - type: action_row
    components:
      - type: button
        style: success
        label: Approve
        custom_id: approve:1
      - type: button
        label: Logs
        url: https://ci.example.com/1
`
	message := buildDocument(t, data, FormatYAML)

	assert.Equal(t, "Deploy finished", message["content"])
	assert.Equal(t, "CI", message["username"])
	assert.Equal(t, "Deploys", message["thread_name"])
	assert.Equal(t, []any{map[string]any{
		"title": "v1.2.3",
		"color": 0x00FF00,
		"fields": []any{
			map[string]any{"name": "Env", "value": "prod", "inline": true},
		},
	}}, message["embeds"])
	assert.Equal(t, []any{map[string]any{
		"type": 1,
		"components": []any{
			map[string]any{"type": 2, "style": 3, "label": "Approve", "custom_id": "approve:1"},
			map[string]any{"type": 2, "style": 5, "label": "Logs", "url": "https://ci.example.com/1"},
		},
	}}, message["components"])
}

func TestParseDocument_Errors(t *testing.T) {
	_, err := ParseDocument([]byte("unknown_key: 1\n"), FormatYAML)
	assert.Error(t, err)

	_, err = ParseDocument([]byte(`{"unknown_key": 1}`), FormatJSON)
	assert.Error(t, err)

	_, err = ParseDocument([]byte("{}"), Format("toml"))
	assert.ErrorIs(t, err, errorwrapper.ErrInvalidInput)
}

func TestParseDocument_UnknownFlag(t *testing.T) {
	_, err := ParseDocument([]byte("flags:\n  ephemral: true\n"), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ephemral")

	_, err = ParseDocument([]byte(`{"flags": {"ephemral": true}}`), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ephemral")

	message := buildDocument(t, "flags:\n  value: 2\n  ephemeral: true\n", FormatYAML)
	assert.Equal(t, discord.Message{"flags": 2 | 64}, message)
}

func TestDocument_UnknownComponentType(t *testing.T) {
	doc, err := ParseDocument([]byte("components:\n  - type: carousel\n"), FormatYAML)
	require.NoError(t, err)

	_, err = doc.MessageSource()
	var validationErr *errorwrapper.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "type", validationErr.Field)
}

func TestDocument_InvalidEmbedFailsOnBuild(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"embeds":[{"fields":[{"name":"","value":"v"}]}]}`), FormatJSON)
	require.NoError(t, err)

	source, err := doc.MessageSource()
	require.NoError(t, err)

	_, err = source.Build()
	assert.ErrorIs(t, err, errorwrapper.ErrInvalidInput)
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "message.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("content: from yaml\n"), 0o600))
	doc, err := LoadDocument(yamlPath)
	require.NoError(t, err)
	require.NotNil(t, doc.Content)
	assert.Equal(t, "from yaml", *doc.Content)
	assert.Nil(t, doc.Embeds)

	jsonPath := filepath.Join(dir, "message.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"content":"from json"}`), 0o600))
	doc, err = LoadDocument(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "from json", *doc.Content)

	_, err = LoadDocument(filepath.Join(dir, "message.txt"))
	assert.ErrorIs(t, err, errorwrapper.ErrInvalidInput)

	_, err = LoadDocument(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseDocument_EmptyYAML(t *testing.T) {
	doc, err := ParseDocument([]byte(""), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, &Document{}, doc)
}
