package discord

import (
	"strings"
	"testing"
	"time"

	"github.com/aleister1102/discordmsg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssue() models.Issue {
	return models.Issue{
		ID:        "1001",
		ShortID:   "API-7",
		Title:     "TypeError: cannot read property 'id' of undefined",
		Culprit:   "handlers/user.go in GetUser",
		Permalink: "https://tracker.example.com/issues/1001",
		Project:   "api",
		Level:     models.IssueLevelError,
		Status:    models.IssueStatusUnresolved,
		FirstSeen: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestIssueMessageBuilder_Minimal(t *testing.T) {
	message, err := NewIssueMessageBuilder(testIssue(), IssueMessageOptions{}).Build()
	require.NoError(t, err)

	assert.NotContains(t, message, FieldContent)
	assert.NotContains(t, message, FieldComponents)
	assert.NotContains(t, message, FieldFlags)

	embeds, ok := message[FieldEmbeds].([]any)
	require.True(t, ok)
	require.Len(t, embeds, 1)

	embed := embeds[0].(map[string]any)
	assert.Equal(t, "TypeError: cannot read property 'id' of undefined", embed["title"])
	assert.Equal(t, "https://tracker.example.com/issues/1001", embed["url"])
	assert.Equal(t, "handlers/user.go in GetUser", embed["description"])
	assert.Equal(t, 0xE03E2F, embed["color"])
	assert.Equal(t, "2024-01-02T03:04:05Z", embed["timestamp"])
	assert.Equal(t, map[string]any{"text": "API-7"}, embed["footer"])
	assert.Equal(t, []any{
		map[string]any{"name": "Level", "value": "error", "inline": true},
		map[string]any{"name": "Status", "value": "unresolved", "inline": true},
		map[string]any{"name": "Project", "value": "api", "inline": true},
	}, embed["fields"])
}

func TestIssueMessageBuilder_AllOptions(t *testing.T) {
	options := IssueMessageOptions{
		MentionRoleIDs:        []string{"111", " ", "222"},
		IncludeActions:        true,
		SuppressNotifications: true,
	}

	message, err := NewIssueMessageBuilder(testIssue(), options).Build()
	require.NoError(t, err)

	assert.Equal(t, "<@&111> <@&222>", message[FieldContent])
	assert.Equal(t, FlagSuppressNotifications, message[FieldFlags])

	components := message[FieldComponents].([]any)
	require.Len(t, components, 1)
	row := components[0].(map[string]any)
	buttons := row["components"].([]any)
	require.Len(t, buttons, 3)

	assert.Equal(t, "resolve:1001", buttons[0].(map[string]any)["custom_id"])
	assert.Equal(t, "archive:1001", buttons[1].(map[string]any)["custom_id"])
	assert.Equal(t, "https://tracker.example.com/issues/1001", buttons[2].(map[string]any)["url"])
}

func TestIssueMessageBuilder_ResolvedIssue(t *testing.T) {
	issue := testIssue()
	issue.Status = models.IssueStatusResolved
	issue.Permalink = ""

	message, err := NewIssueMessageBuilder(issue, IssueMessageOptions{IncludeActions: true}).Build()
	require.NoError(t, err)

	embed := message[FieldEmbeds].([]any)[0].(map[string]any)
	assert.Equal(t, 0x33BF9E, embed["color"])
	assert.NotContains(t, embed, "url")

	buttons := message[FieldComponents].([]any)[0].(map[string]any)["components"].([]any)
	require.Len(t, buttons, 2)
	assert.Equal(t, "unresolve:1001", buttons[0].(map[string]any)["custom_id"])
	assert.Equal(t, "Unresolve", buttons[0].(map[string]any)["label"])
}

func TestIssueMessageBuilder_TruncatesTitle(t *testing.T) {
	issue := testIssue()
	issue.Title = strings.Repeat("x", 300)

	message, err := NewIssueMessageBuilder(issue, IssueMessageOptions{}).Build()
	require.NoError(t, err)

	title := message[FieldEmbeds].([]any)[0].(map[string]any)["title"].(string)
	assert.Equal(t, 256, len([]rune(title)))
	assert.True(t, strings.HasSuffix(title, "…"))
}

func TestIssueMessageBuilder_LevelColor(t *testing.T) {
	issue := testIssue()
	issue.Level = models.IssueLevelWarning

	message, err := NewIssueMessageBuilder(issue, IssueMessageOptions{}).Build()
	require.NoError(t, err)
	assert.Equal(t, 0xF1B71C, message[FieldEmbeds].([]any)[0].(map[string]any)["color"])
}
