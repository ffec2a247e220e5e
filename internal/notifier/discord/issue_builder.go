package discord

import (
	"fmt"
	"strings"

	"github.com/aleister1102/discordmsg/internal/models"
)

// Embed colors per issue level.
var issueLevelColors = map[models.IssueLevel]int{
	models.IssueLevelDebug:   0x8C8C8C,
	models.IssueLevelInfo:    0x2788CE,
	models.IssueLevelWarning: 0xF1B71C,
	models.IssueLevelError:   0xE03E2F,
	models.IssueLevelFatal:   0xFA4747,
}

const (
	resolvedIssueColor = 0x33BF9E
	defaultIssueColor  = 0xE03E2F
)

// Custom id prefixes of the issue action buttons, formatted as "<action>:<issue id>".
const (
	IssueActionResolve   = "resolve"
	IssueActionUnresolve = "unresolve"
	IssueActionArchive   = "archive"
	IssueActionUnarchive = "unarchive"
)

// IssueMessageOptions controls the optional parts of an issue notification.
type IssueMessageOptions struct {
	MentionRoleIDs        []string // Roles pinged in the message content
	IncludeActions        bool     // Attach resolve/archive buttons
	SuppressNotifications bool     // Deliver silently
}

// IssueMessageBuilder renders an issue as a Discord message by composing a MessageBuilder.
type IssueMessageBuilder struct {
	issue   models.Issue
	options IssueMessageOptions
}

// NewIssueMessageBuilder creates a builder for the given issue.
func NewIssueMessageBuilder(issue models.Issue, options IssueMessageOptions) *IssueMessageBuilder {
	return &IssueMessageBuilder{
		issue:   issue,
		options: options,
	}
}

// Build produces the issue message.
func (b *IssueMessageBuilder) Build() (Message, error) {
	return b.MessageBuilder().Build()
}

// MessageBuilder returns the underlying builder, pre-populated for the issue.
func (b *IssueMessageBuilder) MessageBuilder() *MessageBuilder {
	opts := []MessageOption{
		WithEmbeds(b.buildEmbed()),
	}

	if mentions := b.mentionContent(); mentions != "" {
		opts = append(opts, WithContent(mentions))
	}
	if b.options.IncludeActions {
		opts = append(opts, WithComponents(b.buildActions()))
	}
	if b.options.SuppressNotifications {
		opts = append(opts, WithFlags(NewDiscordMessageFlags().SetSuppressNotifications()))
	}

	return NewMessageBuilder(opts...)
}

func (b *IssueMessageBuilder) buildEmbed() *DiscordEmbed {
	issue := b.issue

	builder := NewDiscordEmbedBuilder().
		WithTitle(truncateRunes(issue.Title, maxEmbedTitleLength)).
		WithURL(issue.Permalink).
		WithDescription(truncateRunes(issue.Culprit, maxEmbedDescriptionLength)).
		WithColor(b.color())

	if issue.Level != "" {
		builder.AddField("Level", string(issue.Level), true)
	}
	if issue.Status != "" {
		builder.AddField("Status", string(issue.Status), true)
	}
	if issue.Project != "" {
		builder.AddField("Project", issue.Project, true)
	}
	if issue.ShortID != "" {
		builder.WithFooter(issue.ShortID, "")
	}
	if !issue.FirstSeen.IsZero() {
		builder.WithTimestamp(issue.FirstSeen)
	}

	return builder.Build()
}

func (b *IssueMessageBuilder) buildActions() *DiscordActionRow {
	resolve := NewDiscordButton(ButtonStyleSuccess, "Resolve", b.customID(IssueActionResolve))
	if b.issue.Status == models.IssueStatusResolved {
		resolve = NewDiscordButton(ButtonStyleSecondary, "Unresolve", b.customID(IssueActionUnresolve))
	}

	archive := NewDiscordButton(ButtonStyleSecondary, "Archive", b.customID(IssueActionArchive))
	if b.issue.Status == models.IssueStatusArchived {
		archive = NewDiscordButton(ButtonStyleSecondary, "Unarchive", b.customID(IssueActionUnarchive))
	}

	row := NewDiscordActionRow(resolve, archive)
	if b.issue.Permalink != "" {
		row.Components = append(row.Components, NewDiscordLinkButton("Open", b.issue.Permalink))
	}
	return row
}

func (b *IssueMessageBuilder) customID(action string) string {
	return fmt.Sprintf("%s:%s", action, b.issue.ID)
}

func (b *IssueMessageBuilder) color() int {
	if b.issue.Status == models.IssueStatusResolved {
		return resolvedIssueColor
	}
	if color, ok := issueLevelColors[b.issue.Level]; ok {
		return color
	}
	return defaultIssueColor
}

func (b *IssueMessageBuilder) mentionContent() string {
	mentions := make([]string, 0, len(b.options.MentionRoleIDs))
	for _, roleID := range b.options.MentionRoleIDs {
		if roleID = strings.TrimSpace(roleID); roleID != "" {
			mentions = append(mentions, fmt.Sprintf("<@&%s>", roleID))
		}
	}
	return strings.Join(mentions, " ")
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
