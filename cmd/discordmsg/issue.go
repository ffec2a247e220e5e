package main

import (
	"fmt"
	"time"

	"github.com/aleister1102/discordmsg/internal/common/errorwrapper"
	"github.com/aleister1102/discordmsg/internal/models"
	"github.com/aleister1102/discordmsg/internal/notifier/discord"
	"github.com/spf13/cobra"
)

type issueOptions struct {
	issue     models.Issue
	level     string
	status    string
	firstSeen string
	actions   bool
	silent    bool
	channelID string
	dryRun    bool
	pretty    bool
}

func issueCmd(opts *rootOptions) *cobra.Command {
	o := &issueOptions{}

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Send an issue alert",
		Long: `Renders an issue as an alert with an embed, role mentions and optional
resolve/archive buttons. The alert goes to the configured webhook, or to a
channel through the bot when --channel is set. --dry-run prints the payload.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			issue, err := o.resolveIssue()
			if err != nil {
				return err
			}

			nc := a.cfg.NotificationConfig
			builder := discord.NewIssueMessageBuilder(issue, discord.IssueMessageOptions{
				MentionRoleIDs:        nc.MentionRoleIDs,
				IncludeActions:        o.actions,
				SuppressNotifications: o.silent || nc.SuppressNotifications,
			})

			if o.dryRun {
				return printMessage(cmd, a.withWebhookDefaults(builder), o.pretty)
			}

			ctx, stop := signalContext(cmd)
			defer stop()

			if o.channelID != "" {
				sender, err := a.channelSender()
				if err != nil {
					return err
				}
				created, err := sender.Send(ctx, o.channelID, builder)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), created.ID)
				return err
			}

			if !nc.HasWebhook() {
				return errorwrapper.WrapError(errorwrapper.ErrNotConfigured, "no webhook URL: set DISCORD_WEBHOOK_URL or pass --channel")
			}
			notifier, err := a.webhookNotifier()
			if err != nil {
				return err
			}
			return notifier.SendNotification(ctx, nc.WebhookURL, a.withWebhookDefaults(builder), "")
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.issue.ID, "id", "", "issue id, used in button custom ids")
	flags.StringVar(&o.issue.ShortID, "short-id", "", "human readable id shown in the footer")
	flags.StringVar(&o.issue.Title, "title", "", "issue title")
	flags.StringVar(&o.issue.Culprit, "culprit", "", "where the issue was raised")
	flags.StringVar(&o.issue.Permalink, "url", "", "link to the issue")
	flags.StringVar(&o.issue.Project, "project", "", "project slug")
	flags.StringVar(&o.level, "level", "error", "debug, info, warning, error or fatal")
	flags.StringVar(&o.status, "status", string(models.IssueStatusUnresolved), "unresolved, resolved or archived")
	flags.StringVar(&o.firstSeen, "first-seen", "", "RFC3339 time the issue was first seen")
	flags.BoolVar(&o.actions, "actions", false, "attach resolve/archive buttons")
	flags.BoolVar(&o.silent, "silent", false, "suppress push and desktop notifications")
	flags.StringVar(&o.channelID, "channel", "", "post through the bot to this channel instead of the webhook")
	flags.BoolVar(&o.dryRun, "dry-run", false, "print the payload instead of sending it")
	flags.BoolVar(&o.pretty, "pretty", false, "indent --dry-run output")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func (o *issueOptions) resolveIssue() (models.Issue, error) {
	issue := o.issue
	issue.Level = models.ParseIssueLevel(o.level)

	switch status := models.IssueStatus(o.status); status {
	case models.IssueStatusUnresolved, models.IssueStatusResolved, models.IssueStatusArchived:
		issue.Status = status
	default:
		return issue, errorwrapper.NewValidationError("status", o.status, "status must be unresolved, resolved or archived")
	}

	if o.firstSeen != "" {
		firstSeen, err := time.Parse(time.RFC3339, o.firstSeen)
		if err != nil {
			return issue, errorwrapper.NewValidationError("first_seen", o.firstSeen, "first-seen must be an RFC3339 time")
		}
		issue.FirstSeen = firstSeen
	}

	if o.actions && issue.ID == "" {
		return issue, errorwrapper.NewValidationError("id", issue.ID, "--actions requires --id")
	}
	return issue, nil
}
