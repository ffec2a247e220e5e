package main

import (
	"github.com/aleister1102/discordmsg/internal/common/errorwrapper"
	"github.com/spf13/cobra"
)

func sendCmd(opts *rootOptions) *cobra.Command {
	var (
		webhookURL string
		attachment string
	)

	cmd := &cobra.Command{
		Use:   "send <document>",
		Short: "Execute a webhook with a message document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if webhookURL == "" {
				webhookURL = a.cfg.NotificationConfig.WebhookURL
			}
			if webhookURL == "" {
				return errorwrapper.WrapError(errorwrapper.ErrNotConfigured, "no webhook URL: pass --webhook or set DISCORD_WEBHOOK_URL")
			}

			source, err := loadDocumentSource(args[0])
			if err != nil {
				return err
			}

			notifier, err := a.webhookNotifier()
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd)
			defer stop()
			return notifier.SendNotification(ctx, webhookURL, a.withWebhookDefaults(source), attachment)
		},
	}

	cmd.Flags().StringVar(&webhookURL, "webhook", "", "webhook URL (default: notification_config.webhook_url)")
	cmd.Flags().StringVar(&attachment, "attach", "", "file to upload with the message (max 8 MiB)")
	return cmd
}
