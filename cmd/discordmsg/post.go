package main

import (
	"fmt"

	"github.com/aleister1102/discordmsg/internal/common/errorwrapper"
	"github.com/spf13/cobra"
)

func postCmd(opts *rootOptions) *cobra.Command {
	var channelID string

	cmd := &cobra.Command{
		Use:   "post <document>",
		Short: "Post a message document to a channel with the bot token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if channelID == "" {
				channelID = a.cfg.NotificationConfig.ChannelID
			}
			if channelID == "" {
				return errorwrapper.WrapError(errorwrapper.ErrNotConfigured, "no channel: pass --channel or set DISCORD_CHANNEL_ID")
			}

			source, err := loadDocumentSource(args[0])
			if err != nil {
				return err
			}

			sender, err := a.channelSender()
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd)
			defer stop()
			created, err := sender.Send(ctx, channelID, source)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), created.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&channelID, "channel", "", "channel id (default: notification_config.channel_id)")
	return cmd
}
