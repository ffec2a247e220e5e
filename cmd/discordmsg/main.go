package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "discordmsg",
		Short:         "Build and deliver Discord messages",
		Long:          "discordmsg builds Discord message payloads from YAML/JSON documents and delivers them through webhooks or a bot channel.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config.yaml/config.json (default: $DISCORDMSG_CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(buildCmd())
	root.AddCommand(sendCmd(opts))
	root.AddCommand(postCmd(opts))
	root.AddCommand(issueCmd(opts))
	root.AddCommand(historyCmd(opts))

	return root
}
