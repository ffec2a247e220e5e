package main

import (
	"encoding/json"
	"fmt"

	"github.com/aleister1102/discordmsg/internal/messagedoc"
	"github.com/aleister1102/discordmsg/internal/notifier/discord"
	"github.com/spf13/cobra"
)

func buildCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "build <document>",
		Short: "Print the JSON payload for a message document",
		Long: `Reads a YAML or JSON message document and prints the message-creation
payload Discord would receive. Keys absent from the document are absent
from the payload; an empty list such as "embeds: []" is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := loadDocumentSource(args[0])
			if err != nil {
				return err
			}
			return printMessage(cmd, source, pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	return cmd
}

func loadDocumentSource(path string) (discord.MessageSource, error) {
	doc, err := messagedoc.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return doc.MessageSource()
}

// printMessage builds source and writes the payload to stdout.
func printMessage(cmd *cobra.Command, source discord.MessageSource, pretty bool) error {
	message, err := source.Build()
	if err != nil {
		return err
	}

	var data []byte
	if pretty {
		data, err = json.MarshalIndent(message, "", "  ")
	} else {
		data, err = message.JSON()
	}
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
