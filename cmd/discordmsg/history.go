package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func historyCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent deliveries from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			store, err := a.deliveryStore()
			if err != nil {
				return err
			}
			if store == nil {
				return fmt.Errorf("delivery journal is disabled (storage_config.record_deliveries)")
			}

			deliveries, err := store.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSENT\tTRANSPORT\tDESTINATION\tSTATUS\tERROR")
			for _, d := range deliveries {
				status := "ok"
				if !d.Succeeded() {
					status = "failed"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d %s\t%s\n",
					d.ID, d.SentAt.Local().Format(time.DateTime), d.Transport, d.Destination, d.StatusCode, status, d.Error)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of deliveries to show")
	return cmd
}
