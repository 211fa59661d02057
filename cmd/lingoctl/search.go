package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search vocabulary by source, target or tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withDeck(cmd, func(ctx context.Context, d *deck) (bool, error) {
				items := d.vocab.Search(args[0], limit)
				if len(items) == 0 {
					printf(cmd, "no matches for %q\n", args[0])
					return false, nil
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				_, _ = fmt.Fprintln(w, "ID\tSOURCE\tTARGET\tCATEGORY\tIN REVIEW\tTAGS")
				for _, item := range items {
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%s\n",
						item.ID, item.Source, item.Target, item.Category.DisplayName(),
						item.InSRS, strings.Join(item.Tags, ", "))
				}
				return false, w.Flush()
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of results (0 for all)")
	return cmd
}
