package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise the deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := opts.today()
			if err != nil {
				return err
			}

			return opts.withDeck(cmd, func(ctx context.Context, d *deck) (bool, error) {
				stats, err := d.reviews.Stats(ctx, today)
				if err != nil {
					return false, err
				}
				vs := d.vocab.Stats()

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				_, _ = fmt.Fprintf(w, "Cards\t%d\n", stats.TotalCards)
				_, _ = fmt.Fprintf(w, "Due on %s\t%d\n", today, stats.DueToday)
				for _, level := range domain.MasteryLevels() {
					_, _ = fmt.Fprintf(w, "  %s\t%d\n", level.DisplayName(), stats.MasteryCount(level))
				}
				_, _ = fmt.Fprintf(w, "Average ease\t%.2f\n", stats.AverageEaseFactor)
				_, _ = fmt.Fprintf(w, "Average accuracy\t%.1f%%\n", stats.AverageAccuracy)
				_, _ = fmt.Fprintf(w, "Vocabulary\t%d (%d in review)\n", vs.Total, vs.InSRS)
				return false, w.Flush()
			})
		},
	}
}
