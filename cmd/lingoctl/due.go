package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/spf13/cobra"
)

func newDueCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List the cards due for review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := opts.today()
			if err != nil {
				return err
			}

			return opts.withDeck(cmd, func(ctx context.Context, d *deck) (bool, error) {
				cards, err := d.reviews.DueCards(ctx, today, limit)
				if err != nil {
					return false, err
				}
				if len(cards) == 0 {
					printf(cmd, "nothing due on %s\n", today)
					return false, nil
				}
				printf(cmd, "%d due on %s\n\n", len(cards), today)
				return false, printCards(cmd, cards)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of cards (0 for all)")
	return cmd
}

func printCards(cmd *cobra.Command, cards []*domain.Card) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "WORD\tSOURCE\tTARGET\tNEXT REVIEW\tEASE\tACCURACY\tMASTERY")
	for _, c := range cards {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%.0f%%\t%s\n",
			c.WordID, c.SourceWord, c.TargetWord, c.NextReviewDate,
			c.EaseFactor, c.AccuracyRate(), c.MasteryLevel().DisplayName())
	}
	return w.Flush()
}
