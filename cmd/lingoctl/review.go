package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newReviewCmd(opts *rootOptions) *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "review <word_id> <quality 0-5>",
		Short: "Record a review of a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quality, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quality must be an integer from 0 to 5: %q", args[1])
			}
			today, err := opts.today()
			if err != nil {
				return err
			}

			return opts.withDeck(cmd, func(ctx context.Context, d *deck) (bool, error) {
				if preview {
					update, err := d.reviews.PreviewReview(ctx, args[0], quality, today)
					if err != nil {
						return false, err
					}
					printf(cmd, "%s: %s would be due on %s (interval %d, ease %.2f)\n",
						args[0], update.Quality, update.NextReviewDate, update.NewInterval, update.NewEaseFactor)
					return false, nil
				}

				result, err := d.reviews.SubmitReview(ctx, args[0], quality, today)
				if err != nil {
					return false, err
				}
				printf(cmd, "%s: %s, next review on %s (interval %d, ease %.2f)\n",
					result.Card.WordID, result.Update.Quality, result.Card.NextReviewDate,
					result.Card.Interval, result.Card.EaseFactor)
				return true, nil
			})
		},
	}

	cmd.Flags().BoolVar(&preview, "preview", false, "show the outcome without recording it")
	return cmd
}
