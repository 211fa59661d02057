package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newPromoteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "promote <id>",
		Short: "Start reviewing a vocabulary item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := opts.today()
			if err != nil {
				return err
			}

			return opts.withDeck(cmd, func(ctx context.Context, d *deck) (bool, error) {
				card, err := d.vocab.Promote(ctx, args[0], today)
				if err != nil {
					return false, err
				}
				printf(cmd, "promoted %s, first review on %s\n", card.WordID, card.NextReviewDate)
				return true, nil
			})
		},
	}
}
