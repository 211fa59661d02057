package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newWeakCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "weak",
		Short: "List cards with low ease or accuracy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withDeck(cmd, func(ctx context.Context, d *deck) (bool, error) {
				cards, err := d.reviews.WeakCards(ctx)
				if err != nil {
					return false, err
				}
				if len(cards) == 0 {
					printf(cmd, "no weak cards\n")
					return false, nil
				}
				return false, printCards(cmd, cards)
			})
		},
	}
}
