package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/ericcurtin/GreengoLingo/internal/platform/logger"
	"github.com/spf13/cobra"
)

// DefaultDeckFile is the snapshot used when --file is not given.
const DefaultDeckFile = "lingo.json"

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	file    string
	date    string
	verbose bool
	now     func() time.Time
}

// today returns the --date flag, or the current UTC date when it is empty.
func (o *rootOptions) today() (string, error) {
	if o.date == "" {
		return domain.FormatDate(o.now()), nil
	}
	if _, err := domain.ParseDate(o.date); err != nil {
		return "", err
	}
	return o.date, nil
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	return logger.New(w, level)
}

// withDeck opens the deck, runs fn and saves the deck when fn reports a
// change.
func (o *rootOptions) withDeck(cmd *cobra.Command, fn func(ctx context.Context, d *deck) (bool, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := openDeck(ctx, o.file, o.logger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	changed, err := fn(ctx, d)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return d.save(ctx)
}

func newRootCmd(now func() time.Time) *cobra.Command {
	opts := &rootOptions{now: now}

	cmd := &cobra.Command{
		Use:   "lingoctl",
		Short: "Review a GreengoLingo vocabulary deck offline",
		Long: `lingoctl manages a vocabulary deck stored in a JSON snapshot file and
schedules reviews with the SM-2 spaced repetition algorithm.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", DefaultDeckFile, "path to the deck snapshot")
	flags.StringVarP(&opts.date, "date", "d", "", "review date as YYYY-MM-DD (default today, UTC)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(
		newAddCmd(opts),
		newPromoteCmd(opts),
		newDueCmd(opts),
		newReviewCmd(opts),
		newStatsCmd(opts),
		newSearchCmd(opts),
		newWeakCmd(opts),
	)
	return cmd
}

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
