package main

import (
	"context"
	"strings"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	var (
		lessonID      string
		level         string
		pair          string
		category      string
		tags          string
		pronunciation string
		example       string
		notes         string
	)

	cmd := &cobra.Command{
		Use:   "add <id> <source> <target>",
		Short: "Add a vocabulary item to the deck",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := opts.today()
			if err != nil {
				return err
			}

			item, err := domain.NewVocabularyItem(args[0], args[1], args[2],
				lessonID, level, pair, domain.Category(category), today)
			if err != nil {
				return err
			}
			item.Pronunciation = optional(pronunciation)
			item.ExampleSentence = optional(example)
			item.Notes = optional(notes)
			item.Tags = splitTags(tags)

			return opts.withDeck(cmd, func(ctx context.Context, d *deck) (bool, error) {
				if err := d.vocab.AddItem(ctx, item); err != nil {
					return false, err
				}
				printf(cmd, "added %s: %s -> %s (%s)\n",
					item.ID, item.Source, item.Target, item.Category.DisplayName())
				return true, nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&lessonID, "lesson", "", "lesson that introduced the item")
	flags.StringVar(&level, "level", "", "proficiency level, e.g. a1")
	flags.StringVar(&pair, "pair", "", "language pair, e.g. en_to_pt")
	flags.StringVar(&category, "category", "", "noun, verb, adjective, ... (default other)")
	flags.StringVarP(&tags, "tags", "t", "", "comma-separated tags")
	flags.StringVar(&pronunciation, "pronunciation", "", "pronunciation guide")
	flags.StringVar(&example, "example", "", "example sentence")
	flags.StringVar(&notes, "notes", "", "free-form notes")
	return cmd
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func splitTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
