package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
)

func newInterestsCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interests",
		Short: "Show or change the topics your feed is filtered by",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printSelection(cmd.OutOrStdout(), o.app.Interests.SelectedInterests(cmd.Context()))
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <topic>...",
		Short: fmt.Sprintf("Replace your interests (1 to %d topics)", entity.MaxInterests),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selection, err := o.app.Interests.SaveInterests(cmd.Context(), args)
			if err != nil {
				return interestError(err)
			}
			printSelection(cmd.OutOrStdout(), selection)
			return nil
		},
	}
	toggle := &cobra.Command{
		Use:   "toggle <topic>",
		Short: "Add or remove a single topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selection, err := o.app.Interests.ToggleInterest(cmd.Context(), args[0])
			if err != nil {
				return interestError(err)
			}
			printSelection(cmd.OutOrStdout(), selection)
			return nil
		},
	}
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Show every post again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.app.Interests.ClearInterests(cmd.Context()); err != nil {
				return err
			}
			printSelection(cmd.OutOrStdout(), nil)
			return nil
		},
	}
	cmd.AddCommand(set, toggle, clearCmd)
	return cmd
}

func newTopicsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List the topics you can pick interests from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			topics, err := o.app.Source.FetchTopics(ctx)
			if err != nil {
				o.app.Logger.Warnf("failed to load topics, using built-in list: %v", err)
				topics = usecase.SampleTopics()
			}
			selection := o.app.Interests.SelectedInterests(ctx)
			out := cmd.OutOrStdout()
			for _, t := range topics {
				mark := " "
				if selection.Contains(t) {
					mark = "*"
				}
				fmt.Fprintf(out, "[%s] %s\n", mark, t)
			}
			return nil
		},
	}
}

func printSelection(out io.Writer, selection entity.InterestSelection) {
	if selection.Empty() {
		fmt.Fprintln(out, "No interests selected; showing all posts.")
		return
	}
	fmt.Fprintf(out, "Interests (%d/%d): %s\n", len(selection), entity.MaxInterests, strings.Join(selection, ", "))
}

func interestError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrTooManyInterests):
		return fmt.Errorf("you can select up to %d interests", entity.MaxInterests)
	case errors.Is(err, usecase.ErrNoInterests):
		return errors.New("select at least one interest, or use `interests clear`")
	}
	return err
}
