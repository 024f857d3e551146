package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
)

func newReactCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "react <postId> like|dislike",
		Short:     "Like or dislike a post; repeating a reaction removes it",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(entity.ReactionLike), string(entity.ReactionDislike)},
		RunE: func(cmd *cobra.Command, args []string) error {
			postID, kind := args[0], entity.ReactionType(args[1])
			reaction, err := o.app.Reactions.ToggleReaction(cmd.Context(), postID, kind)
			switch {
			case errors.Is(err, usecase.ErrInvalidReaction):
				return fmt.Errorf("reaction must be %q or %q", entity.ReactionLike, entity.ReactionDislike)
			case errors.Is(err, usecase.ErrReactionInFlight):
				return fmt.Errorf("a reaction on post %s is still being saved", postID)
			case err != nil:
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", postID, reactionLabel(reaction))
			return nil
		},
	}
}

func newReactionCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reaction <postId>",
		Short: "Show your reaction to a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reaction := o.app.Reactions.GetUserReaction(cmd.Context(), args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], reactionLabel(reaction))
			return nil
		},
	}
}

func newReactionsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reactions",
		Short: "List reactions remembered on this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cached, err := o.app.Reactions.CachedReactions(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(cached) == 0 {
				fmt.Fprintln(out, "No reactions yet.")
				return nil
			}
			ids := make([]string, 0, len(cached))
			for id := range cached {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				fmt.Fprintf(out, "%s: %s\n", id, cached[id])
			}
			return nil
		},
	}
}

func reactionLabel(r *entity.ReactionType) string {
	if r == nil {
		return "none"
	}
	return string(*r)
}
