package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
)

func newVoteCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "vote <postId> true|false",
		Short: "Answer a question post",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			post, err := o.app.Source.FetchPost(ctx, args[0])
			if err != nil {
				return fmt.Errorf("load post %s: %w", args[0], err)
			}
			if usecase.ClassifyPost(*post) != entity.PostLayoutPoll {
				return fmt.Errorf("post %s is not a question", post.ID)
			}
			err = o.app.Polls.Vote(ctx, post.ID, args[1])
			switch {
			case errors.Is(err, usecase.ErrInvalidPollAnswer):
				return errors.New("answer must be true or false")
			case errors.Is(err, usecase.ErrAlreadyVoted):
				return fmt.Errorf("you already answered post %s", post.ID)
			case err != nil:
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Voted %s on %s\n", args[1], post.ID)
			return nil
		},
	}
}

func newWhoamiCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity reactions are recorded under",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			clientID := o.app.Reactions.GetClientIdentity(ctx)
			if clientID == "" {
				fmt.Fprintln(out, "client: unavailable")
			} else {
				fmt.Fprintf(out, "client: %s\n", clientID)
			}

			user, err := o.app.Source.CurrentUser(ctx)
			switch {
			case err != nil:
				o.app.Logger.Warnf("failed to resolve signed-in user: %v", err)
				fmt.Fprintln(out, "user: unknown")
			case user == nil:
				fmt.Fprintln(out, "user: anonymous")
			case user.Email != "":
				fmt.Fprintf(out, "user: %s <%s>\n", user.ID, user.Email)
			default:
				fmt.Fprintf(out, "user: %s\n", user.ID)
			}
			return nil
		},
	}
}
