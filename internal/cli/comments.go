package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
)

func newCommentsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "comments <postId>",
		Short: "List the comments on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comments, err := o.app.Source.FetchComments(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("load comments: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(comments) == 0 {
				fmt.Fprintln(out, "No comments yet.")
				return nil
			}
			now := o.now()
			for _, c := range comments {
				renderComment(out, c, now)
			}
			return nil
		},
	}
}

func newCommentCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <postId> <text>...",
		Short: "Add a comment to a post",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.TrimSpace(strings.Join(args[1:], " "))
			if content == "" {
				return errors.New("comment text is empty")
			}
			comment, err := o.app.Source.AddComment(cmd.Context(), args[0], content)
			if err != nil {
				if errors.Is(err, contract.ErrPostNotFound) {
					return fmt.Errorf("post %s not found", args[0])
				}
				return fmt.Errorf("add comment: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Comment %s added as %s\n", comment.ID, comment.AuthorName)
			return nil
		},
	}
}
