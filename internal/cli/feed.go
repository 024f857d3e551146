package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
)

func newFeedCmd(o *rootOptions) *cobra.Command {
	var (
		watch    bool
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the feed filtered by your interests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if !watch {
				posts, err := o.app.Source.FetchPosts(ctx)
				if err != nil {
					return fmt.Errorf("load feed: %w", err)
				}
				selection := o.app.Interests.SelectedInterests(ctx)
				printFeed(ctx, out, o, selection, len(posts), usecase.FilterPostsByInterests(posts, selection))
				return nil
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			poller := usecase.NewFeedPoller(o.app.Source, o.app.Interests, o.app.Logger, interval)
			poller.OnUpdate(func(posts []entity.Post) {
				fmt.Fprintf(out, "--- %s ---\n", o.now().Format(time.Kitchen))
				printFeed(ctx, out, o, o.app.Interests.SelectedInterests(ctx), -1, posts)
			})
			if err := poller.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()
			poller.Stop()
			return nil
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep refreshing the feed until interrupted")
	cmd.Flags().DurationVar(&interval, "interval", usecase.DefaultPollInterval, "refresh interval in watch mode")
	return cmd
}

// printFeed renders posts; total is the unfiltered count, or negative when unknown.
func printFeed(ctx context.Context, out io.Writer, o *rootOptions, selection entity.InterestSelection, total int, posts []entity.Post) {
	if !selection.Empty() {
		fmt.Fprintf(out, "Interests: %s\n", strings.Join(selection, ", "))
	}
	if total >= 0 {
		fmt.Fprintf(out, "Showing %d of %d posts\n\n", len(posts), total)
	}
	if len(posts) == 0 {
		fmt.Fprintln(out, "No posts yet.")
		return
	}
	now := o.now()
	for _, p := range posts {
		renderPost(out, viewOf(ctx, o, p), now)
		fmt.Fprintln(out)
	}
}

func viewOf(ctx context.Context, o *rootOptions, p entity.Post) postView {
	v := postView{Post: p, Reaction: o.app.Reactions.GetUserReaction(ctx, p.ID)}
	if vote, ok, err := o.app.Polls.GetVote(ctx, p.ID); err == nil && ok {
		v.Vote = vote
	}
	return v
}

func newShowCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <postId>",
		Short: "Show a post with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			post, err := o.app.Source.FetchPost(ctx, args[0])
			if err != nil {
				return fmt.Errorf("load post %s: %w", args[0], err)
			}
			now := o.now()
			renderPost(out, viewOf(ctx, o, *post), now)

			comments, err := o.app.Source.FetchComments(ctx, post.ID)
			if err != nil {
				o.app.Logger.Warnf("failed to load comments for post %s: %v", post.ID, err)
				return nil
			}
			fmt.Fprintf(out, "\n%d comments\n", len(comments))
			for _, c := range comments {
				renderComment(out, c, now)
			}
			return nil
		},
	}
}
