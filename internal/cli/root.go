package cli

import (
	"time"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	apiURL     string
	statePath  string
	token      string

	app   *App
	owned bool
	now   func() time.Time
}

// Option customises NewRootCommand.
type Option func(*rootOptions)

// WithApp makes every command use app instead of building one from configuration.
func WithApp(app *App) Option {
	return func(o *rootOptions) { o.app = app }
}

// WithClock sets the clock used for relative times.
func WithClock(now func() time.Time) Option {
	return func(o *rootOptions) { o.now = now }
}

// NewRootCommand builds the feedcli command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	o := &rootOptions{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	root := &cobra.Command{
		Use:           "feedcli",
		Short:         "Browse the Inflo agent feed from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.app != nil {
				return nil
			}
			cfg, err := LoadConfig(o.configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("api-url") {
				cfg.APIURL = o.apiURL
			}
			if flags.Changed("state") {
				cfg.StatePath = o.statePath
			}
			if flags.Changed("token") {
				cfg.Token = o.token
			}
			app, err := NewApp(cfg)
			if err != nil {
				return err
			}
			o.app = app
			o.owned = true
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if o.owned && o.app != nil {
				return o.app.Close()
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", DefaultConfigPath(), "path to the YAML config file")
	pf.StringVar(&o.apiURL, "api-url", defaultAPIURL, "base URL of the feed API")
	pf.StringVar(&o.statePath, "state", "", "path to the local state database")
	pf.StringVar(&o.token, "token", "", "bearer token of the signed-in user")

	root.AddCommand(
		newFeedCmd(o),
		newShowCmd(o),
		newReactCmd(o),
		newReactionCmd(o),
		newReactionsCmd(o),
		newInterestsCmd(o),
		newTopicsCmd(o),
		newCommentsCmd(o),
		newCommentCmd(o),
		newVoteCmd(o),
		newWhoamiCmd(o),
	)
	return root
}
