// Package cli implements the wordlookup command line.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordlookup/internal/app"
	"github.com/heartmarshall/wordlookup/internal/config"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand builds the wordlookup command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "wordlookup",
		Short: "Look up English words in the Free Dictionary",
		Long: `wordlookup looks up English words, ranks the entries by how common
their senses are and remembers recent searches.

Commands:
  wordlookup define <word>   One-shot lookup
  wordlookup repl            Interactive session
  wordlookup serve           Expose the session over HTTP`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"Path to the YAML config file (default: $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"Log level: debug, info, warn, error (overrides config)")

	root.AddCommand(
		newDefineCommand(opts),
		newREPLCommand(opts),
		newHistoryCommand(opts),
		newThemeCommand(opts),
		newServeCommand(opts),
		newVersionCommand(),
	)

	return root
}

// Execute runs the command line with ctx and returns the first error.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, nil
}

// openApp loads configuration and wires the application. The caller must
// Close the returned App.
func (o *rootOptions) openApp(ctx context.Context) (*app.App, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	a, err := app.New(ctx, cfg, app.NewLogger(cfg.Log))
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	return a, nil
}
