package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordlookup/internal/app"
	"github.com/heartmarshall/wordlookup/internal/domain"
)

// ErrLookupFailed is returned by define when the lookup ends in an error
// state. The message has already been printed.
var ErrLookupFailed = errors.New("lookup failed")

func newDefineCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "define <word...>",
		Short: "Look up a word and print its entries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			query := strings.Join(args, " ")
			if domain.NormalizeWord(query) == "" {
				return errors.New("nothing to look up")
			}

			select {
			case <-a.Session.Submit(query):
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}

			st := a.Session.State()
			RenderState(cmd.OutOrStdout(), st)
			if _, failed := st.(domain.Failure); failed {
				return ErrLookupFailed
			}
			return nil
		},
	}
}

func newHistoryCommand(opts *rootOptions) *cobra.Command {
	var clearAll bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print or clear recent searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if clearAll {
				a.Session.ClearHistory(cmd.Context())
				fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
				return nil
			}
			RenderHistory(cmd.OutOrStdout(), a.Session.History())
			return nil
		},
	}
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Clear the recent-search list")
	return cmd
}

func newThemeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Print or change the display theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			theme, err := changeTheme(cmd, a, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		},
	}
}

func changeTheme(cmd *cobra.Command, a *app.App, args []string) (domain.Theme, error) {
	if len(args) == 0 {
		return a.Theme.Theme(), nil
	}
	if strings.EqualFold(strings.TrimSpace(args[0]), "toggle") {
		return a.Theme.Toggle(cmd.Context()), nil
	}
	return a.Theme.Set(cmd.Context(), args[0])
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Expose the search session over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			return a.ListenAndServe(cmd.Context())
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wordlookup %s\n", app.BuildVersion())
		},
	}
}
