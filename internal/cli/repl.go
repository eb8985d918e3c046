package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordlookup/internal/app"
)

const (
	prompt   = "> "
	replHelp = `Type a word to look it up.
  :pick N            look up history item N again
  :history           list recent searches
  :clear             clear recent searches
  :theme [dark|light|toggle]
  :quit              exit`
)

func newREPLCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive lookup session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			r := &repl{app: a, in: cmd.InOrStdin(), out: cmd.OutOrStdout()}
			return r.run(cmd.Context())
		},
	}
}

// repl reads one command per line until :quit, end of input or ctx is done.
type repl struct {
	app *app.App
	in  io.Reader
	out io.Writer
}

func (r *repl) run(ctx context.Context) error {
	fmt.Fprintf(r.out, "Theme: %s. Type :help for commands.\n", r.app.Theme.Theme())

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		if quit := r.handle(ctx, strings.TrimSpace(scanner.Text())); quit {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// handle executes one line and reports whether the session should end.
func (r *repl) handle(ctx context.Context, line string) bool {
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, ":") {
		r.wait(ctx, r.app.Session.Submit(line))
		return false
	}

	name, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "q", "quit", "exit":
		return true
	case "h", "help":
		fmt.Fprintln(r.out, replHelp)
	case "history":
		RenderHistory(r.out, r.app.Session.History())
	case "clear":
		r.app.Session.ClearHistory(ctx)
		fmt.Fprintln(r.out, "History cleared.")
	case "pick":
		r.pick(ctx, arg)
	case "theme":
		r.theme(ctx, arg)
	default:
		fmt.Fprintf(r.out, "Unknown command :%s. Type :help for commands.\n", name)
	}
	return false
}

func (r *repl) pick(ctx context.Context, arg string) {
	items := r.app.Session.History()
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(items) {
		fmt.Fprintf(r.out, "No history item %q.\n", arg)
		return
	}
	r.wait(ctx, r.app.Session.PickHistoryItem(items[n-1]))
}

func (r *repl) theme(ctx context.Context, arg string) {
	switch strings.ToLower(arg) {
	case "":
	case "toggle":
		r.app.Theme.Toggle(ctx)
	default:
		if _, err := r.app.Theme.Set(ctx, arg); err != nil {
			fmt.Fprintln(r.out, "Theme must be dark or light.")
			return
		}
	}
	fmt.Fprintf(r.out, "Theme: %s\n", r.app.Theme.Theme())
}

func (r *repl) wait(ctx context.Context, done <-chan struct{}) {
	select {
	case <-done:
		RenderState(r.out, r.app.Session.State())
	case <-ctx.Done():
	}
}
