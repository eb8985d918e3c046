// Command wordlookup looks up English words in the Free Dictionary API.
//
// Usage:
//
//	wordlookup define <word>
//	wordlookup repl
//	wordlookup serve
//
// Exit codes: 0 = success, 1 = error (including a failed lookup).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/wordlookup/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, cli.ErrLookupFailed) && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "wordlookup:", err)
		}
		stop()
		os.Exit(1)
	}
}
