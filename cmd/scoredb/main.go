// Command scoredb loads prepared musical works and queries their attribute
// stores.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/roach88/scoredb/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	cmd := cli.NewRootCommand()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)

	// Commands report their own failures; anything else is a usage error
	// raised by cobra before a command ran.
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitCommandError
	}
	return cli.GetExitCode(err)
}
