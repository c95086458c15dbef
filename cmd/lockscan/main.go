// Package main is the entry point for lockscan.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockscan/cmd/lockscan/commands"
	"go.trai.ch/lockscan/internal/app"
	"go.trai.ch/lockscan/internal/core/domain"
	_ "go.trai.ch/lockscan/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, provider ComponentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// The logger is part of the components, so write directly.
		_, _ = fmt.Fprintf(stderr, "Error: %s\n  Code: %s\n", err, domain.KindOf(err))
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrAffectedPackagesFound) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
