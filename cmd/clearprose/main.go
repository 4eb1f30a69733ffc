package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/clearprose/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := cli.Execute(ctx, os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, cli.ErrFindings):
		stop()
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "clearprose: %v\n", err)
		stop()
		os.Exit(2)
	}
}
