package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/halloy/verbump/internal/cli"
)

func main() {
	// Cancel outstanding git/mvn invocations on SIGINT or SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	os.Exit(cli.Execute(ctx))
}
