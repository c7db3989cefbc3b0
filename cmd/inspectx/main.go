// cmd/inspectx/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	// Import pass packages for auto-registration via init()
	_ "inspectx/internal/passes/integer"
	_ "inspectx/internal/passes/ipaddr"
	_ "inspectx/internal/passes/text"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := rootContextWithSignals()
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// rootContextWithSignals creates a root context canceled on SIGINT/SIGTERM.
// The returned cancel function releases the signal handler.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanupCancel := func() {
		signal.Stop(ch)
		baseCancel()
	}

	return base, cleanupCancel
}
