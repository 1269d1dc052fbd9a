// Command ggstyle resolves feature styles and renders styled features with gg.
//
// Usage:
//
//	ggstyle resolve --style roads.toml --zoom 12 --prop kind=primary
//	ggstyle render --style roads.toml --features roads.json --zoom 12 -o roads.png
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
