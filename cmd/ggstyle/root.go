package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggstyle"
)

// newLogger creates a charm logger writing to w at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the command logger, or log.Default.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "ggstyle",
		Short:        "Resolve and render declarative feature styles",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			l := newLogger(os.Stderr, level)
			if verbose {
				// charm's Logger is a slog.Handler; library debug records go through it.
				ggstyle.SetLogger(slog.New(l))
			}
			cmd.SetContext(withLogger(cmd.Context(), l))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newResolveCmd())
	root.AddCommand(newRenderCmd())
	return root
}

// compileStyle loads and compiles a style file.
func compileStyle(ctx context.Context, path string) (ggstyle.StyleFunc, error) {
	desc, err := ggstyle.LoadFile(path)
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debug("loaded style", "path", path, "properties", len(desc))
	return ggstyle.Compile(desc)
}
