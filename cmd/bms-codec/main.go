// Package main provides the CLI entrypoint for bms-codec.
//
// bms-codec converts CICS BMS screen map sources to and from a structured
// map model:
//   - decode reads fixed-column BMS source into a YAML or JSON project
//   - encode writes canonical BMS source from a project document
//   - validate checks a source or project against the screen rules
//   - fmt rewrites BMS source in canonical layout
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"bms-codec/internal/cli"
)

func main() {
	// Use a minimal logger until the configured one is built.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])

	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	return cli.Run(ctx, args, outW, errW)
}
