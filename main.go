package main

import (
	"context"
	"fmt"
	"os"

	"jerry/domain/app"
	"jerry/domain/session"
	"jerry/infrastructure/logging"
	"jerry/presentation/cli"
	"jerry/presentation/runners/client"

	"github.com/rs/zerolog"
)

const logDir = "log"

func main() {
	if err := cli.Execute(context.Background(), run); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.Name, err)
		os.Exit(1)
	}
}

// run writes the log to daily files, and to the console too unless the
// state view owns the terminal.
func run(ctx context.Context, params session.Params) error {
	logger, closer, err := logging.New(app.Name, logging.Options{
		Dir:     logDir,
		Console: params.DisplayMode == session.DisplayLogging,
		Level:   zerolog.InfoLevel,
	})
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer func() {
		_ = closer.Close()
	}()

	return client.NewRunner(client.NewDependencies(params, logger), logger).Run(ctx)
}
