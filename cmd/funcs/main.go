package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/vinceanalytics/funcs/internal/cmd"
	"github.com/vinceanalytics/funcs/internal/logger"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := cmd.App().Run(ctx, os.Args); err != nil {
		logger.Fail("exited with error", "err", err)
	}
}
