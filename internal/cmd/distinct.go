package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/apache/arrow/go/v15/arrow/compute"
	"github.com/apache/arrow/go/v15/arrow/memory"
	"github.com/urfave/cli/v3"
	"github.com/vinceanalytics/funcs"
	"github.com/vinceanalytics/funcs/distinct"
	"github.com/vinceanalytics/funcs/internal/logger"
)

func distinctCmd() *cli.Command {
	return &cli.Command{
		Name:      "distinct",
		Usage:     "Emits each row's distinct elements, first occurrence order, nulls dropped",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "elem",
				Usage:   "element type, one of auto, i64, f64, str, bool",
				Sources: cli.EnvVars("FUNCS_ELEM"),
				Value:   "auto",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level, one of debug, info, warn, error",
				Sources: cli.EnvVars("FUNCS_LOG_LEVEL"),
				Value:   "info",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := logger.Setup(c.String("log-level")); err != nil {
				return err
			}
			ctx = logger.With(ctx, slog.Default().With("cmd", "distinct"))
			in := os.Stdin
			if name := c.Args().First(); name != "" {
				f, err := os.Open(name)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			mem := memory.NewGoAllocator()
			col, err := readColumn(mem, in, c.String("elem"))
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			defer col.Release()
			start := time.Now()
			out, err := funcs.Call(compute.WithAllocator(ctx, mem), distinct.Name, col)
			if err != nil {
				return err
			}
			defer out.Release()
			logger.Get(ctx).Debug("computed distinct elements",
				"rows", col.Len(),
				"elapsed", time.Since(start),
			)
			return writeColumn(os.Stdout, out)
		},
	}
}
