package cmd

import (
	"github.com/urfave/cli/v3"
	"github.com/vinceanalytics/funcs/version"
)

func App() *cli.Command {
	return &cli.Command{
		Name:    "funcs",
		Usage:   "Runs columnar function kernels over newline delimited JSON",
		Version: version.Build(),
		Commands: []*cli.Command{
			distinctCmd(),
		},
	}
}
