// SPDX-License-Identifier: MIT
// Package: blossom/cmd/blossom/cmd
//
// app.go — the urfave/cli application and the shared logger setup.

// Package cmd holds the blossom CLI commands.
package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// NewApp returns the blossom CLI application.
func NewApp() *cli.App {
	return &cli.App{
		Name:  "blossom",
		Usage: "Maximum-cardinality matching for general graphs",
		Description: `Computes maximum-cardinality matchings of undirected graphs with
Gabow's labeling form of Edmonds' blossom algorithm.

Input is a plain edge list ("u v" per line) or DIMACS ("p edge N M",
"e u v"); vertices are numbered from 1.

Workflow:
  1. Run 'blossom generate' to emit a test graph (or bring your own)
  2. Run 'blossom match' to compute and print a maximum matching`,
		Commands: []*cli.Command{
			MatchCommand(),
			GenerateCommand(),
		},
	}
}

func logLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level: panic, fatal, error, warn, info, debug, trace",
		EnvVars: []string{"BLOSSOM_LOG_LEVEL"},
		Value:   "info",
	}
}

// newLogger builds a text logger writing to out at the level named by the
// --log-level flag.
func newLogger(c *cli.Context, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.String("log-level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return logger, nil
}
