// SPDX-License-Identifier: MIT
// Package: blossom/cmd/blossom/cmd
//
// match.go — `blossom match`: read a graph, compute and report a matching.

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/blossom/core"
	"github.com/katalvlaran/blossom/internal/edgelist"
	"github.com/katalvlaran/blossom/matching"
)

// MatchReport is the JSON form of a matching result.
type MatchReport struct {
	Vertices int      `json:"vertices"`
	Edges    int      `json:"edges"`
	Size     int      `json:"size"`
	Pairs    [][2]int `json:"pairs"`
}

// MatchCommand returns the match CLI command.
func MatchCommand() *cli.Command {
	return &cli.Command{
		Name:  "match",
		Usage: "Compute a maximum-cardinality matching of an edge list",
		Description: `Reads an edge list, computes a maximum-cardinality matching and
prints its size followed by one matched pair per line.

Connected input is required unless --components is given, in which case
every connected component is matched separately.

Example:
  blossom generate --kind petersen | blossom match --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Edge list file; '-' or empty reads stdin",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:  "components",
				Usage: "Match each connected component separately",
			},
			&cli.IntFlag{
				Name:  "jobs",
				Usage: "Components matched concurrently with --components",
				Value: 1,
			},
			logLevelFlag(),
		},
		Action: runMatch,
	}
}

func runMatch(c *cli.Context) error {
	format := c.String("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (must be text or json)", format)
	}

	logger, err := newLogger(c, c.App.ErrWriter)
	if err != nil {
		return err
	}

	g, err := readGraph(c)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
	}).Info("graph loaded")

	opts := []matching.Option{
		matching.WithOnPhase(func(root int) {
			logger.WithField("root", root).Debug("phase opened")
		}),
		matching.WithOnBlossom(func(x, y, join int) {
			logger.WithFields(logrus.Fields{"x": x, "y": y, "join": join}).Debug("blossom labeled")
		}),
		matching.WithOnAugment(func(root, x, y int) {
			logger.WithFields(logrus.Fields{"root": root, "x": x, "y": y}).Debug("augmenting path")
		}),
		matching.WithParallelism(c.Int("jobs")),
	}

	var m *matching.Matching
	if c.Bool("components") {
		m, err = matching.MaxCardinalityForest(g, opts...)
	} else {
		m, err = matching.MaxCardinality(g, opts...)
	}
	if errors.Is(err, matching.ErrDisconnectedGraph) {
		return fmt.Errorf("%w (rerun with --components)", err)
	}
	if err != nil {
		return fmt.Errorf("failed to compute matching: %w", err)
	}
	if err = matching.Verify(g, m); err != nil {
		return fmt.Errorf("matching failed verification: %w", err)
	}
	logger.WithField("size", m.Size()).Info("matching computed")

	if format == "json" {
		return writeJSON(c.App.Writer, g, m)
	}

	return writeText(c.App.Writer, m)
}

func readGraph(c *cli.Context) (*core.Graph, error) {
	path := c.String("input")
	if path == "" || path == "-" {
		return edgelist.Parse(c.App.Reader)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	g, err := edgelist.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

func writeText(w io.Writer, m *matching.Matching) error {
	if _, err := fmt.Fprintf(w, "size %d\n", m.Size()); err != nil {
		return err
	}
	for _, p := range m.Pairs() {
		if _, err := fmt.Fprintf(w, "%d %d\n", p.U, p.V); err != nil {
			return err
		}
	}

	return nil
}

func writeJSON(w io.Writer, g *core.Graph, m *matching.Matching) error {
	report := MatchReport{
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
		Size:     m.Size(),
		Pairs:    make([][2]int, 0, m.Size()),
	}
	for _, p := range m.Pairs() {
		report.Pairs = append(report.Pairs, [2]int{p.U, p.V})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(report)
}
