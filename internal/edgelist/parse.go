// SPDX-License-Identifier: MIT
// Package: blossom/internal/edgelist
//
// parse.go — reading and writing undirected edge lists.
//
// Accepted line forms (leading/trailing blanks ignored):
//
//	# comment | c comment     skipped, as are empty lines
//	p edge N M                DIMACS problem line: vertices 1..N (M informative)
//	e U V                     DIMACS edge
//	U V                       plain edge
//
// Without a problem line the vertex count is the largest ID seen. Either
// way the count is capped at MaxVertices. Repeated edges (in either
// direction) are kept once; loops are rejected.

// Package edgelist converts between text edge lists and core.Graph.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/blossom/core"
)

// MaxVertices bounds the vertex count a single input may declare or imply.
const MaxVertices = 1 << 24

var (
	// ErrSyntax indicates a line that matches no accepted form.
	ErrSyntax = errors.New("edgelist: syntax error")

	// ErrVertexRange indicates a vertex ID below 1 or above the declared count.
	ErrVertexRange = errors.New("edgelist: vertex out of range")
)

// Parse reads an edge list from r and returns the graph it describes.
// Errors are prefixed with the 1-based line number.
func Parse(r io.Reader) (*core.Graph, error) {
	var (
		edges    []core.Edge
		lines    []int
		declared = -1
		maxID    int
	)

	sc := bufio.NewScanner(r)
	for ln := 1; sc.Scan(); ln++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] == "c" || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "p":
			if declared >= 0 || len(edges) > 0 {
				return nil, fmt.Errorf("line %d: problem line must come first and once: %w", ln, ErrSyntax)
			}
			if len(fields) != 4 || fields[1] != "edge" {
				return nil, fmt.Errorf("line %d: want \"p edge N M\": %w", ln, ErrSyntax)
			}
			n, err := atoi(fields[2], ln)
			if err != nil {
				return nil, err
			}
			if _, err = atoi(fields[3], ln); err != nil {
				return nil, err
			}
			if n < 0 {
				return nil, fmt.Errorf("line %d: negative vertex count %d: %w", ln, n, ErrSyntax)
			}
			if n > MaxVertices {
				return nil, fmt.Errorf("line %d: vertex count %d exceeds %d: %w", ln, n, MaxVertices, ErrVertexRange)
			}
			declared = n
			continue
		case "e":
			fields = fields[1:]
		}

		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want two vertex IDs, got %d fields: %w", ln, len(fields), ErrSyntax)
		}
		u, err := atoi(fields[0], ln)
		if err != nil {
			return nil, err
		}
		v, err := atoi(fields[1], ln)
		if err != nil {
			return nil, err
		}
		for _, id := range [2]int{u, v} {
			if id < 1 || id > MaxVertices || (declared >= 0 && id > declared) {
				return nil, fmt.Errorf("line %d: vertex %d: %w", ln, id, ErrVertexRange)
			}
		}
		if u == v {
			return nil, fmt.Errorf("line %d: loop on %d: %w", ln, u, core.ErrLoopNotAllowed)
		}
		maxID = max(maxID, u, v)
		edges = append(edges, core.Edge{U: u, V: v})
		lines = append(lines, ln)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	n := maxID
	if declared >= 0 {
		n = declared
	}
	g := core.NewGraph(n)
	for i, e := range edges {
		if g.HasEdge(e.U, e.V) {
			continue
		}
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, fmt.Errorf("line %d: %w", lines[i], err)
		}
	}

	return g, nil
}

// Write emits g in DIMACS form: one problem line, then one "e U V" line
// per edge with U < V in ascending order.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p edge %d %d\n", g.VertexCount(), g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "e %d %d\n", e.U, e.V)
	}

	return bw.Flush()
}

func atoi(s string, ln int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("line %d: %q is not an integer: %w", ln, s, ErrSyntax)
	}

	return v, nil
}
