// SPDX-License-Identifier: MIT
// Package: negcycle/generators
//
package generators

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/negcycle/graph"
)

// FromFile reads a plain-text edge list: one directed edge per line as
// "tail head", 0-indexed, whitespace-separated; lines starting with '#' are
// comments; blank lines are skipped. Node count is inferred as the largest
// id seen plus one.
func FromFile(r io.Reader) (int, []graph.Edge, error) {
	scanner := bufio.NewScanner(r)
	var edges []graph.Edge
	maxID := -1
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, nil, fmt.Errorf("FromFile: line %d %q: %w", lineNo, line, ErrFileFormat)
		}
		tail, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, nil, fmt.Errorf("FromFile: line %d tail %q: %w", lineNo, fields[0], ErrFileFormat)
		}
		head, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, nil, fmt.Errorf("FromFile: line %d head %q: %w", lineNo, fields[1], ErrFileFormat)
		}
		if tail < 0 || head < 0 {
			return 0, nil, fmt.Errorf("FromFile: line %d negative node id: %w", lineNo, ErrFileFormat)
		}
		if tail > maxID {
			maxID = tail
		}
		if head > maxID {
			maxID = head
		}
		edges = append(edges, graph.Edge{Tail: tail, Head: head})
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, fmt.Errorf("FromFile: %w", err)
	}

	return maxID + 1, edges, nil
}
