package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blockwise/scheduler/coord"
	"github.com/blockwise/scheduler/roi"
)

// parseRoi parses a "offset:shape" flag value such as "0,0:200,200"
// into a roi.Roi. Both halves must have the same component count.
func parseRoi(s string) (roi.Roi, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return roi.Roi{}, fmt.Errorf("invalid roi %q: expected \"offset:shape\"", s)
	}

	offset, err := parseCoord(parts[0])
	if err != nil {
		return roi.Roi{}, fmt.Errorf("invalid roi %q offset: %w", s, err)
	}
	shape, err := parseCoord(parts[1])
	if err != nil {
		return roi.Roi{}, fmt.Errorf("invalid roi %q shape: %w", s, err)
	}

	r, err := roi.New(offset, shape)
	if err != nil {
		return roi.Roi{}, fmt.Errorf("invalid roi %q: %w", s, err)
	}
	return r, nil
}

// parseCoord parses a comma-separated list of signed integers.
func parseCoord(s string) (coord.Coord, error) {
	fields := strings.Split(s, ",")
	vals := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return coord.Coord{}, fmt.Errorf("component %d (%q): %w", i, f, err)
		}
		vals[i] = v
	}
	return coord.New(vals...), nil
}
