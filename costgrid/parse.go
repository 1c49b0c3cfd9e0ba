package costgrid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxLineLen is the longest input line Parse accepts, in bytes.
const MaxLineLen = 1 << 20

// Parse reads a grid in the textual digit format: one row per line, each
// character a single decimal digit '0'..'9' giving the cost of that cell.
// Leading and trailing blank lines are ignored, as is trailing whitespace
// (including '\r') on each line.
// Returns ErrInvalidGrid for empty input, rows of differing lengths,
// blank lines between rows, any non-digit character, or a line longer than
// MaxLineLen.
// Complexity: O(W×H).
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineLen)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), " \t\r"))
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: row %d is longer than %d bytes", ErrInvalidGrid, len(lines), MaxLineLen)
		}
		return nil, fmt.Errorf("costgrid: read input: %w", err)
	}

	// Trim blank lines at both ends.
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: input has no rows", ErrInvalidGrid)
	}

	w := len(lines[0])
	cells := make([]int, 0, w*len(lines))
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, y, len(line), w)
		}
		for x := 0; x < len(line); x++ {
			ch := line[x]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: non-digit %q at (%d,%d)", ErrInvalidGrid, ch, x, y)
			}
			cells = append(cells, int(ch-'0'))
		}
	}

	return &Grid{width: w, height: len(lines), cells: cells}, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}
