package tachyon

import (
	"bytes"
	"strings"

	"github.com/zeebo/errs"
	"github.com/zeebo/mon"
)

// grid symbols. splitter and start are the only ones that matter; any
// other byte behaves like an empty cell.
const (
	Empty    = '.'
	Splitter = '^'
	Start    = 'S'
)

// error classes returned by Parse.
var (
	ErrEmptyInput   = errs.Class("empty input")
	ErrRaggedGrid   = errs.Class("ragged grid")
	ErrMissingStart = errs.Class("missing start")
)

// Grid is a validated rectangular grid. it is immutable after Parse and
// may be read by both engines concurrently without synchronization.
type Grid struct {
	rows  [][]byte
	width int
	start int
}

// Parse turns raw grid text into a Grid. blank lines are dropped, the
// first remaining line fixes the width, every later line must match it,
// and the first line must carry the start symbol.
func Parse(text string) (_ *Grid, err error) {
	defer mon.Start().Stop(&err)

	var rows [][]byte
	width := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if rows == nil {
			width = len(line)
		} else if len(line) != width {
			return nil, ErrRaggedGrid.New("row %d has length %d, expected %d",
				len(rows), len(line), width)
		}
		rows = append(rows, []byte(line))
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput.New("no non-blank lines")
	}

	start := bytes.IndexByte(rows[0], Start)
	if start < 0 {
		return nil, ErrMissingStart.New("no %q in the top row", Start)
	}

	return &Grid{rows: rows, width: width, start: start}, nil
}

func (g *Grid) Height() int { return len(g.rows) }
func (g *Grid) Width() int  { return g.width }

// Start returns the column of the start symbol in the top row.
func (g *Grid) Start() int { return g.start }
