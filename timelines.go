package tachyon

import (
	"math/big"

	"github.com/zeebo/mon"
)

var timelinesThunk mon.Thunk

// CountTimelines reports the number of distinct paths from the start to the
// bottom row. paths never merge even when they land on the same cell, so
// the count grows exponentially with splitter depth and is returned as a
// big.Int. a grid with only the header row has exactly one timeline.
func CountTimelines(g *Grid) *big.Int {
	timer := timelinesThunk.Start()
	defer timer.Stop(nil)

	total := new(big.Int)
	if g.Height() <= 1 {
		return total.SetUint64(1)
	}

	cur := make([]big.Int, g.width)
	next := make([]big.Int, g.width)
	cur[g.start].SetUint64(1)
	l, r := g.start, g.start

	for row := 1; row < g.Height(); row++ {
		var alive bool
		l, r, alive = stepCounts(g.rows[row], cur, next, l, r)
		if !alive {
			// every timeline fell off the grid.
			return total
		}
		cur, next = next, cur
	}

	for c := l; c <= r; c++ {
		total.Add(total, &cur[c])
	}
	return total
}

// stepCounts advances the per-column timeline counts one row. the active
// window [l, r] bounds the non-zero columns of cur, and only the window's
// one-column expansion is ever touched in next, so the work per row is
// proportional to the occupied breadth rather than the grid width. the
// returned window is trimmed so both endpoints hold non-zero counts; alive
// is false when no count survived the row.
func stepCounts(row []byte, cur, next []big.Int, l, r int) (nl, nr int, alive bool) {
	w := len(cur)

	// activity can expand by at most one column per side per row.
	nl, nr = l-1, r+1
	if nl < 0 {
		nl = 0
	}
	if nr > w-1 {
		nr = w - 1
	}

	for c := nl; c <= nr; c++ {
		next[c].SetUint64(0)
	}

	for c := l; c <= r; c++ {
		if cur[c].Sign() == 0 {
			continue
		}
		if row[c] == Splitter {
			// children straddling the boundary vanish.
			if c > 0 {
				next[c-1].Add(&next[c-1], &cur[c])
			}
			if c < w-1 {
				next[c+1].Add(&next[c+1], &cur[c])
			}
		} else {
			next[c].Add(&next[c], &cur[c])
		}
	}

	for nl <= nr && next[nl].Sign() == 0 {
		nl++
	}
	if nl > nr {
		return 0, 0, false
	}
	for next[nr].Sign() == 0 {
		nr--
	}
	return nl, nr, true
}
