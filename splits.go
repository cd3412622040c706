package tachyon

import "github.com/zeebo/mon"

var splitsThunk mon.Thunk

// CountSplits reports how many split events a beam entering at the start
// column encounters while descending the grid. the top row is the header
// and is never scored.
func CountSplits(g *Grid) uint64 {
	timer := splitsThunk.Start()
	defer timer.Stop(nil)

	if g.Height() <= 1 {
		return 0
	}

	masks := splitMasks(g)

	cur := newBitset(g.width)
	next := newBitset(g.width)
	hit := newBitset(g.width)
	tmp := newBitset(g.width)
	cur.set(g.start)

	total := uint64(0)
	for row := 1; row < g.Height(); row++ {
		total += uint64(stepBeams(cur, masks[row], next, hit, tmp))
		cur, next = next, cur
	}
	return total
}

// splitMasks builds one bitset per row marking its splitter columns.
func splitMasks(g *Grid) []*bitset {
	masks := make([]*bitset, g.Height())
	for r, row := range g.rows {
		m := newBitset(g.width)
		for c, sym := range row {
			if sym == Splitter {
				m.set(c)
			}
		}
		masks[r] = m
	}
	return masks
}

// stepBeams advances the beam set one row. beams on empty cells continue
// straight at the same column; beams on splitters are replaced by their two
// diagonal children, dropping any child that would leave the grid. a beam
// never continues straight through a splitter. returns the number of
// splitters hit.
func stepBeams(cur, mask, next, hit, tmp *bitset) int {
	hit.and(cur, mask)
	next.andNot(cur, mask)
	tmp.shiftLeftOne(hit)
	next.or(tmp)
	tmp.shiftRightOne(hit)
	next.or(tmp)
	return hit.count()
}
