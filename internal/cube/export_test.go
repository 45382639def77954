package cube

// Helpers for tests that need states no sequence of face turns can reach.

func (c *Cube) stickered(pos Vec) (int, []Face) {
	for i := range c.pieces {
		if c.pieces[i].position != pos {
			continue
		}
		var slots []Face
		for _, f := range Faces {
			if c.pieces[i].orientation[f] != NoColor {
				slots = append(slots, f)
			}
		}
		return i, slots
	}
	panic("no piece at " + pos.String())
}

// TwistCorner rotates the colours of the corner at pos within its slots.
func (c *Cube) TwistCorner(pos Vec) {
	i, s := c.stickered(pos)
	o := c.pieces[i].orientation
	o[s[0]], o[s[1]], o[s[2]] = o[s[2]], o[s[0]], o[s[1]]
	c.pieces[i] = newPiece(pos, o)
}

// FlipEdge swaps the two colours of the edge at pos.
func (c *Cube) FlipEdge(pos Vec) {
	i, s := c.stickered(pos)
	o := c.pieces[i].orientation
	o[s[0]], o[s[1]] = o[s[1]], o[s[0]]
	c.pieces[i] = newPiece(pos, o)
}

// SwapEdges exchanges two edges that share a side, keeping the colour on
// that side on that side.
func (c *Cube) SwapEdges(a, b Vec) {
	ia, sa := c.stickered(a)
	ib, sb := c.stickered(b)
	shared, otherA, otherB := sa[0], sa[1], sb[1]
	switch {
	case sa[0] == sb[0]:
	case sa[1] == sb[0]:
		shared, otherA = sa[1], sa[0]
	case sa[0] == sb[1]:
		otherB = sb[0]
	default:
		shared, otherA, otherB = sa[1], sa[0], sb[0]
	}
	oa, ob := c.pieces[ia].orientation, c.pieces[ib].orientation
	na, nb := oa, ob
	na[shared], na[otherA] = ob[shared], ob[otherB]
	nb[shared], nb[otherB] = oa[shared], oa[otherA]
	c.pieces[ia] = newPiece(a, na)
	c.pieces[ib] = newPiece(b, nb)
}
