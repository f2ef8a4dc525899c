package physics2d

import "math"

// BB is an axis-aligned bounding box.
type BB struct {
	L, B, R, T float64
}

func NewBBForExtents(c Vector, hw, hh float64) BB {
	return BB{
		L: c.X - hw,
		B: c.Y - hh,
		R: c.X + hw,
		T: c.Y + hh,
	}
}

func NewBBForCircle(p Vector, r float64) BB {
	return NewBBForExtents(p, r, r)
}

// NewBBForPoints returns the tightest box around verts. verts must not be empty.
func NewBBForPoints(verts []Vector) BB {
	bb := BB{verts[0].X, verts[0].Y, verts[0].X, verts[0].Y}
	for _, v := range verts[1:] {
		bb = bb.Expand(v)
	}
	return bb
}

func (bb BB) ContainsVect(v Vector) bool {
	return bb.L <= v.X && bb.R >= v.X && bb.B <= v.Y && bb.T >= v.Y
}

func (bb BB) Expand(v Vector) BB {
	return BB{
		math.Min(bb.L, v.X),
		math.Min(bb.B, v.Y),
		math.Max(bb.R, v.X),
		math.Max(bb.T, v.Y),
	}
}
