package physics2d

import "math"

// LiteCircleSegments is the number of points in the coarse outline of a circle.
const LiteCircleSegments = 10

type CircleShape struct {
	ShapeMassInfo

	Radius float64
}

// NewCircleShape uses m*r² for the moment of inertia, not the m*r²/2 of a solid disc.
func NewCircleShape(r, mass float64) *CircleShape {
	return &CircleShape{
		ShapeMassInfo: ShapeMassInfo{
			Mass:   mass,
			Moment: MomentForCircle(mass, r),
		},
		Radius: r,
	}
}

func MomentForCircle(m, r float64) float64 {
	return m * r * r
}

func (*CircleShape) Class() ShapeClass {
	return ShapeClassCircle
}

// Segments returns how many segments outline the circle. The lite outline
// is always LiteCircleSegments; the full one grows with the radius.
func (circle *CircleShape) Segments(lite bool) int {
	if lite {
		return LiteCircleSegments
	}
	return max(LiteCircleSegments, int(10*circle.Radius))
}

// vertices returns an open loop of points for the lite outline and a closed
// one (first point repeated) for the full outline.
func (circle *CircleShape) vertices(lite bool) []Vector {
	segs := circle.Segments(lite)
	count := segs
	if !lite {
		count++
	}

	verts := make([]Vector, 0, count)
	for i := 0; i < count; i++ {
		theta := 2.0 * math.Pi * float64(i) / float64(segs)
		verts = append(verts, ForAngle(theta).Mult(circle.Radius))
	}
	return verts
}

// NewCircle returns a body with a circle shape of radius r.
func NewCircle(r, mass float64, collisionType CollisionType) *Body {
	return newBody(NewCircleShape(r, massFloor(mass)), collisionType)
}
