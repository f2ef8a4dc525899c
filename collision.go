package physics2d

const (
	// Epsilon is the smallest penetration depth DetectAll reports.
	Epsilon = 1e-5

	// containedDepth replaces the reverse depth of a pair led by an Internal body.
	containedDepth = 1e6

	noPenetration = 1e10
)

// CollisionInfo describes one colliding pair for the current step.
// The penetration point lies on Body2 inside Body1, the contact point on the
// boundary of Body1.
type CollisionInfo struct {
	Body1, Body2 *Body

	PenetrationPoint Vector
	ContactPoint     Vector

	// Edge normal of the colliding edge of Body1 on polygon pairs and the
	// center-to-center direction on circle pairs.
	Normal Vector

	PenetrationDepth float64
	IsCollided       bool
}

// CollisionFunc tests the shape of a against the shape of b.
type CollisionFunc func(a, b *Body) CollisionInfo

var collisionFuncs = [shapeClassNum][shapeClassNum]CollisionFunc{
	ShapeClassBox: {
		ShapeClassBox:    PolyToPoly,
		ShapeClassCircle: PolyToCircle,
	},
	ShapeClassCircle: {
		ShapeClassBox:    CircleToPoly,
		ShapeClassCircle: CircleToCircle,
	},
}

// MixedPairMode selects how DetectAll tests a circle against a box.
type MixedPairMode int

const (
	// MixedPairsAsPolygons tests the lite outline of the circle with PolyToPoly.
	MixedPairsAsPolygons MixedPairMode = iota
	// MixedPairsByShape uses the circle/polygon vertex proximity tests.
	MixedPairsByShape
)

func (m MixedPairMode) String() string {
	if m == MixedPairsByShape {
		return "shape"
	}
	return "polygon"
}

// Detector is the narrow phase. It holds no state between calls.
type Detector struct {
	MixedPairs MixedPairMode
}

// Detect tests a against b using the collision function of their shape classes.
func (Detector) Detect(a, b *Body) CollisionInfo {
	return collisionFuncs[a.Class()][b.Class()](a, b)
}

// DetectAll tests every pair of bodies in both orders and keeps the result
// with the smaller depth. Pairs that do not collide both ways, or whose depth
// is below Epsilon, are dropped.
func (d Detector) DetectAll(bodies []*Body) []CollisionInfo {
	var result []CollisionInfo

	if len(bodies) < 2 {
		return result
	}

	for i, body1 := range bodies {
		for _, body2 := range bodies[i+1:] {
			if info, ok := d.DetectPair(body1, body2); ok {
				result = append(result, info)
			}
		}
	}

	return result
}

// DetectPair is one step of DetectAll: it reports the collision DetectAll
// would keep for body1 and body2, in that list order.
func (d Detector) DetectPair(body1, body2 *Body) (CollisionInfo, bool) {
	info1, info2 := d.detectBothOrders(body1, body2)

	isInternal := body1.IsInternal()
	if !info1.IsCollided || !(isInternal || info2.IsCollided) {
		return CollisionInfo{}, false
	}

	pd1 := info1.PenetrationDepth
	pd2 := info2.PenetrationDepth
	if isInternal {
		pd2 = containedDepth
	}

	if min(pd1, pd2) < Epsilon {
		return CollisionInfo{}, false
	}

	if pd1 < pd2 {
		return info1, true
	}
	return info2, true
}

func (d Detector) detectBothOrders(body1, body2 *Body) (CollisionInfo, CollisionInfo) {
	circles := body1.Class() == ShapeClassCircle && body2.Class() == ShapeClassCircle
	if circles || d.MixedPairs == MixedPairsByShape {
		return d.Detect(body1, body2), d.Detect(body2, body1)
	}
	return PolyToPoly(body1, body2), PolyToPoly(body2, body1)
}

// EdgeNormal rotates the edge by -90 degrees and normalizes it. For a
// counter-clockwise outline and edge b-a this is the outward normal.
func EdgeNormal(edge Vector) Vector {
	return edge.Normalize().ReversePerp()
}

// ProjectToEdge returns the point of segment ab closest to p.
func ProjectToEdge(a, b, p Vector) Vector {
	return p.ClosestPointOnSegment(a, b)
}

// ShapeContainsPoint reports whether p lies inside the body. Boxes are
// tested against their lite outline.
func ShapeContainsPoint(body *Body, p Vector) bool {
	if body.Class() == ShapeClassCircle {
		return p.Distance(body.Centroid()) < body.Radius()
	}

	verts := body.Vertices(true)
	count := len(verts)
	for i := 0; i < count; i++ {
		a := verts[i]
		b := verts[(i+1)%count]

		if p.Sub(a).Dot(EdgeNormal(b.Sub(a))) > 0 {
			return false
		}
	}

	return true
}

// circleFallbackDirection is used when two circle centers coincide.
var circleFallbackDirection = Vector{0, 1}

// CircleToCircle tests two circles, or a circle b leaving an Internal circle a.
func CircleToCircle(a, b *Body) CollisionInfo {
	info := CollisionInfo{Body1: a, Body2: b}

	r1 := a.Radius()
	r2 := b.Radius()

	c1 := a.Position()
	c2 := b.Position()

	diff := c2.Sub(c1)
	dist := diff.Length()
	dir := diff.Normalize()
	if dist == 0 {
		dir = circleFallbackDirection
	}

	if !a.IsInternal() {
		if dist < r1+r2 {
			depth := r1 + r2 - dist
			info.ContactPoint = c2.Sub(dir.Mult(r2 - depth))
			info.PenetrationPoint = c1.Add(dir.Mult(r1 - depth))
			info.Normal = dir
			info.PenetrationDepth = depth
			info.IsCollided = true
		}
	} else if dist > r1-r2 {
		// b is leaving the container a
		depth := dist - (r1 - r2)
		info.ContactPoint = c1.Add(dir.Mult(r1))
		info.PenetrationPoint = c1.Add(dir.Mult(r1 + depth))
		info.Normal = dir
		info.PenetrationDepth = depth
		info.IsCollided = true
	}

	return info
}

// CircleToPoly returns on the first polygon vertex found inside the circle
// a, no search is made for the deepest one.
func CircleToPoly(a, b *Body) CollisionInfo {
	if a.IsInternal() {
		return PolyToPoly(a, b)
	}

	info := CollisionInfo{Body1: a, Body2: b}

	r1 := a.Radius()
	c1 := a.Position()

	for _, v := range b.Vertices(true) {
		diff := v.Sub(c1)
		if diff.Length() < r1 {
			contact := c1.Add(diff.Normalize().Mult(r1))
			info.PenetrationPoint = v
			info.ContactPoint = contact
			info.PenetrationDepth = contact.Distance(v)
			info.IsCollided = true
			return info
		}
	}

	return info
}

// PolyToCircle is CircleToPoly with the roles swapped: the penetration point
// is the point of circle b that reached past the first vertex of a found inside b.
func PolyToCircle(a, b *Body) CollisionInfo {
	if a.IsInternal() {
		return PolyToPoly(a, b)
	}

	info := CollisionInfo{Body1: a, Body2: b}

	r2 := b.Radius()
	c2 := b.Position()

	for _, v := range a.Vertices(true) {
		diff := v.Sub(c2)
		if dist := diff.Length(); dist < r2 {
			info.PenetrationPoint = c2.Add(diff.Normalize().Mult(r2))
			info.ContactPoint = v
			info.PenetrationDepth = r2 - dist
			info.IsCollided = true
			return info
		}
	}

	return info
}

// PolyToPoly tests the vertices of b against every edge of a. Each edge
// keeps its deepest vertex, and the edge with the shallowest of those wins.
// An External edge with no vertex of b behind it separates the shapes.
//
// For an Internal a the normals point inwards, and the pair collides as soon
// as any vertex of b is outside any edge.
func PolyToPoly(a, b *Body) CollisionInfo {
	info := CollisionInfo{Body1: a, Body2: b}

	verts1 := a.Vertices(true)
	verts2 := b.Vertices(true)
	count := len(verts1)

	minPenetration := noPenetration
	isInternal := a.IsInternal()
	isShapeInFrontOfEdge := true

	for i := 0; i < count; i++ {
		v0 := verts1[i]
		v1 := verts1[(i+1)%count]

		n := EdgeNormal(v1.Sub(v0))
		if isInternal {
			n = n.Neg()
		} else {
			isShapeInFrontOfEdge = true
		}

		maxPenetration := 0.0
		edgeInfo := CollisionInfo{Body1: a, Body2: b}

		for _, v := range verts2 {
			if v.Sub(v0).Dot(n) >= 0 {
				continue
			}
			isShapeInFrontOfEdge = false

			p := ProjectToEdge(v0, v1, v)
			if penetration := p.Distance(v); penetration > maxPenetration {
				maxPenetration = penetration
				edgeInfo.PenetrationPoint = v
				edgeInfo.ContactPoint = p
				edgeInfo.Normal = n
				edgeInfo.PenetrationDepth = penetration
				edgeInfo.IsCollided = true
			}
		}

		if isShapeInFrontOfEdge && !isInternal {
			return CollisionInfo{Body1: a, Body2: b}
		}

		if edgeInfo.IsCollided && maxPenetration < minPenetration {
			minPenetration = maxPenetration
			info = edgeInfo
		}
	}

	if isShapeInFrontOfEdge {
		info.IsCollided = false
	}
	return info
}
