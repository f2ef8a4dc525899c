package physics2d

import "math"

// Resolver separates colliding bodies by moving and rotating them directly.
// It never reads or writes velocities.
type Resolver struct {
	// Detector measures the pair again after the correction. It should
	// match the one that found the collision.
	Detector Detector
}

// Resolve applies the angular correction and then splits the displacement
// from the penetration point to the contact point between the two bodies,
// so the heavier body moves less.
//
// When turning leaves the pair at least as deep as before, as it does for
// two aligned boxes with a face in contact, the rotation is undone and the
// bodies are only moved.
func (r Resolver) Resolve(info *CollisionInfo) {
	if !info.IsCollided {
		return
	}

	body1, body2 := info.Body1, info.Body2
	p1, a1 := body1.Position(), body1.Angle()
	p2, a2 := body2.Position(), body2.Angle()

	r.ResolveAngular(info)
	r.ResolveLinear(info)

	if r.depth(body1, body2) < info.PenetrationDepth {
		return
	}

	body1.MoveTo(p1.X, p1.Y, false)
	body1.Rotate(a1, false)
	body2.MoveTo(p2.X, p2.Y, false)
	body2.Rotate(a2, false)
	r.ResolveLinear(info)
}

// ResolveLinear moves the bodies apart along the penetration, by the inverse
// of their share of the total mass.
func (Resolver) ResolveLinear(info *CollisionInfo) {
	v := info.ContactPoint.Sub(info.PenetrationPoint)
	ratio := info.Body2.Mass() / (info.Body1.Mass() + info.Body2.Mass())
	info.Body1.MoveTo(-v.X*ratio, -v.Y*ratio, true)
	info.Body2.MoveTo(v.X*(1-ratio), v.Y*(1-ratio), true)
}

func (r Resolver) depth(body1, body2 *Body) float64 {
	info, ok := r.Detector.DetectPair(body1, body2)
	if !ok {
		return 0
	}
	return info.PenetrationDepth
}

// ResolveAll resolves each collision once, in order.
func (r Resolver) ResolveAll(infos []CollisionInfo) {
	for i := range infos {
		r.Resolve(&infos[i])
	}
}

// ResolveAngular turns each body so that, seen from its centroid, the
// penetration point moves towards the contact point. Internal bodies do not rotate.
func (Resolver) ResolveAngular(info *CollisionInfo) {
	c1 := info.Body1.Centroid()
	c2 := info.Body2.Centroid()

	alpha1 := AngleBetween(info.PenetrationPoint.Sub(c1), info.ContactPoint.Sub(c1))
	alpha2 := AngleBetween(info.PenetrationPoint.Sub(c2), info.ContactPoint.Sub(c2))

	if !info.Body1.IsInternal() {
		info.Body1.Rotate(alpha1, true)
	}
	if !info.Body2.IsInternal() {
		info.Body2.Rotate(alpha2, true)
	}
}

// AngleBetween returns the unsigned angle between a and b, negated when b is
// counter-clockwise of a. The cosine is clamped to [0, 1], so the magnitude
// never exceeds π/2.
func AngleBetween(a, b Vector) float64 {
	sign := 1.0
	if a.Cross(b) >= 0 {
		sign = -1.0
	}
	return sign * math.Acos(Clamp01(a.Normalize().Dot(b.Normalize())))
}
