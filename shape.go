package physics2d

// Shape class
type ShapeClass int

const (
	ShapeClassBox ShapeClass = iota
	ShapeClassCircle
	shapeClassNum
)

func (c ShapeClass) String() string {
	switch c {
	case ShapeClassBox:
		return "box"
	case ShapeClassCircle:
		return "circle"
	}
	return "unknown"
}

// CollisionType tells the detector how a body takes part in a collision.
// External bodies collide when they overlap. An Internal body is a containing
// boundary: its contents collide with it when they try to leave.
type CollisionType int

const (
	External CollisionType = iota
	Internal
)

func (t CollisionType) String() string {
	if t == Internal {
		return "internal"
	}
	return "external"
}

type ShapeMassInfo struct {
	Mass   float64
	Moment float64
}

// Shape is the mass descriptor and local geometry of a body.
// The only implementations are *BoxShape and *CircleShape.
type Shape interface {
	Class() ShapeClass
	MassInfo() *ShapeMassInfo

	// vertices returns the local outline. For boxes it is shared and must not be modified.
	vertices(lite bool) []Vector
}

func (info *ShapeMassInfo) MassInfo() *ShapeMassInfo {
	return info
}
