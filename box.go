package physics2d

type BoxShape struct {
	ShapeMassInfo

	Width, Height float64

	// Corners in local space, counter-clockwise from bottom-left.
	verts [4]Vector
}

// NewBoxShape takes the height first. The moment of inertia is the one of a
// rectangular plate, m*(w²+h²)/12.
func NewBoxShape(h, w, mass float64) *BoxShape {
	hw := w / 2.0
	hh := h / 2.0
	return &BoxShape{
		ShapeMassInfo: ShapeMassInfo{
			Mass:   mass,
			Moment: MomentForBox(mass, w, h),
		},
		Width:  w,
		Height: h,
		verts: [4]Vector{
			{-hw, -hh},
			{hw, -hh},
			{hw, hh},
			{-hw, hh},
		},
	}
}

func MomentForBox(m, width, height float64) float64 {
	return m * (width*width + height*height) / 12.0
}

func (*BoxShape) Class() ShapeClass {
	return ShapeClassBox
}

// Vertices returns a copy of the local corners.
func (box *BoxShape) Vertices() []Vector {
	verts := make([]Vector, len(box.verts))
	copy(verts, box.verts[:])
	return verts
}

func (box *BoxShape) vertices(bool) []Vector {
	return box.verts[:]
}

// NewBox returns a body with a box shape of height h and width w.
func NewBox(h, w, mass float64, collisionType CollisionType) *Body {
	return newBody(NewBoxShape(h, w, massFloor(mass)), collisionType)
}
