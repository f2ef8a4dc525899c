package physics2d

import "github.com/go-gl/mathgl/mgl64"

// Transform is a 2D affine transform stored as a homogeneous 3x3 matrix.
type Transform struct {
	m mgl64.Mat3
}

func NewTransformTranslate(translate Vector) Transform {
	return Transform{mgl64.Translate2D(translate.X, translate.Y)}
}

func NewTransformRotate(radians float64) Transform {
	return Transform{mgl64.HomogRotate2D(radians)}
}

// NewTransformRigid rotates about the origin first, then translates.
func NewTransformRigid(translate Vector, radians float64) Transform {
	return NewTransformTranslate(translate).Mult(NewTransformRotate(radians))
}

func (t Transform) Mult(t2 Transform) Transform {
	return Transform{t.m.Mul3(t2.m)}
}

func (t Transform) Point(p Vector) Vector {
	v := t.m.Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	return Vector{v[0], v[1]}
}
