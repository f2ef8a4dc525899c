package physics2d

import (
	"fmt"
)

// MinMass is the lowest mass a body can have.
const MinMass = 1.0

type Body struct {
	id int

	shape Shape

	// position, velocity, force
	p Vector
	v Vector
	f Vector

	// Angle, angular velocity, torque (radians)
	a float64
	w float64
	t float64

	collisionType CollisionType

	UserData interface{}
}

func (b Body) String() string {
	return fmt.Sprint("Body ", b.id)
}

// ID is unique per process and increases with creation order.
func (body *Body) ID() int {
	return body.id
}

var bodyCur int = 0

func newBody(shape Shape, collisionType CollisionType) *Body {
	body := &Body{
		id:            bodyCur,
		shape:         shape,
		collisionType: collisionType,
	}
	bodyCur++
	return body
}

func massFloor(mass float64) float64 {
	if mass < MinMass {
		return MinMass
	}
	return mass
}

func (body *Body) Shape() Shape {
	return body.shape
}

func (body *Body) Class() ShapeClass {
	return body.shape.Class()
}

func (body *Body) CollisionType() CollisionType {
	return body.collisionType
}

func (body *Body) IsInternal() bool {
	return body.collisionType == Internal
}

func (body *Body) Position() Vector {
	return body.p
}

// MoveTo sets the position, or offsets it by (x, y) when relative is true.
func (body *Body) MoveTo(x, y float64, relative bool) {
	if relative {
		body.p = body.p.Add(Vector{x, y})
	} else {
		body.p = Vector{x, y}
	}
}

func (body *Body) Angle() float64 {
	return body.a
}

func (body *Body) Rotate(angle float64, relative bool) {
	if relative {
		body.a += angle
	} else {
		body.a = angle
	}
}

func (body *Body) LinearVelocity() Vector {
	return body.v
}

func (body *Body) SetLinearVelocity(vx, vy float64) {
	body.v = Vector{vx, vy}
}

func (body *Body) Force() Vector {
	return body.f
}

func (body *Body) SetForce(fx, fy float64) {
	body.f = Vector{fx, fy}
}

func (body *Body) AngularVelocity() float64 {
	return body.w
}

func (body *Body) SetAngularVelocity(w float64) {
	body.w = w
}

func (body *Body) Torque() float64 {
	return body.t
}

func (body *Body) SetTorque(t float64) {
	body.t = t
}

func (body *Body) Mass() float64 {
	return body.shape.MassInfo().Mass
}

// ChangeMass sets the mass, or adds amount to it when relative is true.
// The result never drops below MinMass. The moment of inertia is left as is.
func (body *Body) ChangeMass(amount float64, relative bool) {
	info := body.shape.MassInfo()
	if relative {
		info.Mass += amount
	} else {
		info.Mass = amount
	}
	info.Mass = massFloor(info.Mass)
}

func (body *Body) Moment() float64 {
	return body.shape.MassInfo().Moment
}

// AngularMass is the moment of inertia seen through the lever r along the
// direction n. The cross product term cancels out, so it is always the moment.
func (body *Body) AngularMass(r, n Vector) float64 {
	return body.Moment()
}

// Radius returns the circle radius, or 0 for a box.
func (body *Body) Radius() float64 {
	if circle, ok := body.shape.(*CircleShape); ok {
		return circle.Radius
	}
	return 0
}

func (body *Body) Transform() Transform {
	return NewTransformRigid(body.p, body.a)
}

// Vertices returns the world space outline of the body. It is rebuilt on
// every call.
//
// Boxes always return their four corners. Circles return the coarse
// LiteCircleSegments polygon when lite is set. Otherwise they return the
// full closed outline, led by the center point for External circles.
func (body *Body) Vertices(lite bool) []Vector {
	local := body.shape.vertices(lite)
	transform := body.Transform()

	verts := make([]Vector, 0, len(local)+1)
	if !lite && body.Class() == ShapeClassCircle && body.collisionType != Internal {
		verts = append(verts, body.p)
	}
	for _, v := range local {
		verts = append(verts, transform.Point(v))
	}
	return verts
}

// Centroid is the average of the lite outline for a box and the position for a circle.
func (body *Body) Centroid() Vector {
	if body.Class() != ShapeClassBox {
		return body.p
	}

	var centroid Vector
	verts := body.Vertices(true)
	for _, v := range verts {
		centroid = centroid.Add(v)
	}
	return centroid.Mult(1.0 / float64(len(verts)))
}

func (body *Body) BB() BB {
	if body.Class() == ShapeClassCircle {
		return NewBBForCircle(body.p, body.Radius())
	}
	return NewBBForPoints(body.Vertices(true))
}
