package physics2d

//Draw flags
const (
	DRAW_SHAPES           = 1 << 0
	DRAW_COLLISION_POINTS = 1 << 1
	// Draw circles with their lite outline.
	DRAW_LITE_VERTICES = 1 << 2
)

// 16 bytes
type FColor struct {
	R, G, B, A float32
}

// Drawer receives the geometry of an engine. Implementations do the actual rendering.
type Drawer interface {
	DrawPolygon(verts []Vector, outline FColor, data interface{})
	DrawSegment(a, b Vector, fill FColor, data interface{})
	DrawDot(size float64, pos Vector, fill FColor, data interface{})

	Flags() int
	BodyColor(body *Body, data interface{}) FColor
	CollisionPointColor() FColor
	Data() interface{}
}

func DrawBody(body *Body, options Drawer) {
	data := options.Data()
	lite := options.Flags()&DRAW_LITE_VERTICES != 0
	options.DrawPolygon(body.Vertices(lite), options.BodyColor(body, data), data)
}

// DrawEngine draws the bodies of the engine, then one segment from the
// penetration point to the contact point of every current collision.
func DrawEngine(engine *Engine, options Drawer) {
	if options.Flags()&DRAW_SHAPES != 0 {
		for _, body := range engine.RigidBodies() {
			DrawBody(body, options)
		}
	}

	if options.Flags()&DRAW_COLLISION_POINTS != 0 {
		data := options.Data()
		color := options.CollisionPointColor()

		for _, info := range engine.currentCollisionInfo {
			options.DrawSegment(info.PenetrationPoint, info.ContactPoint, color, data)
			options.DrawDot(2, info.ContactPoint, color, data)
		}
	}
}
