// Package scene owns a list of bodies and drives a physics2d.Engine over it,
// the way an interactive front end would: bodies are added, picked with the
// mouse, then moved, turned or made heavier with the keyboard.
package scene

import (
	physics "github.com/gdhw/physics2d"
)

// Scene is not safe for concurrent use.
type Scene struct {
	engine   *physics.Engine
	bodies   []*physics.Body
	selected int

	resolverActivity bool
	drawLite         bool
}

func New() *Scene {
	s := &Scene{
		engine:   physics.NewEngine(false),
		selected: -1,
	}
	s.engine.SetRigidBodies(&s.bodies)
	return s
}

// Init turns the resolver on and adds the default arena, an Internal circle
// of radius 100 heavy enough not to be pushed around.
func (s *Scene) Init() {
	s.selected = -1
	s.ToggleResolverActivity()
	s.AddCircle(100, 1e8, physics.Internal)
}

func (s *Scene) Update(dt float64) {
	s.engine.Update(dt)
}

func (s *Scene) Engine() *physics.Engine {
	return s.engine
}

func (s *Scene) Bodies() []*physics.Body {
	return s.bodies
}

func (s *Scene) Collisions() []physics.CollisionInfo {
	return s.engine.CurrentCollisionInfo()
}

// AddBox returns the index of the new body.
func (s *Scene) AddBox(h, w, mass float64, collisionType physics.CollisionType) int {
	s.engine.AddRigidBody(physics.NewBox(h, w, mass, collisionType))
	return len(s.bodies) - 1
}

// AddCircle returns the index of the new body.
func (s *Scene) AddCircle(r, mass float64, collisionType physics.CollisionType) int {
	s.engine.AddRigidBody(physics.NewCircle(r, mass, collisionType))
	return len(s.bodies) - 1
}

// SelectAt selects the first External body under the point. The selection
// is kept when nothing is hit.
func (s *Scene) SelectAt(x, y float64) {
	p := physics.Vector{X: x, Y: y}
	for i, body := range s.bodies {
		if body.IsInternal() || !body.BB().ContainsVect(p) {
			continue
		}
		if physics.ShapeContainsPoint(body, p) {
			s.selected = i
			return
		}
	}
}

// Select selects a body by index, clamped to the bodies present.
func (s *Scene) Select(index int) {
	s.selected = min(len(s.bodies)-1, max(0, index))
}

// Selected returns the selected index, or -1.
func (s *Scene) Selected() int {
	return s.selected
}

func (s *Scene) selectedBody() *physics.Body {
	if s.selected < 0 || s.selected >= len(s.bodies) {
		return nil
	}
	return s.bodies[s.selected]
}

func (s *Scene) ChangeMass(amount float64, relative bool) {
	if body := s.selectedBody(); body != nil {
		body.ChangeMass(amount, relative)
		s.engine.SetChangedRigidBodies(true)
	}
}

func (s *Scene) Rotate(angle float64, relative bool) {
	if body := s.selectedBody(); body != nil {
		body.Rotate(angle, relative)
		s.engine.SetChangedRigidBodies(true)
	}
}

func (s *Scene) Move(x, y float64, relative bool) {
	if body := s.selectedBody(); body != nil {
		body.MoveTo(x, y, relative)
		s.engine.SetChangedRigidBodies(true)
	}
}

// ToggleResolverActivity flips collision resolution and returns the new state.
func (s *Scene) ToggleResolverActivity() bool {
	s.resolverActivity = !s.resolverActivity
	s.engine.SetResolverActivity(s.resolverActivity)
	return s.resolverActivity
}

func (s *Scene) ToggleDrawLite() bool {
	s.drawLite = !s.drawLite
	return s.drawLite
}

func (s *Scene) DrawLite() bool {
	return s.drawLite
}

// Draw hands the bodies and collision points to the drawer. The lite
// outline is used when the scene asks for it, whatever the drawer flags say.
func (s *Scene) Draw(options physics.Drawer) {
	physics.DrawEngine(s.engine, liteDrawer{options, s.drawLite})
}

type liteDrawer struct {
	physics.Drawer
	lite bool
}

func (d liteDrawer) Flags() int {
	if d.lite {
		return d.Drawer.Flags() | physics.DRAW_LITE_VERTICES
	}
	return d.Drawer.Flags() &^ physics.DRAW_LITE_VERTICES
}
