package physics2d

import (
	"slices"
)

// Stats counts the work done by an Engine since it was created.
type Stats struct {
	// Calls to Update.
	Updates uint
	// Updates that returned without testing any pair.
	IdleUpdates uint
	// Detection passes over the body list.
	Passes uint
	// Body pairs handed to the detector.
	PairTests uint
	// Collisions reported, summed over all passes.
	Collisions uint
}

// Engine runs detection, and optionally resolution, over a body list owned
// by the caller. The list is only borrowed: the engine keeps a pointer to it
// and never frees or copies the bodies.
type Engine struct {
	detector Detector
	resolver Resolver

	bodies *[]*Body
	// owned backs bodies when no list was lent with SetRigidBodies.
	owned []*Body

	currentCollisionInfo []CollisionInfo

	resolveCollision     bool
	isChangedRigidBodies bool

	stats Stats
}

func NewEngine(resolveCollision bool) *Engine {
	return &Engine{
		resolveCollision: resolveCollision,
	}
}

// AddRigidBody appends body to the current list.
func (engine *Engine) AddRigidBody(body *Body) {
	if engine.bodies == nil {
		engine.bodies = &engine.owned
	}
	*engine.bodies = append(*engine.bodies, body)
	engine.isChangedRigidBodies = true
}

// SetRigidBodies lends the body list to the engine, replacing any previous one.
func (engine *Engine) SetRigidBodies(bodies *[]*Body) {
	engine.bodies = bodies
	engine.isChangedRigidBodies = true
}

// RigidBodies returns the current list. The slice belongs to the caller that lent it.
func (engine *Engine) RigidBodies() []*Body {
	if engine.bodies == nil {
		return nil
	}
	return *engine.bodies
}

// SetChangedRigidBodies marks the bodies as moved or reshaped since the last
// Update. Callers that mutate bodies directly must set it.
func (engine *Engine) SetChangedRigidBodies(changed bool) {
	engine.isChangedRigidBodies = changed
}

func (engine *Engine) ChangedRigidBodies() bool {
	return engine.isChangedRigidBodies
}

func (engine *Engine) SetResolverActivity(resolveCollision bool) {
	engine.resolveCollision = resolveCollision
}

func (engine *Engine) ResolverActivity() bool {
	return engine.resolveCollision
}

func (engine *Engine) SetMixedPairs(mode MixedPairMode) {
	engine.detector.MixedPairs = mode
	engine.resolver.Detector = engine.detector
}

func (engine *Engine) MixedPairs() MixedPairMode {
	return engine.detector.MixedPairs
}

// Update detects all collisions and resolves them when resolution is on.
// Nothing is done when no body changed and the last pass found no collision.
// dt is not used yet, there is no integration step.
func (engine *Engine) Update(dt float64) {
	engine.stats.Updates++

	if !engine.isChangedRigidBodies && len(engine.currentCollisionInfo) == 0 {
		engine.stats.IdleUpdates++
		return
	}
	engine.isChangedRigidBodies = false

	bodies := engine.RigidBodies()
	n := uint(len(bodies))
	engine.stats.Passes++
	if n > 1 {
		engine.stats.PairTests += n * (n - 1) / 2
	}

	engine.currentCollisionInfo = engine.detector.DetectAll(bodies)
	engine.stats.Collisions += uint(len(engine.currentCollisionInfo))

	if engine.resolveCollision {
		engine.resolver.ResolveAll(engine.currentCollisionInfo)
	}
}

// CurrentCollisionInfo returns a copy of the collisions found by the last pass.
func (engine *Engine) CurrentCollisionInfo() []CollisionInfo {
	return slices.Clone(engine.currentCollisionInfo)
}

func (engine *Engine) Stats() Stats {
	return engine.stats
}
