package scene

import (
	"log"
	"os"

	physics "github.com/gdhw/physics2d"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSteps = 1
	DefaultDt    = 1.0 / 60.0
)

// File is the YAML description of a scene.
type File struct {
	Engine EngineDef `yaml:"engine"`
	Steps  int       `yaml:"steps,omitempty"`
	Dt     float64   `yaml:"dt,omitempty"`
	Bodies []BodyDef `yaml:"bodies"`
}

type EngineDef struct {
	Resolve    bool   `yaml:"resolve"`
	MixedPairs string `yaml:"mixed_pairs,omitempty"`
}

// BodyDef describes one body. Width and Height are used by boxes, Radius by circles.
type BodyDef struct {
	Kind      string    `yaml:"kind"`
	Width     float64   `yaml:"width,omitempty"`
	Height    float64   `yaml:"height,omitempty"`
	Radius    float64   `yaml:"radius,omitempty"`
	Mass      float64   `yaml:"mass,omitempty"`
	Collision string    `yaml:"collision,omitempty"`
	Position  []float64 `yaml:"position,omitempty"`
	Angle     float64   `yaml:"angle,omitempty"`
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scene %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", path)
	}
	log.Printf("loaded scene %s: %d bodies", path, len(f.Bodies))
	return f, nil
}

// Parse decodes and validates a scene. Missing steps and dt get their defaults.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decoding yaml")
	}
	if f.Steps == 0 {
		f.Steps = DefaultSteps
	}
	if f.Dt == 0 {
		f.Dt = DefaultDt
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) Validate() error {
	if f.Steps < 0 {
		return errors.Errorf("steps must not be negative, got %d", f.Steps)
	}
	if f.Dt < 0 {
		return errors.Errorf("dt must not be negative, got %v", f.Dt)
	}
	if _, err := parseMixedPairs(f.Engine.MixedPairs); err != nil {
		return err
	}
	for i := range f.Bodies {
		if err := f.Bodies[i].Validate(); err != nil {
			return errors.Wrapf(err, "body %d", i)
		}
	}
	return nil
}

func (b *BodyDef) Validate() error {
	switch b.Kind {
	case "box":
		if b.Width <= 0 || b.Height <= 0 {
			return errors.Errorf("box needs a positive width and height, got %vx%v", b.Width, b.Height)
		}
	case "circle":
		if b.Radius <= 0 {
			return errors.Errorf("circle needs a positive radius, got %v", b.Radius)
		}
	default:
		return errors.Errorf("unknown kind %q (use box or circle)", b.Kind)
	}
	if b.Mass < 0 {
		return errors.Errorf("mass must not be negative, got %v", b.Mass)
	}
	if _, err := parseCollisionType(b.Collision); err != nil {
		return err
	}
	if b.Position != nil && len(b.Position) != 2 {
		return errors.Errorf("position must be [x, y], got %d numbers", len(b.Position))
	}
	return nil
}

// Build creates the scene the file describes. Bodies are added in file order,
// so their indices match.
func (f *File) Build() (*Scene, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	s := New()
	mode, _ := parseMixedPairs(f.Engine.MixedPairs)
	s.engine.SetMixedPairs(mode)
	if f.Engine.Resolve {
		s.ToggleResolverActivity()
	}

	for _, def := range f.Bodies {
		ct, _ := parseCollisionType(def.Collision)
		mass := def.Mass
		if mass == 0 {
			mass = physics.MinMass
		}

		var i int
		switch def.Kind {
		case "box":
			i = s.AddBox(def.Height, def.Width, mass, ct)
		case "circle":
			i = s.AddCircle(def.Radius, mass, ct)
		}

		body := s.bodies[i]
		if len(def.Position) == 2 {
			body.MoveTo(def.Position[0], def.Position[1], false)
		}
		body.Rotate(def.Angle, false)
	}
	return s, nil
}

func parseCollisionType(s string) (physics.CollisionType, error) {
	switch s {
	case "", "external":
		return physics.External, nil
	case "internal":
		return physics.Internal, nil
	}
	return physics.External, errors.Errorf("unknown collision %q (use internal or external)", s)
}

func parseMixedPairs(s string) (physics.MixedPairMode, error) {
	switch s {
	case "", "polygon":
		return physics.MixedPairsAsPolygons, nil
	case "shape":
		return physics.MixedPairsByShape, nil
	}
	return physics.MixedPairsAsPolygons, errors.Errorf("unknown mixed_pairs %q (use polygon or shape)", s)
}
