package prefabs

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/breakout/ecs/component"
	"gopkg.in/yaml.v3"
)

const GameSpecFile = "breakout.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec is every tunable of the simulation.
type GameSpec struct {
	Name         string        `yaml:"name"`
	Screen       ScreenSpec    `yaml:"screen"`
	Paddle       PaddleSpec    `yaml:"paddle"`
	Ball         BallSpec      `yaml:"ball"`
	ShakeSeconds float64       `yaml:"shake_seconds"`
	PowerUps     PowerUpsSpec  `yaml:"powerups"`
	Particles    ParticlesSpec `yaml:"particles"`
	Levels       []string      `yaml:"levels"`
	SpawnScript  string        `yaml:"spawn_script"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameSpecFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", GameSpecFile, err)
	}
	return &spec, nil
}

// ParseGameSpec decodes and validates a spec from raw yaml.
func ParseGameSpec(data []byte) (*GameSpec, error) {
	var spec GameSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal game spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

type ScreenSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PaddleSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

func (p PaddleSpec) Size() cp.Vector {
	return cp.Vector{X: p.Width, Y: p.Height}
}

type BallSpec struct {
	Radius   float64    `yaml:"radius"`
	Velocity VectorSpec `yaml:"velocity"`
	// Strength scales how hard the paddle edge deflects the ball sideways.
	Strength float64 `yaml:"strength"`
}

type PowerUpsSpec struct {
	Width            float64       `yaml:"width"`
	Height           float64       `yaml:"height"`
	Velocity         VectorSpec    `yaml:"velocity"`
	SpeedMultiplier  float64       `yaml:"speed_multiplier"`
	SizeIncrease     float64       `yaml:"size_increase"`
	StickyColor      YAMLColor     `yaml:"sticky_color"`
	PassThroughColor YAMLColor     `yaml:"pass_through_color"`
	Types            []PowerUpSpec `yaml:"types"`
}

func (p PowerUpsSpec) Size() cp.Vector {
	return cp.Vector{X: p.Width, Y: p.Height}
}

// Lookup returns the entry for t.
func (p PowerUpsSpec) Lookup(t component.PowerUpType) (PowerUpSpec, bool) {
	for _, s := range p.Types {
		if s.Type == t.String() {
			return s, true
		}
	}
	return PowerUpSpec{}, false
}

type PowerUpSpec struct {
	Type string `yaml:"type"`
	// Chance is N in a 1-in-N spawn roll per destroyed brick.
	Chance   int       `yaml:"chance"`
	Duration float64   `yaml:"duration"`
	Color    YAMLColor `yaml:"color"`
}

type ParticlesSpec struct {
	Amount  int `yaml:"amount"`
	PerTick int `yaml:"per_tick"`
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VectorSpec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// Validate rejects specs the simulation cannot run with.
func (s *GameSpec) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil spec", ErrInvalidSpec)
	}
	switch {
	case s.Screen.Width <= 0 || s.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %vx%v", ErrInvalidSpec, s.Screen.Width, s.Screen.Height)
	case s.Paddle.Width <= 0 || s.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle size %vx%v", ErrInvalidSpec, s.Paddle.Width, s.Paddle.Height)
	case s.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius %v", ErrInvalidSpec, s.Ball.Radius)
	case s.Ball.Strength <= 0:
		return fmt.Errorf("%w: ball strength %v", ErrInvalidSpec, s.Ball.Strength)
	case s.ShakeSeconds <= 0:
		return fmt.Errorf("%w: shake seconds %v", ErrInvalidSpec, s.ShakeSeconds)
	case s.PowerUps.Width < 0 || s.PowerUps.Height < 0:
		return fmt.Errorf("%w: power-up size %vx%v", ErrInvalidSpec, s.PowerUps.Width, s.PowerUps.Height)
	case s.PowerUps.SpeedMultiplier <= 0:
		return fmt.Errorf("%w: speed multiplier %v", ErrInvalidSpec, s.PowerUps.SpeedMultiplier)
	case s.PowerUps.SizeIncrease < 0:
		return fmt.Errorf("%w: size increase %v", ErrInvalidSpec, s.PowerUps.SizeIncrease)
	case s.Particles.Amount < 0 || s.Particles.PerTick < 0:
		return fmt.Errorf("%w: particle counts", ErrInvalidSpec)
	case len(s.Levels) == 0:
		return fmt.Errorf("%w: no levels", ErrInvalidSpec)
	}

	seen := make(map[string]bool, len(s.PowerUps.Types))
	for _, p := range s.PowerUps.Types {
		if _, err := component.ParsePowerUpType(p.Type); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
		}
		if seen[p.Type] {
			return fmt.Errorf("%w: duplicate power-up %q", ErrInvalidSpec, p.Type)
		}
		seen[p.Type] = true
		if p.Chance <= 0 {
			return fmt.Errorf("%w: power-up %q chance %d", ErrInvalidSpec, p.Type, p.Chance)
		}
		if p.Duration < 0 {
			return fmt.Errorf("%w: power-up %q duration %v", ErrInvalidSpec, p.Type, p.Duration)
		}
	}
	return nil
}

// LevelIndex finds a level by file name. The directory and the .lvl
// extension are optional.
func (s *GameSpec) LevelIndex(name string) (int, error) {
	want := strings.TrimSuffix(path.Base(filepath.ToSlash(name)), ".lvl")
	for i, l := range s.Levels {
		if strings.TrimSuffix(l, ".lvl") == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("prefabs: level %q not in %v", name, s.Levels)
}

// YAMLColor accepts either a hex string ("#ff80ff") or a sequence of three
// unit floats ([1.0, 0.5, 1.0]).
type YAMLColor struct {
	component.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var rgb []float64
		if err := value.Decode(&rgb); err != nil {
			return fmt.Errorf("color: %w", err)
		}
		if len(rgb) != 3 {
			return fmt.Errorf("color must have 3 components, got %d", len(rgb))
		}
		c.Color = component.Color{R: rgb[0], G: rgb[1], B: rgb[2]}
		return nil
	case yaml.ScalarNode:
	default:
		return fmt.Errorf("color must be a string or a list")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (float64, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return float64(v) / 255, err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	c.Color = component.Color{R: r, G: g, B: b}
	return nil
}
