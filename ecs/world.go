package ecs

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/breakout/ecs/component"
	"github.com/milk9111/breakout/ecs/entity"
	"github.com/milk9111/breakout/level"
	"github.com/milk9111/breakout/prefabs"
)

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// Rand is the uniform random source used for spawn rolls and particles.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type Option func(*World)

// WithRand replaces the default time-seeded PCG source.
func WithRand(r Rand) Option {
	return func(w *World) {
		if r != nil {
			w.rng = r
		}
	}
}

// WithSeed seeds the default PCG source.
func WithSeed(seed uint64) Option {
	return func(w *World) {
		w.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithState sets the state the world starts in. The default is GameActive.
func WithState(s component.GameState) Option {
	return func(w *World) {
		w.state = s
	}
}

// World owns every entity of one game and the order systems run in. The
// paddle and ball are singletons; bricks, power-ups and particles are
// entities whose components live in per-kind sparse sets. Input systems
// run on every step; simulation systems only while the game is active.
type World struct {
	spec *prefabs.GameSpec
	log  *slog.Logger
	rng  Rand

	events EventQueue
	input  Scheduler
	sim    Scheduler

	state   component.GameState
	dt      float64
	elapsed float64
	keys    component.Input
	prev    component.Input

	entities entityStore
	stores   map[component.ComponentID]*SparseSet

	levels  []*level.Level
	current int

	paddle       entity.Entity
	ball         entity.Entity
	particles    []Entity
	lastParticle int
	effects      component.ScreenEffects

	scriptVersion int
}

// NewWorld loads every level named by spec and places the paddle and ball.
func NewWorld(spec *prefabs.GameSpec, opts ...Option) (*World, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("ecs: new world: %w", err)
	}

	w := &World{
		spec:   spec,
		log:    slog.Default(),
		state:  component.GameActive,
		stores: make(map[component.ComponentID]*SparseSet),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		WithSeed(uint64(time.Now().UnixNano()))(w)
	}

	if err := w.loadLevels(); err != nil {
		return nil, err
	}

	w.paddle = entity.NewPaddle(spec.Paddle.Size(), w.Width(), w.Height())
	w.ball = entity.NewBall(w.paddle.BallRestPosition(spec.Ball.Radius), spec.Ball.Radius, spec.Ball.Velocity.Vector())
	w.resizeParticles(spec.Particles.Amount)

	return w, nil
}

func (w *World) loadLevels() error {
	levels := make([]*level.Level, 0, len(w.spec.Levels))
	for _, name := range w.spec.Levels {
		l, err := level.Load(name, w.Width(), w.Height()/2)
		if err != nil {
			return fmt.Errorf("ecs: %w", err)
		}
		levels = append(levels, l)
	}
	w.levels = levels
	if w.current >= len(w.levels) {
		w.current = 0
	}
	w.spawnBricks()
	return nil
}

// storage returns the set holding component id, creating it if asked.
func (w *World) storage(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	s := w.stores[id]
	if s == nil && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity drops every component of e and frees its slot.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// EntityCount is the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.count
}

// AddInputSystem appends a system that runs on every step regardless of
// state.
func (w *World) AddInputSystem(s System) {
	if w == nil {
		return
	}
	w.input.Add(s)
}

// AddSystem appends a simulation system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.sim.Add(s)
}

// Step clears last frame's events, then processes input and advances the
// simulation by dt seconds.
func (w *World) Step(dt float64, in component.Input) {
	if w == nil {
		return
	}
	w.events.flush()
	w.ProcessInput(dt, in)
	w.Update(dt)
}

// ProcessInput records the key snapshot for this frame and runs the input
// systems.
func (w *World) ProcessInput(dt float64, in component.Input) {
	if w == nil {
		return
	}
	w.prev = w.keys
	w.keys = in
	w.dt = dt
	w.input.Update(w)
}

// Update runs the simulation systems once if the game is active.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.dt = dt
	w.elapsed += dt
	if w.state != component.GameActive {
		return
	}
	w.sim.Update(w)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) Spec() *prefabs.GameSpec { return w.spec }
func (w *World) Logger() *slog.Logger    { return w.log }
func (w *World) Rand() Rand              { return w.rng }

// DeltaTime is the length of the current step in seconds.
func (w *World) DeltaTime() float64 { return w.dt }

// Elapsed is the simulated time since the world was created.
func (w *World) Elapsed() float64 { return w.elapsed }

func (w *World) Width() float64  { return w.spec.Screen.Width }
func (w *World) Height() float64 { return w.spec.Screen.Height }

func (w *World) State() component.GameState { return w.state }

func (w *World) SetState(s component.GameState) {
	if w.state != s {
		w.log.Debug("game state changed", "from", w.state, "to", s)
	}
	w.state = s
}

// Keys is the key snapshot of the current frame; PrevKeys that of the frame
// before.
func (w *World) Keys() component.Input     { return w.keys }
func (w *World) PrevKeys() component.Input { return w.prev }

func (w *World) Paddle() *entity.Entity { return &w.paddle }
func (w *World) Ball() *entity.Entity   { return &w.ball }

func (w *World) Effects() *component.ScreenEffects { return &w.effects }

// Level returns the level being played.
func (w *World) Level() *level.Level {
	if len(w.levels) == 0 {
		return nil
	}
	return w.levels[w.current]
}

func (w *World) LevelIndex() int { return w.current }
func (w *World) LevelCount() int { return len(w.levels) }

// SelectLevel switches to level i, wrapping around at both ends.
func (w *World) SelectLevel(i int) {
	n := len(w.levels)
	if n == 0 {
		return
	}
	w.current = ((i % n) + n) % n
	w.spawnBricks()
}

// spawnBricks replaces every brick entity with one fresh entity per brick
// of the current level, in row-major order.
func (w *World) spawnBricks() {
	for _, e := range Entities(w, component.BrickComponent.Kind()) {
		w.DestroyEntity(e)
	}
	l := w.Level()
	if l == nil {
		return
	}
	for i := range l.Bricks {
		b := &l.Bricks[i]
		e := w.CreateEntity()
		_ = Add(w, e, component.BodyComponent.Kind(), component.Body{Position: b.Position, Size: b.Size, Color: b.Color})
		_ = Add(w, e, component.BrickComponent.Kind(), component.Brick{Solid: b.Solid})
	}
}

// Bricks lists the brick entities of the current level in row-major order.
func (w *World) Bricks() []Entity {
	return Entities(w, component.BrickComponent.Kind())
}

// BricksRemaining counts destructible bricks still standing.
func (w *World) BricksRemaining() int {
	n := 0
	ForEach(w, component.BrickComponent.Kind(), func(_ Entity, b *component.Brick) {
		if b.Standing() {
			n++
		}
	})
	return n
}

// LevelCompleted reports whether every destructible brick is gone.
func (w *World) LevelCompleted() bool {
	return w.Level() != nil && w.BricksRemaining() == 0
}

// SpawnPowerUp adds a falling pickup with its box at pos.
func (w *World) SpawnPowerUp(t component.PowerUpType, color component.Color, duration float64, pos, size, velocity cp.Vector) Entity {
	e := w.CreateEntity()
	_ = Add(w, e, component.BodyComponent.Kind(), component.Body{Position: pos, Size: size, Color: color})
	_ = Add(w, e, component.VelocityComponent.Kind(), component.Velocity{Value: velocity})
	_ = Add(w, e, component.PowerUpComponent.Kind(), component.PowerUp{Type: t, Duration: duration})
	return e
}

// PowerUps lists the live power-up entities in spawn order.
func (w *World) PowerUps() []Entity {
	return Entities(w, component.PowerUpComponent.Kind())
}

// SweepPowerUps destroys every power-up that is destroyed and no longer
// active. Survivors keep their spawn order.
func (w *World) SweepPowerUps() {
	ForEach(w, component.PowerUpComponent.Kind(), func(e Entity, p *component.PowerUp) {
		if p.Expired() {
			w.DestroyEntity(e)
		}
	})
}

// PowerUpActive reports whether any live power-up of type t is activated.
func (w *World) PowerUpActive(t component.PowerUpType) bool {
	active := false
	ForEach(w, component.PowerUpComponent.Kind(), func(_ Entity, p *component.PowerUp) {
		if p.Activated && p.Type == t {
			active = true
		}
	})
	return active
}

func (w *World) resizeParticles(n int) {
	for _, e := range w.particles {
		w.DestroyEntity(e)
	}
	w.particles = make([]Entity, n)
	for i := range w.particles {
		e := w.CreateEntity()
		_ = Add(w, e, component.BodyComponent.Kind(), component.Body{})
		_ = Add(w, e, component.VelocityComponent.Kind(), component.Velocity{})
		_ = Add(w, e, component.ParticleComponent.Kind(), component.Particle{})
		w.particles[i] = e
	}
	w.lastParticle = 0
}

// Particles returns the particle pool. Its length is fixed by the spec.
func (w *World) Particles() []Entity { return w.particles }

func (w *World) particleAlive(i int) bool {
	p, ok := Get(w, w.particles[i], component.ParticleComponent.Kind())
	return ok && p.Alive()
}

// FirstUnusedParticle finds a dead particle slot, searching onward from the
// last slot handed out. When every particle is alive it recycles slot 0.
func (w *World) FirstUnusedParticle() int {
	for i := w.lastParticle; i < len(w.particles); i++ {
		if !w.particleAlive(i) {
			w.lastParticle = i
			return i
		}
	}
	for i := 0; i < w.lastParticle && i < len(w.particles); i++ {
		if !w.particleAlive(i) {
			w.lastParticle = i
			return i
		}
	}
	w.lastParticle = 0
	return 0
}

// ResetLevel respawns every brick of the current level.
func (w *World) ResetLevel() {
	w.spawnBricks()
	if l := w.Level(); l != nil {
		w.log.Debug("level reset", "level", l.Name, "bricks", len(l.Bricks))
	}
}

// ResetPlayer puts the paddle and ball back at their starting positions and
// clears every effect granted by power-ups.
func (w *World) ResetPlayer() {
	w.paddle.ResetPaddle(w.spec.Paddle.Size(), w.Width(), w.Height())
	r := w.spec.Ball.Radius
	w.ball.Ball.Radius = r
	w.ball.Size = cp.Vector{X: r * 2, Y: r * 2}
	w.ball.ResetBall(w.paddle.BallRestPosition(w.spec.Ball.Radius), w.spec.Ball.Velocity.Vector())
	w.effects.Confuse = false
	w.effects.Chaos = false
}

// ApplySpec swaps in a new tuning spec. Levels are reloaded if their list
// changed; the ball radius takes effect on the next reset.
func (w *World) ApplySpec(spec *prefabs.GameSpec) error {
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("ecs: apply spec: %w", err)
	}
	old := w.spec
	w.spec = spec
	if old.Screen != spec.Screen || !slices.Equal(old.Levels, spec.Levels) {
		if err := w.loadLevels(); err != nil {
			w.spec = old
			return err
		}
	}
	if len(w.particles) != spec.Particles.Amount {
		w.resizeParticles(spec.Particles.Amount)
	}
	w.scriptVersion++
	w.log.Info("game spec applied", "name", spec.Name)
	return nil
}

// ReloadLevel re-reads the named level file if it is part of the spec.
func (w *World) ReloadLevel(name string) error {
	for i, l := range w.levels {
		if l.Name != name {
			continue
		}
		fresh, err := level.Load(name, w.Width(), w.Height()/2)
		if err != nil {
			return fmt.Errorf("ecs: reload: %w", err)
		}
		w.levels[i] = fresh
		if i == w.current {
			w.spawnBricks()
		}
		w.log.Info("level reloaded", "level", name)
		return nil
	}
	return fmt.Errorf("ecs: reload: level %q not loaded", name)
}

// InvalidateScripts forces scripted systems to recompile on next use.
func (w *World) InvalidateScripts() { w.scriptVersion++ }

// ScriptVersion changes whenever scripts must be recompiled.
func (w *World) ScriptVersion() int { return w.scriptVersion }

// BallRestPosition is where a stuck ball sits for the current paddle.
func (w *World) BallRestPosition() cp.Vector {
	return w.paddle.BallRestPosition(w.ball.Ball.Radius)
}
