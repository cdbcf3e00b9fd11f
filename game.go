package main

import (
	"log/slog"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/breakout/audio"
	"github.com/milk9111/breakout/ecs"
	"github.com/milk9111/breakout/ecs/component"
	"github.com/milk9111/breakout/ecs/system"
	"github.com/milk9111/breakout/prefabs"
	"github.com/milk9111/breakout/render"
)

type Options struct {
	Level  string
	Debug  bool
	Seed   uint64
	Mute   bool
	Watch  bool
	Menu   bool
	Logger *slog.Logger
}

type Game struct {
	world    *ecs.World
	renderer *render.Renderer
	audio    *audio.Player
	watcher  *prefabs.Watcher
	pause    *pauseMenu
	view     ecs.Snapshot
	log      *slog.Logger

	paused bool
	quit   bool
}

func NewGame(opts Options) (*Game, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}

	worldOpts := []ecs.Option{ecs.WithLogger(log)}
	if opts.Seed != 0 {
		worldOpts = append(worldOpts, ecs.WithSeed(opts.Seed))
	}
	if opts.Menu {
		worldOpts = append(worldOpts, ecs.WithState(component.GameMenu))
	}
	world, err := ecs.NewWorld(spec, worldOpts...)
	if err != nil {
		return nil, err
	}
	if err := system.Install(world); err != nil {
		return nil, err
	}

	if opts.Level != "" {
		idx, err := spec.LevelIndex(opts.Level)
		if err != nil {
			return nil, err
		}
		world.SelectLevel(idx)
	}

	g := &Game{
		world:    world,
		renderer: render.NewRenderer(opts.Debug),
		audio:    audio.NewPlayer(log),
		log:      log,
	}

	if opts.Mute {
		g.audio.SetMuted(true)
	} else if err := g.audio.Init(); err != nil {
		log.Warn("audio disabled", "err", err)
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"), "levels")
		if err != nil {
			log.Warn("hot reload disabled", "err", err)
		} else {
			g.watcher = w
		}
	}

	g.pause = newPauseMenu(g)
	world.Snapshot(&g.view)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pause.update(g)
		return nil
	}

	g.reload()

	dt := 1.0 / float64(ebiten.TPS())
	g.world.Step(dt, readInput())
	g.audio.Play(g.world.Events().Drain())
	g.world.Snapshot(&g.view)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, &g.view)
	if g.paused {
		g.pause.ui.Draw(screen)
	}
}

// restartLevel rebuilds the current level and puts the player back at the
// start.
func (g *Game) restartLevel() {
	g.world.ResetLevel()
	g.world.ResetPlayer()
	g.world.Snapshot(&g.view)
	g.paused = false
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}

// Size is the playfield size in pixels.
func (g *Game) Size() (int, int) {
	return int(g.world.Width()), int(g.world.Height())
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.audio.Close()
}

// reload applies every file change the watcher has seen since last frame.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}

	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("watcher error", "err", err)
		}
	default:
	}

	for {
		name, ok := g.watcher.Poll()
		if !ok {
			return
		}

		switch prefabs.Classify(name) {
		case prefabs.FileSpec:
			if filepath.Base(name) != prefabs.GameSpecFile {
				continue
			}
			spec, err := prefabs.LoadGameSpec()
			if err != nil {
				g.log.Warn("reload spec", "err", err)
				continue
			}
			if err := g.world.ApplySpec(spec); err != nil {
				g.log.Warn("apply spec", "err", err)
			}
		case prefabs.FileScript:
			g.world.InvalidateScripts()
			g.log.Info("scripts invalidated", "file", name)
		case prefabs.FileLevel:
			if err := g.world.ReloadLevel(filepath.Base(name)); err != nil {
				g.log.Warn("reload level", "err", err)
			}
		}
	}
}

func readInput() component.Input {
	const stickDeadzone = 0.2

	var in component.Input
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	launch := ebiten.IsKeyPressed(ebiten.KeySpace)
	confirm := ebiten.IsKeyPressed(ebiten.KeyEnter)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
			left = left || x < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
			right = right || x > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
			launch = launch || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
			confirm = confirm || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonCenterRight)
			up = up || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop)
			down = down || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom)
		}
	}

	in.Set(component.KeyLeft, left)
	in.Set(component.KeyRight, right)
	in.Set(component.KeyLaunch, launch)
	in.Set(component.KeyConfirm, confirm)
	in.Set(component.KeyMenuUp, up)
	in.Set(component.KeyMenuDown, down)
	return in
}
