// Command tty plays breakout in a terminal.
package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/breakout/audio"
	"github.com/milk9111/breakout/ecs"
	"github.com/milk9111/breakout/ecs/component"
	"github.com/milk9111/breakout/ecs/system"
	"github.com/milk9111/breakout/prefabs"
)

const (
	frameTime = 16 * time.Millisecond
	maxStep   = 0.05
	holdTime  = 150 * time.Millisecond
)

func main() {
	levelName := flag.String("level", "", "level to start on (file name from the level list, .lvl optional)")
	seed := flag.Uint64("seed", 0, "random seed for power-up drops and particles (0 picks one from the clock)")
	mute := flag.Bool("mute", false, "disable sound")
	logFile := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	world, err := newWorld(*levelName, *seed, logger)
	if err != nil {
		log.Fatal(err)
	}

	player := audio.NewPlayer(logger)
	if *mute {
		player.SetMuted(true)
	} else if err := player.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.HideCursor()

	run(screen, world, player)
}

func newWorld(levelName string, seed uint64, logger *slog.Logger) (*ecs.World, error) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}

	opts := []ecs.Option{ecs.WithLogger(logger), ecs.WithState(component.GameMenu)}
	if seed != 0 {
		opts = append(opts, ecs.WithSeed(seed))
	}
	world, err := ecs.NewWorld(spec, opts...)
	if err != nil {
		return nil, err
	}
	if err := system.Install(world); err != nil {
		return nil, err
	}

	if levelName != "" {
		idx, err := spec.LevelIndex(levelName)
		if err != nil {
			return nil, err
		}
		world.SelectLevel(idx)
	}
	return world, nil
}

func run(screen tcell.Screen, world *ecs.World, player *audio.Player) {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	keys := newHoldKeys(holdTime)
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	var view ecs.Snapshot
	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return
				}
				if k, ok := keyFor(ev); ok {
					keys.press(k, time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), maxStep)
			last = now
			world.Step(dt, keys.snapshot(now))
			player.Play(world.Events().Drain())
			world.Snapshot(&view)
			drawView(screen, &view)
			screen.Show()
		}
	}
}
