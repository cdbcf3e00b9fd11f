package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	levelName := flag.String("level", "", "level to start on (file name from the level list, .lvl optional)")
	debug := flag.Bool("debug", false, "enable debug overlay and logging")
	seed := flag.Uint64("seed", 0, "random seed for power-up drops and particles (0 picks one from the clock)")
	mute := flag.Bool("mute", false, "disable sound")
	watch := flag.Bool("watch", false, "reload prefabs/ and levels/ from disk when they change")
	menu := flag.Bool("menu", false, "start at the level select menu")
	flag.Parse()

	lvl := slog.LevelInfo
	if *debug {
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	game, err := NewGame(Options{
		Level:  *levelName,
		Debug:  *debug,
		Seed:   *seed,
		Mute:   *mute,
		Watch:  *watch,
		Menu:   *menu,
		Logger: logger,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	w, h := game.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("breakout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
