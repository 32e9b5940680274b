package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mahjong/config"
)

func main() {
	cfgPath := flag.String("config", "", "yaml config file, defaults are embedded")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	debug := flag.Bool("debug", false, "enable debug overlay")
	watch := flag.Bool("watch", false, "reload the config file when it changes")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game, err := NewGame(*cfgPath, cfg, *debug, *watch)
	if err != nil {
		log.Fatalf("game: %v", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
