package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/poimap/common"
	"github.com/milk9111/poimap/config"
)

func main() {
	configPath := flag.String("config", "", "viewer yaml config (defaults are embedded)")
	serverURL := flag.String("server", "", "map server base URL, overrides the config")
	single := flag.Bool("single", false, "the map URL serves a bare map export instead of a bundle")
	debug := flag.Bool("debug", false, "enable debug mode")
	flag.Parse()

	cfg, err := config.LoadViewer(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *single {
		cfg.Mode = config.ModeSingle
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle(cfg.Title)

	game := NewGame(cfg, *debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
