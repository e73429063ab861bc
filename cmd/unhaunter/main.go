package main

import (
	"flag"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/JoanGoAl/unhaunter/config"
	"github.com/JoanGoAl/unhaunter/game"
	"github.com/JoanGoAl/unhaunter/logger"
	"github.com/JoanGoAl/unhaunter/maploader"
)

func main() {
	levelFile := flag.String("level", "data/maps/house1.json", "Level file to load")
	configFile := flag.String("config", "data/config.json", "Gameplay config file")
	flag.Parse()

	logger.Init()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}

	logger.Log.WithField("level", *levelFile).Info("Loading level")
	gameMap, err := maploader.LoadMap(*levelFile)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load map")
	}

	logger.Log.WithField("name", gameMap.Data.Name).
		WithField("size", fmt.Sprintf("%dx%d", gameMap.Data.Width, gameMap.Data.Height)).
		Info("Map loaded")

	g, err := game.New(gameMap, cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to initialize scene")
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(fmt.Sprintf("Unhaunter [%s] - WASD to move, E to interact", gameMap.Data.Name))

	if err := ebiten.RunGame(g); err != nil {
		logger.Log.WithError(err).Fatal("Game loop exited")
	}
}
