package main

import (
	"context"
	"flag"

	"model-viewer/internal/assets"
	"model-viewer/internal/commands"
	"model-viewer/internal/config"
	"model-viewer/internal/console"
	"model-viewer/internal/graphics"
	"model-viewer/internal/logger"
	"model-viewer/internal/scene"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	models := flag.String("models", "", "model directory or http(s) directory index URL")
	fullscreen := flag.Bool("fullscreen", false, "start fullscreen")
	fps := flag.Int("fps", 0, "target frames per second")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	flag.Parse()

	cfg, cfgErr := config.Load(*configPath)
	applyErr := cfg.Apply(config.Overrides{
		Window:  config.WindowConfig{Fullscreen: *fullscreen, FPS: *fps},
		Assets:  config.AssetsConfig{Source: *models},
		Logging: config.LoggingConfig{Level: *logLevel},
	})

	log := logger.New(cfg.Logging.File, logger.ParseLevel(cfg.Logging.Level))
	if cfgErr != nil {
		log.Errorf("%v (using defaults)", cfgErr)
	}
	if applyErr != nil {
		log.Errorf("%v", applyErr)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := assets.NewLoader(assets.Options{
		Source:    cfg.Assets.Source,
		Extension: cfg.Assets.Extension,
		CacheDir:  cfg.Assets.CacheDir,
		Workers:   cfg.Assets.Workers,
		Spacing:   cfg.Layout.Spacing,
	}, log)
	go func() {
		// Listing errors are logged by the loader; the viewer just runs empty.
		_ = loader.Run(ctx)
	}()

	scn := scene.New(cfg, log, loader.Events())
	reg := commands.NewRegistry()
	registerCommands(reg, log, scn, *configPath)
	con := console.New(log, reg)

	fontPending := true
	update := func() {
		if fontPending {
			fontPending = false
			if font, ok := loadFont(cfg.HUD, log); ok {
				scn.HUD().SetFont(font)
				con.SetFont(font)
			}
		}
		con.Update()
		scn.Update(con.IsOpen())
	}
	draw := func() {
		scn.Draw()
		con.Draw()
	}
	shutdown := func() {
		cancel()
		scn.Unload()
	}
	graphics.Run(cfg.Window, update, draw, shutdown)
}
