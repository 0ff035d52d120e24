package main

import (
	"errors"
	"fmt"
	"strings"

	"model-viewer/internal/commands"
	"model-viewer/internal/config"
	"model-viewer/internal/logger"
	"model-viewer/internal/physics"
	"model-viewer/internal/scene"
)

// registerCommands adds the console commands. save stores the current HUD toggles and movement
// mode in the file at configPath.
func registerCommands(reg *commands.Registry, log *logger.Logger, scn *scene.Scene, configPath string) {
	world := scn.World()

	modeFS := commands.NewFlagSet("mode")
	reg.Register("mode", "[scanner|racer|toggle]", modeFS, func() error {
		switch arg := strings.Join(modeFS.Args(), " "); arg {
		case "":
		case "toggle":
			world.ToggleMode()
		default:
			m, ok := physics.ParseMode(arg)
			if !ok {
				return fmt.Errorf("mode: unknown mode %q", arg)
			}
			world.SetMode(m)
		}
		log.Log(world.Mode().Label())
		return nil
	})

	registerToggle(reg, "fps", scn.HUD().SetShowFPS)
	registerToggle(reg, "memalloc", scn.HUD().SetShowMemAlloc)

	reg.Register("reset", "", nil, func() error {
		world.ResetCamera()
		log.Log("Camera reset")
		return nil
	})

	reg.Register("models", "", nil, func() error {
		names := scn.Models()
		log.Log(fmt.Sprintf("%d model(s) loaded", len(names)))
		for _, name := range names {
			log.Log("  " + name)
		}
		return nil
	})

	reg.Register("save", "", nil, func() error {
		hud := config.HUDConfig{ShowFPS: scn.HUD().ShowFPS, ShowMemAlloc: scn.HUD().ShowMemAlloc}
		if err := config.SavePrefs(configPath, hud, world.Mode()); err != nil {
			return err
		}
		log.Log("Saved " + configPath)
		return nil
	})

	reg.Register("help", "", nil, func() error {
		for _, line := range reg.Usage() {
			log.Log(line)
		}
		return nil
	})
}

// registerToggle adds a "name --show|--hide" command calling set.
func registerToggle(reg *commands.Registry, name string, set func(bool)) {
	fs := commands.NewFlagSet(name)
	show := fs.Bool("show", false, "show the overlay")
	hide := fs.Bool("hide", false, "hide the overlay")
	reg.Register(name, "--show|--hide", fs, func() error {
		if *show == *hide {
			return errors.New(name + ": use exactly one of --show or --hide")
		}
		set(*show)
		return nil
	})
}
