package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"model-viewer/internal/config"
)

var background = rl.NewColor(17, 17, 17, 255)

// Run opens the window described by cfg and runs the main loop. Each frame it calls update
// (input and simulation), then clears the screen and calls draw. shutdown runs once, while the
// GL context still exists, after the window is asked to close.
// The window is resizable; raylib keeps the projection in step with the framebuffer.
// ESC toggles the console, so it does not quit; close via the window button.
func Run(cfg config.WindowConfig, update, draw, shutdown func()) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	defer rl.CloseWindow()
	if cfg.Fullscreen {
		monitor := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(monitor), rl.GetMonitorHeight(monitor))
		rl.ToggleFullscreen()
	}

	rl.SetExitKey(rl.KeyNull)
	fps := cfg.FPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(int32(fps))

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		draw()
		rl.EndDrawing()
	}
	if shutdown != nil {
		shutdown()
	}
}
