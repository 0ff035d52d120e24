package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"model-viewer/internal/config"
	"model-viewer/internal/fonts"
	"model-viewer/internal/logger"
)

// loadFont loads the configured overlay font. It needs the GL context, so call it from the frame loop.
// ok is false when no font is configured or it could not be loaded; the built-in font is used then.
func loadFont(cfg config.HUDConfig, log *logger.Logger) (font rl.Font, ok bool) {
	if cfg.Font == "" {
		return rl.Font{}, false
	}
	path, err := fonts.Find(fonts.DefaultDirs(), cfg.Font)
	if err != nil {
		log.Warnf("Font %q: %v", cfg.Font, err)
		return rl.Font{}, false
	}
	font = rl.LoadFontEx(path, int32(cfg.FontSize), nil)
	if font.Texture.ID == 0 {
		log.Warnf("Font %s could not be loaded", path)
		return rl.Font{}, false
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	log.Infof("Using font %s", path)
	return font, true
}
