package hud

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"model-viewer/internal/ui"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

var statusColor = rl.NewColor(200, 200, 200, 255)

// HUD draws the 2D overlay: styled UI boxes, the FPS and memory counters (top-right) and a
// status line (bottom-left). Counters are off by default.
type HUD struct {
	ShowFPS      bool
	ShowMemAlloc bool
	// Status is drawn at the bottom-left when non-empty.
	Status string

	font        rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount  uint32
	lastFpsText string
	lastMemText string
	memStats    runtime.MemStats
}

// New returns a HUD with counters hidden.
func New() *HUD {
	return &HUD{}
}

func (h *HUD) SetShowFPS(show bool)      { h.ShowFPS = show }
func (h *HUD) SetShowMemAlloc(show bool) { h.ShowMemAlloc = show }

// SetFont sets the font used for all overlay text. Zero texture ID = use raylib default.
func (h *HUD) SetFont(font rl.Font) {
	h.font = font
}

// DrawBoxes draws laid-out UI boxes: background, 1px border, then text.
func (h *HUD) DrawBoxes(boxes []ui.Box) {
	for _, b := range boxes {
		r := b.Node.Bounds
		x, y, w, ht := int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height)
		if b.Style.Background.A > 0 && w > 0 && ht > 0 {
			rl.DrawRectangle(x, y, w, ht, b.Style.Background)
		}
		if b.Style.HasBorder && w > 0 && ht > 0 {
			rl.DrawRectangleLines(x, y, w, ht, b.Style.Border)
		}
		if b.Node.Text != "" {
			h.text(b.Node.Text, x+b.Style.Padding, y+b.Style.Padding, b.Style.FontSize, b.Style.Color)
		}
	}
}

// Draw renders the counters and the status line. Call last in the draw loop.
// Counter text is only recomputed every updateInterval frames to limit allocations.
func (h *HUD) Draw() {
	h.frameCount++
	update := h.frameCount%updateInterval == 0
	if h.ShowFPS && h.lastFpsText == "" {
		update = true
	}
	if h.ShowMemAlloc && h.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	if h.ShowFPS {
		if update {
			h.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		h.rightAligned(h.lastFpsText, screenW, y)
		y += lineHeight
	}
	if h.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&h.memStats)
			h.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(h.memStats.Alloc)/(1024*1024))
		}
		h.rightAligned(h.lastMemText, screenW, y)
	}
	if h.Status != "" {
		h.text(h.Status, padding, int32(rl.GetScreenHeight())-lineHeight-padding, fontSize, statusColor)
	}
}

func (h *HUD) rightAligned(text string, screenW, y int32) {
	if text == "" {
		return
	}
	var w int32
	if h.font.Texture.ID != 0 {
		w = int32(rl.MeasureTextEx(h.font, text, fontSize, 1).X)
	} else {
		w = rl.MeasureText(text, fontSize)
	}
	h.text(text, screenW-w-padding, y, fontSize, rl.Green)
}

func (h *HUD) text(text string, x, y, size int32, c rl.Color) {
	if h.font.Texture.ID != 0 {
		rl.DrawTextEx(h.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, c)
		return
	}
	rl.DrawText(text, x, y, size, c)
}
