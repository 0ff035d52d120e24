package console

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"model-viewer/internal/commands"
	"model-viewer/internal/logger"
)

const (
	BarHeight = 40
	// When windowed, move bar up by this many pixels so it stays visible (avoids being cut off by taskbar/window bounds).
	WindowedBarOffset = 56
	prompt            = "> "
	fontSize          = 20
	padding           = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineLen       = 200
)

var (
	barColor     = rl.NewColor(40, 40, 40, 255)
	lineColor    = rl.NewColor(80, 80, 80, 255)
	historyColor = rl.NewColor(24, 24, 24, 240)
)

// Console is the command bar at the bottom of the screen. It is shown/hidden with ESC.
// While open it captures the keyboard, so the caller must not feed movement keys to the world.
// Every submitted line is echoed to the log and executed through the command registry;
// errors are logged too, so they show up in the history above the bar.
type Console struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	font     rl.Font
}

// New returns a closed console that logs lines and runs them through reg.
func New(log *logger.Logger, reg *commands.Registry) *Console {
	return &Console{log: log, reg: reg}
}

// IsOpen returns true when the console is visible and capturing input.
func (c *Console) IsOpen() bool {
	return c.open
}

// SetFont sets the font used to draw the console. Zero texture ID = use raylib default.
func (c *Console) SetFont(font rl.Font) {
	c.font = font
}

// Update handles ESC (toggle open/closed), and when open: typing, paste, backspace, enter. Call once per frame.
func (c *Console) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		c.open = !c.open
		c.inputBuf = ""
	}
	if !c.open {
		return
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		c.inputBuf += rl.GetClipboardText()
	} else {
		for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
			c.inputBuf += string(rune(r))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(c.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(c.inputBuf)
		c.inputBuf = c.inputBuf[:len(c.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && c.inputBuf != "" {
		line := c.inputBuf
		c.inputBuf = ""
		c.log.Log(prompt + line)
		if err := c.reg.ExecuteLine(line); err != nil {
			c.log.Errorf("%v", err)
		}
	}
}

// Draw draws the bar at the bottom when open, and the recent log lines above it.
func (c *Console) Draw() {
	if !c.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	barY := screenH - BarHeight
	if !rl.IsWindowFullscreen() {
		barY -= WindowedBarOffset
	}

	historyHeight := int32(maxLinesOnScreen * lineHeight)
	historyY := barY - historyHeight
	if historyY < 0 {
		historyHeight = barY
		historyY = 0
	}
	if historyHeight > 0 {
		rl.DrawRectangle(0, historyY, screenW, historyHeight, historyColor)
	}
	lines := c.log.Lines()
	start := max(0, len(lines)-maxLinesOnScreen)
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		c.text(line, padding, historyY+int32(i-start)*lineHeight+padding, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, lineColor)
	c.text(prompt+c.inputBuf+"|", padding, barY+padding, rl.White)
}

func (c *Console) text(s string, x, y int32, col rl.Color) {
	if c.font.Texture.ID != 0 {
		rl.DrawTextEx(c.font, s, rl.NewVector2(float32(x), float32(y)), fontSize, 1, col)
		return
	}
	rl.DrawText(s, x, y, fontSize, col)
}
