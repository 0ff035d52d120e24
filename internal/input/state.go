package input

import "strings"

// Key is one of the directional keys the viewer reacts to.
type Key int

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	keyCount
)

// keyNames maps lower-case key names (as reported by the window layer) to keys.
var keyNames = map[string]Key{
	"w": KeyForward,
	"s": KeyBack,
	"a": KeyLeft,
	"d": KeyRight,
}

// Lookup returns the key for name. Names are case-insensitive; ok is false for keys the viewer ignores.
func Lookup(name string) (k Key, ok bool) {
	k, ok = keyNames[strings.ToLower(name)]
	return k, ok
}

// State holds the keyboard flags and pointer drag state sampled by the frame loop.
// It is mutated by event handlers and read once per frame; it has no error conditions.
type State struct {
	keys     [keyCount]bool
	dragging bool
	lastX    float32
	lastY    float32
	curX     float32
	curY     float32
}

// SetKey updates the flag for name. Unrecognized names are ignored.
func (s *State) SetKey(name string, pressed bool) {
	k, ok := Lookup(name)
	if !ok {
		return
	}
	s.keys[k] = pressed
}

// Pressed reports whether k is currently held.
func (s *State) Pressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.keys[k]
}

// AnyDirection reports whether any directional key is held.
func (s *State) AnyDirection() bool {
	for _, down := range s.keys {
		if down {
			return true
		}
	}
	return false
}

// ReleaseAll clears every key flag (e.g. when another widget captures the keyboard).
func (s *State) ReleaseAll() {
	s.keys = [keyCount]bool{}
}

// BeginDrag records the starting pointer coordinates and enters the dragging state.
func (s *State) BeginDrag(x, y float32) {
	s.lastX, s.lastY = x, y
	s.curX, s.curY = x, y
	s.dragging = true
}

// UpdateDrag returns the pointer displacement since the previous sample and advances it.
// When not dragging it returns a zero delta and leaves the state untouched.
func (s *State) UpdateDrag(x, y float32) (dx, dy float32) {
	if !s.dragging {
		return 0, 0
	}
	s.curX, s.curY = x, y
	dx = x - s.lastX
	dy = y - s.lastY
	s.lastX, s.lastY = x, y
	return dx, dy
}

// EndDrag leaves the dragging state.
func (s *State) EndDrag() {
	s.dragging = false
}

// Dragging reports whether a drag is in progress.
func (s *State) Dragging() bool {
	return s.dragging
}

// Pointer returns the most recent pointer coordinates seen by BeginDrag or UpdateDrag.
func (s *State) Pointer() (x, y float32) {
	return s.curX, s.curY
}
