package ui

// Rect is an axis-aligned screen rectangle in pixels.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether the point (x, y) lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.Width && y < r.Y+r.Height
}

// Node is a single UI element: panel, label, button. It has optional class and id for CSS matching,
// bounds (resolved by Engine.Layout) and optional text.
type Node struct {
	Type   string // "panel", "label", "button"
	Class  string // e.g. "toggle" for .toggle
	ID     string // e.g. "mode" for #mode
	Bounds Rect
	Text   string
	// Hover selects :hover rules. Set by Engine.SetPointer.
	Hover bool
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}
