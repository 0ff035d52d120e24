package ui

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed default.css
var defaultCSS []byte

// DefaultStylesheet returns the built-in overlay stylesheet.
func DefaultStylesheet() *Stylesheet {
	sheet, err := ParseCSS(defaultCSS)
	if err != nil {
		panic(fmt.Sprintf("ui: built-in stylesheet: %v", err))
	}
	return sheet
}

// Box is a node with its resolved style and on-screen bounds, ready to draw.
type Box struct {
	Node  *Node
	Style ComputedStyle
}

// Engine holds the current stylesheet and nodes and lays them out for a screen size.
// Drawing is left to the caller so this package stays free of the renderer.
// Draw order is node order (first node drawn first, then on top the next).
type Engine struct {
	sheet *Stylesheet
	nodes []*Node
	boxes []Box
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	sheet, err := ParseCSS(data)
	if err != nil {
		return err
	}
	e.sheet = sheet
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. the built-in one).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// AddNode appends a node. Nodes are drawn in order.
func (e *Engine) AddNode(n *Node) {
	e.nodes = append(e.nodes, n)
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
}

// resolveProps returns merged properties for a node; later matching rules win.
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		if !rule.Matches(n) {
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return merged
}

// Layout resolves every node's style and bounds for a screen of the given size and returns them in draw order.
// Percentage positions place the box within the free space, so 100% is flush with the right or bottom edge.
func (e *Engine) Layout(screenW, screenH int32) []Box {
	e.boxes = e.boxes[:0]
	for _, n := range e.nodes {
		style := ResolveProps(e.resolveProps(n))
		w, h := style.Width, style.Height
		x, y := style.Left, style.Top
		if style.LeftPct >= 0 {
			x = (screenW - w) * style.LeftPct / 100
		}
		if style.TopPct >= 0 {
			y = (screenH - h) * style.TopPct / 100
		}
		n.Bounds = Rect{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}
		e.boxes = append(e.boxes, Box{Node: n, Style: style})
	}
	return e.boxes
}

// SetPointer updates every node's hover flag from the last layout.
func (e *Engine) SetPointer(x, y float32) {
	for _, n := range e.nodes {
		n.Hover = n.Bounds.Contains(x, y)
	}
}

// HitTest returns the top-most node under (x, y) from the last layout, or nil.
func (e *Engine) HitTest(x, y float32) *Node {
	for i := len(e.nodes) - 1; i >= 0; i-- {
		if e.nodes[i].Bounds.Contains(x, y) {
			return e.nodes[i]
		}
	}
	return nil
}
