package ui

// Button is a clickable node. The click handler runs on the frame loop.
type Button struct {
	Node    *Node
	OnClick func()
}

// NewButton returns a button with class class and label text.
func NewButton(class, id, text string, onClick func()) *Button {
	return &Button{Node: NewNode("button", class, id, text), OnClick: onClick}
}

// SetText changes the label.
func (b *Button) SetText(text string) {
	b.Node.Text = text
}

// Click runs OnClick if (x, y) is inside the button's last laid-out bounds and reports whether it was.
func (b *Button) Click(x, y float32) bool {
	if !b.Node.Bounds.Contains(x, y) {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}
