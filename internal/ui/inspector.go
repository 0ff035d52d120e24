package ui

import "fmt"

// Inspector is a right-side panel describing the model under the pointer while it is held or spinning.
// It owns its nodes and updates their text when AppendNodes is called with visible true.
type Inspector struct {
	panel    *Node
	title    *Node
	name     *Node
	position *Node
	rotation *Node
	spin     *Node
}

// NewInspector creates an Inspector with nodes styled by .inspector, .inspector-line and the #inspector-* ids.
func NewInspector() *Inspector {
	line := func(id string) *Node { return NewNode("label", "inspector-line", id, "") }
	return &Inspector{
		panel:    NewNode("panel", "inspector", "", ""),
		title:    line("inspector-title"),
		name:     line("inspector-name"),
		position: line("inspector-position"),
		rotation: line("inspector-rotation"),
		spin:     line("inspector-spin"),
	}
}

// Selection holds the data shown in the inspector.
// Pass this from the scene; ui does not depend on physics.
type Selection struct {
	Name     string
	Motion   string
	Position [3]float32
	Rotation [3]float32
	Spin     [2]float32
}

// AppendNodes appends inspector nodes to dst when visible is true, after updating labels from sel.
// When visible is false, dst is returned unchanged. Call every frame so visibility and content stay in sync.
func (in *Inspector) AppendNodes(dst []*Node, visible bool, sel Selection) []*Node {
	if !visible {
		return dst
	}
	in.title.Text = "Model (" + sel.Motion + ")"
	in.name.Text = "Name: " + sel.Name
	in.position.Text = fmt.Sprintf("Position: %.2f, %.2f, %.2f", sel.Position[0], sel.Position[1], sel.Position[2])
	in.rotation.Text = fmt.Sprintf("Rotation: %.2f, %.2f, %.2f", sel.Rotation[0], sel.Rotation[1], sel.Rotation[2])
	in.spin.Text = fmt.Sprintf("Spin: %.4f, %.4f", sel.Spin[0], sel.Spin[1])
	return append(dst, in.panel, in.title, in.name, in.position, in.rotation, in.spin)
}
