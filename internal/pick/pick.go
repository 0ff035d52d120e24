package pick

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// Node is anything a ray can hit. Child primitives report their owner through Parent;
// top-level objects return nil.
type Node interface {
	Parent() Node
}

// Hit is one ray intersection reported by the renderer.
type Hit struct {
	Node     Node
	Distance float32
}

// Caster casts a ray from the camera through a point in normalized device coordinates
// and returns every intersection, in any order.
type Caster interface {
	CastNDC(ndc mgl32.Vec2) []Hit
}

// NDC converts window pixel coordinates to normalized device coordinates
// (x right, y up, both in [-1, 1]). A degenerate viewport maps to the origin.
func NDC(x, y, width, height float32) mgl32.Vec2 {
	if width <= 0 || height <= 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{x/width*2 - 1, -(y/height)*2 + 1}
}

// Root walks n up to its top-level node.
func Root(n Node) Node {
	for n != nil {
		p := n.Parent()
		if p == nil {
			return n
		}
		n = p
	}
	return nil
}

// Nearest returns the top-level node of the closest hit. Hits with a nil node are skipped.
func Nearest(hits []Hit) (Node, bool) {
	valid := make([]Hit, 0, len(hits))
	for _, h := range hits {
		if h.Node != nil {
			valid = append(valid, h)
		}
	}
	if len(valid) == 0 {
		return nil, false
	}
	sort.SliceStable(valid, func(i, j int) bool { return valid[i].Distance < valid[j].Distance })
	return Root(valid[0].Node), true
}

// Pick casts through ndc and resolves the nearest hit to its top-level object.
func Pick(ndc mgl32.Vec2, c Caster) (Node, bool) {
	if c == nil {
		return nil, false
	}
	return Nearest(c.CastNDC(ndc))
}
