package pick

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type object struct{ name string }

func (o *object) Parent() Node { return nil }

type part struct {
	owner Node
}

func (p *part) Parent() Node { return p.owner }

type fakeCaster struct {
	hits []Hit
	got  mgl32.Vec2
}

func (f *fakeCaster) CastNDC(ndc mgl32.Vec2) []Hit {
	f.got = ndc
	return f.hits
}

func TestNDC(t *testing.T) {
	tests := []struct {
		x, y, w, h float32
		want       mgl32.Vec2
	}{
		{0, 0, 800, 600, mgl32.Vec2{-1, 1}},
		{800, 600, 800, 600, mgl32.Vec2{1, -1}},
		{400, 300, 800, 600, mgl32.Vec2{0, 0}},
		{10, 10, 0, 600, mgl32.Vec2{}},
	}
	for _, tt := range tests {
		if got := NDC(tt.x, tt.y, tt.w, tt.h); got != tt.want {
			t.Errorf("NDC(%v,%v,%v,%v) = %v want %v", tt.x, tt.y, tt.w, tt.h, got, tt.want)
		}
	}
}

func TestPickNearestWalksToRoot(t *testing.T) {
	near := &object{name: "near"}
	far := &object{name: "far"}
	wheel := &part{owner: &part{owner: near}}
	c := &fakeCaster{hits: []Hit{
		{Node: far, Distance: 9},
		{Node: wheel, Distance: 3.5},
		{Node: &part{owner: far}, Distance: 4},
	}}

	got, ok := Pick(mgl32.Vec2{0.25, -0.5}, c)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if got != Node(near) {
		t.Fatalf("picked %v want the near object's root", got)
	}
	if c.got != (mgl32.Vec2{0.25, -0.5}) {
		t.Fatalf("caster got ndc %v", c.got)
	}
}

func TestPickMiss(t *testing.T) {
	if _, ok := Pick(mgl32.Vec2{}, &fakeCaster{}); ok {
		t.Fatalf("empty hit list should miss")
	}
	if _, ok := Pick(mgl32.Vec2{}, nil); ok {
		t.Fatalf("nil caster should miss")
	}
	if _, ok := Nearest([]Hit{{Node: nil, Distance: 1}}); ok {
		t.Fatalf("nil nodes must be skipped")
	}
}

func TestEqualDistanceKeepsFirstReported(t *testing.T) {
	a := &object{name: "a"}
	b := &object{name: "b"}
	got, _ := Nearest([]Hit{{Node: a, Distance: 2}, {Node: b, Distance: 2}})
	if got != Node(a) {
		t.Fatalf("tie should keep the first hit, got %v", got)
	}
}
