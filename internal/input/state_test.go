package input

import "testing"

func TestSetKeyIgnoresUnknownNames(t *testing.T) {
	var s State
	s.SetKey("q", true)
	s.SetKey("ArrowUp", true)
	if s.AnyDirection() {
		t.Fatalf("unknown keys must not set any flag")
	}
	s.SetKey("W", true)
	if !s.Pressed(KeyForward) {
		t.Fatalf("W should map to forward (case-insensitive)")
	}
	s.SetKey("w", false)
	if s.Pressed(KeyForward) {
		t.Fatalf("forward should be released")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Key
		ok   bool
	}{
		{"w", KeyForward, true},
		{"s", KeyBack, true},
		{"a", KeyLeft, true},
		{"D", KeyRight, true},
		{"e", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := Lookup(tt.name)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Lookup(%q) = %v,%v want %v,%v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestUpdateDragWithoutDragIsNoop(t *testing.T) {
	var s State
	dx, dy := s.UpdateDrag(10, 20)
	if dx != 0 || dy != 0 {
		t.Fatalf("delta = %v,%v want 0,0", dx, dy)
	}
	if x, y := s.Pointer(); x != 0 || y != 0 {
		t.Fatalf("pointer moved to %v,%v without a drag", x, y)
	}
}

func TestDragDeltasAdvance(t *testing.T) {
	var s State
	s.BeginDrag(100, 100)
	if !s.Dragging() {
		t.Fatalf("BeginDrag should set dragging")
	}
	dx, dy := s.UpdateDrag(110, 95)
	if dx != 10 || dy != -5 {
		t.Fatalf("first delta = %v,%v want 10,-5", dx, dy)
	}
	dx, dy = s.UpdateDrag(112, 95)
	if dx != 2 || dy != 0 {
		t.Fatalf("second delta = %v,%v want 2,0", dx, dy)
	}
	s.EndDrag()
	if s.Dragging() {
		t.Fatalf("EndDrag should clear dragging")
	}
	if dx, dy := s.UpdateDrag(500, 500); dx != 0 || dy != 0 {
		t.Fatalf("delta after EndDrag = %v,%v", dx, dy)
	}
}

func TestReleaseAll(t *testing.T) {
	var s State
	s.SetKey("a", true)
	s.SetKey("d", true)
	s.ReleaseAll()
	if s.AnyDirection() {
		t.Fatalf("ReleaseAll left keys held")
	}
}
