package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestWorld() *World {
	return NewWorld(DefaultTuning(), NewPose(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}))
}

func TestReleaseSpinEqualsLastSample(t *testing.T) {
	w := newTestWorld()
	a := NewBody("a", nil, 0.002)
	w.Add(a)

	w.PointerDown(100, 100, a)
	if w.Selected() != a || a.Motion() != MotionDragging {
		t.Fatalf("pointer down did not select the hit body")
	}
	w.PointerMove(140, 90)
	w.PointerMove(143, 94)
	w.PointerUp()

	got, ok := w.SpinOf(a)
	if !ok {
		t.Fatalf("no spin entry after drag")
	}
	want := Spin{4 * w.Tuning.SpinSensitivity, 3 * w.Tuning.SpinSensitivity}
	if got != want {
		t.Fatalf("spin = %v want %v", got, want)
	}
	if w.Selected() != nil {
		t.Fatalf("pointer up must clear the selection")
	}
	if a.Motion() != MotionSpinning {
		t.Fatalf("motion = %v want spinning", a.Motion())
	}
}

func TestStillPointerKeepsReleaseSpin(t *testing.T) {
	w := newTestWorld()
	a := NewBody("a", nil, 0)
	w.Add(a)

	w.PointerDown(0, 0, a)
	w.PointerMove(10, 5)
	rot := a.Transform().Rotation()
	w.PointerMove(10, 5)
	w.PointerMove(10, 5)
	if a.Transform().Rotation() != rot {
		t.Fatalf("still samples rotated the held body: %v", a.Transform().Rotation())
	}
	w.PointerUp()

	want := Spin{5 * w.Tuning.SpinSensitivity, 10 * w.Tuning.SpinSensitivity}
	if got, _ := w.SpinOf(a); got != want {
		t.Fatalf("spin = %v want %v", got, want)
	}
	if a.Motion() != MotionSpinning {
		t.Fatalf("motion = %v want spinning", a.Motion())
	}
}

func TestDraggedBodyFollowsRawDelta(t *testing.T) {
	w := newTestWorld()
	a := NewBody("a", nil, 0.002)
	w.Add(a)

	w.PointerDown(0, 0, a)
	w.PointerMove(10, 20)
	want := mgl32.Vec3{20 * w.Tuning.DragRotate, 10 * w.Tuning.DragRotate, 0}
	if !a.Transform().Rotation().ApproxEqualThreshold(want, 1e-7) {
		t.Fatalf("rotation = %v want %v", a.Transform().Rotation(), want)
	}

	w.Step()
	w.Step()
	if !a.Transform().Rotation().ApproxEqualThreshold(want, 1e-7) {
		t.Fatalf("held body changed while ticking: %v", a.Transform().Rotation())
	}
}

func TestMissedPickDragsNothing(t *testing.T) {
	w := newTestWorld()
	a := NewBody("a", nil, 0)
	w.Add(a)

	w.PointerDown(0, 0, nil)
	if !w.Input.Dragging() || w.Selected() != nil {
		t.Fatalf("a miss should drag with no selection")
	}
	w.PointerMove(50, 50)
	if _, ok := w.SpinOf(a); ok {
		t.Fatalf("move without selection created a spin")
	}
	if a.Transform().Rotation() != (mgl32.Vec3{}) {
		t.Fatalf("move without selection rotated a body")
	}
	w.PointerUp()
	if w.Input.Dragging() {
		t.Fatalf("pointer up left dragging set")
	}
}

func TestSpinsAreIndependentAcrossSelections(t *testing.T) {
	w := newTestWorld()
	a := NewBody("a", nil, 0)
	b := NewBody("b", nil, 0)
	w.Add(a)
	w.Add(b)

	w.PointerDown(0, 0, a)
	w.PointerMove(20, 0)
	w.PointerUp()
	w.Step()
	aSpin, _ := w.SpinOf(a)

	w.PointerDown(0, 0, b)
	w.PointerMove(0, -30)
	if s, _ := w.SpinOf(a); s != aSpin {
		t.Fatalf("dragging b changed a's spin: %v -> %v", aSpin, s)
	}

	w.Step()
	s, _ := w.SpinOf(a)
	if s[1] != aSpin[1]*w.Tuning.SpinFriction {
		t.Fatalf("a's spin = %v want decayed %g", s, aSpin[1]*w.Tuning.SpinFriction)
	}
	bSpin, _ := w.SpinOf(b)
	if bSpin != (Spin{-30 * w.Tuning.SpinSensitivity, 0}) {
		t.Fatalf("b's spin = %v", bSpin)
	}
	if w.Selected() != b {
		t.Fatalf("selection = %v want b", w.Selected())
	}
}

func TestToggleModeMidDragKeepsState(t *testing.T) {
	w := newTestWorld()
	a := NewBody("a", nil, 0)
	w.Add(a)

	w.KeyDown("d")
	for i := 0; i < 5; i++ {
		w.Step()
	}
	w.PointerDown(0, 0, a)
	w.PointerMove(8, 6)

	vel := w.Motion.Velocity
	spin, _ := w.SpinOf(a)
	if got := w.ToggleMode(); got != ModeRacer {
		t.Fatalf("ToggleMode = %v want racer", got)
	}
	if w.Motion.Velocity != vel {
		t.Fatalf("toggle reset velocity")
	}
	if s, _ := w.SpinOf(a); s != spin {
		t.Fatalf("toggle changed spin")
	}
	if !w.Input.Dragging() || w.Selected() != a {
		t.Fatalf("toggle interrupted the drag")
	}
}

func TestIdleRotationAndLightFollow(t *testing.T) {
	w := newTestWorld()
	pose := NewPose(mgl32.Vec3{4, -4, 0}, mgl32.Vec3{})
	a := NewBody("a", pose, 0.0025)
	w.Add(a)
	light := &Pose{}
	w.BindLight(a, light)
	if light.Position() != (mgl32.Vec3{4, -4, 2}) {
		t.Fatalf("light not placed on bind: %v", light.Position())
	}

	pose.SetPosition(mgl32.Vec3{1, 1, 1})
	w.Step()
	if light.Position() != (mgl32.Vec3{1, 1, 3}) {
		t.Fatalf("light = %v want it to follow the body", light.Position())
	}
	if pose.Rotation()[1] != 0.0025 {
		t.Fatalf("idle rotation = %g want 0.0025", pose.Rotation()[1])
	}
}

func TestWorldToleratesGrowingBodySet(t *testing.T) {
	w := newTestWorld()
	for i := 0; i < 5; i++ {
		w.Add(NewBody("m", nil, 0.001))
		w.Step()
	}
	if n := len(w.Bodies()); n != 5 {
		t.Fatalf("bodies = %d want 5", n)
	}
	first := w.Bodies()[0].Transform().Rotation()[1]
	last := w.Bodies()[4].Transform().Rotation()[1]
	if !(first > last) || last == 0 {
		t.Fatalf("earlier bodies should have ticked more: first=%g last=%g", first, last)
	}
}

func TestResetCamera(t *testing.T) {
	w := newTestWorld()
	w.SetMode(ModeRacer)
	w.KeyDown("w")
	w.Wheel(-1)
	for i := 0; i < 10; i++ {
		w.Step()
	}
	if w.Camera().Position() == (mgl32.Vec3{0, 0, 10}) {
		t.Fatalf("camera did not move")
	}
	w.ResetCamera()
	if w.Camera().Position() != (mgl32.Vec3{0, 0, 10}) || w.Motion != (CameraMotion{}) {
		t.Fatalf("reset left pos=%v motion=%+v", w.Camera().Position(), w.Motion)
	}
}

func TestUnknownKeysAreIgnored(t *testing.T) {
	w := newTestWorld()
	w.KeyDown("q")
	w.KeyDown("Escape")
	w.Step()
	if w.Motion.Velocity != (mgl32.Vec3{}) {
		t.Fatalf("unknown keys moved the camera: %v", w.Motion.Velocity)
	}
}
