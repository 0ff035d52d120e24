package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"model-viewer/internal/input"
)

// LightBinding makes Light follow Body at a fixed offset.
type LightBinding struct {
	Body  *Body
	Light Transform
}

// World is the whole interaction state of the viewer: input, camera motion, the interactive
// bodies with their spins, the drag selection and the light followers. Event handlers and
// Step run on the same goroutine; World does no locking.
type World struct {
	Tuning Tuning
	Input  input.State
	Motion CameraMotion

	camera   Transform
	home     Pose
	mode     Mode
	bodies   []*Body
	spins    *SpinTracker
	selected *Body
	lights   []LightBinding
}

// NewWorld returns a world driving camera. The camera's current pose becomes its reset pose.
func NewWorld(t Tuning, camera Transform) *World {
	if camera == nil {
		camera = &Pose{}
	}
	return &World{
		Tuning: t,
		camera: camera,
		home:   Pose{pos: camera.Position(), rot: camera.Rotation()},
		spins:  NewSpinTracker(),
	}
}

// Camera returns the camera transform.
func (w *World) Camera() Transform {
	return w.camera
}

// Mode returns the current movement mode.
func (w *World) Mode() Mode {
	return w.mode
}

// SetMode changes the axis mapping from the next tick on. Velocities and spins are kept.
func (w *World) SetMode(m Mode) {
	w.mode = m
}

// ToggleMode flips the movement mode and returns the new one.
func (w *World) ToggleMode() Mode {
	w.mode = w.mode.Toggle()
	return w.mode
}

// Add appends a body. The body set may grow at any tick.
func (w *World) Add(b *Body) {
	w.bodies = append(w.bodies, b)
}

// Bodies returns the bodies in insertion order. The slice must not be modified.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// BindLight makes light follow b and places it immediately.
func (w *World) BindLight(b *Body, light Transform) {
	w.lights = append(w.lights, LightBinding{Body: b, Light: light})
	light.SetPosition(b.xf.Position().Add(w.Tuning.LightOffset))
}

// Selected returns the current drag target, or nil.
func (w *World) Selected() *Body {
	return w.selected
}

// SpinOf returns b's spin and whether b has ever been dragged.
func (w *World) SpinOf(b *Body) (Spin, bool) {
	return w.spins.Get(b)
}

// KeyDown and KeyUp forward keyboard events; unknown key names are ignored.
func (w *World) KeyDown(name string) { w.Input.SetKey(name, true) }
func (w *World) KeyUp(name string)   { w.Input.SetKey(name, false) }

// PointerDown starts a drag at (x, y). hit is the picked body, or nil when the ray missed;
// a miss still enters the dragging state but selects nothing.
func (w *World) PointerDown(x, y float32, hit *Body) {
	w.Input.BeginDrag(x, y)
	if hit == nil {
		return
	}
	w.selected = hit
	hit.motion = MotionDragging
}

// PointerMove feeds one pointer sample. While a body is held, the raw delta rotates it
// directly and also overwrites its spin, so the last sample is what carries on after release.
// A sample at the previous position is not movement and leaves the spin alone.
func (w *World) PointerMove(x, y float32) {
	if !w.Input.Dragging() || w.selected == nil {
		return
	}
	dx, dy := w.Input.UpdateDrag(x, y)
	if dx == 0 && dy == 0 {
		return
	}
	w.selected.rotate(mgl32.Vec3{dy * w.Tuning.DragRotate, dx * w.Tuning.DragRotate, 0})
	w.spins.Set(w.Tuning, w.selected, dx, dy)
}

// PointerUp ends the drag and clears the selection unconditionally.
func (w *World) PointerUp() {
	w.Input.EndDrag()
	if b := w.selected; b != nil {
		b.motion = MotionIdle
		if s, ok := w.spins.Get(b); ok && (s[0] != 0 || s[1] != 0) {
			b.motion = MotionSpinning
		}
	}
	w.selected = nil
}

// Wheel applies a scroll impulse to the camera motion.
func (w *World) Wheel(deltaY float32) {
	w.Motion.Wheel(w.Tuning, w.mode, deltaY)
}

// ResetCamera stops the camera and puts it back at its starting pose.
func (w *World) ResetCamera() {
	w.Motion = CameraMotion{}
	w.camera.SetPosition(w.home.pos)
	w.camera.SetRotation(w.home.rot)
}

// dragged returns the body currently held by the pointer, or nil.
func (w *World) dragged() *Body {
	if !w.Input.Dragging() {
		return nil
	}
	return w.selected
}

// Step advances one tick in fixed order: camera motion, idle rotation,
// light follow, then the spin pass. Rendering is left to the caller.
func (w *World) Step() {
	w.Motion.Integrate(w.Tuning, &w.Input, w.mode, w.camera)

	held := w.dragged()
	for _, b := range w.bodies {
		if b == held {
			continue
		}
		b.rotate(mgl32.Vec3{0, b.IdleSpeed, 0})
	}

	for _, lb := range w.lights {
		lb.Light.SetPosition(lb.Body.xf.Position().Add(w.Tuning.LightOffset))
	}

	w.spins.Step(w.Tuning, held)
}
