package physics

import "github.com/go-gl/mathgl/mgl32"

// Transform is the minimal capability the simulation needs from a scene object or camera:
// read and write its position and its Euler rotation (XYZ order, radians).
type Transform interface {
	Position() mgl32.Vec3
	SetPosition(p mgl32.Vec3)
	Rotation() mgl32.Vec3
	SetRotation(r mgl32.Vec3)
}

// Pose is a plain in-memory Transform. Renderers embed it and read it back when drawing.
type Pose struct {
	pos mgl32.Vec3
	rot mgl32.Vec3
}

// NewPose returns a pose at position with rotation.
func NewPose(position, rotation mgl32.Vec3) *Pose {
	return &Pose{pos: position, rot: rotation}
}

func (p *Pose) Position() mgl32.Vec3     { return p.pos }
func (p *Pose) SetPosition(v mgl32.Vec3) { p.pos = v }
func (p *Pose) Rotation() mgl32.Vec3     { return p.rot }
func (p *Pose) SetRotation(v mgl32.Vec3) { p.rot = v }

// Motion is the explicit per-object state: auto-rotating, coasting on a spin, or held by the pointer.
type Motion int

const (
	MotionIdle Motion = iota
	MotionSpinning
	MotionDragging
)

func (m Motion) String() string {
	switch m {
	case MotionIdle:
		return "idle"
	case MotionSpinning:
		return "spinning"
	case MotionDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Body is the simulation side of one interactive scene object. It lives from asset load until
// the process ends; the world never removes bodies.
type Body struct {
	Name string
	// IdleSpeed is added to Rotation.Y every tick the body is not being dragged.
	IdleSpeed float32

	xf     Transform
	motion Motion
}

// NewBody returns a body driving xf. A nil xf gets a fresh Pose.
func NewBody(name string, xf Transform, idleSpeed float32) *Body {
	if xf == nil {
		xf = &Pose{}
	}
	return &Body{Name: name, IdleSpeed: idleSpeed, xf: xf}
}

// Transform returns the transform the body writes to.
func (b *Body) Transform() Transform {
	return b.xf
}

// Motion returns the body's current motion state.
func (b *Body) Motion() Motion {
	return b.motion
}

// rotate adds d to the body's rotation.
func (b *Body) rotate(d mgl32.Vec3) {
	b.xf.SetRotation(b.xf.Rotation().Add(d))
}
