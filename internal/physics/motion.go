package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"model-viewer/internal/input"
)

// Mode selects how the directional keys map onto motion channels. The integrator is shared.
type Mode int

const (
	// ModeScanner: W/S move vertically, A/D horizontally, the wheel moves forward/back.
	ModeScanner Mode = iota
	// ModeRacer: W/S move forward/back, A/D horizontally, the wheel drives a separate vertical channel.
	ModeRacer
)

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeScanner {
		return ModeRacer
	}
	return ModeScanner
}

// Label is the text shown on the movement toggle button.
func (m Mode) Label() string {
	if m == ModeRacer {
		return "Movement Style 2: Racer"
	}
	return "Movement Style 1: Scanner"
}

func (m Mode) String() string {
	if m == ModeRacer {
		return "racer"
	}
	return "scanner"
}

// ParseMode accepts "scanner" or "racer".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "scanner":
		return ModeScanner, true
	case "racer":
		return ModeRacer, true
	}
	return ModeScanner, false
}

// Tuning holds the per-tick constants of the motion and spin model. Values are per frame:
// integration is frame-coupled and does not scale by elapsed time.
type Tuning struct {
	MaxSpeed          float32
	Acceleration      float32
	Friction          float32
	WheelAcceleration float32
	TiltIntensity     float32
	TiltReturn        float32

	SpinFriction    float32
	SpinSensitivity float32
	SpinEpsilon     float32
	DragRotate      float32

	LightOffset mgl32.Vec3
}

// DefaultTuning returns the constants the viewer ships with.
func DefaultTuning() Tuning {
	return Tuning{
		MaxSpeed:          0.2,
		Acceleration:      0.008,
		Friction:          0.96,
		WheelAcceleration: 0.05,
		TiltIntensity:     0.3,
		TiltReturn:        0.95,
		SpinFriction:      0.97,
		SpinSensitivity:   0.05,
		SpinEpsilon:       0.0001,
		DragRotate:        0.01,
		LightOffset:       mgl32.Vec3{0, 0, 2},
	}
}

// CameraMotion is the stateful, low-pass filtered camera movement.
// Vertical is only integrated in ModeRacer. TiltX/TiltZ are derived from Velocity every tick.
type CameraMotion struct {
	Velocity mgl32.Vec3
	Vertical mgl32.Vec3
	TiltX    float32
	TiltZ    float32
}

// direction returns the un-normalized intent vector for the held keys.
func direction(in *input.State, mode Mode) mgl32.Vec3 {
	var d mgl32.Vec3
	if mode == ModeScanner {
		if in.Pressed(input.KeyForward) {
			d[1] = 1
		}
		if in.Pressed(input.KeyBack) {
			d[1] = -1
		}
	} else {
		if in.Pressed(input.KeyForward) {
			d[2] = -1
		}
		if in.Pressed(input.KeyBack) {
			d[2] = 1
		}
	}
	if in.Pressed(input.KeyLeft) {
		d[0] = -1
	}
	if in.Pressed(input.KeyRight) {
		d[0] = 1
	}
	return d
}

// Integrate advances m by one tick from the held keys and moves cam.
// Friction is the only decay: it applies every tick whether or not a key is held.
func (m *CameraMotion) Integrate(t Tuning, in *input.State, mode Mode, cam Transform) {
	dir := direction(in, mode)
	moving := dir.Len() > 0
	if moving {
		dir = dir.Normalize()
		m.Velocity[0] += dir[0] * t.Acceleration
		if mode == ModeScanner {
			m.Velocity[1] += dir[1] * t.Acceleration
		} else {
			m.Velocity[2] += dir[2] * t.Acceleration
		}
	}

	m.Velocity = m.Velocity.Mul(t.Friction)
	if mode == ModeRacer {
		m.Vertical = m.Vertical.Mul(t.Friction)
	}

	if m.Velocity.Len() > t.MaxSpeed {
		m.Velocity = m.Velocity.Normalize().Mul(t.MaxSpeed)
	}
	if mode == ModeRacer && math32.Abs(m.Vertical[1]) > t.MaxSpeed {
		m.Vertical[1] = math32.Copysign(t.MaxSpeed, m.Vertical[1])
	}

	if cam != nil {
		pos := cam.Position().Add(m.Velocity)
		if mode == ModeRacer {
			pos = pos.Add(m.Vertical)
		}
		cam.SetPosition(pos)
	}

	m.TiltZ = -m.Velocity[0] * t.TiltIntensity
	if mode == ModeScanner {
		m.TiltX = -m.Velocity[1] * t.TiltIntensity
	} else {
		m.TiltX = m.Velocity[2] * t.TiltIntensity
	}
	if !moving {
		m.TiltZ *= t.TiltReturn
		m.TiltX *= t.TiltReturn
	}
	if cam != nil {
		cam.SetRotation(mgl32.Vec3{m.TiltX, 0, m.TiltZ})
	}
}

// Wheel applies one scroll impulse. deltaY follows the browser convention (positive scrolls down);
// only its sign is used and zero is ignored.
func (m *CameraMotion) Wheel(t Tuning, mode Mode, deltaY float32) {
	if deltaY == 0 {
		return
	}
	s := math32.Copysign(1, deltaY)
	if mode == ModeScanner {
		m.Velocity[2] += s * t.WheelAcceleration
		return
	}
	m.Vertical[1] += -s * t.WheelAcceleration
}

// Speed returns the magnitude of the combined camera velocity.
func (m *CameraMotion) Speed() float32 {
	return m.Velocity.Add(m.Vertical).Len()
}
