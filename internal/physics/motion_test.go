package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"model-viewer/internal/input"
)

func near(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func TestFrictionStrictlyDecreasesSpeed(t *testing.T) {
	for _, mode := range []Mode{ModeScanner, ModeRacer} {
		tun := DefaultTuning()
		var in input.State
		m := CameraMotion{Velocity: mgl32.Vec3{0.12, -0.08, 0.05}}
		prev := m.Velocity.Len()
		for i := 0; prev >= 1e-6; i++ {
			if i > 1000 {
				t.Fatalf("%v: speed did not fall below epsilon", mode)
			}
			m.Integrate(tun, &in, mode, nil)
			cur := m.Velocity.Len()
			if cur >= prev {
				t.Fatalf("%v: frame %d speed %g did not decrease from %g", mode, i, cur, prev)
			}
			prev = cur
		}
	}
}

func TestSpeedNeverExceedsMax(t *testing.T) {
	tun := DefaultTuning()
	rng := rand.New(rand.NewSource(7))
	names := []string{"w", "a", "s", "d"}
	var in input.State
	var m CameraMotion
	mode := ModeScanner
	for i := 0; i < 5000; i++ {
		in.SetKey(names[rng.Intn(len(names))], rng.Intn(2) == 0)
		if rng.Intn(10) == 0 {
			m.Wheel(tun, mode, float32(rng.Intn(200)-100))
		}
		if rng.Intn(50) == 0 {
			mode = mode.Toggle()
		}
		m.Integrate(tun, &in, mode, nil)
		if l := m.Velocity.Len(); l > tun.MaxSpeed+1e-6 {
			t.Fatalf("frame %d: |velocity| = %g > %g", i, l, tun.MaxSpeed)
		}
		if mode == ModeRacer && math.Abs(float64(m.Vertical[1])) > float64(tun.MaxSpeed)+1e-6 {
			t.Fatalf("frame %d: vertical = %g", i, m.Vertical[1])
		}
	}
}

func TestClampRescalesToMaxSpeed(t *testing.T) {
	tun := DefaultTuning()
	var in input.State
	m := CameraMotion{Velocity: mgl32.Vec3{3, 4, 0}}
	m.Integrate(tun, &in, ModeScanner, nil)
	if !near(m.Velocity.Len(), tun.MaxSpeed, 1e-6) {
		t.Fatalf("|velocity| = %g want %g", m.Velocity.Len(), tun.MaxSpeed)
	}
	if !near(m.Velocity[0]/m.Velocity[1], 0.75, 1e-5) {
		t.Fatalf("clamp changed direction: %v", m.Velocity)
	}
}

func TestRacerVerticalClampKeepsSign(t *testing.T) {
	tun := DefaultTuning()
	var in input.State
	m := CameraMotion{Vertical: mgl32.Vec3{0, -1, 0}}
	m.Integrate(tun, &in, ModeRacer, nil)
	if m.Vertical[1] != -tun.MaxSpeed {
		t.Fatalf("vertical = %g want %g", m.Vertical[1], -tun.MaxSpeed)
	}
}

func TestHoldingRightConvergesToFixedPoint(t *testing.T) {
	tun := DefaultTuning()
	var in input.State
	in.SetKey("d", true)
	var m CameraMotion

	a, f := float64(tun.Acceleration), float64(tun.Friction)
	prev := float32(0)
	for n := 1; n <= 30; n++ {
		m.Integrate(tun, &in, ModeScanner, nil)
		want := a * f * (1 - math.Pow(f, float64(n))) / (1 - f)
		if !near(m.Velocity[0], float32(want), 1e-5) {
			t.Fatalf("frame %d: velocity.x = %g want %g", n, m.Velocity[0], want)
		}
		if m.Velocity[0] <= prev || m.Velocity[0] > tun.MaxSpeed {
			t.Fatalf("frame %d: velocity.x = %g not increasing within max", n, m.Velocity[0])
		}
		prev = m.Velocity[0]
	}
	for i := 0; i < 2000; i++ {
		m.Integrate(tun, &in, ModeScanner, nil)
	}
	fixed := float32(a * f / (1 - f))
	if !near(m.Velocity[0], fixed, 1e-4) {
		t.Fatalf("velocity.x = %g want fixed point %g", m.Velocity[0], fixed)
	}
	if fixed > tun.MaxSpeed {
		t.Fatalf("fixed point %g exceeds max speed %g", fixed, tun.MaxSpeed)
	}
	if m.Velocity[1] != 0 || m.Velocity[2] != 0 {
		t.Fatalf("right should only move along x: %v", m.Velocity)
	}
}

func TestDiagonalInputIsNormalized(t *testing.T) {
	tun := DefaultTuning()
	var in input.State
	in.SetKey("w", true)
	in.SetKey("d", true)
	var m CameraMotion
	m.Integrate(tun, &in, ModeScanner, nil)
	want := tun.Acceleration / float32(math.Sqrt2) * tun.Friction
	if !near(m.Velocity[0], want, 1e-7) || !near(m.Velocity[1], want, 1e-7) {
		t.Fatalf("velocity = %v want both %g", m.Velocity, want)
	}
}

func TestModeAxisMapping(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		key  string
		axis int
		sign float32
	}{
		{"scanner forward is up", ModeScanner, "w", 1, 1},
		{"scanner back is down", ModeScanner, "s", 1, -1},
		{"racer forward is -z", ModeRacer, "w", 2, -1},
		{"racer back is +z", ModeRacer, "s", 2, 1},
		{"left is -x", ModeRacer, "a", 0, -1},
	}
	tun := DefaultTuning()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in input.State
			in.SetKey(tt.key, true)
			var m CameraMotion
			cam := NewPose(mgl32.Vec3{}, mgl32.Vec3{})
			m.Integrate(tun, &in, tt.mode, cam)
			if got := m.Velocity[tt.axis] * tt.sign; got <= 0 {
				t.Fatalf("velocity = %v, axis %d has wrong sign", m.Velocity, tt.axis)
			}
			moved := cam.Position()
			for i := range moved {
				if !near(moved[i], m.Velocity[i], 1e-6) {
					t.Fatalf("camera moved %v want %v", moved, m.Velocity)
				}
			}
		})
	}
}

func TestWheelImpulse(t *testing.T) {
	tun := DefaultTuning()

	var racer CameraMotion
	racer.Wheel(tun, ModeRacer, 100)
	if racer.Vertical[1] != -tun.WheelAcceleration {
		t.Fatalf("racer vertical = %g want %g", racer.Vertical[1], -tun.WheelAcceleration)
	}
	if racer.Velocity != (mgl32.Vec3{}) {
		t.Fatalf("racer wheel touched velocity: %v", racer.Velocity)
	}

	var scanner CameraMotion
	scanner.Wheel(tun, ModeScanner, -3)
	if scanner.Velocity[2] != -tun.WheelAcceleration {
		t.Fatalf("scanner velocity.z = %g want %g", scanner.Velocity[2], -tun.WheelAcceleration)
	}

	var idle CameraMotion
	idle.Wheel(tun, ModeScanner, 0)
	if idle != (CameraMotion{}) {
		t.Fatalf("zero wheel delta changed motion: %+v", idle)
	}
}

func TestTiltFollowsVelocityAndReturns(t *testing.T) {
	tun := DefaultTuning()
	var in input.State
	var m CameraMotion
	cam := NewPose(mgl32.Vec3{}, mgl32.Vec3{})

	in.SetKey("d", true)
	m.Integrate(tun, &in, ModeScanner, cam)
	if want := -m.Velocity[0] * tun.TiltIntensity; m.TiltZ != want {
		t.Fatalf("tiltZ = %g want %g", m.TiltZ, want)
	}
	if cam.Rotation() != (mgl32.Vec3{m.TiltX, 0, m.TiltZ}) {
		t.Fatalf("camera rotation %v not set from tilt", cam.Rotation())
	}

	in.SetKey("d", false)
	m.Integrate(tun, &in, ModeScanner, cam)
	want := -m.Velocity[0] * tun.TiltIntensity * tun.TiltReturn
	if !near(m.TiltZ, want, 1e-9) {
		t.Fatalf("released tiltZ = %g want %g", m.TiltZ, want)
	}

	var racer CameraMotion
	racer.Velocity = mgl32.Vec3{0, 0, -0.1}
	in.SetKey("w", true)
	racer.Integrate(tun, &in, ModeRacer, nil)
	if racer.TiltX >= 0 {
		t.Fatalf("racer moving forward should pitch down, tiltX = %g", racer.TiltX)
	}
}

func TestModeLabels(t *testing.T) {
	if ModeScanner.Toggle() != ModeRacer || ModeRacer.Toggle() != ModeScanner {
		t.Fatalf("Toggle is not an involution")
	}
	if ModeScanner.Label() != "Movement Style 1: Scanner" || ModeRacer.Label() != "Movement Style 2: Racer" {
		t.Fatalf("unexpected labels %q / %q", ModeScanner.Label(), ModeRacer.Label())
	}
	if m, ok := ParseMode("racer"); !ok || m != ModeRacer {
		t.Fatalf("ParseMode(racer) = %v,%v", m, ok)
	}
	if _, ok := ParseMode("flying"); ok {
		t.Fatalf("ParseMode accepted an unknown mode")
	}
}
