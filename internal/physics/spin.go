package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Spin is an angular velocity in radians per tick: X is the pitch rate, Y the yaw rate.
type Spin = mgl32.Vec2

// SpinTracker keeps one spin per body. Entries are created on the first drag sample
// and are never removed.
type SpinTracker struct {
	spins map[*Body]*Spin
	order []*Body
}

// NewSpinTracker returns an empty tracker.
func NewSpinTracker() *SpinTracker {
	return &SpinTracker{spins: make(map[*Body]*Spin)}
}

// Set overwrites b's spin from one drag sample: the drag velocity becomes the angular velocity.
func (st *SpinTracker) Set(t Tuning, b *Body, dx, dy float32) {
	s, ok := st.spins[b]
	if !ok {
		s = new(Spin)
		st.spins[b] = s
		st.order = append(st.order, b)
	}
	s[0] = dy * t.SpinSensitivity
	s[1] = dx * t.SpinSensitivity
}

// Get returns b's spin and whether b has an entry.
func (st *SpinTracker) Get(b *Body) (Spin, bool) {
	s, ok := st.spins[b]
	if !ok {
		return Spin{}, false
	}
	return *s, true
}

// Len returns the number of tracked bodies.
func (st *SpinTracker) Len() int {
	return len(st.order)
}

// Step applies and decays every spin except the one of dragged (which may be nil).
// Components below the epsilon snap to exactly zero so decay ends in finitely many ticks.
func (st *SpinTracker) Step(t Tuning, dragged *Body) {
	for _, b := range st.order {
		if b == dragged {
			continue
		}
		s := st.spins[b]
		b.rotate(mgl32.Vec3{s[0], s[1], 0})
		s[0] = snap(s[0]*t.SpinFriction, t.SpinEpsilon)
		s[1] = snap(s[1]*t.SpinFriction, t.SpinEpsilon)
		if b.motion == MotionSpinning && s[0] == 0 && s[1] == 0 {
			b.motion = MotionIdle
		}
	}
}

func snap(v, eps float32) float32 {
	if math32.Abs(v) < eps {
		return 0
	}
	return v
}
