package bubble

import (
	"math"

	"github.com/tanema/gween/ease"
)

// spinSecondsPerVelocity converts a spin velocity into seconds per turn.
const spinSecondsPerVelocity = 3.5

// SpinEffect rotates a wrapped node about a fixed center, one full turn every
// Velocity*3.5 seconds, forever. Each instance owns its own tween, so any
// number of effects can run at different speeds and directions.
type SpinEffect struct {
	Velocity  float64
	Clockwise bool

	node  *Node
	tween *TweenGroup
}

// NewSpinEffect wraps content in a container that spins about center.
// The effect is idle until Start is called.
func NewSpinEffect(content *Node, center Vec2, velocity float64, clockwise bool) *SpinEffect {
	n := NewContainer("spin")
	n.SetPivot(center.X, center.Y)
	n.SetPosition(center.X, center.Y)
	n.AddChild(content)
	return &SpinEffect{Velocity: velocity, Clockwise: clockwise, node: n}
}

// Node returns the spinning container.
func (s *SpinEffect) Node() *Node {
	return s.node
}

// Duration returns the length of one turn in seconds.
func (s *SpinEffect) Duration() float32 {
	return float32(s.Velocity * spinSecondsPerVelocity)
}

// Start begins the endless linear rotation from 0. Calling Start while
// running restarts the turn.
func (s *SpinEffect) Start() {
	turn := 2 * math.Pi
	if !s.Clockwise {
		turn = -turn
	}
	s.node.SetRotation(0)
	s.tween = TweenRotation(s.node, turn, s.Duration(), ease.Linear).Loop(false)
}

// Stop halts the rotation where it is.
func (s *SpinEffect) Stop() {
	s.tween = nil
}

// Running reports whether the effect is rotating.
func (s *SpinEffect) Running() bool {
	return s.tween != nil && !s.tween.Done
}

// Update advances the rotation by dt seconds.
func (s *SpinEffect) Update(dt float32) {
	if s.tween != nil {
		s.tween.Update(dt)
	}
}

// Angle returns the current rotation in degrees, normalized to [0, 360).
func (s *SpinEffect) Angle() float64 {
	deg := math.Mod(s.node.Rotation*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
