package bubble

import (
	"math"
	"testing"
)

func newTestSpin(velocity float64, clockwise bool) *SpinEffect {
	return NewSpinEffect(NewContainer("content"), ButtonFrame.Center(), velocity, clockwise)
}

func TestSpinDuration(t *testing.T) {
	tests := []struct {
		velocity float64
		want     float32
	}{
		{1, 3.5},
		{0.7, 2.45},
		{2, 7},
	}
	for _, tt := range tests {
		s := newTestSpin(tt.velocity, true)
		if got := s.Duration(); math.Abs(float64(got-tt.want)) > 1e-5 {
			t.Errorf("velocity %v: Duration = %v, want %v", tt.velocity, got, tt.want)
		}
	}
}

func TestSpinDirection(t *testing.T) {
	tests := []struct {
		clockwise bool
		want      float64
	}{
		{true, 90},
		{false, 270},
	}
	for _, tt := range tests {
		s := newTestSpin(1, tt.clockwise)
		s.Start()
		s.Update(0.875) // a quarter of 3.5s
		if got := s.Angle(); math.Abs(got-tt.want) > 0.01 {
			t.Errorf("clockwise=%v: Angle = %v, want %v", tt.clockwise, got, tt.want)
		}
	}
}

func TestSpinLoopsForever(t *testing.T) {
	s := newTestSpin(1, true)
	s.Start()
	s.Update(1.75)
	s.Update(1.75)

	a := s.Angle()
	if a > 0.01 && a < 359.99 {
		t.Errorf("Angle after one turn = %v, want ~0", a)
	}
	if !s.Running() {
		t.Fatal("spin should still be running after a full turn")
	}

	s.Update(0.875)
	if got := s.Angle(); math.Abs(got-90) > 0.01 {
		t.Errorf("Angle into second turn = %v, want 90", got)
	}
}

func TestSpinIndependentInstances(t *testing.T) {
	slow := newTestSpin(2, true)
	fast := newTestSpin(1, false)
	slow.Start()
	fast.Start()

	slow.Update(1.75)
	fast.Update(1.75)

	if got := slow.Angle(); math.Abs(got-90) > 0.01 {
		t.Errorf("slow Angle = %v, want 90", got)
	}
	if got := fast.Angle(); math.Abs(got-180) > 0.01 {
		t.Errorf("fast Angle = %v, want 180", got)
	}
}

func TestSpinRotatesAboutCenter(t *testing.T) {
	s := newTestSpin(1, true)
	s.Start()
	s.Update(1.75)

	n := s.Node()
	n.UpdateTransforms()
	c := ButtonFrame.Center()
	x, y := n.LocalToWorld(c.X, c.Y)
	if math.Abs(x-c.X) > 1e-6 || math.Abs(y-c.Y) > 1e-6 {
		t.Errorf("center moved to (%v, %v)", x, y)
	}
}

func TestSpinStop(t *testing.T) {
	s := newTestSpin(1, true)
	if s.Running() {
		t.Fatal("spin should be idle before Start")
	}
	s.Start()
	s.Update(0.875)
	s.Stop()
	before := s.Angle()
	s.Update(1)
	if s.Running() || s.Angle() != before {
		t.Error("Stop should freeze the rotation")
	}
}
