package bubble

import (
	"math"
	"testing"
)

// seqRand returns its values in order, wrapping around.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

var testScheme = ColorScheme{
	Inactive:      Hex(0xFFE4E1),
	Processing:    Hex(0xFFE4E1),
	Active:        Hex(0xFFE4E1),
	GradientStart: Hex(0xFF1493),
	GradientEnd:   Hex(0xFFA07A),
}

func newTestHeart(layout HeartLayout, r Rand) *HeartAnimator {
	h := NewHeartAnimator(layout, testScheme, ButtonFrame, false)
	h.SetRand(r)
	return h
}

func assertPose(t *testing.T, name string, got, want HeartPose, tol float64) {
	t.Helper()
	if math.Abs(got.Opacity-want.Opacity) > tol ||
		math.Abs(got.OffsetX-want.OffsetX) > tol ||
		math.Abs(got.OffsetY-want.OffsetY) > tol ||
		math.Abs(got.Scale-want.Scale) > tol {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

func TestHeartStartsAtRest(t *testing.T) {
	h := newTestHeart(NewHeartLayout(Rect{Width: 30, Height: 30}, 0), &seqRand{vals: []float64{0}})
	assertPose(t, "Pose", h.Pose(), RestPose(), 0)
	assertPose(t, "Target", h.Target(), RestPose(), 0)
	if h.Floating() {
		t.Error("heart should not be floating")
	}
}

func TestHeartFloatingTarget(t *testing.T) {
	layout := NewHeartLayout(Rect{Width: 30, Height: 30}, 0).WithPeakOpacity(0.8)
	// duration, rise, sway
	h := newTestHeart(layout, &seqRand{vals: []float64{0.5, 0.5, 1}})

	h.SetFloating(true)
	want := HeartPose{Opacity: 0.8, OffsetY: -125, OffsetX: 15, Scale: PulseScale}
	assertPose(t, "Target", h.Target(), want, 1e-9)
}

func TestHeartReachesPeakOpacity(t *testing.T) {
	layout := NewHeartLayout(Rect{X: 15, Y: 20, Width: 30, Height: 30}, 0)
	h := newTestHeart(layout, &seqRand{vals: []float64{0}}) // 4s drift, rise 100, sway -15

	h.SetFloating(true)
	h.Update(2)
	h.Update(2)

	p := h.Pose()
	if math.Abs(p.Opacity-1) > 1e-6 {
		t.Errorf("Opacity = %v, want 1", p.Opacity)
	}
	if math.Abs(p.OffsetY+100) > 1e-3 || math.Abs(p.OffsetX+15) > 1e-3 {
		t.Errorf("offset = (%v, %v), want (-15, -100)", p.OffsetX, p.OffsetY)
	}
}

func TestHeartAppearanceDelay(t *testing.T) {
	layout := NewHeartLayout(Rect{Width: 30, Height: 30}, 1) // starts after 0.5s
	h := newTestHeart(layout, &seqRand{vals: []float64{0}})

	h.SetFloating(true)
	h.Update(0.25)
	h.Update(0.25)
	if got := h.Pose().Opacity; got != 0 {
		t.Fatalf("Opacity = %v during delay, want 0", got)
	}
	h.Update(1)
	if got := h.Pose().Opacity; got <= 0 {
		t.Errorf("Opacity = %v after delay, want > 0", got)
	}
}

func TestHeartPulse(t *testing.T) {
	h := newTestHeart(NewHeartLayout(Rect{Width: 30, Height: 30}, 0), &seqRand{vals: []float64{0}})
	h.SetFloating(true)

	h.Update(0.75)
	h.Update(0.75)
	if got := h.Pose().Scale; math.Abs(got-PulseScale) > 1e-6 {
		t.Fatalf("Scale at pulse peak = %v, want %v", got, PulseScale)
	}
	if h.scaler.ScaleY != h.scaler.ScaleX {
		t.Error("pulse should scale uniformly")
	}

	h.Update(0.75)
	h.Update(0.75)
	if got := h.Pose().Scale; math.Abs(got-1) > 1e-6 {
		t.Errorf("Scale after pulse returns = %v, want 1", got)
	}
}

func TestHeartResetReturnsToRest(t *testing.T) {
	h := newTestHeart(NewHeartLayout(Rect{Width: 30, Height: 30}, 0), &seqRand{vals: []float64{0.3}})
	h.SetFloating(true)
	h.Update(1)
	h.Update(1)

	h.SetFloating(false)
	assertPose(t, "Target", h.Target(), RestPose(), 0)

	h.Update(0.25)
	mid := h.Pose()
	if mid.Opacity <= 0 {
		t.Errorf("reset should be gradual, Opacity = %v mid-way", mid.Opacity)
	}
	h.Update(0.25)
	assertPose(t, "Pose", h.Pose(), RestPose(), 1e-6)

	// Nothing keeps running once at rest.
	h.Update(3)
	assertPose(t, "Pose after idle", h.Pose(), RestPose(), 1e-6)
}

func TestHeartReactivationResamples(t *testing.T) {
	r := &seqRand{vals: []float64{0, 0, 0, 1, 1, 1}}
	h := newTestHeart(NewHeartLayout(Rect{Width: 30, Height: 30}, 0), r)

	h.SetFloating(true)
	first := h.Target()
	h.SetFloating(false)
	h.SetFloating(true)
	second := h.Target()

	if first.OffsetY != -100 || second.OffsetY != -150 {
		t.Errorf("rise = %v then %v, want -100 then -150", first.OffsetY, second.OffsetY)
	}
	if first.OffsetX == second.OffsetX {
		t.Error("sway should be resampled")
	}
}

func TestHeartSetFloatingIgnoresRepeats(t *testing.T) {
	r := &seqRand{vals: []float64{0, 0.5, 1}}
	h := newTestHeart(NewHeartLayout(Rect{Width: 30, Height: 30}, 0), r)
	h.SetFloating(true)
	h.SetFloating(true)
	if r.i != 3 {
		t.Errorf("sampled %d values, want 3", r.i)
	}
}

func TestHeartConstructedFloating(t *testing.T) {
	h := NewHeartAnimator(NewHeartLayout(Rect{Width: 30, Height: 30}, 0), testScheme, ButtonFrame, true)
	if !h.Floating() {
		t.Fatal("heart should float immediately")
	}
	got := h.Target()
	if got.Opacity != 1 || got.Scale != PulseScale {
		t.Errorf("Target = %+v", got)
	}
	if got.OffsetY > -DriftRise.Min || got.OffsetY < -DriftRise.Max {
		t.Errorf("rise %v outside %v", -got.OffsetY, DriftRise)
	}
	if got.OffsetX < DriftSway.Min || got.OffsetX > DriftSway.Max {
		t.Errorf("sway %v outside %v", got.OffsetX, DriftSway)
	}
}

func TestHeartScalesAboutButtonCenter(t *testing.T) {
	h := newTestHeart(NewHeartLayout(Rect{Width: 30, Height: 30}, 0), &seqRand{vals: []float64{0}})
	n := h.Node()
	n.SetScale(2, 2)
	n.UpdateTransforms()

	c := ButtonFrame.Center()
	x, y := n.LocalToWorld(c.X, c.Y)
	if math.Abs(x-c.X) > 1e-9 || math.Abs(y-c.Y) > 1e-9 {
		t.Errorf("button center moved to (%v, %v)", x, y)
	}
}

func TestHeartReentryMidResetPulsesFromOne(t *testing.T) {
	h := newTestHeart(NewHeartLayout(Rect{Width: 30, Height: 30}, 0), &seqRand{vals: []float64{0.5}})
	h.SetFloating(true)
	h.Update(0.75)
	h.SetFloating(false)
	h.Update(0.1)
	if s := h.Pose().Scale; s <= 1.001 {
		t.Fatalf("Scale = %v mid-reset, want above 1", s)
	}
	h.SetFloating(true)

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < 600; i++ {
		h.Update(1.0 / 60)
		s := h.Pose().Scale
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	if math.Abs(lo-1) > 1e-6 {
		t.Errorf("lowest pulse scale = %v, want 1", lo)
	}
	if math.Abs(hi-PulseScale) > 1e-6 {
		t.Errorf("highest pulse scale = %v, want %v", hi, PulseScale)
	}
}

func TestHeartDriftCyclesRestartAtRest(t *testing.T) {
	layout := NewHeartLayout(Rect{Width: 30, Height: 30}, 0)
	layout.LowestOpacity = 0.3
	h := newTestHeart(layout, &seqRand{vals: []float64{0}}) // 4s drift, rise 100

	h.SetFloating(true)
	h.Update(2)
	h.Update(2)
	h.Update(0.01)

	p := h.Pose()
	if math.Abs(p.Opacity-0.3) > 1e-3 {
		t.Errorf("Opacity = %v at cycle start, want 0.3", p.Opacity)
	}
	if math.Abs(p.OffsetY) > 0.01 || math.Abs(p.OffsetX) > 0.01 {
		t.Errorf("offset = (%v, %v) at cycle start, want (0, 0)", p.OffsetX, p.OffsetY)
	}
}
