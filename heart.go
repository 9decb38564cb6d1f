package bubble

import (
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// Rand is the randomness source for heart trajectories.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Heart animation timing and ranges, in seconds and pixels.
var (
	DriftDuration = Range{Min: 4, Max: 6}
	DriftRise     = Range{Min: 100, Max: 150}
	DriftSway     = Range{Min: -15, Max: 15}
)

const (
	PulseScale            = 1.1
	PulseDuration float32 = 1.5
	ResetDuration float32 = 0.5

	delayFactor = 0.5
	glowScale   = 1.35
	glowOpacity = 0.3
)

// HeartPose is the animated state of one heart.
type HeartPose struct {
	Opacity float64
	OffsetX float64
	OffsetY float64
	Scale   float64
}

// RestPose is the pose of a heart that is not floating.
func RestPose() HeartPose {
	return HeartPose{Opacity: 0, Scale: 1}
}

// HeartAnimator drives one floating heart. It rests invisible until
// SetFloating(true), then drifts upward while fading in and pulsing.
// SetFloating(false) eases it back to rest.
//
// Node layout: scaler (scales about the button center) → drift (offset and
// opacity) → glow, heart shape.
type HeartAnimator struct {
	layout HeartLayout
	rng    Rand

	scaler *Node
	drift  *Node

	floating bool
	target   HeartPose

	driftTween *TweenGroup
	pulseTween *TweenGroup
	resetTween *TweenGroup
}

// NewHeartAnimator builds the heart's nodes inside a frame of the given
// size. If floating is true the heart starts floating immediately.
func NewHeartAnimator(layout HeartLayout, scheme ColorScheme, frame Rect, floating bool) *HeartAnimator {
	h := &HeartAnimator{layout: layout, rng: globalRand{}, target: RestPose()}

	c := frame.Center()
	h.scaler = NewContainer("heart")
	h.scaler.SetPivot(c.X, c.Y)
	h.scaler.SetPosition(c.X, c.Y)

	h.drift = NewContainer("heart-drift")
	h.drift.Alpha = 0
	h.scaler.AddChild(h.drift)

	area := layout.Area
	local := Rect{Width: area.Width, Height: area.Height}

	glow := NewShape("heart-glow", HeartPath(local), local)
	glow.Color = scheme.GradientStart.WithAlpha(glowOpacity)
	gc := local.Center()
	glow.SetPivot(gc.X, gc.Y)
	glow.SetPosition(area.X+gc.X, area.Y+gc.Y)
	glow.SetScale(glowScale, glowScale)
	h.drift.AddChild(glow)

	shape := NewShape("heart-shape", HeartPath(local), local)
	shape.Gradient = NewPetalGradient(scheme)
	shape.SetPosition(area.X, area.Y)
	h.drift.AddChild(shape)

	if floating {
		h.SetFloating(true)
	}
	return h
}

// Node returns the heart's root node.
func (h *HeartAnimator) Node() *Node {
	return h.scaler
}

// SetRand replaces the randomness source used on the next activation.
func (h *HeartAnimator) SetRand(r Rand) {
	if r == nil {
		r = globalRand{}
	}
	h.rng = r
}

// Floating reports the last value passed to SetFloating.
func (h *HeartAnimator) Floating() bool {
	return h.floating
}

// SetFloating starts or stops floating. Repeated calls with the same value
// are ignored, so an in-flight trajectory is never resampled by accident.
func (h *HeartAnimator) SetFloating(floating bool) {
	if floating == h.floating {
		return
	}
	h.floating = floating
	if floating {
		h.startFloating()
	} else {
		h.reset()
	}
}

// startFloating samples a fresh trajectory and starts the drift and pulse
// loops. Drift cycles restart at offset 0 and LowestOpacity; the pulse swings
// between 1 and PulseScale.
func (h *HeartAnimator) startFloating() {
	duration := float32(DriftDuration.Lerp(h.rng.Float64()))
	h.target = HeartPose{
		Opacity: h.layout.PeakOpacity,
		OffsetY: -DriftRise.Lerp(h.rng.Float64()),
		OffsetX: DriftSway.Lerp(h.rng.Float64()),
		Scale:   PulseScale,
	}

	// The first cycle continues from the live pose, so re-entering mid-reset
	// does not jump. Later cycles run between the rest pose and the target.
	h.resetTween = nil
	h.driftTween = NewTweenGroup(h.drift, duration, ease.InOutQuad,
		Field{&h.drift.Alpha, h.target.Opacity},
		Field{&h.drift.Y, h.target.OffsetY},
		Field{&h.drift.X, h.target.OffsetX},
	).After(float32(h.layout.AppearanceDelay * delayFactor)).Loop(false).
		LoopFrom(0, h.layout.LowestOpacity).
		LoopFrom(1, 0).
		LoopFrom(2, 0)
	h.pulseTween = TweenScale(h.scaler, PulseScale, PulseScale, PulseDuration, ease.InOutQuad).Loop(true).
		LoopFrom(0, 1).
		LoopFrom(1, 1)
}

// reset drops both loops and eases from wherever the heart is back to rest.
func (h *HeartAnimator) reset() {
	h.target = RestPose()
	h.driftTween = nil
	h.pulseTween = nil
	h.resetTween = NewTweenGroup(h.drift, ResetDuration, ease.OutQuad,
		Field{&h.drift.Alpha, 0},
		Field{&h.drift.Y, 0},
		Field{&h.drift.X, 0},
		Field{&h.scaler.ScaleX, 1},
	)
}

// Target returns the pose the heart is currently animating toward.
// While floating, Scale is the pulse's peak.
func (h *HeartAnimator) Target() HeartPose {
	return h.target
}

// Pose returns the heart's live animated values.
func (h *HeartAnimator) Pose() HeartPose {
	return HeartPose{
		Opacity: h.drift.Alpha,
		OffsetX: h.drift.X,
		OffsetY: h.drift.Y,
		Scale:   h.scaler.ScaleX,
	}
}

// Update advances whichever animations are running.
func (h *HeartAnimator) Update(dt float32) {
	if h.driftTween != nil {
		h.driftTween.Update(dt)
	}
	if h.pulseTween != nil {
		h.pulseTween.Update(dt)
	}
	if h.resetTween != nil {
		h.resetTween.Update(dt)
		if h.resetTween.Done {
			h.resetTween = nil
		}
	}
	h.scaler.ScaleY = h.scaler.ScaleX
	h.scaler.MarkDirty()
}
