package bubble

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Icon and label layout, in button-local pixels.
const (
	IconWidth       = 24.0
	IconHeight      = 28.0
	IconLabelGap    = 12.0
	labelLineHeight = LabelFontSize * 1.25
)

// BubbleButton is the like toggle. It owns the toggle state and composes the
// floating hearts (behind), the flower, and the icon and label (in front).
// The only input it accepts is a tap.
type BubbleButton struct {
	layout VisualConfiguration
	scheme ColorScheme
	state  ToggleState

	root   *Node
	hearts *FloatingHearts
	flower *FlowerView
	icon   *Node
	label  *Node

	foreground *TweenGroup
	onChange   func(from, to ToggleState)
	renderer   Renderer
}

// New builds a button in the inactive state. Petal spins start immediately.
func New(layout VisualConfiguration, scheme ColorScheme) *BubbleButton {
	b := &BubbleButton{
		layout: layout,
		scheme: scheme,
		state:  StateInactive,
		root:   NewContainer("bubble"),
	}

	b.hearts = NewFloatingHearts(layout, scheme, b.state)
	b.flower = NewFlowerView(layout, scheme, b.state)
	b.root.AddChild(b.hearts.Node())
	b.root.AddChild(b.flower.Node())

	fg := b.state.Foreground(scheme)
	top := (FrameHeight - (IconHeight + IconLabelGap + labelLineHeight)) / 2

	iconRect := Rect{Width: IconWidth, Height: IconHeight}
	b.icon = NewShape("icon", ShieldPath(iconRect), iconRect)
	b.icon.SetPosition((FrameWidth-IconWidth)/2, top)
	b.icon.Color = fg
	b.root.AddChild(b.icon)

	b.label = NewText("label", b.state.Label(), nil)
	b.label.SetPosition(FrameWidth/2, top+IconHeight+IconLabelGap)
	b.label.Color = fg
	b.root.AddChild(b.label)

	return b
}

// Node returns the button's root node. Position and scale it to place the
// button on screen.
func (b *BubbleButton) Node() *Node {
	return b.root
}

// State returns the current toggle state.
func (b *BubbleButton) State() ToggleState {
	return b.state
}

// Label returns the caption currently shown.
func (b *BubbleButton) Label() string {
	return b.label.Text
}

// Foreground returns the icon and label color for the current state. The
// drawn color may still be easing toward it.
func (b *BubbleButton) Foreground() Color {
	return b.state.Foreground(b.scheme)
}

// Flower returns the petal and core view.
func (b *BubbleButton) Flower() *FlowerView {
	return b.flower
}

// Hearts returns the floating hearts view.
func (b *BubbleButton) Hearts() *FloatingHearts {
	return b.hearts
}

// OnChange registers fn to be called after every state change.
// Passing nil removes it.
func (b *BubbleButton) OnChange(fn func(from, to ToggleState)) {
	b.onChange = fn
}

// SetRand sets the randomness source for heart trajectories.
func (b *BubbleButton) SetRand(r Rand) {
	b.hearts.SetRand(r)
}

// Tap advances the toggle state. The new state reaches the flower and the
// hearts before any animation target is derived from it.
func (b *BubbleButton) Tap() {
	from := b.state
	b.state = from.Next()

	b.flower.SetState(b.state)
	b.hearts.SetState(b.state)

	b.label.Text = b.state.Label()
	b.foreground = TweenColor(b.icon, b.state.Foreground(b.scheme), DefaultTransition, ease.InOutQuad)

	if b.onChange != nil {
		b.onChange(from, b.state)
	}
}

// Contains reports whether the world-space point lies on the button's frame.
func (b *BubbleButton) Contains(wx, wy float64) bool {
	b.root.UpdateTransforms()
	lx, ly, ok := b.root.WorldToLocal(wx, wy)
	return ok && ButtonFrame.Contains(lx, ly)
}

// Update advances every animation by dt seconds.
func (b *BubbleButton) Update(dt float32) {
	b.hearts.Update(dt)
	b.flower.Update(dt)
	if b.foreground != nil {
		b.foreground.Update(dt)
		if b.foreground.Done {
			b.foreground = nil
		}
	}
	b.label.Color = b.icon.Color
	b.root.UpdateTransforms()
}

// Draw renders the button to dst.
func (b *BubbleButton) Draw(dst *ebiten.Image) {
	b.renderer.Draw(dst, b.root)
}
