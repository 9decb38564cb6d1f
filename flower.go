package bubble

import "github.com/tanema/gween/ease"

// Flower geometry, in button-local pixels.
const (
	FrameWidth   = 220.0
	FrameHeight  = 200.0
	CoreDiameter = 200.0
	PetalOpacity = 0.2
)

// ButtonFrame is the rect every petal and the core circle are laid out in.
var ButtonFrame = Rect{Width: FrameWidth, Height: FrameHeight}

// FlowerView draws the spinning petals and the core circle. Petals are drawn
// first so the core sits above them.
type FlowerView struct {
	node  *Node
	spins []*SpinEffect
	core  *Node

	state    ToggleState
	coreFade *TweenGroup
}

// NewFlowerView builds one petal per layout entry and the core circle, and
// starts every petal's spin.
func NewFlowerView(layout VisualConfiguration, scheme ColorScheme, state ToggleState) *FlowerView {
	f := &FlowerView{node: NewContainer("flower"), state: state}
	center := ButtonFrame.Center()

	for i, p := range layout.Petals {
		petal := NewShape("petal", PetalPath(ButtonFrame), ButtonFrame)
		petal.Gradient = NewPetalGradient(scheme)
		petal.Alpha = PetalOpacity
		petal.SetPivot(center.X, center.Y)
		petal.SetPosition(center.X, center.Y)
		petal.SetRotation(degToRad(p.InitialAngle))

		offset := NewContainer("petal-offset")
		offset.SetPosition(p.Displacement.X, p.Displacement.Y)
		offset.AddChild(petal)

		spin := NewSpinEffect(offset, center, spinVelocity(p.SpinVelocity), i%2 == 0)
		f.node.AddChild(spin.Node())
		f.spins = append(f.spins, spin)
		spin.Start()
	}

	coreRect := Rect{
		X:      (FrameWidth - CoreDiameter) / 2,
		Y:      (FrameHeight - CoreDiameter) / 2,
		Width:  CoreDiameter,
		Height: CoreDiameter,
	}
	f.core = NewShape("core", CirclePath(coreRect), coreRect)
	f.core.Gradient = NewCoreGradient(scheme)
	f.core.Alpha = state.CoreOpacity()
	f.node.AddChild(f.core)

	return f
}

// Node returns the flower's root node.
func (f *FlowerView) Node() *Node {
	return f.node
}

// Spins returns the per-petal spin effects in layout order.
func (f *FlowerView) Spins() []*SpinEffect {
	return f.spins
}

// Core returns the core circle node.
func (f *FlowerView) Core() *Node {
	return f.core
}

// CoreOpacityTarget returns the alpha the core is at or animating toward.
func (f *FlowerView) CoreOpacityTarget() float64 {
	return f.state.CoreOpacity()
}

// SetState fades the core toward the new state's opacity.
func (f *FlowerView) SetState(s ToggleState) {
	if s == f.state {
		return
	}
	f.state = s
	f.coreFade = TweenAlpha(f.core, s.CoreOpacity(), DefaultTransition, ease.InOutQuad)
}

// Update advances petal spins and the core fade.
func (f *FlowerView) Update(dt float32) {
	for _, s := range f.spins {
		s.Update(dt)
	}
	if f.coreFade != nil {
		f.coreFade.Update(dt)
		if f.coreFade.Done {
			f.coreFade = nil
		}
	}
}
