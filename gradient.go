package bubble

// LinearGradient blends two colors along the line from Start to End.
// Both points are in unit space of the filled node's Frame: (0, 0) is the
// frame's top-left corner and (1, 1) its bottom-right. Points may lie
// outside the frame; colors are clamped beyond either end.
type LinearGradient struct {
	From, To   Color
	Start, End Vec2
}

// Gradient direction shared by petals and hearts.
var (
	PetalGradientStart = Vec2{X: -0.49, Y: 0.5}
	PetalGradientEnd   = Vec2{X: 0.4, Y: 1.59}
)

// NewPetalGradient returns the diagonal gradient used by petals and hearts.
func NewPetalGradient(scheme ColorScheme) *LinearGradient {
	return &LinearGradient{
		From:  scheme.GradientStart,
		To:    scheme.GradientEnd,
		Start: PetalGradientStart,
		End:   PetalGradientEnd,
	}
}

// NewCoreGradient returns the petal gradient with its direction reversed.
func NewCoreGradient(scheme ColorScheme) *LinearGradient {
	return &LinearGradient{
		From:  scheme.GradientStart,
		To:    scheme.GradientEnd,
		Start: PetalGradientEnd,
		End:   PetalGradientStart,
	}
}

// At returns the color at unit-space point (u, v).
func (g *LinearGradient) At(u, v float64) Color {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	den := dx*dx + dy*dy
	if den == 0 {
		return g.From
	}
	t := ((u-g.Start.X)*dx + (v-g.Start.Y)*dy) / den
	return g.From.Lerp(g.To, t)
}

// atLocal maps a node-local point into frame unit space and samples.
// A degenerate frame samples at its origin.
func (g *LinearGradient) atLocal(frame Rect, x, y float64) Color {
	var u, v float64
	if frame.Width != 0 {
		u = (x - frame.X) / frame.Width
	}
	if frame.Height != 0 {
		v = (y - frame.Y) / frame.Height
	}
	return g.At(u, v)
}
