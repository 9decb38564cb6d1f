package bubble

import "github.com/hajimehoshi/ebiten/v2/vector"

// CubicSegment is one cubic Bézier curve from the previous end point to To.
type CubicSegment struct {
	C1, C2, To Vec2
}

// Path is a closed outline of four cubic Bézier segments. The last segment
// ends at Start. Path is a plain value: equal inputs produce == paths.
type Path struct {
	Start    Vec2
	Segments [4]CubicSegment
}

// Reference frame the petal outline was authored in.
const (
	petalRefW = 220.0
	petalRefH = 200.0
)

// kappa places cubic control points for a quarter-circle arc.
const kappa = 0.5522847498

// PetalPath returns the asymmetric lens outline scaled into r.
func PetalPath(r Rect) Path {
	pt := func(x, y float64) Vec2 {
		return Vec2{X: r.X + x/petalRefW*r.Width, Y: r.Y + y/petalRefH*r.Height}
	}
	return Path{
		Start: pt(220.08, 76),
		Segments: [4]CubicSegment{
			{C1: pt(220.08, 131.228), C2: pt(155.808, 200), To: pt(100.58, 200)},
			{C1: pt(45.3512, 200), C2: pt(0.58, 155.228), To: pt(0.58, 100)},
			{C1: pt(0.58, 44.7715), C2: pt(45.3512, 0), To: pt(100.58, 0)},
			{C1: pt(155.808, 0), C2: pt(220.08, 20.7715), To: pt(220.08, 76)},
		},
	}
}

// HeartPath returns a heart whose lobes meet at the top center and whose
// point touches the bottom edge of r.
func HeartPath(r Rect) Path {
	pt := func(fx, fy float64) Vec2 {
		return Vec2{X: r.X + fx*r.Width, Y: r.Y + fy*r.Height}
	}
	return Path{
		Start: pt(0.5, 0.25),
		Segments: [4]CubicSegment{
			{C1: pt(0.35, 0.1), C2: pt(0, 0.2), To: pt(0, 0.35)},
			{C1: pt(0, 0.6), C2: pt(0.25, 0.9), To: pt(0.5, 1)},
			{C1: pt(0.75, 0.9), C2: pt(1, 0.6), To: pt(1, 0.35)},
			{C1: pt(1, 0.2), C2: pt(0.65, 0.1), To: pt(0.5, 0.25)},
		},
	}
}

// CirclePath returns the ellipse inscribed in r.
func CirclePath(r Rect) Path {
	cx, cy := r.X+r.Width/2, r.Y+r.Height/2
	rx, ry := r.Width/2, r.Height/2
	kx, ky := rx*kappa, ry*kappa
	return Path{
		Start: Vec2{cx + rx, cy},
		Segments: [4]CubicSegment{
			{C1: Vec2{cx + rx, cy + ky}, C2: Vec2{cx + kx, cy + ry}, To: Vec2{cx, cy + ry}},
			{C1: Vec2{cx - kx, cy + ry}, C2: Vec2{cx - rx, cy + ky}, To: Vec2{cx - rx, cy}},
			{C1: Vec2{cx - rx, cy - ky}, C2: Vec2{cx - kx, cy - ry}, To: Vec2{cx, cy - ry}},
			{C1: Vec2{cx + kx, cy - ry}, C2: Vec2{cx + rx, cy - ky}, To: Vec2{cx + rx, cy}},
		},
	}
}

// ShieldPath returns the badge outline drawn above the label.
func ShieldPath(r Rect) Path {
	pt := func(fx, fy float64) Vec2 {
		return Vec2{X: r.X + fx*r.Width, Y: r.Y + fy*r.Height}
	}
	return Path{
		Start: pt(0.5, 0),
		Segments: [4]CubicSegment{
			{C1: pt(0.7, 0.1), C2: pt(0.88, 0.12), To: pt(1, 0.14)},
			{C1: pt(1, 0.6), C2: pt(0.82, 0.86), To: pt(0.5, 1)},
			{C1: pt(0.18, 0.86), C2: pt(0, 0.6), To: pt(0, 0.14)},
			{C1: pt(0.12, 0.12), C2: pt(0.3, 0.1), To: pt(0.5, 0)},
		},
	}
}

// Closed reports whether the last segment ends at Start.
func (p Path) Closed() bool {
	return p.Segments[len(p.Segments)-1].To == p.Start
}

// Bounds returns the bounding box of the start point and every control and
// end point. The curve lies within this box.
func (p Path) Bounds() Rect {
	minX, minY := p.Start.X, p.Start.Y
	maxX, maxY := minX, minY
	grow := func(v Vec2) {
		minX = min(minX, v.X)
		minY = min(minY, v.Y)
		maxX = max(maxX, v.X)
		maxY = max(maxY, v.Y)
	}
	for _, s := range p.Segments {
		grow(s.C1)
		grow(s.C2)
		grow(s.To)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Transform returns p with every point mapped through the affine matrix m.
func (p Path) Transform(m [6]float64) Path {
	tp := func(v Vec2) Vec2 {
		x, y := transformPoint(m, v.X, v.Y)
		return Vec2{x, y}
	}
	out := Path{Start: tp(p.Start)}
	for i, s := range p.Segments {
		out.Segments[i] = CubicSegment{C1: tp(s.C1), C2: tp(s.C2), To: tp(s.To)}
	}
	return out
}

// appendTo writes p into a vector path.
func (p Path) appendTo(vp *vector.Path) {
	vp.MoveTo(float32(p.Start.X), float32(p.Start.Y))
	for _, s := range p.Segments {
		vp.CubicTo(
			float32(s.C1.X), float32(s.C1.Y),
			float32(s.C2.X), float32(s.C2.Y),
			float32(s.To.X), float32(s.To.Y),
		)
	}
	vp.Close()
}
