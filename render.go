package bubble

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// --- White pixel singleton (single-threaded, no sync.Once) ---

var whiteImage *ebiten.Image

// ensureWhitePixel returns the center pixel of a lazily-created 3x3 white
// image. Sampling the center keeps antialiased edges from bleeding in
// transparent texels.
func ensureWhitePixel() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteImage
}

// Renderer draws a node tree. It keeps its vertex and index buffers between
// frames, growing them to the high-water mark.
type Renderer struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

// Draw refreshes root's world transforms and draws its subtree to dst.
// Parents draw before children; siblings in order.
func (r *Renderer) Draw(dst *ebiten.Image, root *Node) {
	updateWorldTransform(root, identityTransform, 1, false)
	r.drawNode(dst, root)
}

func (r *Renderer) drawNode(dst *ebiten.Image, n *Node) {
	if !n.Visible || n.disposed || n.worldAlpha <= 0 {
		return
	}
	switch n.Type {
	case NodeTypeShape:
		r.fillShape(dst, n)
	case NodeTypeText:
		drawText(dst, n)
	}
	for _, c := range n.children {
		r.drawNode(dst, c)
	}
}

// fillShape tessellates the node's path in world space and fills it with
// per-vertex colors sampled from the node's paint.
func (r *Renderer) fillShape(dst *ebiten.Image, n *Node) {
	inv, ok := invertAffine(n.worldTransform)
	if !ok {
		return
	}

	var vp vector.Path
	n.Shape.Transform(n.worldTransform).appendTo(&vp)
	r.vertices, r.indices = vp.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	if len(r.indices) == 0 {
		return
	}

	src := ensureWhitePixel()
	b := src.Bounds()
	sx := float32(b.Min.X) + 0.5
	sy := float32(b.Min.Y) + 0.5

	alpha := n.worldAlpha
	for i := range r.vertices {
		v := &r.vertices[i]
		c := n.Color
		if n.Gradient != nil {
			lx, ly := transformPoint(inv, float64(v.DstX), float64(v.DstY))
			g := n.Gradient.atLocal(n.Frame, lx, ly)
			c = Color{g.R * c.R, g.G * c.G, g.B * c.B, g.A * c.A}
		}
		a := float32(c.A * alpha)
		v.SrcX, v.SrcY = sx, sy
		v.ColorR = float32(c.R) * a
		v.ColorG = float32(c.G) * a
		v.ColorB = float32(c.B) * a
		v.ColorA = a
	}

	dst.DrawTriangles(r.vertices, r.indices, src, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	})
}

// drawText draws the node's text centered horizontally on its origin.
func drawText(dst *ebiten.Image, n *Node) {
	if n.Text == "" {
		return
	}
	f := n.Font
	if f == nil {
		f = LabelFont()
	}
	op := &text.DrawOptions{}
	op.GeoM = toGeoM(n.worldTransform)
	op.ColorScale.ScaleWithColor(n.Color.WithAlpha(n.Color.A * n.worldAlpha).RGBA())
	op.LineSpacing = f.lh
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, n.Text, f.face, op)
}

// toGeoM converts an affine matrix to an ebiten.GeoM.
func toGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
