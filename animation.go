package bubble

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RepeatForever makes a TweenGroup loop until it is discarded.
const RepeatForever = -1

// DefaultTransition is the duration of state-change animations, in seconds.
const DefaultTransition float32 = 0.35

// Field pairs a float64 with the value a tween drives it to.
type Field struct {
	Ptr *float64
	To  float64
}

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via NewTweenGroup or the convenience constructors (TweenPosition,
// TweenScale, TweenColor, TweenAlpha, TweenRotation) and call Update(dt) each
// frame. The group auto-applies values and marks the node dirty. If the
// target node is disposed, the group stops immediately.
//
// Delay holds the group at its start values before the first cycle. Repeat
// counts extra cycles (RepeatForever loops without end). Each repeated cycle
// restarts from the start values unless Yoyo is set, in which case cycles
// alternate direction. The first cycle always begins at the fields' current
// values; LoopFrom changes where later cycles begin.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	from   [4]float32
	to     [4]float32
	target *Node

	duration float32
	fn       ease.TweenFunc

	Delay  float32
	Repeat int
	Yoyo   bool

	reversed bool
	Done     bool
}

// NewTweenGroup creates a TweenGroup that animates each field from its
// current value to Field.To. Fields past the fourth are ignored.
func NewTweenGroup(target *Node, duration float32, fn ease.TweenFunc, fields ...Field) *TweenGroup {
	g := &TweenGroup{target: target, duration: duration, fn: fn}
	for _, f := range fields {
		if g.count == len(g.fields) {
			break
		}
		i := g.count
		g.fields[i] = f.Ptr
		g.from[i] = float32(*f.Ptr)
		g.to[i] = float32(f.To)
		g.tweens[i] = gween.New(g.from[i], g.to[i], duration, fn)
		g.count++
	}
	return g
}

// Loop sets the group to repeat forever and returns it.
func (g *TweenGroup) Loop(yoyo bool) *TweenGroup {
	g.Repeat = RepeatForever
	g.Yoyo = yoyo
	return g
}

// LoopFrom sets the value field i starts from in every cycle after the
// first (and returns to, with Yoyo). It returns the group.
func (g *TweenGroup) LoopFrom(i int, v float64) *TweenGroup {
	if i >= 0 && i < g.count {
		g.from[i] = float32(v)
	}
	return g
}

// After sets the start delay in seconds and returns the group.
func (g *TweenGroup) After(delay float32) *TweenGroup {
	g.Delay = delay
	return g
}

// Target returns the value field i is heading to in the current cycle.
func (g *TweenGroup) Target(i int) float64 {
	if g.reversed {
		return float64(g.from[i])
	}
	return float64(g.to[i])
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	if g.Delay > 0 {
		if dt <= g.Delay {
			g.Delay -= dt
			return
		}
		dt -= g.Delay
		g.Delay = 0
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}

	if allDone {
		g.nextCycle()
	}

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// nextCycle restarts the tweens for another repetition or marks the group done.
func (g *TweenGroup) nextCycle() {
	if g.Repeat == 0 {
		g.Done = true
		return
	}
	if g.Repeat > 0 {
		g.Repeat--
	}
	if g.Yoyo {
		g.reversed = !g.reversed
	}
	for i := 0; i < g.count; i++ {
		begin, end := g.from[i], g.to[i]
		if g.reversed {
			begin, end = end, begin
		}
		g.tweens[i] = gween.New(begin, end, g.duration, g.fn)
	}
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(node, duration, fn,
		Field{&node.X, toX},
		Field{&node.Y, toY},
	)
}

// TweenScale creates a TweenGroup that animates node.ScaleX and node.ScaleY to
// the given target values over the specified duration using the easing function.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(node, duration, fn,
		Field{&node.ScaleX, toSX},
		Field{&node.ScaleY, toSY},
	)
}

// TweenColor creates a TweenGroup that animates all four components of
// node.Color (R, G, B, A) to the target color over the specified duration.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(node, duration, fn,
		Field{&node.Color.R, to.R},
		Field{&node.Color.G, to.G},
		Field{&node.Color.B, to.B},
		Field{&node.Color.A, to.A},
	)
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(node, duration, fn, Field{&node.Alpha, to})
}

// TweenRotation creates a TweenGroup that animates node.Rotation to the target
// value over the specified duration using the easing function.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(node, duration, fn, Field{&node.Rotation, to})
}
