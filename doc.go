// Package bubble is an animated "like" toggle for [Ebitengine].
//
// A [BubbleButton] cycles through three states on every tap:
//
//	inactive → processing → active → inactive
//
// It draws a ring of spinning, semi-transparent petals around a gradient
// core circle, an icon, and a caption derived from the state ("TAP TO
// LIKE", "THANK YOU!", "TAP TO UNLIKE"). While processing, a swarm of
// hearts drifts upward, fades in and pulses; leaving processing eases them
// back to rest.
//
// # Quick start
//
//	layout := bubble.VisualConfiguration{
//		Petals: []bubble.PetalLayout{
//			bubble.NewPetalLayout(0, bubble.Vec2{X: 8, Y: -2}, 0.7),
//		},
//		Hearts: []bubble.HeartLayout{
//			bubble.NewHeartLayout(bubble.Rect{X: 15, Y: 20, Width: 30, Height: 30}, 0.3),
//		},
//	}
//	scheme := bubble.ColorScheme{
//		Inactive:      bubble.Hex(0xFFE4E1),
//		Processing:    bubble.Hex(0xFFE4E1),
//		Active:        bubble.Hex(0xFFE4E1),
//		GradientStart: bubble.Hex(0xFF1493),
//		GradientEnd:   bubble.Hex(0xFFA07A),
//	}
//	stage := bubble.NewStage(bubble.New(layout, scheme))
//	if err := bubble.Run(stage, bubble.RunConfig{Title: "Like"}); err != nil {
//		log.Fatal(err)
//	}
//
// To embed the button in an existing game, call [BubbleButton.Update] and
// [BubbleButton.Draw] from your own ebiten.Game, position it through
// [BubbleButton.Node], and call [BubbleButton.Tap] on input.
//
// # Rendering
//
// Every visual element is a [Node] in a small retained tree. Shapes are
// closed four-segment cubic Bézier [Path] values ([PetalPath], [HeartPath],
// [CirclePath], [ShieldPath]) tessellated with ebiten's vector package and
// filled with per-vertex [LinearGradient] colors. Animations are
// [TweenGroup] values built on [gween]; each component advances its own.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package bubble
