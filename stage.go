package bubble

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
)

// Stage hosts a BubbleButton as an ebiten.Game. It centers the button in
// the screen, turns pointer and touch input into taps, and runs optional
// scripted input and screenshots.
type Stage struct {
	// ClearColor fills the screen before the button is drawn.
	ClearColor Color
	// Scale is the button's display scale (default 1).
	Scale float64
	// ShowFPS draws the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// ScreenshotDir receives PNGs queued with Screenshot.
	ScreenshotDir string
	// ExitOnScriptDone ends Run once an attached TestRunner finishes.
	ExitOnScriptDone bool
	// Logger receives tap, state and screenshot events. Defaults to a no-op.
	Logger zerolog.Logger

	button *BubbleButton
	width  int
	height int

	pointers  [maxPointers]pointerState
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	touchIDs  []ebiten.TouchID

	injectQueue     []syntheticPointerEvent
	screenshotQueue []string
	shots           int
	testRunner      *TestRunner
}

// NewStage creates a stage hosting button.
func NewStage(button *BubbleButton) *Stage {
	s := &Stage{
		Scale:         1,
		ScreenshotDir: "screenshots",
		Logger:        zerolog.Nop(),
		button:        button,
	}
	button.OnChange(func(from, to ToggleState) {
		s.Logger.Info().Stringer("from", from).Stringer("to", to).Str("label", to.Label()).Msg("toggle")
	})
	return s
}

// Button returns the hosted button.
func (s *Stage) Button() *BubbleButton {
	return s.button
}

// SetTestRunner attaches a TestRunner. Its step runs at the start of every
// Update, before input is processed.
func (s *Stage) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Update implements ebiten.Game.
func (s *Stage) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	if !s.advance(dt) {
		s.processMousePointer()
	}
	s.processTouchPointers()

	if s.ExitOnScriptDone && s.testRunner != nil && s.testRunner.Done() && len(s.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

// advance runs one frame of scripted input and animation. It reports whether
// an injected pointer event was consumed.
func (s *Stage) advance(dt float32) bool {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	injected := s.processInjectedInput()
	s.button.Update(dt)
	return injected
}

// Draw implements ebiten.Game.
func (s *Stage) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.RGBA())
	s.button.Draw(screen)
	if s.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	s.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The button is re-centered whenever the
// outside size changes.
func (s *Stage) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.width || outsideHeight != s.height {
		s.width, s.height = outsideWidth, outsideHeight
		s.placeButton()
	}
	return outsideWidth, outsideHeight
}

// placeButton centers the scaled button frame in the screen.
func (s *Stage) placeButton() {
	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}
	root := s.button.Node()
	c := ButtonFrame.Center()
	root.SetPivot(c.X, c.Y)
	root.SetScale(scale, scale)
	root.SetPosition(float64(s.width)/2, float64(s.height)/2)
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// Run opens a window and runs the stage until the window closes or an
// attached script completes with ExitOnScriptDone set.
func Run(stage *Stage, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 480
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title == "" {
		cfg.Title = "Bubble"
	}
	stage.ShowFPS = stage.ShowFPS || cfg.ShowFPS

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	stage.Logger.Info().Int("width", cfg.Width).Int("height", cfg.Height).Msg("starting")
	if err := ebiten.RunGame(stage); err != nil {
		return fmt.Errorf("bubble: run: %w", err)
	}
	return nil
}
