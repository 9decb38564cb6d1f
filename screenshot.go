package bubble

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a capture of the next drawn frame. The file name carries
// a timestamp, a per-stage sequence number, the toggle state at capture time
// and the label.
func (s *Stage) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// flushScreenshots writes one PNG per queued label from the finished frame.
// Errors are logged and the queue is always emptied.
func (s *Stage) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		s.Logger.Error().Err(err).Str("dir", s.ScreenshotDir).Msg("screenshot")
		return
	}

	// Premultiplied, same layout as image.RGBA.
	frame := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(frame.Pix)

	stamp := time.Now().Format("20060102_150405")
	state := s.button.State()
	for _, label := range s.screenshotQueue {
		s.shots++
		path := filepath.Join(s.ScreenshotDir, shotName(stamp, s.shots, state, label))
		if err := writePNG(path, frame); err != nil {
			s.Logger.Error().Err(err).Msg("screenshot")
			continue
		}
		s.Logger.Info().Str("path", path).Stringer("state", state).Msg("screenshot")
	}
}

// shotName builds "<stamp>_<seq>_<state>_<label>.png".
func shotName(stamp string, seq int, state ToggleState, label string) string {
	return fmt.Sprintf("%s_%03d_%s_%s.png", stamp, seq, state, sanitizeLabel(label))
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', maps everything
// else to '_', and names blank labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
