package bubble

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxPointers bounds tracked pointers: 0 is the mouse, 1-9 are touches.
const maxPointers = 10

// pointerState tracks one pointer between press and release. A tap is a
// press and a release that both land on the button.
type pointerState struct {
	down    bool
	startX  float64
	startY  float64
	onPress bool // press landed on the button
}

// processMousePointer handles mouse input (pointer 0).
func (s *Stage) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Stage) processTouchPointers() {
	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	for _, tid := range s.touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		x, y := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(x), float64(y), true)
	}

	for slot := 1; slot < maxPointers; slot++ {
		if !s.touchUsed[slot] {
			continue
		}
		tid := s.touchMap[slot]
		if !inpututil.IsTouchJustReleased(tid) {
			continue
		}
		x, y := inpututil.TouchPositionInPreviousTick(tid)
		s.processPointer(slot, float64(x), float64(y), false)
		s.touchUsed[slot] = false
	}
}

// touchSlot returns the pointer slot assigned to tid, assigning a free one
// if needed. Returns -1 when every slot is taken.
func (s *Stage) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer advances one pointer's press/release state and taps the
// button when a press and its release both land on it.
func (s *Stage) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &s.pointers[pointerID]
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.onPress = s.button.Contains(x, y)
	case !pressed && ps.down:
		ps.down = false
		if ps.onPress && s.button.Contains(x, y) {
			s.Logger.Debug().Int("pointer", pointerID).Float64("x", x).Float64("y", y).Msg("tap")
			s.button.Tap()
		}
		ps.onPress = false
	}
}
