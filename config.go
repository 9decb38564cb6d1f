package bubble

// ColorScheme holds the five colors a BubbleButton draws with.
// Inactive, Processing and Active tint the icon and label; the gradient
// pair fills petals, hearts and the core circle.
type ColorScheme struct {
	Inactive      Color
	Processing    Color
	Active        Color
	GradientStart Color
	GradientEnd   Color
}

// VisualConfiguration is the declarative layout of a BubbleButton.
// Either slice may be empty.
type VisualConfiguration struct {
	Petals []PetalLayout
	Hearts []HeartLayout
}

// PetalLayout places one spinning petal.
type PetalLayout struct {
	InitialAngle float64 // degrees
	Displacement Vec2
	SpinVelocity float64 // seconds per turn, divided by 3.5; <= 0 means 1
}

// NewPetalLayout returns a petal with the given placement.
// A non-positive velocity falls back to 1.
func NewPetalLayout(angle float64, displacement Vec2, velocity float64) PetalLayout {
	return PetalLayout{InitialAngle: angle, Displacement: displacement, SpinVelocity: spinVelocity(velocity)}
}

func spinVelocity(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}

// HeartLayout places one floating heart.
type HeartLayout struct {
	Area            Rect
	AppearanceDelay float64 // seconds, halved before the drift starts
	LowestOpacity   float64 // opacity each repeated drift cycle starts from
	PeakOpacity     float64
}

// NewHeartLayout returns a heart that peaks at full opacity.
func NewHeartLayout(area Rect, delay float64) HeartLayout {
	return HeartLayout{Area: area, AppearanceDelay: delay, PeakOpacity: 1}
}

// WithPeakOpacity returns h with PeakOpacity set.
func (h HeartLayout) WithPeakOpacity(peak float64) HeartLayout {
	h.PeakOpacity = peak
	return h
}
