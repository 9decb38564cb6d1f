package bubble

import (
	"fmt"
	"strings"
)

// ToggleState is the three-way mode of a BubbleButton.
type ToggleState uint8

const (
	StateInactive   ToggleState = iota // not liked; taps start the like
	StateProcessing                    // transient "thank you" phase; hearts float
	StateActive                        // liked; taps unlike
)

// Next returns the state a tap advances to.
// The cycle is inactive → processing → active → inactive.
func (s ToggleState) Next() ToggleState {
	switch s {
	case StateInactive:
		return StateProcessing
	case StateProcessing:
		return StateActive
	default:
		return StateInactive
	}
}

// Label returns the button caption for the state.
func (s ToggleState) Label() string {
	switch s {
	case StateProcessing:
		return "THANK YOU!"
	case StateActive:
		return "TAP TO UNLIKE"
	default:
		return "TAP TO LIKE"
	}
}

// Foreground returns the icon and label color for the state.
func (s ToggleState) Foreground(scheme ColorScheme) Color {
	switch s {
	case StateProcessing:
		return scheme.Processing
	case StateActive:
		return scheme.Active
	default:
		return scheme.Inactive
	}
}

// CoreOpacity returns the alpha of the flower's core circle.
func (s ToggleState) CoreOpacity() float64 {
	if s == StateInactive {
		return 0.4
	}
	return 1
}

// IsFloating reports whether hearts float in this state. Only the
// processing state floats; active shows no hearts.
func (s ToggleState) IsFloating() bool {
	return s == StateProcessing
}

// String implements fmt.Stringer.
func (s ToggleState) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateProcessing:
		return "processing"
	case StateActive:
		return "active"
	default:
		return fmt.Sprintf("ToggleState(%d)", uint8(s))
	}
}

// ParseToggleState parses the String form of a state, case-insensitively.
// An empty string is an error.
func ParseToggleState(s string) (ToggleState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inactive":
		return StateInactive, nil
	case "processing":
		return StateProcessing, nil
	case "active":
		return StateActive, nil
	}
	return StateInactive, fmt.Errorf("bubble: unknown toggle state %q", s)
}
