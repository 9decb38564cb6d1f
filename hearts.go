package bubble

// FloatingHearts owns one HeartAnimator per layout entry. All hearts share
// a single floating flag derived from the toggle state.
type FloatingHearts struct {
	node     *Node
	hearts   []*HeartAnimator
	floating bool
}

// NewFloatingHearts builds the hearts for layout. Hearts start floating if
// state is processing.
func NewFloatingHearts(layout VisualConfiguration, scheme ColorScheme, state ToggleState) *FloatingHearts {
	fh := &FloatingHearts{node: NewContainer("hearts"), floating: state.IsFloating()}
	for _, hl := range layout.Hearts {
		h := NewHeartAnimator(hl, scheme, ButtonFrame, fh.floating)
		fh.node.AddChild(h.Node())
		fh.hearts = append(fh.hearts, h)
	}
	return fh
}

// Node returns the container holding every heart.
func (fh *FloatingHearts) Node() *Node {
	return fh.node
}

// Hearts returns the animators in layout order.
func (fh *FloatingHearts) Hearts() []*HeartAnimator {
	return fh.hearts
}

// IsFloating reports the shared floating flag.
func (fh *FloatingHearts) IsFloating() bool {
	return fh.floating
}

// SetState recomputes the floating flag and forwards changes to every heart.
func (fh *FloatingHearts) SetState(s ToggleState) {
	floating := s.IsFloating()
	if floating == fh.floating {
		return
	}
	fh.floating = floating
	for _, h := range fh.hearts {
		h.SetFloating(floating)
	}
}

// SetRand sets the randomness source for every heart.
func (fh *FloatingHearts) SetRand(r Rand) {
	for _, h := range fh.hearts {
		h.SetRand(r)
	}
}

// Update advances every heart.
func (fh *FloatingHearts) Update(dt float32) {
	for _, h := range fh.hearts {
		h.Update(dt)
	}
}
