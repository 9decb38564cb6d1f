// Package preset loads button layouts and color schemes from YAML.
package preset

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/phanxgames/bubble"
	"gopkg.in/yaml.v3"
)

//go:embed vibrant.yaml
var vibrantYAML []byte

// Preset is a named layout and color scheme.
type Preset struct {
	Name   string
	Layout bubble.VisualConfiguration
	Scheme bubble.ColorScheme
}

// Color is a bubble.Color written as "#RRGGBB" or "#RRGGBBAA".
type Color bubble.Color

type file struct {
	Name   string      `yaml:"name"`
	Scheme schemeFile  `yaml:"scheme"`
	Petals []petalFile `yaml:"petals"`
	Hearts []heartFile `yaml:"hearts"`
}

type schemeFile struct {
	Inactive      Color `yaml:"inactive"`
	Processing    Color `yaml:"processing"`
	Active        Color `yaml:"active"`
	GradientStart Color `yaml:"gradient_start"`
	GradientEnd   Color `yaml:"gradient_end"`
}

type pointFile struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type rectFile struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type petalFile struct {
	Angle        float64   `yaml:"angle"`
	Displacement pointFile `yaml:"displacement"`
	SpinVelocity *float64  `yaml:"spin_velocity,omitempty"`
}

type heartFile struct {
	Area            rectFile `yaml:"area"`
	AppearanceDelay float64  `yaml:"appearance_delay"`
	LowestOpacity   float64  `yaml:"lowest_opacity,omitempty"`
	PeakOpacity     *float64 `yaml:"peak_opacity,omitempty"`
}

// Default returns the built-in "vibrant-energy" preset.
func Default() *Preset {
	p, err := Parse(vibrantYAML)
	if err != nil {
		panic(fmt.Sprintf("preset: embedded default: %v", err))
	}
	return p
}

// DefaultYAML returns the raw YAML of the built-in preset.
func DefaultYAML() []byte {
	return vibrantYAML
}

// Load reads and parses a preset file.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a preset. Petals without a positive spin_velocity spin at 1;
// hearts without peak_opacity peak at 1. Values are otherwise taken as given.
func Parse(data []byte) (*Preset, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}

	p := &Preset{
		Name: f.Name,
		Scheme: bubble.ColorScheme{
			Inactive:      bubble.Color(f.Scheme.Inactive),
			Processing:    bubble.Color(f.Scheme.Processing),
			Active:        bubble.Color(f.Scheme.Active),
			GradientStart: bubble.Color(f.Scheme.GradientStart),
			GradientEnd:   bubble.Color(f.Scheme.GradientEnd),
		},
	}

	for _, pf := range f.Petals {
		var velocity float64
		if pf.SpinVelocity != nil {
			velocity = *pf.SpinVelocity
		}
		p.Layout.Petals = append(p.Layout.Petals, bubble.NewPetalLayout(
			pf.Angle,
			bubble.Vec2{X: pf.Displacement.X, Y: pf.Displacement.Y},
			velocity,
		))
	}

	for _, hf := range f.Hearts {
		h := bubble.NewHeartLayout(bubble.Rect{
			X: hf.Area.X, Y: hf.Area.Y, Width: hf.Area.Width, Height: hf.Area.Height,
		}, hf.AppearanceDelay)
		h.LowestOpacity = hf.LowestOpacity
		if hf.PeakOpacity != nil {
			h.PeakOpacity = *hf.PeakOpacity
		}
		p.Layout.Hearts = append(p.Layout.Hearts, h)
	}

	return p, nil
}

// Marshal encodes p in the preset file format.
func Marshal(p *Preset) ([]byte, error) {
	f := file{
		Name: p.Name,
		Scheme: schemeFile{
			Inactive:      Color(p.Scheme.Inactive),
			Processing:    Color(p.Scheme.Processing),
			Active:        Color(p.Scheme.Active),
			GradientStart: Color(p.Scheme.GradientStart),
			GradientEnd:   Color(p.Scheme.GradientEnd),
		},
	}
	for _, pl := range p.Layout.Petals {
		v := pl.SpinVelocity
		f.Petals = append(f.Petals, petalFile{
			Angle:        pl.InitialAngle,
			Displacement: pointFile{X: pl.Displacement.X, Y: pl.Displacement.Y},
			SpinVelocity: &v,
		})
	}
	for _, hl := range p.Layout.Hearts {
		peak := hl.PeakOpacity
		f.Hearts = append(f.Hearts, heartFile{
			Area:            rectFile{X: hl.Area.X, Y: hl.Area.Y, Width: hl.Area.Width, Height: hl.Area.Height},
			AppearanceDelay: hl.AppearanceDelay,
			LowestOpacity:   hl.LowestOpacity,
			PeakOpacity:     &peak,
		})
	}
	out, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("marshal preset: %w", err)
	}
	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = Color(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return FormatHex(bubble.Color(c)), nil
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA". The leading '#' is optional.
func ParseHex(s string) (bubble.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return bubble.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return bubble.Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(h) == 6 {
		return bubble.Hex(uint32(v)), nil
	}
	c := bubble.Hex(uint32(v >> 8))
	c.A = float64(v&0xff) / 255
	return c, nil
}

// FormatHex formats c as "#RRGGBB", or "#RRGGBBAA" when not opaque.
func FormatHex(c bubble.Color) string {
	rgba := func(v float64) uint8 { return uint8(v*255 + 0.5) }
	s := fmt.Sprintf("#%02X%02X%02X", rgba(c.R), rgba(c.G), rgba(c.B))
	if c.A < 1 {
		s += fmt.Sprintf("%02X", rgba(c.A))
	}
	return s
}
