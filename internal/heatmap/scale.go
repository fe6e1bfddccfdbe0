package heatmap

import (
	"fmt"
	"image/color"
	"math"

	"github.com/jengzang/commit-heatmap-go/internal/models"
	"github.com/jengzang/commit-heatmap-go/internal/stats"
)

// ClipQuantile is the quantile of |value| used as the scale extent.
// Values beyond it saturate to the end colors.
const ClipQuantile = 0.9975

// Ramp maps t in [0, 1] to a color by linear interpolation between stops
type Ramp []color.RGBA

// PuOr is the diverging orange/purple ramp: orange for negative change,
// purple for positive, near-white in the middle.
var PuOr = Ramp{
	{0x7f, 0x3b, 0x08, 255},
	{0xb3, 0x58, 0x06, 255},
	{0xe0, 0x82, 0x14, 255},
	{0xfd, 0xb8, 0x63, 255},
	{0xfe, 0xe0, 0xb6, 255},
	{0xf7, 0xf7, 0xf7, 255},
	{0xd8, 0xda, 0xeb, 255},
	{0xb2, 0xab, 0xd2, 255},
	{0x80, 0x73, 0xac, 255},
	{0x54, 0x27, 0x88, 255},
	{0x2d, 0x00, 0x4b, 255},
}

// At returns the color at position t (0-1), clamped
func (r Ramp) At(t float64) color.RGBA {
	if math.IsNaN(t) || t <= 0 {
		return r[0]
	}
	if t >= 1 {
		return r[len(r)-1]
	}

	idx := t * float64(len(r)-1)
	lower := int(idx)
	if lower >= len(r)-1 {
		return r[len(r)-1]
	}

	return lerp(r[lower], r[lower+1], idx-float64(lower))
}

func lerp(c1, c2 color.RGBA, t float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + t*(float64(b)-float64(a))))
	}
	return color.RGBA{R: mix(c1.R, c2.R), G: mix(c1.G, c2.G), B: mix(c1.B, c2.B), A: 255}
}

// ColorScale is a symmetric diverging scale over [-Max, +Max]
type ColorScale struct {
	Max  float64
	ramp Ramp
}

// NewColorScale creates a scale with the given extent.
// A zero extent yields a constant midpoint color.
func NewColorScale(max float64, ramp Ramp) *ColorScale {
	if max < 0 || math.IsNaN(max) {
		max = 0
	}
	return &ColorScale{Max: max, ramp: ramp}
}

// ScaleFor computes the clipped extent of points and builds the scale
func ScaleFor(points []models.PairedPoint, ramp Ramp) *ColorScale {
	return NewColorScale(Extent(points), ramp)
}

// Extent returns the ClipQuantile of |value| across all points.
// When the quantile clips every non-zero value away the largest |value| is
// used instead, so only an all-zero series has a zero extent.
func Extent(points []models.PairedPoint) float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = float64(p.Value)
	}
	abs := stats.Abs(values)

	extent := stats.Quantile(abs, ClipQuantile)
	if extent > 0 {
		return extent
	}
	for _, v := range abs {
		extent = math.Max(extent, v)
	}
	return extent
}

// Domain returns the scale's input extent
func (s *ColorScale) Domain() (float64, float64) {
	return -s.Max, s.Max
}

// Position maps v to [0, 1]; zero maps to exactly 0.5
func (s *ColorScale) Position(v float64) float64 {
	if s.Max == 0 {
		return 0.5
	}
	t := (v + s.Max) / (2 * s.Max)
	return math.Max(0, math.Min(1, t))
}

// At returns the color for v
func (s *ColorScale) At(v float64) color.RGBA {
	return s.ramp.At(s.Position(v))
}

// Hex returns the color for v as "#rrggbb"
func (s *ColorScale) Hex(v float64) string {
	return Hex(s.At(v))
}

// Hex formats c as "#rrggbb"
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
