package heatmap

import (
	"fmt"
	"math"

	"github.com/jengzang/commit-heatmap-go/internal/svg"
)

// Legend defaults
const (
	DefaultLegendWidth = 320
	DefaultLegendTicks = 5
)

const (
	legendHeight    = 44
	legendBarHeight = 10
	legendMarginX   = 16
	legendSteps     = 64
)

// Legend draws the scale as a horizontal ramp with signed tick labels into
// the element with id surfaceID.
func (s *ColorScale) Legend(doc *svg.Document, surfaceID string, width, ticks int) error {
	surface, err := doc.GetElementByID(surfaceID)
	if err != nil {
		return fmt.Errorf("failed to locate legend surface: %w", err)
	}
	if width <= 2*legendMarginX {
		width = DefaultLegendWidth
	}
	if ticks < 2 {
		ticks = DefaultLegendTicks
	}

	surface.
		Set("width", width).
		Set("height", legendHeight).
		Set("viewBox", fmt.Sprintf("0 0 %d %d", width, legendHeight)).
		Set("style", Style)

	inner := float64(width - 2*legendMarginX)
	step := inner / legendSteps
	bar := surface.Append("g").Set("transform", fmt.Sprintf("translate(%d, 8)", legendMarginX))
	for i := 0; i < legendSteps; i++ {
		t := (float64(i) + 0.5) / legendSteps
		bar.Append("rect").
			Set("x", float64(i)*step).
			Set("y", 0).
			Set("width", step+0.5).
			Set("height", legendBarHeight).
			Set("fill", Hex(s.ramp.At(t)))
	}

	lo, hi := s.Domain()
	axis := surface.Append("g").Set("transform", fmt.Sprintf("translate(%d, %d)", legendMarginX, 8+legendBarHeight+14))
	for i := 0; i < ticks; i++ {
		frac := float64(i) / float64(ticks-1)
		v := lo + frac*(hi-lo)
		axis.Append("text").
			Set("x", frac*inner).
			Set("text-anchor", "middle").
			SetText(FormatChange(int(math.Round(v))))
	}

	return nil
}
