// Package heatmap renders a calendar heatmap of day-over-day changes.
//
// Each day becomes a circle positioned by Monday-aligned week column and
// weekday row, colored by a diverging scale, with one block per year
// (most recent year first). Weekends are skipped but still occupy their
// place in the week.
package heatmap

import (
	"fmt"
	"strconv"

	"github.com/golang/geo/r2"
	"github.com/jengzang/commit-heatmap-go/internal/models"
	"github.com/jengzang/commit-heatmap-go/internal/svg"
)

// Style keeps the chart responsive inside its container
const Style = "max-width: 100%; height: auto; font: 10px sans-serif;"

// Builder renders series into a surface of an svg.Document
type Builder struct {
	Locale Locale
	Ramp   Ramp
}

// NewBuilder creates a builder with the PuOr ramp
func NewBuilder(locale Locale) *Builder {
	return &Builder{Locale: locale, Ramp: PuOr}
}

// Result exposes the derived data of a render. Scale can be reused for a legend.
type Result struct {
	Scale  *ColorScale
	Points []models.PairedPoint
	Groups []models.YearGroup
	Cells  []models.HeatmapCell
	Months []models.MonthLabel
	Bounds r2.Rect
}

// Build renders series into the element with id surfaceID.
//
// The surface gets its width, height, viewBox and style set and one <g> per
// year appended. Calling Build twice on the same surface appends twice.
// Fewer than two records produce no groups and a zero-height surface.
// The only error is a missing surface.
func (b *Builder) Build(series []models.DailyCount, doc *svg.Document, surfaceID string) (*Result, error) {
	surface, err := doc.GetElementByID(surfaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to locate surface: %w", err)
	}

	points := Pair(series)
	res := &Result{
		Scale:  ScaleFor(points, b.ramp()),
		Points: points,
		Groups: GroupByYear(points),
	}
	res.Bounds = SurfaceBounds(len(res.Groups))

	size := res.Bounds.Size()
	surface.
		Set("width", size.X).
		Set("height", size.Y).
		Set("viewBox", fmt.Sprintf("%s %s %s %s", num(res.Bounds.X.Lo), num(res.Bounds.Y.Lo), num(size.X), num(size.Y))).
		Set("style", Style)

	for i, group := range res.Groups {
		origin := GroupOrigin(i)
		year := surface.Append("g").
			Set("transform", fmt.Sprintf("translate(%s, %s)", num(origin.X), num(origin.Y)))

		year.Append("text").
			Set("x", -5).
			Set("y", -5).
			Set("font-weight", "bold").
			Set("text-anchor", "end").
			SetText(strconv.Itoa(group.Year))

		b.emitCells(year.Append("g"), group, res)
		b.emitMonths(year.Append("g"), group, res)
	}

	return res, nil
}

func (b *Builder) emitCells(parent *svg.Element, group models.YearGroup, res *Result) {
	for _, p := range group.Points {
		if IsWeekend(p.Date) {
			continue
		}

		center := CellCenter(p.Date)
		cell := models.HeatmapCell{
			Year:   group.Year,
			Date:   FormatDate(p.Date),
			Value:  p.Value,
			Column: WeekColumn(p.Date),
			Row:    WeekdayRow(p.Date),
			X:      center.X,
			Y:      center.Y,
			Fill:   res.Scale.Hex(float64(p.Value)),
			Title:  Tooltip(p.Date, p.Value),
		}
		res.Cells = append(res.Cells, cell)

		parent.Append("circle").
			Set("r", Radius).
			Set("cx", cell.X).
			Set("cy", cell.Y).
			Set("fill", cell.Fill).
			Append("title").SetText(cell.Title)
	}
}

func (b *Builder) emitMonths(parent *svg.Element, group models.YearGroup, res *Result) {
	first := group.Points[0].Date
	last := group.Points[len(group.Points)-1].Date

	for _, m := range MonthsBetween(first, last) {
		label := models.MonthLabel{
			Year:  group.Year,
			Month: int(m.Month()),
			X:     float64(MonthColumn(m)*CellSize + 2),
			Text:  b.locale().MonthAbbrev(m.Month()),
		}
		res.Months = append(res.Months, label)

		parent.Append("g").
			Append("text").
			Set("x", label.X).
			Set("y", -8).
			SetText(label.Text)
	}
}

func (b *Builder) locale() Locale {
	if b.Locale.Name == "" {
		return English
	}
	return b.Locale
}

func (b *Builder) ramp() Ramp {
	if len(b.Ramp) == 0 {
		return PuOr
	}
	return b.Ramp
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
