package heatmap

import (
	"time"

	"github.com/golang/geo/r2"
)

const (
	// Width is the fixed pixel width of the chart
	Width = 928
	// CellSize is the height of a day row and width of a week column
	CellSize = 12
	// BlockHeight is the height of one year block (5 weekday rows plus padding)
	BlockHeight = CellSize * 8
	// Radius of a day mark
	Radius = CellSize/2 - 2

	gutter       = 40.5 // room for the year label
	groupPadding = CellSize * 1.5
	cellOffset   = 0.5
)

const week = 7 * 24 * time.Hour

// DayFloor truncates t to UTC midnight
func DayFloor(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// YearStart returns January 1st of t's year
func YearStart(t time.Time) time.Time {
	return time.Date(t.UTC().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day of t's month
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// WeekdayRow maps Monday=0 ... Sunday=6
func WeekdayRow(t time.Time) int {
	return (int(t.UTC().Weekday()) + 6) % 7
}

// IsWeekend reports whether t falls on Saturday or Sunday
func IsWeekend(t time.Time) bool {
	wd := t.UTC().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MondayFloor returns the Monday on or before t
func MondayFloor(t time.Time) time.Time {
	d := DayFloor(t)
	return d.AddDate(0, 0, -WeekdayRow(d))
}

// MondayCeil returns the Monday on or after t
func MondayCeil(t time.Time) time.Time {
	d := DayFloor(t)
	f := MondayFloor(d)
	if f.Equal(d) {
		return f
	}
	return f.AddDate(0, 0, 7)
}

// WeekCount counts Monday boundaries between start and end
func WeekCount(start, end time.Time) int {
	return int(MondayFloor(end).Sub(MondayFloor(start)) / week)
}

// WeekColumn is the week column of t within its calendar year
func WeekColumn(t time.Time) int {
	return WeekCount(YearStart(t), t)
}

// MonthColumn is the column of the first Monday-aligned week of a month
func MonthColumn(monthStart time.Time) int {
	return WeekCount(YearStart(monthStart), MondayCeil(monthStart))
}

// MonthsBetween lists month starts from first's month through last's month
func MonthsBetween(first, last time.Time) []time.Time {
	var months []time.Time
	end := MonthStart(last)
	for m := MonthStart(first); !m.After(end); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}

// GroupOrigin is the translation of the i-th year block
func GroupOrigin(i int) r2.Point {
	return r2.Point{X: gutter, Y: float64(BlockHeight*i) + groupPadding}
}

// CellCenter is the centre of a day mark relative to its year block
func CellCenter(t time.Time) r2.Point {
	return r2.Point{
		X: float64(WeekColumn(t)*CellSize) + cellOffset,
		Y: float64(WeekdayRow(t)*CellSize) + cellOffset,
	}
}

// SurfaceBounds is the pixel extent of a chart with n year blocks
func SurfaceBounds(n int) r2.Rect {
	return r2.RectFromPoints(r2.Point{}, r2.Point{X: Width, Y: float64(BlockHeight * n)})
}
