package heatmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestWeekdayRow(t *testing.T) {
	assert.Equal(t, 0, WeekdayRow(day(t, "2020-01-06"))) // Monday
	assert.Equal(t, 4, WeekdayRow(day(t, "2020-01-10"))) // Friday
	assert.Equal(t, 5, WeekdayRow(day(t, "2020-01-11"))) // Saturday
	assert.Equal(t, 6, WeekdayRow(day(t, "2020-01-12"))) // Sunday
}

func TestIsWeekend(t *testing.T) {
	assert.False(t, IsWeekend(day(t, "2020-01-10")))
	assert.True(t, IsWeekend(day(t, "2020-01-11")))
	assert.True(t, IsWeekend(day(t, "2020-01-12")))
}

func TestWeekColumn(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2020-01-01", 0}, // Wednesday, week started 2019-12-30
		{"2020-01-05", 0},
		{"2020-01-06", 1},
		{"2020-12-31", 52},
		{"2018-01-01", 0}, // year starts on a Monday
		{"2018-01-08", 1},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekColumn(day(t, tt.date)))
		})
	}
}

func TestMondayCeil(t *testing.T) {
	assert.Equal(t, day(t, "2021-02-01"), MondayCeil(day(t, "2021-02-01")))
	assert.Equal(t, day(t, "2021-01-04"), MondayCeil(day(t, "2021-01-01")))
}

func TestMonthColumn(t *testing.T) {
	assert.Equal(t, 1, MonthColumn(day(t, "2021-01-01")))
	assert.Equal(t, 5, MonthColumn(day(t, "2021-02-01")))
	assert.Equal(t, 0, MonthColumn(day(t, "2018-01-01")))
}

func TestMonthsBetween(t *testing.T) {
	months := MonthsBetween(day(t, "2020-11-15"), day(t, "2021-02-01"))
	require.Len(t, months, 4)
	assert.Equal(t, day(t, "2020-11-01"), months[0])
	assert.Equal(t, day(t, "2021-02-01"), months[3])

	assert.Len(t, MonthsBetween(day(t, "2020-03-10"), day(t, "2020-03-20")), 1)
}

func TestSurfaceBounds(t *testing.T) {
	size := SurfaceBounds(3).Size()
	assert.Equal(t, 928.0, size.X)
	assert.Equal(t, 288.0, size.Y)
}

func TestCellCenter(t *testing.T) {
	p := CellCenter(day(t, "2020-01-08")) // Wednesday of column 1
	assert.Equal(t, 12.5, p.X)
	assert.Equal(t, 24.5, p.Y)
}
