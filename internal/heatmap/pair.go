package heatmap

import (
	"sort"

	"github.com/jengzang/commit-heatmap-go/internal/models"
)

// Pair converts a chronological series into day-over-day changes.
// n records yield n-1 points; the first record only serves as a baseline.
// Records whose date does not parse are dropped before pairing.
func Pair(series []models.DailyCount) []models.PairedPoint {
	type parsed struct {
		count int
		point models.PairedPoint
	}

	valid := make([]parsed, 0, len(series))
	for _, rec := range series {
		d, err := ParseDate(rec.Date)
		if err != nil {
			continue
		}
		valid = append(valid, parsed{count: rec.Count, point: models.PairedPoint{Date: d}})
	}

	if len(valid) < 2 {
		return nil
	}

	points := make([]models.PairedPoint, 0, len(valid)-1)
	for i := 1; i < len(valid); i++ {
		p := valid[i].point
		p.Value = valid[i].count - valid[i-1].count
		points = append(points, p)
	}
	return points
}

// GroupByYear partitions points by calendar year. Points keep their input
// order inside a group; groups are ordered by year, most recent first.
func GroupByYear(points []models.PairedPoint) []models.YearGroup {
	index := make(map[int]int)
	var groups []models.YearGroup

	for _, p := range points {
		year := p.Date.Year()
		i, ok := index[year]
		if !ok {
			i = len(groups)
			index[year] = i
			groups = append(groups, models.YearGroup{Year: year})
		}
		groups[i].Points = append(groups[i].Points, p)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Year > groups[j].Year
	})
	return groups
}
