package models

import "time"

// PairedPoint is the day-over-day change between two consecutive DailyCounts.
// Date is the later of the two days.
type PairedPoint struct {
	Date  time.Time `json:"date"`
	Value int       `json:"value"`
}

// YearGroup holds the paired points of one calendar year in input order
type YearGroup struct {
	Year   int           `json:"year"`
	Points []PairedPoint `json:"points"`
}

// HeatmapCell is a rendered day mark
type HeatmapCell struct {
	Year   int     `json:"year"`
	Date   string  `json:"date"`
	Value  int     `json:"value"`
	Column int     `json:"column"` // Monday-aligned week since Jan 1
	Row    int     `json:"row"`    // Monday=0 ... Friday=4
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Fill   string  `json:"fill"`
	Title  string  `json:"title"`
}

// MonthLabel is a rendered month heading
type MonthLabel struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	X     float64 `json:"x"`
	Text  string  `json:"text"`
}

// HeatmapResponse represents the heatmap layout API response
type HeatmapResponse struct {
	Source      string        `json:"source,omitempty"`
	Width       float64       `json:"width"`
	Height      float64       `json:"height"`
	ScaleMax    float64       `json:"scale_max"`
	Percentiles []float64     `json:"abs_change_percentiles"` // p50, p90, p99.75 of |value|
	Groups      []YearGroup   `json:"groups"`
	Cells       []HeatmapCell `json:"cells"`
	Months      []MonthLabel  `json:"months"`
	Count       int           `json:"count"`
}
