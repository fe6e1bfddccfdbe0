package models

// SeriesFilter represents query parameters for heatmap endpoints
type SeriesFilter struct {
	From   string `form:"from"`   // YYYY-MM-DD, inclusive
	To     string `form:"to"`     // YYYY-MM-DD, inclusive
	Locale string `form:"locale"` // en, zh
}

// LegendFilter represents query parameters for the legend endpoint
type LegendFilter struct {
	SeriesFilter
	Width int `form:"width"`
	Ticks int `form:"ticks"`
}

// RenderRequest is the body of POST /api/v1/heatmap/render
type RenderRequest struct {
	Counts    []DailyCount `json:"counts" binding:"required"`
	SurfaceID string       `json:"surface_id"`
	Locale    string       `json:"locale"`
}
