package models

// DailyCount is one day of activity for a source. Date is "YYYY-MM-DD".
type DailyCount struct {
	Date  string `json:"date" db:"day"`
	Count int    `json:"count" db:"count"`
}

// SourceSummary describes the stored series of one source
type SourceSummary struct {
	Source   string `json:"source" db:"source"`
	Days     int    `json:"days" db:"days"`
	FirstDay string `json:"first_day" db:"first_day"`
	LastDay  string `json:"last_day" db:"last_day"`
}

// IngestRequest is the body of POST /api/v1/series/:source
type IngestRequest struct {
	Counts []DailyCount `json:"counts" binding:"required"`
}

// DeleteResult reports how many days were removed from a source
type DeleteResult struct {
	Source  string `json:"source"`
	Deleted int64  `json:"deleted"`
}

// IngestResult reports how many rows were written
type IngestResult struct {
	Source  string `json:"source"`
	Written int    `json:"written"`
	Skipped int    `json:"skipped"`
}
