package repository

import (
	"fmt"
	"strings"

	"github.com/jengzang/commit-heatmap-go/internal/database"
	"github.com/jengzang/commit-heatmap-go/internal/models"
	"github.com/jmoiron/sqlx"
)

// SeriesRepository handles database operations for daily counts
type SeriesRepository struct {
	db *sqlx.DB
}

// NewSeriesRepository creates a new series repository
func NewSeriesRepository(db *sqlx.DB) *SeriesRepository {
	return &SeriesRepository{db: db}
}

// GetSeries retrieves a source's daily counts in ascending date order.
// from and to are optional inclusive "YYYY-MM-DD" bounds.
func (r *SeriesRepository) GetSeries(source, from, to string) ([]models.DailyCount, error) {
	query := `SELECT day, count FROM daily_counts`

	conditions := []string{"source = ?"}
	args := []interface{}{source}

	if from != "" {
		conditions = append(conditions, "day >= ?")
		args = append(args, from)
	}
	if to != "" {
		conditions = append(conditions, "day <= ?")
		args = append(args, to)
	}

	query += " WHERE " + strings.Join(conditions, " AND ")
	query += " ORDER BY day ASC"

	var counts []models.DailyCount
	if err := r.db.Select(&counts, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query daily counts: %w", err)
	}

	return counts, nil
}

// UpsertCounts writes counts for a source, replacing existing days
func (r *SeriesRepository) UpsertCounts(source string, counts []models.DailyCount) (int, error) {
	query := r.db.Rebind(`INSERT INTO daily_counts (source, day, count) VALUES (?, ?, ?)
		ON CONFLICT (source, day) DO UPDATE SET count = excluded.count, updated_at = CURRENT_TIMESTAMP`)

	written := 0
	err := database.Transaction(r.db, func(tx *sqlx.Tx) error {
		stmt, err := tx.Preparex(query)
		if err != nil {
			return fmt.Errorf("failed to prepare upsert: %w", err)
		}
		defer stmt.Close()

		for _, c := range counts {
			if _, err := stmt.Exec(source, c.Date, c.Count); err != nil {
				return fmt.Errorf("failed to upsert %s/%s: %w", source, c.Date, err)
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return written, nil
}

// DeleteSeries removes every count of a source
func (r *SeriesRepository) DeleteSeries(source string) (int64, error) {
	res, err := r.db.Exec(r.db.Rebind("DELETE FROM daily_counts WHERE source = ?"), source)
	if err != nil {
		return 0, fmt.Errorf("failed to delete series: %w", err)
	}
	return res.RowsAffected()
}

// ListSources summarizes every stored source
func (r *SeriesRepository) ListSources() ([]models.SourceSummary, error) {
	query := `SELECT source, COUNT(*) AS days, MIN(day) AS first_day, MAX(day) AS last_day
		FROM daily_counts
		GROUP BY source
		ORDER BY source`

	var sources []models.SourceSummary
	if err := r.db.Select(&sources, query); err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}

	return sources, nil
}
