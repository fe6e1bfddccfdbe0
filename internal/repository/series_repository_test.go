package repository

import (
	"path/filepath"
	"testing"

	"github.com/jengzang/commit-heatmap-go/internal/database"
	"github.com/jengzang/commit-heatmap-go/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conn, err := database.Open(database.Config{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "series.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, database.NewMigrationManager(conn).RunMigrations())
	return conn
}

func TestSeriesRepository_UpsertAndGet(t *testing.T) {
	repo := NewSeriesRepository(newTestDB(t))

	n, err := repo.UpsertCounts("repo-a", []models.DailyCount{
		{Date: "2020-01-03", Count: 9},
		{Date: "2020-01-01", Count: 10},
		{Date: "2020-01-02", Count: 12},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	counts, err := repo.GetSeries("repo-a", "", "")
	require.NoError(t, err)
	assert.Equal(t, []models.DailyCount{
		{Date: "2020-01-01", Count: 10},
		{Date: "2020-01-02", Count: 12},
		{Date: "2020-01-03", Count: 9},
	}, counts)
}

func TestSeriesRepository_UpsertReplaces(t *testing.T) {
	repo := NewSeriesRepository(newTestDB(t))

	_, err := repo.UpsertCounts("repo-a", []models.DailyCount{{Date: "2020-01-01", Count: 1}})
	require.NoError(t, err)
	_, err = repo.UpsertCounts("repo-a", []models.DailyCount{{Date: "2020-01-01", Count: 7}})
	require.NoError(t, err)

	counts, err := repo.GetSeries("repo-a", "", "")
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, 7, counts[0].Count)
}

func TestSeriesRepository_RangeAndSources(t *testing.T) {
	repo := NewSeriesRepository(newTestDB(t))

	_, err := repo.UpsertCounts("repo-a", []models.DailyCount{
		{Date: "2019-12-31", Count: 1},
		{Date: "2020-01-01", Count: 2},
		{Date: "2020-01-02", Count: 3},
	})
	require.NoError(t, err)
	_, err = repo.UpsertCounts("repo-b", []models.DailyCount{{Date: "2021-05-05", Count: 4}})
	require.NoError(t, err)

	counts, err := repo.GetSeries("repo-a", "2020-01-01", "2020-01-01")
	require.NoError(t, err)
	assert.Equal(t, []models.DailyCount{{Date: "2020-01-01", Count: 2}}, counts)

	sources, err := repo.ListSources()
	require.NoError(t, err)
	assert.Equal(t, []models.SourceSummary{
		{Source: "repo-a", Days: 3, FirstDay: "2019-12-31", LastDay: "2020-01-02"},
		{Source: "repo-b", Days: 1, FirstDay: "2021-05-05", LastDay: "2021-05-05"},
	}, sources)

	deleted, err := repo.DeleteSeries("repo-a")
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	counts, err = repo.GetSeries("repo-a", "", "")
	require.NoError(t, err)
	assert.Empty(t, counts)
}
