package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jengzang/commit-heatmap-go/internal/config"
	"github.com/jengzang/commit-heatmap-go/internal/database"
	"github.com/jengzang/commit-heatmap-go/internal/heatmap"
	"github.com/jengzang/commit-heatmap-go/internal/middleware"
	"github.com/jengzang/commit-heatmap-go/internal/observability"
	"github.com/jengzang/commit-heatmap-go/internal/repository"
	"github.com/jengzang/commit-heatmap-go/internal/service"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := database.Open(database.Config{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "router.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, database.NewMigrationManager(conn).RunMigrations())

	reg := prometheus.NewRegistry()
	svc := service.NewHeatmapService(repository.NewSeriesRepository(conn), observability.NewMetrics(reg), heatmap.English)
	limiter := middleware.NewRateLimiter(1000, time.Minute, clockwork.NewFakeClock())
	cfg := &config.Config{JWTSecret: testSecret}

	return SetupRouter(cfg, svc, limiter, reg)
}

func do(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func ingestToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.IssueToken([]byte(testSecret), jwt.RegisteredClaims{Subject: "test"})
	require.NoError(t, err)
	return token
}

var scenario = map[string]interface{}{
	"counts": []map[string]interface{}{
		{"date": "2020-01-01", "count": 10},
		{"date": "2020-01-02", "count": 12},
		{"date": "2020-01-03", "count": 9},
	},
}

func TestHealth(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestIngestRequiresToken(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodPost, "/api/v1/series/repo-a", scenario, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIngestThenRender(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodPost, "/api/v1/series/repo-a", scenario, ingestToken(t))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"written":3`)

	rec = do(r, http.MethodGet, "/api/v1/heatmap/repo-a/svg", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "image/svg+xml"))
	assert.Contains(t, rec.Body.String(), "<title>2020-01-02 - +2 commits</title>")
	assert.Contains(t, rec.Body.String(), "<title>2020-01-03 - -3 commits</title>")

	rec = do(r, http.MethodGet, "/api/v1/heatmap/repo-a/layout?locale=zh", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var layout struct {
		Code int `json:"code"`
		Data struct {
			Height float64 `json:"height"`
			Count  int     `json:"count"`
			Months []struct {
				Text string `json:"text"`
			} `json:"months"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &layout))
	assert.Equal(t, 96.0, layout.Data.Height)
	assert.Equal(t, 2, layout.Data.Count)
	require.Len(t, layout.Data.Months, 1)
	assert.Equal(t, "1月", layout.Data.Months[0].Text)

	rec = do(r, http.MethodGet, "/api/v1/heatmap/repo-a/legend?ticks=3", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ">+0</text>")

	rec = do(r, http.MethodGet, "/api/v1/series", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"source":"repo-a"`)

	rec = do(r, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `commit_heatmap_renders_total{kind="svg"} 1`)
}

func TestRenderErrors(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodGet, "/api/v1/heatmap/unknown/svg", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/v1/series/repo-a", scenario, ingestToken(t)).Code)

	rec = do(r, http.MethodGet, "/api/v1/heatmap/repo-a/svg?locale=klingon", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodGet, "/api/v1/heatmap/repo-a/layout?from=2020/01/01", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenderInline(t *testing.T) {
	r := newTestRouter(t)

	body := map[string]interface{}{
		"counts":     scenario["counts"],
		"surface_id": "chart",
	}
	rec := do(r, http.MethodPost, "/api/v1/heatmap/render", body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `id="chart"`)
	assert.Equal(t, 2, strings.Count(rec.Body.String(), "<circle"))

	rec = do(r, http.MethodPost, "/api/v1/heatmap/render", map[string]string{"surface_id": "x"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteSeries(t *testing.T) {
	r := newTestRouter(t)
	token := ingestToken(t)

	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/v1/series/repo-a", scenario, token).Code)

	rec := do(r, http.MethodDelete, "/api/v1/series/repo-a", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(r, http.MethodDelete, "/api/v1/series/repo-a", nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"deleted":3`)

	rec = do(r, http.MethodGet, "/api/v1/heatmap/repo-a/svg", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(r, http.MethodDelete, "/api/v1/series/repo-a", nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLayoutSingleDayReturnsArrays(t *testing.T) {
	r := newTestRouter(t)

	one := map[string]interface{}{
		"counts": []map[string]interface{}{{"date": "2020-01-01", "count": 10}},
	}
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/v1/series/repo-a", one, ingestToken(t)).Code)

	rec := do(r, http.MethodGet, "/api/v1/heatmap/repo-a/layout", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"groups":[]`)
	assert.Contains(t, rec.Body.String(), `"cells":[]`)
	assert.Contains(t, rec.Body.String(), `"months":[]`)
}
