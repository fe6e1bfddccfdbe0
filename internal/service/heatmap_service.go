package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jengzang/commit-heatmap-go/internal/heatmap"
	"github.com/jengzang/commit-heatmap-go/internal/models"
	"github.com/jengzang/commit-heatmap-go/internal/observability"
	"github.com/jengzang/commit-heatmap-go/internal/stats"
	"github.com/jengzang/commit-heatmap-go/internal/svg"
)

// DefaultSurfaceID is the id of the root <svg> the service renders into
const DefaultSurfaceID = "heatmap"

var (
	// ErrInvalidInput marks caller mistakes (bad locale, bad date bounds)
	ErrInvalidInput = errors.New("invalid input")
	// ErrSourceNotFound is returned when a source has no stored counts
	ErrSourceNotFound = errors.New("source not found")
)

// SeriesStore is the persistence the service needs
type SeriesStore interface {
	GetSeries(source, from, to string) ([]models.DailyCount, error)
	UpsertCounts(source string, counts []models.DailyCount) (int, error)
	ListSources() ([]models.SourceSummary, error)
	DeleteSeries(source string) (int64, error)
}

// HeatmapService handles business logic for heatmap rendering and ingestion
type HeatmapService struct {
	repo          SeriesStore
	metrics       *observability.Metrics
	defaultLocale heatmap.Locale
}

// NewHeatmapService creates a new heatmap service
func NewHeatmapService(repo SeriesStore, metrics *observability.Metrics, defaultLocale heatmap.Locale) *HeatmapService {
	return &HeatmapService{repo: repo, metrics: metrics, defaultLocale: defaultLocale}
}

// RenderSVG renders a stored series as a standalone SVG document
func (s *HeatmapService) RenderSVG(source string, filter models.SeriesFilter) ([]byte, error) {
	doc, _, err := s.render("svg", source, filter)
	if err != nil {
		return nil, err
	}
	return doc.Bytes()
}

// Layout returns the derived data and geometry of a stored series
func (s *HeatmapService) Layout(source string, filter models.SeriesFilter) (*models.HeatmapResponse, error) {
	_, res, err := s.render("json", source, filter)
	if err != nil {
		return nil, err
	}

	size := res.Bounds.Size()

	resp := &models.HeatmapResponse{
		Source:      source,
		Width:       size.X,
		Height:      size.Y,
		ScaleMax:    res.Scale.Max,
		Percentiles: absPercentiles(res.Points),
		Groups:      res.Groups,
		Cells:       res.Cells,
		Months:      res.Months,
		Count:       len(res.Points),
	}
	if resp.Groups == nil {
		resp.Groups = []models.YearGroup{}
	}
	if resp.Cells == nil {
		resp.Cells = []models.HeatmapCell{}
	}
	if resp.Months == nil {
		resp.Months = []models.MonthLabel{}
	}

	return resp, nil
}

// Legend renders the color legend matching a stored series' heatmap
func (s *HeatmapService) Legend(source string, filter models.LegendFilter) ([]byte, error) {
	counts, err := s.load(source, filter.SeriesFilter)
	if err != nil {
		s.metrics.RenderErrors.WithLabelValues("legend").Inc()
		return nil, err
	}

	scale := heatmap.ScaleFor(heatmap.Pair(counts), heatmap.PuOr)
	doc := svg.NewDocument("legend")
	if err := scale.Legend(doc, "legend", filter.Width, filter.Ticks); err != nil {
		s.metrics.RenderErrors.WithLabelValues("legend").Inc()
		return nil, err
	}

	s.metrics.Renders.WithLabelValues("legend").Inc()
	return doc.Bytes()
}

// RenderInline renders a series supplied by the caller
func (s *HeatmapService) RenderInline(req models.RenderRequest) ([]byte, error) {
	locale, err := s.locale(req.Locale)
	if err != nil {
		s.metrics.RenderErrors.WithLabelValues("inline").Inc()
		return nil, err
	}

	surfaceID := req.SurfaceID
	if surfaceID == "" {
		surfaceID = DefaultSurfaceID
	}

	start := time.Now()
	doc := svg.NewDocument(surfaceID)
	res, err := heatmap.NewBuilder(locale).Build(req.Counts, doc, surfaceID)
	if err != nil {
		s.metrics.RenderErrors.WithLabelValues("inline").Inc()
		return nil, fmt.Errorf("failed to build heatmap: %w", err)
	}
	s.observe("inline", start, res)

	return doc.Bytes()
}

// Ingest stores counts for a source. Records with unparseable dates are skipped.
func (s *HeatmapService) Ingest(source string, counts []models.DailyCount) (*models.IngestResult, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("%w: empty source", ErrInvalidInput)
	}

	valid := make([]models.DailyCount, 0, len(counts))
	for _, c := range counts {
		d, err := heatmap.ParseDate(c.Date)
		if err != nil {
			continue
		}
		valid = append(valid, models.DailyCount{Date: heatmap.FormatDate(d), Count: c.Count})
	}

	written, err := s.repo.UpsertCounts(source, valid)
	if err != nil {
		return nil, fmt.Errorf("failed to store counts: %w", err)
	}
	s.metrics.CountsIngested.Add(float64(written))

	log.Printf("[HeatmapService] Ingested %d counts for %s (%d skipped)", written, source, len(counts)-len(valid))
	return &models.IngestResult{Source: source, Written: written, Skipped: len(counts) - len(valid)}, nil
}

// DeleteSeries removes every stored count of a source
func (s *HeatmapService) DeleteSeries(source string) (*models.DeleteResult, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("%w: empty source", ErrInvalidInput)
	}

	deleted, err := s.repo.DeleteSeries(source)
	if err != nil {
		return nil, fmt.Errorf("failed to delete counts: %w", err)
	}
	if deleted == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, source)
	}

	log.Printf("[HeatmapService] Deleted %d counts for %s", deleted, source)
	return &models.DeleteResult{Source: source, Deleted: deleted}, nil
}

// ListSources lists stored sources
func (s *HeatmapService) ListSources() ([]models.SourceSummary, error) {
	return s.repo.ListSources()
}

func (s *HeatmapService) render(kind, source string, filter models.SeriesFilter) (*svg.Document, *heatmap.Result, error) {
	start := time.Now()

	locale, err := s.locale(filter.Locale)
	if err != nil {
		s.metrics.RenderErrors.WithLabelValues(kind).Inc()
		return nil, nil, err
	}

	counts, err := s.load(source, filter)
	if err != nil {
		s.metrics.RenderErrors.WithLabelValues(kind).Inc()
		return nil, nil, err
	}

	doc := svg.NewDocument(DefaultSurfaceID)
	res, err := heatmap.NewBuilder(locale).Build(counts, doc, DefaultSurfaceID)
	if err != nil {
		s.metrics.RenderErrors.WithLabelValues(kind).Inc()
		return nil, nil, fmt.Errorf("failed to build heatmap: %w", err)
	}
	s.observe(kind, start, res)

	return doc, res, nil
}

func (s *HeatmapService) load(source string, filter models.SeriesFilter) ([]models.DailyCount, error) {
	for _, bound := range []string{filter.From, filter.To} {
		if bound == "" {
			continue
		}
		if _, err := heatmap.ParseDate(bound); err != nil {
			return nil, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, bound)
		}
	}

	counts, err := s.repo.GetSeries(source, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to load series: %w", err)
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, source)
	}
	return counts, nil
}

func (s *HeatmapService) locale(name string) (heatmap.Locale, error) {
	if name == "" {
		return s.defaultLocale, nil
	}
	l, err := heatmap.LookupLocale(name)
	if err != nil {
		return heatmap.Locale{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return l, nil
}

// absPercentiles reports p50, p90 and the clipping percentile of |value|
func absPercentiles(points []models.PairedPoint) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = float64(p.Value)
	}
	return stats.Percentiles(stats.Abs(values), []float64{50, 90, heatmap.ClipQuantile * 100})
}

func (s *HeatmapService) observe(kind string, start time.Time, res *heatmap.Result) {
	s.metrics.Renders.WithLabelValues(kind).Inc()
	s.metrics.RenderDuration.Observe(time.Since(start).Seconds())
	s.metrics.CellsRendered.Observe(float64(len(res.Cells)))
}
