package daily

import (
	"log/slog"

	"lifelog-journal/models"
	"lifelog-journal/pkg/aggregator"
	"lifelog-journal/pkg/db"
	"lifelog-journal/pkg/fetcher"
	"lifelog-journal/pkg/renderer"
)

// Pipeline is the single-day fetch-aggregate-render path. The daily command
// runs it once; the backfill controller runs it once per day in the range.
type Pipeline struct {
	agg      *aggregator.Aggregator
	rend     *renderer.Renderer
	timezone string
}

// NewPipeline wires the fetcher, aggregator, and renderer from config.
func NewPipeline(cfg *models.Config, store *db.DB, logger *slog.Logger) (*Pipeline, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	f := fetcher.New(fetcher.Config{
		Endpoint: cfg.Endpoint,
		APIKey:   cfg.APIKey,
		Timezone: cfg.Timezone,
	}, logger)

	rend, err := renderer.New(cfg.OutputDir, cfg.DocSuffix, store, logger)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		agg:      aggregator.New(f, loc, logger),
		rend:     rend,
		timezone: cfg.Timezone,
	}, nil
}

// RunDay builds and renders one day, returning the document path. Any fetch
// failure aborts the day with no partial document written.
func (p *Pipeline) RunDay(date string) (string, error) {
	entries, err := p.agg.BuildDay(date)
	if err != nil {
		return "", err
	}
	return p.rend.RenderDay(date, p.timezone, entries)
}
