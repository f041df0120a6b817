package backfill

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"lifelog-journal/internal/common"
	"lifelog-journal/internal/daily"
	"lifelog-journal/models"
	bf "lifelog-journal/pkg/backfill"
	"lifelog-journal/pkg/db"
	"lifelog-journal/pkg/renderer"
)

// RunAction backfills the closed date range [--from, --to], resuming from
// the persisted cursor and skipping days with an existing document unless
// --overwrite is set.
func RunAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	database, err := db.Open(cfg.StateDB)
	if err != nil {
		return fmt.Errorf("failed to open state database: %w", err)
	}
	defer database.Close()

	// Existing-output set is captured once; days rendered mid-run are not
	// re-discovered.
	existing, err := renderer.ListRenderedDays(cfg.OutputDir, cfg.DocSuffix)
	if err != nil {
		return err
	}

	pipeline, err := daily.NewPipeline(cfg, database, logger)
	if err != nil {
		return err
	}

	from := c.String("from")
	to := c.String("to")
	overwrite := c.Bool("overwrite")

	runID := uuid.NewString()
	if err := database.InsertBackfillRun(runID, from, to, overwrite); err != nil {
		logger.Warn("failed to record backfill run", "error", err)
	}

	controller := bf.New(database, func(day string) error {
		_, err := pipeline.RunDay(day)
		return err
	}, existing, overwrite, logger)

	summary, err := controller.Run(from, to)
	if err != nil {
		return err
	}

	if err := database.FinishBackfillRun(runID, summary.Processed, summary.Skipped, summary.Failed); err != nil {
		logger.Warn("failed to finalize backfill run", "error", err)
	}

	fmt.Printf("Backfill %s..%s done: %d processed, %d skipped, %d failed (cursor %s)\n",
		from, to, summary.Processed, summary.Skipped, summary.Failed, summary.Cursor)
	return nil
}
