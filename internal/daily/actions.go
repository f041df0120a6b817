package daily

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"lifelog-journal/internal/common"
	"lifelog-journal/models"
	"lifelog-journal/pkg/db"
	"lifelog-journal/pkg/window"
)

// RunAction renders the journal document for a single day. Defaults to
// today in the configured time zone; --yesterday and --date override.
func RunAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	date, err := resolveDate(c, cfg)
	if err != nil {
		return err
	}

	database, err := db.Open(cfg.StateDB)
	if err != nil {
		return fmt.Errorf("failed to open state database: %w", err)
	}
	defer database.Close()

	pipeline, err := NewPipeline(cfg, database, logger)
	if err != nil {
		return err
	}

	logger.Info("running daily journal", "date", date, "timezone", cfg.Timezone)
	path, err := pipeline.RunDay(date)
	if err != nil {
		return fmt.Errorf("day %s failed: %w", date, err)
	}

	fmt.Println(path)
	return nil
}

// resolveDate picks the target day: a forced --date wins, then --yesterday,
// else today, both in the configured time zone.
func resolveDate(c *cli.Context, cfg *models.Config) (string, error) {
	if forced := c.String("date"); forced != "" {
		if _, err := time.Parse(window.DateLayout, forced); err != nil {
			return "", fmt.Errorf("%w: %q", window.ErrInvalidDate, forced)
		}
		return forced, nil
	}

	loc, err := cfg.Location()
	if err != nil {
		return "", err
	}

	day := time.Now().In(loc)
	if c.Bool("yesterday") {
		day = day.AddDate(0, 0, -1)
	}
	return day.Format(window.DateLayout), nil
}
