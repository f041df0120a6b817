package state

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"lifelog-journal/models"
	"lifelog-journal/pkg/backfill"
	"lifelog-journal/pkg/db"
)

func openStateDB(c *cli.Context) (*db.DB, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	database, err := db.Open(cfg.StateDB)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	return database, nil
}

// StatusAction prints the resume cursor and recent backfill runs.
func StatusAction(c *cli.Context) error {
	database, err := openStateDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	cursor, ok, err := database.GetProperty(backfill.CursorKey)
	if err != nil {
		return err
	}
	if ok {
		fmt.Printf("Backfill cursor: %s\n", cursor)
	} else {
		fmt.Println("Backfill cursor: not set")
	}

	runs, err := database.ListBackfillRuns(c.Int("limit"))
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No backfill runs recorded")
		return nil
	}

	fmt.Printf("\n%-38s %-12s %-12s %-10s %-10s %-8s %-8s\n",
		"Run ID", "From", "To", "Started", "Finished", "Done", "Failed")
	fmt.Println(strings.Repeat("-", 104))
	for _, r := range runs {
		finished := "running"
		if r.FinishedAt.Valid {
			finished = r.FinishedAt.Time.Format("01-02 15:04")
		}
		fmt.Printf("%-38s %-12s %-12s %-10s %-10s %-8d %-8d\n",
			r.RunID,
			r.RangeStart,
			r.RangeEnd,
			r.StartedAt.Format("01-02 15:04"),
			finished,
			r.Processed+r.Skipped,
			r.Failed,
		)
	}
	return nil
}

// DaysAction prints the rendered-day registry as yaml.
func DaysAction(c *cli.Context) error {
	database, err := openStateDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	docs, err := database.ListDayDocuments(c.Int("limit"))
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Println("No rendered days recorded")
		return nil
	}

	out, err := yaml.Marshal(docs)
	if err != nil {
		return fmt.Errorf("failed to marshal day documents: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

// ResetCursorAction clears the backfill resume cursor so the next backfill
// starts from its range start.
func ResetCursorAction(c *cli.Context) error {
	database, err := openStateDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.DeleteProperty(backfill.CursorKey); err != nil {
		return err
	}
	fmt.Println("Backfill cursor cleared")
	return nil
}
