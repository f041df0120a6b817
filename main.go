package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	backfillcmd "lifelog-journal/internal/backfill"
	"lifelog-journal/internal/daily"
	"lifelog-journal/internal/state"
)

func main() {
	app := &cli.App{
		Name:  "lifelog-journal",
		Usage: "Render daily journal documents from lifelog recordings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to yaml config file",
				Value:   "lifelog-journal.yaml",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "daily",
				Usage: "Fetch and render the journal for a single day",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "yesterday",
						Usage: "Render yesterday instead of today",
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "Render a specific day (YYYY-MM-DD); overrides --yesterday",
					},
				},
				Action: daily.RunAction,
			},
			{
				Name:  "backfill",
				Usage: "Render every day in a date range, resuming from the persisted cursor",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Usage:    "First day of the range (YYYY-MM-DD)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "Last day of the range (YYYY-MM-DD), inclusive",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "overwrite",
						Usage: "Re-render days that already have a document",
					},
				},
				Action: backfillcmd.RunAction,
			},
			{
				Name:  "state",
				Usage: "Inspect and manage persisted state",
				Subcommands: []*cli.Command{
					{
						Name:  "status",
						Usage: "Show the backfill cursor and recent runs",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Usage: "Number of runs to show",
								Value: 10,
							},
						},
						Action: state.StatusAction,
					},
					{
						Name:  "days",
						Usage: "List rendered days from the registry",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Usage: "Number of days to show",
								Value: 30,
							},
						},
						Action: state.DaysAction,
					},
					{
						Name:   "reset-cursor",
						Usage:  "Clear the backfill resume cursor",
						Action: state.ResetCursorAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
