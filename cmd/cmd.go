// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// configFlag is shared by every command that reads configuration.
func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// runCommand performs a full reconciliation run.
func runCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Fetch the playlist, schedule new songs and export the calendar",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "playlist",
				Aliases: []string{"p"},
				Usage:   "Source playlist ID (overrides config)",
			},
			&cli.StringFlag{
				Name:  "start",
				Usage: "Start date YYYY-MM-DD (overrides config)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Calendar output path (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "no-export",
				Usage: "Skip writing the iCalendar file",
			},
		},
		Action: r.Run,
	}
}

// scheduleCommand handles read-only schedule operations.
func scheduleCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "schedule",
		Aliases: []string{"sched"},
		Usage:   "Inspect and export the persisted schedule",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print the schedule",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "markdown",
						Usage: "Output a Markdown table",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
						Value: true,
					},
				},
				Action: r.ScheduleList,
			},
			{
				Name:  "export",
				Usage: "Write the schedule as an iCalendar file",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (overrides config)",
					},
				},
				Action: r.ScheduleExport,
			},
			{
				Name:    "tui",
				Aliases: []string{"interactive", "ui"},
				Usage:   "Browse the schedule interactively",
				Flags:   []cli.Flag{configFlag()},
				Action:  r.ScheduleTUI,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Create a config.toml from the embedded example",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path for the new config file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
		},
	}
}
