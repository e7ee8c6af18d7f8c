package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/songday/internal/formatter"
	"github.com/desertthunder/songday/internal/models"
	"github.com/desertthunder/songday/internal/repositories"
	"github.com/desertthunder/songday/internal/services"
	"github.com/desertthunder/songday/internal/shared"
	"github.com/desertthunder/songday/internal/tasks"
	"github.com/desertthunder/songday/internal/ui"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config   *shared.Config
	catalog  services.Catalog
	enricher services.Enricher
	logger   *log.Logger
	output   io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config   *shared.Config
	Catalog  services.Catalog
	Enricher services.Enricher
	Logger   *log.Logger
	Output   io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:   opts.Config,
		catalog:  opts.Catalog,
		enricher: opts.Enricher,
		logger:   opts.Logger,
		output:   opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, runCommand, scheduleCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig resolves the effective configuration for a command, preferring
// the --config flag path when the file exists.
func (r *Runner) loadConfig(cmd *cli.Command) *shared.Config {
	path := cmd.String("config")
	if path == "" {
		return r.config
	}

	if _, err := os.Stat(path); err != nil {
		return r.config
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		r.logger.Warnf("failed to load config %s, using defaults: %v", path, err)
		return r.config
	}

	return config
}

// openDatabase opens the configured SQLite database and applies pending migrations.
func (r *Runner) openDatabase(config *shared.Config) (*sql.DB, error) {
	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return nil, err
	}

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Run performs a full reconciliation: fetch, schedule, persist, export.
func (r *Runner) Run(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)

	if playlist := cmd.String("playlist"); playlist != "" {
		config.Schedule.PlaylistID = playlist
	}
	if start := cmd.String("start"); start != "" {
		config.Schedule.StartDate = start
	}
	if output := cmd.String("output"); output != "" {
		config.Schedule.OutputPath = output
	}

	// All configuration checks happen before any I/O.
	if err := config.ValidateForRun(); err != nil {
		return err
	}
	if r.catalog == nil {
		return fmt.Errorf("%w: spotify credentials not configured", shared.ErrMissingCredentials)
	}

	start, err := models.ParseDay(config.Schedule.StartDate)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidConfig, err)
	}

	db, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewScheduleRepository(db)
	engine := tasks.NewScheduleEngine(r.catalog, r.enricher, repo)

	progress := make(chan tasks.ProgressUpdate, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.logger.Info(update.Message, "phase", update.Phase.String())
		}
	}()

	result, err := engine.Run(ctx, progress, config.Schedule.PlaylistID, start)
	close(progress)
	<-done
	if err != nil {
		return err
	}

	r.writePlainln("✓ Added %d new songs (%d candidates, %d already scheduled)",
		result.Added, result.Candidates, result.Skipped)
	if result.EnrichMisses > 0 {
		r.writePlainln("  %d new entries have no video link", result.EnrichMisses)
	}

	if !cmd.Bool("no-export") {
		if err := formatter.WriteICSExport(&result.Schedule, config.Schedule.CalendarName, config.Schedule.OutputPath); err != nil {
			return fmt.Errorf("failed to write calendar: %w", err)
		}
		r.writePlainln("✓ Calendar written to %s", config.Schedule.OutputPath)
	}

	return nil
}

// ScheduleList prints the persisted schedule.
func (r *Runner) ScheduleList(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)

	db, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	schedule, err := repositories.NewScheduleRepository(db).All()
	if err != nil {
		return err
	}

	switch {
	case cmd.Bool("json"):
		return r.writeJSON(schedule, cmd.Bool("pretty"))
	case cmd.Bool("markdown"):
		data, err := formatter.ExportToMarkdown(&schedule, config.Schedule.CalendarName)
		if err != nil {
			return err
		}
		return r.writeBytes(data)
	default:
		data, err := formatter.ExportToText(&schedule)
		if err != nil {
			return err
		}
		return r.writeBytes(data)
	}
}

// ScheduleExport writes the persisted schedule as an iCalendar file.
func (r *Runner) ScheduleExport(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)

	outputPath := config.Schedule.OutputPath
	if output := cmd.String("output"); output != "" {
		outputPath = output
	}

	db, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	schedule, err := repositories.NewScheduleRepository(db).All()
	if err != nil {
		return err
	}

	if err := formatter.WriteICSExport(&schedule, config.Schedule.CalendarName, outputPath); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}

	r.writePlainln("✓ Calendar written to %s (%d entries)", outputPath, len(schedule.Entries))
	return nil
}

// ScheduleTUI launches the interactive schedule browser.
func (r *Runner) ScheduleTUI(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)

	db, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	schedule, err := repositories.NewScheduleRepository(db).All()
	if err != nil {
		return err
	}

	return ui.Run(schedule, config.Schedule.CalendarName)
}

// SetupConfig creates a config file from the embedded example.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("output")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.writePlainln("✓ Config file created at %s", path)
	return nil
}

// SetupDatabase initializes the database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)

	db, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	r.writePlainln("✓ Database ready at %s", config.Database.Path)
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writeBytes(data []byte) error {
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
