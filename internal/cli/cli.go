package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/nfl-cap-tracker/internal/config"
	"github.com/pfrederiksen/nfl-cap-tracker/internal/mirror"
	"github.com/pfrederiksen/nfl-cap-tracker/internal/scraper"
	"github.com/pfrederiksen/nfl-cap-tracker/internal/store"
	"github.com/pfrederiksen/nfl-cap-tracker/internal/syncer"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess      = 0
	ExitError        = 1
	ExitSkippedTeams = 2
)

var (
	flagConfig  string
	flagFormat  string
	flagDryRun  bool
	flagVerbose bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cap-tracker",
		Short: "Scrape, verify, and replicate NFL salary cap data",
		Long: `A tool that scrapes per-player salary cap data for all 32 NFL teams,
verifies every extracted table against the totals the site publishes, and
replicates the verified data into Postgres and a spreadsheet mirror.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newSyncCmd())
	cmd.AddCommand(newTeamsCmd())

	return cmd
}

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run a full scrape-verify-store-mirror pass over all teams",
		RunE:  runSync,
	}
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Scrape and verify only; print what would be written")
	return cmd
}

func newTeamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "Print the team identifiers discovered from the site directory",
		RunE:  runTeams,
	}
}

// runSync is the main command logic.
func runSync(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	format := OutputFormat(flagFormat)
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	sc := scraper.New(scraper.Config{
		BaseURL:    cfg.Scrape.BaseURL,
		Season:     cfg.Scrape.Season,
		Timeout:    cfg.Scrape.Timeout,
		MaxRetries: cfg.Scrape.MaxRetries,
	}, log.With().Str("component", "scraper").Logger())

	ctx := cmd.Context()

	var st syncer.Store
	var m mirror.Mirror
	if flagDryRun {
		st = store.NewMemory()
		m = mirror.NewDryRunMirror(os.Stdout)
	} else {
		pg, err := store.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer pg.Close()
		if err := pg.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("ensuring schema: %w", err)
		}
		st = pg

		if cfg.Sheets.Enabled {
			sheetsLog := log.With().Str("component", "mirror").Logger()
			sm, err := mirror.NewSheetsMirror(ctx, cfg.Sheets, sheetsLog)
			if err != nil {
				return fmt.Errorf("initializing sheets mirror: %w", err)
			}
			m = sm
		} else {
			m = mirror.Disabled()
		}
	}

	run := syncer.New(sc, st, m, log.With().Str("component", "syncer").Logger())
	report, err := run.Run(ctx)
	if err != nil {
		return err
	}

	if err := WriteReport(os.Stdout, report, format); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if len(report.Skipped) > 0 {
		os.Exit(ExitSkippedTeams)
	}
	os.Exit(ExitSuccess)
	return nil
}

func runTeams(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	sc := scraper.New(scraper.Config{
		BaseURL:    cfg.Scrape.BaseURL,
		Season:     cfg.Scrape.Season,
		Timeout:    cfg.Scrape.Timeout,
		MaxRetries: cfg.Scrape.MaxRetries,
	}, log.With().Str("component", "scraper").Logger())

	teams, err := sc.FetchTeams(cmd.Context())
	if err != nil {
		return err
	}
	for _, team := range teams {
		fmt.Println(team)
	}
	return nil
}

// setup loads configuration and builds the root logger.
func setup() (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, zerolog.Nop(), err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	return cfg, log, nil
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
