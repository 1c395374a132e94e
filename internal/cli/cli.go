package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pfrederiksen/fbdb-scores/internal/boxscore"
	"github.com/pfrederiksen/fbdb-scores/internal/config"
	"github.com/pfrederiksen/fbdb-scores/internal/logger"
	"github.com/pfrederiksen/fbdb-scores/internal/scraper"
	"github.com/pfrederiksen/fbdb-scores/internal/standings"
	"github.com/pfrederiksen/fbdb-scores/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1

	DefaultYear = 2024
)

var (
	flagConfig         string
	flagVerbose        bool
	flagLogLevel       string
	flagOutput         string
	flagFile           string
	flagYear           int
	flagHTMLFile       string
	flagStrictFormat   bool
	flagRejectNegative bool
	flagSort           string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fbdb-scores",
		Short: "Retrieve historic NFL game results from The Football Database",
		Long: `A CLI tool that scrapes a season's NFL game results from footballdb.com
and prints them as text lines or JSON, to stdout or a file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging on stderr")
	cmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level on stderr: debug, info, warn or error (--verbose implies debug)")

	cmd.AddCommand(newBoxscoresCmd())
	cmd.AddCommand(newStandingsCmd())

	return cmd
}

func newBoxscoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boxscores",
		Short: "Retrieve historic box scores from the football database",
		Args:  cobra.NoArgs,
		RunE:  runBoxscores,
	}

	addReportFlags(cmd, "Output format: json or default")
	cmd.Flags().BoolVar(&flagStrictFormat, "strict-format", false, "Reject output formats other than json or default")
	cmd.Flags().BoolVar(&flagRejectNegative, "reject-negative", false, "Treat negative scores as a parse error")

	return cmd
}

func newStandingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Summarize a season's results into team win/loss records",
		Args:  cobra.NoArgs,
		RunE:  runStandings,
	}

	addReportFlags(cmd, "Output format: json or table")
	cmd.Flags().StringVar(&flagSort, "sort", string(standings.SortByWins), "Sort order: wins, name or points")

	return cmd
}

// addReportFlags defines the flags shared by the report commands
func addReportFlags(cmd *cobra.Command, outputUsage string) {
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", outputUsage)
	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "File to write to (default: stdout)")
	cmd.Flags().IntVarP(&flagYear, "year", "y", DefaultYear, "The year of scores to retrieve")
	cmd.Flags().StringVar(&flagHTMLFile, "html-file", "", "Parse a saved footballdb page instead of fetching")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := logger.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))
	logger.DefaultMetrics().Reset()
	return nil
}

// runBoxscores fetches, renders and writes a season's results
func runBoxscores(cmd *cobra.Command, args []string) error {
	format, err := ParseOutputFormat(flagOutput, flagStrictFormat)
	if err != nil {
		return err
	}

	extractor := scraper.FootballDB{RejectNegativeScores: flagRejectNegative}
	games, err := loadGames(cmd.Context(), extractor)
	if err != nil {
		return err
	}

	report, err := RenderGames(games, format)
	if err != nil {
		return fmt.Errorf("rendering output: %w", err)
	}

	return deliver(cmd, report)
}

// runStandings aggregates a season's results into sorted team records
func runStandings(cmd *cobra.Command, args []string) error {
	order, err := standings.ParseSortOrder(flagSort)
	if err != nil {
		return err
	}
	format, err := ParseOutputFormat(flagOutput, false)
	if err != nil {
		return err
	}

	games, err := loadGames(cmd.Context(), scraper.FootballDB{})
	if err != nil {
		return err
	}

	records := standings.Compute(games)
	standings.Sort(records, order)

	report, err := RenderStandings(records, format)
	if err != nil {
		return fmt.Errorf("rendering output: %w", err)
	}

	return deliver(cmd, report)
}

// loadGames reads the season page from the configured source and extracts results
func loadGames(ctx context.Context, extractor scraper.Extractor) ([]boxscore.GameResult, error) {
	var source scraper.Source
	if flagHTMLFile != "" {
		source = scraper.FileSource{Path: flagHTMLFile}
	} else {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		source = scraper.NewClient(cfg)
	}

	html, err := source.Fetch(ctx, flagYear)
	if err != nil {
		return nil, fmt.Errorf("fetching games: %w", err)
	}

	games, err := extractor.Extract(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing games: %w", err)
	}

	if len(games) == 0 {
		logger.Warn("No games found on season page", logger.Fields{"year": flagYear})
	}

	return games, nil
}

// deliver writes the report to the file or stdout and logs run metrics
func deliver(cmd *cobra.Command, report string) error {
	sink, err := storage.Open(flagFile, cmd.OutOrStdout())
	if err != nil {
		logger.Error("Opening output failed", logger.Fields{"path": flagFile}, err)
		return fmt.Errorf("opening output: %w", err)
	}

	if err := sink.Write(report); err != nil {
		logger.Error("Writing report failed", logger.Fields{"path": flagFile}, err)
		return err
	}

	fields := logger.Fields{
		"year":  flagYear,
		"games": logger.DefaultMetrics().Counter("games.parsed"),
	}
	if fileSink, ok := sink.(*storage.FileSink); ok {
		fields["path"] = fileSink.Path()
	}
	logger.Info("Report written", fields)

	if logger.Default().Enabled(logger.LevelDebug) {
		logger.Debug("Run metrics", logger.DefaultMetrics().Snapshot())
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
