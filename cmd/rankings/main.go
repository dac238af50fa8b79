package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/league-rankings/internal/config"
	applogger "github.com/yourusername/league-rankings/internal/logger"
	"github.com/yourusername/league-rankings/internal/models"
	"github.com/yourusername/league-rankings/internal/reporter"
	"github.com/yourusername/league-rankings/internal/service"
	"github.com/yourusername/league-rankings/internal/standings"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile   string
	outputFormat string
	logger       *logrus.Logger
	cfg          *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Report format: classic or table")
}

var rootCmd = &cobra.Command{
	Use:   "rankings [input-file]",
	Short: "Compute league standings from match results",
	Long: `Reads a season of match results, groups them into matchdays and prints
the top of the table after every matchday.`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		setupLogger()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRankings(args[0])
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [input-file]",
	Short: "Validate a results file without printing standings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(args[0])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rankings %s\n", Version)
		fmt.Printf("  commit: %s\n", GitCommit)
		fmt.Printf("  built:  %s\n", BuildDate)
	},
}

func main() {
	rootCmd.AddCommand(checkCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	if configFile != "" {
		cfg, err = config.Load(configFile)
	} else {
		cfg, err = config.LoadWithDefaults("")
	}
	if err != nil {
		return err
	}

	// The --format flag overrides the configured format
	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	return nil
}

func setupLogger() {
	logger = applogger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
}

// runRankings processes a results file and writes the report to stdout.
// Logging stays on stderr so the report remains clean.
func runRankings(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return models.NewInputError(path, err)
	}
	defer file.Close()

	engine := standings.NewEngine()
	rep := reporter.New(os.Stdout, cfg.Output.Format)
	pipeline := service.NewPipeline(engine, rep, logger)

	summary, err := pipeline.Run(file)
	if err != nil {
		return fmt.Errorf("failed to process %s: %w", path, err)
	}

	logger.Debug(summary.String())
	return nil
}

// runCheck validates a results file without publishing any standings
func runCheck(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return models.NewInputError(path, err)
	}
	defer file.Close()

	pipeline := service.NewPipeline(standings.NewEngine(), reporter.New(io.Discard, cfg.Output.Format), logger)

	summary, err := pipeline.Check(file)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	fmt.Printf("✓ %s is well-formed\n", path)
	fmt.Printf("  Lines: %d\n", summary.Lines)
	fmt.Printf("  Matches: %d\n", summary.Matches)
	fmt.Printf("  Matchdays: %d\n", summary.Matchdays)
	fmt.Printf("  Teams: %d\n", summary.Teams)

	return nil
}
