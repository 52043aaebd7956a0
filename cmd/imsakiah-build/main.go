package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ilmualam/imsakiah/internal/pipeline"
)

var (
	outDir    string
	years     []int
	zonesURL  string
	esolatURL string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "imsakiah-build",
	Short: "Fetch JAKIM prayer times and build the Ramadan schedule artifacts",
	Long: `imsakiah-build pulls the zone catalog and yearly takwim from the
JAKIM e-solat service, filters them down to the fasting month and writes
one JSON artifact per zone and year. Reruns overwrite existing artifacts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Missing .env is fine; explicit flags win over the environment.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load .env: %w", err)
		}
		if v := os.Getenv("IMSAKIAH_ZONES_URL"); v != "" && !cmd.Flags().Changed("zones-url") {
			zonesURL = v
		}
		if v := os.Getenv("IMSAKIAH_ESOLAT_URL"); v != "" && !cmd.Flags().Changed("esolat-url") {
			esolatURL = v
		}
		return nil
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "data", "output directory for artifacts")
	rootCmd.Flags().IntSliceVarP(&years, "years", "y", []int{time.Now().Year()}, "years to fetch")
	rootCmd.Flags().StringVar(&zonesURL, "zones-url", "", "override the zone catalog endpoint")
	rootCmd.Flags().StringVar(&esolatURL, "esolat-url", "", "override the e-solat takwim endpoint")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
	if verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	client := pipeline.NewClient()
	if zonesURL != "" {
		client.ZonesURL = zonesURL
	}
	if esolatURL != "" {
		client.EsolatURL = esolatURL
	}

	builder := pipeline.NewBuilder(client, outDir, years, log)
	report, err := builder.Run()
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	failed := report.Failed()
	log.Info().
		Int("zones", report.Zones).
		Int("items", len(report.Results)).
		Int("failed", len(failed)).
		Msg("run complete")

	// Per-zone failures already produced error artifacts; the run itself
	// still counts as a success.
	for _, f := range failed {
		log.Warn().Str("zone", f.Zone).Int("year", f.Year).Err(f.Err).Msg("zone incomplete")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
