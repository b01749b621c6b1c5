package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jvilar-bio/blastq/internal/output"
	"github.com/jvilar-bio/blastq/pkg/blast"
	"github.com/jvilar-bio/blastq/pkg/logging"
	"github.com/jvilar-bio/blastq/pkg/models"
	"github.com/jvilar-bio/blastq/pkg/query"
)

var (
	cfgFile      string
	endpoint     string
	outputFormat string
	pollInterval time.Duration
	maxWait      time.Duration
	logLevel     string
	logFormat    string
)

// rootCmd represents the base command: submit a search, wait for it, print
// the best-hit summary.
var rootCmd = &cobra.Command{
	Use:   "blastq <program> <database> <query-file> [query-file...]",
	Short: "Submit a BLAST search and summarize the best hit",
	Long: `blastq submits nucleotide or protein sequences to the NCBI BLAST URL API,
waits for the search to finish, and prints a one-record summary of the
best hit. The summary lands on stdout; progress and diagnostics go to
stderr.

Programs: blastn, blastp, blastx, tblastn, tblastx, plus the aliases
megablast (blastn with MEGABLAST=on) and rpsblast (blastp against
conserved-domain databases).`,
	Example: `  blastq blastp nr protein.fasta
  blastq --output json megablast nt dna1.fasta dna2.fasta
  blastq --max-wait 30m blastn nt reads.fa`,
	Args: cobra.MinimumNArgs(3),
	RunE: runSearch,
}

// Execute runs the root command tree.
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps a pipeline error onto the tool's exit codes: 3 when the
// job expired, 4 when the service failed it, 5 when a status response was
// unrecognizable, 1 for everything else.
func ExitCode(err error) int {
	var statusErr *blast.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Status {
		case models.JobStatusUnknown:
			return 3
		case models.JobStatusFailed:
			return 4
		case models.JobStatusUnrecognized:
			return 5
		}
	}
	return 1
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.blastq/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "search service URL (default from config or the public NCBI endpoint)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "csv", "output format: csv, json or table")
	rootCmd.PersistentFlags().DurationVar(&pollInterval, "poll-interval", blast.DefaultPollInterval, "delay between status checks")
	rootCmd.PersistentFlags().DurationVar(&maxWait, "max-wait", 0, "give up polling after this long (0 waits forever)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		// Search config in home directory with name ".blastq/config"
		configDir := filepath.Join(home, ".blastq")
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Bind specific environment variables
	viper.BindEnv("endpoint", "BLASTQ_ENDPOINT")
	viper.BindEnv("output", "BLASTQ_OUTPUT")
	viper.BindEnv("poll_interval", "BLASTQ_POLL_INTERVAL")
	viper.BindEnv("max_wait", "BLASTQ_MAX_WAIT")
	viper.BindEnv("log_level", "BLASTQ_LOG_LEVEL")
	viper.BindEnv("log_format", "BLASTQ_LOG_FORMAT")

	// Config file is optional; a missing one is not an error
	viper.ReadInConfig()

	// Flags beat config and environment; fill in only what was not set
	// on the command line.
	flags := rootCmd.PersistentFlags()
	if endpoint == "" && viper.GetString("endpoint") != "" {
		endpoint = viper.GetString("endpoint")
	}
	if !flags.Changed("output") && viper.IsSet("output") {
		outputFormat = viper.GetString("output")
	}
	if !flags.Changed("poll-interval") && viper.IsSet("poll_interval") {
		pollInterval = viper.GetDuration("poll_interval")
	}
	if !flags.Changed("max-wait") && viper.IsSet("max_wait") {
		maxWait = viper.GetDuration("max_wait")
	}
	if !flags.Changed("log-level") && viper.IsSet("log_level") {
		logLevel = viper.GetString("log_level")
	}
	if !flags.Changed("log-format") && viper.IsSet("log_format") {
		logFormat = viper.GetString("log_format")
	}
}

// newLogger builds the logger the command tree shares.
func newLogger() *logging.Logger {
	return logging.NewLogger(logging.ParseLevel(logLevel), logFormat == "json")
}

// newClient builds a search client from the effective configuration.
func newClient() *blast.Client {
	client := blast.NewClient(endpoint)
	client.SetLogger(newLogger())
	return client
}

// pollConfig builds the wait-loop settings from the effective configuration.
func pollConfig() blast.PollConfig {
	cfg := blast.DefaultPollConfig()
	if pollInterval > 0 {
		cfg.Interval = pollInterval
	}
	cfg.MaxWait = maxWait
	return cfg
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	// Arguments are sound past this point; runtime failures should not
	// trigger a usage dump.
	cmd.SilenceUsage = true

	program, database, files := args[0], args[1], args[2:]

	in, err := query.Load(files)
	if err != nil {
		return err
	}

	client := newClient()
	ctx := context.Background()

	handle, err := client.Submit(ctx, blast.NewSearchRequest(program, database, in.Payload))
	if err != nil {
		return err
	}

	if err := client.WaitReady(ctx, handle, pollConfig()); err != nil {
		return err
	}

	doc, err := client.FetchResults(ctx, handle.RID)
	if err != nil {
		return err
	}

	summary, err := blast.Summarize(handle.RID, doc, in.Basename, in.Sequence)
	if err != nil {
		return err
	}

	return output.Write(os.Stdout, format, summary)
}
