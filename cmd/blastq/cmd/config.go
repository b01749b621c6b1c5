package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jvilar-bio/blastq/pkg/blast"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the blastq configuration file",
	Long:  `Commands for inspecting and bootstrapping the configuration file read on startup.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Writes the effective settings to $HOME/.blastq/config.yaml (or the --config
path) so they become the defaults for later runs.`,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
}

// fileConfig mirrors the keys the config file supports. Durations are kept
// in their string form ("5s", "30m") so the file stays hand-editable.
type fileConfig struct {
	Endpoint     string `yaml:"endpoint"`
	Output       string `yaml:"output"`
	PollInterval string `yaml:"poll_interval"`
	MaxWait      string `yaml:"max_wait"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
}

func effectiveConfig() fileConfig {
	effectiveEndpoint := endpoint
	if effectiveEndpoint == "" {
		effectiveEndpoint = blast.DefaultEndpoint
	}
	return fileConfig{
		Endpoint:     effectiveEndpoint,
		Output:       outputFormat,
		PollInterval: pollInterval.String(),
		MaxWait:      maxWait.String(),
		LogLevel:     logLevel,
		LogFormat:    logFormat,
	}
}

func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, ".blastq", "config.yaml"), nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	path, err := configPath()
	if err != nil {
		return err
	}

	if !configForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(effectiveConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(effectiveConfig())
}
