package main

import (
	"fmt"
	"log/slog"
	"os"

	"bikeshare/internal/config"
	"bikeshare/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// closeLog releases the log file opened by initConfig.
var closeLog = func() error { return nil }

// metrics is shared by the loader, the report session and the /metrics endpoint.
var metrics = telemetry.NewMetrics()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bikeshare",
	Short: "Explore US bike-share trip data",
	Long: `bikeshare is an interactive explorer for the 2017 trip logs of the
Chicago, New York City and Washington bike-share systems.

Pick a city, a month and a day of the week, then browse the raw trips or
look at statistics on travel times, stations, trip durations and riders.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runExplorer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Wrap Execute in panic recovery for graceful shutdown
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	err := rootCmd.Execute()
	if cerr := closeLog(); cerr != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", cerr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'bikeshare --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	flags.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	flags.String("data-dir", ".", "Directory holding the city CSV files")
	flags.Int("page-size", 5, "Rows shown per page when browsing raw data")
	flags.String("metrics-addr", "", "Serve prometheus metrics on this host:port")
	flags.Bool("no-color", false, "Disable colored output")

	bindFlags(flags)
}

// flagKeys maps persistent flags to their configuration keys.
var flagKeys = map[string]string{
	"verbose":      config.KeyVerbose,
	"data-dir":     config.KeyDataDir,
	"page-size":    config.KeyPageSize,
	"metrics-addr": config.KeyMetricsAddr,
	"no-color":     config.KeyNoColor,
}

func bindFlags(flags *pflag.FlagSet) {
	for name, key := range flagKeys {
		viper.BindPFlag(key, flags.Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	// Validate configuration values
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	settings := config.Current()
	closeLog = telemetry.InitLogger(settings.Verbose, settings.LogFile)

	if settings.MetricsAddr != "" {
		go func() {
			slog.Info("Serving metrics", "addr", settings.MetricsAddr)
			if err := telemetry.StartMetricsServer(settings.MetricsAddr, metrics); err != nil {
				slog.Warn("Failed to start metrics server", "addr", settings.MetricsAddr, "error", err)
			}
		}()
	}
}
