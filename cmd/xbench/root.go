package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xbench/internal/config"
	"xbench/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// metrics is non-nil only when a metrics port is configured; the default
// invocation stays a plain one-shot process.
var metrics *telemetry.Metrics

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xbench",
	Short: "Time single XML parse calls over an in-memory file",
	Long: `xbench loads an XML file fully into memory, times exactly one
document-parse call per selected backend and reports the raw elapsed
nanosecond count. Runs can be saved and compared against earlier ones to
track parser performance over time.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./xbench.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewCompareCmd())
	rootCmd.AddCommand(NewHistoryCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}

	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))

	if port := viper.GetInt("metrics_port"); port > 0 {
		metrics = telemetry.NewMetrics(prometheus.DefaultRegisterer)
		go func() {
			if err := telemetry.StartMetricsServer(port); err != nil {
				telemetry.LogError("Metrics server stopped", err)
			}
		}()
	}
}
