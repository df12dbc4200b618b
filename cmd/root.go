package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X github.com/storagemon/powerstore-prtg/cmd.Version=..."
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "powerstore-prtg",
	Short: "PRTG custom sensor for Dell PowerStore appliances",
	Long: `Queries the PowerStore REST API for device health, capacity, or
performance metrics and writes the PRTG EXE/XML sensor document to stdout.

One invocation produces one report. Errors still produce a well-formed
document (the PRTG error shape) and a non-zero exit status.`,
	SilenceUsage: true,
	RunE:         runProbe,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version and exit")
	rootCmd.Flags().String("host", "", "PowerStore management address")
	rootCmd.Flags().String("mode", "", "Metric category: Device, Capacity, or Performance")
	rootCmd.Flags().String("user", "", "API username")
	rootCmd.Flags().String("password", "", "API password")
	rootCmd.Flags().Bool("insecure", false, "Accept self-signed TLS certificates (this process only)")
	rootCmd.Flags().Duration("timeout", 0, "Per-request timeout (default 30s)")
	rootCmd.Flags().String("record", "", "SQLite path for recording run outcomes (off by default)")
	rootCmd.Flags().String("notify-url", "", "Shoutrrr service URL notified on probe failure")

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// setupLogging routes slog to stderr; stdout belongs to the sensor document.
func setupLogging(cmd *cobra.Command) {
	level := slog.LevelInfo
	switch name, _ := cmd.Flags().GetString("log-level"); name {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
