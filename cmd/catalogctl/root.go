package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leengari/joydb-catalog/internal/logging"
)

var version = "dev"

var closeLogger = func() {}

var rootCmd = &cobra.Command{
	Use:     "catalogctl",
	Short:   "Inspect and validate JoyDB relation catalog files",
	Long:    `catalogctl works with the per-relation catalog.json files that record which secondary indices are defined on a relation and which sub-block formats back them.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if viper.GetBool("verbose") {
			level = slog.LevelDebug
		}
		logger, closeFn := logging.SetupLogger(viper.GetString("seq_url"), level)
		slog.SetDefault(logger)
		closeLogger = closeFn
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().String("seq-url", "", "Seq ingestion endpoint for structured logs (e.g. http://localhost:5341)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	// Bind flags to viper; CATALOGCTL_SEQ_URL etc. work as env fallbacks
	_ = viper.BindPFlag("seq_url", rootCmd.PersistentFlags().Lookup("seq-url"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.SetEnvPrefix("catalogctl")
	viper.AutomaticEnv()

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
}
