// cmd/benchtab/root.go
package benchtab

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/benchtab/internal/config"
	"github.com/mwiater/benchtab/internal/logging"
)

var (
	cfgFile   string
	logLevel  string
	appConfig config.Config
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

// rootCmd is the base Cobra command for the benchtab application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "benchtab",
	Short: "Tabulate inference engine experiment results",
	Long: `benchtab extracts run records from experiment log files and reports
mean ± standard deviation of runtimes and evaluation scores per example and engine.`,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error on stderr and exits the process with a
// non-zero status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

// loadSettings reads the configuration and installs the logger before any
// subcommand runs. Argument errors have been reported (with usage) by now,
// so later failures print only the error line.
func loadSettings(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cfg, err := config.Load(viper.GetViper(), viper.GetString("config"))
	if err != nil {
		return err
	}
	if err := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
		return err
	}
	appConfig = cfg
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (JSON, YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}
