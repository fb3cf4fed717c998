// Package config loads benchtab settings: compiled-in defaults, an
// optional config file and BENCHTAB_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mwiater/benchtab/internal/extract"
	"github.com/mwiater/benchtab/internal/report"
)

// EnvPrefix prefixes environment overrides, e.g. BENCHTAB_RESULTS_DIR.
const EnvPrefix = "BENCHTAB"

const (
	dfltResultsDir = "results"
	dfltLogLevel   = "warn"
)

// Config holds all benchtab settings.
type Config struct {
	// ResultsDir is scanned recursively by extract.
	ResultsDir string `mapstructure:"results_dir"`
	// LogFilename is the name of every run log below ResultsDir.
	LogFilename string `mapstructure:"log_filename"`
	// LogLevel is a zerolog level name.
	LogLevel string `mapstructure:"log_level"`

	Report ReportConfig `mapstructure:"report"`
}

// ReportConfig mirrors report.Config.
type ReportConfig struct {
	Experiment      string   `mapstructure:"experiment"`
	Engines         []string `mapstructure:"engines"`
	ExcludeEngines  []string `mapstructure:"exclude_engines"`
	ExcludeExamples []string `mapstructure:"exclude_examples"`
}

// SetDefaults registers the compiled-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("results_dir", dfltResultsDir)
	v.SetDefault("log_filename", extract.DefaultLogFilename)
	v.SetDefault("log_level", dfltLogLevel)
	v.SetDefault("report.experiment", report.DefaultExperiment)
	v.SetDefault("report.engines", report.DefaultEngines)
	v.SetDefault("report.exclude_engines", report.DefaultExcludeEngines)
	v.SetDefault("report.exclude_examples", report.DefaultExcludeExamples)
}

// Load reads the configuration from v. When path is not empty the file is
// read first (format by extension); environment variables override both.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("could not read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that have no usable fallback.
func (c Config) Validate() error {
	if c.ResultsDir == "" {
		return errors.New("config: results_dir must not be empty")
	}
	if c.LogFilename == "" {
		return errors.New("config: log_filename must not be empty")
	}
	if c.Report.Experiment == "" {
		return errors.New("config: report.experiment must not be empty")
	}
	return nil
}

// ReportConfig converts the report section for report.NewEngine.
func (c Config) ReportConfig() report.Config {
	return report.Config{
		Experiment:         c.Report.Experiment,
		EngineAllowList:    append([]string(nil), c.Report.Engines...),
		EngineExcludeList:  append([]string(nil), c.Report.ExcludeEngines...),
		ExampleExcludeList: append([]string(nil), c.Report.ExcludeExamples...),
	}
}
