/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/namestat/internal/iofs"
	"github.com/gnames/namestat/internal/iologger"
	namestat "github.com/gnames/namestat/pkg"
	"github.com/gnames/namestat/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	cfgFile string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd creates the base command with all subcommands attached.
// Every call returns a new instance.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf(
			"version: %s\nbuild:   %s", namestat.Version, namestat.Build,
		),
		Use:   "namestat",
		Short: "Namestat counts given names of a yearly register by year and gender",
		Long: `Namestat reads an HTML document with a table of people grouped
by year and prints frequencies of given names.

Statistics are computed for all years together, for every year, or for one
year, and can be restricted to male or female names. Gender of a name is
assigned by rule-based heuristic or by remote translation and gender
detection services.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (NAMESTAT_*)
  3. Config file (~/.config/namestat/config.yaml)
  4. Built-in defaults

Examples:
  NAMESTAT_PARSER_ENCODING=utf-8 namestat years register.html
  NAMESTAT_GENDER_STRATEGY=lookup namestat names -g female register.html`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "namestat version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for namestat")

	rootCmd.PersistentFlags().StringVarP(
		&cfgFile, "config", "c", "",
		"config file (default ~/.config/namestat/config.yaml)",
	)

	rootCmd.AddCommand(getYearsCmd())
	rootCmd.AddCommand(getNamesCmd())
	rootCmd.AddCommand(getRecordsCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureNameListsFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfgPath := cfgFile
	if cfgPath == "" {
		cfgPath = config.ConfigFilePath(homeDir)
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(cfgPath); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", cfgPath)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	_ = iologger.Close()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(cfgPath string) (*config.Config, error) {
	var err error
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions().
	v.SetEnvPrefix("NAMESTAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Parser configuration
	v.BindEnv("parser.kind", "NAMESTAT_PARSER_KIND")
	v.BindEnv("parser.encoding", "NAMESTAT_PARSER_ENCODING")

	// Gender configuration
	v.BindEnv("gender.strategy", "NAMESTAT_GENDER_STRATEGY")
	v.BindEnv("gender.with_cache", "NAMESTAT_GENDER_WITH_CACHE")
	v.BindEnv("gender.lookup.translate_url", "NAMESTAT_GENDER_LOOKUP_TRANSLATE_URL")
	v.BindEnv("gender.lookup.detect_url", "NAMESTAT_GENDER_LOOKUP_DETECT_URL")
	v.BindEnv("gender.lookup.api_key", "NAMESTAT_GENDER_LOOKUP_API_KEY")
	v.BindEnv("gender.lookup.source_lang", "NAMESTAT_GENDER_LOOKUP_SOURCE_LANG")
	v.BindEnv("gender.lookup.target_lang", "NAMESTAT_GENDER_LOOKUP_TARGET_LANG")
	v.BindEnv("gender.lookup.timeout_sec", "NAMESTAT_GENDER_LOOKUP_TIMEOUT_SEC")
	v.BindEnv(
		"gender.lookup.requests_per_second",
		"NAMESTAT_GENDER_LOOKUP_REQUESTS_PER_SECOND",
	)
	v.BindEnv("gender.lookup.certainty", "NAMESTAT_GENDER_LOOKUP_CERTAINTY")

	// Output configuration
	v.BindEnv("output.format", "NAMESTAT_OUTPUT_FORMAT")

	// Log configuration
	v.BindEnv("log.level", "NAMESTAT_LOG_LEVEL")
	v.BindEnv("log.format", "NAMESTAT_LOG_FORMAT")
	v.BindEnv("log.destination", "NAMESTAT_LOG_DESTINATION")

	v.AutomaticEnv()
}
